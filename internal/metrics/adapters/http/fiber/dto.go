package fiber

// ActivityBucketResponse is one (day, activity) total.
type ActivityBucketResponse struct {
	Date    string `json:"date" example:"2026-08-24"`
	Key     string `json:"key" example:"Terminal"`
	Seconds int64  `json:"seconds" example:"3600"`
}

type ListActivitiesResponse struct {
	Dimension      string                   `json:"dimension" example:"app"`
	From           string                   `json:"from,omitempty" example:"2026-08-01"`
	To             string                   `json:"to,omitempty" example:"2026-08-24"`
	Buckets        []ActivityBucketResponse `json:"buckets"`
	SkippedRecords int                      `json:"skipped_records"`
	GeneratedAt    string                   `json:"generated_at" example:"2026-08-24T12:00:00+02:00"`
}

type CurrentActivityResponse struct {
	Active bool   `json:"active"`
	App    string `json:"app,omitempty" example:"Google Chrome"`
	Tab    string `json:"tab,omitempty" example:"Inbox | https://mail.example.com"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_range"`
	Message string `json:"message,omitempty" example:"to precedes from"`
}

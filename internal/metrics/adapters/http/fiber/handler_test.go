package fiber

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"activity-tracker/internal/metrics/core/domain"
	"activity-tracker/internal/metrics/core/usecase"
)

type fakeListUC struct {
	ExecuteFn func(ctx context.Context, in usecase.ListActivitiesInput) (*usecase.ListActivitiesOutput, error)
}

func (f *fakeListUC) Execute(ctx context.Context, in usecase.ListActivitiesInput) (*usecase.ListActivitiesOutput, error) {
	return f.ExecuteFn(ctx, in)
}

type fakeCurrentUC struct {
	ExecuteFn func(ctx context.Context) (*usecase.CurrentActivityOutput, error)
}

func (f *fakeCurrentUC) Execute(ctx context.Context) (*usecase.CurrentActivityOutput, error) {
	return f.ExecuteFn(ctx)
}

type fakeReportUC struct {
	ExecuteFn func(ctx context.Context, in usecase.GetDayReportInput) (*usecase.DayReport, error)
}

func (f *fakeReportUC) Execute(ctx context.Context, in usecase.GetDayReportInput) (*usecase.DayReport, error) {
	return f.ExecuteFn(ctx, in)
}

func newTestApp(list ListActivitiesUseCase, current GetCurrentActivityUseCase, report GetDayReportUseCase) *fiber.App {
	h := NewActivityHandler(list, current, report)
	app := fiber.New()
	app.Get("/", h.DayPage)
	app.Get("/api/activities", h.ListActivities)
	app.Get("/api/current", h.CurrentActivity)
	return app
}

func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode %q: %v", body, err)
	}
}

func TestListActivities_OK(t *testing.T) {
	generated := time.Date(2026, 8, 24, 12, 0, 0, 0, time.Local)
	list := &fakeListUC{
		ExecuteFn: func(ctx context.Context, in usecase.ListActivitiesInput) (*usecase.ListActivitiesOutput, error) {
			if in.Dimension != "app" {
				t.Fatalf("dimension = %q, want app", in.Dimension)
			}
			return &usecase.ListActivitiesOutput{
				Dimension: domain.DimensionApp,
				Buckets: []domain.Bucket{
					{Day: "2026-08-24", Key: "Terminal", Total: time.Hour},
				},
				SkippedRecords: 2,
				GeneratedAt:    generated,
			}, nil
		},
	}
	app := newTestApp(list, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/activities?dimension=app", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body ListActivitiesResponse
	decodeJSON(t, resp, &body)
	if body.Dimension != "app" || body.SkippedRecords != 2 {
		t.Fatalf("unexpected body %+v", body)
	}
	if len(body.Buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %+v", body.Buckets)
	}
	b := body.Buckets[0]
	if b.Date != "2026-08-24" || b.Key != "Terminal" || b.Seconds != 3600 {
		t.Fatalf("unexpected bucket %+v", b)
	}
}

func TestListActivities_DateParamsForwarded(t *testing.T) {
	var got usecase.ListActivitiesInput
	list := &fakeListUC{
		ExecuteFn: func(ctx context.Context, in usecase.ListActivitiesInput) (*usecase.ListActivitiesOutput, error) {
			got = in
			return &usecase.ListActivitiesOutput{Dimension: domain.DimensionApp}, nil
		},
	}
	app := newTestApp(list, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/activities?from=2026-08-01&to=2026-08-24", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	wantFrom := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	if !got.From.Equal(wantFrom) {
		t.Fatalf("from = %v, want %v", got.From, wantFrom)
	}
	// 'to' is inclusive, so the bound is the start of the next day.
	wantTo := time.Date(2026, 8, 25, 0, 0, 0, 0, time.Local)
	if !got.To.Equal(wantTo) {
		t.Fatalf("to = %v, want %v", got.To, wantTo)
	}
}

func TestListActivities_BadDateIs400(t *testing.T) {
	called := false
	list := &fakeListUC{
		ExecuteFn: func(ctx context.Context, in usecase.ListActivitiesInput) (*usecase.ListActivitiesOutput, error) {
			called = true
			return nil, nil
		},
	}
	app := newTestApp(list, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/activities?from=last-tuesday", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if called {
		t.Fatal("usecase should not run for an unparseable date")
	}

	var body ErrorResponse
	decodeJSON(t, resp, &body)
	if body.Error != "invalid_range" {
		t.Fatalf("error = %q, want invalid_range", body.Error)
	}
}

func TestListActivities_UsecaseErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"invalid dimension", usecase.ErrInvalidDimension, http.StatusBadRequest, "invalid_dimension"},
		{"invalid range", usecase.ErrInvalidRange, http.StatusBadRequest, "invalid_range"},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError, "internal_server_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list := &fakeListUC{
				ExecuteFn: func(ctx context.Context, in usecase.ListActivitiesInput) (*usecase.ListActivitiesOutput, error) {
					return nil, tc.err
				},
			}
			app := newTestApp(list, nil, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
			var body ErrorResponse
			decodeJSON(t, resp, &body)
			if body.Error != tc.wantError {
				t.Fatalf("error = %q, want %q", body.Error, tc.wantError)
			}
		})
	}
}

func TestCurrentActivity_OK(t *testing.T) {
	current := &fakeCurrentUC{
		ExecuteFn: func(ctx context.Context) (*usecase.CurrentActivityOutput, error) {
			return &usecase.CurrentActivityOutput{
				Active: true,
				Key:    "Google Chrome",
				Tab:    "Inbox | https://mail.example.com",
			}, nil
		},
	}
	app := newTestApp(nil, current, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/current", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body CurrentActivityResponse
	decodeJSON(t, resp, &body)
	if !body.Active || body.App != "Google Chrome" || body.Tab != "Inbox | https://mail.example.com" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestCurrentActivity_Inactive(t *testing.T) {
	current := &fakeCurrentUC{
		ExecuteFn: func(ctx context.Context) (*usecase.CurrentActivityOutput, error) {
			return &usecase.CurrentActivityOutput{}, nil
		},
	}
	app := newTestApp(nil, current, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/current", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var body CurrentActivityResponse
	decodeJSON(t, resp, &body)
	if body.Active || body.App != "" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestDayPage_RendersHTML(t *testing.T) {
	report := &fakeReportUC{
		ExecuteFn: func(ctx context.Context, in usecase.GetDayReportInput) (*usecase.DayReport, error) {
			if in.Date != "2026-08-24" {
				t.Fatalf("date = %q, want 2026-08-24", in.Date)
			}
			return &usecase.DayReport{
				Date:  "2026-08-24",
				Dates: []string{"2026-08-24"},
				TopApps: []domain.Bucket{
					{Day: "2026-08-24", Key: "Terminal", Total: time.Hour},
				},
				ActiveTime:  time.Hour,
				EventCount:  1,
				UniqueApps:  1,
				GeneratedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.Local),
			}, nil
		},
	}
	app := newTestApp(nil, nil, report)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?date=2026-08-24", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.HasPrefix(ct, fiber.MIMETextHTML) {
		t.Fatalf("content type = %q, want text/html", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	page := string(body)
	for _, want := range []string{"2026-08-24", "Terminal", "1h 0m"} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q:\n%s", want, page)
		}
	}
}

func TestDayPage_InvalidDateIs400(t *testing.T) {
	report := &fakeReportUC{
		ExecuteFn: func(ctx context.Context, in usecase.GetDayReportInput) (*usecase.DayReport, error) {
			return nil, usecase.ErrInvalidDate
		},
	}
	app := newTestApp(nil, nil, report)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?date=bogus", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

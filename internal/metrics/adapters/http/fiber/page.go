package fiber

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"activity-tracker/internal/metrics/core/domain"
	"activity-tracker/internal/metrics/core/usecase"
)

const (
	colorApp    = "#4f86c6"
	colorTab    = "#7b5ea7"
	colorSite   = "#3aaa6e"
	colorIdle   = "#e06c75"
	colorOther  = "#888"
	iconApp     = "&#128187;"
	iconTab     = "&#127760;"
	iconSite    = "&#127758;"
	iconPlay    = "&#9654;"
	iconPause   = "&#9646;&#9646;"
	iconUnknown = "&#8505;"
)

type panelRow struct {
	Rank     int
	Label    string
	Duration string
	Percent  int
}

type panelView struct {
	Heading string
	Icon    template.HTML
	Color   string
	Rows    []panelRow
}

type timelineRow struct {
	Time       string
	Kind       string
	Icon       template.HTML
	BadgeColor string
	Detail     string
	TabURL     string
	Duration   string
}

type pageModel struct {
	Date        string
	Dates       []string
	ActiveTime  string
	EventCount  string
	UniqueApps  string
	UniqueTabs  string
	UniqueSites string
	Panels      []panelView
	Timeline    []timelineRow
	Warnings    int
}

// renderDayPage turns a day report into the viewer HTML.
func renderDayPage(r *usecase.DayReport) (string, error) {
	model := pageModel{
		Date:        r.Date,
		Dates:       r.Dates,
		ActiveTime:  fmtDuration(r.ActiveTime),
		EventCount:  humanize.Comma(int64(r.EventCount)),
		UniqueApps:  humanize.Comma(int64(r.UniqueApps)),
		UniqueTabs:  humanize.Comma(int64(r.UniqueTabs)),
		UniqueSites: humanize.Comma(int64(r.UniqueSites)),
		Warnings:    r.SkippedRecords,
		Panels: []panelView{
			panel("Top Apps", iconApp, colorApp, r.TopApps, false),
			panel("Top Tabs", iconTab, colorTab, r.TopTabs, true),
			panel("Top Websites", iconSite, colorSite, r.TopSites, false),
		},
	}

	for _, e := range r.Timeline {
		row := timelineRow{
			Time:     e.Timestamp.Format("15:04:05"),
			Kind:     string(e.Kind),
			Duration: fmtDuration(e.Duration),
			Detail:   e.Detail,
		}
		switch e.Kind {
		case "APP":
			row.Icon, row.BadgeColor = iconApp, colorApp
		case "TAB":
			row.Icon, row.BadgeColor = iconTab, colorTab
			if title, rawURL, found := strings.Cut(e.Detail, " | "); found {
				row.Detail = title
				row.TabURL = rawURL
			}
		case "ACTIVE":
			row.Icon, row.BadgeColor = iconPlay, colorSite
		case "INACTIVE":
			row.Icon, row.BadgeColor = iconPause, colorIdle
		default:
			row.Icon, row.BadgeColor = iconUnknown, colorOther
		}
		model.Timeline = append(model.Timeline, row)
	}

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, model); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func panel(heading, icon, color string, buckets []domain.Bucket, tabLabels bool) panelView {
	p := panelView{
		Heading: heading,
		Icon:    template.HTML(icon),
		Color:   color,
	}
	var max time.Duration
	if len(buckets) > 0 {
		max = buckets[0].Total
	}
	for i, b := range buckets {
		label := b.Key
		if tabLabels {
			label = domain.TabTitle(b.Key)
		}
		pct := 0
		if max > 0 {
			pct = int(b.Total * 100 / max)
		}
		p.Rows = append(p.Rows, panelRow{
			Rank:     i + 1,
			Label:    label,
			Duration: fmtDuration(b.Total),
			Percent:  pct,
		})
	}
	return p
}

func fmtDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	switch {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm %ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60)
	}
}

var pageTemplate = template.Must(template.New("day").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Activity Log</title>
<style>
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
         background: #1a1a2e; color: #e0e0e0; min-height: 100vh; }
  header { background: #16213e; padding: 1rem 2rem; border-bottom: 1px solid #0f3460;
           display: flex; align-items: center; gap: 1.5rem; }
  header h1 { font-size: 1.25rem; font-weight: 600; color: #a8dadc; }
  .date-form { display: flex; align-items: center; gap: .5rem; }
  select { background: #0f3460; color: #e0e0e0; border: 1px solid #4f86c6;
           border-radius: 6px; padding: .4rem .75rem; font-size: .9rem; cursor: pointer; }
  main { padding: 1.5rem 2rem; max-width: 1400px; margin: 0 auto; }
  .stats { display: flex; gap: 1rem; margin-bottom: 1.5rem; flex-wrap: wrap; }
  .stat { background: #16213e; border: 1px solid #0f3460; border-radius: 8px;
          padding: .6rem 1.2rem; font-size: .85rem; color: #a8dadc; }
  .stat strong { font-size: 1rem; color: #fff; margin-right: .3rem; }
  .warn { border-color: #e06c75; color: #e06c75; }
  .panels { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1rem;
            margin-bottom: 2rem; }
  @media (max-width: 900px) { .panels { grid-template-columns: 1fr; } }
  .panel { background: #16213e; border: 1px solid #0f3460; border-radius: 10px;
           padding: 1rem 1.25rem; min-width: 0; overflow: hidden; }
  .panel h2 { font-size: .9rem; font-weight: 600; color: #a8dadc;
              margin-bottom: .85rem; letter-spacing: .03em; }
  .empty-panel { font-size: .85rem; color: #555; padding: .5rem 0; }
  .top-row { display: flex; align-items: center; gap: .6rem; margin-bottom: .65rem; }
  .rank { flex-shrink: 0; width: 1.2rem; text-align: right; font-size: .75rem;
          color: #555; font-variant-numeric: tabular-nums; }
  .top-label { flex: 1; min-width: 0; }
  .top-name { display: block; font-size: .82rem; font-weight: 500; color: #ddd;
              white-space: nowrap; overflow: hidden; text-overflow: ellipsis;
              margin-bottom: .25rem; }
  .bar-track { background: #0f3460; border-radius: 99px; height: 5px; }
  .bar-fill { height: 5px; border-radius: 99px; }
  .top-dur { flex-shrink: 0; font-size: .78rem; color: #888;
             font-variant-numeric: tabular-nums; white-space: nowrap; }
  .section-label { font-size: .8rem; font-weight: 600; text-transform: uppercase;
                   letter-spacing: .08em; color: #a8dadc; margin-bottom: .75rem; }
  table { width: 100%; border-collapse: collapse; background: #16213e;
          border-radius: 10px; overflow: hidden; border: 1px solid #0f3460;
          table-layout: fixed; }
  thead { background: #0f3460; }
  th { padding: .75rem 1rem; text-align: left; font-size: .8rem;
       text-transform: uppercase; letter-spacing: .05em; color: #a8dadc; }
  th:nth-child(1) { width: 6.5rem; }
  th:nth-child(2) { width: 8rem; }
  th:nth-child(4) { width: 6rem; }
  td { padding: .65rem 1rem; border-top: 1px solid #0f3460; font-size: .875rem;
       vertical-align: middle; overflow: hidden; }
  tr:hover td { background: #1e2d50; }
  .ts { color: #a8dadc; font-variant-numeric: tabular-nums; white-space: nowrap; }
  .badge { display: inline-block; padding: .2rem .6rem; border-radius: 99px;
           font-size: .75rem; font-weight: 600; color: #fff; white-space: nowrap; }
  .detail { font-weight: 500; }
  .detail-text { display: block; white-space: nowrap; overflow: hidden;
                 text-overflow: ellipsis; }
  .dur { color: #888; font-size: .8rem; white-space: nowrap; }
  .empty { padding: 2rem; text-align: center; color: #888; }
  .tab-url { color: #7bafd4; font-size: .8rem; display: block; white-space: nowrap;
             overflow: hidden; text-overflow: ellipsis; }
</style>
</head>
<body>
<header>
  <h1>&#128200; Activity Log</h1>
  <form class="date-form" method="get">
    <label for="date">Date:</label>
    <select id="date" name="date" onchange="this.form.submit()">
      {{range .Dates}}<option value="{{.}}" {{if eq . $.Date}}selected{{end}}>{{.}}</option>{{end}}
    </select>
    <noscript><button type="submit">Go</button></noscript>
  </form>
</header>
<main>
  <div class="stats">
    <div class="stat"><strong>{{.ActiveTime}}</strong> tracked</div>
    <div class="stat"><strong>{{.EventCount}}</strong> events</div>
    <div class="stat"><strong>{{.UniqueApps}}</strong> unique apps</div>
    <div class="stat"><strong>{{.UniqueTabs}}</strong> unique tabs</div>
    <div class="stat"><strong>{{.UniqueSites}}</strong> unique sites</div>
    {{if gt .Warnings 0}}<div class="stat warn"><strong>{{.Warnings}}</strong> unreadable records skipped</div>{{end}}
  </div>

  <div class="panels">
    {{range .Panels}}
    <div class="panel">
      <h2>{{.Icon}} {{.Heading}}</h2>
      {{if not .Rows}}<p class="empty-panel">No data</p>{{end}}
      {{$color := .Color}}
      {{range .Rows}}
      <div class="top-row">
        <span class="rank">{{.Rank}}</span>
        <div class="top-label">
          <span class="top-name" title="{{.Label}}">{{.Label}}</span>
          <div class="bar-track"><div class="bar-fill" style="width:{{.Percent}}%;background:{{$color}}"></div></div>
        </div>
        <span class="top-dur">{{.Duration}}</span>
      </div>
      {{end}}
    </div>
    {{end}}
  </div>

  <p class="section-label">&#128338; Timeline</p>
  {{if not .Timeline}}
  <p class="empty">No events recorded for this date.</p>
  {{else}}
  <table>
    <thead><tr>
      <th>Time</th><th>Event</th><th>Detail</th><th>Duration</th>
    </tr></thead>
    <tbody>
      {{range .Timeline}}
      <tr>
        <td class="ts">{{.Time}}</td>
        <td><span class="badge" style="background:{{.BadgeColor}}">{{.Icon}} {{.Kind}}</span></td>
        <td class="detail">
          <span class="detail-text">{{.Detail}}</span>
          {{if .TabURL}}<a class="tab-url" href="{{.TabURL}}" target="_blank">{{.TabURL}}</a>{{end}}
        </td>
        <td class="dur">{{.Duration}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  {{end}}
</main>
</body>
</html>
`))

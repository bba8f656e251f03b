package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"activity-tracker/internal/metrics/core/usecase"
)

const dateFormat = "2006-01-02"

type ListActivitiesUseCase interface {
	Execute(ctx context.Context, in usecase.ListActivitiesInput) (*usecase.ListActivitiesOutput, error)
}

type GetCurrentActivityUseCase interface {
	Execute(ctx context.Context) (*usecase.CurrentActivityOutput, error)
}

type GetDayReportUseCase interface {
	Execute(ctx context.Context, in usecase.GetDayReportInput) (*usecase.DayReport, error)
}

type ActivityHandler struct {
	listUC    ListActivitiesUseCase
	currentUC GetCurrentActivityUseCase
	reportUC  GetDayReportUseCase
}

func NewActivityHandler(listUC ListActivitiesUseCase, currentUC GetCurrentActivityUseCase, reportUC GetDayReportUseCase) *ActivityHandler {
	return &ActivityHandler{
		listUC:    listUC,
		currentUC: currentUC,
		reportUC:  reportUC,
	}
}

// ListActivities godoc
// @Summary List aggregated activity time
// @Description Returns per-day time totals for one activity dimension, reconstructed from the event log at query time
// @Tags Activities
// @Produce json
// @Param dimension query string false "Dimension: app | tab | site (default app)"
// @Param from query string false "Start date (inclusive), 2006-01-02"
// @Param to query string false "End date (inclusive), 2006-01-02"
// @Success 200 {object} ListActivitiesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/activities [get]
func (h *ActivityHandler) ListActivities(c *fiber.Ctx) error {
	in := usecase.ListActivitiesInput{
		Dimension: c.Query("dimension", ""),
	}

	if fromStr := c.Query("from", ""); fromStr != "" {
		from, err := time.ParseInLocation(dateFormat, fromStr, time.Local)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_range",
				Message: "invalid 'from' date",
			})
		}
		in.From = from
	}
	if toStr := c.Query("to", ""); toStr != "" {
		to, err := time.ParseInLocation(dateFormat, toStr, time.Local)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_range",
				Message: "invalid 'to' date",
			})
		}
		// The 'to' day is inclusive: bound at its end.
		in.To = to.AddDate(0, 0, 1)
	}

	out, err := h.listUC.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDimension):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_dimension",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrInvalidRange):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_range",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := ListActivitiesResponse{
		Dimension:      string(out.Dimension),
		From:           c.Query("from", ""),
		To:             c.Query("to", ""),
		Buckets:        make([]ActivityBucketResponse, 0, len(out.Buckets)),
		SkippedRecords: out.SkippedRecords,
		GeneratedAt:    out.GeneratedAt.Format(time.RFC3339),
	}
	for _, b := range out.Buckets {
		resp.Buckets = append(resp.Buckets, ActivityBucketResponse{
			Date:    b.Day,
			Key:     b.Key,
			Seconds: int64(b.Total / time.Second),
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// CurrentActivity godoc
// @Summary Current activity
// @Description Returns the activity of the last open session, or active=false when the user is idle or nothing was recorded
// @Tags Activities
// @Produce json
// @Success 200 {object} CurrentActivityResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/current [get]
func (h *ActivityHandler) CurrentActivity(c *fiber.Ctx) error {
	out, err := h.currentUC.Execute(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(CurrentActivityResponse{
		Active: out.Active,
		App:    out.Key,
		Tab:    out.Tab,
	})
}

// DayPage renders the HTML viewer for one day (?date=2006-01-02).
func (h *ActivityHandler) DayPage(c *fiber.Ctx) error {
	report, err := h.reportUC.Execute(c.UserContext(), usecase.GetDayReportInput{
		Date: c.Query("date", ""),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDate) {
			return c.Status(http.StatusBadRequest).SendString("invalid date")
		}
		return c.Status(http.StatusInternalServerError).SendString("internal server error")
	}

	html, err := renderDayPage(report)
	if err != nil {
		return c.Status(http.StatusInternalServerError).SendString("internal server error")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(http.StatusOK).SendString(html)
}

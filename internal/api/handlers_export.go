package api

import (
	"bytes"
	"encoding/csv"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arodena/focusfeed/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	from, to, err := parseExportBounds(c)
	if err != nil {
		return respondExportRangeError(c, err)
	}

	summary, err := handler.exportService.BuildSummary(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export summary")
	}
	return c.JSON(fiber.Map{
		"total_sessions": summary.TotalSessions,
		"total_minutes":  summary.TotalMinutes,
		"has_data":       summary.HasData,
		"date_from":      summary.DateFrom,
		"date_to":        summary.DateTo,
	})
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	from, to, err := parseExportBounds(c)
	if err != nil {
		return respondExportRangeError(c, err)
	}

	rows, err := handler.exportService.BuildCSVRows(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range rows {
		if err := writer.Write(row.Columns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, exportAttachment("csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	from, to, err := parseExportBounds(c)
	if err != nil {
		return respondExportRangeError(c, err)
	}

	entries, err := handler.exportService.BuildJSONEntries(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentDisposition, exportAttachment("json"))
	return c.JSON(fiber.Map{"sessions": entries})
}

func parseExportBounds(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	return services.ParseExportRange(c.Query("from"), c.Query("to"))
}

func respondExportRangeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrExportFromDateInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	case errors.Is(err, services.ErrExportToDateInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	case errors.Is(err, services.ErrExportRangeInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid export range")
	default:
		return apiError(c, fiber.StatusBadRequest, "invalid export request")
	}
}

func exportAttachment(extension string) string {
	return "attachment; filename=\"focusfeed-sessions." + extension + "\""
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"workcal/internal/core"
	"workcal/internal/export"
	"workcal/internal/log"
	"workcal/internal/services"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMonthView serves the padded month grid with its aggregates.
// GET /api/calendar?year=2024&month=2
func (s *Server) handleMonthView(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	view, err := s.svc.MonthView(r.Context(), year, month)
	if err != nil {
		slog.ErrorContext(r.Context(), "Month view failed",
			log.FieldYear, year,
			log.FieldMonth, int(month),
			log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to build month view")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

type saveDayRequest struct {
	HolidayName *string `json:"holidayName"`
	Note        *string `json:"note"`
}

// handleSaveDay stores or clears one day's holiday name and note. A null
// field clears that override; a present field (empty string included)
// stores it.
// PUT /api/days/{dateKey}
func (s *Server) handleSaveDay(w http.ResponseWriter, r *http.Request) {
	dateKey := r.PathValue("dateKey")

	var req saveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.svc.SaveDayDetails(r.Context(), dateKey, req.HolidayName, req.Note); err != nil {
		if errors.Is(err, core.ErrInvalidDateKey) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Save day failed",
			log.FieldDateKey, dateKey,
			log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to save day")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleClearOverrides removes every holiday and note.
// DELETE /api/overrides
func (s *Server) handleClearOverrides(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ClearOverrides(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Clear overrides failed", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to clear overrides")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleHolidayRefresh enqueues a holiday fetch request for the worker.
// Returns 202 because the fetch happens asynchronously.
// POST /api/holidays/refresh?year=2024&month=2&force=true
func (s *Server) handleHolidayRefresh(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	force := r.URL.Query().Get("force") == "true"

	if err := s.svc.RequestHolidayRefresh(r.Context(), year, month, force); err != nil {
		if errors.Is(err, services.ErrQueueUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "holiday fetch queue unavailable")
			return
		}
		slog.ErrorContext(r.Context(), "Holiday refresh failed",
			log.FieldYear, year,
			log.FieldMonth, int(month),
			log.FieldForce, force,
			log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to request refresh")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

// GET /api/settings
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.svc.Settings(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Load settings failed", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// PUT /api/settings
func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings services.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateSettings(settings); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.svc.SaveSettings(r.Context(), settings); err != nil {
		slog.ErrorContext(r.Context(), "Save settings failed", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateSettings(settings services.Settings) error {
	if settings.Config.HoursPerDay < 0 || settings.Config.HoursPerDay > 24 {
		return fmt.Errorf("hoursPerDay must be between 0 and 24")
	}
	for _, d := range settings.Config.WorkDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("workDays entries must be between 0 and 6")
		}
	}
	return nil
}

// handleExport streams the month report as a CSV download.
// GET /api/export?year=2024&month=2
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	view, err := s.svc.MonthView(r.Context(), year, month)
	if err != nil {
		slog.ErrorContext(r.Context(), "Export failed",
			log.FieldYear, year,
			log.FieldMonth, int(month),
			log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	cfg, err := s.svc.CalendarConfig(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load config")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.ReportFilename(year, month)))

	if err := export.WriteMonthReport(w, view, cfg.HoursPerDay); err != nil {
		// Headers are already sent; nothing useful to return to the client.
		slog.ErrorContext(r.Context(), "Writing report failed",
			log.FieldYear, year,
			log.FieldMonth, int(month),
			log.FieldError, err)
	}
}

// parseYearMonth reads the year and month query parameters, defaulting both
// to the current date when absent.
func parseYearMonth(r *http.Request) (int, time.Month, error) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	q := r.URL.Query()
	if v := q.Get("year"); v != "" {
		y, err := parsePositiveInt(v)
		if err != nil || y < 1 || y > 9999 {
			return 0, 0, fmt.Errorf("invalid year %q", v)
		}
		year = y
	}
	if v := q.Get("month"); v != "" {
		m, err := parsePositiveInt(v)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid month %q", v)
		}
		month = time.Month(m)
	}

	return year, month, nil
}

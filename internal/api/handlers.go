package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/hdate-api/internal/calendar"
	"github.com/zapponejosh/hdate-api/internal/config"
	"github.com/zapponejosh/hdate-api/internal/database"
	"github.com/zapponejosh/hdate-api/internal/ics"
	"github.com/zapponejosh/hdate-api/internal/logger"
)

const (
	dateLayout       = "2006-01-02"
	maxGregorianYear = 9999

	// maxHebrewYear is the last Hebrew year that ends within
	// maxGregorianYear. Routes taking a Hebrew year accept
	// calendar.MinYear..maxHebrewYear.
	maxHebrewYear = maxGregorianYear + 3760
)

// JDN bounds accepted by the API: 1 Tishrei of the first supported Hebrew
// year through the last day of maxGregorianYear.
var (
	minJDN = calendar.HebrewToJDN(1, 1, calendar.MinYear)
	maxJDN = calendar.GregorianToJDN(31, 12, maxGregorianYear)
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB
	resolver *calendar.DateResolver
	cfg      *config.Config
	logger   *slog.Logger
	clock    calendar.Clock
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger, clock calendar.Clock) *Handlers {
	if clock == nil {
		clock = calendar.RealClock{}
	}
	return &Handlers{
		db:       db,
		resolver: calendar.NewDateResolver(db),
		cfg:      cfg,
		logger:   logger,
		clock:    clock,
	}
}

// log returns the handler logger tagged with the request ID, falling back
// to the default logger when none was given.
func (h *Handlers) log(r *http.Request) *slog.Logger {
	if h.logger == nil {
		return logger.FromContext(r.Context())
	}
	return logger.With(r.Context(), h.logger)
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.log(r).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "HEALTH_CHECK_FAILED", "Database unhealthy")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// =============================================================================
// Dates
// =============================================================================

// GetToday handles GET /api/v1/dates/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	diaspora, ok := h.parseDiaspora(w, r)
	if !ok {
		return
	}

	now := h.clock.Now().In(h.cfg.Location())
	info, err := h.resolver.ResolveDate(r.Context(), now, diaspora)
	if err != nil {
		h.log(r).Error("failed to resolve today", slog.Any("error", err))
		WriteInternalError(w, "Failed to resolve date")
		return
	}

	WriteSuccess(w, info)
}

// GetGregorianDate handles GET /api/v1/dates/gregorian/{YYYY-MM-DD}
func (h *Handlers) GetGregorianDate(w http.ResponseWriter, r *http.Request) {
	diaspora, ok := h.parseDiaspora(w, r)
	if !ok {
		return
	}

	dateStr := chi.URLParam(r, "date")
	date, err := parseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	h.writeDay(w, r, calendar.FromTime(date).JDN(), diaspora)
}

// GetHebrewDate handles GET /api/v1/dates/hebrew/{year}/{month}/{day}
func (h *Handlers) GetHebrewDate(w http.ResponseWriter, r *http.Request) {
	diaspora, ok := h.parseDiaspora(w, r)
	if !ok {
		return
	}

	year, errYear := strconv.Atoi(chi.URLParam(r, "year"))
	month, errMonth := strconv.Atoi(chi.URLParam(r, "month"))
	day, errDay := strconv.Atoi(chi.URLParam(r, "day"))
	if err := errors.Join(errYear, errMonth, errDay); err != nil {
		WriteBadRequest(w, "Year, month and day must be integers")
		return
	}
	if year > maxHebrewYear {
		WriteBadRequest(w, fmt.Sprintf("Year must be at most %d", maxHebrewYear))
		return
	}

	d, err := calendar.FromHebrew(day, month, year)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	h.writeDay(w, r, d.JDN(), diaspora)
}

// GetJDN handles GET /api/v1/dates/jdn/{jdn}
func (h *Handlers) GetJDN(w http.ResponseWriter, r *http.Request) {
	diaspora, ok := h.parseDiaspora(w, r)
	if !ok {
		return
	}

	jdn, err := strconv.Atoi(chi.URLParam(r, "jdn"))
	if err != nil {
		WriteBadRequest(w, "JDN must be an integer")
		return
	}
	if jdn < minJDN || jdn > maxJDN {
		WriteBadRequest(w, fmt.Sprintf("JDN must be between %d and %d", minJDN, maxJDN))
		return
	}

	h.writeDay(w, r, jdn, diaspora)
}

// GetRange handles GET /api/v1/dates/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	diaspora, ok := h.parseDiaspora(w, r)
	if !ok {
		return
	}

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := parseDate(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date: %s. Use YYYY-MM-DD", startStr))
		return
	}

	end, err := parseDate(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date: %s. Use YYYY-MM-DD", endStr))
		return
	}

	if start.After(end) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	days, err := h.resolver.ResolveRange(r.Context(), start, end, diaspora)
	if err != nil {
		if errors.Is(err, calendar.ErrRangeTooLarge) {
			WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", calendar.MaxRangeDays))
			return
		}
		h.log(r).Error("failed to resolve range",
			slog.String("start", startStr),
			slog.String("end", endStr),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to resolve dates")
		return
	}

	WriteSuccess(w, map[string]any{
		"start":    startStr,
		"end":      endStr,
		"diaspora": diaspora,
		"days":     days,
	})
}

func (h *Handlers) writeDay(w http.ResponseWriter, r *http.Request, jdn int, diaspora bool) {
	info, err := h.resolver.ResolveJDN(r.Context(), jdn, diaspora)
	if err != nil {
		h.log(r).Error("failed to resolve date",
			slog.Int("jdn", jdn),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to resolve date")
		return
	}

	WriteSuccess(w, info)
}

// =============================================================================
// Years
// =============================================================================

// GetYear handles GET /api/v1/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.yearSummary(w, r)
	if !ok {
		return
	}

	WriteSuccess(w, summary)
}

// GetYearFeed handles GET /api/v1/years/{year}/calendar.ics
func (h *Handlers) GetYearFeed(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.yearSummary(w, r)
	if !ok {
		return
	}

	feed, err := ics.BuildYearFeed(summary, h.clock.Now())
	if err != nil {
		h.log(r).Error("failed to build calendar feed",
			slog.Int("year", summary.Year),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to build calendar feed")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="hebrew-%d.ics"`, summary.Year))
	w.WriteHeader(http.StatusOK)
	w.Write(feed)
}

func (h *Handlers) yearSummary(w http.ResponseWriter, r *http.Request) (calendar.YearSummary, bool) {
	diaspora, ok := h.parseDiaspora(w, r)
	if !ok {
		return calendar.YearSummary{}, false
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Year must be an integer")
		return calendar.YearSummary{}, false
	}
	if year < calendar.MinYear || year > maxHebrewYear {
		WriteBadRequest(w, fmt.Sprintf("Year must be between %d and %d", calendar.MinYear, maxHebrewYear))
		return calendar.YearSummary{}, false
	}

	summary, err := calendar.SummarizeYear(year, diaspora)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return calendar.YearSummary{}, false
	}
	return summary, true
}

// =============================================================================
// Custom days
// =============================================================================

// ListCustomDays handles GET /api/v1/custom-days?month=N
func (h *Handlers) ListCustomDays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		days []calendar.CustomDay
		err  error
	)
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, convErr := strconv.Atoi(monthStr)
		if convErr != nil || month < 1 || month > 14 {
			WriteBadRequest(w, "month must be an integer between 1 and 14")
			return
		}
		days, err = h.db.ListCustomDaysByMonth(ctx, month)
	} else {
		days, err = h.db.ListCustomDays(ctx)
	}
	if err != nil {
		h.log(r).Error("failed to list custom days", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve custom days")
		return
	}

	WriteSuccess(w, map[string]any{
		"custom_days": days,
		"count":       len(days),
	})
}

// CreateCustomDay handles POST /api/v1/custom-days
func (h *Handlers) CreateCustomDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Month int    `json:"hebrew_month"`
		Day   int    `json:"hebrew_day"`
		Kind  string `json:"kind,omitempty"`
		Notes string `json:"notes,omitempty"`
	}

	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if req.Kind == "" {
		req.Kind = string(database.KindOther)
	}

	day := &calendar.CustomDay{
		Name:  strings.TrimSpace(req.Name),
		Month: req.Month,
		Day:   req.Day,
		Kind:  req.Kind,
		Notes: req.Notes,
	}

	if err := h.db.CreateCustomDay(r.Context(), day); err != nil {
		switch {
		case errors.Is(err, database.ErrInvalid):
			WriteBadRequest(w, err.Error())
		case errors.Is(err, database.ErrDuplicate):
			WriteConflict(w, "Custom day already exists")
		default:
			h.log(r).Error("failed to create custom day", slog.Any("error", err))
			WriteInternalError(w, "Failed to create custom day")
		}
		return
	}

	h.log(r).Info("custom day created",
		slog.Int64("id", day.ID),
		slog.String("kind", day.Kind))

	WriteCreated(w, day)
}

// DeleteCustomDay handles DELETE /api/v1/custom-days/{id}
func (h *Handlers) DeleteCustomDay(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteBadRequest(w, "Invalid custom day ID")
		return
	}

	if err := h.db.DeleteCustomDay(r.Context(), id); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Custom day not found")
			return
		}
		h.log(r).Error("failed to delete custom day", slog.Any("error", err))
		WriteInternalError(w, "Failed to delete custom day")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Custom day deleted"})
}

// =============================================================================
// Helpers
// =============================================================================

// parseDiaspora reads ?diaspora=, falling back to the configured default.
// On a malformed value it writes a 400 and reports false.
func (h *Handlers) parseDiaspora(w http.ResponseWriter, r *http.Request) (bool, bool) {
	v := r.URL.Query().Get("diaspora")
	if v == "" {
		return h.cfg.Diaspora, true
	}
	diaspora, err := strconv.ParseBool(v)
	if err != nil {
		WriteBadRequest(w, "diaspora must be true or false")
		return false, false
	}
	return diaspora, true
}

// parseDate parses YYYY-MM-DD as a calendar date in UTC.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	if t.Year() < 1 || t.Year() > maxGregorianYear {
		return time.Time{}, fmt.Errorf("year %d out of range", t.Year())
	}
	return t, nil
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

package update_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	"github.com/m04kA/WN-BookingService/internal/domain"
	scheduleService "github.com/m04kA/WN-BookingService/internal/service/schedule"
	"github.com/m04kA/WN-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректная конфигурация расписания"
	msgVersionConflict    = "расписание изменено другим администратором, обновите и повторите"
	msgScheduleNotFound   = "конфигурация расписания не найдена"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		h.respondSaveError(w, "PUT /admin/schedule", err)
		return
	}

	h.logger.Info("PUT /admin/schedule - Schedule saved: version=%d", result.Version)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleBlockDate POST /api/v1/admin/schedule/blocked-dates/{date}
func (h *Handler) HandleBlockDate(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDate(w, r)
	if !ok {
		return
	}

	result, err := h.service.BlockDate(r.Context(), date)
	if err != nil {
		h.respondSaveError(w, "POST /admin/schedule/blocked-dates/{date}", err)
		return
	}

	h.logger.Info("POST /admin/schedule/blocked-dates/{date} - Date blocked: date=%s", domain.DateKey(date))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUnblockDate DELETE /api/v1/admin/schedule/blocked-dates/{date}
func (h *Handler) HandleUnblockDate(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDate(w, r)
	if !ok {
		return
	}

	result, err := h.service.UnblockDate(r.Context(), date)
	if err != nil {
		h.respondSaveError(w, "DELETE /admin/schedule/blocked-dates/{date}", err)
		return
	}

	h.logger.Info("DELETE /admin/schedule/blocked-dates/{date} - Date unblocked: date=%s", domain.DateKey(date))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) parseDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateStr := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("admin/schedule/blocked-dates - Invalid date=%s: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return time.Time{}, false
	}
	return date, true
}

// respondSaveError общий маппинг ошибок сохранения расписания
func (h *Handler) respondSaveError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, scheduleService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid schedule config: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidSchedule)

	case errors.Is(err, scheduleService.ErrVersionConflict):
		h.logger.Warn("%s - Version conflict", route)
		handlers.RespondConflict(w, msgVersionConflict)

	case errors.Is(err, scheduleService.ErrScheduleNotFound):
		h.logger.Warn("%s - Schedule config not found", route)
		handlers.RespondNotFound(w, msgScheduleNotFound)

	default:
		h.logger.Error("%s - Failed to save schedule: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

package get_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/WN-BookingService/internal/api/handlers"
	scheduleService "github.com/m04kA/WN-BookingService/internal/service/schedule"
)

const (
	msgScheduleNotFound = "конфигурация расписания не найдена"
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

// Handle GET /api/v1/admin/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, scheduleService.ErrScheduleNotFound) {
			h.logger.Warn("GET /admin/schedule - Schedule config not found")
			handlers.RespondNotFound(w, msgScheduleNotFound)
			return
		}
		h.logger.Error("GET /admin/schedule - Failed to get schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/schedule - Schedule retrieved: version=%d", result.Version)
	handlers.RespondJSON(w, http.StatusOK, result)
}

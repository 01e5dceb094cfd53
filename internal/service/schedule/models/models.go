package models

import (
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
	"github.com/m04kA/WN-BookingService/pkg/types"
)

// Request модели

// DayOverrideRequest переопределение расписания одной даты
type DayOverrideRequest struct {
	Slots           []string `json:"slots"`
	DurationMinutes int      `json:"durationMinutes"`
}

// UpdateScheduleRequest запрос на замену конфигурации расписания.
// Version - версия, которую администратор читал; несовпадение с текущей
// означает конкурентное изменение.
type UpdateScheduleRequest struct {
	Version                int64                         `json:"version"`
	Timezone               string                        `json:"timezone"`
	CampaignStart          *string                       `json:"campaignStart,omitempty"` // "2026-01-26"
	CampaignEnd            *string                       `json:"campaignEnd,omitempty"`
	WorkingDays            []int                         `json:"workingDays"` // 0=воскресенье ... 6=суббота
	DefaultSlots           []string                      `json:"defaultSlots"`
	DefaultDurationMinutes int                           `json:"defaultDurationMinutes"`
	DayOverrides           map[string]DayOverrideRequest `json:"dayOverrides,omitempty"`
	BlockedDates           []string                      `json:"blockedDates,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateScheduleRequest) ToDomain() (*domain.StudioSchedule, error) {
	sched := &domain.StudioSchedule{
		Version:                r.Version,
		Timezone:               r.Timezone,
		DefaultDurationMinutes: r.DefaultDurationMinutes,
		BlockedDates:           r.BlockedDates,
	}

	for _, d := range r.WorkingDays {
		sched.WorkingDays = append(sched.WorkingDays, time.Weekday(d))
	}

	for _, s := range r.DefaultSlots {
		sched.DefaultSlots = append(sched.DefaultSlots, types.TimeString(s))
	}

	if r.CampaignStart != nil {
		start, err := time.Parse(domain.DateFormat, *r.CampaignStart)
		if err != nil {
			return nil, err
		}
		sched.CampaignStart = start
	}

	if r.CampaignEnd != nil {
		end, err := time.Parse(domain.DateFormat, *r.CampaignEnd)
		if err != nil {
			return nil, err
		}
		sched.CampaignEnd = end
	}

	if len(r.DayOverrides) > 0 {
		sched.DayOverrides = make(map[string]domain.DayOverride, len(r.DayOverrides))
		for key, override := range r.DayOverrides {
			slots := make([]types.TimeString, 0, len(override.Slots))
			for _, s := range override.Slots {
				slots = append(slots, types.TimeString(s))
			}
			sched.DayOverrides[key] = domain.DayOverride{
				Slots:           slots,
				DurationMinutes: override.DurationMinutes,
			}
		}
	}

	return sched, nil
}

// Response модели

// DayOverrideResponse переопределение расписания одной даты
type DayOverrideResponse struct {
	Slots           []string `json:"slots"`
	DurationMinutes int      `json:"durationMinutes"`
}

// ScheduleResponse ответ с конфигурацией расписания
type ScheduleResponse struct {
	Version                int64                          `json:"version"`
	Timezone               string                         `json:"timezone"`
	CampaignStart          *string                        `json:"campaignStart,omitempty"`
	CampaignEnd            *string                        `json:"campaignEnd,omitempty"`
	WorkingDays            []int                          `json:"workingDays"`
	DefaultSlots           []string                       `json:"defaultSlots"`
	DefaultDurationMinutes int                            `json:"defaultDurationMinutes"`
	DayOverrides           map[string]DayOverrideResponse `json:"dayOverrides,omitempty"`
	BlockedDates           []string                       `json:"blockedDates,omitempty"`
}

// FromDomainSchedule конвертирует domain модель в response
func FromDomainSchedule(s *domain.StudioSchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		Version:                s.Version,
		Timezone:               s.Timezone,
		DefaultDurationMinutes: s.DefaultDurationMinutes,
		BlockedDates:           s.BlockedDates,
	}

	for _, d := range s.WorkingDays {
		resp.WorkingDays = append(resp.WorkingDays, int(d))
	}

	for _, slot := range s.DefaultSlots {
		resp.DefaultSlots = append(resp.DefaultSlots, slot.String())
	}

	if !s.CampaignStart.IsZero() {
		start := s.CampaignStart.Format(domain.DateFormat)
		resp.CampaignStart = &start
	}

	if !s.CampaignEnd.IsZero() {
		end := s.CampaignEnd.Format(domain.DateFormat)
		resp.CampaignEnd = &end
	}

	if len(s.DayOverrides) > 0 {
		resp.DayOverrides = make(map[string]DayOverrideResponse, len(s.DayOverrides))
		for key, override := range s.DayOverrides {
			slots := make([]string, 0, len(override.Slots))
			for _, slot := range override.Slots {
				slots = append(slots, slot.String())
			}
			resp.DayOverrides[key] = DayOverrideResponse{
				Slots:           slots,
				DurationMinutes: override.DurationMinutes,
			}
		}
	}

	return resp
}

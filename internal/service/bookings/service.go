package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WN-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/WN-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с журналом бронирований
type Service struct {
	bookingRepo BookingRepository
	cache       AvailabilityCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	cache AvailabilityCache,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// ListForDate получает бронирования на дату с фильтрацией по статусу.
// Используется администратором для просмотра журнала дня.
func (s *Service) ListForDate(ctx context.Context, req *models.ListForDateRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListForDate: fetching bookings for date=%s, status=%v, includeInactive=%v",
		req.Date.Format(domain.DateFormat), req.Status, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListForDate: invalid status=%v", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListForDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForDate: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListForCustomer получает историю бронирований клиента по email
func (s *Service) ListForCustomer(ctx context.Context, email string) (*models.BookingListResponse, error) {
	s.logger.Info("ListForCustomer: fetching bookings for email=%s", email)

	bookings, err := s.bookingRepo.ListForCustomer(ctx, email)
	if err != nil {
		s.logger.Error("ListForCustomer: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: ListForCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForCustomer: successfully fetched %d bookings for email=%s", len(bookings), email)
	return models.FromDomainBookingList(bookings), nil
}

// ChangeStatus меняет статус бронирования с проверкой допустимости перехода.
// Подтверждение влечет оплату, no-show снимает её; в остальных переходах
// статус оплаты не меняется.
func (s *Service) ChangeStatus(ctx context.Context, id int64, newStatus string) (*models.BookingResponse, error) {
	s.logger.Info("ChangeStatus: booking id=%d -> status=%s", id, newStatus)

	status := domain.ReservationStatus(newStatus)
	if !status.Valid() {
		s.logger.Warn("ChangeStatus: invalid status=%s", newStatus)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, newStatus)
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(status) {
		s.logger.Warn("ChangeStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	payment := paymentAfterTransition(booking.Payment, status)

	if err := s.bookingRepo.UpdateStatus(ctx, id, status, payment); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("ChangeStatus: failed to update booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: ChangeStatus - repository error: %v", ErrInternal, err)
	}

	// Смена статуса меняет занятость слота (отмена освобождает места) -
	// сбрасываем снапшот даты
	if err := s.cache.Invalidate(ctx, booking.BookingDate); err != nil {
		s.logger.Warn("ChangeStatus: failed to invalidate availability cache: %v", err)
	}

	booking.Status = status
	booking.Payment = payment

	s.logger.Info("ChangeStatus: booking id=%d is now %s/%s", id, status, payment)
	return models.FromDomainBooking(booking), nil
}

// MarkAttendedAndPaid отмечает посещение и оплату одним действием.
// Частый сценарий администратора после занятия.
func (s *Service) MarkAttendedAndPaid(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("MarkAttendedAndPaid: booking id=%d", id)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(domain.StatusAttended) {
		s.logger.Warn("MarkAttendedAndPaid: transition %s -> attended not allowed for booking id=%d",
			booking.Status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, domain.StatusAttended)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusAttended, domain.PaymentPaid); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("MarkAttendedAndPaid: failed to update booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: MarkAttendedAndPaid - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusAttended
	booking.Payment = domain.PaymentPaid

	s.logger.Info("MarkAttendedAndPaid: booking id=%d is now attended/paid", id)
	return models.FromDomainBooking(booking), nil
}

// SetPayment меняет только статус оплаты, не трогая статус посещения
func (s *Service) SetPayment(ctx context.Context, id int64, payment string) (*models.BookingResponse, error) {
	s.logger.Info("SetPayment: booking id=%d -> payment=%s", id, payment)

	paymentStatus := domain.PaymentStatus(payment)
	if !paymentStatus.Valid() {
		s.logger.Warn("SetPayment: invalid payment status=%s", payment)
		return nil, fmt.Errorf("%w: invalid payment status %q", ErrInvalidInput, payment)
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.SetPayment(ctx, id, paymentStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("SetPayment: failed to update booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetPayment - repository error: %v", ErrInternal, err)
	}

	booking.Payment = paymentStatus

	s.logger.Info("SetPayment: booking id=%d payment is now %s", id, paymentStatus)
	return models.FromDomainBooking(booking), nil
}

// getBooking общая выборка бронирования с маппингом ошибок репозитория
func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// paymentAfterTransition применяет связь статусов посещения и оплаты:
// подтверждение фиксирует оплату, no-show возвращает неоплаченность
func paymentAfterTransition(current domain.PaymentStatus, next domain.ReservationStatus) domain.PaymentStatus {
	switch next {
	case domain.StatusConfirmed:
		return domain.PaymentPaid
	case domain.StatusNoShow:
		return domain.PaymentUnpaid
	default:
		return current
	}
}

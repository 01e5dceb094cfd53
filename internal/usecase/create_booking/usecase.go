package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WN-BookingService/internal/domain"
	pkgRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/pkgaccount"
	"github.com/m04kA/WN-BookingService/internal/integrations/mailer"
	"github.com/m04kA/WN-BookingService/internal/service/availability"
	"github.com/m04kA/WN-BookingService/pkg/ptr"
	"github.com/m04kA/WN-BookingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	packageRepo  PackageRepository
	scheduleRepo ScheduleRepository
	customerRepo CustomerRepository
	cache        AvailabilityCache
	mailerClient MailerClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	scheduleRepo ScheduleRepository,
	customerRepo CustomerRepository,
	cache AvailabilityCache,
	mailerClient MailerClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		packageRepo:  packageRepo,
		scheduleRepo: scheduleRepo,
		customerRepo: customerRepo,
		cache:        cache,
		mailerClient: mailerClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости и вставка идут в одной сериализуемой транзакции
// с блокировкой бронирований даты - конкурентные брони одного слота
// не могут превысить вместимость.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, time=%s, kind=%s",
		req.Email, req.Date.Format(domain.DateFormat), req.StartTime, req.Kind)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	kind := domain.BookingKind(req.Kind)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем черный список
	blocked, err := uc.customerRepo.IsBlocked(ctx, req.Email)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check block list for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: failed to check block list: %v", ErrInternal, err)
	}
	if blocked {
		uc.logger.Warn("CreateBooking: customer email=%s is blocked", req.Email)
		return nil, ErrCustomerBlocked
	}

	// Переменные для хранения результата
	var result *domain.Booking
	var debitedAccount *domain.PackageAccount
	var slotEnd types.TimeString

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем конфигурацию расписания
		sched, err := uc.scheduleRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 4.2. Проверяем, что на дату в принципе можно бронировать.
		// Закрытая администратором дата - отдельная ошибка: клиенту важно,
		// что день обычно рабочий, но именно сейчас недоступен
		if sched.IsBlocked(req.Date) {
			uc.logger.Warn("CreateBooking: date %s is blocked", req.Date.Format(domain.DateFormat))
			return ErrDateBlocked
		}
		if !availability.IsBookableDate(sched, req.Date) {
			uc.logger.Warn("CreateBooking: date %s is not bookable", req.Date.Format(domain.DateFormat))
			return ErrDateNotBookable
		}

		// 4.3. Получаем все бронирования даты с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListForDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 4.4. Считаем доступность тем же алгоритмом, что и выдача расписания
		slots, err := availability.BuildDaySlots(sched, req.Date, now, bookings)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to build day slots: %v", err)
			return fmt.Errorf("%w: failed to build day slots: %v", ErrInternal, err)
		}

		slot := availability.FindSlot(slots, req.StartTime.String())
		if slot == nil {
			uc.logger.Warn("CreateBooking: slot %s not found on %s", req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotFound
		}
		slotEnd = slot.EndTime

		// 4.5. Проверяем отсечку и вместимость раздельно: клиенту важно,
		// почему именно слот недоступен
		if slot.IsPastOrTooSoon {
			uc.logger.Warn("CreateBooking: slot %s starts too soon", req.StartTime)
			return ErrTooLateToBook
		}

		seats := kind.SeatsOccupied()
		if kind.IsExclusive() && slot.SeatsOccupied > 0 {
			uc.logger.Warn("CreateBooking: individual session requires empty slot, %d seats taken", slot.SeatsOccupied)
			return ErrSlotFull
		}
		if !slot.CanFit(seats) {
			uc.logger.Warn("CreateBooking: slot %s full, %d seats left, %d needed",
				req.StartTime, slot.SeatsAvailable, seats)
			return ErrSlotFull
		}

		// 4.6. Пакетное бронирование списывает занятие атомарно в той же транзакции
		var packageID *int64
		if kind.IsPackage() {
			account, err := uc.packageRepo.GetActiveByEmail(txCtx, req.Email)
			if err != nil {
				if errors.Is(err, pkgRepo.ErrAccountNotFound) {
					uc.logger.Warn("CreateBooking: no active package for email=%s", req.Email)
					return ErrNoActivePackage
				}
				uc.logger.Error("CreateBooking: failed to get package for email=%s: %v", req.Email, err)
				return fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
			}

			debitedAccount, err = uc.packageRepo.Debit(txCtx, account.ID)
			if err != nil {
				if errors.Is(err, pkgRepo.ErrNoSessionsRemaining) {
					uc.logger.Warn("CreateBooking: package id=%d exhausted for email=%s", account.ID, req.Email)
					return ErrNoSessionsRemaining
				}
				uc.logger.Error("CreateBooking: failed to debit package id=%d: %v", account.ID, err)
				return fmt.Errorf("%w: failed to debit package: %v", ErrInternal, err)
			}

			packageID = ptr.Ptr(account.ID)
		}

		// 4.7. Создаем бронирование
		booking := &domain.Booking{
			Name:        req.Name,
			Surname:     req.Surname,
			Mobile:      req.Mobile,
			Email:       req.Email,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			Instructor:  req.Instructor,
			Kind:        kind,
			PackageID:   packageID,
			Status:      domain.StatusPending,
			Payment:     domain.PaymentUnpaid,
			PayInStudio: req.PayInStudio,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 5. Сбрасываем кэш доступности даты. Ошибка кэша не откатывает бронь:
	// снапшот истечет сам по TTL.
	if err := uc.cache.Invalidate(ctx, req.Date); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate availability cache: %v", err)
	}

	// 6. Отправляем письмо-подтверждение с graceful degradation
	msg := mailer.Message{
		To:       result.Email,
		Template: mailer.TemplateBookingConfirmation,
		Params: map[string]string{
			"name":       result.Name,
			"date":       result.BookingDate.Format(domain.DateFormat),
			"start_time": result.StartTime.String(),
			"kind":       string(result.Kind),
		},
	}
	if err := uc.mailerClient.SendWithGracefulDegradation(ctx, msg); err != nil {
		uc.logger.Warn("CreateBooking: confirmation email not sent for booking id=%d: %v", result.ID, err)
	}

	return uc.buildResponse(result, slotEnd, debitedAccount)
}

func (uc *UseCase) buildResponse(booking *domain.Booking, slotEnd types.TimeString, account *domain.PackageAccount) (*Response, error) {
	resp := &Response{
		ID:          booking.ID,
		Name:        booking.Name,
		Surname:     booking.Surname,
		Email:       booking.Email,
		BookingDate: booking.BookingDate,
		StartTime:   booking.StartTime,
		EndTime:     slotEnd,
		Instructor:  booking.Instructor,
		Kind:        string(booking.Kind),
		Status:      string(booking.Status),
		Payment:     string(booking.Payment),
		PackageID:   booking.PackageID,
		CreatedAt:   booking.CreatedAt,
	}

	if account != nil {
		resp.SessionsRemaining = ptr.Ptr(account.RemainingSessions())
	}

	return resp, nil
}

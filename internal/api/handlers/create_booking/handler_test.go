package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WN-BookingService/internal/domain"
	createBooking "github.com/m04kA/WN-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/WN-BookingService/pkg/types"
)

type fakeUseCase struct {
	req  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:          42,
			Name:        "Елена",
			Surname:     "Морозова",
			Email:       "elena@example.com",
			BookingDate: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
			StartTime:   types.TimeString("18:00"),
			EndTime:     types.TimeString("18:50"),
			Kind:        string(domain.KindSingle),
			Status:      string(domain.StatusPending),
			Payment:     string(domain.PaymentUnpaid),
			CreatedAt:   time.Date(2026, 1, 29, 10, 0, 0, 0, time.UTC),
		},
	}

	rec := doRequest(t, uc, CreateBookingRequest{
		Name:      "Елена",
		Surname:   "Морозова",
		Mobile:    "+306912345678",
		Email:     "elena@example.com",
		Date:      "2026-01-30",
		StartTime: "18:00",
		Kind:      "single",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-01-30", resp.Date)
	assert.Equal(t, "18:50", resp.EndTime)

	require.NotNil(t, uc.req)
	assert.Equal(t, "elena@example.com", uc.req.Email)
	assert.Equal(t, types.TimeString("18:00"), uc.req.StartTime)
}

func TestHandle_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	NewHandler(&fakeUseCase{}, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, CreateBookingRequest{
		Email:     "elena@example.com",
		Date:      "30.01.2026",
		StartTime: "18:00",
		Kind:      "single",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot full", createBooking.ErrSlotFull, http.StatusConflict},
		{"customer blocked", createBooking.ErrCustomerBlocked, http.StatusForbidden},
		{"date not bookable", createBooking.ErrDateNotBookable, http.StatusBadRequest},
		{"date blocked", createBooking.ErrDateBlocked, http.StatusConflict},
		{"slot not found", createBooking.ErrSlotNotFound, http.StatusNotFound},
		{"too late", createBooking.ErrTooLateToBook, http.StatusBadRequest},
		{"no active package", createBooking.ErrNoActivePackage, http.StatusConflict},
		{"no sessions", createBooking.ErrNoSessionsRemaining, http.StatusConflict},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, CreateBookingRequest{
				Name:      "Елена",
				Surname:   "Морозова",
				Mobile:    "+306912345678",
				Email:     "elena@example.com",
				Date:      "2026-01-30",
				StartTime: "18:00",
				Kind:      "single",
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

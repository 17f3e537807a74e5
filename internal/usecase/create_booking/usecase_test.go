package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SmartWash-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SmartWash-BookingService/internal/infra/storage/kv/memstore"
	"github.com/m04kA/SmartWash-BookingService/internal/slots"
	"github.com/m04kA/SmartWash-BookingService/pkg/logger"
	"github.com/m04kA/SmartWash-BookingService/pkg/ptr"
)

var testNow = time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRepo struct {
	slots   []domain.TimeSlot
	saved   []*domain.Booking
	saveErr error
}

func (r *fakeRepo) ListTimeSlots(ctx context.Context) []domain.TimeSlot {
	return r.slots
}

func (r *fakeRepo) SaveBooking(ctx context.Context, booking *domain.Booking) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, booking)
	return nil
}

type countingMetrics struct{ created map[string]int }

func (m *countingMetrics) BookingCreated(serviceID string) {
	m.created[serviceID]++
}

func newUseCase(repo *fakeRepo) (*UseCase, *countingMetrics) {
	m := &countingMetrics{created: make(map[string]int)}
	uc := NewUseCase(repo, fixedTime{now: testNow}, m, logger.NewNop())
	uc.newID = func() string { return "booking-1" }
	return uc, m
}

func validRequest() *Request {
	return &Request{
		LocationID:    "2",
		SlotID:        "2026-10-17_9",
		ServiceID:     "normal",
		CustomerName:  "  Pema  ",
		CustomerPhone: " 9876543210 ",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{slots: slots.Generate(testNow)}
	uc, m := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "Pema", resp.CustomerName)
	assert.Equal(t, "9876543210", resp.CustomerPhone)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Namchi", resp.Location.Name)
	assert.Equal(t, "2026-10-17_9", resp.TimeSlot.ID)
	assert.Equal(t, 1248.0, resp.FuelCharge)
	assert.Equal(t, 1398.0, resp.TotalPrice)
	assert.Equal(t, testNow, resp.CreatedAt)
	assert.Nil(t, resp.Notes)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, "booking-1", repo.saved[0].ID)
	assert.Equal(t, 1, m.created["normal"])
}

func TestExecute_GeneratesUniqueIDs(t *testing.T) {
	repo := &fakeRepo{slots: slots.Generate(testNow)}
	uc := NewUseCase(repo, fixedTime{now: testNow}, nil, logger.NewNop())

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.SlotID = "2026-10-17_10"
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestExecute_Notes(t *testing.T) {
	repo := &fakeRepo{slots: slots.Generate(testNow)}
	uc, _ := newUseCase(repo)

	req := validRequest()
	req.Notes = ptr.Ptr("  gate code 1234 ")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "gate code 1234", *resp.Notes)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{name: "missing location", modify: func(r *Request) { r.LocationID = "" }},
		{name: "missing slot", modify: func(r *Request) { r.SlotID = " " }},
		{name: "missing service", modify: func(r *Request) { r.ServiceID = "" }},
		{name: "blank name", modify: func(r *Request) { r.CustomerName = "   " }},
		{name: "blank phone", modify: func(r *Request) { r.CustomerPhone = "" }},
		{name: "notes too long", modify: func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("a", 501)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{slots: slots.Generate(testNow)}
			uc, m := newUseCase(repo)

			req := validRequest()
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.saved)
			assert.Empty(t, m.created)
		})
	}
}

func TestExecute_NotesAtLimit(t *testing.T) {
	repo := &fakeRepo{slots: slots.Generate(testNow)}
	uc, _ := newUseCase(repo)

	req := validRequest()
	req.Notes = ptr.Ptr(strings.Repeat("ä", domain.MaxNotesLength))

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_UnknownReferences(t *testing.T) {
	repo := &fakeRepo{slots: slots.Generate(testNow)}
	uc, _ := newUseCase(repo)

	req := validRequest()
	req.LocationID = "99"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrLocationNotFound)

	req = validRequest()
	req.ServiceID = "deluxe"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	req = validRequest()
	req.SlotID = "2026-12-01_9"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	assert.Empty(t, repo.saved)
}

func TestExecute_SlotNotSelectable(t *testing.T) {
	generated := slots.Generate(testNow)
	generated[0].IsAvailable = false
	generated[0].IsBooked = true
	generated[1].IsAvailable = false

	repo := &fakeRepo{slots: generated}
	uc, _ := newUseCase(repo)

	for _, id := range []string{generated[0].ID, generated[1].ID} {
		req := validRequest()
		req.SlotID = id
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable, id)
	}
	assert.Empty(t, repo.saved)
}

func TestExecute_StorageFailure(t *testing.T) {
	repoErr := errors.New("booking.repository: storage error")
	repo := &fakeRepo{slots: slots.Generate(testNow), saveErr: repoErr}
	uc, m := newUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStorage)
	assert.Empty(t, m.created)
}

func TestExecute_SlotTakenBetweenCheckAndSave(t *testing.T) {
	repoErr := fmt.Errorf("%w: SaveBooking - slot id=2026-10-17_9", bookingRepo.ErrSlotNotAvailable)
	repo := &fakeRepo{slots: slots.Generate(testNow), saveErr: repoErr}
	uc, m := newUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NotErrorIs(t, err, ErrStorage)
	assert.Empty(t, m.created)
}

// barrierRepo задерживает каждый ListTimeSlots, пока все параллельные запросы не прочитают слоты
type barrierRepo struct {
	*bookingRepo.Repository
	arrived *sync.WaitGroup
}

func (r *barrierRepo) ListTimeSlots(ctx context.Context) []domain.TimeSlot {
	list := r.Repository.ListTimeSlots(ctx)
	r.arrived.Done()
	r.arrived.Wait()
	return list
}

func TestExecute_ConcurrentBookingsOfSameSlot(t *testing.T) {
	const parallel = 2

	store := memstore.New()
	repository := bookingRepo.NewRepository(store, store, fixedTime{now: testNow}, logger.NewNop())
	// слоты сохраняются до начала гонки
	repository.ListTimeSlots(context.Background())

	arrived := &sync.WaitGroup{}
	arrived.Add(parallel)
	uc := NewUseCase(&barrierRepo{Repository: repository, arrived: arrived}, fixedTime{now: testNow}, nil, logger.NewNop())

	errs := make([]error, parallel)
	var wg sync.WaitGroup
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	}
	assert.Equal(t, 1, succeeded)

	booked := 0
	for _, b := range repository.ListBookings(context.Background()) {
		if b.TimeSlot.ID == "2026-10-17_9" {
			booked++
		}
	}
	assert.Equal(t, 1, booked)
}

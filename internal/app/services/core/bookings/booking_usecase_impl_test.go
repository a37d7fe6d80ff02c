package bookings

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memoryBookingRepository struct {
	mu       sync.Mutex
	bookings []models.Booking
	inserts  int
	// insertErr, when set, is returned by the next Insert.
	insertErr error
}

func (r *memoryBookingRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []models.Booking{}
	for _, booking := range r.bookings {
		if booking.Date == date {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (r *memoryBookingRepository) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []models.Booking{}
	for _, booking := range r.bookings {
		if booking.Patient == patient {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (r *memoryBookingRepository) FindByTreatmentDatePatient(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		booking := r.bookings[i]
		if booking.Treatment == treatment && booking.Date == date && booking.Patient == patient {
			return &booking, nil
		}
	}
	return nil, nil
}

func (r *memoryBookingRepository) FindByTreatmentDateSlot(ctx context.Context, treatment, date, slot string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		booking := r.bookings[i]
		if booking.Treatment == treatment && booking.Date == date && booking.Slot == slot {
			return &booking, nil
		}
	}
	return nil, nil
}

func (r *memoryBookingRepository) Insert(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		err := r.insertErr
		r.insertErr = nil
		return nil, err
	}
	stored := *booking
	stored.ID = primitive.NewObjectID()
	r.bookings = append(r.bookings, stored)
	r.inserts++
	return &stored, nil
}

type stubTreatmentUsecase struct {
	services []models.Service
}

func (s *stubTreatmentUsecase) ListServices(ctx context.Context) (*responses.ServiceList, error) {
	return &responses.ServiceList{Services: s.services}, nil
}

func (s *stubTreatmentUsecase) ListSpecializations(ctx context.Context) ([]responses.Specialization, error) {
	return nil, nil
}

func (s *stubTreatmentUsecase) GetAvailability(ctx context.Context, date string) ([]responses.ServiceWithAvailability, error) {
	return nil, nil
}

func (s *stubTreatmentUsecase) FindServiceByName(ctx context.Context, name string) (*models.Service, error) {
	for i := range s.services {
		if s.services[i].Name == name {
			return &s.services[i], nil
		}
	}
	return nil, nil
}

type memoryLocker struct {
	mu     sync.Mutex
	held   map[string]string
	err    error
	unlock int
}

func newMemoryLocker() *memoryLocker {
	return &memoryLocker{held: map[string]string{}}
}

func (l *memoryLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return false, "", l.err
	}
	if _, ok := l.held[key]; ok {
		return false, "", nil
	}
	value := primitive.NewObjectID().Hex()
	l.held[key] = value
	return true, value, nil
}

func (l *memoryLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == lockValue {
		delete(l.held, key)
		l.unlock++
	}
	return nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []requests.BookingConfirmedMessage
	err      error
}

func (n *recordingNotifier) EnqueueBookingConfirmation(ctx context.Context, message *requests.BookingConfirmedMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, *message)
	return n.err
}

type admissionFixture struct {
	repo       *memoryBookingRepository
	locker     *memoryLocker
	notifier   *recordingNotifier
	dispatcher *NotificationDispatcher
	usecase    contracts.BookingUsecase
}

func newAdmissionFixture(exclusiveSlots bool) *admissionFixture {
	f := &admissionFixture{
		repo:       &memoryBookingRepository{},
		locker:     newMemoryLocker(),
		notifier:   &recordingNotifier{},
		dispatcher: NewNotificationDispatcher(),
	}
	treatments := &stubTreatmentUsecase{services: []models.Service{
		{Name: "Cleaning", Slots: []string{"09:00", "10:00", "11:00", "Evening session"}},
		{Name: "Whitening", Slots: []string{"10:00"}},
	}}
	f.usecase = NewBookingUsecase(f.repo, treatments, f.locker, f.notifier, f.dispatcher, config.AppBooking{
		ExclusiveSlots:            exclusiveSlots,
		LockExpiryInSeconds:       10,
		NotificationTimeoutInSecs: 1,
	}, zap.NewNop())
	return f
}

func (f *admissionFixture) drain(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.dispatcher.Wait(ctx))
}

func candidate(patient, slot string) *requests.CreateBooking {
	return &requests.CreateBooking{
		Patient:     patient,
		PatientName: "Patient " + patient,
		Treatment:   "Cleaning",
		Date:        "2024-01-01",
		Slot:        slot,
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func TestAdmitBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("First Accepted Then Same Triple Refused With Original", func(t *testing.T) {
		f := newAdmissionFixture(false)

		first, err := f.usecase.AdmitBooking(ctx, candidate("a@x.com", "10:00"))
		require.NoError(t, err)
		require.True(t, first.Accepted)
		require.NotNil(t, first.Stored)
		assert.Nil(t, first.Existing)

		second, err := f.usecase.AdmitBooking(ctx, candidate("a@x.com", "11:00"))
		require.NoError(t, err)
		assert.False(t, second.Accepted)
		require.NotNil(t, second.Existing)
		assert.Equal(t, first.Stored.ID, second.Existing.ID)
		assert.Equal(t, "10:00", second.Existing.Slot)
		assert.Equal(t, 1, f.repo.inserts, "a refused admission must not write")

		f.drain(t)
		assert.Len(t, f.notifier.messages, 1, "only the accepted booking is notified")
		assert.Empty(t, f.locker.held, "locks must be released")
	})

	t.Run("Same Patient Other Date Or Treatment Is Accepted", func(t *testing.T) {
		f := newAdmissionFixture(false)

		_, err := f.usecase.AdmitBooking(ctx, candidate("a@x.com", "10:00"))
		require.NoError(t, err)

		otherDate := candidate("a@x.com", "10:00")
		otherDate.Date = "2024-01-02"
		result, err := f.usecase.AdmitBooking(ctx, otherDate)
		require.NoError(t, err)
		assert.True(t, result.Accepted)

		otherTreatment := candidate("a@x.com", "10:00")
		otherTreatment.Treatment = "Whitening"
		result, err = f.usecase.AdmitBooking(ctx, otherTreatment)
		require.NoError(t, err)
		assert.True(t, result.Accepted)
	})

	t.Run("Two Patients On One Slot Are Both Admitted By Default", func(t *testing.T) {
		f := newAdmissionFixture(false)

		first, err := f.usecase.AdmitBooking(ctx, candidate("a@x.com", "10:00"))
		require.NoError(t, err)
		second, err := f.usecase.AdmitBooking(ctx, candidate("b@x.com", "10:00"))
		require.NoError(t, err)

		assert.True(t, first.Accepted)
		assert.True(t, second.Accepted, "uniqueness is per patient unless exclusive slots are enabled")
	})

	t.Run("Exclusive Slots Refuse Second Patient", func(t *testing.T) {
		f := newAdmissionFixture(true)

		first, err := f.usecase.AdmitBooking(ctx, candidate("a@x.com", "10:00"))
		require.NoError(t, err)
		second, err := f.usecase.AdmitBooking(ctx, candidate("b@x.com", "10:00"))
		require.NoError(t, err)

		assert.True(t, first.Accepted)
		assert.False(t, second.Accepted)
		assert.Equal(t, "a@x.com", second.Existing.Patient)
		assert.Empty(t, f.locker.held)
	})

	t.Run("Unknown Treatment Or Slot Is Rejected", func(t *testing.T) {
		f := newAdmissionFixture(false)

		unknownTreatment := candidate("a@x.com", "10:00")
		unknownTreatment.Treatment = "Surgery"
		_, err := f.usecase.AdmitBooking(ctx, unknownTreatment)
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))

		_, err = f.usecase.AdmitBooking(ctx, candidate("a@x.com", "12:00"))
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		assert.Zero(t, f.repo.inserts)
	})

	t.Run("Free Form Menu Slot Is Accepted", func(t *testing.T) {
		f := newAdmissionFixture(false)

		result, err := f.usecase.AdmitBooking(ctx, candidate("a@x.com", "Evening session"))
		require.NoError(t, err)
		assert.True(t, result.Accepted)
		assert.Equal(t, "Evening session", result.Stored.Slot)
	})

	t.Run("Invalid Candidate Is Rejected", func(t *testing.T) {
		f := newAdmissionFixture(false)

		_, err := f.usecase.AdmitBooking(ctx, candidate("not-an-email", "10:00"))
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))

		missingDate := candidate("a@x.com", "10:00")
		missingDate.Date = " "
		_, err = f.usecase.AdmitBooking(ctx, missingDate)
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Held Lock Is A Conflict", func(t *testing.T) {
		f := newAdmissionFixture(false)
		f.locker.held[utils.BookingLockKey("Cleaning", "2024-01-01", "a@x.com")] = "other-request"

		_, err := f.usecase.AdmitBooking(ctx, candidate("a@x.com", "10:00"))
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
		assert.Zero(t, f.repo.inserts)
	})

	t.Run("Lock Service Down Still Admits", func(t *testing.T) {
		f := newAdmissionFixture(false)
		f.locker.err = errors.New("redis down")

		result, err := f.usecase.AdmitBooking(ctx, candidate("a@x.com", "10:00"))
		require.NoError(t, err)
		assert.True(t, result.Accepted)
	})

	t.Run("Duplicate Key Race Becomes Soft Refusal", func(t *testing.T) {
		f := newAdmissionFixture(false)
		winner := models.Booking{
			ID:        primitive.NewObjectID(),
			Patient:   "a@x.com",
			Treatment: "Cleaning",
			Date:      "2024-01-01",
			Slot:      "09:00",
		}
		// Another replica inserted between our check and our insert.
		f.repo.insertErr = contracts.ErrDuplicateBooking
		racing := &raceRepository{memoryBookingRepository: f.repo, winner: winner}
		f.usecase.(*bookingUsecase).BookingRepository = racing

		result, err := f.usecase.AdmitBooking(ctx, candidate("a@x.com", "10:00"))
		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Equal(t, winner.ID, result.Existing.ID)
	})

	t.Run("Notifier Failure Keeps Booking Accepted", func(t *testing.T) {
		f := newAdmissionFixture(false)
		f.notifier.err = errors.New("broker unreachable")

		result, err := f.usecase.AdmitBooking(ctx, candidate("a@x.com", "10:00"))
		require.NoError(t, err)
		assert.True(t, result.Accepted)

		f.drain(t)
		require.Len(t, f.notifier.messages, 1)
		assert.Equal(t, result.Stored.ID.Hex(), f.notifier.messages[0].BookingID)

		stored, _ := f.repo.FindByPatient(ctx, "a@x.com")
		assert.Len(t, stored, 1, "write must not be rolled back")
	})

	t.Run("Concurrent Same Triple Admits Exactly One", func(t *testing.T) {
		f := newAdmissionFixture(false)

		var wg sync.WaitGroup
		var mu sync.Mutex
		accepted := 0
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result, err := f.usecase.AdmitBooking(ctx, candidate("a@x.com", "10:00"))
				if err != nil {
					return
				}
				mu.Lock()
				defer mu.Unlock()
				if result.Accepted {
					accepted++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, accepted)
		assert.Equal(t, 1, f.repo.inserts)
	})
}

// raceRepository hides the winner from the first lookup so the insert hits
// the unique index, then reveals it.
type raceRepository struct {
	*memoryBookingRepository
	winner  models.Booking
	lookups int
}

func (r *raceRepository) FindByTreatmentDatePatient(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, nil
	}
	winner := r.winner
	return &winner, nil
}

func TestListBookingsByPatient(t *testing.T) {
	ctx := context.Background()
	f := newAdmissionFixture(false)
	_, err := f.usecase.AdmitBooking(ctx, candidate("a@x.com", "10:00"))
	require.NoError(t, err)

	t.Run("Own Bookings", func(t *testing.T) {
		bookings, err := f.usecase.ListBookingsByPatient(ctx, "a@x.com", "a@x.com")
		require.NoError(t, err)
		assert.Len(t, bookings, 1)
	})

	t.Run("Mixed Case Patient Finds Own Bookings", func(t *testing.T) {
		bookings, err := f.usecase.ListBookingsByPatient(ctx, "a@x.com", " A@X.com ")
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "a@x.com", bookings[0].Patient)
	})

	t.Run("Other Patient Is Forbidden", func(t *testing.T) {
		_, err := f.usecase.ListBookingsByPatient(ctx, "b@x.com", "a@x.com")
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
	})

	t.Run("Missing Patient", func(t *testing.T) {
		_, err := f.usecase.ListBookingsByPatient(ctx, "a@x.com", "")
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})
}

func TestNotificationDispatcherWaitHonoursContext(t *testing.T) {
	dispatcher := NewNotificationDispatcher()
	release := make(chan struct{})
	dispatcher.Submit(func() { <-release })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, dispatcher.Wait(ctx), context.DeadlineExceeded)

	close(release)
	assert.NoError(t, dispatcher.Wait(context.Background()))
}

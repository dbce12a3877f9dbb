package booking

import (
	"context"
	"testing"
	"time"

	"clinicops/internal/domain"
	"clinicops/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindOverlapping(ctx context.Context, kind domain.ResourceKind, resourceID int64, start, end time.Time, excludeID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, kind, resourceID, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Booking, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) HasFutureActiveBookingForRoom(ctx context.Context, roomID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, roomID, now)
	return args.Bool(0), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) SetAvailability(ctx context.Context, id int64, state domain.RoomAvailability) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}

type MockRoster struct {
	mock.Mock
}

func (m *MockRoster) CanWork(ctx context.Context, clinicianID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, clinicianID, start, end)
	return args.Bool(0), args.Error(1)
}

type nopAudit struct{}

func (nopAudit) Record(ctx context.Context, userID int64, action, targetType string, targetID int64, details any) {
}

func ptr[T any](v T) *T { return &v }

func newTestService(bookings *MockBookingRepository, rooms *MockRoomRepository, roster *MockRoster) *Service {
	s := NewService(bookings, rooms, roster, nopAudit{})
	s.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestCreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRoster := new(MockRoster)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	mockRoster.On("CanWork", mock.Anything, int64(7), start, end).Return(true, nil)
	mockRooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3, Availability: domain.RoomAvailable}, nil)
	mockBookings.On("FindOverlapping", mock.Anything, domain.ResourceClinician, int64(7), start, end, int64(0)).Return([]domain.Booking{}, nil)
	mockBookings.On("FindOverlapping", mock.Anything, domain.ResourceRoom, int64(3), start, end, int64(0)).Return([]domain.Booking{}, nil)
	mockBookings.On("FindOverlapping", mock.Anything, domain.ResourcePatient, int64(42), start, end, int64(0)).Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockRooms.On("SetAvailability", mock.Anything, int64(3), domain.RoomOccupied).Return(nil)

	service := newTestService(mockBookings, mockRooms, mockRoster)

	b, err := service.CreateBooking(context.Background(), 1, CreateBookingRequest{
		PatientID:   42,
		ClinicianID: ptr(int64(7)),
		RoomID:      ptr(int64(3)),
		StartTime:   start,
		EndTime:     end,
		Reason:      "Annual check-up",
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, domain.BookingScheduled, b.Status)
	mockRooms.AssertCalled(t, "SetAvailability", mock.Anything, int64(3), domain.RoomOccupied)
}

func TestCreateBooking_ClinicianNotRostered(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRoster := new(MockRoster)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mockRoster.On("CanWork", mock.Anything, int64(7), start, end).Return(false, nil)

	service := newTestService(mockBookings, mockRooms, mockRoster)

	_, err := service.CreateBooking(context.Background(), 1, CreateBookingRequest{
		PatientID:   42,
		ClinicianID: ptr(int64(7)),
		StartTime:   start,
		EndTime:     end,
	})

	assert.ErrorIs(t, err, ErrClinicianNotRostered)
	mockBookings.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_ClinicianConflictStopsEarly(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRoster := new(MockRoster)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mockRoster.On("CanWork", mock.Anything, int64(7), start, end).Return(true, nil)
	mockBookings.On("FindOverlapping", mock.Anything, domain.ResourceClinician, int64(7), start, end, int64(0)).
		Return([]domain.Booking{{ID: 5}}, nil)

	service := newTestService(mockBookings, mockRooms, mockRoster)

	_, err := service.CreateBooking(context.Background(), 1, CreateBookingRequest{
		PatientID:   42,
		ClinicianID: ptr(int64(7)),
		RoomID:      ptr(int64(3)),
		StartTime:   start,
		EndTime:     end,
	})

	assert.ErrorIs(t, err, ErrClinicianBusy)
	// the room and patient axes were never consulted
	mockBookings.AssertNumberOfCalls(t, "FindOverlapping", 1)
	mockRooms.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCreateBooking_RoomConflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRoster := new(MockRoster)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mockRooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3, Availability: domain.RoomAvailable}, nil)
	mockBookings.On("FindOverlapping", mock.Anything, domain.ResourceRoom, int64(3), start, end, int64(0)).
		Return([]domain.Booking{{ID: 5}}, nil)

	service := newTestService(mockBookings, mockRooms, mockRoster)

	_, err := service.CreateBooking(context.Background(), 1, CreateBookingRequest{
		PatientID: 42,
		RoomID:    ptr(int64(3)),
		StartTime: start,
		EndTime:   end,
	})

	assert.ErrorIs(t, err, ErrRoomBusy)
}

func TestCreateBooking_RoomUnderMaintenance(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRoster := new(MockRoster)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	mockRooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3, Availability: domain.RoomUnavailable}, nil)

	service := newTestService(mockBookings, mockRooms, mockRoster)

	_, err := service.CreateBooking(context.Background(), 1, CreateBookingRequest{
		PatientID: 42,
		RoomID:    ptr(int64(3)),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})

	assert.ErrorIs(t, err, ErrRoomBusy)
	mockBookings.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_PatientConflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRoster := new(MockRoster)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mockBookings.On("FindOverlapping", mock.Anything, domain.ResourcePatient, int64(42), start, end, int64(0)).
		Return([]domain.Booking{{ID: 5}}, nil)

	service := newTestService(mockBookings, mockRooms, mockRoster)

	// no clinician, no room: only the patient axis applies
	_, err := service.CreateBooking(context.Background(), 1, CreateBookingRequest{
		PatientID: 42,
		StartTime: start,
		EndTime:   end,
	})

	assert.ErrorIs(t, err, ErrPatientBusy)
}

func TestCreateBooking_ValidationError(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockRoomRepository), new(MockRoster))

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	_, err := service.CreateBooking(context.Background(), 1, CreateBookingRequest{
		PatientID: 42,
		StartTime: start,
		EndTime:   start, // zero-length interval
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateBooking(context.Background(), 1, CreateBookingRequest{
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBooking_ConstraintRaceMapsToConflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRoster := new(MockRoster)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	// application-level checks pass, but a concurrent insert wins the race
	// and the exclusion constraint fires
	mockBookings.On("FindOverlapping", mock.Anything, domain.ResourcePatient, int64(42), start, end, int64(0)).
		Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).
		Return(&repository.DuplicateIntervalError{Kind: domain.ResourcePatient})

	service := newTestService(mockBookings, mockRooms, mockRoster)

	_, err := service.CreateBooking(context.Background(), 1, CreateBookingRequest{
		PatientID: 42,
		StartTime: start,
		EndTime:   end,
	})

	assert.ErrorIs(t, err, ErrPatientBusy)
}

func TestUpdateBooking_FieldOnlyEditSkipsChecks(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRoster := new(MockRoster)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	current := &domain.Booking{ID: 10, PatientID: 42, StartTime: start, EndTime: start.Add(time.Hour), Status: domain.BookingScheduled}
	updated := *current
	updated.Diagnosis = "Seasonal rhinitis"

	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(current, nil)
	mockBookings.On("Update", mock.Anything, int64(10), map[string]any{"diagnosis": "Seasonal rhinitis"}).Return(&updated, nil)

	service := newTestService(mockBookings, mockRooms, mockRoster)

	b, err := service.UpdateBooking(context.Background(), 1, 10, UpdateBookingRequest{Diagnosis: ptr("Seasonal rhinitis")})

	assert.NoError(t, err)
	assert.Equal(t, "Seasonal rhinitis", b.Diagnosis)
	mockBookings.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRoster.AssertNotCalled(t, "CanWork", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBooking_TimeChangeRechecksExcludingSelf(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRoster := new(MockRoster)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	newStart := start.Add(2 * time.Hour)
	newEnd := newStart.Add(time.Hour)

	current := &domain.Booking{
		ID: 10, PatientID: 42, ClinicianID: ptr(int64(7)),
		StartTime: start, EndTime: start.Add(time.Hour), Status: domain.BookingScheduled,
	}
	updated := *current
	updated.StartTime, updated.EndTime = newStart, newEnd

	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(current, nil)
	mockRoster.On("CanWork", mock.Anything, int64(7), newStart, newEnd).Return(true, nil)
	mockBookings.On("FindOverlapping", mock.Anything, domain.ResourceClinician, int64(7), newStart, newEnd, int64(10)).Return([]domain.Booking{}, nil)
	mockBookings.On("FindOverlapping", mock.Anything, domain.ResourcePatient, int64(42), newStart, newEnd, int64(10)).Return([]domain.Booking{}, nil)
	mockBookings.On("Update", mock.Anything, int64(10), mock.Anything).Return(&updated, nil)

	service := newTestService(mockBookings, mockRooms, mockRoster)

	b, err := service.UpdateBooking(context.Background(), 1, 10, UpdateBookingRequest{
		StartTime: &newStart,
		EndTime:   &newEnd,
	})

	assert.NoError(t, err)
	assert.Equal(t, newStart, b.StartTime)
	mockBookings.AssertExpectations(t)
}

func TestUpdateBooking_TerminalStatusRejected(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	current := &domain.Booking{ID: 10, PatientID: 42, Status: domain.BookingCompleted,
		StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)}
	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(current, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRoster))

	_, err := service.UpdateBooking(context.Background(), 1, 10, UpdateBookingRequest{Status: ptr("scheduled")})
	assert.ErrorIs(t, err, ErrStatusTransition)
	mockBookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBooking_DimensionChangeOnTerminalBookingRejected(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRoster := new(MockRoster)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	newStart := start.Add(2 * time.Hour)
	newEnd := newStart.Add(time.Hour)

	for _, status := range []domain.BookingStatus{domain.BookingCancelled, domain.BookingCompleted} {
		current := &domain.Booking{
			ID: 10, PatientID: 42, ClinicianID: ptr(int64(7)),
			StartTime: start, EndTime: start.Add(time.Hour), Status: status,
		}
		mockBookings.On("GetByID", mock.Anything, int64(10)).Return(current, nil).Once()

		service := newTestService(mockBookings, new(MockRoomRepository), mockRoster)

		_, err := service.UpdateBooking(context.Background(), 1, 10, UpdateBookingRequest{
			StartTime: &newStart,
			EndTime:   &newEnd,
		})
		assert.ErrorIs(t, err, ErrStatusTransition, "status %s must not accept a reschedule", status)
	}
	mockBookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	mockRoster.AssertNotCalled(t, "CanWork", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBooking_OutcomeEditOnCompletedBookingAllowed(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	current := &domain.Booking{ID: 10, PatientID: 42, StartTime: start, EndTime: start.Add(time.Hour), Status: domain.BookingCompleted}
	updated := *current
	updated.Prescription = "amoxicillin 500mg"

	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(current, nil)
	mockBookings.On("Update", mock.Anything, int64(10), map[string]any{"prescription": "amoxicillin 500mg"}).Return(&updated, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRoster))

	b, err := service.UpdateBooking(context.Background(), 1, 10, UpdateBookingRequest{Prescription: ptr("amoxicillin 500mg")})

	assert.NoError(t, err)
	assert.Equal(t, "amoxicillin 500mg", b.Prescription)
}

func TestUpdateBooking_ClearRoomFreesRoom(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	current := &domain.Booking{
		ID: 10, PatientID: 42, RoomID: ptr(int64(3)),
		StartTime: start, EndTime: start.Add(time.Hour), Status: domain.BookingScheduled,
	}
	updated := *current
	updated.RoomID = nil

	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(current, nil)
	// only the patient axis is re-checked: the room is being released, not claimed
	mockBookings.On("FindOverlapping", mock.Anything, domain.ResourcePatient, int64(42), start, start.Add(time.Hour), int64(10)).
		Return([]domain.Booking{}, nil)
	mockBookings.On("Update", mock.Anything, int64(10), map[string]any{"room_id": nil}).Return(&updated, nil)
	mockBookings.On("HasFutureActiveBookingForRoom", mock.Anything, int64(3), mock.Anything).Return(false, nil)
	mockRooms.On("SetAvailability", mock.Anything, int64(3), domain.RoomAvailable).Return(nil)

	service := newTestService(mockBookings, mockRooms, new(MockRoster))

	b, err := service.UpdateBooking(context.Background(), 1, 10, UpdateBookingRequest{ClearRoom: true})

	assert.NoError(t, err)
	assert.Nil(t, b.RoomID)
	mockRooms.AssertCalled(t, "SetAvailability", mock.Anything, int64(3), domain.RoomAvailable)
	mockRooms.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateBooking_ClearAndSetSameResourceRejected(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID: 10, PatientID: 42, StartTime: start, EndTime: start.Add(time.Hour), Status: domain.BookingScheduled,
	}, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRoster))

	_, err := service.UpdateBooking(context.Background(), 1, 10, UpdateBookingRequest{
		ClearRoom: true,
		RoomID:    ptr(int64(3)),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRoster))

	_, err := service.UpdateBooking(context.Background(), 1, 77, UpdateBookingRequest{Reason: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking_FreesIdleRoom(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	current := &domain.Booking{ID: 10, PatientID: 42, RoomID: ptr(int64(3)), Status: domain.BookingScheduled,
		StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)}
	cancelled := *current
	cancelled.Status = domain.BookingCancelled

	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(current, nil)
	mockBookings.On("Update", mock.Anything, int64(10), map[string]any{"status": "cancelled"}).Return(&cancelled, nil)
	mockBookings.On("HasFutureActiveBookingForRoom", mock.Anything, int64(3), mock.Anything).Return(false, nil)
	mockRooms.On("SetAvailability", mock.Anything, int64(3), domain.RoomAvailable).Return(nil)

	service := newTestService(mockBookings, mockRooms, new(MockRoster))

	err := service.CancelBooking(context.Background(), 1, 10)

	assert.NoError(t, err)
	mockRooms.AssertCalled(t, "SetAvailability", mock.Anything, int64(3), domain.RoomAvailable)
}

func TestCancelBooking_RoomStillHeldByOtherBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	current := &domain.Booking{ID: 10, PatientID: 42, RoomID: ptr(int64(3)), Status: domain.BookingScheduled,
		StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)}
	cancelled := *current
	cancelled.Status = domain.BookingCancelled

	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(current, nil)
	mockBookings.On("Update", mock.Anything, int64(10), mock.Anything).Return(&cancelled, nil)
	mockBookings.On("HasFutureActiveBookingForRoom", mock.Anything, int64(3), mock.Anything).Return(true, nil)

	service := newTestService(mockBookings, mockRooms, new(MockRoster))

	err := service.CancelBooking(context.Background(), 1, 10)

	assert.NoError(t, err)
	mockRooms.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking_Idempotent(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	current := &domain.Booking{ID: 10, PatientID: 42, Status: domain.BookingCancelled,
		StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)}
	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(current, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRoster))

	err := service.CancelBooking(context.Background(), 1, 10)

	assert.NoError(t, err)
	mockBookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking_CompletedIsTerminal(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	current := &domain.Booking{ID: 10, PatientID: 42, Status: domain.BookingCompleted,
		StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)}
	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(current, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRoster))

	err := service.CancelBooking(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrStatusTransition)
}

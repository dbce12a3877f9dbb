package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicops/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockClinicianStore struct {
	mock.Mock
}

func (m *MockClinicianStore) Create(ctx context.Context, c *domain.Clinician) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClinicianStore) GetByID(ctx context.Context, id int64) (*domain.Clinician, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Clinician), args.Error(1)
}

func (m *MockClinicianStore) List(ctx context.Context) ([]domain.Clinician, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Clinician), args.Error(1)
}

func (m *MockClinicianStore) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Clinician, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Clinician), args.Error(1)
}

type MockPatientStore struct {
	mock.Mock
}

func (m *MockPatientStore) Create(ctx context.Context, p *domain.Patient) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPatientStore) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patient), args.Error(1)
}

func (m *MockPatientStore) List(ctx context.Context) ([]domain.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Patient), args.Error(1)
}

type MockRoomStore struct {
	mock.Mock
}

func (m *MockRoomStore) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomStore) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomStore) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomStore) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Room, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type nopAudit struct{}

func (nopAudit) Record(ctx context.Context, userID int64, action, targetType string, targetID int64, details any) {
}

func newTestRouter(rooms *MockRoomStore, clinicians *MockClinicianStore, patients *MockPatientStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := NewService(clinicians, patients, rooms, nopAudit{})
	handler := NewHandler(service)

	r := gin.New()
	handler.RegisterPublicRoutes(r.Group("/"))
	return r
}

func TestListRooms_ReturnsAllRooms(t *testing.T) {
	rooms := new(MockRoomStore)
	rooms.On("List", mock.Anything).Return([]domain.Room{
		{ID: 1, Number: "101", RoomType: domain.RoomConsultation, Availability: domain.RoomAvailable},
		{ID: 2, Number: "201", RoomType: domain.RoomProcedure, Availability: domain.RoomUnavailable},
	}, nil)

	router := newTestRouter(rooms, new(MockClinicianStore), new(MockPatientStore))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"101"`)
	assert.Contains(t, w.Body.String(), `"201"`)
}

func TestListClinicians_ReturnsDirectory(t *testing.T) {
	clinicians := new(MockClinicianStore)
	clinicians.On("List", mock.Anything).Return([]domain.Clinician{
		{ID: 7, FirstName: "Grace", LastName: "Obi", Specialty: "Pediatrics"},
	}, nil)

	router := newTestRouter(new(MockRoomStore), clinicians, new(MockPatientStore))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/clinicians", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Grace"`)
}

func TestGetRoom_NotFound(t *testing.T) {
	rooms := new(MockRoomStore)
	rooms.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	router := newTestRouter(rooms, new(MockClinicianStore), new(MockPatientStore))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"NOT_FOUND"`)
}

package gym

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Gym, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Gym), args.Error(1)
}

func (m *MockRepository) UpdateSettings(ctx context.Context, id int, req UpdateSettingsRequest) (*Gym, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepository) ToggleActive(ctx context.Context, id int) (*Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func validSettings() UpdateSettingsRequest {
	return UpdateSettingsRequest{
		Name:            "Iron Temple",
		Address:         "12 Main St",
		Phone:           "555-0101",
		Email:           "iron@example.com",
		UPIID:           "iron@upi",
		MonthlyFeeCents: 4999,
	}
}

func TestValidateSettings(t *testing.T) {
	assert.Empty(t, ValidateSettings(validSettings()))
}

func TestValidateSettings_BlankFields(t *testing.T) {
	req := validSettings()
	req.Name = "   "
	req.Phone = ""

	fields := ValidateSettings(req)
	require.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "phone", fields[1].Field)
}

func TestValidateSettings_NonPositiveFee(t *testing.T) {
	req := validSettings()
	req.MonthlyFeeCents = 0
	fields := ValidateSettings(req)
	require.Len(t, fields, 1)
	assert.Equal(t, "monthly_fee_cents", fields[0].Field)

	req.MonthlyFeeCents = -100
	assert.Len(t, ValidateSettings(req), 1)
}

func TestService_UpdateSettings(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	req := validSettings()
	req.Name = "  Iron Temple  "

	trimmed := validSettings()

	mockRepo.On("GetByID", mock.Anything, 1).Return(&Gym{ID: 1}, nil)
	mockRepo.On("UpdateSettings", mock.Anything, 1, trimmed).Return(&Gym{
		ID:              1,
		Name:            "Iron Temple",
		MonthlyFeeCents: 4999,
	}, nil)

	gym, err := service.UpdateSettings(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, "Iron Temple", gym.Name)
	mockRepo.AssertExpectations(t)
}

func TestService_UpdateSettings_Invalid(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	req := validSettings()
	req.Email = ""

	_, err := service.UpdateSettings(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrInvalidSettings)
	mockRepo.AssertNotCalled(t, "UpdateSettings", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateSettings_GymNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, 99).Return(nil, errors.New("no rows"))

	_, err := service.UpdateSettings(context.Background(), 99, validSettings())
	assert.ErrorIs(t, err, ErrGymNotFound)
}

func TestService_ToggleActive(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, 1).Return(&Gym{ID: 1, IsActive: true}, nil)
	mockRepo.On("ToggleActive", mock.Anything, 1).Return(&Gym{ID: 1, IsActive: false}, nil)

	gym, err := service.ToggleActive(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, gym.IsActive)
	mockRepo.AssertExpectations(t)
}

// Toggling twice lands back on the original flag.
func TestService_ToggleActive_RoundTrip(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, 1).Return(&Gym{ID: 1, IsActive: true}, nil)
	mockRepo.On("ToggleActive", mock.Anything, 1).Return(&Gym{ID: 1, IsActive: false}, nil).Once()
	mockRepo.On("ToggleActive", mock.Anything, 1).Return(&Gym{ID: 1, IsActive: true}, nil).Once()

	first, err := service.ToggleActive(context.Background(), 1)
	require.NoError(t, err)
	second, err := service.ToggleActive(context.Background(), 1)
	require.NoError(t, err)

	assert.False(t, first.IsActive)
	assert.True(t, second.IsActive)
}

func TestService_ToggleActive_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, 99).Return(nil, errors.New("no rows"))

	_, err := service.ToggleActive(context.Background(), 99)
	assert.ErrorIs(t, err, ErrGymNotFound)
	mockRepo.AssertNotCalled(t, "ToggleActive", mock.Anything, mock.Anything)
}

func TestService_GetByID_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, 5).Return(nil, errors.New("no rows"))

	_, err := service.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrGymNotFound)
}

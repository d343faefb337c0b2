package enrollment

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Sumit-51/FITCORE/internal/gym"
	"github.com/Sumit-51/FITCORE/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, e Enrollment) (*Enrollment, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Enrollment), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Enrollment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Enrollment), args.Error(1)
}

func (m *MockRepository) ListByGym(ctx context.Context, gymID int) ([]Enrollment, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Enrollment), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int) ([]Enrollment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Enrollment), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]Enrollment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Enrollment), args.Error(1)
}

func (m *MockRepository) HasOpenEnrollment(ctx context.Context, userID, gymID int) (bool, error) {
	args := m.Called(ctx, userID, gymID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) PersistDecision(ctx context.Context, decided Enrollment) (*Enrollment, error) {
	args := m.Called(ctx, decided)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Enrollment), args.Error(1)
}

// MockGymRepository is a mock implementation of gym.Repository
type MockGymRepository struct {
	mock.Mock
}

func (m *MockGymRepository) GetByID(ctx context.Context, id int) (*gym.Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gym.Gym), args.Error(1)
}

func (m *MockGymRepository) GetAll(ctx context.Context) ([]gym.Gym, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gym.Gym), args.Error(1)
}

func (m *MockGymRepository) UpdateSettings(ctx context.Context, id int, req gym.UpdateSettingsRequest) (*gym.Gym, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gym.Gym), args.Error(1)
}

func (m *MockGymRepository) ToggleActive(ctx context.Context, id int) (*gym.Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gym.Gym), args.Error(1)
}

// MockAdminDirectory is a mock implementation of AdminDirectory
type MockAdminDirectory struct {
	mock.Mock
}

func (m *MockAdminDirectory) CountGymAdmins(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) EnrollmentReceived(ctx context.Context, to, name, gymName string) error {
	args := m.Called(ctx, to, name, gymName)
	return args.Error(0)
}

func (m *MockNotifier) EnrollmentDecision(ctx context.Context, to, name, gymName, decision string) error {
	args := m.Called(ctx, to, name, gymName, decision)
	return args.Error(0)
}

func newTestService(repo Repository, gymRepo gym.Repository, admins AdminDirectory, notifier Notifier, now time.Time) Service {
	svc := NewService(repo, gymRepo, admins, notifier).(*service)
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_Enroll(t *testing.T) {
	repo := new(MockRepository)
	gymRepo := new(MockGymRepository)
	notifier := new(MockNotifier)

	activeGym := &gym.Gym{ID: 1, Name: "Iron Temple", IsActive: true, MonthlyFeeCents: 4999}
	gymRepo.On("GetByID", mock.Anything, 1).Return(activeGym, nil)
	repo.On("HasOpenEnrollment", mock.Anything, 2, 1).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e Enrollment) bool {
		return e.GymID == 1 && e.UserID == 2 && e.Status == StatusPending && e.AmountCents == 4999
	})).Return(&Enrollment{ID: 10, GymID: 1, UserID: 2, Status: StatusPending, AmountCents: 4999}, nil)
	notifier.On("EnrollmentReceived", mock.Anything, "asha@example.com", "Asha", "Iron Temple").Return(nil)

	svc := newTestService(repo, gymRepo, nil, notifier, time.Now())

	created, err := svc.Enroll(context.Background(), 2, "Asha", "asha@example.com", EnrollRequest{
		GymID:         1,
		PaymentMethod: "offline",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)

	repo.AssertExpectations(t)
	gymRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestService_Enroll_InactiveGym(t *testing.T) {
	repo := new(MockRepository)
	gymRepo := new(MockGymRepository)

	gymRepo.On("GetByID", mock.Anything, 1).Return(&gym.Gym{ID: 1, IsActive: false}, nil)

	svc := newTestService(repo, gymRepo, nil, new(MockNotifier), time.Now())

	_, err := svc.Enroll(context.Background(), 2, "Asha", "asha@example.com", EnrollRequest{
		GymID:         1,
		PaymentMethod: "offline",
	})
	assert.ErrorIs(t, err, ErrGymInactive)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Enroll_GymNotFound(t *testing.T) {
	gymRepo := new(MockGymRepository)
	gymRepo.On("GetByID", mock.Anything, 99).Return(nil, errors.New("sql: no rows in result set"))

	svc := newTestService(new(MockRepository), gymRepo, nil, new(MockNotifier), time.Now())

	_, err := svc.Enroll(context.Background(), 2, "Asha", "asha@example.com", EnrollRequest{
		GymID:         99,
		PaymentMethod: "offline",
	})
	assert.ErrorIs(t, err, gym.ErrGymNotFound)
}

func TestService_Enroll_OnlineNeedsTransaction(t *testing.T) {
	gymRepo := new(MockGymRepository)
	gymRepo.On("GetByID", mock.Anything, 1).Return(&gym.Gym{ID: 1, IsActive: true}, nil)

	svc := newTestService(new(MockRepository), gymRepo, nil, new(MockNotifier), time.Now())

	_, err := svc.Enroll(context.Background(), 2, "Asha", "asha@example.com", EnrollRequest{
		GymID:         1,
		PaymentMethod: "online",
	})
	assert.ErrorIs(t, err, ErrMissingTransaction)

	empty := ""
	_, err = svc.Enroll(context.Background(), 2, "Asha", "asha@example.com", EnrollRequest{
		GymID:         1,
		PaymentMethod: "online",
		TransactionID: &empty,
	})
	assert.ErrorIs(t, err, ErrMissingTransaction)
}

func TestService_Enroll_Duplicate(t *testing.T) {
	repo := new(MockRepository)
	gymRepo := new(MockGymRepository)

	gymRepo.On("GetByID", mock.Anything, 1).Return(&gym.Gym{ID: 1, IsActive: true}, nil)
	repo.On("HasOpenEnrollment", mock.Anything, 2, 1).Return(true, nil)

	svc := newTestService(repo, gymRepo, nil, new(MockNotifier), time.Now())

	_, err := svc.Enroll(context.Background(), 2, "Asha", "asha@example.com", EnrollRequest{
		GymID:         1,
		PaymentMethod: "offline",
	})
	assert.ErrorIs(t, err, ErrDuplicateEnrollment)
}

func TestService_Enroll_EmailFailureIsNotFatal(t *testing.T) {
	repo := new(MockRepository)
	gymRepo := new(MockGymRepository)
	notifier := new(MockNotifier)

	gymRepo.On("GetByID", mock.Anything, 1).Return(&gym.Gym{ID: 1, Name: "Iron Temple", IsActive: true}, nil)
	repo.On("HasOpenEnrollment", mock.Anything, 2, 1).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(&Enrollment{ID: 10}, nil)
	notifier.On("EnrollmentReceived", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("redis down"))

	svc := newTestService(repo, gymRepo, nil, notifier, time.Now())

	created, err := svc.Enroll(context.Background(), 2, "Asha", "asha@example.com", EnrollRequest{
		GymID:         1,
		PaymentMethod: "offline",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)
}

func TestService_ListForGym_StatusFilter(t *testing.T) {
	repo := new(MockRepository)

	now := time.Now()
	repo.On("ListByGym", mock.Anything, 1).Return([]Enrollment{
		mkEnrollment(1, StatusPending, 100, now),
		mkEnrollment(2, StatusApproved, 200, now),
		mkEnrollment(3, StatusRejected, 300, now),
	}, nil)

	svc := newTestService(repo, new(MockGymRepository), nil, new(MockNotifier), now)

	all, err := svc.ListForGym(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := svc.ListForGym(context.Background(), 1, StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].ID)

	approved, err := svc.ListForGym(context.Background(), 1, StatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, 2, approved[0].ID)
}

func TestService_Decide(t *testing.T) {
	repo := new(MockRepository)
	gymRepo := new(MockGymRepository)
	notifier := new(MockNotifier)

	decidedAt := time.Date(2025, time.July, 2, 10, 0, 0, 0, time.UTC)
	pending := &Enrollment{
		ID:        1,
		GymID:     3,
		UserID:    2,
		UserName:  "Asha",
		UserEmail: "asha@example.com",
		Status:    StatusPending,
	}

	repo.On("GetByID", mock.Anything, 1).Return(pending, nil)
	repo.On("PersistDecision", mock.Anything, mock.MatchedBy(func(e Enrollment) bool {
		return e.ID == 1 && e.Status == StatusApproved &&
			e.VerifiedBy != nil && *e.VerifiedBy == 7 &&
			e.VerifiedAt != nil && e.VerifiedAt.Equal(decidedAt)
	})).Return(&Enrollment{
		ID: 1, GymID: 3, UserID: 2, UserName: "Asha", UserEmail: "asha@example.com",
		Status: StatusApproved, VerifiedAt: &decidedAt,
	}, nil)
	gymRepo.On("GetByID", mock.Anything, 3).Return(&gym.Gym{ID: 3, Name: "Iron Temple"}, nil)
	notifier.On("EnrollmentDecision", mock.Anything, "asha@example.com", "Asha", "Iron Temple", "approved").Return(nil)

	svc := newTestService(repo, gymRepo, nil, notifier, decidedAt)

	updated, err := svc.Decide(context.Background(), 1, DecisionApproved, 7)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, updated.Status)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestService_Decide_AlreadyDecided(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetByID", mock.Anything, 1).Return(&Enrollment{ID: 1, Status: StatusApproved}, nil)

	svc := newTestService(repo, new(MockGymRepository), nil, new(MockNotifier), time.Now())

	_, err := svc.Decide(context.Background(), 1, DecisionRejected, 7)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	repo.AssertNotCalled(t, "PersistDecision", mock.Anything, mock.Anything)
}

func TestService_Decide_NotFound(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetByID", mock.Anything, 99).Return(nil, ErrEnrollmentNotFound)

	svc := newTestService(repo, new(MockGymRepository), nil, new(MockNotifier), time.Now())

	_, err := svc.Decide(context.Background(), 99, DecisionApproved, 7)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestService_GymDashboard(t *testing.T) {
	repo := new(MockRepository)
	gymRepo := new(MockGymRepository)

	now := time.Now()
	gymRepo.On("GetByID", mock.Anything, 1).Return(&gym.Gym{ID: 1, Name: "Iron Temple"}, nil)
	repo.On("ListByGym", mock.Anything, 1).Return([]Enrollment{
		mkEnrollment(1, StatusApproved, 1000, now),
		mkEnrollment(2, StatusPending, 1000, now),
	}, nil)

	svc := newTestService(repo, gymRepo, nil, new(MockNotifier), now)

	dashboard, err := svc.GymDashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Iron Temple", dashboard.Gym.Name)
	assert.Equal(t, 2, dashboard.Stats.TotalMembers)
	assert.Equal(t, 1, dashboard.Stats.ActiveMembers)
	assert.Equal(t, 1, dashboard.Stats.PendingRequests)
	assert.Equal(t, int64(1000), dashboard.Stats.MonthlyRevenueCents)
}

func TestService_Overview(t *testing.T) {
	repo := new(MockRepository)
	gymRepo := new(MockGymRepository)
	admins := new(MockAdminDirectory)

	now := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)

	gymRepo.On("GetAll", mock.Anything).Return([]gym.Gym{
		{ID: 1, IsActive: true},
		{ID: 2, IsActive: false},
		{ID: 3, IsActive: true},
	}, nil)
	repo.On("ListAll", mock.Anything).Return([]Enrollment{
		mkEnrollment(1, StatusApproved, 1000, now),
		mkEnrollment(2, StatusApproved, 2000, now.AddDate(0, -1, 0)),
		mkEnrollment(3, StatusPending, 3000, now),
	}, nil)
	admins.On("CountGymAdmins", mock.Anything).Return(2, nil)

	svc := newTestService(repo, gymRepo, admins, new(MockNotifier), now)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, overview.TotalGyms)
	assert.Equal(t, 2, overview.ActiveGyms)
	assert.Equal(t, 2, overview.TotalAdmins)
	assert.Equal(t, 3, overview.TotalEnrollments)
	assert.Equal(t, 1, overview.PendingEnrollments)
	assert.Equal(t, int64(1000), overview.MonthlyRevenueCents)
}

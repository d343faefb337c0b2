package enrollment

import (
	"context"
	"errors"
	"time"

	"github.com/Sumit-51/FITCORE/internal/gym"
	"github.com/Sumit-51/FITCORE/internal/logger"
	"github.com/Sumit-51/FITCORE/internal/metrics"
)

var (
	ErrGymInactive         = errors.New("gym is not accepting enrollments")
	ErrDuplicateEnrollment = errors.New("user already has an open enrollment for this gym")
	ErrMissingTransaction  = errors.New("online payment requires a transaction id")
)

// Notifier queues enrollment emails. Failures are logged, never surfaced to
// the caller: mail is best-effort.
type Notifier interface {
	EnrollmentReceived(ctx context.Context, to, name, gymName string) error
	EnrollmentDecision(ctx context.Context, to, name, gymName, decision string) error
}

// AdminDirectory counts gym admins for the super-admin overview.
type AdminDirectory interface {
	CountGymAdmins(ctx context.Context) (int, error)
}

type Service interface {
	Enroll(ctx context.Context, userID int, userName, userEmail string, req EnrollRequest) (*Enrollment, error)
	MyEnrollments(ctx context.Context, userID int) ([]Enrollment, error)
	ListForGym(ctx context.Context, gymID int, status Status) ([]Enrollment, error)
	Decide(ctx context.Context, enrollmentID int, decision Decision, verifierID int) (*Enrollment, error)
	GymDashboard(ctx context.Context, gymID int) (*DashboardResponse, error)
	Overview(ctx context.Context) (*OverviewResponse, error)
}

type service struct {
	repo     Repository
	gymRepo  gym.Repository
	admins   AdminDirectory
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, gymRepo gym.Repository, admins AdminDirectory, notifier Notifier) Service {
	return &service{
		repo:     repo,
		gymRepo:  gymRepo,
		admins:   admins,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *service) Enroll(ctx context.Context, userID int, userName, userEmail string, req EnrollRequest) (*Enrollment, error) {
	g, err := s.gymRepo.GetByID(ctx, req.GymID)
	if err != nil {
		return nil, gym.ErrGymNotFound
	}
	if !g.IsActive {
		return nil, ErrGymInactive
	}

	if PaymentMethod(req.PaymentMethod) == PaymentOnline &&
		(req.TransactionID == nil || *req.TransactionID == "") {
		return nil, ErrMissingTransaction
	}

	open, err := s.repo.HasOpenEnrollment(ctx, userID, req.GymID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, ErrDuplicateEnrollment
	}

	created, err := s.repo.Create(ctx, Enrollment{
		GymID:         req.GymID,
		UserID:        userID,
		UserName:      userName,
		UserEmail:     userEmail,
		Status:        StatusPending,
		PaymentMethod: PaymentMethod(req.PaymentMethod),
		TransactionID: req.TransactionID,
		AmountCents:   g.MonthlyFeeCents,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordEnrollmentCreated(req.PaymentMethod)

	if err := s.notifier.EnrollmentReceived(ctx, userEmail, userName, g.Name); err != nil {
		logger.Errorf("Failed to queue enrollment-received email for %s: %v", userEmail, err)
	}

	return created, nil
}

func (s *service) MyEnrollments(ctx context.Context, userID int) ([]Enrollment, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListForGym returns a gym's enrollments, newest first, optionally narrowed
// to a single status.
func (s *service) ListForGym(ctx context.Context, gymID int, status Status) ([]Enrollment, error) {
	enrollments, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	if status == "" {
		return enrollments, nil
	}

	pending, approved, rejected := PartitionByStatus(enrollments)
	switch status {
	case StatusPending:
		return pending, nil
	case StatusApproved:
		return approved, nil
	case StatusRejected:
		return rejected, nil
	}
	return enrollments, nil
}

func (s *service) Decide(ctx context.Context, enrollmentID int, decision Decision, verifierID int) (*Enrollment, error) {
	current, err := s.repo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	decided, err := ApplyDecision(*current, decision, verifierID, s.now())
	if err != nil {
		if errors.Is(err, ErrNotPending) {
			return nil, ErrAlreadyDecided
		}
		return nil, err
	}

	persisted, err := s.repo.PersistDecision(ctx, decided)
	if err != nil {
		return nil, err
	}

	metrics.RecordEnrollmentDecision(string(decision))

	gymName := UnknownGymName
	if g, err := s.gymRepo.GetByID(ctx, persisted.GymID); err == nil {
		gymName = g.Name
	}

	if err := s.notifier.EnrollmentDecision(ctx, persisted.UserEmail, persisted.UserName, gymName, string(decision)); err != nil {
		logger.Errorf("Failed to queue decision email for %s: %v", persisted.UserEmail, err)
	}

	return persisted, nil
}

func (s *service) GymDashboard(ctx context.Context, gymID int) (*DashboardResponse, error) {
	g, err := s.gymRepo.GetByID(ctx, gymID)
	if err != nil {
		return nil, gym.ErrGymNotFound
	}

	enrollments, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Gym:   g,
		Stats: ComputeStats(enrollments, s.now()),
	}, nil
}

func (s *service) Overview(ctx context.Context) (*OverviewResponse, error) {
	gyms, err := s.gymRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, g := range gyms {
		if g.IsActive {
			active++
		}
	}

	enrollments, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	pending, _, _ := PartitionByStatus(enrollments)

	adminCount, err := s.admins.CountGymAdmins(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &OverviewResponse{
		TotalGyms:           len(gyms),
		ActiveGyms:          active,
		TotalAdmins:         adminCount,
		TotalEnrollments:    len(enrollments),
		PendingEnrollments:  len(pending),
		MonthlyRevenueCents: MonthlyRevenue(enrollments, now.Month(), now.Year()),
	}, nil
}

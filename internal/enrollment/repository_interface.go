package enrollment

import "context"

type Repository interface {
	Create(ctx context.Context, e Enrollment) (*Enrollment, error)
	GetByID(ctx context.Context, id int) (*Enrollment, error)
	ListByGym(ctx context.Context, gymID int) ([]Enrollment, error)
	ListByUser(ctx context.Context, userID int) ([]Enrollment, error)
	ListAll(ctx context.Context) ([]Enrollment, error)
	HasOpenEnrollment(ctx context.Context, userID, gymID int) (bool, error)
	PersistDecision(ctx context.Context, decided Enrollment) (*Enrollment, error)
}

package gym

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int) (*Gym, error)
	GetAll(ctx context.Context) ([]Gym, error)
	UpdateSettings(ctx context.Context, id int, req UpdateSettingsRequest) (*Gym, error)
	ToggleActive(ctx context.Context, id int) (*Gym, error)
}

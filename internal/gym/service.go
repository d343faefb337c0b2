package gym

import (
	"context"
	"errors"
	"strings"

	"github.com/Sumit-51/FITCORE/internal/api"
	"github.com/Sumit-51/FITCORE/internal/metrics"
)

var (
	ErrGymNotFound     = errors.New("gym not found")
	ErrInvalidSettings = errors.New("invalid gym settings")
)

type Service interface {
	GetByID(ctx context.Context, id int) (*Gym, error)
	GetAll(ctx context.Context) ([]Gym, error)
	UpdateSettings(ctx context.Context, id int, req UpdateSettingsRequest) (*Gym, error)
	ToggleActive(ctx context.Context, id int) (*Gym, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id int) (*Gym, error) {
	gym, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrGymNotFound
	}
	return gym, nil
}

func (s *service) GetAll(ctx context.Context) ([]Gym, error) {
	return s.repo.GetAll(ctx)
}

// ValidateSettings reports field-level problems. It runs before any write so
// a bad form never reaches the store.
func ValidateSettings(req UpdateSettingsRequest) []api.FieldError {
	var fields []api.FieldError

	checks := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"address", req.Address},
		{"phone", req.Phone},
		{"email", req.Email},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			fields = append(fields, api.FieldError{Field: c.field, Message: c.field + " is required"})
		}
	}

	if req.MonthlyFeeCents <= 0 {
		fields = append(fields, api.FieldError{Field: "monthly_fee_cents", Message: "monthly fee must be positive"})
	}

	return fields
}

func (s *service) UpdateSettings(ctx context.Context, id int, req UpdateSettingsRequest) (*Gym, error) {
	if fields := ValidateSettings(req); len(fields) > 0 {
		return nil, ErrInvalidSettings
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, ErrGymNotFound
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	req.UPIID = strings.TrimSpace(req.UPIID)

	return s.repo.UpdateSettings(ctx, id, req)
}

func (s *service) ToggleActive(ctx context.Context, id int) (*Gym, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, ErrGymNotFound
	}

	gym, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.RecordGymStatusToggle()
	return gym, nil
}

package gym

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int) (*Gym, error) {
	query := `
		SELECT id, name, address, phone, email, upi_id, monthly_fee_cents, is_active, created_at
		FROM gyms
		WHERE id = $1
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, id)
	if err != nil {
		return nil, err
	}

	return &gym, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Gym, error) {
	query := `
		SELECT id, name, address, phone, email, upi_id, monthly_fee_cents, is_active, created_at
		FROM gyms
		ORDER BY created_at DESC
	`

	var gyms []Gym
	err := r.db.SelectContext(ctx, &gyms, query)
	if err != nil {
		return nil, err
	}

	return gyms, nil
}

func (r *repository) UpdateSettings(ctx context.Context, id int, req UpdateSettingsRequest) (*Gym, error) {
	query := `
		UPDATE gyms
		SET name = $2, address = $3, phone = $4, email = $5, upi_id = $6, monthly_fee_cents = $7
		WHERE id = $1
		RETURNING id, name, address, phone, email, upi_id, monthly_fee_cents, is_active, created_at
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query,
		id, req.Name, req.Address, req.Phone, req.Email, req.UPIID, req.MonthlyFeeCents)
	if err != nil {
		return nil, err
	}

	return &gym, nil
}

func (r *repository) ToggleActive(ctx context.Context, id int) (*Gym, error) {
	query := `
		UPDATE gyms
		SET is_active = NOT is_active
		WHERE id = $1
		RETURNING id, name, address, phone, email, upi_id, monthly_fee_cents, is_active, created_at
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, id)
	if err != nil {
		return nil, err
	}

	return &gym, nil
}

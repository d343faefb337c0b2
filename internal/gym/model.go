package gym

import "time"

type Gym struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Address         string    `db:"address" json:"address"`
	Phone           string    `db:"phone" json:"phone"`
	Email           string    `db:"email" json:"email"`
	UPIID           string    `db:"upi_id" json:"upi_id"`
	MonthlyFeeCents int64     `db:"monthly_fee_cents" json:"monthly_fee_cents"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type UpdateSettingsRequest struct {
	Name            string `json:"name" binding:"required"`
	Address         string `json:"address" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	UPIID           string `json:"upi_id"`
	MonthlyFeeCents int64  `json:"monthly_fee_cents" binding:"required"`
}

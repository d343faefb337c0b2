package enrollment

import (
	"time"

	"github.com/Sumit-51/FITCORE/internal/gym"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Decision is the subset of statuses an admin may move a pending enrollment to.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

type PaymentMethod string

const (
	PaymentOnline  PaymentMethod = "online"
	PaymentOffline PaymentMethod = "offline"
)

type Enrollment struct {
	ID            int           `db:"id" json:"id"`
	GymID         int           `db:"gym_id" json:"gym_id"`
	UserID        int           `db:"user_id" json:"user_id"`
	UserName      string        `db:"user_name" json:"user_name"`
	UserEmail     string        `db:"user_email" json:"user_email"`
	Status        Status        `db:"status" json:"status"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"payment_method"`
	TransactionID *string       `db:"transaction_id" json:"transaction_id,omitempty"`
	AmountCents   int64         `db:"amount_cents" json:"amount_cents"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	VerifiedAt    *time.Time    `db:"verified_at" json:"verified_at,omitempty"`
	VerifiedBy    *int          `db:"verified_by" json:"verified_by,omitempty"`
}

type EnrollRequest struct {
	GymID         int     `json:"gym_id" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=online offline"`
	TransactionID *string `json:"transaction_id,omitempty"`
}

// Stats is the dashboard tuple derived from a gym's enrollments.
type Stats struct {
	TotalMembers        int   `json:"total_members"`
	ActiveMembers       int   `json:"active_members"`
	PendingRequests     int   `json:"pending_requests"`
	MonthlyRevenueCents int64 `json:"monthly_revenue_cents"`
}

type DashboardResponse struct {
	Gym   *gym.Gym `json:"gym"`
	Stats Stats    `json:"stats"`
}

// OverviewResponse aggregates across every gym for the super admin.
type OverviewResponse struct {
	TotalGyms           int   `json:"total_gyms"`
	ActiveGyms          int   `json:"active_gyms"`
	TotalAdmins         int   `json:"total_admins"`
	TotalEnrollments    int   `json:"total_enrollments"`
	PendingEnrollments  int   `json:"pending_enrollments"`
	MonthlyRevenueCents int64 `json:"monthly_revenue_cents"`
}

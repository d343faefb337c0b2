package enrollment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyDecided     = errors.New("enrollment already decided")
)

const enrollmentColumns = `id, gym_id, user_id, user_name, user_email, status, payment_method, transaction_id, amount_cents, created_at, verified_at, verified_by`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e Enrollment) (*Enrollment, error) {
	query := `
		INSERT INTO enrollments (gym_id, user_id, user_name, user_email, status, payment_method, transaction_id, amount_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + enrollmentColumns

	var created Enrollment
	err := r.db.GetContext(ctx, &created, query,
		e.GymID, e.UserID, e.UserName, e.UserEmail, e.Status, e.PaymentMethod, e.TransactionID, e.AmountCents)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE id = $1`

	var e Enrollment
	err := r.db.GetContext(ctx, &e, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	return &e, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE gym_id = $1 ORDER BY created_at DESC`

	var enrollments []Enrollment
	err := r.db.SelectContext(ctx, &enrollments, query, gymID)
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE user_id = $1 ORDER BY created_at DESC`

	var enrollments []Enrollment
	err := r.db.SelectContext(ctx, &enrollments, query, userID)
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments ORDER BY created_at DESC`

	var enrollments []Enrollment
	err := r.db.SelectContext(ctx, &enrollments, query)
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}

func (r *repository) HasOpenEnrollment(ctx context.Context, userID, gymID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = $1 AND gym_id = $2 AND status IN ('pending', 'approved'))`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, gymID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// PersistDecision writes a decided enrollment and the status mirror on the
// user profile in a single transaction. The status guard in the UPDATE makes
// a racing second decision fail with ErrAlreadyDecided instead of silently
// overwriting the first.
func (r *repository) PersistDecision(ctx context.Context, decided Enrollment) (*Enrollment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		UPDATE enrollments
		SET status = $2, verified_at = $3, verified_by = $4
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + enrollmentColumns

	var updated Enrollment
	err = tx.GetContext(ctx, &updated, query,
		decided.ID, decided.Status, decided.VerifiedAt, decided.VerifiedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			if checkErr := tx.GetContext(ctx, &exists,
				`SELECT EXISTS(SELECT 1 FROM enrollments WHERE id = $1)`, decided.ID); checkErr != nil {
				return nil, checkErr
			}
			if exists {
				return nil, ErrAlreadyDecided
			}
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET enrollment_status = $2 WHERE id = $1`,
		updated.UserID, updated.Status)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &updated, nil
}

package enrollment

import (
	"errors"
	"time"

	"github.com/Sumit-51/FITCORE/internal/gym"
)

var (
	ErrNotPending      = errors.New("enrollment is not pending")
	ErrInvalidDecision = errors.New("invalid decision")
)

// UnknownGymName labels enrollments and admins whose gym reference cannot be
// resolved.
const UnknownGymName = "Unknown Gym"

// PartitionByStatus splits enrollments into pending, approved and rejected
// subsequences, preserving relative order.
func PartitionByStatus(enrollments []Enrollment) (pending, approved, rejected []Enrollment) {
	for _, e := range enrollments {
		switch e.Status {
		case StatusApproved:
			approved = append(approved, e)
		case StatusRejected:
			rejected = append(rejected, e)
		default:
			pending = append(pending, e)
		}
	}
	return pending, approved, rejected
}

// MonthlyRevenue sums the amounts of approved enrollments created in the
// given calendar month. Revenue is recognized on the enrollment date.
func MonthlyRevenue(enrollments []Enrollment, month time.Month, year int) int64 {
	var total int64
	for _, e := range enrollments {
		if e.Status != StatusApproved {
			continue
		}
		if e.CreatedAt.Month() == month && e.CreatedAt.Year() == year {
			total += e.AmountCents
		}
	}
	return total
}

// ApplyDecision returns a copy of e moved to the decided status with the
// verification fields set. Only pending enrollments may be decided; every
// other field is carried over unchanged.
func ApplyDecision(e Enrollment, decision Decision, verifierID int, now time.Time) (Enrollment, error) {
	if !decision.Valid() {
		return Enrollment{}, ErrInvalidDecision
	}
	if e.Status != StatusPending {
		return Enrollment{}, ErrNotPending
	}

	e.Status = Status(decision)
	e.VerifiedAt = &now
	e.VerifiedBy = &verifierID
	return e, nil
}

// GymNameLookup builds a gym id to display name mapping.
func GymNameLookup(gyms []gym.Gym) map[int]string {
	names := make(map[int]string, len(gyms))
	for _, g := range gyms {
		names[g.ID] = g.Name
	}
	return names
}

// LookupGymName resolves a gym reference to its display name, falling back to
// the sentinel for missing or unresolved references.
func LookupGymName(names map[int]string, gymID *int) string {
	if gymID == nil {
		return UnknownGymName
	}
	name, ok := names[*gymID]
	if !ok {
		return UnknownGymName
	}
	return name
}

// ComputeStats derives the dashboard numbers from a gym's enrollments:
// total and approved member counts, open requests, and revenue for the
// calendar month containing now.
func ComputeStats(enrollments []Enrollment, now time.Time) Stats {
	pending, approved, _ := PartitionByStatus(enrollments)

	return Stats{
		TotalMembers:        len(enrollments),
		ActiveMembers:       len(approved),
		PendingRequests:     len(pending),
		MonthlyRevenueCents: MonthlyRevenue(enrollments, now.Month(), now.Year()),
	}
}

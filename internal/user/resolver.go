package user

import (
	"context"

	"github.com/Sumit-51/FITCORE/internal/auth"

	"github.com/gin-gonic/gin"
)

// Resolver bridges JWT claims on the request to the stored profile. Gym and
// enrollment handlers consume it through their own small interfaces, so those
// packages never depend on this one.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// AssignedGymID resolves the acting admin's gym assignment. The assignment
// lives on the user row, not in the token, so a re-assignment takes effect on
// the next request rather than at the next login.
func (r *Resolver) AssignedGymID(c *gin.Context) (int, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return 0, false
	}

	found, err := r.repo.FindByID(c.Request.Context(), userID)
	if err != nil || found.GymID == nil {
		return 0, false
	}

	return *found.GymID, true
}

// Identity returns the acting user's id, display name and email.
func (r *Resolver) Identity(c *gin.Context) (userID int, name, email string, ok bool) {
	userID, ok = auth.GetUserID(c)
	if !ok {
		return 0, "", "", false
	}

	found, err := r.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		return 0, "", "", false
	}

	return found.ID, found.Name, found.Email, true
}

// CountGymAdmins reports how many gym-admin accounts exist.
func (r *Resolver) CountGymAdmins(ctx context.Context) (int, error) {
	admins, err := r.repo.ListByRole(ctx, RoleGymAdmin)
	if err != nil {
		return 0, err
	}
	return len(admins), nil
}

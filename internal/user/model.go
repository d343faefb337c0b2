package user

import "time"

// Role is the closed set of account roles. Role checks go through this type
// and the navigation table below instead of ad-hoc string comparisons.
type Role string

const (
	RoleMember     Role = "member"
	RoleGymAdmin   Role = "gymAdmin"
	RoleSuperAdmin Role = "superAdmin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleGymAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Destination is a navigation target the mobile client can render as a tab.
type Destination string

const (
	DestDashboard Destination = "dashboard"
	DestMembers   Destination = "members"
	DestSettings  Destination = "settings"
	DestOverview  Destination = "overview"
	DestGyms      Destination = "gyms"
	DestAdmins    Destination = "admins"
)

// navDestinations is the capability table: which destinations each role sees.
// The super admin gets the gym-admin surface plus the global tabs.
var navDestinations = map[Role][]Destination{
	RoleMember:     {DestDashboard},
	RoleGymAdmin:   {DestDashboard, DestMembers, DestSettings},
	RoleSuperAdmin: {DestDashboard, DestMembers, DestSettings, DestOverview, DestGyms, DestAdmins},
}

// Navigation returns the destinations visible to a role. Unknown roles see
// nothing.
func Navigation(r Role) []Destination {
	dests, ok := navDestinations[r]
	if !ok {
		return nil
	}
	out := make([]Destination, len(dests))
	copy(out, dests)
	return out
}

type User struct {
	ID               int       `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Email            string    `db:"email" json:"email"`
	PasswordHash     string    `db:"password_hash" json:"-"`
	Role             Role      `db:"role" json:"role"`
	GymID            *int      `db:"gym_id" json:"gym_id,omitempty"`
	EnrollmentStatus *string   `db:"enrollment_status" json:"enrollment_status,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// AdminWithGym is a gym admin joined with the display name of the assigned gym.
type AdminWithGym struct {
	User
	GymName string `json:"gym_name"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type NavigationResponse struct {
	Role         Role          `json:"role"`
	Destinations []Destination `json:"destinations"`
}

type AdminListResponse struct {
	Admins     []AdminWithGym `json:"admins"`
	Assigned   int            `json:"assigned"`
	Unassigned int            `json:"unassigned"`
}

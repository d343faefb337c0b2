package user

import (
	"context"
	"errors"
	"strings"

	"github.com/Sumit-51/FITCORE/internal/auth"
	"github.com/Sumit-51/FITCORE/internal/enrollment"
	"github.com/Sumit-51/FITCORE/internal/gym"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	RefreshToken(refreshToken string) (string, error)
	GetByID(ctx context.Context, id int) (*User, error)
	ListAdmins(ctx context.Context) (*AdminListResponse, error)
}

type service struct {
	repo      Repository
	gymRepo   gym.Repository
	jwtSecret string
}

func NewService(repo Repository, gymRepo gym.Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		gymRepo:   gymRepo,
		jwtSecret: jwtSecret,
	}
}

// Register creates a member account. Gym admins and the super admin are
// provisioned out of band, never through this endpoint.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, strings.TrimSpace(req.Name), email, hash, RoleMember)
	if err != nil {
		return nil, err
	}

	return s.loginResponse(created)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	found, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(found.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.loginResponse(found)
}

func (s *service) loginResponse(u *User) (*LoginResponse, error) {
	accessToken, refreshToken, err := auth.GenerateTokens(u.ID, u.Email, string(u.Role), s.jwtSecret, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *u,
	}, nil
}

func (s *service) RefreshToken(refreshToken string) (string, error) {
	accessToken, _, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", err
	}
	return accessToken, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return found, nil
}

// ListAdmins returns every gym admin with the display name of the assigned
// gym, plus assigned/unassigned counts for the super-admin screen.
func (s *service) ListAdmins(ctx context.Context) (*AdminListResponse, error) {
	admins, err := s.repo.ListByRole(ctx, RoleGymAdmin)
	if err != nil {
		return nil, err
	}

	gyms, err := s.gymRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := enrollment.GymNameLookup(gyms)

	resp := &AdminListResponse{Admins: make([]AdminWithGym, 0, len(admins))}
	for _, a := range admins {
		resp.Admins = append(resp.Admins, AdminWithGym{
			User:    a,
			GymName: enrollment.LookupGymName(names, a.GymID),
		})
		if a.GymID != nil {
			resp.Assigned++
		} else {
			resp.Unassigned++
		}
	}

	return resp, nil
}

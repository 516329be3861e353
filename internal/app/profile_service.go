package app

import (
	"context"
	"strings"

	"github.com/cimillas/event-admin/internal/domain"
)

type ProfileRepository interface {
	CreateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error)
	GetProfile(ctx context.Context, id int64) (domain.Profile, error)
	UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

type ProfileService struct {
	repo ProfileRepository
}

func NewProfileService(repo ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

type ProfileInput struct {
	Name         string
	Email        string
	Organization string
}

func (in ProfileInput) profile() (domain.Profile, error) {
	name, err := requireText("name", in.Name)
	if err != nil {
		return domain.Profile{}, err
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		Name:         name,
		Email:        email,
		Organization: strings.TrimSpace(in.Organization),
	}, nil
}

func (s *ProfileService) CreateProfile(ctx context.Context, in ProfileInput) (domain.Profile, error) {
	p, err := in.profile()
	if err != nil {
		return domain.Profile{}, err
	}
	return s.repo.CreateProfile(ctx, p)
}

func (s *ProfileService) GetProfile(ctx context.Context, id int64) (domain.Profile, error) {
	if err := requireID("profile_id", id); err != nil {
		return domain.Profile{}, err
	}
	return s.repo.GetProfile(ctx, id)
}

// UpdateProfile replaces every field of the profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, id int64, in ProfileInput) (domain.Profile, error) {
	if err := requireID("profile_id", id); err != nil {
		return domain.Profile{}, err
	}
	p, err := in.profile()
	if err != nil {
		return domain.Profile{}, err
	}
	p.ID = id
	return s.repo.UpdateProfile(ctx, p)
}

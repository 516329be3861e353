package app

import (
	"context"
	"testing"

	"github.com/cimillas/event-admin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_CreateProfile_TrimsAndStores(t *testing.T) {
	var stored domain.Profile
	repo := &fakeProfileRepo{
		createFn: func(_ context.Context, p domain.Profile) (domain.Profile, error) {
			stored = p
			p.ID = 7
			return p, nil
		},
	}
	svc := NewProfileService(repo)

	got, err := svc.CreateProfile(context.Background(), ProfileInput{
		Name:         "  Ada  ",
		Email:        " ada@example.com ",
		Organization: " ",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, domain.Profile{Name: "Ada", Email: "ada@example.com"}, stored)
}

func TestProfileService_CreateProfile_Validation(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})

	tests := []struct {
		name  string
		in    ProfileInput
		field string
	}{
		{"missing name", ProfileInput{Name: " ", Email: "a@example.com"}, "name"},
		{"missing email", ProfileInput{Name: "A"}, "email"},
		{"no at sign", ProfileInput{Name: "A", Email: "example.com"}, "email"},
		{"no dot in domain", ProfileInput{Name: "A", Email: "a@localhost"}, "email"},
		{"empty local part", ProfileInput{Name: "A", Email: "@example.com"}, "email"},
		{"two at signs", ProfileInput{Name: "A", Email: "a@b@example.com"}, "email"},
		{"trailing dot", ProfileInput{Name: "A", Email: "a@example."}, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProfile(context.Background(), tt.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestProfileService_CreateProfile_PropagatesDuplicate(t *testing.T) {
	repo := &fakeProfileRepo{
		createFn: func(context.Context, domain.Profile) (domain.Profile, error) {
			return domain.Profile{}, domain.ErrDuplicateEmail
		},
	}
	_, err := NewProfileService(repo).CreateProfile(context.Background(), ProfileInput{Name: "A", Email: "a@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	repo := &fakeProfileRepo{
		updateFn: func(_ context.Context, p domain.Profile) (domain.Profile, error) {
			return p, nil
		},
	}
	svc := NewProfileService(repo)

	got, err := svc.UpdateProfile(context.Background(), 3, ProfileInput{Name: "B", Email: "b@example.com", Organization: "Org"})
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{ID: 3, Name: "B", Email: "b@example.com", Organization: "Org"}, got)

	_, err = svc.UpdateProfile(context.Background(), 0, ProfileInput{Name: "B", Email: "b@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProfileService_GetProfile_RejectsBadID(t *testing.T) {
	_, err := NewProfileService(&fakeProfileRepo{}).GetProfile(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottmc500/ScottLMS/internal/domain"
	"github.com/scottmc500/ScottLMS/internal/repository"
)

func newTestUser(role domain.Role) *domain.User {
	id := uuid.New().String()
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.User{
		ID:             id,
		Email:          id[:8] + "@example.com",
		Username:       "user_" + id[:8],
		FirstName:      "Test",
		LastName:       "User",
		Role:           role,
		Active:         true,
		HashedPassword: "$2a$10$hash",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	for _, eng := range setupEngines(t) {
		repo := eng.store.Users

		t.Run(eng.name+"/create and get", func(t *testing.T) {
			eng.reset(t)

			u := newTestUser(domain.RoleStudent)
			require.NoError(t, repo.Create(ctx, u))

			got, err := repo.GetByID(ctx, u.ID)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, u.Email, got.Email)
			assert.Equal(t, u.Username, got.Username)
			assert.Equal(t, domain.RoleStudent, got.Role)
			assert.True(t, got.Active)
			assert.Equal(t, u.HashedPassword, got.HashedPassword)
			assert.WithinDuration(t, u.CreatedAt, got.CreatedAt, time.Millisecond)

			byEmail, err := repo.GetByEmail(ctx, u.Email)
			require.NoError(t, err)
			require.NotNil(t, byEmail)
			assert.Equal(t, u.ID, byEmail.ID)

			byUsername, err := repo.GetByUsername(ctx, u.Username)
			require.NoError(t, err)
			require.NotNil(t, byUsername)
			assert.Equal(t, u.ID, byUsername.ID)
		})

		t.Run(eng.name+"/missing user returns nil", func(t *testing.T) {
			eng.reset(t)

			got, err := repo.GetByID(ctx, uuid.New().String())
			require.NoError(t, err)
			assert.Nil(t, got)

			got, err = repo.GetByEmail(ctx, "nobody@example.com")
			require.NoError(t, err)
			assert.Nil(t, got)
		})

		t.Run(eng.name+"/duplicate email and username", func(t *testing.T) {
			eng.reset(t)

			first := newTestUser(domain.RoleStudent)
			require.NoError(t, repo.Create(ctx, first))

			sameEmail := newTestUser(domain.RoleStudent)
			sameEmail.Email = first.Email
			assert.ErrorIs(t, repo.Create(ctx, sameEmail), repository.ErrDuplicateEmail)

			sameUsername := newTestUser(domain.RoleStudent)
			sameUsername.Username = first.Username
			assert.ErrorIs(t, repo.Create(ctx, sameUsername), repository.ErrDuplicateUsername)
		})

		t.Run(eng.name+"/update applies only present fields", func(t *testing.T) {
			eng.reset(t)

			u := newTestUser(domain.RoleStudent)
			require.NoError(t, repo.Create(ctx, u))

			first := "Ada"
			inactive := false
			updated, err := repo.Update(ctx, u.ID, domain.UserPatch{FirstName: &first, Active: &inactive})
			require.NoError(t, err)
			require.NotNil(t, updated)
			assert.Equal(t, "Ada", updated.FirstName)
			assert.Equal(t, u.LastName, updated.LastName)
			assert.False(t, updated.Active)
			assert.Equal(t, u.Email, updated.Email)
		})

		t.Run(eng.name+"/update to a taken email", func(t *testing.T) {
			eng.reset(t)

			a := newTestUser(domain.RoleStudent)
			b := newTestUser(domain.RoleStudent)
			require.NoError(t, repo.Create(ctx, a))
			require.NoError(t, repo.Create(ctx, b))

			_, err := repo.Update(ctx, b.ID, domain.UserPatch{Email: &a.Email})
			assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
		})

		t.Run(eng.name+"/update missing user", func(t *testing.T) {
			eng.reset(t)

			name := "x"
			got, err := repo.Update(ctx, uuid.New().String(), domain.UserPatch{FirstName: &name})
			require.NoError(t, err)
			assert.Nil(t, got)
		})

		t.Run(eng.name+"/list filters by role and active", func(t *testing.T) {
			eng.reset(t)

			student := newTestUser(domain.RoleStudent)
			instructor := newTestUser(domain.RoleInstructor)
			inactive := newTestUser(domain.RoleStudent)
			inactive.Active = false
			for _, u := range []*domain.User{student, instructor, inactive} {
				require.NoError(t, repo.Create(ctx, u))
			}

			role := domain.RoleStudent
			active := true
			var ids []string
			err := repo.List(ctx, domain.UserFilter{Role: &role, Active: &active}, domain.DefaultPage(),
				func(u domain.User) error {
					ids = append(ids, u.ID)
					return nil
				})
			require.NoError(t, err)
			assert.Equal(t, []string{student.ID}, ids)
		})

		t.Run(eng.name+"/delete", func(t *testing.T) {
			eng.reset(t)

			u := newTestUser(domain.RoleAdmin)
			require.NoError(t, repo.Create(ctx, u))

			deleted, err := repo.Delete(ctx, u.ID)
			require.NoError(t, err)
			assert.True(t, deleted)

			deleted, err = repo.Delete(ctx, u.ID)
			require.NoError(t, err)
			assert.False(t, deleted)
		})
	}
}

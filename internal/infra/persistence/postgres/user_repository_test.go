package postgres

import (
	"testing"

	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Lifecycle(t *testing.T) {
	f := newRepoFixtures(t)
	tenant := f.tenant(t, "store")

	exists, err := f.users.ExistsSuperAdmin(f.ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	admin := &entity.User{Email: "root@cellcontrol.com", PasswordHash: "hash", Name: "Root", Role: entity.RoleSuperAdmin, Active: true}
	require.NoError(t, f.users.Create(f.ctx, admin))

	operator := &entity.User{Email: "ops@store.com", PasswordHash: "hash", Name: "Ops", Role: entity.RoleTenantAdmin, TenantID: &tenant.ID, Active: true}
	require.NoError(t, f.users.Create(f.ctx, operator))

	exists, err = f.users.ExistsSuperAdmin(f.ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := f.users.FindByEmail(f.ctx, "ops@store.com")
	require.NoError(t, err)
	assert.Equal(t, operator.ID, got.ID)
	assert.Equal(t, entity.RoleTenantAdmin, got.Role)
	require.NotNil(t, got.TenantID)
	assert.Equal(t, tenant.ID, *got.TenantID)

	got.Active = false
	got.Name = "Operator"
	require.NoError(t, f.users.Update(f.ctx, got))

	reloaded, err := f.users.FindByID(f.ctx, operator.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Active)
	assert.Equal(t, "Operator", reloaded.Name)

	users, err := f.users.List(f.ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, f.users.Delete(f.ctx, operator.ID))
	_, err = f.users.FindByID(f.ctx, operator.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.ErrorIs(t, f.users.Delete(f.ctx, operator.ID), repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	f := newRepoFixtures(t)

	first := &entity.User{Email: "a@b.com", PasswordHash: "h", Name: "A", Role: entity.RoleSuperAdmin, Active: true}
	require.NoError(t, f.users.Create(f.ctx, first))

	second := &entity.User{Email: "a@b.com", PasswordHash: "h", Name: "B", Role: entity.RoleSuperAdmin, Active: true}
	assert.ErrorIs(t, f.users.Create(f.ctx, second), repository.ErrDuplicateEmail)
}

func TestUserRepository_UnknownTenant(t *testing.T) {
	f := newRepoFixtures(t)
	missing := uuid.New()

	user := &entity.User{Email: "x@y.com", PasswordHash: "h", Name: "X", Role: entity.RoleTenantAdmin, TenantID: &missing, Active: true}
	assert.ErrorIs(t, f.users.Create(f.ctx, user), repository.ErrTenantNotFound)
}

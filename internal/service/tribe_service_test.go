package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/alexanderramin/taskora/internal/repository"
	"github.com/alexanderramin/taskora/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTribeService_CreateAddsOwner(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	tribe, err := s.tribes.Create(ctx, "  Makers ", "we build", "alice")
	require.NoError(t, err)
	assert.Equal(t, "Makers", tribe.Name)

	members, err := s.tribes.Members(ctx, tribe.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "alice", members[0].UserID)
	assert.Equal(t, domain.RoleOwner, members[0].Role)
}

func TestTribeService_CreateRollsBackOnMemberFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTribeRepo(database)
	uow := &testutil.FailingUoW{DB: database, FailOn: 2, Err: errors.New("disk full")}
	svc := NewTribeService(repo, uow)

	_, err := svc.Create(context.Background(), "Doomed", "", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	tribes, err := repo.ListForUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, tribes)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM tribes`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestTribeService_Join(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	tribe, err := s.tribes.Create(ctx, "Runners", "", "alice")
	require.NoError(t, err)

	m, err := s.tribes.Join(ctx, tribe.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, m.Role)

	_, err = s.tribes.Join(ctx, tribe.ID, "bob")
	assert.ErrorIs(t, err, ErrAlreadyMember)

	_, err = s.tribes.Join(ctx, "missing", "bob")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	tribes, err := s.tribes.ListForUser(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, tribes, 1)
	assert.Equal(t, "Runners", tribes[0].Name)
}

func TestTribeService_CreateValidation(t *testing.T) {
	s := newTestServices(t)
	_, err := s.tribes.Create(context.Background(), "", "", "alice")
	assert.Error(t, err)
	_, err = s.tribes.Create(context.Background(), "Name", "", "")
	assert.Error(t, err)
}

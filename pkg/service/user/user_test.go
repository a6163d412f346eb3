package user_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/internal/fixtures/mocks"
	"github.com/prosperitycompass/backend/pkg/domain/user"
	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/prosperitycompass/backend/pkg/repository"
	usersvc "github.com/prosperitycompass/backend/pkg/service/user"
	"github.com/prosperitycompass/backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Helper to create a service with mocks
func newUserServiceWithMocks(t interface {
	mock.TestingT
	Cleanup(func())
}) (*usersvc.Service, *mocks.MockUserRepository, *mocks.MockUnitOfWork) {
	userRepo := mocks.NewMockUserRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().UserRepository().Return(userRepo, nil).Maybe()
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	svc := usersvc.New(uow, slog.Default())
	return svc, userRepo, uow
}

func TestCreateUser_Success(t *testing.T) {
	t.Parallel()
	svc, userRepo, _ := newUserServiceWithMocks(t)
	name := "Alice"
	userRepo.EXPECT().ExistsByEmail(mock.Anything, "alice@example.com").Return(false, nil)
	userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *dto.UserCreate) bool {
		return c.Email == "alice@example.com" &&
			c.PasswordHash != "password123" &&
			utils.CheckPasswordHash("password123", c.PasswordHash)
	})).Return(nil)

	u, err := svc.CreateUser(context.Background(), "  Alice@Example.com ", &name, "password123")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, &name, u.Name)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.WithinDuration(t, time.Now(), u.CreatedAt, time.Minute)
}

func TestCreateUser_DuplicateEmailPrecheck(t *testing.T) {
	t.Parallel()
	svc, userRepo, _ := newUserServiceWithMocks(t)
	userRepo.EXPECT().ExistsByEmail(mock.Anything, "bob@example.com").Return(true, nil)

	u, err := svc.CreateUser(context.Background(), "bob@example.com", nil, "password123")
	require.ErrorIs(t, err, user.ErrDuplicateEmail)
	assert.Nil(t, u)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_DuplicateEmailFromInsert(t *testing.T) {
	t.Parallel()
	svc, userRepo, _ := newUserServiceWithMocks(t)
	userRepo.EXPECT().ExistsByEmail(mock.Anything, mock.Anything).Return(false, nil)
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(user.ErrDuplicateEmail)

	u, err := svc.CreateUser(context.Background(), "carol@example.com", nil, "password123")
	require.ErrorIs(t, err, user.ErrDuplicateEmail)
	assert.Nil(t, u)
}

func TestCreateUser_RepoError(t *testing.T) {
	t.Parallel()
	svc, userRepo, _ := newUserServiceWithMocks(t)
	userRepo.EXPECT().ExistsByEmail(mock.Anything, mock.Anything).Return(false, nil)
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	u, err := svc.CreateUser(context.Background(), "dave@example.com", nil, "password123")
	require.Error(t, err)
	assert.Nil(t, u)
}

func TestCreateUser_EmptyPassword(t *testing.T) {
	t.Parallel()
	svc, _, uow := newUserServiceWithMocks(t)

	u, err := svc.CreateUser(context.Background(), "erin@example.com", nil, "")
	require.Error(t, err)
	assert.Nil(t, u)
	uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestGetUser(t *testing.T) {
	t.Parallel()
	t.Run("found", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceWithMocks(t)
		want := &dto.UserRead{ID: uuid.New(), Email: "alice@example.com"}
		userRepo.EXPECT().Get(mock.Anything, want.ID).Return(want, nil)

		got, err := svc.GetUser(context.Background(), want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
	t.Run("missing", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceWithMocks(t)
		userRepo.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, nil)

		got, err := svc.GetUser(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
	t.Run("repo error", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceWithMocks(t)
		userRepo.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		got, err := svc.GetUser(context.Background(), uuid.New())
		require.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestGetUserByEmail_Normalizes(t *testing.T) {
	t.Parallel()
	svc, userRepo, _ := newUserServiceWithMocks(t)
	want := &dto.UserRead{ID: uuid.New(), Email: "alice@example.com"}
	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(want, nil)

	got, err := svc.GetUserByEmail(context.Background(), " ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListUsers(t *testing.T) {
	t.Parallel()
	svc, userRepo, _ := newUserServiceWithMocks(t)
	users := []*dto.UserRead{
		{ID: uuid.New(), Email: "b@example.com"},
		{ID: uuid.New(), Email: "a@example.com"},
	}
	userRepo.EXPECT().List(mock.Anything).Return(users, nil)

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"curateurs-backoffice/internal/auth"
	"curateurs-backoffice/internal/domain"
	"curateurs-backoffice/internal/mailer"
	"curateurs-backoffice/internal/mocks"
	"curateurs-backoffice/internal/tasks"
	"curateurs-backoffice/internal/validator"
)

type userServiceFixture struct {
	svc    *UserService
	users  *mocks.MockUserRepository
	tasks  *mocks.MockTaskSubmitter
	sender *mocks.MockSender
}

func newTestUserService(t *testing.T) userServiceFixture {
	f := userServiceFixture{
		users:  mocks.NewMockUserRepository(t),
		tasks:  mocks.NewMockTaskSubmitter(t),
		sender: mocks.NewMockSender(t),
	}
	f.svc = NewUserService(f.users, validator.NewValidator(), f.tasks, f.sender, UserServiceConfig{
		BaseURL:         "https://backoffice.example.com",
		SiteName:        "Les Curateurs",
		VerificationTTL: 15 * time.Minute,
	})
	f.svc.now = func() time.Time { return fixedNow }
	f.svc.newID = func() string { return "user-1" }
	f.svc.newToken = func() string { return "tok123" }
	return f
}

func TestCreateUser_SuccessQueuesVerificationEmail(t *testing.T) {
	f := newTestUserService(t)

	f.users.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.User"), mock.AnythingOfType("*domain.Account"), mock.AnythingOfType("*domain.Verification")).
		Run(func(ctx context.Context, u *domain.User, a *domain.Account, v *domain.Verification) {
			assert.Equal(t, "john@example.com", u.Email)
			assert.Equal(t, domain.RoleContributor, u.Role)
			assert.Equal(t, auth.PermissionsForRole(domain.RoleContributor), u.Permissions)

			require.NotNil(t, a)
			assert.Equal(t, "credential", a.ProviderID)
			require.NotNil(t, a.Password)
			assert.NoError(t, auth.VerifyPassword(*a.Password, "s3cretpass"))

			assert.Equal(t, "john@example.com", v.Identifier)
			assert.Equal(t, "tok123", v.Value)
			assert.Equal(t, fixedNow.Add(15*time.Minute), v.ExpiresAt)
		}).
		Return(nil)

	var queued tasks.Func
	f.tasks.EXPECT().
		Submit("verification_email", mock.Anything).
		Run(func(kind string, fn tasks.Func) { queued = fn }).
		Return(true)

	res := f.svc.CreateUser(context.Background(), domain.CreateUserRequest{
		Name:     "John",
		Email:    "John@Example.com",
		Password: "s3cretpass",
	})
	assert.Equal(t, domain.OK(http.StatusCreated, "User created successfully"), res)

	require.NotNil(t, queued)
	f.sender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("mailer.Email")).
		Run(func(ctx context.Context, e mailer.Email) {
			assert.Equal(t, "john@example.com", e.To)
			assert.Contains(t, e.Text, "tok123")
			assert.Contains(t, e.Text, "https://backoffice.example.com/verifiedEmail/tok123")
			assert.Contains(t, e.HTML, "Les Curateurs")
		}).
		Return(nil)
	require.NoError(t, queued(context.Background()))
}

func TestCreateUser_WithoutPasswordSkipsAccount(t *testing.T) {
	f := newTestUserService(t)

	f.users.EXPECT().
		Create(mock.Anything, mock.Anything, (*domain.Account)(nil), mock.Anything).
		Run(func(ctx context.Context, u *domain.User, a *domain.Account, v *domain.Verification) {
			assert.Equal(t, domain.RoleAdmin, u.Role)
			assert.Equal(t, []string{domain.PermReadArticles}, u.Permissions)
		}).
		Return(nil)
	f.tasks.EXPECT().Submit("verification_email", mock.Anything).Return(false)

	res := f.svc.CreateUser(context.Background(), domain.CreateUserRequest{
		Name:        "Ada",
		Email:       "ada@example.com",
		Role:        domain.RoleAdmin,
		Permissions: []string{domain.PermReadArticles},
	})

	// A dropped email does not fail the creation.
	assert.True(t, res.IsSuccess)
}

func TestCreateUser_Failures(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		f := newTestUserService(t)

		res := f.svc.CreateUser(context.Background(), domain.CreateUserRequest{Name: "X", Email: "not-an-email"})
		assert.Equal(t, domain.BadRequest("Failed to create user"), res)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newTestUserService(t)
		f.users.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("create user: conflict"))

		res := f.svc.CreateUser(context.Background(), domain.CreateUserRequest{Name: "X", Email: "x@example.com"})
		assert.Equal(t, domain.BadRequest("Failed to create user"), res)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("nil permissions reset to role defaults", func(t *testing.T) {
		f := newTestUserService(t)
		f.users.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(ctx context.Context, u *domain.User) {
				assert.Equal(t, "u1", u.ID)
				assert.Equal(t, auth.PermissionsForRole(domain.RoleAdmin), u.Permissions)
				assert.Equal(t, fixedNow, u.UpdatedAt)
				assert.Equal(t, "ada@example.com", u.Email)
			}).
			Return(int64(1), nil)

		res := f.svc.UpdateUser(context.Background(), domain.UpdateUserRequest{
			ID: "u1", Name: "Ada", Email: "Ada@Example.com", Role: domain.RoleAdmin,
		})
		assert.Equal(t, domain.OK(http.StatusOK, "User updated successfully"), res)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newTestUserService(t)
		f.users.EXPECT().Update(mock.Anything, mock.Anything).Return(int64(0), nil)

		res := f.svc.UpdateUser(context.Background(), domain.UpdateUserRequest{
			ID: "ghost", Name: "Ada", Email: "ada@example.com", Role: domain.RoleAdmin,
		})
		assert.Equal(t, domain.BadRequest("Failed to update user"), res)
	})

	t.Run("missing role", func(t *testing.T) {
		f := newTestUserService(t)

		res := f.svc.UpdateUser(context.Background(), domain.UpdateUserRequest{
			ID: "u1", Name: "Ada", Email: "ada@example.com",
		})
		assert.Equal(t, domain.BadRequest("Failed to update user"), res)
	})
}

func TestDeleteUser(t *testing.T) {
	f := newTestUserService(t)
	ctx := context.Background()

	f.users.EXPECT().Delete(mock.Anything, "u1").Return(int64(1), nil)
	f.users.EXPECT().Delete(mock.Anything, "ghost").Return(int64(0), nil)
	f.users.EXPECT().Delete(mock.Anything, "down").Return(int64(0), errors.New("boom"))

	assert.Equal(t, domain.OK(http.StatusOK, "User deleted successfully"), f.svc.DeleteUser(ctx, "u1"))
	assert.Equal(t, domain.BadRequest("Failed to delete user"), f.svc.DeleteUser(ctx, "ghost"))
	assert.Equal(t, domain.BadRequest("Failed to delete user"), f.svc.DeleteUser(ctx, "down"))
	assert.Equal(t, domain.BadRequest("Failed to delete user"), f.svc.DeleteUser(ctx, ""))
}

func TestGetAllUsers(t *testing.T) {
	f := newTestUserService(t)

	f.users.EXPECT().ListAll(mock.Anything).Return([]domain.User{{ID: "u1"}}, nil).Once()
	users, err := f.svc.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)

	f.users.EXPECT().ListAll(mock.Anything).Return(nil, errors.New("boom")).Once()
	_, err = f.svc.GetAllUsers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, "Failed to fetch users", err.Error())
}

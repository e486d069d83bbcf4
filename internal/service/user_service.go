package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"curateurs-backoffice/internal/auth"
	"curateurs-backoffice/internal/domain"
	"curateurs-backoffice/internal/ids"
	"curateurs-backoffice/internal/logger"
	"curateurs-backoffice/internal/mailer"
	"curateurs-backoffice/internal/metrics"
	"curateurs-backoffice/internal/repository"
	"curateurs-backoffice/internal/validator"
)

const (
	userEntity = "user"

	credentialProvider    = "credential"
	verificationEmailTask = "verification_email"
)

// UserServiceConfig holds the settings used to build verification emails.
type UserServiceConfig struct {
	BaseURL         string
	SiteName        string
	VerificationTTL time.Duration
}

// UserService implements user administration.
type UserService struct {
	users     repository.UserRepository
	validator *validator.Validator
	tasks     TaskSubmitter
	sender    mailer.Sender
	cfg       UserServiceConfig

	now      func() time.Time
	newID    func() string
	newToken func() string
}

// NewUserService creates a new UserService.
func NewUserService(
	users repository.UserRepository,
	v *validator.Validator,
	tasks TaskSubmitter,
	sender mailer.Sender,
	cfg UserServiceConfig,
) *UserService {
	return &UserService{
		users:     users,
		validator: v,
		tasks:     tasks,
		sender:    sender,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     ids.New,
		newToken:  func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") },
	}
}

func (s *UserService) observe(op string, timer *metrics.Timer, r domain.Result) domain.Result {
	metrics.ObserveOperation(userEntity, op, r.IsSuccess, timer.Seconds())
	return r
}

// CreateUser stores a user, its optional password credential and a verification
// token, then queues the verification email. Failures are reported generically.
func (s *UserService) CreateUser(ctx context.Context, req domain.CreateUserRequest) domain.Result {
	timer := metrics.NewTimer()
	failed := domain.BadRequest("Failed to create user")

	if err := s.validator.ValidateCreateUser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid user payload", slog.String("error", err.Error()))
		return s.observe("create", timer, failed)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleContributor
	}
	perms := req.Permissions
	if perms == nil {
		perms = auth.PermissionsForRole(role)
	}

	now := s.now()
	user := &domain.User{
		ID:          s.newID(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Image:       req.Image,
		Role:        role,
		Permissions: perms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var account *domain.Account
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to hash password", slog.String("error", err.Error()))
			return s.observe("create", timer, failed)
		}
		account = &domain.Account{
			ID:         s.newID(),
			AccountID:  user.ID,
			ProviderID: credentialProvider,
			UserID:     user.ID,
			Password:   &hash,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	verification := &domain.Verification{
		ID:         s.newID(),
		Identifier: user.Email,
		Value:      s.newToken(),
		ExpiresAt:  now.Add(s.cfg.VerificationTTL),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.users.Create(ctx, user, account, verification); err != nil {
		logger.ErrorContext(ctx, "Failed to create user",
			slog.String("email", user.Email),
			slog.String("error", err.Error()),
		)
		return s.observe("create", timer, failed)
	}

	s.queueVerificationEmail(ctx, user.Email, verification.Value)

	logger.InfoContext(ctx, "User created",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return s.observe("create", timer, domain.OK(http.StatusCreated, "User created successfully"))
}

// queueVerificationEmail never blocks; delivery failures are logged by the runner.
func (s *UserService) queueVerificationEmail(ctx context.Context, to, token string) {
	email, err := mailer.BuildVerificationEmail(to, mailer.VerificationData{
		SiteName: s.cfg.SiteName,
		Code:     token,
		Link:     s.cfg.BaseURL + "/verifiedEmail/" + token,
		TTL:      s.cfg.VerificationTTL,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build verification email",
			slog.String("to", to),
			slog.String("error", err.Error()),
		)
		return
	}

	sender := s.sender
	s.tasks.Submit(verificationEmailTask, func(taskCtx context.Context) error {
		return sender.Send(taskCtx, email)
	})
}

// UpdateUser replaces name, email, role and permissions. Nil permissions reset
// to the role mapping.
func (s *UserService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest) domain.Result {
	timer := metrics.NewTimer()
	failed := domain.BadRequest("Failed to update user")

	if err := s.validator.ValidateUpdateUser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid user payload", slog.String("error", err.Error()))
		return s.observe("update", timer, failed)
	}

	perms := req.Permissions
	if perms == nil {
		perms = auth.PermissionsForRole(req.Role)
	}

	rows, err := s.users.Update(ctx, &domain.User{
		ID:          req.ID,
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Role:        req.Role,
		Permissions: perms,
		UpdatedAt:   s.now(),
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update user",
			slog.String("user_id", req.ID),
			slog.String("error", err.Error()),
		)
		return s.observe("update", timer, failed)
	}
	if rows == 0 {
		logger.WarnContext(ctx, "Update matched no user", slog.String("user_id", req.ID))
		return s.observe("update", timer, failed)
	}

	logger.InfoContext(ctx, "User updated", slog.String("user_id", req.ID))
	return s.observe("update", timer, domain.OK(http.StatusOK, "User updated successfully"))
}

// DeleteUser hard-deletes a user.
func (s *UserService) DeleteUser(ctx context.Context, id string) domain.Result {
	timer := metrics.NewTimer()
	failed := domain.BadRequest("Failed to delete user")

	if strings.TrimSpace(id) == "" {
		return s.observe("delete", timer, failed)
	}

	rows, err := s.users.Delete(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete user",
			slog.String("user_id", id),
			slog.String("error", err.Error()),
		)
		return s.observe("delete", timer, failed)
	}
	if rows == 0 {
		logger.WarnContext(ctx, "Delete matched no user", slog.String("user_id", id))
		return s.observe("delete", timer, failed)
	}

	logger.InfoContext(ctx, "User deleted", slog.String("user_id", id))
	return s.observe("delete", timer, domain.OK(http.StatusOK, "User deleted successfully"))
}

// GetAllUsers returns every user.
func (s *UserService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch users", slog.String("error", err.Error()))
		return nil, domain.Errorf(domain.ErrPersistence, "Failed to fetch users")
	}
	return users, nil
}

package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-expense-tracker/internal/tokens"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// Error variables
var (
	ErrInvalidUsername     = errors.New("username should only contain alphanumeric characters")
	ErrUsernameTaken       = errors.New("username is already in use")
	ErrInvalidEmail        = errors.New("email is invalid")
	ErrEmailTaken          = errors.New("email is in use")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrMissingCredentials  = errors.New("username and password are required")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserInactive        = errors.New("account is not active")
	ErrUserNotFound        = errors.New("user does not exist")
	ErrUserAlreadyActive   = errors.New("user already activated")
	ErrLinkMalformed       = errors.New("link identifier is malformed")
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrEmailNotFound       = errors.New("email address does not exist")
	ErrPasswordResetFailed = errors.New("password reset failed")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, email, passwordHash string, active bool) (*models.UserDB, error)
	Activate(ctx context.Context, userID uuid.UUID) error
	SetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// TokenGenerator mints and checks state-bound tokens.
type TokenGenerator interface {
	Make(user *models.UserDB) string
	Check(user *models.UserDB, token string) bool
}

// Notifier sends email without blocking the caller.
type Notifier interface {
	Send(to, subject, body string)
}

// RegisterInput is the submitted registration form.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService drives registration, activation, login and password reset.
type AuthService struct {
	reader     UserReader
	writer     UserWriter
	activation TokenGenerator
	reset      TokenGenerator
	notifier   Notifier
	publicURL  string
	validate   *validator.Validate
}

// NewAuthService creates a new AuthService instance.
// publicURL is the scheme and host used to build links in emails.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	activation TokenGenerator,
	reset TokenGenerator,
	notifier Notifier,
	publicURL string,
) *AuthService {
	return &AuthService{
		reader:     reader,
		writer:     writer,
		activation: activation,
		reset:      reset,
		notifier:   notifier,
		publicURL:  strings.TrimRight(publicURL, "/"),
		validate:   validator.New(),
	}
}

// ValidateUsername checks the username format and availability.
func (svc *AuthService) ValidateUsername(ctx context.Context, username string) error {
	if svc.validate.Var(username, "required,alphanumunicode") != nil {
		return ErrInvalidUsername
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to look up username", "username", username, "err", err)
		return err
	}
	if user != nil {
		return ErrUsernameTaken
	}
	return nil
}

// ValidateEmail checks the email syntax and availability.
func (svc *AuthService) ValidateEmail(ctx context.Context, email string) error {
	if !svc.validEmail(email) {
		return ErrInvalidEmail
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to look up email", "email", email, "err", err)
		return err
	}
	if user != nil {
		return ErrEmailTaken
	}
	return nil
}

// Register creates an inactive account and emails the activation link.
// Checks run in order and the first failure is returned.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) error {
	if err := svc.ValidateUsername(ctx, in.Username); err != nil {
		return err
	}
	if err := svc.ValidateEmail(ctx, in.Email); err != nil {
		return err
	}
	if len(in.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	user, err := svc.writer.Create(ctx, in.Username, in.Email, string(hashedPassword), false)
	switch {
	case errors.Is(err, repositories.ErrDuplicateUsername):
		return ErrUsernameTaken
	case errors.Is(err, repositories.ErrDuplicateEmail):
		return ErrEmailTaken
	case err != nil:
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	link := fmt.Sprintf("%s/authentication/activate/%s/%s",
		svc.publicURL, tokens.EncodeID(user.UserID), svc.activation.Make(user))
	svc.notifier.Send(user.Email,
		"Activate Your Account",
		fmt.Sprintf("Hi, %s! Please use this link to verify your account:\n%s", user.Username, link),
	)

	logger.Log.Infow("user registered", "user_id", user.UserID)
	return nil
}

// Activate verifies an activation link and marks the account active.
func (svc *AuthService) Activate(ctx context.Context, uidb64, token string) error {
	user, err := svc.userFromLink(ctx, uidb64)
	if err != nil {
		return err
	}

	if !svc.activation.Check(user, token) {
		return ErrTokenInvalid
	}
	if user.IsActive {
		return ErrUserAlreadyActive
	}

	if err := svc.writer.Activate(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to activate user", "user_id", user.UserID, "err", err)
		return err
	}

	logger.Log.Infow("user activated", "user_id", user.UserID)
	return nil
}

// Authenticate checks credentials. Unknown users and wrong passwords are not distinguished.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) (*models.UserDB, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown user", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

// RequestPasswordReset emails a reset link to the owner of email.
// Unlike Authenticate it reports whether the address is registered.
func (svc *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if !svc.validEmail(email) {
		return ErrInvalidEmail
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to look up email", "email", email, "err", err)
		return err
	}
	if user == nil {
		return ErrEmailNotFound
	}

	link := fmt.Sprintf("%s/authentication/set-new-password/%s/%s",
		svc.publicURL, tokens.EncodeID(user.UserID), svc.reset.Make(user))
	svc.notifier.Send(user.Email,
		"Password Reset Details!",
		fmt.Sprintf("Hi, there! Please use this link to reset your password:\n%s", link),
	)

	logger.Log.Infow("password reset requested", "user_id", user.UserID)
	return nil
}

// CheckResetLink validates a reset link before the new password form is shown.
func (svc *AuthService) CheckResetLink(ctx context.Context, uidb64, token string) error {
	user, err := svc.userFromLink(ctx, uidb64)
	if err != nil {
		return err
	}
	if !svc.reset.Check(user, token) {
		return ErrTokenInvalid
	}
	return nil
}

// CompletePasswordReset sets a new password for the user encoded in uidb64.
func (svc *AuthService) CompletePasswordReset(ctx context.Context, uidb64, password, confirm string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if password != confirm {
		return ErrPasswordMismatch
	}

	// TODO: re-check the reset token here; a link rejected on GET can still be submitted.
	user, err := svc.userFromLink(ctx, uidb64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPasswordResetFailed, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return fmt.Errorf("%w: %v", ErrPasswordResetFailed, err)
	}

	if err := svc.writer.SetPassword(ctx, user.UserID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to set password", "user_id", user.UserID, "err", err)
		return fmt.Errorf("%w: %v", ErrPasswordResetFailed, err)
	}

	logger.Log.Infow("password reset completed", "user_id", user.UserID)
	return nil
}

func (svc *AuthService) userFromLink(ctx context.Context, uidb64 string) (*models.UserDB, error) {
	userID, err := tokens.DecodeID(uidb64)
	if err != nil {
		return nil, ErrLinkMalformed
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (svc *AuthService) validEmail(email string) bool {
	return svc.validate.Var(email, "required,email") == nil
}

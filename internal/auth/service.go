package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"theatre-booking/internal/logger"
	"theatre-booking/internal/models"
)

// Validation errors surfaced inline on the register/login forms.
var (
	ErrFieldsRequired   = errors.New("all fields are required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrTaken            = errors.New("login or email already taken")

	// ErrInvalidCredentials is returned for unknown email and wrong
	// password alike, so login responses cannot be used to enumerate
	// accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	LoginOrEmailTaken(ctx context.Context, login, email string) (bool, error)
}

// AuditLog appends to the authentication audit trail.
type AuditLog interface {
	Append(ctx context.Context, userID int64, action, ip, userAgent string) error
}

type Service struct {
	DB         UserStore
	Audit      AuditLog
	Logger     *logger.Logger
	BcryptCost int
}

func NewService(db UserStore, audit AuditLog, log *logger.Logger, bcryptCost int) *Service {
	if bcryptCost <= 0 {
		bcryptCost = DefaultBcryptCost
	}
	return &Service{DB: db, Audit: audit, Logger: log, BcryptCost: bcryptCost}
}

type RegisterInput struct {
	Login    string
	FullName string
	Phone    string
	Email    string
	Password string
}

// Register validates the input, creates the user and records the audit
// entry. Validation failures come back as the Err* sentinels above.
func (s *Service) Register(ctx context.Context, in RegisterInput, ip, userAgent string) (*models.User, error) {
	in.Login = strings.TrimSpace(in.Login)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Login == "" || in.FullName == "" || in.Phone == "" || in.Email == "" || in.Password == "" {
		return nil, ErrFieldsRequired
	}
	if len(in.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	taken, err := s.DB.LoginOrEmailTaken(ctx, in.Login, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check login/email: %w", err)
	}
	if taken {
		return nil, ErrTaken
	}

	hash, err := HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        in.Email,
		Login:        in.Login,
		PasswordHash: hash,
		FullName:     in.FullName,
		Phone:        in.Phone,
		IsAdmin:      false,
		CreatedAt:    time.Now(),
	}
	if err := s.DB.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.audit(ctx, user.ID, "register", ip, userAgent)
	s.Logger.LogAuth("register", user.Email, "account created")
	return user, nil
}

// Authenticate verifies the credentials and records the audit entry.
func (s *Service) Authenticate(ctx context.Context, email, password, ip, userAgent string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.DB.GetUserByEmail(ctx, email)
	if err != nil || !VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	s.audit(ctx, user.ID, "login", ip, userAgent)
	s.Logger.LogAuth("login", user.Email, "session established")
	return user, nil
}

// Logout records the audit entry for a user ending their session.
func (s *Service) Logout(ctx context.Context, userID int64, ip, userAgent string) {
	s.audit(ctx, userID, "logout", ip, userAgent)
}

func (s *Service) audit(ctx context.Context, userID int64, action, ip, userAgent string) {
	if err := s.Audit.Append(ctx, userID, action, ip, userAgent); err != nil {
		s.Logger.Error("AUTH", fmt.Sprintf("Failed to append audit entry [%s]: %v", action, err))
	}
}

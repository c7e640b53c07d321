package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"theatre-booking/internal/auth"
	"theatre-booking/internal/logger"
	"theatre-booking/internal/models"
)

// Mock implementations
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(user)
	if args.Error(0) == nil {
		user.ID = 42
	}
	return args.Error(0)
}

func (m *MockUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) LoginOrEmailTaken(ctx context.Context, login, email string) (bool, error) {
	args := m.Called(login, email)
	return args.Bool(0), args.Error(1)
}

type MockAuditLog struct {
	mock.Mock
}

func (m *MockAuditLog) Append(ctx context.Context, userID int64, action, ip, userAgent string) error {
	args := m.Called(userID, action, ip, userAgent)
	return args.Error(0)
}

func newService(db *MockUserStore, audit *MockAuditLog) *auth.Service {
	return auth.NewService(db, audit, logger.NewNop(), 4)
}

func validInput() auth.RegisterInput {
	return auth.RegisterInput{
		Login:    "newuser",
		FullName: "New User",
		Phone:    "+1-555-0100",
		Email:    "NewUser@Example.com",
		Password: "longpassword",
	}
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*auth.RegisterInput)
		want   error
	}{
		{"missing login", func(in *auth.RegisterInput) { in.Login = "  " }, auth.ErrFieldsRequired},
		{"missing full name", func(in *auth.RegisterInput) { in.FullName = "" }, auth.ErrFieldsRequired},
		{"missing phone", func(in *auth.RegisterInput) { in.Phone = "" }, auth.ErrFieldsRequired},
		{"missing email", func(in *auth.RegisterInput) { in.Email = "" }, auth.ErrFieldsRequired},
		{"missing password", func(in *auth.RegisterInput) { in.Password = "" }, auth.ErrFieldsRequired},
		{"short password", func(in *auth.RegisterInput) { in.Password = "short7c" }, auth.ErrPasswordTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB := new(MockUserStore)
			mockAudit := new(MockAuditLog)
			svc := newService(mockDB, mockAudit)

			in := validInput()
			tc.mutate(&in)

			_, err := svc.Register(context.Background(), in, "127.0.0.1", "test-agent")
			assert.ErrorIs(t, err, tc.want)

			// No row must be created and nothing audited.
			mockDB.AssertNotCalled(t, "CreateUser", mock.Anything)
			mockAudit.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterTaken(t *testing.T) {
	mockDB := new(MockUserStore)
	mockAudit := new(MockAuditLog)
	svc := newService(mockDB, mockAudit)

	mockDB.On("LoginOrEmailTaken", "newuser", "newuser@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), validInput(), "127.0.0.1", "test-agent")
	assert.ErrorIs(t, err, auth.ErrTaken)

	mockDB.AssertNotCalled(t, "CreateUser", mock.Anything)
	mockDB.AssertExpectations(t)
}

func TestRegisterSuccess(t *testing.T) {
	mockDB := new(MockUserStore)
	mockAudit := new(MockAuditLog)
	svc := newService(mockDB, mockAudit)

	mockDB.On("LoginOrEmailTaken", "newuser", "newuser@example.com").Return(false, nil)
	mockDB.On("CreateUser", mock.MatchedBy(func(u *models.User) bool {
		// Email is normalized and the password is never stored in clear.
		return u.Email == "newuser@example.com" &&
			u.Login == "newuser" &&
			!u.IsAdmin &&
			u.PasswordHash != "" &&
			u.PasswordHash != "longpassword"
	})).Return(nil)
	mockAudit.On("Append", int64(42), "register", "127.0.0.1", "test-agent").Return(nil)

	user, err := svc.Register(context.Background(), validInput(), "127.0.0.1", "test-agent")
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.True(t, auth.VerifyPassword(user.PasswordHash, "longpassword"))

	mockDB.AssertExpectations(t)
	mockAudit.AssertExpectations(t)
}

func TestAuthenticateGenericError(t *testing.T) {
	mockDB := new(MockUserStore)
	mockAudit := new(MockAuditLog)
	svc := newService(mockDB, mockAudit)

	hash, err := auth.HashPassword("correct-password", 4)
	require.NoError(t, err)

	known := &models.User{ID: 7, Email: "known@example.com", PasswordHash: hash}
	mockDB.On("GetUserByEmail", "known@example.com").Return(known, nil)
	mockDB.On("GetUserByEmail", "unknown@example.com").Return(nil, errors.New("sql: no rows in result set"))

	// Wrong password for an existing account and an unknown email must be
	// indistinguishable to the caller.
	_, errWrongPass := svc.Authenticate(context.Background(), "known@example.com", "bad-password", "127.0.0.1", "test-agent")
	_, errNoUser := svc.Authenticate(context.Background(), "unknown@example.com", "bad-password", "127.0.0.1", "test-agent")

	assert.ErrorIs(t, errWrongPass, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, auth.ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())

	mockAudit.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticateSuccess(t *testing.T) {
	mockDB := new(MockUserStore)
	mockAudit := new(MockAuditLog)
	svc := newService(mockDB, mockAudit)

	hash, err := auth.HashPassword("correct-password", 4)
	require.NoError(t, err)

	known := &models.User{ID: 7, Email: "known@example.com", PasswordHash: hash, IsAdmin: true}
	mockDB.On("GetUserByEmail", "known@example.com").Return(known, nil)
	mockAudit.On("Append", int64(7), "login", "127.0.0.1", "test-agent").Return(nil)

	// Email lookup is case-insensitive via normalization.
	user, err := svc.Authenticate(context.Background(), "  Known@Example.COM ", "correct-password", "127.0.0.1", "test-agent")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.True(t, user.IsAdmin)

	mockDB.AssertExpectations(t)
	mockAudit.AssertExpectations(t)
}

func TestLogoutAudits(t *testing.T) {
	mockDB := new(MockUserStore)
	mockAudit := new(MockAuditLog)
	svc := newService(mockDB, mockAudit)

	mockAudit.On("Append", int64(7), "logout", "127.0.0.1", "test-agent").Return(nil)

	svc.Logout(context.Background(), 7, "127.0.0.1", "test-agent")

	mockAudit.AssertExpectations(t)
}

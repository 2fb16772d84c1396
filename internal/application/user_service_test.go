package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/cortylix/site-go/internal/api/middleware"
	"github.com/cortylix/site-go/internal/application"
	"github.com/cortylix/site-go/internal/domain/user"
	"github.com/cortylix/site-go/internal/repository"
	"github.com/cortylix/site-go/internal/repository/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserMocks(t *testing.T) (*application.UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUser := mock.NewMockUserRepo(ctrl)
	// create base repos with an in-memory sqlite gorm DB so Begin() is safe, then inject mocks
	dbConn, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	repos := repository.NewRepositories(dbConn)
	repos.User = mockUser

	// stub token signing; the real flow is covered by the router test
	origGenerate := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, email string, d time.Duration, users repository.UserRepo) (string, bool, error) {
		return "test-token", false, nil
	}
	t.Cleanup(func() { middleware.GenerateToken = origGenerate })

	return application.NewUserService(repos), mockUser
}

func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserMocks(t)

	mockUser.EXPECT().GetUserByEmail("john@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.UID = 7
		return nil
	})

	usr, token, err := svc.RegisterUser(user.SignUpInput{
		FullName: "John Doe",
		Email:    "john@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "test-token" {
		t.Errorf("expected stubbed token, got %q", token)
	}
	if usr.Role != string(user.RoleUser) {
		t.Errorf("expected role %q, got %q", user.RoleUser, usr.Role)
	}
	if usr.Password == "secret1" {
		t.Error("password was stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte("secret1")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserMocks(t)

	mockUser.EXPECT().GetUserByEmail("john@example.com").Return(user.User{UID: 1, Email: "john@example.com"}, nil)

	_, _, err := svc.RegisterUser(user.SignUpInput{
		FullName: "John Doe",
		Email:    "john@example.com",
		Password: "secret1",
	})
	if !errors.Is(err, application.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterUser_ConcurrentDuplicate(t *testing.T) {
	svc, mockUser := setupUserMocks(t)

	// lookup races with another sign-up; the unique index fires on insert
	mockUser.EXPECT().GetUserByEmail("john@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(repository.ErrDuplicateEmail)

	_, _, err := svc.RegisterUser(user.SignUpInput{
		FullName: "John Doe",
		Email:    "john@example.com",
		Password: "secret1",
	})
	if !errors.Is(err, application.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserMocks(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByEmail("john@example.com").Return(user.User{
		UID:      7,
		Email:    "john@example.com",
		Password: string(hash),
	}, nil)

	usr, token, isAdmin, err := svc.LoginUser("john@example.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.UID != 7 {
		t.Errorf("expected UID 7, got %d", usr.UID)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if isAdmin {
		t.Error("expected non-admin session")
	}
}

func TestLoginUser_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserMocks(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByEmail("john@example.com").Return(user.User{
		UID:      7,
		Email:    "john@example.com",
		Password: string(hash),
	}, nil)

	_, _, _, err := svc.LoginUser("john@example.com", "wrong")
	if !errors.Is(err, application.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	svc, mockUser := setupUserMocks(t)

	mockUser.EXPECT().GetUserByEmail("nobody@example.com").Return(user.User{}, gorm.ErrRecordNotFound)

	// must be indistinguishable from a wrong password
	_, _, _, err := svc.LoginUser("nobody@example.com", "secret1")
	if !errors.Is(err, application.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

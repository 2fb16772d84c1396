package application

import (
	"errors"
	"time"

	"github.com/cortylix/site-go/internal/api/middleware"
	"github.com/cortylix/site-go/internal/domain/user"
	"github.com/cortylix/site-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

// SessionDuration bounds both the JWT lifetime and the session cookie max-age.
const SessionDuration = 24 * time.Hour

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

// RegisterUser creates a profile and signs a session token in one step;
// the submission form signs the visitor up transparently before creating
// their first ticket.
func (s *UserService) RegisterUser(input user.SignUpInput) (user.User, string, error) {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, "", err
	}
	if err == nil {
		return user.User{}, "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrPasswordHashFailure
	}

	usr := user.User{
		Email:    input.Email,
		Password: string(hashed),
		FullName: input.FullName,
		Role:     string(user.RoleUser),
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		// The unique index can still fire on a concurrent sign-up.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return user.User{}, "", ErrEmailTaken
		}
		return user.User{}, "", err
	}

	token, _, err := middleware.GenerateToken(usr.UID, usr.Email, SessionDuration, s.Repos.User)
	if err != nil {
		return user.User{}, "", err
	}

	return usr, token, nil
}

// LoginUser reports the same error for an unknown email and a wrong
// password, so callers cannot probe which addresses have accounts.
func (s *UserService) LoginUser(email, password string) (user.User, string, bool, error) {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return user.User{}, "", false, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", false, ErrInvalidCredentials
	}

	token, isAdmin, err := middleware.GenerateToken(usr.UID, usr.Email, SessionDuration, s.Repos.User)
	if err != nil {
		return user.User{}, "", false, err
	}

	return usr, token, isAdmin, nil
}

func (s *UserService) CurrentUser(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return usr, nil
}

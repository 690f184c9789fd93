package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Totarae/monuments/internal/apperrors"
	"github.com/Totarae/monuments/internal/metrics"
	"github.com/Totarae/monuments/internal/model"
	"github.com/Totarae/monuments/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLen = 4
	maxUsernameLen = 25
	// bcrypt не принимает пароли длиннее 72 байт
	maxPasswordBytes = 72
)

// AccountService отвечает за регистрацию и вход.
type AccountService struct {
	Users      repositories.UserRepository
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	BcryptCost int

	// dummyHash сравнивается при неизвестном логине.
	dummyHash []byte
}

func NewAccountService(users repositories.UserRepository, logger *zap.Logger, m *metrics.Metrics, cost int) *AccountService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	return &AccountService{
		Users:      users,
		Logger:     logger,
		Metrics:    m,
		BcryptCost: cost,
		dummyHash:  dummy,
	}
}

// Register создаёт обычного пользователя.
func (s *AccountService) Register(ctx context.Context, username, password, confirmation string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.NewValidation("username", "Enter your username please!")
	}
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return nil, apperrors.NewValidation("username",
			fmt.Sprintf("field must be between %d and %d characters long", minUsernameLen, maxUsernameLen))
	}
	if password == "" {
		return nil, apperrors.NewValidation("password", "this field is required")
	}
	if confirmation == "" {
		return nil, apperrors.NewValidation("confirmation", "this field is required")
	}
	if len(password) > maxPasswordBytes {
		return nil, apperrors.NewValidation("password",
			fmt.Sprintf("field cannot be longer than %d bytes", maxPasswordBytes))
	}
	if password != confirmation {
		return nil, apperrors.NewValidation("password", "Passwords must match")
	}

	_, err := s.Users.FindByName(ctx, username)
	switch {
	case err == nil:
		return nil, apperrors.ErrDuplicateUsername
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	user, err := s.newUser(username, password)
	if err != nil {
		return nil, err
	}
	if err := s.Users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.Logger.Info("user registered", zap.Int("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Login проверяет логин и пароль.
func (s *AccountService) Login(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.NewValidation("username", "this field is required")
	}
	if password == "" {
		return nil, apperrors.NewValidation("password", "this field is required")
	}

	user, err := s.Users.FindByName(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			s.Metrics.Login(false)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(password)); err != nil {
		s.Metrics.Login(false)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.Metrics.Login(true)
	return user, nil
}

// User возвращает пользователя по идентификатору из сессии.
func (s *AccountService) User(ctx context.Context, id int) (*model.User, error) {
	return s.Users.FindByID(ctx, id)
}

// EnsureAdmin создаёт администратора или выдаёт права и новый пароль существующему
// пользователю. created сообщает, была ли создана новая запись.
func (s *AccountService) EnsureAdmin(ctx context.Context, username, password string) (user *model.User, created bool, err error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, false, apperrors.NewValidation("username", "username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	user, err = s.Users.FindByName(ctx, username)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		user = &model.User{Username: username}
		created = true
	case err != nil:
		return nil, false, fmt.Errorf("lookup user: %w", err)
	}

	user.Hash = string(hash)
	user.IsAdmin = true
	if err := s.Users.Save(ctx, user); err != nil {
		return nil, false, err
	}
	s.Logger.Info("admin ensured", zap.String("username", username), zap.Bool("created", created))
	return user, created, nil
}

func (s *AccountService) newUser(username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &model.User{Username: username, Hash: string(hash)}, nil
}

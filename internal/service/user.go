package service

import (
	"context"
	"fmt"

	"github.com/dimassfeb-09/sima-app-web/internal/auth"
	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, fullName, phone string) error
}

// CountsRepository определяет контракт для таблицы агрегатов counts
type CountsRepository interface {
	GetByTitle(ctx context.Context, title string) (int64, error)
	Increment(ctx context.Context, title string) error
}

// AuthService определяет контракт регистрации и входа персонала
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Profile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, fullName, phone string) error
	CountByType(ctx context.Context, accountType string) (int64, error)
}

// RegisterInput - данные регистрации нового сотрудника
type RegisterInput struct {
	FullName    string
	Email       string
	Phone       string
	Password    string
	AccountType models.AccountType
}

type authService struct {
	users  UserRepository
	counts CountsRepository
	tokens *auth.Manager
	logger *logrus.Logger
}

func NewAuthService(users UserRepository, counts CountsRepository, tokens *auth.Manager, logger *logrus.Logger) AuthService {
	return &authService{
		users:  users,
		counts: counts,
		tokens: tokens,
		logger: logger,
	}
}

// Register создает пользователя при первой успешной аутентификации
// и выпускает токен доступа. Счетчик типа учетной записи
// инкрементируется по принципу best effort.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   input.Email,
	})

	if !models.ValidAccountType(input.AccountType) {
		log.Warn("Rejected unknown account type")
		return nil, "", fmt.Errorf("service: unknown account type %q", input.AccountType)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		UID:          uuid.NewString(),
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		AccountType:  input.AccountType,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, "", fmt.Errorf("service: could not create user: %w", err)
	}

	if err := s.counts.Increment(ctx, string(input.AccountType)); err != nil {
		log.WithError(err).Warn("Failed to increment account type counter")
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		log.WithError(err).Error("Failed to generate access token")
		return nil, "", fmt.Errorf("service: could not generate token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered")
	return user, token, nil
}

// Login проверяет учетные данные и выпускает токен доступа
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Warn("Failed to get user by email")
		return nil, "", fmt.Errorf("service: invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Password mismatch")
		return nil, "", fmt.Errorf("service: invalid credentials")
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		log.WithError(err).Error("Failed to generate access token")
		return nil, "", fmt.Errorf("service: could not generate token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return user, token, nil
}

// Profile возвращает запись пользователя по id
func (s *authService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// UpdateProfile обновляет отображаемое имя и телефон пользователя
func (s *authService) UpdateProfile(ctx context.Context, userID int64, fullName, phone string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "UpdateProfile",
		"user_id": userID,
	})

	if err := s.users.UpdateProfile(ctx, userID, fullName, phone); err != nil {
		log.WithError(err).Error("Failed to update user profile")
		return fmt.Errorf("service: could not update profile: %w", err)
	}
	return nil
}

// CountByType возвращает значение счетчика типа учетной записи
func (s *authService) CountByType(ctx context.Context, accountType string) (int64, error) {
	count, err := s.counts.GetByTitle(ctx, accountType)
	if err != nil {
		return 0, fmt.Errorf("service: could not get count: %w", err)
	}
	return count, nil
}

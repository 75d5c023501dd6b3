package service

import (
	"context"
	"fmt"

	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/dimassfeb-09/sima-app-web/pkg/geo"
	"github.com/sirupsen/logrus"
)

// OrganizationRepository определяет контракт для работы с бд организаций
type OrganizationRepository interface {
	// GetByUserID возвращает организацию пользователя или nil, nil,
	// если организация еще не создана.
	GetByUserID(ctx context.Context, userID int64) (*models.Organization, error)
	GetByID(ctx context.Context, id int64) (*models.Organization, error)
	// Upsert создает организацию при первом сохранении настроек
	// или обновляет существующую (ключ - user_id).
	Upsert(ctx context.Context, org *models.Organization) error
	ListByType(ctx context.Context, instanceType, search string) ([]*models.Organization, error)
}

// OrganizationService определяет контракт бизнес-логики организаций
type OrganizationService interface {
	GetForUser(ctx context.Context, userID int64) (*models.Organization, error)
	Save(ctx context.Context, userID int64, name, coordinates, instanceType string) (*models.Organization, error)
	Search(ctx context.Context, instanceType, query string) ([]*models.Organization, error)
}

type organizationService struct {
	repo   OrganizationRepository
	logger *logrus.Logger
}

func NewOrganizationService(repo OrganizationRepository, logger *logrus.Logger) OrganizationService {
	return &organizationService{
		repo:   repo,
		logger: logger,
	}
}

// GetForUser возвращает организацию пользователя (не более одной)
func (s *organizationService) GetForUser(ctx context.Context, userID int64) (*models.Organization, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "organization",
		"method":  "GetForUser",
		"user_id": userID,
	})

	org, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to get organization by user id")
		return nil, fmt.Errorf("service: could not get organization: %w", err)
	}
	return org, nil
}

// Save сохраняет настройки организации. Строка координат "lat,lon"
// проверяется до обращения к бэкенду: некорректный ввод отклоняется
// с ошибкой валидации и в бд не попадает.
func (s *organizationService) Save(ctx context.Context, userID int64, name, coordinates, instanceType string) (*models.Organization, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "organization",
		"method":  "Save",
		"user_id": userID,
	})

	point := geo.ParseLatLng(coordinates)
	if !point.Valid() {
		log.WithField("coordinates", coordinates).Warn("Rejected malformed coordinate input")
		return nil, fmt.Errorf("service: invalid coordinates %q", coordinates)
	}

	org := &models.Organization{
		Name:         name,
		Latitude:     point.Latitude,
		Longitude:    point.Longitude,
		UserID:       userID,
		InstanceType: instanceType,
	}

	if err := s.repo.Upsert(ctx, org); err != nil {
		log.WithError(err).Error("Failed to upsert organization")
		return nil, fmt.Errorf("service: could not save organization: %w", err)
	}

	log.WithField("organization_id", org.ID).Info("Organization saved")
	return org, nil
}

// Search возвращает организации заданного типа для выпадающего
// списка передачи (фильтр по совпадению категории)
func (s *organizationService) Search(ctx context.Context, instanceType, query string) ([]*models.Organization, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "organization",
		"method":        "Search",
		"instance_type": instanceType,
	})

	orgs, err := s.repo.ListByType(ctx, instanceType, query)
	if err != nil {
		log.WithError(err).Error("Failed to list organizations")
		return nil, fmt.Errorf("service: could not list organizations: %w", err)
	}
	return orgs, nil
}

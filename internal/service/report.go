package service

import (
	"context"
	"fmt"

	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/dimassfeb-09/sima-app-web/internal/realtime"
	"github.com/dimassfeb-09/sima-app-web/pkg/geo"
	"github.com/sirupsen/logrus"
)

// ReportRepository определяет контракт для работы с бд отчетов и назначений
type ReportRepository interface {
	ListByOrganization(ctx context.Context, orgID int64) ([]*models.Assignment, error)
	GetDetail(ctx context.Context, reportID, orgID int64) (*models.AssignmentDetail, error)
	GetReport(ctx context.Context, reportID int64) (*models.Report, error)
	// UpdateStatuses обновляет статус назначения и статус отчета
	// в одной транзакции: частичный успех невозможен.
	UpdateStatuses(ctx context.Context, reportID, orgID int64, status models.ReportStatus) error
	// Transfer переписывает назначение на другую организацию
	// и обновляет дистанцию в одной транзакции.
	Transfer(ctx context.Context, reportID, fromOrgID, toOrgID int64, distanceKm float64) error
}

// ReportService определяет контракт бизнес-логики работы с отчетами
type ReportService interface {
	ListAssignments(ctx context.Context, orgID int64) ([]*models.Assignment, error)
	GetDetail(ctx context.Context, reportID, orgID int64) (*models.AssignmentDetail, error)
	ChangeStatus(ctx context.Context, orgID, reportID int64, status models.ReportStatus) error
	Transfer(ctx context.Context, fromOrgID, reportID, toOrgID int64) error
}

type reportService struct {
	repo      ReportRepository
	orgs      OrganizationRepository
	publisher realtime.Publisher
	logger    *logrus.Logger
}

func NewReportService(repo ReportRepository, orgs OrganizationRepository, publisher realtime.Publisher, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:      repo,
		orgs:      orgs,
		publisher: publisher,
		logger:    logger,
	}
}

// ListAssignments возвращает назначения организации, новые первыми
func (s *reportService) ListAssignments(ctx context.Context, orgID int64) ([]*models.Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "report",
		"method":          "ListAssignments",
		"organization_id": orgID,
	})

	assignments, err := s.repo.ListByOrganization(ctx, orgID)
	if err != nil {
		log.WithError(err).Error("Failed to list assignments from repository")
		return nil, fmt.Errorf("service: could not list assignments: %w", err)
	}

	log.WithField("count", len(assignments)).Debug("Assignments listed")
	return assignments, nil
}

// GetDetail возвращает детальную карточку назначения для организации
func (s *reportService) GetDetail(ctx context.Context, reportID, orgID int64) (*models.AssignmentDetail, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetDetail",
		"report_id": reportID,
	})

	detail, err := s.repo.GetDetail(ctx, reportID, orgID)
	if err != nil {
		log.WithError(err).Warn("Failed to get assignment detail")
		return nil, fmt.Errorf("service: could not get assignment detail: %w", err)
	}
	return detail, nil
}

// ChangeStatus меняет статус назначения и отчета. Обе записи
// обновляются в одной транзакции репозитория, рассогласование
// между ними невозможно.
func (s *reportService) ChangeStatus(ctx context.Context, orgID, reportID int64, status models.ReportStatus) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "report",
		"method":          "ChangeStatus",
		"report_id":       reportID,
		"organization_id": orgID,
		"status":          status,
	})

	if !models.ValidReportStatus(status) {
		log.Warn("Rejected unknown report status")
		return fmt.Errorf("service: unknown report status %q", status)
	}

	if err := s.repo.UpdateStatuses(ctx, reportID, orgID, status); err != nil {
		log.WithError(err).Error("Failed to update assignment and report status")
		return fmt.Errorf("service: could not change status: %w", err)
	}

	log.Info("Report status changed")
	return nil
}

// Transfer передает назначение другой организации: дистанция
// пересчитывается до новой организации, строка покидает список
// текущей. В канал организации-получателя уходит событие нового
// отчета; сбой доставки не отменяет передачу.
func (s *reportService) Transfer(ctx context.Context, fromOrgID, reportID, toOrgID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "Transfer",
		"report_id": reportID,
		"from_org":  fromOrgID,
		"to_org":    toOrgID,
	})

	if toOrgID == fromOrgID {
		return fmt.Errorf("service: cannot transfer assignment to the same organization")
	}

	dest, err := s.orgs.GetByID(ctx, toOrgID)
	if err != nil {
		log.WithError(err).Error("Failed to load destination organization")
		return fmt.Errorf("service: could not load destination organization: %w", err)
	}
	if dest == nil {
		return fmt.Errorf("service: destination organization %d not found", toOrgID)
	}

	report, err := s.repo.GetReport(ctx, reportID)
	if err != nil {
		log.WithError(err).Error("Failed to load report for transfer")
		return fmt.Errorf("service: could not load report: %w", err)
	}

	distance := geo.DistanceKm(
		geo.LatLng{Latitude: dest.Latitude, Longitude: dest.Longitude},
		geo.LatLng{Latitude: report.Latitude, Longitude: report.Longitude},
	)

	if err := s.repo.Transfer(ctx, reportID, fromOrgID, toOrgID, distance); err != nil {
		log.WithError(err).Error("Failed to transfer assignment")
		return fmt.Errorf("service: could not transfer assignment: %w", err)
	}

	// Для организации-получателя это новый отчет
	event := realtime.NewReportEvent(toOrgID, report.ID, report.Title)
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish new report event after transfer")
	}

	log.Info("Assignment transferred")
	return nil
}

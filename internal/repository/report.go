package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/dimassfeb-09/sima-app-web/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

// ListByOrganization возвращает назначения организации со встроенными
// срезами отчета и организации, новые первыми
func (r *ReportRepository) ListByOrganization(ctx context.Context, orgID int64) ([]*models.Assignment, error) {
	query := `
		SELECT
			a.id,
			a.assigned_at,
			a.status,
			a.distance,
			rp.id, rp.title, rp.description, rp.status, rp.latitude, rp.longitude,
			rp.address, COALESCE(rp.image_url, ''), rp.type, rp.user_id,
			o.id, o.name, o.latitude, o.longitude, o.user_id, o.instance_type
		FROM report_assignments a
		JOIN reports rp ON rp.id = a.report_id
		JOIN organizations o ON o.id = a.organization_id
		WHERE a.organization_id = $1
		ORDER BY a.assigned_at DESC;
	`
	rows, err := r.db.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]*models.Assignment, 0)
	for rows.Next() {
		a := &models.Assignment{}
		err := rows.Scan(
			&a.ID,
			&a.AssignedAt,
			&a.Status,
			&a.DistanceKm,
			&a.Report.ID, &a.Report.Title, &a.Report.Description, &a.Report.Status,
			&a.Report.Latitude, &a.Report.Longitude, &a.Report.Address,
			&a.Report.ImageURL, &a.Report.Type, &a.Report.UserID,
			&a.Organization.ID, &a.Organization.Name, &a.Organization.Latitude,
			&a.Organization.Longitude, &a.Organization.UserID, &a.Organization.InstanceType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return assignments, nil
}

// GetDetail возвращает детальную карточку назначения с данными заявителя
func (r *ReportRepository) GetDetail(ctx context.Context, reportID, orgID int64) (*models.AssignmentDetail, error) {
	query := `
		SELECT
			a.id,
			a.assigned_at,
			a.status,
			a.distance,
			rp.id, rp.title, rp.description, rp.status, rp.latitude, rp.longitude,
			rp.address, COALESCE(rp.image_url, ''), rp.type, rp.user_id,
			o.id, o.name, o.latitude, o.longitude, o.user_id, o.instance_type,
			u.id, u.full_name, u.email, u.phone
		FROM report_assignments a
		JOIN reports rp ON rp.id = a.report_id
		JOIN organizations o ON o.id = a.organization_id
		JOIN users u ON u.id = rp.user_id
		WHERE a.report_id = $1 AND a.organization_id = $2
		ORDER BY a.assigned_at DESC;
	`
	d := &models.AssignmentDetail{}
	err := r.db.QueryRow(ctx, query, reportID, orgID).Scan(
		&d.ID,
		&d.AssignedAt,
		&d.Status,
		&d.DistanceKm,
		&d.Report.ID, &d.Report.Title, &d.Report.Description, &d.Report.Status,
		&d.Report.Latitude, &d.Report.Longitude, &d.Report.Address,
		&d.Report.ImageURL, &d.Report.Type, &d.Report.UserID,
		&d.Organization.ID, &d.Organization.Name, &d.Organization.Latitude,
		&d.Organization.Longitude, &d.Organization.UserID, &d.Organization.InstanceType,
		&d.Reporter.ID, &d.Reporter.FullName, &d.Reporter.Email, &d.Reporter.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("assignment for report %d not found", reportID)
		}
		return nil, fmt.Errorf("failed to get assignment detail: %w", err)
	}
	return d, nil
}

// GetReport возвращает отчет по id
func (r *ReportRepository) GetReport(ctx context.Context, reportID int64) (*models.Report, error) {
	query := `
		SELECT id, title, description, status, latitude, longitude,
			address, COALESCE(image_url, ''), type, user_id
		FROM reports
		WHERE id = $1;
	`
	rp := &models.Report{}
	err := r.db.QueryRow(ctx, query, reportID).Scan(
		&rp.ID,
		&rp.Title,
		&rp.Description,
		&rp.Status,
		&rp.Latitude,
		&rp.Longitude,
		&rp.Address,
		&rp.ImageURL,
		&rp.Type,
		&rp.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %d not found", reportID)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return rp, nil
}

// UpdateStatuses обновляет статус назначения и статус отчета в одной
// транзакции. Частичный успех невозможен: сбой любого из двух
// обновлений откатывает оба.
func (r *ReportRepository) UpdateStatuses(ctx context.Context, reportID, orgID int64, status models.ReportStatus) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin status transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE report_assignments SET status = $1
		WHERE report_id = $2 AND organization_id = $3;
	`, status, reportID, orgID)
	if err != nil {
		return fmt.Errorf("failed to update assignment status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("assignment for report %d not found for update", reportID)
	}

	cmdTag, err = tx.Exec(ctx, `UPDATE reports SET status = $1 WHERE id = $2;`, status, reportID)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %d not found for update", reportID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit status transaction: %w", err)
	}
	return nil
}

// Transfer переписывает назначение на другую организацию и обновляет
// дистанцию. Назначение не удаляется и не создается заново - меняется
// только ссылка на организацию.
func (r *ReportRepository) Transfer(ctx context.Context, reportID, fromOrgID, toOrgID int64, distanceKm float64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transfer transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE report_assignments SET
			organization_id = $1,
			distance = $2
		WHERE report_id = $3 AND organization_id = $4;
	`, toOrgID, distanceKm, reportID, fromOrgID)
	if err != nil {
		return fmt.Errorf("failed to transfer assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("assignment for report %d not found for transfer", reportID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transfer transaction: %w", err)
	}
	return nil
}

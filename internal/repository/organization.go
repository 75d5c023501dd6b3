package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/dimassfeb-09/sima-app-web/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type OrganizationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewOrganizationRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.OrganizationRepository {
	return &OrganizationRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func orgCacheKey(userID int64) string {
	return fmt.Sprintf("organization:user:%d", userID)
}

// GetByUserID возвращает организацию пользователя (не более одной записи).
// Сначала проверяется кэш Redis; отсутствие организации не считается
// ошибкой - возвращается nil, nil.
func (r *OrganizationRepository) GetByUserID(ctx context.Context, userID int64) (*models.Organization, error) {
	if cached, err := r.getFromCache(ctx, userID); err == nil && cached != nil {
		return cached, nil
	}

	query := `
		SELECT id, name, latitude, longitude, user_id, instance_type
		FROM organizations
		WHERE user_id = $1;
	`
	org := &models.Organization{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&org.ID,
		&org.Name,
		&org.Latitude,
		&org.Longitude,
		&org.UserID,
		&org.InstanceType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization by user id: %w", err)
	}

	// Кэшируем по принципу best effort
	_ = r.setCache(ctx, org)

	return org, nil
}

// GetByID возвращает организацию по id или nil, nil, если ее нет
func (r *OrganizationRepository) GetByID(ctx context.Context, id int64) (*models.Organization, error) {
	query := `
		SELECT id, name, latitude, longitude, user_id, instance_type
		FROM organizations
		WHERE id = $1;
	`
	org := &models.Organization{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&org.ID,
		&org.Name,
		&org.Latitude,
		&org.Longitude,
		&org.UserID,
		&org.InstanceType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization by id: %w", err)
	}
	return org, nil
}

// Upsert создает организацию при первом сохранении настроек или
// обновляет существующую. Ключ - user_id: у пользователя не более
// одной организации. Кэш инвалидируется.
func (r *OrganizationRepository) Upsert(ctx context.Context, org *models.Organization) error {
	query := `
		INSERT INTO organizations (name, latitude, longitude, user_id, instance_type)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			instance_type = EXCLUDED.instance_type
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		org.Name,
		org.Latitude,
		org.Longitude,
		org.UserID,
		org.InstanceType,
	).Scan(&org.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert organization: %w", err)
	}

	if err := r.redisClient.Del(ctx, orgCacheKey(org.UserID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate organization cache: %w", err)
	}
	return nil
}

// ListByType возвращает организации заданного типа, опционально
// отфильтрованные по подстроке имени (поисковый выпадающий список)
func (r *OrganizationRepository) ListByType(ctx context.Context, instanceType, search string) ([]*models.Organization, error) {
	query := `
		SELECT id, name, latitude, longitude, user_id, instance_type
		FROM organizations
		WHERE instance_type = $1
			AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, instanceType, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	orgs := make([]*models.Organization, 0)
	for rows.Next() {
		org := &models.Organization{}
		err := rows.Scan(
			&org.ID,
			&org.Name,
			&org.Latitude,
			&org.Longitude,
			&org.UserID,
			&org.InstanceType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization row: %w", err)
		}
		orgs = append(orgs, org)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return orgs, nil
}

// getFromCache пытается получить организацию из Redis
func (r *OrganizationRepository) getFromCache(ctx context.Context, userID int64) (*models.Organization, error) {
	val, err := r.redisClient.Get(ctx, orgCacheKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization from cache: %w", err)
	}

	org := &models.Organization{}
	if err := json.Unmarshal(val, org); err != nil {
		return nil, fmt.Errorf("failed to unmarshal organization from cache: %w", err)
	}
	return org, nil
}

// setCache сохраняет организацию в Redis
func (r *OrganizationRepository) setCache(ctx context.Context, org *models.Organization) error {
	val, err := json.Marshal(org)
	if err != nil {
		return fmt.Errorf("failed to marshal organization for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, orgCacheKey(org.UserID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set organization in cache: %w", err)
	}
	return nil
}

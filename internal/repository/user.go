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

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// Create создает новую запись пользователя в бд
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (uid, full_name, email, phone, account_type, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.UID,
		user.FullName,
		user.Email,
		user.Phone,
		user.AccountType,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

const userColumns = `id, uid, full_name, email, phone, account_type, password_hash, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.UID,
		&user.FullName,
		&user.Email,
		&user.Phone,
		&user.AccountType,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByEmail возвращает пользователя по email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1;`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetByUID возвращает пользователя по внешнему идентификатору
func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE uid = $1;`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with uid %s not found", uid)
		}
		return nil, fmt.Errorf("failed to get user by uid: %w", err)
	}
	return user, nil
}

// GetByID возвращает пользователя по внутреннему id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1;`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// UpdateProfile обновляет отображаемое имя и телефон пользователя
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, fullName, phone string) error {
	query := `
		UPDATE users SET
			full_name = $1,
			phone = $2
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, fullName, phone, id)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %d not found for update", id)
	}
	return nil
}

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	"github.com/bizqueue/BQ-SchedulingService/pkg/dbmetrics"
	"github.com/bizqueue/BQ-SchedulingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя.
// Дубликат email даёт ErrEmailTaken (уникальный индекс на users.email).
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("full_name", "email", "password_hash", "role").
		Values(u.FullName, u.Email, u.PasswordHash, u.Role).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time

	return u, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getByCondition(ctx, squirrel.Eq{"id": id})
}

// GetByEmail получает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getByCondition(ctx, squirrel.Eq{"email": email})
}

// LinkBusiness привязывает бизнес к владельцу.
// Срабатывает только если бизнес ещё не привязан: повторная привязка даёт
// ErrUserNotFound и откатывает транзакцию создания бизнеса.
func (r *Repository) LinkBusiness(ctx context.Context, userID, businessID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("business_id", businessID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		Where(squirrel.Eq{"business_id": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: LinkBusiness - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: LinkBusiness - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: LinkBusiness - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *Repository) getByCondition(ctx context.Context, cond squirrel.Eq) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "full_name", "email", "password_hash", "role", "business_id", "created_at", "updated_at",
	).
		From("users").
		Where(cond).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getByCondition - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.BusinessID,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByCondition - scan user: %v", ErrScanRow, err)
	}

	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time

	return &u, nil
}

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const mysqlDuplicateEntry = 1062

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Role     string `db:"role"`
	Password string `db:"password"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, "SELECT id, name, role, password FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("select user %s: %w", id, err)
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, name, role, password FROM users ORDER BY name"); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRow(row))
	}
	return users, nil
}

// ReplaceAll swaps the whole user table inside one transaction.
func (r *UserRepository) ReplaceAll(ctx context.Context, users []domain.User) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM users"); err != nil {
		return fmt.Errorf("delete users: %w", err)
	}

	for _, user := range users {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO users (id, name, role, password) VALUES (?, ?, ?, ?)",
			user.ID, user.Name, string(user.Role), user.PasswordHash,
		)
		if err != nil {
			var mysqlErr *mysql.MySQLError
			if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
				return fmt.Errorf("%w: %s", domain.ErrUserAlreadyExists, user.Name)
			}
			return fmt.Errorf("insert user %s: %w", user.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit users: %w", err)
	}
	return nil
}

func mapUserRow(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Role:         domain.Role(row.Role),
		PasswordHash: row.Password,
	}
}

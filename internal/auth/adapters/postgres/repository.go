package postgres

import (
	"context"
	"database/sql"

	"fleet-dashboard-service/internal/auth/core/domain"
	"fleet-dashboard-service/internal/auth/core/ports"
	pgplatform "fleet-dashboard-service/internal/platform/postgres"
)

type (
	RowScanner = pgplatform.Rows
	DB         = pgplatform.Querier
)

const findByCredentialsSQL = `
SELECT id, email, name
FROM users
WHERE email = $1 AND password = $2
LIMIT 1`

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ ports.UserRepositoryPort = (*UserRepository)(nil)

func (r *UserRepository) FindByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, findByCredentialsSQL, email, password)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		// no match
		return nil, rows.Err()
	}

	var (
		id, mail string
		name     sql.NullString
	)
	if err := rows.Scan(&id, &mail, &name); err != nil {
		return nil, err
	}

	user := &domain.User{ID: id, Email: mail}
	if name.Valid {
		user.Name = &name.String
	}
	return user, nil
}

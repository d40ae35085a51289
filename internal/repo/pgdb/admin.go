package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"donation-registry-api/pkg/postgres"

	"github.com/google/uuid"
)

type AdminRepo struct {
	*postgres.Postgres
}

func NewAdminRepo(pgdb *postgres.Postgres) *AdminRepo {
	return &AdminRepo{pgdb}
}

func (r *AdminRepo) DoesAdminExistById(ctx context.Context, id string) (bool, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	existsSql, args, _ := r.SqlBuilder.
		Select("id").
		From("admins").
		Where("id = ?", uuidForm).
		ToSql()

	var adminId uuid.UUID
	err = r.Database.QueryRowContext(ctx, existsSql, args...).Scan(&adminId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"
	"donation-registry-api/internal/repo/repo_errors"
	"donation-registry-api/pkg/postgres"

	"github.com/google/uuid"
)

type HospitalRepo struct {
	*postgres.Postgres
}

func NewHospitalRepo(pgdb *postgres.Postgres) *HospitalRepo {
	return &HospitalRepo{pgdb}
}

func (r *HospitalRepo) ListHospitals(ctx context.Context) ([]entity.Hospital, error) {
	listSql, args, _ := r.SqlBuilder.
		Select("id", "name", "address", "contact", "email", "created_at").
		From("hospitals").
		OrderBy("name ASC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hospitals := make([]entity.Hospital, 0)
	for rows.Next() {
		var hospital entity.Hospital
		var createdAt time.Time
		if err := rows.Scan(&hospital.Id, &hospital.Name, &hospital.Address,
			&hospital.Contact, &hospital.Email, &createdAt); err != nil {
			return hospitals, err
		}
		hospital.CreatedAt = createdAt.Format(time.RFC3339)
		hospitals = append(hospitals, hospital)
	}
	if err = rows.Err(); err != nil {
		return hospitals, err
	}

	return hospitals, nil
}

func (r *HospitalRepo) GetHospitalById(ctx context.Context, id string) (*entity.Hospital, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id", "name", "address", "contact", "email", "created_at").
		From("hospitals").
		Where("id = ?", uuidForm).
		ToSql()

	var hospital entity.Hospital
	var createdAt time.Time
	err = r.Database.QueryRowContext(ctx, getSql, args...).
		Scan(&hospital.Id, &hospital.Name, &hospital.Address, &hospital.Contact, &hospital.Email, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	hospital.CreatedAt = createdAt.Format(time.RFC3339)

	return &hospital, nil
}

func (r *HospitalRepo) DoesHospitalExistById(ctx context.Context, id string) (bool, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	existsSql, args, _ := r.SqlBuilder.
		Select("id").
		From("hospitals").
		Where("id = ?", uuidForm).
		ToSql()

	var hospitalId uuid.UUID
	err = r.Database.QueryRowContext(ctx, existsSql, args...).Scan(&hospitalId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (r *HospitalRepo) GetHospitalStats(ctx context.Context, id string) (*entity.HospitalStats, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	stats := &entity.HospitalStats{
		Inventory: make([]entity.BloodTypeQuantity, 0),
		Requests:  make([]entity.StatusCount, 0),
	}

	inventorySql, args, _ := r.SqlBuilder.
		Select("blood_type", "coalesce(sum(quantity), 0)").
		From("blood_inventory").
		Where("hospital_id = ?", uuidForm).
		Where("status = ?", common.UnitAvailable).
		GroupBy("blood_type").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, inventorySql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row entity.BloodTypeQuantity
		if err := rows.Scan(&row.BloodType, &row.Total); err != nil {
			return nil, err
		}
		stats.Inventory = append(stats.Inventory, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	donationsSql, args, _ := r.SqlBuilder.
		Select("count(*)").
		From("donation_records").
		Where("hospital_id = ?", uuidForm).
		ToSql()

	if err := r.Database.QueryRowContext(ctx, donationsSql, args...).Scan(&stats.TotalDonations); err != nil {
		return nil, err
	}

	requestsSql, args, _ := r.SqlBuilder.
		Select("status", "count(*)").
		From("blood_requests").
		Where("hospital_id = ?", uuidForm).
		GroupBy("status").
		ToSql()

	requestRows, err := r.Database.QueryContext(ctx, requestsSql, args...)
	if err != nil {
		return nil, err
	}
	defer requestRows.Close()

	for requestRows.Next() {
		var row entity.StatusCount
		if err := requestRows.Scan(&row.Status, &row.Count); err != nil {
			return nil, err
		}
		stats.Requests = append(stats.Requests, row)
	}
	if err = requestRows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

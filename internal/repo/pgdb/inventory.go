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

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type InventoryRepo struct {
	*postgres.Postgres
}

func NewInventoryRepo(pgdb *postgres.Postgres) *InventoryRepo {
	return &InventoryRepo{pgdb}
}

const unitColumns = "bi.id, bi.blood_type, bi.quantity, bi.collection_date, bi.expiry_date, " +
	"bi.status, bi.hospital_id, bi.created_at, h.name"

func (r *InventoryRepo) AddUnit(ctx context.Context, input *entity.CreateInventoryUnitInput) (uuid.UUID, error) {
	var hospitalId interface{}
	if input.HospitalId != nil {
		hospitalId = *input.HospitalId
	}

	addUnitSql, args, _ := r.SqlBuilder.
		Insert("blood_inventory").
		Columns("blood_type", "quantity", "collection_date", "expiry_date", "status", "hospital_id").
		Values(input.BloodType, input.Quantity, input.CollectionDate, input.ExpiryDate, input.Status, hospitalId).
		Suffix("RETURNING id").
		ToSql()

	var unitId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, addUnitSql, args...).Scan(&unitId); err != nil {
		return uuid.Nil, err
	}

	return unitId, nil
}

func (r *InventoryRepo) GetUnitById(ctx context.Context, id string) (*entity.InventoryUnit, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getUnitSql, args, _ := r.SqlBuilder.
		Select(unitColumns).
		From("blood_inventory bi").
		LeftJoin("hospitals h on bi.hospital_id = h.id").
		Where("bi.id = ?", uuidForm).
		ToSql()

	row := r.Database.QueryRowContext(ctx, getUnitSql, args...)
	unit, err := scanUnit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return unit, nil
}

func (r *InventoryRepo) UpdateUnit(ctx context.Context, id string, input *entity.UpdateInventoryUnitInput) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	updateUnitSql, args, _ := r.SqlBuilder.
		Update("blood_inventory").
		Set("quantity", input.Quantity).
		Set("status", input.Status).
		Set("expiry_date", input.ExpiryDate).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateUnitSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *InventoryRepo) DeleteUnit(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	deleteUnitSql, args, _ := r.SqlBuilder.
		Delete("blood_inventory").
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, deleteUnitSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func buildListUnitsQuery(b squirrel.StatementBuilderType, filter *entity.InventoryFilter) squirrel.SelectBuilder {
	builder := b.
		Select(unitColumns).
		From("blood_inventory bi").
		LeftJoin("hospitals h on bi.hospital_id = h.id")

	if filter.BloodType != "" {
		builder = builder.Where("bi.blood_type = ?", filter.BloodType)
	}

	if filter.HospitalId != "" {
		builder = builder.Where("bi.hospital_id = ?", filter.HospitalId)
	}

	if filter.Status != "" {
		builder = builder.Where("bi.status = ?", filter.Status)
	}

	if filter.ExpiringBefore != nil {
		builder = builder.Where("bi.expiry_date <= ?", filter.ExpiringBefore.Format(dateLayout))
	}

	// soonest-expiring first, a triage aid for the dashboard
	return builder.OrderBy("bi.expiry_date ASC")
}

func (r *InventoryRepo) ListUnits(ctx context.Context, filter *entity.InventoryFilter) ([]entity.InventoryUnit, error) {
	listSql, args, _ := buildListUnitsQuery(r.SqlBuilder, filter).ToSql()

	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := make([]entity.InventoryUnit, 0)
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return units, err
		}
		units = append(units, *unit)
	}
	if err = rows.Err(); err != nil {
		return units, err
	}

	return units, nil
}

func (r *InventoryRepo) GetInventorySummary(ctx context.Context, expiringBefore time.Time) (*entity.InventorySummary, error) {
	summary := &entity.InventorySummary{
		ByBloodType: make([]entity.BloodTypeQuantity, 0),
		ByHospital:  make([]entity.HospitalQuantity, 0),
	}

	totalSql, args, _ := r.SqlBuilder.
		Select("coalesce(sum(quantity), 0)").
		From("blood_inventory").
		Where("status = ?", common.UnitAvailable).
		ToSql()

	if err := r.Database.QueryRowContext(ctx, totalSql, args...).Scan(&summary.TotalUnits); err != nil {
		return nil, err
	}

	byTypeSql, args, _ := r.SqlBuilder.
		Select("blood_type", "coalesce(sum(quantity), 0)").
		From("blood_inventory").
		Where("status = ?", common.UnitAvailable).
		GroupBy("blood_type").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, byTypeSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row entity.BloodTypeQuantity
		if err := rows.Scan(&row.BloodType, &row.Total); err != nil {
			return nil, err
		}
		summary.ByBloodType = append(summary.ByBloodType, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	expiringSql, args, _ := r.SqlBuilder.
		Select("count(*)").
		From("blood_inventory").
		Where("status = ?", common.UnitAvailable).
		Where("expiry_date <= ?", expiringBefore.Format(dateLayout)).
		ToSql()

	if err := r.Database.QueryRowContext(ctx, expiringSql, args...).Scan(&summary.ExpiringSoon); err != nil {
		return nil, err
	}

	byHospitalSql, args, _ := r.SqlBuilder.
		Select("h.name", "coalesce(sum(bi.quantity), 0)").
		From("blood_inventory bi").
		InnerJoin("hospitals h on bi.hospital_id = h.id").
		Where("bi.status = ?", common.UnitAvailable).
		GroupBy("h.name").
		ToSql()

	hospitalRows, err := r.Database.QueryContext(ctx, byHospitalSql, args...)
	if err != nil {
		return nil, err
	}
	defer hospitalRows.Close()

	for hospitalRows.Next() {
		var row entity.HospitalQuantity
		if err := hospitalRows.Scan(&row.HospitalName, &row.Total); err != nil {
			return nil, err
		}
		summary.ByHospital = append(summary.ByHospital, row)
	}
	if err = hospitalRows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}

func scanUnit(row rowScanner) (*entity.InventoryUnit, error) {
	var unit entity.InventoryUnit
	var hospitalId uuid.NullUUID
	var collectionDate, expiryDate, createdAt time.Time
	var hospitalName sql.NullString

	err := row.Scan(&unit.Id, &unit.BloodType, &unit.Quantity, &collectionDate, &expiryDate,
		&unit.Status, &hospitalId, &createdAt, &hospitalName)
	if err != nil {
		return nil, err
	}

	if hospitalId.Valid {
		unit.HospitalId = &hospitalId.UUID
	}
	unit.CollectionDate = formatDate(collectionDate)
	unit.ExpiryDate = formatDate(expiryDate)
	unit.CreatedAt = createdAt.Format(time.RFC3339)
	unit.HospitalName = hospitalName.String

	return &unit, nil
}

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

type DonationRepo struct {
	*postgres.Postgres
}

func NewDonationRepo(pgdb *postgres.Postgres) *DonationRepo {
	return &DonationRepo{pgdb}
}

// RecordDonation runs the intake as one transaction: the donation record,
// the donor's last donation date and the new inventory unit commit together
// or not at all.
func (r *DonationRepo) RecordDonation(ctx context.Context, input *entity.CreateDonationInput) (uuid.UUID, error) {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}

	var hospitalId interface{}
	if input.HospitalId != nil {
		hospitalId = *input.HospitalId
	}

	createDonationSql, args, _ := r.SqlBuilder.
		Insert("donation_records").
		Columns("donor_id", "hospital_id", "donation_date", "blood_type", "units_donated", "health_status", "notes").
		Values(input.DonorId, hospitalId, input.DonationDate, input.BloodType, input.UnitsDonated, input.HealthStatus, input.Notes).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var donationId uuid.UUID
	if err = tx.QueryRow(createDonationSql, args...).Scan(&donationId); err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	updateDonorSql, args, _ := r.SqlBuilder.
		Update("donors").
		Set("last_donation_date", input.DonationDate).
		Where("id = ?", input.DonorId).
		RunWith(tx).
		ToSql()

	if _, err = tx.Exec(updateDonorSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	createUnitSql, args, _ := r.SqlBuilder.
		Insert("blood_inventory").
		Columns("blood_type", "quantity", "collection_date", "expiry_date", "status", "hospital_id").
		Values(input.BloodType, input.UnitsDonated, input.DonationDate, input.ExpiryDate, common.UnitAvailable, hospitalId).
		RunWith(tx).
		ToSql()

	if _, err = tx.Exec(createUnitSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return donationId, nil
}

const donationColumns = "dr.id, dr.donor_id, dr.hospital_id, dr.donation_date, dr.blood_type, " +
	"dr.units_donated, dr.health_status, dr.notes, dr.created_at, d.first_name, d.last_name, h.name"

func (r *DonationRepo) GetDonationById(ctx context.Context, id string) (*entity.DonationRecord, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getDonationSql, args, _ := r.SqlBuilder.
		Select(donationColumns).
		From("donation_records dr").
		InnerJoin("donors d on dr.donor_id = d.id").
		LeftJoin("hospitals h on dr.hospital_id = h.id").
		Where("dr.id = ?", uuidForm).
		ToSql()

	row := r.Database.QueryRowContext(ctx, getDonationSql, args...)
	donation, err := scanDonation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return donation, nil
}

func buildListDonationsQuery(b squirrel.StatementBuilderType, filter *entity.DonationFilter) squirrel.SelectBuilder {
	builder := b.
		Select(donationColumns).
		From("donation_records dr").
		InnerJoin("donors d on dr.donor_id = d.id").
		LeftJoin("hospitals h on dr.hospital_id = h.id")

	if filter.DonorId != "" {
		builder = builder.Where("dr.donor_id = ?", filter.DonorId)
	}

	if filter.HospitalId != "" {
		builder = builder.Where("dr.hospital_id = ?", filter.HospitalId)
	}

	if filter.BloodType != "" {
		builder = builder.Where("dr.blood_type = ?", filter.BloodType)
	}

	if filter.StartDate != "" {
		builder = builder.Where("dr.donation_date >= ?", filter.StartDate)
	}

	if filter.EndDate != "" {
		builder = builder.Where("dr.donation_date <= ?", filter.EndDate)
	}

	return builder.OrderBy("dr.donation_date DESC")
}

func (r *DonationRepo) ListDonations(ctx context.Context, filter *entity.DonationFilter) ([]entity.DonationRecord, error) {
	listSql, args, _ := buildListDonationsQuery(r.SqlBuilder, filter).ToSql()

	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	donations := make([]entity.DonationRecord, 0)
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			return donations, err
		}
		donations = append(donations, *donation)
	}
	if err = rows.Err(); err != nil {
		return donations, err
	}

	return donations, nil
}

func (r *DonationRepo) CountDonationsByDonorId(ctx context.Context, donorId string) (int, error) {
	uuidForm, err := uuid.Parse(donorId)
	if err != nil {
		return 0, repo_errors.ErrNotFound
	}

	countSql, args, _ := r.SqlBuilder.
		Select("count(*)").
		From("donation_records").
		Where("donor_id = ?", uuidForm).
		ToSql()

	var count int
	if err := r.Database.QueryRowContext(ctx, countSql, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *DonationRepo) GetDonationStats(ctx context.Context, filter *entity.DonationStatsFilter) (*entity.DonationStats, error) {
	stats := &entity.DonationStats{
		ByBloodType: make([]entity.BloodTypeCount, 0),
		ByHospital:  make([]entity.HospitalCount, 0),
	}

	totalBuilder := r.SqlBuilder.
		Select("count(*)").
		From("donation_records")
	totalSql, args, _ := applyDonationStatsFilter(totalBuilder, filter, "").ToSql()

	if err := r.Database.QueryRowContext(ctx, totalSql, args...).Scan(&stats.Total); err != nil {
		return nil, err
	}

	byTypeBuilder := r.SqlBuilder.
		Select("blood_type", "count(*)").
		From("donation_records")
	byTypeSql, args, _ := applyDonationStatsFilter(byTypeBuilder, filter, "").
		GroupBy("blood_type").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, byTypeSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row entity.BloodTypeCount
		if err := rows.Scan(&row.BloodType, &row.Count); err != nil {
			return nil, err
		}
		stats.ByBloodType = append(stats.ByBloodType, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	byHospitalBuilder := r.SqlBuilder.
		Select("h.name", "count(*)").
		From("donation_records dr").
		InnerJoin("hospitals h on dr.hospital_id = h.id")
	byHospitalSql, args, _ := applyDonationStatsFilter(byHospitalBuilder, filter, "dr.").
		GroupBy("h.name").
		ToSql()

	hospitalRows, err := r.Database.QueryContext(ctx, byHospitalSql, args...)
	if err != nil {
		return nil, err
	}
	defer hospitalRows.Close()

	for hospitalRows.Next() {
		var row entity.HospitalCount
		if err := hospitalRows.Scan(&row.HospitalName, &row.Count); err != nil {
			return nil, err
		}
		stats.ByHospital = append(stats.ByHospital, row)
	}
	if err = hospitalRows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func applyDonationStatsFilter(builder squirrel.SelectBuilder, filter *entity.DonationStatsFilter, prefix string) squirrel.SelectBuilder {
	if filter.StartDate != "" {
		builder = builder.Where(prefix+"donation_date >= ?", filter.StartDate)
	}

	if filter.EndDate != "" {
		builder = builder.Where(prefix+"donation_date <= ?", filter.EndDate)
	}

	if filter.HospitalId != "" {
		builder = builder.Where(prefix+"hospital_id = ?", filter.HospitalId)
	}

	return builder
}

func scanDonation(row rowScanner) (*entity.DonationRecord, error) {
	var donation entity.DonationRecord
	var hospitalId uuid.NullUUID
	var donationDate, createdAt time.Time
	var hospitalName sql.NullString

	err := row.Scan(&donation.Id, &donation.DonorId, &hospitalId, &donationDate,
		&donation.BloodType, &donation.UnitsDonated, &donation.HealthStatus, &donation.Notes,
		&createdAt, &donation.DonorFirstName, &donation.DonorLastName, &hospitalName)
	if err != nil {
		return nil, err
	}

	if hospitalId.Valid {
		donation.HospitalId = &hospitalId.UUID
	}
	donation.DonationDate = formatDate(donationDate)
	donation.CreatedAt = createdAt.Format(time.RFC3339)
	donation.HospitalName = hospitalName.String

	return &donation, nil
}

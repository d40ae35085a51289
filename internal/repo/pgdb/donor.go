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

type DonorRepo struct {
	*postgres.Postgres
}

func NewDonorRepo(pgdb *postgres.Postgres) *DonorRepo {
	return &DonorRepo{pgdb}
}

const donorColumns = "id, first_name, last_name, blood_type, date_of_birth, gender, " +
	"contact_number, email, address, medical_history, last_donation_date, eligibility_status, created_at"

func (r *DonorRepo) CreateDonor(ctx context.Context, input *entity.CreateDonorInput) (uuid.UUID, error) {
	createDonorSql, args, _ := r.SqlBuilder.
		Insert("donors").
		Columns("first_name", "last_name", "blood_type", "date_of_birth", "gender",
			"contact_number", "email", "address", "medical_history", "eligibility_status").
		Values(input.FirstName, input.LastName, input.BloodType, input.DateOfBirth, input.Gender,
			input.ContactNumber, input.Email, input.Address, input.MedicalHistory, input.EligibilityStatus).
		Suffix("RETURNING id").
		ToSql()

	var donorId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createDonorSql, args...).Scan(&donorId); err != nil {
		return uuid.Nil, err
	}

	return donorId, nil
}

func (r *DonorRepo) GetDonorById(ctx context.Context, id string) (*entity.Donor, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getDonorSql, args, _ := r.SqlBuilder.
		Select(donorColumns).
		From("donors").
		Where("id = ?", uuidForm).
		ToSql()

	row := r.Database.QueryRowContext(ctx, getDonorSql, args...)
	donor, err := scanDonor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return donor, nil
}

func (r *DonorRepo) UpdateDonor(ctx context.Context, id string, input *entity.UpdateDonorInput) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	var lastDonation interface{}
	if input.LastDonationDate != nil {
		lastDonation = *input.LastDonationDate
	}

	updateDonorSql, args, _ := r.SqlBuilder.
		Update("donors").
		Set("first_name", input.FirstName).
		Set("last_name", input.LastName).
		Set("blood_type", input.BloodType).
		Set("date_of_birth", input.DateOfBirth).
		Set("gender", input.Gender).
		Set("contact_number", input.ContactNumber).
		Set("email", input.Email).
		Set("address", input.Address).
		Set("medical_history", input.MedicalHistory).
		Set("eligibility_status", input.EligibilityStatus).
		Set("last_donation_date", lastDonation).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateDonorSql, args...)
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

func (r *DonorRepo) DeleteDonor(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	deleteDonorSql, args, _ := r.SqlBuilder.
		Delete("donors").
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, deleteDonorSql, args...)
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

func buildListDonorsQuery(b squirrel.StatementBuilderType, filter *entity.DonorFilter) squirrel.SelectBuilder {
	builder := b.
		Select(donorColumns).
		From("donors")

	if filter.BloodType != "" {
		builder = builder.Where("blood_type = ?", filter.BloodType)
	}

	if filter.Eligibility != "" {
		builder = builder.Where("eligibility_status = ?", filter.Eligibility)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	return builder.OrderBy("created_at DESC")
}

func (r *DonorRepo) ListDonors(ctx context.Context, filter *entity.DonorFilter) ([]entity.Donor, error) {
	listDonorsSql, args, _ := buildListDonorsQuery(r.SqlBuilder, filter).ToSql()

	rows, err := r.Database.QueryContext(ctx, listDonorsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	donors := make([]entity.Donor, 0)
	for rows.Next() {
		donor, err := scanDonor(rows)
		if err != nil {
			return donors, err
		}
		donors = append(donors, *donor)
	}
	if err = rows.Err(); err != nil {
		return donors, err
	}

	return donors, nil
}

func (r *DonorRepo) GetDonorStats(ctx context.Context) (*entity.DonorStats, error) {
	stats := &entity.DonorStats{ByBloodType: make([]entity.BloodTypeCount, 0)}

	totalSql, args, _ := r.SqlBuilder.
		Select("count(*)").
		From("donors").
		ToSql()

	if err := r.Database.QueryRowContext(ctx, totalSql, args...).Scan(&stats.Total); err != nil {
		return nil, err
	}

	eligibleSql, args, _ := r.SqlBuilder.
		Select("count(*)").
		From("donors").
		Where("eligibility_status = ?", common.Eligible).
		ToSql()

	if err := r.Database.QueryRowContext(ctx, eligibleSql, args...).Scan(&stats.Eligible); err != nil {
		return nil, err
	}

	byTypeSql, args, _ := r.SqlBuilder.
		Select("blood_type", "count(*)").
		From("donors").
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

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDonor(row rowScanner) (*entity.Donor, error) {
	var donor entity.Donor
	var dateOfBirth, createdAt time.Time
	var lastDonation sql.NullTime

	err := row.Scan(&donor.Id, &donor.FirstName, &donor.LastName, &donor.BloodType,
		&dateOfBirth, &donor.Gender, &donor.ContactNumber, &donor.Email, &donor.Address,
		&donor.MedicalHistory, &lastDonation, &donor.EligibilityStatus, &createdAt)
	if err != nil {
		return nil, err
	}

	donor.DateOfBirth = formatDate(dateOfBirth)
	donor.LastDonationDate = formatNullDate(lastDonation)
	donor.CreatedAt = createdAt.Format(time.RFC3339)

	return &donor, nil
}

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

type RequestRepo struct {
	*postgres.Postgres
}

func NewRequestRepo(pgdb *postgres.Postgres) *RequestRepo {
	return &RequestRepo{pgdb}
}

const requestColumns = "br.id, br.hospital_id, br.blood_type, br.units_requested, br.urgency, " +
	"br.request_date, br.required_by_date, br.status, br.approved_by, br.approval_date, " +
	"br.completion_date, br.notes, h.name, a.full_name"

func (r *RequestRepo) CreateRequest(ctx context.Context, input *entity.CreateRequestInput) (uuid.UUID, error) {
	var requiredBy interface{}
	if input.RequiredByDate != nil {
		requiredBy = *input.RequiredByDate
	}

	createRequestSql, args, _ := r.SqlBuilder.
		Insert("blood_requests").
		Columns("hospital_id", "blood_type", "units_requested", "urgency", "required_by_date", "notes", "status").
		Values(input.HospitalId, input.BloodType, input.UnitsRequested, input.Urgency, requiredBy, input.Notes, input.Status).
		Suffix("RETURNING id").
		ToSql()

	var requestId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createRequestSql, args...).Scan(&requestId); err != nil {
		return uuid.Nil, err
	}

	return requestId, nil
}

func (r *RequestRepo) GetRequestById(ctx context.Context, id string) (*entity.BloodRequest, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getRequestSql, args, _ := r.SqlBuilder.
		Select(requestColumns).
		From("blood_requests br").
		InnerJoin("hospitals h on br.hospital_id = h.id").
		LeftJoin("admins a on br.approved_by = a.id").
		Where("br.id = ?", uuidForm).
		ToSql()

	row := r.Database.QueryRowContext(ctx, getRequestSql, args...)
	request, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return request, nil
}

func (r *RequestRepo) ApproveRequest(ctx context.Context, id string, adminId uuid.UUID, approvedAt time.Time) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	approveSql, args, _ := r.SqlBuilder.
		Update("blood_requests").
		Set("status", common.RequestApproved).
		Set("approved_by", adminId).
		Set("approval_date", approvedAt).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, approveSql, args...)
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

func (r *RequestRepo) RejectRequest(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	rejectSql, args, _ := r.SqlBuilder.
		Update("blood_requests").
		Set("status", common.RequestRejected).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, rejectSql, args...)
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

// CompleteRequest stamps the completion and decrements one qualifying
// inventory unit in the same transaction. The first-expiring qualifying
// unit is taken, locked with FOR UPDATE so two concurrent completions
// cannot drain the same row. The completion update only lands on an
// Approved request, so a second completion of the same request rolls the
// whole transaction back with ErrConflict instead of decrementing twice.
// When no unit qualifies the request still completes and the caller is
// told via the returned bool.
func (r *RequestRepo) CompleteRequest(ctx context.Context, id string, bloodType common.BloodType, units int, completedAt time.Time) (bool, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, repo_errors.ErrNotFound
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}

	pickUnitSql, args, _ := r.SqlBuilder.
		Select("id").
		From("blood_inventory").
		Where("blood_type = ?", bloodType).
		Where("status = ?", common.UnitAvailable).
		Where("quantity >= ?", units).
		OrderBy("expiry_date ASC").
		Limit(1).
		Suffix("FOR UPDATE").
		RunWith(tx).
		ToSql()

	decremented := false
	var unitId uuid.UUID
	err = tx.QueryRow(pickUnitSql, args...).Scan(&unitId)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		if e := tx.Rollback(); e != nil {
			return false, e
		}

		return false, err
	}

	if err == nil {
		decrementSql, args, _ := r.SqlBuilder.
			Update("blood_inventory").
			Set("quantity", squirrel.Expr("quantity - ?", units)).
			Where("id = ?", unitId).
			RunWith(tx).
			ToSql()

		if _, err = tx.Exec(decrementSql, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return false, e
			}

			return false, err
		}
		decremented = true
	}

	completeSql, args, _ := r.SqlBuilder.
		Update("blood_requests").
		Set("status", common.RequestCompleted).
		Set("completion_date", completedAt).
		Where("id = ?", uuidForm).
		Where("status = ?", common.RequestApproved).
		RunWith(tx).
		ToSql()

	result, err := tx.Exec(completeSql, args...)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return false, e
		}

		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return false, e
		}

		return false, err
	}
	if affected == 0 {
		if e := tx.Rollback(); e != nil {
			return false, e
		}

		return false, repo_errors.ErrConflict
	}

	if err = tx.Commit(); err != nil {
		return false, err
	}

	return decremented, nil
}

func (r *RequestRepo) DeleteRequest(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	deleteSql, args, _ := r.SqlBuilder.
		Delete("blood_requests").
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, deleteSql, args...)
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

func buildListRequestsQuery(b squirrel.StatementBuilderType, filter *entity.RequestFilter) squirrel.SelectBuilder {
	builder := b.
		Select(requestColumns).
		From("blood_requests br").
		InnerJoin("hospitals h on br.hospital_id = h.id").
		LeftJoin("admins a on br.approved_by = a.id")

	if filter.Status != "" {
		builder = builder.Where("br.status = ?", filter.Status)
	}

	if filter.HospitalId != "" {
		builder = builder.Where("br.hospital_id = ?", filter.HospitalId)
	}

	if filter.BloodType != "" {
		builder = builder.Where("br.blood_type = ?", filter.BloodType)
	}

	if filter.Urgency != "" {
		builder = builder.Where("br.urgency = ?", filter.Urgency)
	}

	return builder.OrderBy("br.request_date DESC")
}

func (r *RequestRepo) ListRequests(ctx context.Context, filter *entity.RequestFilter) ([]entity.BloodRequest, error) {
	listSql, args, _ := buildListRequestsQuery(r.SqlBuilder, filter).ToSql()

	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]entity.BloodRequest, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return requests, err
		}
		requests = append(requests, *request)
	}
	if err = rows.Err(); err != nil {
		return requests, err
	}

	return requests, nil
}

func (r *RequestRepo) GetRequestStats(ctx context.Context) (*entity.RequestStats, error) {
	stats := &entity.RequestStats{
		ByStatus:  make([]entity.StatusCount, 0),
		ByUrgency: make([]entity.UrgencyCount, 0),
	}

	byStatusSql, args, _ := r.SqlBuilder.
		Select("status", "count(*)").
		From("blood_requests").
		GroupBy("status").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, byStatusSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row entity.StatusCount
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, err
		}
		stats.ByStatus = append(stats.ByStatus, row)
		if row.Status == common.RequestPending {
			stats.PendingCount = row.Count
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	byUrgencySql, args, _ := r.SqlBuilder.
		Select("urgency", "count(*)").
		From("blood_requests").
		GroupBy("urgency").
		ToSql()

	urgencyRows, err := r.Database.QueryContext(ctx, byUrgencySql, args...)
	if err != nil {
		return nil, err
	}
	defer urgencyRows.Close()

	for urgencyRows.Next() {
		var row entity.UrgencyCount
		if err := urgencyRows.Scan(&row.Urgency, &row.Count); err != nil {
			return nil, err
		}
		stats.ByUrgency = append(stats.ByUrgency, row)
	}
	if err = urgencyRows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func scanRequest(row rowScanner) (*entity.BloodRequest, error) {
	var request entity.BloodRequest
	var requestDate time.Time
	var requiredBy sql.NullTime
	var approvedBy uuid.NullUUID
	var approvalDate, completionDate sql.NullTime
	var approvedByName sql.NullString

	err := row.Scan(&request.Id, &request.HospitalId, &request.BloodType, &request.UnitsRequested,
		&request.Urgency, &requestDate, &requiredBy, &request.Status, &approvedBy,
		&approvalDate, &completionDate, &request.Notes, &request.HospitalName, &approvedByName)
	if err != nil {
		return nil, err
	}

	request.RequestDate = requestDate.Format(time.RFC3339)
	request.RequiredByDate = formatNullDate(requiredBy)
	if approvedBy.Valid {
		request.ApprovedBy = &approvedBy.UUID
	}
	request.ApprovalDate = formatNullTimestamp(approvalDate)
	request.CompletionDate = formatNullTimestamp(completionDate)
	request.ApprovedByName = approvedByName.String

	return &request, nil
}

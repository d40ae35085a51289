package pgdb

import (
	"testing"
	"time"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func TestBuildListDonorsQuery(t *testing.T) {
	sql, args, err := buildListDonorsQuery(testBuilder, &entity.DonorFilter{
		BloodType:   common.OPositive,
		Eligibility: common.Eligible,
		Search:      "may",
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "blood_type = $1")
	assert.Contains(t, sql, "eligibility_status = $2")
	assert.Contains(t, sql, "first_name ILIKE $3 OR last_name ILIKE $4 OR email ILIKE $5")
	assert.Contains(t, sql, "ORDER BY created_at DESC")
	assert.Equal(t, []interface{}{common.OPositive, common.Eligible, "%may%", "%may%", "%may%"}, args)
}

func TestBuildListDonorsQueryNoFilter(t *testing.T) {
	sql, args, err := buildListDonorsQuery(testBuilder, &entity.DonorFilter{}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestBuildListUnitsQuery(t *testing.T) {
	cutoff, _ := time.Parse(dateLayout, "2024-10-20")
	sql, args, err := buildListUnitsQuery(testBuilder, &entity.InventoryFilter{
		BloodType:      common.ABNegative,
		Status:         common.UnitAvailable,
		ExpiringBefore: &cutoff,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "bi.blood_type = $1")
	assert.Contains(t, sql, "bi.status = $2")
	assert.Contains(t, sql, "bi.expiry_date <= $3")
	assert.Contains(t, sql, "ORDER BY bi.expiry_date ASC")
	assert.Equal(t, []interface{}{common.ABNegative, common.UnitAvailable, "2024-10-20"}, args)
}

func TestBuildListDonationsQuery(t *testing.T) {
	sql, args, err := buildListDonationsQuery(testBuilder, &entity.DonationFilter{
		DonorId:   "9d0a1f0c-0000-0000-0000-000000000001",
		BloodType: common.BPositive,
		StartDate: "2024-01-01",
		EndDate:   "2024-06-30",
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INNER JOIN donors d on dr.donor_id = d.id")
	assert.Contains(t, sql, "LEFT JOIN hospitals h on dr.hospital_id = h.id")
	assert.Contains(t, sql, "dr.donor_id = $1")
	assert.Contains(t, sql, "dr.blood_type = $2")
	assert.Contains(t, sql, "dr.donation_date >= $3")
	assert.Contains(t, sql, "dr.donation_date <= $4")
	assert.Contains(t, sql, "ORDER BY dr.donation_date DESC")
	assert.Len(t, args, 4)
}

func TestBuildListRequestsQuery(t *testing.T) {
	sql, args, err := buildListRequestsQuery(testBuilder, &entity.RequestFilter{
		Status:  common.RequestPending,
		Urgency: common.UrgencyCritical,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INNER JOIN hospitals h on br.hospital_id = h.id")
	assert.Contains(t, sql, "LEFT JOIN admins a on br.approved_by = a.id")
	assert.Contains(t, sql, "br.status = $1")
	assert.Contains(t, sql, "br.urgency = $2")
	assert.Contains(t, sql, "ORDER BY br.request_date DESC")
	assert.Equal(t, []interface{}{common.RequestPending, common.UrgencyCritical}, args)
}

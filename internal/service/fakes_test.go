package service

import (
	"context"
	"time"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"
	"donation-registry-api/internal/repo"
	"donation-registry-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// In-memory stand-ins for the pgdb repositories. Each fake returns its
// canned fields and records the inputs it saw, so tests can assert on
// what the service handed down.

type fakeDonorRepo struct {
	donor        *entity.Donor
	stats        *entity.DonorStats
	createdInput *entity.CreateDonorInput
	createdId    uuid.UUID
	updatedInput *entity.UpdateDonorInput
	deletedId    string
	listFilter   *entity.DonorFilter
}

func (f *fakeDonorRepo) CreateDonor(_ context.Context, input *entity.CreateDonorInput) (uuid.UUID, error) {
	f.createdInput = input
	if f.createdId == uuid.Nil {
		f.createdId = uuid.New()
	}
	if f.donor != nil {
		f.donor.Id = f.createdId
	}

	return f.createdId, nil
}

func (f *fakeDonorRepo) GetDonorById(_ context.Context, id string) (*entity.Donor, error) {
	if f.donor == nil {
		return nil, repo_errors.ErrNotFound
	}

	return f.donor, nil
}

func (f *fakeDonorRepo) UpdateDonor(_ context.Context, id string, input *entity.UpdateDonorInput) error {
	if f.donor == nil {
		return repo_errors.ErrNotFound
	}
	f.updatedInput = input

	return nil
}

func (f *fakeDonorRepo) DeleteDonor(_ context.Context, id string) error {
	if f.donor == nil {
		return repo_errors.ErrNotFound
	}
	f.deletedId = id

	return nil
}

func (f *fakeDonorRepo) ListDonors(_ context.Context, filter *entity.DonorFilter) ([]entity.Donor, error) {
	f.listFilter = filter
	if f.donor == nil {
		return []entity.Donor{}, nil
	}

	return []entity.Donor{*f.donor}, nil
}

func (f *fakeDonorRepo) GetDonorStats(_ context.Context) (*entity.DonorStats, error) {
	return f.stats, nil
}

type fakeHospitalRepo struct {
	hospital *entity.Hospital
	exists   bool
	stats    *entity.HospitalStats
}

func (f *fakeHospitalRepo) ListHospitals(_ context.Context) ([]entity.Hospital, error) {
	if f.hospital == nil {
		return []entity.Hospital{}, nil
	}

	return []entity.Hospital{*f.hospital}, nil
}

func (f *fakeHospitalRepo) GetHospitalById(_ context.Context, id string) (*entity.Hospital, error) {
	if f.hospital == nil {
		return nil, repo_errors.ErrNotFound
	}

	return f.hospital, nil
}

func (f *fakeHospitalRepo) DoesHospitalExistById(_ context.Context, id string) (bool, error) {
	return f.exists, nil
}

func (f *fakeHospitalRepo) GetHospitalStats(_ context.Context, id string) (*entity.HospitalStats, error) {
	if f.stats == nil {
		return nil, repo_errors.ErrNotFound
	}

	return f.stats, nil
}

type fakeAdminRepo struct {
	exists bool
}

func (f *fakeAdminRepo) DoesAdminExistById(_ context.Context, id string) (bool, error) {
	return f.exists, nil
}

type fakeDonationRepo struct {
	donation    *entity.DonationRecord
	stats       *entity.DonationStats
	recordInput *entity.CreateDonationInput
	recordId    uuid.UUID
	donorCount  int
	listFilter  *entity.DonationFilter
}

func (f *fakeDonationRepo) RecordDonation(_ context.Context, input *entity.CreateDonationInput) (uuid.UUID, error) {
	f.recordInput = input
	if f.recordId == uuid.Nil {
		f.recordId = uuid.New()
	}
	if f.donation != nil {
		f.donation.Id = f.recordId
	}

	return f.recordId, nil
}

func (f *fakeDonationRepo) GetDonationById(_ context.Context, id string) (*entity.DonationRecord, error) {
	if f.donation == nil {
		return nil, repo_errors.ErrNotFound
	}

	return f.donation, nil
}

func (f *fakeDonationRepo) ListDonations(_ context.Context, filter *entity.DonationFilter) ([]entity.DonationRecord, error) {
	f.listFilter = filter
	if f.donation == nil {
		return []entity.DonationRecord{}, nil
	}

	return []entity.DonationRecord{*f.donation}, nil
}

func (f *fakeDonationRepo) CountDonationsByDonorId(_ context.Context, donorId string) (int, error) {
	return f.donorCount, nil
}

func (f *fakeDonationRepo) GetDonationStats(_ context.Context, filter *entity.DonationStatsFilter) (*entity.DonationStats, error) {
	return f.stats, nil
}

type fakeInventoryRepo struct {
	unit          *entity.InventoryUnit
	summary       *entity.InventorySummary
	addInput      *entity.CreateInventoryUnitInput
	addedId       uuid.UUID
	updateInput   *entity.UpdateInventoryUnitInput
	deletedId     string
	listFilter    *entity.InventoryFilter
	summaryCutoff time.Time
}

func (f *fakeInventoryRepo) AddUnit(_ context.Context, input *entity.CreateInventoryUnitInput) (uuid.UUID, error) {
	f.addInput = input
	if f.addedId == uuid.Nil {
		f.addedId = uuid.New()
	}
	if f.unit != nil {
		f.unit.Id = f.addedId
	}

	return f.addedId, nil
}

func (f *fakeInventoryRepo) GetUnitById(_ context.Context, id string) (*entity.InventoryUnit, error) {
	if f.unit == nil {
		return nil, repo_errors.ErrNotFound
	}

	return f.unit, nil
}

func (f *fakeInventoryRepo) UpdateUnit(_ context.Context, id string, input *entity.UpdateInventoryUnitInput) error {
	if f.unit == nil {
		return repo_errors.ErrNotFound
	}
	f.updateInput = input

	return nil
}

func (f *fakeInventoryRepo) DeleteUnit(_ context.Context, id string) error {
	if f.unit == nil {
		return repo_errors.ErrNotFound
	}
	f.deletedId = id

	return nil
}

func (f *fakeInventoryRepo) ListUnits(_ context.Context, filter *entity.InventoryFilter) ([]entity.InventoryUnit, error) {
	f.listFilter = filter
	if f.unit == nil {
		return []entity.InventoryUnit{}, nil
	}

	return []entity.InventoryUnit{*f.unit}, nil
}

func (f *fakeInventoryRepo) GetInventorySummary(_ context.Context, expiringBefore time.Time) (*entity.InventorySummary, error) {
	f.summaryCutoff = expiringBefore

	return f.summary, nil
}

type fakeRequestRepo struct {
	request     *entity.BloodRequest
	stats       *entity.RequestStats
	createInput *entity.CreateRequestInput
	createdId   uuid.UUID

	approvedId      string
	approvedAdminId uuid.UUID
	approvedAt      time.Time

	rejectedId string

	completedId        string
	completedBloodType common.BloodType
	completedUnits     int
	completedAt        time.Time
	decremented        bool
	completeErr        error

	deletedId  string
	listFilter *entity.RequestFilter
}

func (f *fakeRequestRepo) CreateRequest(_ context.Context, input *entity.CreateRequestInput) (uuid.UUID, error) {
	f.createInput = input
	if f.createdId == uuid.Nil {
		f.createdId = uuid.New()
	}
	if f.request != nil {
		f.request.Id = f.createdId
	}

	return f.createdId, nil
}

func (f *fakeRequestRepo) GetRequestById(_ context.Context, id string) (*entity.BloodRequest, error) {
	if f.request == nil {
		return nil, repo_errors.ErrNotFound
	}

	return f.request, nil
}

func (f *fakeRequestRepo) ApproveRequest(_ context.Context, id string, adminId uuid.UUID, approvedAt time.Time) error {
	f.approvedId = id
	f.approvedAdminId = adminId
	f.approvedAt = approvedAt
	f.request.Status = common.RequestApproved

	return nil
}

func (f *fakeRequestRepo) RejectRequest(_ context.Context, id string) error {
	f.rejectedId = id
	f.request.Status = common.RequestRejected

	return nil
}

func (f *fakeRequestRepo) CompleteRequest(_ context.Context, id string, bloodType common.BloodType, units int, completedAt time.Time) (bool, error) {
	if f.completeErr != nil {
		return false, f.completeErr
	}
	f.completedId = id
	f.completedBloodType = bloodType
	f.completedUnits = units
	f.completedAt = completedAt
	f.request.Status = common.RequestCompleted

	return f.decremented, nil
}

func (f *fakeRequestRepo) DeleteRequest(_ context.Context, id string) error {
	if f.request == nil {
		return repo_errors.ErrNotFound
	}
	f.deletedId = id

	return nil
}

func (f *fakeRequestRepo) ListRequests(_ context.Context, filter *entity.RequestFilter) ([]entity.BloodRequest, error) {
	f.listFilter = filter
	if f.request == nil {
		return []entity.BloodRequest{}, nil
	}

	return []entity.BloodRequest{*f.request}, nil
}

func (f *fakeRequestRepo) GetRequestStats(_ context.Context) (*entity.RequestStats, error) {
	return f.stats, nil
}

func newTestRepositories() *repo.Repositories {
	return &repo.Repositories{
		Donor:     &fakeDonorRepo{},
		Hospital:  &fakeHospitalRepo{},
		Admin:     &fakeAdminRepo{},
		Donation:  &fakeDonationRepo{},
		Inventory: &fakeInventoryRepo{},
		Request:   &fakeRequestRepo{},
	}
}

func fixedNow(value string) func() time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return func() time.Time { return t }
}

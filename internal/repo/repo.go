package repo

import (
	"context"
	"time"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"
	"donation-registry-api/internal/repo/pgdb"
	"donation-registry-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type Donor interface {
	CreateDonor(ctx context.Context, input *entity.CreateDonorInput) (uuid.UUID, error)
	GetDonorById(ctx context.Context, id string) (*entity.Donor, error)
	UpdateDonor(ctx context.Context, id string, input *entity.UpdateDonorInput) error
	DeleteDonor(ctx context.Context, id string) error
	ListDonors(ctx context.Context, filter *entity.DonorFilter) ([]entity.Donor, error)
	GetDonorStats(ctx context.Context) (*entity.DonorStats, error)
}

type Hospital interface {
	ListHospitals(ctx context.Context) ([]entity.Hospital, error)
	GetHospitalById(ctx context.Context, id string) (*entity.Hospital, error)
	DoesHospitalExistById(ctx context.Context, id string) (bool, error)
	GetHospitalStats(ctx context.Context, id string) (*entity.HospitalStats, error)
}

type Admin interface {
	DoesAdminExistById(ctx context.Context, id string) (bool, error)
}

type Donation interface {
	// RecordDonation inserts the donation record, advances the donor's
	// last donation date and creates the matching inventory unit in one
	// transaction.
	RecordDonation(ctx context.Context, input *entity.CreateDonationInput) (uuid.UUID, error)
	GetDonationById(ctx context.Context, id string) (*entity.DonationRecord, error)
	ListDonations(ctx context.Context, filter *entity.DonationFilter) ([]entity.DonationRecord, error)
	CountDonationsByDonorId(ctx context.Context, donorId string) (int, error)
	GetDonationStats(ctx context.Context, filter *entity.DonationStatsFilter) (*entity.DonationStats, error)
}

type Inventory interface {
	AddUnit(ctx context.Context, input *entity.CreateInventoryUnitInput) (uuid.UUID, error)
	GetUnitById(ctx context.Context, id string) (*entity.InventoryUnit, error)
	UpdateUnit(ctx context.Context, id string, input *entity.UpdateInventoryUnitInput) error
	DeleteUnit(ctx context.Context, id string) error
	ListUnits(ctx context.Context, filter *entity.InventoryFilter) ([]entity.InventoryUnit, error)
	GetInventorySummary(ctx context.Context, expiringBefore time.Time) (*entity.InventorySummary, error)
}

type Request interface {
	CreateRequest(ctx context.Context, input *entity.CreateRequestInput) (uuid.UUID, error)
	GetRequestById(ctx context.Context, id string) (*entity.BloodRequest, error)
	ApproveRequest(ctx context.Context, id string, adminId uuid.UUID, approvedAt time.Time) error
	RejectRequest(ctx context.Context, id string) error
	// CompleteRequest stamps the completion date and decrements one
	// qualifying inventory unit in the same transaction. The returned
	// bool reports whether a unit was actually decremented.
	CompleteRequest(ctx context.Context, id string, bloodType common.BloodType, units int, completedAt time.Time) (bool, error)
	DeleteRequest(ctx context.Context, id string) error
	ListRequests(ctx context.Context, filter *entity.RequestFilter) ([]entity.BloodRequest, error)
	GetRequestStats(ctx context.Context) (*entity.RequestStats, error)
}

type Repositories struct {
	Diagnostics
	Donor
	Hospital
	Admin
	Donation
	Inventory
	Request
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Donor:       pgdb.NewDonorRepo(p),
		Hospital:    pgdb.NewHospitalRepo(p),
		Admin:       pgdb.NewAdminRepo(p),
		Donation:    pgdb.NewDonationRepo(p),
		Inventory:   pgdb.NewInventoryRepo(p),
		Request:     pgdb.NewRequestRepo(p),
	}
}

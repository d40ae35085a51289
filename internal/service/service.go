package service

import (
	"context"
	"time"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"
	"donation-registry-api/internal/repo"

	"go.uber.org/zap"
)

type Diagnostics interface {
	Ping() error
}

type Donor interface {
	RegisterDonor(ctx context.Context, input *entity.CreateDonorInput) (*entity.DonorOutputModel, error)
	GetDonorById(ctx context.Context, donorId string) (*entity.DonorOutputModel, error)
	UpdateDonor(ctx context.Context, donorId string, input *entity.UpdateDonorInput) (*entity.DonorOutputModel, error)
	DeleteDonor(ctx context.Context, donorId string) error
	ListDonors(ctx context.Context, filter *entity.DonorFilter) ([]entity.DonorOutputModel, error)
	GetDonorStats(ctx context.Context) (*entity.DonorStats, error)
}

type Hospital interface {
	ListHospitals(ctx context.Context) ([]entity.HospitalOutputModel, error)
	GetHospitalById(ctx context.Context, hospitalId string) (*entity.HospitalOutputModel, error)
	GetHospitalStats(ctx context.Context, hospitalId string) (*entity.HospitalStats, error)
}

type Donation interface {
	RecordDonation(ctx context.Context, input *RecordDonationInput) (*entity.DonationOutputModel, error)
	GetDonationById(ctx context.Context, donationId string) (*entity.DonationOutputModel, error)
	ListDonations(ctx context.Context, filter *entity.DonationFilter) ([]entity.DonationOutputModel, error)
	GetDonationStats(ctx context.Context, filter *entity.DonationStatsFilter) (*entity.DonationStats, error)
}

type Inventory interface {
	AddUnit(ctx context.Context, input *AddUnitInput) (*entity.InventoryUnitOutputModel, error)
	UpdateUnit(ctx context.Context, unitId string, input *UpdateUnitInput) (*entity.InventoryUnitOutputModel, error)
	DeleteUnit(ctx context.Context, unitId string) error
	ListUnits(ctx context.Context, input *ListUnitsInput) ([]entity.InventoryUnitOutputModel, error)
	GetInventorySummary(ctx context.Context) (*entity.InventorySummary, error)
}

type Request interface {
	CreateRequest(ctx context.Context, input *CreateRequestInput) (*entity.RequestOutputModel, error)
	GetRequestById(ctx context.Context, requestId string) (*entity.RequestOutputModel, error)
	UpdateRequestStatus(ctx context.Context, requestId string, newStatus common.RequestStatus, adminId string) (*entity.RequestOutputModel, error)
	DeleteRequest(ctx context.Context, requestId string) error
	ListRequests(ctx context.Context, filter *entity.RequestFilter) ([]entity.RequestOutputModel, error)
	GetRequestStats(ctx context.Context) (*entity.RequestStats, error)
}

type Services struct {
	Diagnostics Diagnostics
	Donor       Donor
	Hospital    Hospital
	Donation    Donation
	Inventory   Inventory
	Request     Request
}

func NewServices(repos *repo.Repositories, log *zap.Logger) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Donor:       NewDonorService(repos, log),
		Hospital:    NewHospitalService(repos),
		Donation:    NewDonationService(repos, log, time.Now),
		Inventory:   NewInventoryService(repos, log, time.Now),
		Request:     NewRequestService(repos, log, time.Now),
	}
}

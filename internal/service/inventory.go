package service

import (
	"context"
	"errors"
	"time"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"
	"donation-registry-api/internal/repo"
	"donation-registry-api/internal/repo/repo_errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExpiringSoonDays is the fixed dashboard horizon for the summary's
// "expiring soon" count.
const ExpiringSoonDays = 30

type AddUnitInput struct {
	BloodType      common.BloodType
	Quantity       int
	CollectionDate string // YYYY-MM-DD
	ExpiryDate     string // YYYY-MM-DD
	Status         common.UnitStatus // optional, defaults to Available
	HospitalId     string            // optional
}

type UpdateUnitInput struct {
	Quantity   int
	Status     common.UnitStatus
	ExpiryDate string
}

type ListUnitsInput struct {
	Filter             entity.InventoryFilter
	ExpiringWithinDays int // 0 means no expiry constraint
}

type InventoryService struct {
	inventoryRepo repo.Inventory
	hospitalRepo  repo.Hospital
	log           *zap.Logger
	now           func() time.Time
}

func NewInventoryService(repos *repo.Repositories, log *zap.Logger, now func() time.Time) *InventoryService {
	return &InventoryService{
		inventoryRepo: repos.Inventory,
		hospitalRepo:  repos.Hospital,
		log:           log,
		now:           now,
	}
}

func (s *InventoryService) AddUnit(ctx context.Context, input *AddUnitInput) (*entity.InventoryUnitOutputModel, error) {
	if !input.BloodType.Valid() {
		return nil, ErrInvalidBloodType
	}

	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if _, err := time.Parse("2006-01-02", input.CollectionDate); err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := time.Parse("2006-01-02", input.ExpiryDate); err != nil {
		return nil, ErrInvalidDate
	}

	status := input.Status
	if status == "" {
		status = common.UnitAvailable
	}
	if !status.Valid() {
		return nil, ErrInvalidUnitStatus
	}

	var hospitalId *uuid.UUID
	if input.HospitalId != "" {
		exists, err := s.hospitalRepo.DoesHospitalExistById(ctx, input.HospitalId)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrHospitalNotFound
		}
		parsed, _ := uuid.Parse(input.HospitalId)
		hospitalId = &parsed
	}

	id, err := s.inventoryRepo.AddUnit(ctx, &entity.CreateInventoryUnitInput{
		BloodType:      input.BloodType,
		Quantity:       input.Quantity,
		CollectionDate: input.CollectionDate,
		ExpiryDate:     input.ExpiryDate,
		Status:         status,
		HospitalId:     hospitalId,
	})
	if err != nil {
		return nil, err
	}

	unit, err := s.inventoryRepo.GetUnitById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapUnit(unit), nil
}

func (s *InventoryService) UpdateUnit(ctx context.Context, unitId string, input *UpdateUnitInput) (*entity.InventoryUnitOutputModel, error) {
	if input.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	if !input.Status.Valid() {
		return nil, ErrInvalidUnitStatus
	}

	if _, err := time.Parse("2006-01-02", input.ExpiryDate); err != nil {
		return nil, ErrInvalidDate
	}

	err := s.inventoryRepo.UpdateUnit(ctx, unitId, &entity.UpdateInventoryUnitInput{
		Quantity:   input.Quantity,
		Status:     input.Status,
		ExpiryDate: input.ExpiryDate,
	})
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUnitNotFound
		}

		return nil, err
	}

	unit, err := s.inventoryRepo.GetUnitById(ctx, unitId)
	if err != nil {
		return nil, err
	}

	return mapUnit(unit), nil
}

func (s *InventoryService) DeleteUnit(ctx context.Context, unitId string) error {
	err := s.inventoryRepo.DeleteUnit(ctx, unitId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrUnitNotFound
		}

		return err
	}

	return nil
}

func (s *InventoryService) ListUnits(ctx context.Context, input *ListUnitsInput) ([]entity.InventoryUnitOutputModel, error) {
	filter := input.Filter
	if input.ExpiringWithinDays > 0 {
		cutoff := s.now().AddDate(0, 0, input.ExpiringWithinDays)
		filter.ExpiringBefore = &cutoff
	}

	units, err := s.inventoryRepo.ListUnits(ctx, &filter)
	if err != nil {
		return nil, err
	}

	return mapUnits(units), nil
}

func (s *InventoryService) GetInventorySummary(ctx context.Context) (*entity.InventorySummary, error) {
	cutoff := s.now().AddDate(0, 0, ExpiringSoonDays)
	summary, err := s.inventoryRepo.GetInventorySummary(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

package service

import (
	"context"
	"testing"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAddUnitDefaultsStatusToAvailable(t *testing.T) {
	repos := newTestRepositories()
	inventoryRepo := repos.Inventory.(*fakeInventoryRepo)
	inventoryRepo.unit = &entity.InventoryUnit{BloodType: common.BPositive, Quantity: 3}

	s := NewInventoryService(repos, zap.NewNop(), fixedNow("2024-09-20"))

	_, err := s.AddUnit(context.Background(), &AddUnitInput{
		BloodType:      common.BPositive,
		Quantity:       3,
		CollectionDate: "2024-09-15",
		ExpiryDate:     "2024-12-14",
	})
	require.NoError(t, err)

	require.NotNil(t, inventoryRepo.addInput)
	assert.Equal(t, common.UnitAvailable, inventoryRepo.addInput.Status)
}

func TestAddUnitValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   AddUnitInput
		wantErr error
	}{
		{
			name:    "zero quantity",
			input:   AddUnitInput{BloodType: common.BPositive, Quantity: 0, CollectionDate: "2024-09-15", ExpiryDate: "2024-12-14"},
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "unknown blood type",
			input:   AddUnitInput{BloodType: "Q+", Quantity: 1, CollectionDate: "2024-09-15", ExpiryDate: "2024-12-14"},
			wantErr: ErrInvalidBloodType,
		},
		{
			name:    "bad collection date",
			input:   AddUnitInput{BloodType: common.BPositive, Quantity: 1, CollectionDate: "soon", ExpiryDate: "2024-12-14"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "unknown status",
			input:   AddUnitInput{BloodType: common.BPositive, Quantity: 1, CollectionDate: "2024-09-15", ExpiryDate: "2024-12-14", Status: "Lost"},
			wantErr: ErrInvalidUnitStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newTestRepositories()
			inventoryRepo := repos.Inventory.(*fakeInventoryRepo)
			s := NewInventoryService(repos, zap.NewNop(), fixedNow("2024-09-20"))

			_, err := s.AddUnit(context.Background(), &tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, inventoryRepo.addInput)
		})
	}
}

func TestAddUnitUnknownHospital(t *testing.T) {
	repos := newTestRepositories()
	s := NewInventoryService(repos, zap.NewNop(), fixedNow("2024-09-20"))

	_, err := s.AddUnit(context.Background(), &AddUnitInput{
		BloodType:      common.BPositive,
		Quantity:       1,
		CollectionDate: "2024-09-15",
		ExpiryDate:     "2024-12-14",
		HospitalId:     uuid.NewString(),
	})

	assert.ErrorIs(t, err, ErrHospitalNotFound)
}

func TestListUnitsResolvesExpiryCutoffFromClock(t *testing.T) {
	repos := newTestRepositories()
	inventoryRepo := repos.Inventory.(*fakeInventoryRepo)

	s := NewInventoryService(repos, zap.NewNop(), fixedNow("2024-09-20"))

	_, err := s.ListUnits(context.Background(), &ListUnitsInput{ExpiringWithinDays: 7})
	require.NoError(t, err)

	require.NotNil(t, inventoryRepo.listFilter.ExpiringBefore)
	assert.Equal(t, "2024-09-27", inventoryRepo.listFilter.ExpiringBefore.Format("2006-01-02"))
}

func TestListUnitsWithoutExpiryWindow(t *testing.T) {
	repos := newTestRepositories()
	inventoryRepo := repos.Inventory.(*fakeInventoryRepo)

	s := NewInventoryService(repos, zap.NewNop(), fixedNow("2024-09-20"))

	_, err := s.ListUnits(context.Background(), &ListUnitsInput{
		Filter: entity.InventoryFilter{Status: common.UnitAvailable},
	})
	require.NoError(t, err)

	assert.Nil(t, inventoryRepo.listFilter.ExpiringBefore)
	assert.Equal(t, common.UnitAvailable, inventoryRepo.listFilter.Status)
}

func TestInventorySummaryUsesThirtyDayHorizon(t *testing.T) {
	repos := newTestRepositories()
	inventoryRepo := repos.Inventory.(*fakeInventoryRepo)
	inventoryRepo.summary = &entity.InventorySummary{}

	s := NewInventoryService(repos, zap.NewNop(), fixedNow("2024-09-20"))

	_, err := s.GetInventorySummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024-10-20", inventoryRepo.summaryCutoff.Format("2006-01-02"))
}

func TestUpdateUnitUnknownUnit(t *testing.T) {
	repos := newTestRepositories()
	s := NewInventoryService(repos, zap.NewNop(), fixedNow("2024-09-20"))

	_, err := s.UpdateUnit(context.Background(), uuid.NewString(), &UpdateUnitInput{
		Quantity: 1, Status: common.UnitAvailable, ExpiryDate: "2024-12-14",
	})
	assert.ErrorIs(t, err, ErrUnitNotFound)

	err = s.DeleteUnit(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

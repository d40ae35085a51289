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

func TestRegisterDonorStartsEligible(t *testing.T) {
	repos := newTestRepositories()
	donorRepo := repos.Donor.(*fakeDonorRepo)
	donorRepo.donor = &entity.Donor{FirstName: "Maya", BloodType: common.APositive}

	s := NewDonorService(repos, zap.NewNop())

	_, err := s.RegisterDonor(context.Background(), &entity.CreateDonorInput{
		FirstName:         "Maya",
		LastName:          "Okafor",
		BloodType:         common.APositive,
		DateOfBirth:       "1990-04-12",
		Gender:            "Female",
		EligibilityStatus: common.Ineligible, // caller supplied value is ignored
	})
	require.NoError(t, err)

	require.NotNil(t, donorRepo.createdInput)
	assert.Equal(t, common.Eligible, donorRepo.createdInput.EligibilityStatus)
}

func TestRegisterDonorValidation(t *testing.T) {
	repos := newTestRepositories()
	donorRepo := repos.Donor.(*fakeDonorRepo)
	s := NewDonorService(repos, zap.NewNop())

	_, err := s.RegisterDonor(context.Background(), &entity.CreateDonorInput{
		BloodType: "AB", DateOfBirth: "1990-04-12",
	})
	assert.ErrorIs(t, err, ErrInvalidBloodType)

	_, err = s.RegisterDonor(context.Background(), &entity.CreateDonorInput{
		BloodType: common.APositive, DateOfBirth: "12-04-1990",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	assert.Nil(t, donorRepo.createdInput)
}

func TestDeleteDonorWithDonationRecords(t *testing.T) {
	donorId := uuid.New()
	repos := newTestRepositories()
	donorRepo := repos.Donor.(*fakeDonorRepo)
	donorRepo.donor = &entity.Donor{Id: donorId}
	repos.Donation.(*fakeDonationRepo).donorCount = 3

	s := NewDonorService(repos, zap.NewNop())

	err := s.DeleteDonor(context.Background(), donorId.String())

	assert.ErrorIs(t, err, ErrDonorHasDonations)
	assert.Empty(t, donorRepo.deletedId, "the donor row must stay put")
}

func TestDeleteDonorWithoutDonationRecords(t *testing.T) {
	donorId := uuid.New()
	repos := newTestRepositories()
	donorRepo := repos.Donor.(*fakeDonorRepo)
	donorRepo.donor = &entity.Donor{Id: donorId}

	s := NewDonorService(repos, zap.NewNop())

	err := s.DeleteDonor(context.Background(), donorId.String())

	require.NoError(t, err)
	assert.Equal(t, donorId.String(), donorRepo.deletedId)
}

func TestUpdateDonorValidation(t *testing.T) {
	repos := newTestRepositories()
	repos.Donor.(*fakeDonorRepo).donor = &entity.Donor{Id: uuid.New()}
	s := NewDonorService(repos, zap.NewNop())

	badDate := "someday"
	tests := []struct {
		name    string
		input   entity.UpdateDonorInput
		wantErr error
	}{
		{
			name:    "unknown blood type",
			input:   entity.UpdateDonorInput{BloodType: "H+", EligibilityStatus: common.Eligible, DateOfBirth: "1990-04-12"},
			wantErr: ErrInvalidBloodType,
		},
		{
			name:    "unknown eligibility",
			input:   entity.UpdateDonorInput{BloodType: common.APositive, EligibilityStatus: "Paused", DateOfBirth: "1990-04-12"},
			wantErr: ErrInvalidEligibility,
		},
		{
			name:    "bad last donation date",
			input:   entity.UpdateDonorInput{BloodType: common.APositive, EligibilityStatus: common.Eligible, DateOfBirth: "1990-04-12", LastDonationDate: &badDate},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.UpdateDonor(context.Background(), uuid.NewString(), &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetDonorByIdUnknown(t *testing.T) {
	repos := newTestRepositories()
	s := NewDonorService(repos, zap.NewNop())

	_, err := s.GetDonorById(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, ErrDonorNotFound)
}

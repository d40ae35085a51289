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

// ShelfLifeDays is how long a collected unit stays usable. The expiry is
// frozen at intake time so later policy changes never move existing stock.
const ShelfLifeDays = 90

type RecordDonationInput struct {
	DonorId      string
	HospitalId   string // optional
	DonationDate string // YYYY-MM-DD
	BloodType    common.BloodType
	UnitsDonated int // defaults to 1
	HealthStatus string
	Notes        string
}

type DonationService struct {
	donationRepo repo.Donation
	donorRepo    repo.Donor
	hospitalRepo repo.Hospital
	log          *zap.Logger
	now          func() time.Time
}

func NewDonationService(repos *repo.Repositories, log *zap.Logger, now func() time.Time) *DonationService {
	return &DonationService{
		donationRepo: repos.Donation,
		donorRepo:    repos.Donor,
		hospitalRepo: repos.Hospital,
		log:          log,
		now:          now,
	}
}

func (s *DonationService) RecordDonation(ctx context.Context, input *RecordDonationInput) (*entity.DonationOutputModel, error) {
	if !input.BloodType.Valid() {
		return nil, ErrInvalidBloodType
	}

	donationDate, err := time.Parse("2006-01-02", input.DonationDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if input.UnitsDonated == 0 {
		input.UnitsDonated = 1
	}
	if input.UnitsDonated < 1 {
		return nil, ErrInvalidQuantity
	}

	donor, err := s.donorRepo.GetDonorById(ctx, input.DonorId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrDonorNotFound
		}

		return nil, err
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

	createInput := &entity.CreateDonationInput{
		DonorId:      donor.Id,
		HospitalId:   hospitalId,
		DonationDate: input.DonationDate,
		BloodType:    input.BloodType,
		UnitsDonated: input.UnitsDonated,
		HealthStatus: input.HealthStatus,
		Notes:        input.Notes,
		ExpiryDate:   donationDate.AddDate(0, 0, ShelfLifeDays).Format("2006-01-02"),
	}

	id, err := s.donationRepo.RecordDonation(ctx, createInput)
	if err != nil {
		return nil, err
	}

	s.log.Info("donation recorded",
		zap.String("donationId", id.String()),
		zap.String("donorId", input.DonorId),
		zap.String("bloodType", string(input.BloodType)),
		zap.Int("units", input.UnitsDonated))

	donation, err := s.donationRepo.GetDonationById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapDonation(donation), nil
}

func (s *DonationService) GetDonationById(ctx context.Context, donationId string) (*entity.DonationOutputModel, error) {
	donation, err := s.donationRepo.GetDonationById(ctx, donationId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrDonationNotFound
		}

		return nil, err
	}

	return mapDonation(donation), nil
}

func (s *DonationService) ListDonations(ctx context.Context, filter *entity.DonationFilter) ([]entity.DonationOutputModel, error) {
	donations, err := s.donationRepo.ListDonations(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapDonations(donations), nil
}

func (s *DonationService) GetDonationStats(ctx context.Context, filter *entity.DonationStatsFilter) (*entity.DonationStats, error) {
	stats, err := s.donationRepo.GetDonationStats(ctx, filter)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

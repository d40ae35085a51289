package service

import (
	"context"
	"errors"
	"time"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"
	"donation-registry-api/internal/repo"
	"donation-registry-api/internal/repo/repo_errors"

	"go.uber.org/zap"
)

type DonorService struct {
	donorRepo    repo.Donor
	donationRepo repo.Donation
	log          *zap.Logger
}

func NewDonorService(repos *repo.Repositories, log *zap.Logger) *DonorService {
	return &DonorService{
		donorRepo:    repos.Donor,
		donationRepo: repos.Donation,
		log:          log,
	}
}

func (s *DonorService) RegisterDonor(ctx context.Context, input *entity.CreateDonorInput) (*entity.DonorOutputModel, error) {
	if !input.BloodType.Valid() {
		return nil, ErrInvalidBloodType
	}

	if _, err := time.Parse("2006-01-02", input.DateOfBirth); err != nil {
		return nil, ErrInvalidDate
	}

	// every new donor starts out eligible
	input.EligibilityStatus = common.Eligible

	id, err := s.donorRepo.CreateDonor(ctx, input)
	if err != nil {
		return nil, err
	}

	donor, err := s.donorRepo.GetDonorById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapDonor(donor), nil
}

func (s *DonorService) GetDonorById(ctx context.Context, donorId string) (*entity.DonorOutputModel, error) {
	donor, err := s.donorRepo.GetDonorById(ctx, donorId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrDonorNotFound
		}

		return nil, err
	}

	return mapDonor(donor), nil
}

// UpdateDonor overwrites every mutable field, matching the dashboard's
// full-form submit.
func (s *DonorService) UpdateDonor(ctx context.Context, donorId string, input *entity.UpdateDonorInput) (*entity.DonorOutputModel, error) {
	if !input.BloodType.Valid() {
		return nil, ErrInvalidBloodType
	}

	if !input.EligibilityStatus.Valid() {
		return nil, ErrInvalidEligibility
	}

	if _, err := time.Parse("2006-01-02", input.DateOfBirth); err != nil {
		return nil, ErrInvalidDate
	}

	if input.LastDonationDate != nil {
		if _, err := time.Parse("2006-01-02", *input.LastDonationDate); err != nil {
			return nil, ErrInvalidDate
		}
	}

	err := s.donorRepo.UpdateDonor(ctx, donorId, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrDonorNotFound
		}

		return nil, err
	}

	donor, err := s.donorRepo.GetDonorById(ctx, donorId)
	if err != nil {
		return nil, err
	}

	return mapDonor(donor), nil
}

// DeleteDonor refuses to leave donation records dangling.
func (s *DonorService) DeleteDonor(ctx context.Context, donorId string) error {
	count, err := s.donationRepo.CountDonationsByDonorId(ctx, donorId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrDonorNotFound
		}

		return err
	}
	if count > 0 {
		return ErrDonorHasDonations
	}

	err = s.donorRepo.DeleteDonor(ctx, donorId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrDonorNotFound
		}

		return err
	}

	return nil
}

func (s *DonorService) ListDonors(ctx context.Context, filter *entity.DonorFilter) ([]entity.DonorOutputModel, error) {
	donors, err := s.donorRepo.ListDonors(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapDonors(donors), nil
}

func (s *DonorService) GetDonorStats(ctx context.Context) (*entity.DonorStats, error) {
	stats, err := s.donorRepo.GetDonorStats(ctx)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

package service

import (
	"context"
	"errors"

	"donation-registry-api/internal/entity"
	"donation-registry-api/internal/repo"
	"donation-registry-api/internal/repo/repo_errors"
)

type HospitalService struct {
	hospitalRepo repo.Hospital
}

func NewHospitalService(repos *repo.Repositories) *HospitalService {
	return &HospitalService{hospitalRepo: repos.Hospital}
}

func (s *HospitalService) ListHospitals(ctx context.Context) ([]entity.HospitalOutputModel, error) {
	hospitals, err := s.hospitalRepo.ListHospitals(ctx)
	if err != nil {
		return nil, err
	}

	return mapHospitals(hospitals), nil
}

func (s *HospitalService) GetHospitalById(ctx context.Context, hospitalId string) (*entity.HospitalOutputModel, error) {
	hospital, err := s.hospitalRepo.GetHospitalById(ctx, hospitalId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrHospitalNotFound
		}

		return nil, err
	}

	return mapHospital(hospital), nil
}

func (s *HospitalService) GetHospitalStats(ctx context.Context, hospitalId string) (*entity.HospitalStats, error) {
	exists, err := s.hospitalRepo.DoesHospitalExistById(ctx, hospitalId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrHospitalNotFound
	}

	stats, err := s.hospitalRepo.GetHospitalStats(ctx, hospitalId)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

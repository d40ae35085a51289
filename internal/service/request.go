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

type CreateRequestInput struct {
	HospitalId     string
	BloodType      common.BloodType
	UnitsRequested int
	Urgency        common.UrgencyLevel // optional, defaults to Medium
	RequiredByDate string              // optional, YYYY-MM-DD
	Notes          string
}

type RequestService struct {
	requestRepo  repo.Request
	hospitalRepo repo.Hospital
	adminRepo    repo.Admin
	log          *zap.Logger
	now          func() time.Time
}

func NewRequestService(repos *repo.Repositories, log *zap.Logger, now func() time.Time) *RequestService {
	return &RequestService{
		requestRepo:  repos.Request,
		hospitalRepo: repos.Hospital,
		adminRepo:    repos.Admin,
		log:          log,
		now:          now,
	}
}

func (s *RequestService) CreateRequest(ctx context.Context, input *CreateRequestInput) (*entity.RequestOutputModel, error) {
	if !input.BloodType.Valid() {
		return nil, ErrInvalidBloodType
	}

	if input.UnitsRequested < 1 {
		return nil, ErrInvalidQuantity
	}

	urgency := input.Urgency
	if urgency == "" {
		urgency = common.UrgencyMedium
	}
	if !urgency.Valid() {
		return nil, ErrInvalidUrgency
	}

	var requiredBy *string
	if input.RequiredByDate != "" {
		if _, err := time.Parse("2006-01-02", input.RequiredByDate); err != nil {
			return nil, ErrInvalidDate
		}
		requiredBy = &input.RequiredByDate
	}

	exists, err := s.hospitalRepo.DoesHospitalExistById(ctx, input.HospitalId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrHospitalNotFound
	}

	hospitalId, _ := uuid.Parse(input.HospitalId)
	id, err := s.requestRepo.CreateRequest(ctx, &entity.CreateRequestInput{
		HospitalId:     hospitalId,
		BloodType:      input.BloodType,
		UnitsRequested: input.UnitsRequested,
		Urgency:        urgency,
		RequiredByDate: requiredBy,
		Notes:          input.Notes,
		Status:         common.RequestPending,
	})
	if err != nil {
		return nil, err
	}

	request, err := s.requestRepo.GetRequestById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapRequest(request), nil
}

func (s *RequestService) GetRequestById(ctx context.Context, requestId string) (*entity.RequestOutputModel, error) {
	request, err := s.requestRepo.GetRequestById(ctx, requestId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRequestNotFound
		}

		return nil, err
	}

	return mapRequest(request), nil
}

// UpdateRequestStatus moves a request along Pending -> Approved -> Completed
// or Pending -> Rejected. Approval stamps the acting admin and time;
// completion additionally decrements matching inventory in the same unit
// of work.
func (s *RequestService) UpdateRequestStatus(ctx context.Context, requestId string, newStatus common.RequestStatus, adminId string) (*entity.RequestOutputModel, error) {
	if !newStatus.Valid() || newStatus == common.RequestPending {
		return nil, ErrInvalidStatus
	}

	request, err := s.requestRepo.GetRequestById(ctx, requestId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRequestNotFound
		}

		return nil, err
	}

	if !request.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	switch newStatus {
	case common.RequestApproved:
		if adminId == "" {
			return nil, ErrAdminRequiredForApprove
		}
		exists, err := s.adminRepo.DoesAdminExistById(ctx, adminId)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrAdminNotFound
		}

		adminUuid, _ := uuid.Parse(adminId)
		if err := s.requestRepo.ApproveRequest(ctx, requestId, adminUuid, s.now()); err != nil {
			return nil, err
		}

	case common.RequestRejected:
		if err := s.requestRepo.RejectRequest(ctx, requestId); err != nil {
			return nil, err
		}

	case common.RequestCompleted:
		decremented, err := s.requestRepo.CompleteRequest(ctx, requestId,
			request.BloodType, request.UnitsRequested, s.now())
		if err != nil {
			// a concurrent transition won the race between our read and the
			// guarded update
			if errors.Is(err, repo_errors.ErrConflict) {
				return nil, ErrInvalidStatusTransition
			}

			return nil, err
		}
		if !decremented {
			// kept from the original workflow: the request completes even
			// when no unit can cover it, so the shortfall is only logged
			s.log.Warn("request completed without inventory decrement",
				zap.String("requestId", requestId),
				zap.String("bloodType", string(request.BloodType)),
				zap.Int("unitsRequested", request.UnitsRequested))
		}
	}

	request, err = s.requestRepo.GetRequestById(ctx, requestId)
	if err != nil {
		return nil, err
	}

	return mapRequest(request), nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, requestId string) error {
	err := s.requestRepo.DeleteRequest(ctx, requestId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrRequestNotFound
		}

		return err
	}

	return nil
}

func (s *RequestService) ListRequests(ctx context.Context, filter *entity.RequestFilter) ([]entity.RequestOutputModel, error) {
	requests, err := s.requestRepo.ListRequests(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapRequests(requests), nil
}

func (s *RequestService) GetRequestStats(ctx context.Context) (*entity.RequestStats, error) {
	stats, err := s.requestRepo.GetRequestStats(ctx)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

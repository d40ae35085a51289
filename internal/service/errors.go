package service

import "errors"

var (
	ErrDonorNotFound    = errors.New("donor not found")
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrDonationNotFound = errors.New("donation record not found")
	ErrUnitNotFound     = errors.New("inventory unit not found")
	ErrRequestNotFound  = errors.New("blood request not found")

	ErrDonorHasDonations = errors.New("donor has donation records and can't be deleted")

	ErrInvalidBloodType   = errors.New("unknown blood type")
	ErrInvalidEligibility = errors.New("unknown eligibility status")
	ErrInvalidUnitStatus  = errors.New("unknown inventory unit status")
	ErrInvalidUrgency     = errors.New("unknown urgency level")
	ErrInvalidStatus      = errors.New("unknown request status")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidDate        = errors.New("date must be formatted as YYYY-MM-DD")

	ErrInvalidStatusTransition = errors.New("request status can't change this way")
	ErrAdminRequiredForApprove = errors.New("approving a request needs an acting admin")
)

package entity

import (
	"time"

	"donation-registry-api/internal/common"
)

// List filters. A zero field means "no constraint", not "empty set".

type DonorFilter struct {
	BloodType   common.BloodType
	Eligibility common.EligibilityStatus
	Search      string // substring match on first name, last name, email
}

type InventoryFilter struct {
	BloodType  common.BloodType
	HospitalId string
	Status     common.UnitStatus
	// ExpiringBefore is the resolved cutoff for "expiring within N days";
	// the service computes it from its clock so the repo stays date-only.
	ExpiringBefore *time.Time
}

type DonationFilter struct {
	DonorId    string
	HospitalId string
	BloodType  common.BloodType
	StartDate  string // YYYY-MM-DD, inclusive
	EndDate    string // YYYY-MM-DD, inclusive
}

type RequestFilter struct {
	Status     common.RequestStatus
	HospitalId string
	BloodType  common.BloodType
	Urgency    common.UrgencyLevel
}

type DonationStatsFilter struct {
	StartDate  string
	EndDate    string
	HospitalId string
}

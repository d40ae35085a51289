package entity

import (
	"donation-registry-api/internal/common"

	"github.com/google/uuid"
)

// db model, donor and hospital names joined for display
type DonationRecord struct {
	Id             uuid.UUID        `json:"id" db:"id"`
	DonorId        uuid.UUID        `json:"donorId" db:"donor_id"`
	HospitalId     *uuid.UUID       `json:"hospitalId" db:"hospital_id"`
	DonationDate   string           `json:"donationDate" db:"donation_date"`
	BloodType      common.BloodType `json:"bloodType" db:"blood_type"`
	UnitsDonated   int              `json:"unitsDonated" db:"units_donated"`
	HealthStatus   string           `json:"healthStatus" db:"health_status"`
	Notes          string           `json:"notes" db:"notes"`
	CreatedAt      string           `json:"createdAt" db:"created_at"`
	DonorFirstName string           `json:"donorFirstName"`
	DonorLastName  string           `json:"donorLastName"`
	HospitalName   string           `json:"hospitalName"`
}

// service + repo input model
type CreateDonationInput struct {
	DonorId      uuid.UUID
	HospitalId   *uuid.UUID
	DonationDate string // given, YYYY-MM-DD
	BloodType    common.BloodType
	UnitsDonated int    // defaults to 1
	HealthStatus string
	Notes        string
	ExpiryDate   string // should be set: donation date + 90 days
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model
type DonationOutputModel struct {
	Id             string `json:"id"`
	DonorId        string `json:"donorId"`
	HospitalId     string `json:"hospitalId,omitempty"`
	DonationDate   string `json:"donationDate"`
	BloodType      string `json:"bloodType"`
	UnitsDonated   int    `json:"unitsDonated"`
	HealthStatus   string `json:"healthStatus"`
	Notes          string `json:"notes"`
	CreatedAt      string `json:"createdAt"`
	DonorFirstName string `json:"donorFirstName"`
	DonorLastName  string `json:"donorLastName"`
	HospitalName   string `json:"hospitalName,omitempty"`
}

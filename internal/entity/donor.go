package entity

import (
	"donation-registry-api/internal/common"

	"github.com/google/uuid"
)

// db model
type Donor struct {
	Id                uuid.UUID                `json:"id" db:"id"`
	FirstName         string                   `json:"firstName" db:"first_name"`
	LastName          string                   `json:"lastName" db:"last_name"`
	BloodType         common.BloodType         `json:"bloodType" db:"blood_type"`
	DateOfBirth       string                   `json:"dateOfBirth" db:"date_of_birth"`
	Gender            string                   `json:"gender" db:"gender"`
	ContactNumber     string                   `json:"contactNumber" db:"contact_number"`
	Email             string                   `json:"email" db:"email"`
	Address           string                   `json:"address" db:"address"`
	MedicalHistory    string                   `json:"medicalHistory" db:"medical_history"`
	LastDonationDate  *string                  `json:"lastDonationDate" db:"last_donation_date"`
	EligibilityStatus common.EligibilityStatus `json:"eligibilityStatus" db:"eligibility_status"`
	CreatedAt         string                   `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateDonorInput struct {
	FirstName         string // given
	LastName          string // given
	BloodType         common.BloodType
	DateOfBirth       string // given, YYYY-MM-DD
	Gender            string // given
	ContactNumber     string
	Email             string
	Address           string
	MedicalHistory    string
	EligibilityStatus common.EligibilityStatus // should be set: Eligible
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

type UpdateDonorInput struct {
	FirstName         string
	LastName          string
	BloodType         common.BloodType
	DateOfBirth       string
	Gender            string
	ContactNumber     string
	Email             string
	Address           string
	MedicalHistory    string
	EligibilityStatus common.EligibilityStatus
	LastDonationDate  *string
}

// controller model
type DonorOutputModel struct {
	Id                string  `json:"id"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	BloodType         string  `json:"bloodType"`
	DateOfBirth       string  `json:"dateOfBirth"`
	Gender            string  `json:"gender"`
	ContactNumber     string  `json:"contactNumber"`
	Email             string  `json:"email"`
	Address           string  `json:"address"`
	MedicalHistory    string  `json:"medicalHistory"`
	LastDonationDate  *string `json:"lastDonationDate"`
	EligibilityStatus string  `json:"eligibilityStatus"`
	CreatedAt         string  `json:"createdAt"`
}

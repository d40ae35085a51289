package entity

import (
	"donation-registry-api/internal/common"

	"github.com/google/uuid"
)

// db model, hospital and approver names joined for display
type BloodRequest struct {
	Id             uuid.UUID            `json:"id" db:"id"`
	HospitalId     uuid.UUID            `json:"hospitalId" db:"hospital_id"`
	BloodType      common.BloodType     `json:"bloodType" db:"blood_type"`
	UnitsRequested int                  `json:"unitsRequested" db:"units_requested"`
	Urgency        common.UrgencyLevel  `json:"urgency" db:"urgency"`
	RequestDate    string               `json:"requestDate" db:"request_date"`
	RequiredByDate *string              `json:"requiredByDate" db:"required_by_date"`
	Status         common.RequestStatus `json:"status" db:"status"`
	ApprovedBy     *uuid.UUID           `json:"approvedBy" db:"approved_by"`
	ApprovalDate   *string              `json:"approvalDate" db:"approval_date"`
	CompletionDate *string              `json:"completionDate" db:"completion_date"`
	Notes          string               `json:"notes" db:"notes"`
	HospitalName   string               `json:"hospitalName"`
	ApprovedByName string               `json:"approvedByName"`
}

// service + repo input model
type CreateRequestInput struct {
	HospitalId     uuid.UUID
	BloodType      common.BloodType
	UnitsRequested int
	Urgency        common.UrgencyLevel // defaults to Medium
	RequiredByDate *string             // YYYY-MM-DD
	Notes          string
	Status         common.RequestStatus // should be set: Pending
	// Id UUID sets automatically
	// RequestDate sets automatically
}

// controller model
type RequestOutputModel struct {
	Id             string  `json:"id"`
	HospitalId     string  `json:"hospitalId"`
	BloodType      string  `json:"bloodType"`
	UnitsRequested int     `json:"unitsRequested"`
	Urgency        string  `json:"urgency"`
	RequestDate    string  `json:"requestDate"`
	RequiredByDate *string `json:"requiredByDate"`
	Status         string  `json:"status"`
	ApprovedBy     string  `json:"approvedBy,omitempty"`
	ApprovalDate   *string `json:"approvalDate"`
	CompletionDate *string `json:"completionDate"`
	Notes          string  `json:"notes"`
	HospitalName   string  `json:"hospitalName"`
	ApprovedByName string  `json:"approvedByName,omitempty"`
}

package entity

import (
	"donation-registry-api/internal/common"

	"github.com/google/uuid"
)

// db model, hospital name joined for display
type InventoryUnit struct {
	Id             uuid.UUID         `json:"id" db:"id"`
	BloodType      common.BloodType  `json:"bloodType" db:"blood_type"`
	Quantity       int               `json:"quantity" db:"quantity"`
	CollectionDate string            `json:"collectionDate" db:"collection_date"`
	ExpiryDate     string            `json:"expiryDate" db:"expiry_date"`
	Status         common.UnitStatus `json:"status" db:"status"`
	HospitalId     *uuid.UUID        `json:"hospitalId" db:"hospital_id"`
	CreatedAt      string            `json:"createdAt" db:"created_at"`
	HospitalName   string            `json:"hospitalName"`
}

// service + repo input model
type CreateInventoryUnitInput struct {
	BloodType      common.BloodType
	Quantity       int
	CollectionDate string // given, YYYY-MM-DD
	ExpiryDate     string // given, YYYY-MM-DD
	Status         common.UnitStatus // defaults to Available
	HospitalId     *uuid.UUID
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

type UpdateInventoryUnitInput struct {
	Quantity   int
	Status     common.UnitStatus
	ExpiryDate string
}

// controller model
type InventoryUnitOutputModel struct {
	Id             string `json:"id"`
	BloodType      string `json:"bloodType"`
	Quantity       int    `json:"quantity"`
	CollectionDate string `json:"collectionDate"`
	ExpiryDate     string `json:"expiryDate"`
	Status         string `json:"status"`
	HospitalId     string `json:"hospitalId,omitempty"`
	HospitalName   string `json:"hospitalName,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

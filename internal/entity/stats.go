package entity

import (
	"donation-registry-api/internal/common"
)

// Aggregate rows shared by the dashboard reports.

type BloodTypeCount struct {
	BloodType common.BloodType `json:"bloodType"`
	Count     int              `json:"count"`
}

type BloodTypeQuantity struct {
	BloodType common.BloodType `json:"bloodType"`
	Total     int              `json:"total"`
}

type HospitalQuantity struct {
	HospitalName string `json:"hospitalName"`
	Total        int    `json:"total"`
}

type HospitalCount struct {
	HospitalName string `json:"hospitalName"`
	Count        int    `json:"count"`
}

type StatusCount struct {
	Status common.RequestStatus `json:"status"`
	Count  int                  `json:"count"`
}

type UrgencyCount struct {
	Urgency common.UrgencyLevel `json:"urgency"`
	Count   int                 `json:"count"`
}

type DonorStats struct {
	Total       int              `json:"total"`
	Eligible    int              `json:"eligible"`
	ByBloodType []BloodTypeCount `json:"byBloodType"`
}

type InventorySummary struct {
	TotalUnits   int                 `json:"totalUnits"`
	ByBloodType  []BloodTypeQuantity `json:"byBloodType"`
	ExpiringSoon int                 `json:"expiringSoon"`
	ByHospital   []HospitalQuantity  `json:"byHospital"`
}

type RequestStats struct {
	ByStatus     []StatusCount  `json:"byStatus"`
	ByUrgency    []UrgencyCount `json:"byUrgency"`
	PendingCount int            `json:"pendingCount"`
}

type HospitalStats struct {
	Inventory      []BloodTypeQuantity `json:"inventory"`
	TotalDonations int                 `json:"totalDonations"`
	Requests       []StatusCount       `json:"requests"`
}

type DonationStats struct {
	Total       int              `json:"total"`
	ByBloodType []BloodTypeCount `json:"byBloodType"`
	ByHospital  []HospitalCount  `json:"byHospital"`
}

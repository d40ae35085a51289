package service

import (
	"donation-registry-api/internal/entity"
)

func mapDonor(d *entity.Donor) *entity.DonorOutputModel {
	return &entity.DonorOutputModel{
		Id:                d.Id.String(),
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		BloodType:         string(d.BloodType),
		DateOfBirth:       d.DateOfBirth,
		Gender:            d.Gender,
		ContactNumber:     d.ContactNumber,
		Email:             d.Email,
		Address:           d.Address,
		MedicalHistory:    d.MedicalHistory,
		LastDonationDate:  d.LastDonationDate,
		EligibilityStatus: string(d.EligibilityStatus),
		CreatedAt:         d.CreatedAt,
	}
}

func mapDonors(donors []entity.Donor) []entity.DonorOutputModel {
	s := make([]entity.DonorOutputModel, 0)
	for _, donor := range donors {
		s = append(s, *mapDonor(&donor))
	}

	return s
}

func mapHospital(h *entity.Hospital) *entity.HospitalOutputModel {
	return &entity.HospitalOutputModel{
		Id:        h.Id.String(),
		Name:      h.Name,
		Address:   h.Address,
		Contact:   h.Contact,
		Email:     h.Email,
		CreatedAt: h.CreatedAt,
	}
}

func mapHospitals(hospitals []entity.Hospital) []entity.HospitalOutputModel {
	s := make([]entity.HospitalOutputModel, 0)
	for _, hospital := range hospitals {
		s = append(s, *mapHospital(&hospital))
	}

	return s
}

func mapDonation(d *entity.DonationRecord) *entity.DonationOutputModel {
	out := &entity.DonationOutputModel{
		Id:             d.Id.String(),
		DonorId:        d.DonorId.String(),
		DonationDate:   d.DonationDate,
		BloodType:      string(d.BloodType),
		UnitsDonated:   d.UnitsDonated,
		HealthStatus:   d.HealthStatus,
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
		DonorFirstName: d.DonorFirstName,
		DonorLastName:  d.DonorLastName,
		HospitalName:   d.HospitalName,
	}
	if d.HospitalId != nil {
		out.HospitalId = d.HospitalId.String()
	}

	return out
}

func mapDonations(donations []entity.DonationRecord) []entity.DonationOutputModel {
	s := make([]entity.DonationOutputModel, 0)
	for _, donation := range donations {
		s = append(s, *mapDonation(&donation))
	}

	return s
}

func mapUnit(u *entity.InventoryUnit) *entity.InventoryUnitOutputModel {
	out := &entity.InventoryUnitOutputModel{
		Id:             u.Id.String(),
		BloodType:      string(u.BloodType),
		Quantity:       u.Quantity,
		CollectionDate: u.CollectionDate,
		ExpiryDate:     u.ExpiryDate,
		Status:         string(u.Status),
		HospitalName:   u.HospitalName,
		CreatedAt:      u.CreatedAt,
	}
	if u.HospitalId != nil {
		out.HospitalId = u.HospitalId.String()
	}

	return out
}

func mapUnits(units []entity.InventoryUnit) []entity.InventoryUnitOutputModel {
	s := make([]entity.InventoryUnitOutputModel, 0)
	for _, unit := range units {
		s = append(s, *mapUnit(&unit))
	}

	return s
}

func mapRequest(r *entity.BloodRequest) *entity.RequestOutputModel {
	out := &entity.RequestOutputModel{
		Id:             r.Id.String(),
		HospitalId:     r.HospitalId.String(),
		BloodType:      string(r.BloodType),
		UnitsRequested: r.UnitsRequested,
		Urgency:        string(r.Urgency),
		RequestDate:    r.RequestDate,
		RequiredByDate: r.RequiredByDate,
		Status:         string(r.Status),
		ApprovalDate:   r.ApprovalDate,
		CompletionDate: r.CompletionDate,
		Notes:          r.Notes,
		HospitalName:   r.HospitalName,
		ApprovedByName: r.ApprovedByName,
	}
	if r.ApprovedBy != nil {
		out.ApprovedBy = r.ApprovedBy.String()
	}

	return out
}

func mapRequests(requests []entity.BloodRequest) []entity.RequestOutputModel {
	s := make([]entity.RequestOutputModel, 0)
	for _, request := range requests {
		s = append(s, *mapRequest(&request))
	}

	return s
}

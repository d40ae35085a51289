package common

// BloodType is one of the eight ABO/Rh groups.
type BloodType string

const (
	APositive  BloodType = "A+"
	ANegative  BloodType = "A-"
	BPositive  BloodType = "B+"
	BNegative  BloodType = "B-"
	ABPositive BloodType = "AB+"
	ABNegative BloodType = "AB-"
	OPositive  BloodType = "O+"
	ONegative  BloodType = "O-"
)

func BloodTypes() []BloodType {
	return []BloodType{APositive, ANegative, BPositive, BNegative, ABPositive, ABNegative, OPositive, ONegative}
}

func (b BloodType) Valid() bool {
	switch b {
	case APositive, ANegative, BPositive, BNegative, ABPositive, ABNegative, OPositive, ONegative:
		return true
	}

	return false
}

type EligibilityStatus string

const (
	Eligible              EligibilityStatus = "Eligible"
	TemporarilyIneligible EligibilityStatus = "Temporarily Ineligible"
	Ineligible            EligibilityStatus = "Ineligible"
)

func (e EligibilityStatus) Valid() bool {
	switch e {
	case Eligible, TemporarilyIneligible, Ineligible:
		return true
	}

	return false
}

type UnitStatus string

const (
	UnitAvailable UnitStatus = "Available"
	UnitReserved  UnitStatus = "Reserved"
	UnitUsed      UnitStatus = "Used"
	UnitExpired   UnitStatus = "Expired"
)

func (s UnitStatus) Valid() bool {
	switch s {
	case UnitAvailable, UnitReserved, UnitUsed, UnitExpired:
		return true
	}

	return false
}

type RequestStatus string

const (
	RequestPending   RequestStatus = "Pending"
	RequestApproved  RequestStatus = "Approved"
	RequestCompleted RequestStatus = "Completed"
	RequestRejected  RequestStatus = "Rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestCompleted, RequestRejected:
		return true
	}

	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s RequestStatus) Terminal() bool {
	return s == RequestCompleted || s == RequestRejected
}

// CanTransitionTo encodes the allowed lifecycle:
// Pending -> Approved -> Completed, or Pending -> Rejected.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestPending:
		return next == RequestApproved || next == RequestRejected
	case RequestApproved:
		return next == RequestCompleted
	}

	return false
}

type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "Low"
	UrgencyMedium   UrgencyLevel = "Medium"
	UrgencyHigh     UrgencyLevel = "High"
	UrgencyCritical UrgencyLevel = "Critical"
)

func (u UrgencyLevel) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}

	return false
}

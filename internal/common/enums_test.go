package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBloodTypeValid(t *testing.T) {
	for _, bt := range BloodTypes() {
		assert.True(t, bt.Valid(), "expected %q to be valid", bt)
	}

	assert.False(t, BloodType("").Valid())
	assert.False(t, BloodType("C+").Valid())
	assert.False(t, BloodType("a+").Valid(), "blood types are case sensitive")
}

func TestEligibilityStatusValid(t *testing.T) {
	assert.True(t, Eligible.Valid())
	assert.True(t, TemporarilyIneligible.Valid())
	assert.True(t, Ineligible.Valid())
	assert.False(t, EligibilityStatus("Deferred").Valid())
}

func TestUnitStatusValid(t *testing.T) {
	assert.True(t, UnitAvailable.Valid())
	assert.True(t, UnitReserved.Valid())
	assert.True(t, UnitUsed.Valid())
	assert.True(t, UnitExpired.Valid())
	assert.False(t, UnitStatus("Discarded").Valid())
}

func TestUrgencyLevelValid(t *testing.T) {
	assert.True(t, UrgencyLow.Valid())
	assert.True(t, UrgencyCritical.Valid())
	assert.False(t, UrgencyLevel("Urgent").Valid())
}

func TestRequestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{"pending to approved", RequestPending, RequestApproved, true},
		{"pending to rejected", RequestPending, RequestRejected, true},
		{"pending to completed skips approval", RequestPending, RequestCompleted, false},
		{"approved to completed", RequestApproved, RequestCompleted, true},
		{"approved to rejected", RequestApproved, RequestRejected, false},
		{"approved back to pending", RequestApproved, RequestPending, false},
		{"completed is terminal", RequestCompleted, RequestApproved, false},
		{"rejected is terminal", RequestRejected, RequestApproved, false},
		{"rejected can't complete", RequestRejected, RequestCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRequestStatusTerminal(t *testing.T) {
	assert.False(t, RequestPending.Terminal())
	assert.False(t, RequestApproved.Terminal())
	assert.True(t, RequestCompleted.Terminal())
	assert.True(t, RequestRejected.Terminal())
}

package gadget

import "time"

// Status represents where a gadget sits in its lifecycle.
type Status string

// Status constants.
const (
	// StatusAvailable means the gadget is in the armoury, ready for issue.
	StatusAvailable Status = "Available"

	// StatusDeployed means the gadget is in the field with an agent.
	StatusDeployed Status = "Deployed"

	// StatusDestroyed means the gadget consumed its self-destruct charge.
	// Only a confirmed self-destruct sets this status.
	StatusDestroyed Status = "Destroyed"

	// StatusDecommissioned means the gadget was retired from service.
	// Decommissioning is a soft state; the record is never deleted.
	StatusDecommissioned Status = "Decommissioned"
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusAvailable, StatusDeployed, StatusDestroyed, StatusDecommissioned,
	}
}

// IsValidStatus returns true if the status is a recognised lifecycle state.
func IsValidStatus(s Status) bool {
	for _, v := range AllStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// Gadget represents a single item of field equipment in the armoury.
type Gadget struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Status is the current lifecycle state. Defaults to Available at creation.
	Status Status `json:"status"`

	// DecommissionedAt is set when the gadget enters Decommissioned and
	// cleared again if it leaves that status.
	DecommissionedAt *time.Time `json:"decommissionedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MissionAssessment is a gadget decorated with a freshly rolled mission
// success probability. The probability is never persisted: every listing
// produces new numbers, so repeated reads of the same gadget differ.
type MissionAssessment struct {
	Gadget

	// SuccessProbability is a percentage string, e.g. "87%".
	SuccessProbability string `json:"successProbability"`

	// Display is a human-readable summary combining codename and probability.
	Display string `json:"display"`
}

// UpdatePatch carries the optional field changes for an update operation.
// Nil fields are left untouched.
type UpdatePatch struct {
	Name   *string `json:"name,omitempty"`
	Status *Status `json:"status,omitempty"`
}

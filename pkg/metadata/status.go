package metadata

import "fmt"

// Status names the device states the reports aggregate on. Inventory rows
// store status as free text, so records may carry values outside this set;
// only the report metrics rely on these constants.
type Status string

const (
	StatusActive         Status = "ACTIVE"
	StatusForReplacement Status = "FOR REPLACEMENT"
	StatusForRepair      Status = "FOR REPAIR"
	StatusRetired        Status = "RETIRED"
	StatusForDisposal    Status = "FOR DISPOSAL"
)

func NewStatus(value string) (Status, error) {
	status := Status(value)
	if !status.isValid() {
		return "", fmt.Errorf("invalid status: %s", value)
	}
	return status, nil
}

func (s Status) isValid() bool {
	switch s {
	case StatusActive, StatusForReplacement, StatusForRepair, StatusRetired, StatusForDisposal:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

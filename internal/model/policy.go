package model

// DuplicatePolicy defines what happens when an added project is already saved.
type DuplicatePolicy int

const (
	DuplicateReject  DuplicatePolicy = iota // Fail the add (default)
	DuplicateReplace                        // Refresh the saved entry in place
	DuplicateAllow                          // Append anyway
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateReject:
		return "reject"
	case DuplicateReplace:
		return "replace"
	case DuplicateAllow:
		return "allow"
	default:
		return "reject"
	}
}

// ParseDuplicatePolicy converts a string to DuplicatePolicy
func ParseDuplicatePolicy(s string) DuplicatePolicy {
	switch s {
	case "replace":
		return DuplicateReplace
	case "allow":
		return DuplicateAllow
	default:
		return DuplicateReject
	}
}

// PersistMode defines how storage write failures are handled.
type PersistMode int

const (
	PersistFail PersistMode = iota // Surface the failure, keep prior state (default)
	PersistLog                     // Log the failure, keep the in-memory update
)

func (m PersistMode) String() string {
	switch m {
	case PersistLog:
		return "log"
	default:
		return "fail"
	}
}

// ParsePersistMode converts a string to PersistMode
func ParsePersistMode(s string) PersistMode {
	if s == "log" {
		return PersistLog
	}

	return PersistFail
}

package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending Status = "pending" // Created, not yet picked up
	StatusWorking Status = "working" // Actively being worked on
	StatusDone    Status = "done"    // Finished
)

// AllStatuses returns all valid status values in cycle order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusWorking, StatusDone}
}

// Next returns the following status in the toggle cycle.
// The cycle is closed: pending → working → done → pending.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusWorking
	case StatusWorking:
		return StatusDone
	case StatusDone:
		return StatusPending
	default:
		return StatusPending
	}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusWorking, StatusDone:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusWorking:
		return "Working"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// Marker returns the single-character checkbox marker used in the task file.
func (s Status) Marker() string {
	switch s {
	case StatusWorking:
		return "~"
	case StatusDone:
		return "x"
	default:
		return " "
	}
}

// StatusFromMarker maps a checkbox marker back to a status.
// Returns false for unknown markers.
func StatusFromMarker(marker string) (Status, bool) {
	switch marker {
	case " ", "":
		return StatusPending, true
	case "~":
		return StatusWorking, true
	case "x", "X":
		return StatusDone, true
	default:
		return "", false
	}
}

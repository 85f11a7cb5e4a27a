package models

// RecordStatus is the soft-delete state shared by customers and workers.
// Records start active and can only move to inactive; there is no
// reactivation transition.
type RecordStatus string

const (
	StatusActive   RecordStatus = "active"
	StatusInactive RecordStatus = "inactive"
)

// StatusFromBool maps the public API's boolean status parameter onto the enum.
func StatusFromBool(active bool) RecordStatus {
	if active {
		return StatusActive
	}
	return StatusInactive
}

func (s RecordStatus) Bool() bool {
	return s == StatusActive
}

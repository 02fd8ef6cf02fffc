package domain

import "fmt"

// EntityKind names a parent table for integrity checks and error messages.
type EntityKind string

const (
	EntityKindSite   EntityKind = "Site"
	EntityKindRoom   EntityKind = "Room"
	EntityKindDevice EntityKind = "Device"
)

// IntegrityError 被引用的父实体不存在
// Raised before any insert is attempted; the mutation fails with this message.
type IntegrityError struct {
	Kind EntityKind
	ID   int64
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s with ID %d does not exist", e.Kind, e.ID)
}

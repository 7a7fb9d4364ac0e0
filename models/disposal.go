package models

import (
	"time"

	"github.com/google/uuid"
)

type DisposalStatus string

const (
	DisposalPending   DisposalStatus = "pending"
	DisposalApproved  DisposalStatus = "approved"
	DisposalRejected  DisposalStatus = "rejected"
	DisposalCompleted DisposalStatus = "completed"
)

var disposalEdges = map[DisposalStatus][]DisposalStatus{
	DisposalPending:   {DisposalApproved, DisposalRejected},
	DisposalApproved:  {DisposalCompleted},
	DisposalRejected:  {},
	DisposalCompleted: {},
}

func ParseDisposalStatus(s string) (DisposalStatus, error) {
	st := DisposalStatus(s)
	if _, ok := disposalEdges[st]; !ok {
		return "", NewValidationError("status", "unknown disposal status "+s)
	}
	return st, nil
}

// Open reports whether the request still blocks new requests for its device.
func (s DisposalStatus) Open() bool {
	return s == DisposalPending || s == DisposalApproved
}

func (s DisposalStatus) Terminal() bool {
	return s == DisposalRejected || s == DisposalCompleted
}

func (s DisposalStatus) CheckTransition(next DisposalStatus) error {
	for _, to := range disposalEdges[s] {
		if to == next {
			return nil
		}
	}
	return &TransitionError{Entity: "disposal request", From: string(s), To: string(next)}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority treats the empty string as medium.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(s); p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", NewValidationError("priority", "unknown priority "+s)
}

type DisposalRequest struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	DeviceID    uuid.UUID      `json:"device_id" db:"device_id"`
	RequestedBy uuid.UUID      `json:"requested_by" db:"requested_by"`
	Reason      string         `json:"reason" db:"reason"`
	Priority    Priority       `json:"priority" db:"priority"`
	Status      DisposalStatus `json:"status" db:"status"`
	ApprovedBy  *uuid.UUID     `json:"approved_by,omitempty" db:"approved_by"`
	ApprovedAt  *time.Time     `json:"approved_at,omitempty" db:"approved_at"`
	Notes       *string        `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

type DisposalDraft struct {
	DeviceID    uuid.UUID
	RequestedBy uuid.UUID
	Reason      string
	Priority    Priority
	Notes       *string
}

// DisposalTransition is a conditional status write: it applies only while
// the stored status still equals From.
type DisposalTransition struct {
	ID         uuid.UUID
	From       DisposalStatus
	To         DisposalStatus
	ApprovedBy *uuid.UUID
	ApprovedAt *time.Time
	Notes      *string
}

type DisposalFilter struct {
	Statuses    []DisposalStatus
	Priority    string
	DeviceID    *uuid.UUID
	RequestedBy *uuid.UUID
	Limit       int
	Offset      int
}

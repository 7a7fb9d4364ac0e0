package models

import (
	"time"

	"github.com/google/uuid"
)

type DeviceStatus string

const (
	DeviceActive          DeviceStatus = "active"
	DevicePendingDisposal DeviceStatus = "pending_disposal"
	DeviceDisposed        DeviceStatus = "disposed"
	DeviceRecycled        DeviceStatus = "recycled"
)

// deviceEdges is the complete set of legal device status transitions.
var deviceEdges = map[DeviceStatus][]DeviceStatus{
	DeviceActive:          {DevicePendingDisposal},
	DevicePendingDisposal: {DeviceDisposed, DeviceActive},
	DeviceDisposed:        {DeviceRecycled},
	DeviceRecycled:        {},
}

func ParseDeviceStatus(s string) (DeviceStatus, error) {
	st := DeviceStatus(s)
	if _, ok := deviceEdges[st]; !ok {
		return "", NewValidationError("status", "unknown device status "+s)
	}
	return st, nil
}

func (s DeviceStatus) Valid() bool {
	_, ok := deviceEdges[s]
	return ok
}

func (s DeviceStatus) CanTransitionTo(next DeviceStatus) bool {
	for _, to := range deviceEdges[s] {
		if to == next {
			return true
		}
	}
	return false
}

// CheckTransition returns a *TransitionError when s -> next is not a legal edge.
func (s DeviceStatus) CheckTransition(next DeviceStatus) error {
	if !s.CanTransitionTo(next) {
		return &TransitionError{Entity: "device", From: string(s), To: string(next)}
	}
	return nil
}

type DeviceCondition string

const (
	ConditionWorking       DeviceCondition = "working"
	ConditionRepairable    DeviceCondition = "repairable"
	ConditionNonFunctional DeviceCondition = "non_functional"
	ConditionHazardous     DeviceCondition = "hazardous"
)

func ParseDeviceCondition(s string) (DeviceCondition, error) {
	switch c := DeviceCondition(s); c {
	case ConditionWorking, ConditionRepairable, ConditionNonFunctional, ConditionHazardous:
		return c, nil
	}
	return "", NewValidationError("condition", "unknown device condition "+s)
}

type Device struct {
	ID              uuid.UUID        `json:"id" db:"id"`
	Name            string           `json:"name" db:"name"`
	Type            string           `json:"type" db:"type"`
	Status          DeviceStatus     `json:"status" db:"status"`
	Condition       *DeviceCondition `json:"condition,omitempty" db:"condition"`
	Location        *string          `json:"location,omitempty" db:"location"`
	SerialNumber    *string          `json:"serial_number,omitempty" db:"serial_number"`
	AcquisitionDate *time.Time       `json:"acquisition_date,omitempty" db:"acquisition_date"`
	Notes           *string          `json:"notes,omitempty" db:"notes"`
	AddedBy         *uuid.UUID       `json:"added_by,omitempty" db:"added_by"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" db:"updated_at"`
}

// DeviceDraft is a validated device ready for insertion.
type DeviceDraft struct {
	Name            string
	Type            string
	Condition       *DeviceCondition
	Location        *string
	SerialNumber    *string
	AcquisitionDate *time.Time
	Notes           *string
	AddedBy         uuid.UUID
}

// DevicePatch holds the non-lifecycle fields an edit may change. Nil means
// unchanged. Status is deliberately absent.
type DevicePatch struct {
	Name            *string
	Type            *string
	Condition       *DeviceCondition
	Location        *string
	SerialNumber    *string
	AcquisitionDate *time.Time
	Notes           *string
}

func (p DevicePatch) Empty() bool {
	return p.Name == nil && p.Type == nil && p.Condition == nil && p.Location == nil &&
		p.SerialNumber == nil && p.AcquisitionDate == nil && p.Notes == nil
}

type DeviceFilter struct {
	Statuses   []DeviceStatus
	Type       string
	SearchText string
	Limit      int
	Offset     int
}

type DeviceStatusCount struct {
	Status DeviceStatus `json:"status" db:"status"`
	Count  int          `json:"count" db:"count"`
}

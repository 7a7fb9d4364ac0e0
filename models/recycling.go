package models

import (
	"math"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type RecyclingRecord struct {
	ID                 uuid.UUID      `json:"id" db:"id"`
	DeviceID           uuid.UUID      `json:"device_id" db:"device_id"`
	DisposalRequestID  *uuid.UUID     `json:"disposal_request_id,omitempty" db:"disposal_request_id"`
	ProcessedBy        *uuid.UUID     `json:"processed_by,omitempty" db:"processed_by"`
	RecyclingPartner   *string        `json:"recycling_partner,omitempty" db:"recycling_partner"`
	WeightKg           float64        `json:"weight_kg" db:"weight_kg"`
	Co2SavedKg         float64        `json:"co2_saved_kg" db:"co2_saved_kg"`
	MaterialsRecovered pq.StringArray `json:"materials_recovered" db:"materials_recovered"`
	CertificateNumber  *string        `json:"certificate_number,omitempty" db:"certificate_number"`
	RecycledAt         time.Time      `json:"recycled_at" db:"recycled_at"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`
}

// RecyclingMetrics is the environmental outcome supplied by the processor.
type RecyclingMetrics struct {
	RecyclingPartner   *string
	WeightKg           float64
	Co2SavedKg         float64
	MaterialsRecovered []string
	CertificateNumber  *string
	RecycledAt         *time.Time
}

// Validate rejects negative or non-finite quantities and normalizes the
// materials into a sorted set without blanks.
func (m RecyclingMetrics) Validate() (RecyclingMetrics, error) {
	if math.IsNaN(m.WeightKg) || math.IsInf(m.WeightKg, 0) || m.WeightKg < 0 {
		return m, NewValidationError("weight_kg", "must be a non-negative number")
	}
	if math.IsNaN(m.Co2SavedKg) || math.IsInf(m.Co2SavedKg, 0) || m.Co2SavedKg < 0 {
		return m, NewValidationError("co2_saved_kg", "must be a non-negative number")
	}
	if m.CertificateNumber != nil && strings.TrimSpace(*m.CertificateNumber) == "" {
		m.CertificateNumber = nil
	}

	materials := mapset.NewThreadUnsafeSet[string]()
	for _, s := range m.MaterialsRecovered {
		if s = strings.TrimSpace(strings.ToLower(s)); s != "" {
			materials.Add(s)
		}
	}
	m.MaterialsRecovered = materials.ToSlice()
	sort.Strings(m.MaterialsRecovered)
	return m, nil
}

// RecyclingDraft is everything needed to write one outcome.
type RecyclingDraft struct {
	DeviceID          uuid.UUID
	DisposalRequestID uuid.UUID
	ProcessedBy       uuid.UUID
	Metrics           RecyclingMetrics
}

type RecyclingFilter struct {
	DeviceID *uuid.UUID
	Limit    int
	Offset   int
}

type ImpactSummary struct {
	Records     int     `json:"records" db:"records"`
	TotalWeight float64 `json:"total_weight_kg" db:"total_weight_kg"`
	TotalCo2    float64 `json:"total_co2_saved_kg" db:"total_co2_saved_kg"`
}

package models

import (
	"fmt"
	"strings"
	"time"
)

// SchoolType identifies the kind of institution the student enrolls in.
type SchoolType string

const (
	SchoolTypeLanguage   SchoolType = "language"
	SchoolTypeCollege    SchoolType = "college"
	SchoolTypeUniversity SchoolType = "university"
)

// IsValid reports whether the school type is one of the known values.
func (s SchoolType) IsValid() bool {
	switch s {
	case SchoolTypeLanguage, SchoolTypeCollege, SchoolTypeUniversity:
		return true
	}
	return false
}

// DepartureDateLayout is the layout used to persist departure dates.
const DepartureDateLayout = "2006-01-02"

// StudyProfile is the current snapshot of the traveler's plan.
type StudyProfile struct {
	Country        string     `json:"country" yaml:"country"`
	City           string     `json:"city" yaml:"city"`
	SchoolType     SchoolType `json:"schoolType" yaml:"school_type"`
	DepartureDate  string     `json:"departureDate" yaml:"departure_date"` // YYYY-MM-DD
	DurationMonths int        `json:"durationMonths" yaml:"duration_months"`
}

// DefaultProfile returns the profile a fresh installation starts from.
// It has no departure date.
func DefaultProfile() StudyProfile {
	return StudyProfile{
		Country:        DefaultCountry,
		City:           DefaultCity,
		SchoolType:     SchoolTypeUniversity,
		DurationMonths: DefaultDurationMonths,
	}
}

// Departure parses the departure date.
func (p StudyProfile) Departure() (time.Time, error) {
	t, err := time.Parse(DepartureDateLayout, strings.TrimSpace(p.DepartureDate))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid departure date '%s': %w", p.DepartureDate, err)
	}
	return t, nil
}

// HasDeparture reports whether a usable departure date is set.
func (p StudyProfile) HasDeparture() bool {
	_, err := p.Departure()
	return err == nil
}

// Validate checks the profile invariants.
func (p StudyProfile) Validate() error {
	if p.DurationMonths < 1 {
		return fmt.Errorf("duration must be at least 1 month, got %d", p.DurationMonths)
	}
	if p.SchoolType != "" && !p.SchoolType.IsValid() {
		return fmt.Errorf("unknown school type: %s", p.SchoolType)
	}
	if _, err := p.Departure(); err != nil {
		return err
	}
	return nil
}

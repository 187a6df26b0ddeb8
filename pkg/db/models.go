package db

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// StaffRole is the help-staff category. Roles differ only in label.
type StaffRole string

const (
	RoleTA  StaffRole = "TA"
	RolePLA StaffRole = "PLA"
	RoleGLA StaffRole = "GLA"
)

// ProfessorPreferenceKind distinguishes avoid-list and prefer-list entries
type ProfessorPreferenceKind string

const (
	ProfessorAvoid  ProfessorPreferenceKind = "avoid"
	ProfessorPrefer ProfessorPreferenceKind = "prefer"
)

// Term represents a database term record
type Term struct {
	ID   string
	Name string
}

// Staff represents a database staff record
type Staff struct {
	ID        string
	FirstName string
	LastName  string
	Role      StaffRole
	Hours     int
}

// Section represents a database section record
type Section struct {
	ID            string
	TermID        string
	CourseCode    string
	SectionNumber string
	RequiredHours int
}

// ProfessorPreference represents one avoid or prefer entry for a section
type ProfessorPreference struct {
	SectionID string
	StaffID   string
	Kind      ProfessorPreferenceKind
}

// StaffSectionPreference represents a staff member's declaration about one section in a term.
// Rank is empty when the staff member is qualified but expressed no preference.
type StaffSectionPreference struct {
	TermID    string
	StaffID   string
	SectionID string
	Qualified bool
	Rank      string
}

// Assignment represents a database assignment record
type Assignment struct {
	ID        string
	SectionID string
	StaffID   string
	Locked    bool
	CreatedAt time.Time
}

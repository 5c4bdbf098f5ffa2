package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// MaxEntries caps the repeated-entry count for vehicle and staff sub-forms.
const MaxEntries = 10

var contactPattern = regexp.MustCompile(`^\d{10}$`)

// ValidContact reports whether s is exactly ten digits after trimming.
func ValidContact(s string) bool {
	return contactPattern.MatchString(strings.TrimSpace(s))
}

// VehicleEntry is one vehicle group in a vehicle-multi payload.
type VehicleEntry struct {
	Make         string `json:"make"`
	Registration string `json:"registration"`
	DriverName   string `json:"driverName"`
	Contact      string `json:"contact"`
}

// StaffEntry is one name/contact pair, used by both multi-select rosters and
// single staff-with-contact assignments.
type StaffEntry struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// FieldError locates a validation failure within a repeated-entry sub-form.
// Row is zero-based. Errors surface inline per row and never block entry of
// other rows; they only block promotion of the payload to the task value.
type FieldError struct {
	Row   int
	Field string
	Msg   string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("row %d: %s: %s", e.Row+1, e.Field, e.Msg)
}

// ValidateVehicles checks every vehicle group for the vehicle-multi input
// type. All four fields must be non-blank and the contact must be a valid
// ten-digit number.
func ValidateVehicles(entries []VehicleEntry) []FieldError {
	var errs []FieldError
	for i, v := range entries {
		if strings.TrimSpace(v.Make) == "" {
			errs = append(errs, FieldError{i, "make", "required"})
		}
		if strings.TrimSpace(v.Registration) == "" {
			errs = append(errs, FieldError{i, "registration", "required"})
		}
		if strings.TrimSpace(v.DriverName) == "" {
			errs = append(errs, FieldError{i, "driverName", "required"})
		}
		errs = appendContactError(errs, i, v.Contact)
	}
	return errs
}

// ValidateStaffEntries checks every name/contact group for the multi-select
// input type.
func ValidateStaffEntries(entries []StaffEntry) []FieldError {
	var errs []FieldError
	for i, s := range entries {
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, FieldError{i, "name", "required"})
		}
		errs = appendContactError(errs, i, s.Contact)
	}
	return errs
}

func appendContactError(errs []FieldError, row int, contact string) []FieldError {
	if strings.TrimSpace(contact) == "" {
		return append(errs, FieldError{row, "contact", "required"})
	}
	if !ValidContact(contact) {
		return append(errs, FieldError{row, "contact", "must be exactly 10 digits"})
	}
	return errs
}

// EncodeVehicles serializes a fully validated vehicle list. A zero count or
// any failing row refuses to commit, leaving the task without a value.
func EncodeVehicles(entries []VehicleEntry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("no vehicles entered")
	}
	if len(entries) > MaxEntries {
		return "", fmt.Errorf("at most %d vehicles", MaxEntries)
	}
	if errs := ValidateVehicles(entries); len(errs) > 0 {
		return "", errs[0]
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("encoding vehicles: %w", err)
	}
	return string(b), nil
}

// EncodeStaffRoster serializes a fully validated multi-select roster.
func EncodeStaffRoster(entries []StaffEntry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("no staff entered")
	}
	if len(entries) > MaxEntries {
		return "", fmt.Errorf("at most %d staff", MaxEntries)
	}
	if errs := ValidateStaffEntries(entries); len(errs) > 0 {
		return "", errs[0]
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("encoding staff roster: %w", err)
	}
	return string(b), nil
}

// EncodeStaffAssignment serializes a single staff-with-contact pair. Commit
// happens as soon as both the name and a valid contact are present.
func EncodeStaffAssignment(entry StaffEntry) (string, error) {
	if strings.TrimSpace(entry.Name) == "" {
		return "", fmt.Errorf("name is required")
	}
	if !ValidContact(entry.Contact) {
		return "", fmt.Errorf("contact must be exactly 10 digits")
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("encoding staff assignment: %w", err)
	}
	return string(b), nil
}

// Value is the decoded form of a task's input value. The concrete type is
// determined by the task's InputType, so readers parse once at the boundary
// instead of re-interpreting the raw string everywhere.
type Value interface{ isValue() }

// TextValue holds the plain string kept by text, textarea, file, link, and
// dropdown tasks.
type TextValue struct{ Text string }

// VehicleList holds the decoded vehicle-multi payload.
type VehicleList struct{ Vehicles []VehicleEntry }

// StaffRoster holds the decoded multi-select payload.
type StaffRoster struct{ Staff []StaffEntry }

// StaffAssignment holds the decoded staff-with-contact payload.
type StaffAssignment struct{ Staff StaffEntry }

func (TextValue) isValue()       {}
func (VehicleList) isValue()     {}
func (StaffRoster) isValue()     {}
func (StaffAssignment) isValue() {}

// ParseValue decodes a task's raw input value into its typed form. An empty
// value yields nil. Malformed structured payloads return an error; callers
// treat that the same as no value.
func ParseValue(t *Task) (Value, error) {
	raw := strings.TrimSpace(t.InputValue)
	if raw == "" {
		return nil, nil
	}
	switch t.InputType {
	case InputVehicleMulti:
		var vehicles []VehicleEntry
		if err := json.Unmarshal([]byte(raw), &vehicles); err != nil {
			return nil, fmt.Errorf("decoding vehicle payload: %w", err)
		}
		return VehicleList{Vehicles: vehicles}, nil
	case InputMultiSelect:
		var staff []StaffEntry
		if err := json.Unmarshal([]byte(raw), &staff); err != nil {
			return nil, fmt.Errorf("decoding staff roster: %w", err)
		}
		return StaffRoster{Staff: staff}, nil
	case InputStaffWithContact:
		var entry StaffEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("decoding staff assignment: %w", err)
		}
		return StaffAssignment{Staff: entry}, nil
	default:
		return TextValue{Text: t.InputValue}, nil
	}
}

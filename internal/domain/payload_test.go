package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVehicle() VehicleEntry {
	return VehicleEntry{Make: "Tempo", Registration: "HP-02-1234", DriverName: "Mohan", Contact: "9876543210"}
}

func TestValidContact(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"9876543210", true},
		{" 9876543210 ", true},
		{"987654321", false},
		{"98765432100", false},
		{"98765abc10", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, ValidContact(tc.in), "contact %q", tc.in)
	}
}

func TestValidateVehicles_ReportsEveryRow(t *testing.T) {
	entries := []VehicleEntry{
		validVehicle(),
		{Make: "SUV", Registration: "LA-01-777", Contact: "12345"},
	}
	errs := ValidateVehicles(entries)
	require.Len(t, errs, 2)

	// Errors on row 2 must not mention row 1.
	for _, e := range errs {
		assert.Equal(t, 1, e.Row)
	}
	assert.Equal(t, "driverName", errs[0].Field)
	assert.Equal(t, "contact", errs[1].Field)
}

func TestEncodeVehicles_PartialRowDoesNotCommit(t *testing.T) {
	incomplete := validVehicle()
	incomplete.DriverName = ""

	_, err := EncodeVehicles([]VehicleEntry{validVehicle(), incomplete})
	require.Error(t, err)
}

func TestEncodeVehicles_ZeroCountDoesNotCommit(t *testing.T) {
	_, err := EncodeVehicles(nil)
	require.Error(t, err)
}

func TestEncodeVehicles_RoundTripsThroughParseValue(t *testing.T) {
	payload, err := EncodeVehicles([]VehicleEntry{validVehicle(), validVehicle()})
	require.NoError(t, err)

	task := Task{InputType: InputVehicleMulti, InputValue: payload}
	assert.True(t, task.IsComplete())

	v, err := ParseValue(&task)
	require.NoError(t, err)
	list, ok := v.(VehicleList)
	require.True(t, ok)
	assert.Len(t, list.Vehicles, 2)
	assert.Equal(t, "Mohan", list.Vehicles[0].DriverName)
}

func TestEncodeStaffRoster_InvalidContactBlocksCommit(t *testing.T) {
	entries := []StaffEntry{
		{Name: "Vijay Singh", Contact: "9876543210"},
		{Name: "Sonam Dorje", Contact: "12345"},
	}
	_, err := EncodeStaffRoster(entries)
	require.Error(t, err)

	entries[1].Contact = "9876543211"
	payload, err := EncodeStaffRoster(entries)
	require.NoError(t, err)

	task := Task{InputType: InputMultiSelect, InputValue: payload}
	v, err := ParseValue(&task)
	require.NoError(t, err)
	roster, ok := v.(StaffRoster)
	require.True(t, ok)
	assert.Len(t, roster.Staff, 2)
}

func TestEncodeStaffAssignment(t *testing.T) {
	_, err := EncodeStaffAssignment(StaffEntry{Name: "", Contact: "9876543210"})
	assert.Error(t, err)

	_, err = EncodeStaffAssignment(StaffEntry{Name: "Rajesh Kumar", Contact: "987"})
	assert.Error(t, err)

	payload, err := EncodeStaffAssignment(StaffEntry{Name: "Rajesh Kumar", Contact: "9876543210"})
	require.NoError(t, err)

	task := Task{InputType: InputStaffWithContact, InputValue: payload}
	v, err := ParseValue(&task)
	require.NoError(t, err)
	got, ok := v.(StaffAssignment)
	require.True(t, ok)
	assert.Equal(t, "Rajesh Kumar", got.Staff.Name)
}

func TestParseValue_EmptyAndMalformed(t *testing.T) {
	task := Task{InputType: InputVehicleMulti}
	v, err := ParseValue(&task)
	require.NoError(t, err)
	assert.Nil(t, v)

	task.InputValue = "{not json"
	_, err = ParseValue(&task)
	assert.Error(t, err)
}

func TestParseValue_PlainTextTypes(t *testing.T) {
	task := Task{InputType: InputText, InputValue: "booked"}
	v, err := ParseValue(&task)
	require.NoError(t, err)
	assert.Equal(t, TextValue{Text: "booked"}, v)
}

package domain

import "time"

// Trek is a single scheduled expedition instance. Treks are created at seed
// time and referenced from tasks by name.
type Trek struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	NumberOfClients int       `json:"numberOfClients"`
	BaseName        string    `json:"baseName"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// ReadOnlyAt reports whether the trek's checklist is frozen at the given
// instant. A trek locks at midnight on its start date; time of day is
// ignored on both sides.
func (t *Trek) ReadOnlyAt(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	sy, sm, sd := t.StartDate.Date()
	start := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	return !today.Before(start)
}

// Base is a geographic region grouping treks. It carries no state of its
// own; membership is derived from the BaseName fields on tasks and treks.
type Base struct {
	Name string `json:"name"`
}

// StaffDirectory is the global singleton of known staff names, used as
// dropdown option sources for team assignment tasks.
type StaffDirectory struct {
	TripLeaders     []string `json:"tripLeaders"`
	Cooks           []string `json:"cooks"`
	AssistantGuides []string `json:"assistantGuides"`
	SupportStaff    []string `json:"supportStaff"`
}

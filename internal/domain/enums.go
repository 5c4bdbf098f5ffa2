package domain

type TrekType string

const (
	TrekTypeTreks       TrekType = "treks"
	TrekTypeExpeditions TrekType = "expeditions"
	TrekTypeClimbs      TrekType = "climbs"
)

type Team string

const (
	TeamGroundOps  Team = "ground-ops"
	TeamSupport    Team = "support"
	TeamTripLeader Team = "trip-leader"
	TeamHeadOffice Team = "head-office"
)

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not-started"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type InputType string

const (
	InputText             InputType = "text"
	InputTextarea         InputType = "textarea"
	InputFile             InputType = "file"
	InputLink             InputType = "link"
	InputDropdown         InputType = "dropdown"
	InputMultiSelect      InputType = "multi-select"
	InputVehicleMulti     InputType = "vehicle-multi"
	InputBudgetVoucher    InputType = "budget-with-voucher"
	InputStaffWithContact InputType = "staff-with-contact"
)

// ValidInputTypes is the canonical set of accepted input type strings.
var ValidInputTypes = map[InputType]bool{
	InputText: true, InputTextarea: true, InputFile: true, InputLink: true,
	InputDropdown: true, InputMultiSelect: true, InputVehicleMulti: true,
	InputBudgetVoucher: true, InputStaffWithContact: true,
}

const (
	CategoryTransport     = "Transport"
	CategoryPermits       = "Permits"
	CategoryEquipment     = "Equipment"
	CategoryKitchen       = "Kitchen"
	CategoryTeamAssigned  = "Team Assigned"
	CategoryFieldAccounts = "Field Accounts"
)

// CategoryNames is the fixed ordered set of operational areas shown on a
// trek's detail page.
var CategoryNames = []string{
	CategoryTransport,
	CategoryPermits,
	CategoryEquipment,
	CategoryKitchen,
	CategoryTeamAssigned,
	CategoryFieldAccounts,
}

// BaseNames is the fixed list of regions grouping treks.
var BaseNames = []string{
	"Uttarakhand",
	"Ladakh",
	"Himachal",
	"Sikkim",
	"Kashmir",
}

package seed

import (
	"time"

	"github.com/alexanderramin/trekops/internal/domain"
)

// TrekTemplates is the fixed set of trips a fresh store is populated with.
func TrekTemplates() []domain.Trek {
	return []domain.Trek{
		{
			Name:            "Markha Valley Trek",
			StartDate:       date(2025, 6, 15),
			EndDate:         date(2025, 6, 22),
			NumberOfClients: 12,
			BaseName:        "Ladakh",
		},
		{
			Name:            "Hampta Pass Trek",
			StartDate:       date(2025, 6, 22),
			EndDate:         date(2025, 6, 29),
			NumberOfClients: 18,
			BaseName:        "Himachal",
		},
		{
			Name:            "Nubra Valley Trek",
			StartDate:       date(2025, 6, 29),
			EndDate:         date(2025, 7, 6),
			NumberOfClients: 8,
			BaseName:        "Ladakh",
		},
		{
			Name:            "Hidden Meadows Garhwal",
			StartDate:       date(2026, 3, 15),
			EndDate:         date(2026, 3, 19),
			NumberOfClients: 24,
			BaseName:        "Uttarakhand",
		},
	}
}

// DefaultStaff is the staff directory seeded when none exists.
func DefaultStaff() domain.StaffDirectory {
	return domain.StaffDirectory{
		TripLeaders:     []string{"Rajesh Kumar", "Amit Singh", "Priya Sharma", "Deepak Verma", "Neha Patel"},
		Cooks:           []string{"Ramesh Bisht", "Suresh Negi", "Kailash Thapa", "Mohan Rawat", "Dinesh Kumar"},
		AssistantGuides: []string{"Vijay Singh", "Sonam Dorje", "Tashi Namgyal", "Karma Wangdi", "Lobsang Dorji", "Rinchen Dorji"},
		SupportStaff:    []string{"Raju Lal", "Shankar Prasad", "Bhim Bahadur", "Jeet Singh", "Narender Kumar", "Prakash Rai"},
	}
}

// taskTemplate is the compact per-task seed row; section doubles as the
// category since the seed data aligns them 1:1.
type taskTemplate struct {
	id            string
	title         string
	description   string
	status        domain.TaskStatus
	priority      domain.Priority
	daysBefore    int
	inputType     domain.InputType
	section       string
	sectionNumber int
	taskNumber    int
	allowMultiple bool
	isCalculated  bool
	options       func(domain.StaffDirectory) []string
}

// TasksForTrek expands a trek's task templates into full records. Team
// dropdowns are filled from the staff directory at expansion time, the same
// way the live option lists are sourced.
func TasksForTrek(trekName string, staff domain.StaffDirectory) []domain.Task {
	templates, ok := trekTasks[trekName]
	if !ok {
		return nil
	}
	baseName := ""
	for _, trek := range TrekTemplates() {
		if trek.Name == trekName {
			baseName = trek.BaseName
			break
		}
	}

	out := make([]domain.Task, 0, len(templates))
	for _, tpl := range templates {
		status := tpl.status
		if status == "" {
			status = domain.StatusNotStarted
		}
		task := domain.Task{
			ID:             tpl.id,
			Title:          tpl.title,
			Description:    tpl.description,
			Status:         status,
			Priority:       tpl.priority,
			DaysBeforeTrek: tpl.daysBefore,
			TrekType:       domain.TrekTypeTreks,
			Team:           domain.TeamSupport,
			InputType:      tpl.inputType,
			Section:        tpl.section,
			SectionNumber:  tpl.sectionNumber,
			TaskNumber:     tpl.taskNumber,
			Category:       tpl.section,
			TrekName:       trekName,
			BaseName:       baseName,
			AllowMultiple:  tpl.allowMultiple,
			IsCalculated:   tpl.isCalculated,
		}
		if tpl.options != nil {
			task.DropdownOptions = tpl.options(staff)
		}
		out = append(out, task)
	}
	return out
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func tripLeaders(s domain.StaffDirectory) []string { return s.TripLeaders }

func cooks(s domain.StaffDirectory) []string { return s.Cooks }

func assistantGuides(s domain.StaffDirectory) []string { return s.AssistantGuides }

func supportStaff(s domain.StaffDirectory) []string { return s.SupportStaff }

func noOptions(domain.StaffDirectory) []string { return []string{} }

var trekTasks = map[string][]taskTemplate{
	"Markha Valley Trek": {
		{id: "mv-permit-1", title: "IMF Permit", description: "Upload IMF permit or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 1},
		{id: "mv-permit-2", title: "Trekking Permit", description: "Upload trekking permit or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 2},
		{id: "mv-permit-3", title: "Trekking Chit", description: "Upload trekking chit or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 3},
		{id: "mv-permit-4", title: "Any other permit", description: "Upload any other permit or mark as NA if not applicable", priority: domain.PriorityMedium, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 4},
		{id: "mv-permit-5", title: "Staff Insurance", description: "Upload staff insurance or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 5},
		{id: "mv-transport-1", title: "Support Vehicle", description: "Enter number of support vehicles and their details", priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputVehicleMulti, section: "Transport", sectionNumber: 2, taskNumber: 1, allowMultiple: true},
		{id: "mv-transport-2", title: "Client Transport", description: "Enter vehicle registration, driver name, and contact", priority: domain.PriorityHigh, daysBefore: 5, inputType: domain.InputVehicleMulti, section: "Transport", sectionNumber: 2, taskNumber: 2, allowMultiple: true},
		{id: "mv-equipment-1", title: "Final Equipment List", description: "Upload final equipment list or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 5, inputType: domain.InputFile, section: "Equipment", sectionNumber: 3, taskNumber: 1},
		{id: "mv-equipment-2", title: "Rental Equipment List", description: "Upload rental equipment list or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 5, inputType: domain.InputFile, section: "Equipment", sectionNumber: 3, taskNumber: 2},
		{id: "mv-kitchen-1", title: "Kitchen Equipment Checklist", description: "Verify and upload kitchen equipment checklist", priority: domain.PriorityHigh, daysBefore: 3, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 1},
		{id: "mv-kitchen-2", title: "Menu", description: "Create and upload menu plan", priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 2},
		{id: "mv-kitchen-3", title: "Dry Ration Shopping List", description: "Purchase and document dry rations", priority: domain.PriorityHigh, daysBefore: 3, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 3},
		{id: "mv-kitchen-4", title: "Vegetable List", description: "Purchase and document fresh vegetables", priority: domain.PriorityHigh, daysBefore: 1, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 4},
		{id: "mv-kitchen-5", title: "Perishable Checklist", description: "Purchase and document perishables (eggs, chicken, etc)", priority: domain.PriorityHigh, daysBefore: 1, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 5},
		{id: "mv-team-1", title: "Trip Leader", description: "Select trip leader and enter contact number", priority: domain.PriorityHigh, daysBefore: 15, inputType: domain.InputStaffWithContact, section: "Team Assigned", sectionNumber: 5, taskNumber: 1, options: tripLeaders},
		{id: "mv-team-2", title: "Cook", description: "Select cook and enter contact number", priority: domain.PriorityHigh, daysBefore: 15, inputType: domain.InputStaffWithContact, section: "Team Assigned", sectionNumber: 5, taskNumber: 2, options: cooks},
		{id: "mv-team-3", title: "Assistant Guides", description: "Enter number of assistant guides, select from database and enter contact numbers", priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputMultiSelect, section: "Team Assigned", sectionNumber: 5, taskNumber: 3, allowMultiple: true, options: assistantGuides},
		{id: "mv-team-4", title: "Support Staff", description: "Enter number of support staff, select from database and enter contact numbers", priority: domain.PriorityMedium, daysBefore: 10, inputType: domain.InputMultiSelect, section: "Team Assigned", sectionNumber: 5, taskNumber: 4, allowMultiple: true, options: supportStaff},
		{id: "mv-team-5", title: "Personal Porter", description: "Enter number of personal porters, their names and contact numbers", priority: domain.PriorityMedium, daysBefore: 10, inputType: domain.InputMultiSelect, section: "Team Assigned", sectionNumber: 5, taskNumber: 5, allowMultiple: true, options: noOptions},
		{id: "mv-accounts-1", title: "Guide Budget", description: "Enter guide budget amount and upload cash voucher", priority: domain.PriorityHigh, daysBefore: 2, inputType: domain.InputBudgetVoucher, section: "Field Accounts", sectionNumber: 6, taskNumber: 1},
		{id: "mv-accounts-2", title: "Cook Budget", description: "Enter cook budget amount and upload cash voucher", priority: domain.PriorityHigh, daysBefore: 2, inputType: domain.InputBudgetVoucher, section: "Field Accounts", sectionNumber: 6, taskNumber: 2},
		{id: "mv-accounts-3", title: "Any cash payments", description: "Enter any additional cash payments and upload cash voucher", priority: domain.PriorityMedium, daysBefore: 2, inputType: domain.InputBudgetVoucher, section: "Field Accounts", sectionNumber: 6, taskNumber: 3},
		{id: "mv-accounts-4", title: "Total Budget", description: "Automatically calculated total of all budgets", priority: domain.PriorityHigh, daysBefore: 2, inputType: domain.InputText, section: "Field Accounts", sectionNumber: 6, taskNumber: 4, isCalculated: true},
	},
	"Hampta Pass Trek": {
		{id: "hp-permit-1", title: "Obtain trekking permit", description: "Upload pdf of permit", status: domain.StatusCompleted, priority: domain.PriorityHigh, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 1},
		{id: "hp-permit-2", title: "Forest clearance", description: "Upload forest clearance", status: domain.StatusCompleted, priority: domain.PriorityHigh, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 2},
		{id: "hp-permit-3", title: "Staff Insurance", description: "Upload staff insurance or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 3},
		{id: "hp-transport-1", title: "Support vehicle booking", description: "Book support vehicles", status: domain.StatusCompleted, priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputText, section: "Transport", sectionNumber: 2, taskNumber: 1},
		{id: "hp-transport-2", title: "Client vehicle booking", description: "Book client transport", status: domain.StatusCompleted, priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputText, section: "Transport", sectionNumber: 2, taskNumber: 2},
		{id: "hp-equipment-1", title: "Final Equipment List", description: "Upload final equipment list or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 5, inputType: domain.InputFile, section: "Equipment", sectionNumber: 3, taskNumber: 1},
		{id: "hp-equipment-2", title: "Rental Equipment List", description: "Upload rental equipment list or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 5, inputType: domain.InputFile, section: "Equipment", sectionNumber: 3, taskNumber: 2},
		{id: "hp-kitchen-1", title: "Kitchen Equipment Checklist", description: "Verify and upload kitchen equipment checklist", priority: domain.PriorityHigh, daysBefore: 3, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 1},
		{id: "hp-kitchen-2", title: "Menu", description: "Create and upload menu plan", priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 2},
		{id: "hp-kitchen-3", title: "Dry Ration Shopping List", description: "Purchase and document dry rations", priority: domain.PriorityHigh, daysBefore: 3, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 3},
		{id: "hp-kitchen-4", title: "Vegetable List", description: "Purchase and document fresh vegetables", priority: domain.PriorityHigh, daysBefore: 1, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 4},
		{id: "hp-kitchen-5", title: "Perishable Checklist", description: "Purchase and document perishables (eggs, chicken, etc)", priority: domain.PriorityHigh, daysBefore: 1, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 5},
		{id: "hp-team-1", title: "Guide", description: "Assign guide and document details", priority: domain.PriorityHigh, daysBefore: 15, inputType: domain.InputText, section: "Team Assigned", sectionNumber: 5, taskNumber: 1},
		{id: "hp-accounts-1", title: "Guide Budget", description: "Enter guide budget amount and upload cash voucher", priority: domain.PriorityHigh, daysBefore: 2, inputType: domain.InputBudgetVoucher, section: "Field Accounts", sectionNumber: 6, taskNumber: 1},
		{id: "hp-accounts-2", title: "Cook Budget", description: "Enter cook budget amount and upload cash voucher", priority: domain.PriorityHigh, daysBefore: 2, inputType: domain.InputBudgetVoucher, section: "Field Accounts", sectionNumber: 6, taskNumber: 2},
		{id: "hp-accounts-3", title: "Any cash payments", description: "Enter any additional cash payments and upload cash voucher", priority: domain.PriorityMedium, daysBefore: 2, inputType: domain.InputBudgetVoucher, section: "Field Accounts", sectionNumber: 6, taskNumber: 3},
		{id: "hp-accounts-4", title: "Total Budget", description: "Automatically calculated total of all budgets", priority: domain.PriorityHigh, daysBefore: 2, inputType: domain.InputText, section: "Field Accounts", sectionNumber: 6, taskNumber: 4, isCalculated: true},
	},
	"Nubra Valley Trek": {
		{id: "nv-permit-1", title: "Obtain trekking permit", description: "Upload pdf of permit", priority: domain.PriorityHigh, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 1},
		{id: "nv-permit-2", title: "Staff Insurance", description: "Upload staff insurance or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 2},
		{id: "nv-transport-1", title: "Support vehicle booking", description: "Book support vehicles", priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputText, section: "Transport", sectionNumber: 2, taskNumber: 1},
		{id: "nv-equipment-1", title: "Final Equipment List", description: "Upload final equipment list or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 5, inputType: domain.InputFile, section: "Equipment", sectionNumber: 3, taskNumber: 1},
		{id: "nv-equipment-2", title: "Rental Equipment List", description: "Upload rental equipment list or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 5, inputType: domain.InputFile, section: "Equipment", sectionNumber: 3, taskNumber: 2},
		{id: "nv-kitchen-1", title: "Kitchen Equipment Checklist", description: "Verify and upload kitchen equipment checklist", priority: domain.PriorityHigh, daysBefore: 3, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 1},
		{id: "nv-kitchen-2", title: "Menu", description: "Create and upload menu plan", priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 2},
		{id: "nv-kitchen-3", title: "Dry Ration Shopping List", description: "Purchase and document dry rations", priority: domain.PriorityHigh, daysBefore: 3, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 3},
		{id: "nv-kitchen-4", title: "Vegetable List", description: "Purchase and document fresh vegetables", priority: domain.PriorityHigh, daysBefore: 1, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 4},
		{id: "nv-kitchen-5", title: "Perishable Checklist", description: "Purchase and document perishables (eggs, chicken, etc)", priority: domain.PriorityHigh, daysBefore: 1, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 5},
		{id: "nv-team-1", title: "Guide", description: "Assign guide and document details", priority: domain.PriorityHigh, daysBefore: 15, inputType: domain.InputText, section: "Team Assigned", sectionNumber: 5, taskNumber: 1},
		{id: "nv-accounts-1", title: "Guide Budget", description: "Enter guide budget amount and upload cash voucher", priority: domain.PriorityHigh, daysBefore: 2, inputType: domain.InputBudgetVoucher, section: "Field Accounts", sectionNumber: 6, taskNumber: 1},
		{id: "nv-accounts-2", title: "Cook Budget", description: "Enter cook budget amount and upload cash voucher", priority: domain.PriorityHigh, daysBefore: 2, inputType: domain.InputBudgetVoucher, section: "Field Accounts", sectionNumber: 6, taskNumber: 2},
		{id: "nv-accounts-3", title: "Any cash payments", description: "Enter any additional cash payments and upload cash voucher", priority: domain.PriorityMedium, daysBefore: 2, inputType: domain.InputBudgetVoucher, section: "Field Accounts", sectionNumber: 6, taskNumber: 3},
		{id: "nv-accounts-4", title: "Total Budget", description: "Automatically calculated total of all budgets", priority: domain.PriorityHigh, daysBefore: 2, inputType: domain.InputText, section: "Field Accounts", sectionNumber: 6, taskNumber: 4, isCalculated: true},
	},
	"Hidden Meadows Garhwal": {
		{id: "hm-permit-1", title: "IMF Permit", description: "Upload IMF permit or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 1},
		{id: "hm-permit-2", title: "Trekking Permit", description: "Upload trekking permit or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 2},
		{id: "hm-permit-3", title: "Trekking Chit", description: "Upload trekking chit or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 3},
		{id: "hm-permit-4", title: "Any other permit", description: "Upload any other permit or mark as NA if not applicable", priority: domain.PriorityMedium, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 4},
		{id: "hm-permit-5", title: "Staff Insurance", description: "Upload staff insurance or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 7, inputType: domain.InputFile, section: "Permits", sectionNumber: 1, taskNumber: 5},
		{id: "hm-transport-1", title: "Support Vehicle", description: "Enter number of support vehicles and their details", priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputVehicleMulti, section: "Transport", sectionNumber: 2, taskNumber: 1, allowMultiple: true},
		{id: "hm-transport-2", title: "Client Transport", description: "Enter vehicle registration, driver name, and contact", priority: domain.PriorityHigh, daysBefore: 5, inputType: domain.InputVehicleMulti, section: "Transport", sectionNumber: 2, taskNumber: 2, allowMultiple: true},
		{id: "hm-equipment-1", title: "Final Equipment List", description: "Upload final equipment list or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 5, inputType: domain.InputFile, section: "Equipment", sectionNumber: 3, taskNumber: 1},
		{id: "hm-equipment-2", title: "Rental Equipment List", description: "Upload rental equipment list or mark as NA if not applicable", priority: domain.PriorityHigh, daysBefore: 5, inputType: domain.InputFile, section: "Equipment", sectionNumber: 3, taskNumber: 2},
		{id: "hm-kitchen-1", title: "Kitchen Equipment Checklist", description: "Verify and upload kitchen equipment checklist", priority: domain.PriorityHigh, daysBefore: 3, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 1},
		{id: "hm-kitchen-2", title: "Menu", description: "Create and upload menu plan", priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 2},
		{id: "hm-kitchen-3", title: "Dry Ration Shopping List", description: "Purchase and document dry rations", priority: domain.PriorityHigh, daysBefore: 3, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 3},
		{id: "hm-kitchen-4", title: "Vegetable List", description: "Purchase and document fresh vegetables", priority: domain.PriorityHigh, daysBefore: 1, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 4},
		{id: "hm-kitchen-5", title: "Perishable Checklist", description: "Purchase and document perishables (eggs, chicken, etc)", priority: domain.PriorityHigh, daysBefore: 1, inputType: domain.InputFile, section: "Kitchen", sectionNumber: 4, taskNumber: 5},
		{id: "hm-team-1", title: "Trip Leader", description: "Select trip leader and enter contact number", priority: domain.PriorityHigh, daysBefore: 15, inputType: domain.InputStaffWithContact, section: "Team Assigned", sectionNumber: 5, taskNumber: 1, options: tripLeaders},
		{id: "hm-team-2", title: "Cook", description: "Select cook and enter contact number", priority: domain.PriorityHigh, daysBefore: 15, inputType: domain.InputStaffWithContact, section: "Team Assigned", sectionNumber: 5, taskNumber: 2, options: cooks},
		{id: "hm-team-3", title: "Assistant Guides", description: "Enter number of assistant guides, select from database and enter contact numbers", priority: domain.PriorityHigh, daysBefore: 10, inputType: domain.InputMultiSelect, section: "Team Assigned", sectionNumber: 5, taskNumber: 3, allowMultiple: true, options: assistantGuides},
		{id: "hm-team-4", title: "Support Staff", description: "Enter number of support staff, select from database and enter contact numbers", priority: domain.PriorityMedium, daysBefore: 10, inputType: domain.InputMultiSelect, section: "Team Assigned", sectionNumber: 5, taskNumber: 4, allowMultiple: true, options: supportStaff},
		{id: "hm-team-5", title: "Personal Porter", description: "Enter number of personal porters, their names and contact numbers", priority: domain.PriorityMedium, daysBefore: 10, inputType: domain.InputMultiSelect, section: "Team Assigned", sectionNumber: 5, taskNumber: 5, allowMultiple: true, options: noOptions},
		{id: "hm-accounts-1", title: "Guide Budget", description: "Enter guide budget amount and upload cash voucher", priority: domain.PriorityHigh, daysBefore: 2, inputType: domain.InputBudgetVoucher, section: "Field Accounts", sectionNumber: 6, taskNumber: 1},
		{id: "hm-accounts-2", title: "Cook Budget", description: "Enter cook budget amount and upload cash voucher", priority: domain.PriorityHigh, daysBefore: 2, inputType: domain.InputBudgetVoucher, section: "Field Accounts", sectionNumber: 6, taskNumber: 2},
		{id: "hm-accounts-3", title: "Any cash payments", description: "Enter any additional cash payments and upload cash voucher", priority: domain.PriorityMedium, daysBefore: 2, inputType: domain.InputBudgetVoucher, section: "Field Accounts", sectionNumber: 6, taskNumber: 3},
		{id: "hm-accounts-4", title: "Total Budget", description: "Automatically calculated total of all budgets", priority: domain.PriorityHigh, daysBefore: 2, inputType: domain.InputText, section: "Field Accounts", sectionNumber: 6, taskNumber: 4, isCalculated: true},
	},
}

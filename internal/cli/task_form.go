package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/trekops/internal/cli/formatter"
	"github.com/alexanderramin/trekops/internal/domain"
	"github.com/alexanderramin/trekops/internal/store"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// trekopsHuhTheme adapts huh's base theme to the Gruvbox palette.
func trekopsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formStage tracks multi-step entry for the repeated-group input types: a
// count question first, then one group per entry, then a free-text name
// round for any entry where "+ Add new" was picked over the roster.
type formStage int

const (
	stageSingle formStage = iota
	stageCount
	stageEntries
	stageNames
)

// addNewName is the roster escape hatch. Picking it swaps the select for a
// free text input so staff outside the known roster can be recorded.
const addNewName = "+ Add new"

// taskFormView edits one task's value through a huh form matched to the
// task's input type.
type taskFormView struct {
	state *SharedState
	task  domain.Task
	form  *huh.Form
	stage formStage

	// Single-value buffers.
	text    string
	amount  string
	voucher string

	// Repeated-group buffers.
	countStr string
	vehicles []domain.VehicleEntry
	staff    []domain.StaffEntry

	// staff-with-contact buffers.
	staffName    string
	staffContact string
}

func newTaskFormView(state *SharedState, task domain.Task) *taskFormView {
	v := &taskFormView{state: state, task: task}
	v.prefill()

	switch task.InputType {
	case domain.InputVehicleMulti, domain.InputMultiSelect:
		v.stage = stageCount
		v.form = v.countForm()
	default:
		v.stage = stageSingle
		v.form = v.singleForm()
	}
	return v
}

func (v *taskFormView) ID() ViewID    { return ViewTaskForm }
func (v *taskFormView) Title() string { return v.task.Title }

func (v *taskFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *taskFormView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *taskFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg { return formDoneMsg{notice: formatter.Dim("Cancelled.")} }
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		if v.stage == stageCount {
			n, _ := strconv.Atoi(strings.TrimSpace(v.countStr))
			v.stage = stageEntries
			v.form = v.entriesForm(n)
			return v, tea.Batch(cmd, v.form.Init())
		}
		if v.stage != stageNames {
			if targets := v.customNameTargets(); len(targets) > 0 {
				v.stage = stageNames
				v.form = v.customNamesForm(targets)
				return v, tea.Batch(cmd, v.form.Init())
			}
		}
		return v, tea.Batch(cmd, v.commit())
	}

	return v, cmd
}

func (v *taskFormView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold(v.task.Title) + "\n")
	if v.task.Description != "" {
		b.WriteString("  " + formatter.Dim(v.task.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(v.form.View())
	return b.String()
}

// prefill seeds the form buffers with the task's current value.
func (v *taskFormView) prefill() {
	if v.task.BudgetAmount != nil {
		v.amount = strconv.FormatFloat(*v.task.BudgetAmount, 'f', -1, 64)
	}
	v.voucher = v.task.VoucherFile

	val, err := domain.ParseValue(&v.task)
	if err != nil || val == nil {
		return
	}
	switch val := val.(type) {
	case domain.TextValue:
		v.text = val.Text
	case domain.VehicleList:
		v.vehicles = val.Vehicles
		v.countStr = strconv.Itoa(len(val.Vehicles))
	case domain.StaffRoster:
		v.staff = val.Staff
		v.countStr = strconv.Itoa(len(val.Staff))
	case domain.StaffAssignment:
		v.staffName = val.Staff.Name
		v.staffContact = val.Staff.Contact
	}
}

// ── form construction ────────────────────────────────────────────────────────

func (v *taskFormView) singleForm() *huh.Form {
	switch v.task.InputType {
	case domain.InputTextarea:
		return huh.NewForm(huh.NewGroup(
			huh.NewText().
				Title(v.task.Title).
				Value(&v.text),
		)).WithTheme(trekopsHuhTheme()).WithShowHelp(false)

	case domain.InputDropdown:
		options := make([]huh.Option[string], 0, len(v.task.DropdownOptions))
		for _, o := range v.task.DropdownOptions {
			options = append(options, huh.NewOption(o, o))
		}
		return huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title(v.task.Title).
				Options(options...).
				Value(&v.text),
		)).WithTheme(trekopsHuhTheme()).WithShowHelp(false)

	case domain.InputBudgetVoucher:
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Amount (₹)").
				Placeholder("0.00").
				Value(&v.amount).
				Validate(validateBudgetAmount),
			huh.NewInput().
				Title("Voucher file").
				Placeholder("voucher.pdf").
				Value(&v.voucher),
		)).WithTheme(trekopsHuhTheme()).WithShowHelp(false)

	case domain.InputStaffWithContact:
		nameField := v.staffNameField("Name", &v.staffName)
		return huh.NewForm(huh.NewGroup(
			nameField,
			huh.NewInput().
				Title("Contact").
				Placeholder("10-digit number").
				Value(&v.staffContact).
				Validate(validateContact),
		)).WithTheme(trekopsHuhTheme()).WithShowHelp(false)

	default: // text, file, link
		placeholder := ""
		switch v.task.InputType {
		case domain.InputFile:
			placeholder = "path or filename"
		case domain.InputLink:
			placeholder = "https://"
		}
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(v.task.Title).
				Placeholder(placeholder).
				Value(&v.text),
		)).WithTheme(trekopsHuhTheme()).WithShowHelp(false)
	}
}

func (v *taskFormView) countForm() *huh.Form {
	noun := "staff"
	if v.task.InputType == domain.InputVehicleMulti {
		noun = "vehicles"
	}
	if v.countStr == "" {
		v.countStr = "1"
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("How many %s?", noun)).
			Value(&v.countStr).
			Validate(validateEntryCount),
	)).WithTheme(trekopsHuhTheme()).WithShowHelp(false)
}

// entriesForm builds one group per entry so huh pages through them.
func (v *taskFormView) entriesForm(n int) *huh.Form {
	if v.task.InputType == domain.InputVehicleMulti {
		return v.vehicleEntriesForm(n)
	}
	return v.staffEntriesForm(n)
}

func (v *taskFormView) vehicleEntriesForm(n int) *huh.Form {
	v.vehicles = resize(v.vehicles, n)
	groups := make([]*huh.Group, 0, n)
	for i := range v.vehicles {
		e := &v.vehicles[i]
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Vehicle %d — make", i+1)).
				Value(&e.Make).
				Validate(validateRequired("make")),
			huh.NewInput().
				Title("Registration").
				Value(&e.Registration).
				Validate(validateRequired("registration")),
			huh.NewInput().
				Title("Driver name").
				Value(&e.DriverName).
				Validate(validateRequired("driver name")),
			huh.NewInput().
				Title("Driver contact").
				Placeholder("10-digit number").
				Value(&e.Contact).
				Validate(validateContact),
		))
	}
	return huh.NewForm(groups...).WithTheme(trekopsHuhTheme()).WithShowHelp(false)
}

func (v *taskFormView) staffEntriesForm(n int) *huh.Form {
	v.staff = resizeStaff(v.staff, n)
	groups := make([]*huh.Group, 0, n)
	for i := range v.staff {
		e := &v.staff[i]
		groups = append(groups, huh.NewGroup(
			v.staffNameField(fmt.Sprintf("Staff %d — name", i+1), &e.Name),
			huh.NewInput().
				Title("Contact").
				Placeholder("10-digit number").
				Value(&e.Contact).
				Validate(validateContact),
		))
	}
	return huh.NewForm(groups...).WithTheme(trekopsHuhTheme()).WithShowHelp(false)
}

// staffNameField uses the task's dropdown options when the roster is known,
// with an "+ Add new" escape for names outside it, falling back to free
// text entry when no roster was supplied.
func (v *taskFormView) staffNameField(title string, value *string) huh.Field {
	if len(v.task.DropdownOptions) > 0 {
		options := make([]huh.Option[string], 0, len(v.task.DropdownOptions)+1)
		for _, o := range v.task.DropdownOptions {
			options = append(options, huh.NewOption(o, o))
		}
		options = append(options, huh.NewOption(addNewName, addNewName))
		return huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Value(value)
	}
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(validateRequired("name"))
}

// customNameTargets returns the name buffers still holding the "+ Add new"
// sentinel after the select round, cleared and in entry order.
func (v *taskFormView) customNameTargets() []*string {
	var targets []*string
	if v.task.InputType == domain.InputStaffWithContact && v.staffName == addNewName {
		targets = append(targets, &v.staffName)
	}
	if v.task.InputType == domain.InputMultiSelect {
		for i := range v.staff {
			if v.staff[i].Name == addNewName {
				targets = append(targets, &v.staff[i].Name)
			}
		}
	}
	for _, t := range targets {
		*t = ""
	}
	return targets
}

// customNamesForm asks for one free-typed name per escaped entry.
func (v *taskFormView) customNamesForm(targets []*string) *huh.Form {
	groups := make([]*huh.Group, 0, len(targets))
	for _, t := range targets {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("New staff name").
				Value(t).
				Validate(validateRequired("name")),
		))
	}
	return huh.NewForm(groups...).WithTheme(trekopsHuhTheme()).WithShowHelp(false)
}

// ── commit ───────────────────────────────────────────────────────────────────

// commit encodes the form buffers into a patch and applies it. Encoding
// failures should be impossible after field validation; they surface as a
// notice rather than crashing the form.
func (v *taskFormView) commit() tea.Cmd {
	patch, err := v.buildPatch()
	if err == nil {
		_, err = v.state.App.UpdateTask(v.task.ID, patch)
	}
	return func() tea.Msg {
		if err != nil {
			return formDoneMsg{notice: formatter.StyleRed.Render(err.Error())}
		}
		return formDoneMsg{notice: formatter.StyleGreen.Render("Saved.")}
	}
}

func (v *taskFormView) buildPatch() (store.Patch, error) {
	switch v.task.InputType {
	case domain.InputBudgetVoucher:
		amount, err := strconv.ParseFloat(strings.TrimSpace(v.amount), 64)
		if err != nil || amount < 0 {
			return store.Patch{}, fmt.Errorf("amount must be a non-negative number")
		}
		voucher := strings.TrimSpace(v.voucher)
		return store.Patch{BudgetAmount: &amount, VoucherFile: &voucher}, nil

	case domain.InputStaffWithContact:
		encoded, err := domain.EncodeStaffAssignment(domain.StaffEntry{
			Name:    strings.TrimSpace(v.staffName),
			Contact: strings.TrimSpace(v.staffContact),
		})
		if err != nil {
			return store.Patch{}, err
		}
		return store.Patch{InputValue: &encoded}, nil

	case domain.InputVehicleMulti:
		encoded, err := domain.EncodeVehicles(trimVehicles(v.vehicles))
		if err != nil {
			return store.Patch{}, err
		}
		return store.Patch{InputValue: &encoded}, nil

	case domain.InputMultiSelect:
		encoded, err := domain.EncodeStaffRoster(trimStaff(v.staff))
		if err != nil {
			return store.Patch{}, err
		}
		return store.Patch{InputValue: &encoded}, nil

	default:
		text := v.text
		return store.Patch{InputValue: &text}, nil
	}
}

// ── validation and buffer helpers ────────────────────────────────────────────

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateContact(s string) error {
	if !domain.ValidContact(s) {
		return fmt.Errorf("must be exactly 10 digits")
	}
	return nil
}

func validateBudgetAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative amount")
	}
	return nil
}

func validateEntryCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > domain.MaxEntries {
		return fmt.Errorf("enter a number between 1 and %d", domain.MaxEntries)
	}
	return nil
}

func resize(entries []domain.VehicleEntry, n int) []domain.VehicleEntry {
	for len(entries) < n {
		entries = append(entries, domain.VehicleEntry{})
	}
	return entries[:n]
}

func resizeStaff(entries []domain.StaffEntry, n int) []domain.StaffEntry {
	for len(entries) < n {
		entries = append(entries, domain.StaffEntry{})
	}
	return entries[:n]
}

func trimVehicles(entries []domain.VehicleEntry) []domain.VehicleEntry {
	out := make([]domain.VehicleEntry, len(entries))
	for i, e := range entries {
		out[i] = domain.VehicleEntry{
			Make:         strings.TrimSpace(e.Make),
			Registration: strings.TrimSpace(e.Registration),
			DriverName:   strings.TrimSpace(e.DriverName),
			Contact:      strings.TrimSpace(e.Contact),
		}
	}
	return out
}

func trimStaff(entries []domain.StaffEntry) []domain.StaffEntry {
	out := make([]domain.StaffEntry, len(entries))
	for i, e := range entries {
		out[i] = domain.StaffEntry{
			Name:    strings.TrimSpace(e.Name),
			Contact: strings.TrimSpace(e.Contact),
		}
	}
	return out
}

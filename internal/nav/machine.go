// Package nav models the page flow of the checklist as a small state
// machine over name references. Selections are held by name, never by list
// index, so reordering or refiltering a list can never redirect a selection
// to a different entity.
package nav

import (
	"errors"

	"github.com/alexanderramin/trekops/internal/domain"
	"github.com/alexanderramin/trekops/internal/progress"
)

// ErrNoTrekOpen rejects a category transition when no trek is selected.
var ErrNoTrekOpen = errors.New("no trek is open")

// Page is one of the four screens in the drill-down flow.
type Page int

const (
	PageBaseList Page = iota
	PageTrekSelection
	PageTrekDetail
	PageTaskList
)

func (p Page) String() string {
	switch p {
	case PageBaseList:
		return "bases"
	case PageTrekSelection:
		return "treks"
	case PageTrekDetail:
		return "detail"
	case PageTaskList:
		return "tasks"
	}
	return "unknown"
}

// Machine tracks where the operator is in the base > trek > category
// drill-down. The zero value is not usable; call New.
type Machine struct {
	page     Page
	trekType domain.TrekType
	team     domain.Team
	base     string
	trek     string
	category string
	// inSelection records that the trek selection page was entered, so
	// backing out of a trek returns there even for the unfiltered "all
	// treks" browse, where base stays empty.
	inSelection bool
}

func New() *Machine {
	return &Machine{
		page:     PageBaseList,
		trekType: domain.TrekTypeTreks,
		team:     domain.TeamSupport,
	}
}

func (m *Machine) Page() Page                { return m.page }
func (m *Machine) Base() string              { return m.base }
func (m *Machine) Trek() string              { return m.trek }
func (m *Machine) Category() string          { return m.category }
func (m *Machine) Team() domain.Team         { return m.team }
func (m *Machine) TrekType() domain.TrekType { return m.trekType }

// Scope is the aggregation filter implied by the current position. The
// base filter applies only while drilling through a base; once a trek is
// open its rollups cover the whole trek.
func (m *Machine) Scope() progress.Scope {
	s := progress.Scope{TrekType: m.trekType, Team: m.team}
	if m.page == PageTrekSelection {
		s.BaseName = m.base
	}
	return s
}

// SetTeam switches the active team filter in place without moving pages.
func (m *Machine) SetTeam(team domain.Team) { m.team = team }

// SetTrekType switches the trip kind filter in place.
func (m *Machine) SetTrekType(tt domain.TrekType) { m.trekType = tt }

// EnterBase moves from the base list to that base's trek selection. An
// empty name opens the selection page unfiltered.
func (m *Machine) EnterBase(baseName string) {
	m.base = baseName
	m.trek = ""
	m.category = ""
	m.inSelection = true
	m.page = PageTrekSelection
}

// EnterTrek opens a trek's category detail. Valid from the selection page
// or directly from the base list when browsing all treks.
func (m *Machine) EnterTrek(trekName string) {
	m.trek = trekName
	m.category = ""
	m.page = PageTrekDetail
}

// EnterCategory opens one category's task list for the current trek.
func (m *Machine) EnterCategory(category string) error {
	if m.trek == "" {
		return ErrNoTrekOpen
	}
	m.category = category
	m.page = PageTaskList
	return nil
}

// Back retreats one level, clearing the selection that level owned.
// Returns false when already at the base list.
func (m *Machine) Back() bool {
	switch m.page {
	case PageTaskList:
		m.category = ""
		m.page = PageTrekDetail
	case PageTrekDetail:
		m.trek = ""
		if m.inSelection {
			m.page = PageTrekSelection
		} else {
			m.page = PageBaseList
		}
	case PageTrekSelection:
		m.base = ""
		m.inSelection = false
		m.page = PageBaseList
	default:
		return false
	}
	return true
}

// Reset returns to the base list and drops every selection.
func (m *Machine) Reset() {
	m.base = ""
	m.trek = ""
	m.category = ""
	m.inSelection = false
	m.page = PageBaseList
}

// Breadcrumb renders the current position as path segments for the header.
func (m *Machine) Breadcrumb() []string {
	out := []string{"Bases"}
	if m.inSelection {
		if m.base != "" {
			out = append(out, m.base)
		} else {
			out = append(out, "All treks")
		}
	}
	if m.trek != "" && m.page >= PageTrekDetail {
		out = append(out, m.trek)
	}
	if m.category != "" && m.page == PageTaskList {
		out = append(out, m.category)
	}
	return out
}

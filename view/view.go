// Package view holds the presentation state of a dashboard page as a value
// owned by the caller. Transitions return a new State and never touch
// globals.
package view

import (
	"fmt"
	"strings"
)

// Section is a navigable part of the dashboard.
type Section int

const (
	All Section = iota
	Overview
	EPC
	Compliance
	Confidence
	Cashflow
	Opex
)

var sectionNames = []string{"all", "overview", "epc", "compliance", "confidence", "cashflow", "opex"}

func (s Section) String() string {
	if s < 0 || int(s) >= len(sectionNames) {
		panic(fmt.Sprintf("unknown section %d", int(s)))
	}
	return sectionNames[s]
}

// Sections lists every section except All, in page order.
func Sections() []Section {
	return []Section{Overview, EPC, Compliance, Confidence, Cashflow, Opex}
}

// ParseSection parses a section name; the empty string is All.
func ParseSection(s string) (Section, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return All, nil
	}
	for i, name := range sectionNames {
		if name == s {
			return Section(i), nil
		}
	}
	return All, fmt.Errorf("unknown section %q, want one of %s", s, strings.Join(sectionNames, ", "))
}

// State is the interactive state of the page.
type State struct {
	Scrolled bool    // header is sticky
	Active   Section // section highlighted in the navigation
	Drawer   Section // section whose detail drawer is open, All when closed
}

// DefaultStickyOffset is the scroll offset past which the header sticks.
const DefaultStickyOffset = 64

// Scroll records a scroll position.
func (s State) Scroll(offset, threshold float64) State {
	s.Scrolled = offset > threshold
	return s
}

// Activate highlights a section.
func (s State) Activate(sec Section) State {
	s.Active = sec
	return s
}

// OpenDrawer opens the detail drawer of a section and activates it.
func (s State) OpenDrawer(sec Section) State {
	s.Drawer = sec
	if sec != All {
		s.Active = sec
	}
	return s
}

// CloseDrawer closes the drawer; the active section is kept.
func (s State) CloseDrawer() State {
	s.Drawer = All
	return s
}

// DrawerOpen reports whether a drawer is open.
func (s State) DrawerOpen() bool { return s.Drawer != All }

// Shows reports whether a section is visible in this state: the drawer
// section when a drawer is open, otherwise the active section, or every
// section when All is active.
func (s State) Shows(sec Section) bool {
	focus := s.Active
	if s.DrawerOpen() {
		focus = s.Drawer
	}
	return focus == All || focus == sec
}

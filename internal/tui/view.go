package tui

import (
	"fmt"
	"slices"
	"strings"

	"handoff/internal/selection"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.seen {
		return m.spinner.View() + " Starting…\n"
	}

	var body string
	var keys bindings
	switch mode := m.snap.Mode.(type) {
	case *selection.OwnAddress:
		body, keys = m.viewOwnAddress(mode)
	case *selection.CreateAddress:
		body, keys = m.viewCreateAddress(mode.Form)
	case *selection.Meetup:
		body, keys = m.viewMeetup(mode)
	case selection.DelegateToCounterparty:
		body, keys = m.viewDelegate()
	default:
		body, keys = m.viewUnselected()
	}

	sections := []string{m.styles.Title.Render("Where should the handoff happen?"), body}
	if status := m.status(); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.help.View(keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) viewUnselected() (string, bindings) {
	var b strings.Builder
	for i, opt := range topLevelOptions {
		b.WriteString(m.item(i == m.cursor, fmt.Sprintf("%d. %s", i+1, opt.label)))
		b.WriteByte('\n')
	}

	card := m.styles.Card.Render(selection.Summary(m.snap.Selection, m.snap.Counterparty))

	return lipgloss.JoinVertical(lipgloss.Left, b.String(), card),
		bindings{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Quit}
}

func (m Model) viewDelegate() (string, bindings) {
	who := m.snap.Counterparty
	if who == "" {
		who = "the other party"
	}

	return fmt.Sprintf("%s will choose the location.\nPress enter to confirm.", who),
		bindings{m.keys.Confirm, m.keys.Back}
}

func (m Model) viewOwnAddress(mode *selection.OwnAddress) (string, bindings) {
	keys := bindings{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.New, m.keys.Back}

	var b strings.Builder
	switch {
	case mode.Loading && len(mode.Addresses) == 0:
		b.WriteString(m.spinner.View() + " Loading your addresses…\n")
	case len(mode.Addresses) == 0 && mode.Err == nil:
		b.WriteString(m.styles.Subtle.Render("No saved addresses yet. Press n to add one.") + "\n")
	}

	for i, address := range mode.Addresses {
		line := address.Name
		if address.StreetAddress != "" {
			line += m.styles.Subtle.Render("  " + address.StreetAddress + ", " + address.City)
		}
		if address.ID == mode.Selected {
			line += m.styles.Selected.Render("  ✓")
		}
		b.WriteString(m.item(i == m.cursor, line))
		b.WriteByte('\n')
	}

	if mode.Loading && len(mode.Addresses) > 0 {
		b.WriteString(m.spinner.View() + m.styles.Subtle.Render(" Refreshing…") + "\n")
	}
	if mode.Err != nil {
		b.WriteString(m.styles.Error.Render("Could not load addresses: "+mode.Err.Error()) + "\n")
		keys = append(keys, m.keys.Retry)
	}

	return b.String(), keys
}

func (m Model) viewCreateAddress(form *selection.Form) (string, bindings) {
	var b strings.Builder

	b.WriteString(m.search.View() + "\n")
	switch {
	case form.Searching:
		b.WriteString(m.spinner.View() + m.styles.Subtle.Render(" Searching…") + "\n")
	case form.SearchErr != nil:
		b.WriteString(m.styles.Error.Render("Search failed: "+form.SearchErr.Error()) + "\n")
	}
	for i, s := range form.Suggestions {
		label := s.Description
		if form.Resolving && form.ResolvingPlaceID == s.PlaceID {
			label += " " + m.spinner.View()
		}
		b.WriteString(m.item(m.focus == 0 && i == m.cursor, label))
		b.WriteByte('\n')
	}
	if form.ResolveErr != nil {
		b.WriteString(m.styles.Error.Render("Could not use that place: "+form.ResolveErr.Error()) + "\n")
	}
	b.WriteByte('\n')

	for i, f := range m.fields {
		label := m.styles.Label
		if slices.Contains(form.Violations, f.field) {
			label = label.Foreground(colorError)
		}
		b.WriteString(label.Render(f.label) + " " + f.input.View())
		if i < len(m.fields)-1 {
			b.WriteByte('\n')
		}
	}

	box := m.styles.Form.BorderForeground(borderColor(form.Indicator.Progress())).Render(b.String())

	var footer string
	switch {
	case form.Saving:
		footer = m.spinner.View() + " Saving…"
	case form.SaveErr != nil:
		footer = m.styles.Error.Render(saveErrorText(form.SaveErr))
	case form.Invalid:
		footer = m.styles.Error.Render("Some fields need attention.")
	}

	keys := bindings{m.keys.Next, m.keys.Save, m.keys.Back}
	if m.focus == 0 && len(form.Suggestions) > 0 {
		keys = bindings{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Next, m.keys.Save, m.keys.Back}
	}

	if footer == "" {
		return box, keys
	}

	return lipgloss.JoinVertical(lipgloss.Left, box, footer), keys
}

func (m Model) viewMeetup(mode *selection.Meetup) (string, bindings) {
	keys := bindings{m.keys.Confirm, m.keys.Back}

	var b strings.Builder
	switch {
	case m.snap.MeetupLoading:
		b.WriteString(m.spinner.View() + " Finding a point between you…\n")
	case m.snap.MeetupErr != nil:
		b.WriteString(m.styles.Error.Render("No recommended point: "+m.snap.MeetupErr.Error()) + "\n")
		keys = append(keys, m.keys.RetryPoint)
	case m.snap.MeetupPoint != nil:
		p := m.snap.MeetupPoint
		b.WriteString(fmt.Sprintf("Recommended: %s (within %.0f m)\n", formatCoordinates(p.Center), p.RadiusMeters))
		keys = append(keys, m.keys.UsePin)
	case m.snap.Pair.IsZero():
		b.WriteString(m.styles.Subtle.Render("Drop a pin anywhere.") + "\n")
	}

	if mode.Pin != nil {
		b.WriteString(m.styles.Subtle.Render("Current pin: "+formatCoordinates(*mode.Pin)) + "\n")
	}
	b.WriteString(m.pin.View())
	if m.pinErr != nil {
		b.WriteString("\n" + m.styles.Error.Render(m.pinErr.Error()))
	}

	return b.String(), keys
}

// status reports the error of the last action when the mode view does not already show it.
func (m Model) status() string {
	err := m.snap.Err
	switch {
	case err == nil:
		return ""
	case errors.Is(err, selection.ErrInvalidAddress), errors.Is(err, selection.ErrNameExists):
		return ""
	case errors.Is(err, selection.ErrInvalidPin):
		return m.styles.Error.Render("That pin is not a point on Earth.")
	case errors.Is(err, selection.ErrInvalidCoordinate):
		return m.styles.Warning.Render("Coordinates must be decimal numbers.")
	}

	return m.styles.Error.Render(err.Error())
}

func (m Model) item(active bool, text string) string {
	if active {
		return m.styles.Selected.Render("> ") + text
	}

	return "  " + text
}

func saveErrorText(err error) string {
	if errors.Is(err, selection.ErrNameExists) {
		return "You already have an address with that name."
	}

	return "Could not save: " + err.Error()
}

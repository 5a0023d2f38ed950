package tui

import (
	"strconv"
	"strings"
	"time"

	"handoff/internal/domain/entity"
	"handoff/internal/domain/validation"
	"handoff/internal/selection"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

const frameInterval = time.Second / 60

// Dispatcher hands an action to the workflow owner. It must not block and
// returns false once the owner has stopped. See Queue.
type Dispatcher func(selection.Action) bool

// SnapshotMsg carries the workflow state after every change.
type SnapshotMsg selection.Snapshot

type frameMsg struct{}

var errBadPin = errors.New("pin must be written as \"lat, long\"")

type option int

const (
	optionDelegate option = iota
	optionOwnAddress
	optionMeetup
)

var topLevelOptions = []struct {
	label  string
	action selection.Action
}{
	optionDelegate:   {"Let the other party decide", (*selection.Workflow).SelectDelegate},
	optionOwnAddress: {"Pick up at one of my addresses", (*selection.Workflow).SelectOwnAddress},
	optionMeetup:     {"Meet somewhere in between", (*selection.Workflow).SelectMeetup},
}

type formInput struct {
	field validation.Field
	label string
	input textinput.Model
}

var formLayout = []struct {
	field       validation.Field
	label       string
	placeholder string
}{
	{validation.FieldName, "Name", "Home"},
	{validation.FieldStreetAddress, "Street", "221B Baker Street"},
	{validation.FieldApartment, "Apartment", "optional"},
	{validation.FieldCity, "City", "London"},
	{validation.FieldRegion, "Region", "optional"},
	{validation.FieldCountry, "Country", "United Kingdom"},
	{validation.FieldPostalCode, "Postal code", "NW1 6XE"},
	{validation.FieldLat, "Latitude", "51.5237"},
	{validation.FieldLong, "Longitude", "-0.1585"},
	{validation.FieldMessage, "Message", "optional notes for the other party"},
}

// Model is the bubbletea model of the location picker. It never touches the
// workflow directly: keys become actions for the Dispatcher and the view is
// rendered from the latest SnapshotMsg.
type Model struct {
	dispatch Dispatcher
	startup  []selection.Action

	snap   selection.Snapshot
	seen   bool
	styles Styles
	keys   keyMap
	help   help.Model

	spinner spinner.Model

	// cursor indexes the options, the saved addresses or the suggestions,
	// depending on the mode.
	cursor int

	search textinput.Model
	fields []formInput
	// focus is 0 for the search box and i+1 for fields[i].
	focus int
	// synced is the form address the inputs were last filled from.
	synced entity.Address

	pin    textinput.Model
	pinErr error

	animating bool
	width     int
	quitting  bool
}

// New builds the model. startup actions are dispatched from Init, in order.
func New(dispatch Dispatcher, startup ...selection.Action) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "start typing an address"
	search.CharLimit = 200
	search.Width = 48

	fields := make([]formInput, len(formLayout))
	for i, l := range formLayout {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = l.placeholder
		ti.CharLimit = 200
		ti.Width = 40
		fields[i] = formInput{field: l.field, label: l.label, input: ti}
	}

	pin := textinput.New()
	pin.Prompt = "Pin: "
	pin.Placeholder = "lat, long"
	pin.CharLimit = 64
	pin.Width = 32

	return Model{
		dispatch: dispatch,
		startup:  startup,
		styles:   DefaultStyles(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  s,
		search:   search,
		fields:   fields,
		pin:      pin,
	}
}

// Selection returns the confirmed selection, or nil if the picker was abandoned.
func (m Model) Selection() *selection.Selection {
	if !m.snap.Closed {
		return nil
	}

	return m.snap.Selection
}

func (m Model) Init() tea.Cmd {
	for _, action := range m.startup {
		if cmd := m.send(action); cmd != nil {
			return cmd
		}
	}

	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

		return m, nil

	case SnapshotMsg:
		return m.applySnapshot(selection.Snapshot(msg))

	case frameMsg:
		if m.indicatorAnimating() {
			return m, m.nextFrame()
		}
		m.animating = false

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true

			return m, tea.Quit
		}
		if !m.seen {
			return m, nil
		}

		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) applySnapshot(snap selection.Snapshot) (tea.Model, tea.Cmd) {
	prevKind := m.snap.Mode
	m.snap = snap
	m.seen = true

	if snap.Closed && snap.Selection != nil {
		m.quitting = true

		return m, tea.Quit
	}

	if snap.Mode == nil || prevKind == nil || prevKind.Kind() != snap.Mode.Kind() {
		m.enterMode()
	}

	var cmds []tea.Cmd
	if form := m.form(); form != nil {
		m.syncForm(form)
		if form.Indicator.Animating() && !m.animating {
			m.animating = true
			cmds = append(cmds, m.nextFrame())
		}
	}
	m.clampCursor()

	return m, tea.Batch(cmds...)
}

// enterMode resets the per-mode widgets.
func (m *Model) enterMode() {
	m.cursor = 0
	m.pinErr = nil
	m.search.Reset()
	m.pin.Reset()
	m.pin.Blur()
	m.synced = entity.Address{}
	for i := range m.fields {
		m.fields[i].input.Reset()
	}
	m.setFocus(0)

	if m.kind() == selection.KindMeetup {
		m.pin.Focus()
	}
}

// syncForm refreshes the inputs whose value changed in the workflow since the
// last snapshot, e.g. after a place was resolved. Fields the user is typing in
// keep their text.
func (m *Model) syncForm(form *selection.Form) {
	for i := range m.fields {
		f := &m.fields[i]
		next := fieldText(&form.Address, f.field)
		if next == fieldText(&m.synced, f.field) || next == f.input.Value() {
			continue
		}
		if m.focus == i+1 {
			continue
		}
		f.input.SetValue(next)
	}
	m.synced = form.Address
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) && m.kind() != selection.KindUnselected {
		return m, m.send((*selection.Workflow).Back)
	}

	switch m.kind() {
	case selection.KindUnselected:
		return m.handleUnselected(msg)
	case selection.KindDelegate:
		if key.Matches(msg, m.keys.Confirm) {
			return m, m.send((*selection.Workflow).Confirm)
		}
	case selection.KindOwnAddress:
		return m.handleOwnAddress(msg)
	case selection.KindCreateAddress:
		return m.handleCreateAddress(msg)
	case selection.KindMeetup:
		return m.handleMeetup(msg)
	}

	return m, nil
}

func (m Model) handleUnselected(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, len(topLevelOptions))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, len(topLevelOptions))
	case key.Matches(msg, m.keys.Back):
		m.quitting = true

		return m, tea.Quit
	case key.Matches(msg, m.keys.Enter):
		return m, m.choose(m.cursor)
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		if n := int(msg.Runes[0] - '1'); n >= 0 && n < len(topLevelOptions) {
			m.cursor = n
			return m, m.choose(n)
		}
	}

	return m, nil
}

func (m Model) choose(i int) tea.Cmd {
	return m.send(topLevelOptions[i].action)
}

func (m Model) handleOwnAddress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list, _ := m.snap.Mode.(*selection.OwnAddress)

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, len(list.Addresses))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, len(list.Addresses))
	case key.Matches(msg, m.keys.Retry):
		return m, m.send((*selection.Workflow).Retry)
	case key.Matches(msg, m.keys.New):
		return m, m.send((*selection.Workflow).StartCreate)
	case key.Matches(msg, m.keys.Enter):
		if m.cursor >= len(list.Addresses) {
			return m, nil
		}
		id := list.Addresses[m.cursor].ID

		return m, m.send(func(w *selection.Workflow) ([]selection.Command, error) {
			return w.Pick(id)
		})
	}

	return m, nil
}

func (m Model) handleCreateAddress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.form()
	if form == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		return m, m.send((*selection.Workflow).Save)
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % (len(m.fields) + 1))
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + len(m.fields)) % (len(m.fields) + 1))
	}

	if m.focus == 0 {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1, len(form.Suggestions))
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1, len(form.Suggestions))
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			if m.cursor >= len(form.Suggestions) {
				return m, nil
			}
			placeID := form.Suggestions[m.cursor].PlaceID

			return m, m.send(func(w *selection.Workflow) ([]selection.Command, error) {
				return w.ChoosePlace(placeID)
			})
		}

		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if query := m.search.Value(); query != before {
			m.cursor = 0
			cmd = tea.Batch(cmd, m.send(func(w *selection.Workflow) ([]selection.Command, error) {
				return w.Search(query)
			}))
		}

		return m, cmd
	}

	if key.Matches(msg, m.keys.Enter) {
		return m, m.setFocus((m.focus + 1) % (len(m.fields) + 1))
	}

	f := &m.fields[m.focus-1]
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if value := f.input.Value(); value != before {
		field := f.field
		cmd = tea.Batch(cmd, m.send(func(w *selection.Workflow) ([]selection.Command, error) {
			return w.Edit(field, value)
		}))
	}

	return m, cmd
}

func (m Model) handleMeetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.UsePin):
		if m.snap.MeetupPoint != nil {
			m.pin.SetValue(formatCoordinates(m.snap.MeetupPoint.Center))
			m.pin.CursorEnd()
			m.pinErr = nil
		}

		return m, nil
	case key.Matches(msg, m.keys.RetryPoint):
		return m, m.send((*selection.Workflow).RetryMeetupPoint)
	case key.Matches(msg, m.keys.Confirm):
		pin, err := parsePin(m.pin.Value())
		if err != nil {
			m.pinErr = err
			return m, nil
		}
		m.pinErr = nil

		return m, m.send(func(w *selection.Workflow) ([]selection.Command, error) {
			if _, err := w.DropPin(pin); err != nil {
				return nil, err
			}

			return w.Confirm()
		})
	}

	var cmd tea.Cmd
	m.pin, cmd = m.pin.Update(msg)

	return m, cmd
}

// send hands the action over right away so keystrokes reach the workflow in
// the order they were typed. A stopped owner ends the program.
func (m Model) send(action selection.Action) tea.Cmd {
	if !m.dispatch(action) {
		return tea.Quit
	}

	return nil
}

func (m *Model) setFocus(focus int) tea.Cmd {
	m.focus = focus
	m.search.Blur()
	for i := range m.fields {
		m.fields[i].input.Blur()
	}

	if m.kind() != selection.KindCreateAddress {
		return nil
	}
	if focus == 0 {
		return m.search.Focus()
	}

	return m.fields[focus-1].input.Focus()
}

func (m *Model) moveCursor(delta, n int) {
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) clampCursor() {
	n := 0
	switch mode := m.snap.Mode.(type) {
	case selection.Unselected:
		n = len(topLevelOptions)
	case *selection.OwnAddress:
		n = len(mode.Addresses)
	case *selection.CreateAddress:
		n = len(mode.Form.Suggestions)
	default:
		return
	}
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m Model) kind() selection.Kind {
	if m.snap.Mode == nil {
		return selection.KindUnselected
	}

	return m.snap.Mode.Kind()
}

func (m Model) form() *selection.Form {
	if mode, ok := m.snap.Mode.(*selection.CreateAddress); ok {
		return mode.Form
	}

	return nil
}

func (m Model) indicatorAnimating() bool {
	form := m.form()

	return form != nil && form.Indicator.Animating()
}

func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func fieldText(a *entity.Address, field validation.Field) string {
	switch field {
	case validation.FieldName:
		return a.Name
	case validation.FieldStreetAddress:
		return a.StreetAddress
	case validation.FieldApartment:
		return a.Apartment
	case validation.FieldCity:
		return a.City
	case validation.FieldRegion:
		return a.Region
	case validation.FieldCountry:
		return a.Country
	case validation.FieldPostalCode:
		return a.PostalCode
	case validation.FieldMessage:
		return a.Message
	case validation.FieldLat:
		if a.Location != nil {
			return formatFloat(a.Location.Lat)
		}
	case validation.FieldLong:
		if a.Location != nil {
			return formatFloat(a.Location.Long)
		}
	}

	return ""
}

func parsePin(s string) (entity.Coordinates, error) {
	latText, longText, ok := strings.Cut(s, ",")
	if !ok {
		return entity.Coordinates{}, errBadPin
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return entity.Coordinates{}, errBadPin
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(longText), 64)
	if err != nil {
		return entity.Coordinates{}, errBadPin
	}

	return entity.Coordinates{Lat: lat, Long: long}, nil
}

func formatCoordinates(c entity.Coordinates) string {
	return formatFloat(c.Lat) + ", " + formatFloat(c.Long)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Package selection decides how an exchanged item changes hands. The Workflow is a
// single-writer state machine: handlers return Commands, a Runner turns them into
// Events and Apply folds the events back in. It never performs I/O itself.
package selection

import (
	"strings"

	"handoff/internal/domain/entity"
	"handoff/internal/domain/validation"
	"handoff/internal/selection/indicator"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrClosed            = errors.New("selection is closed")
	ErrWrongMode         = errors.New("action not available in this mode")
	ErrUnknownAddress    = errors.New("address is not in the saved list")
	ErrInvalidAddress    = errors.New("address is incomplete or malformed")
	ErrNameExists        = errors.New("an address with this name already exists")
	ErrPinRequired       = errors.New("drop a pin before confirming the meetup")
	ErrInvalidPin        = errors.New("pin is outside valid coordinates")
	ErrNothingToConfirm  = errors.New("nothing to confirm")
	ErrUnknownField      = errors.New("unknown address field")
	ErrInvalidCoordinate = errors.New("coordinate is not a number")
	ErrAddressesUnknown  = errors.New("saved addresses are not loaded yet")
)

// Selection is the workflow's output. Pickup with a nil location means the
// counterparty decides.
type Selection struct {
	Address *entity.Address
	Method  entity.DeliveryMethod
}

// Delegated reports whether the counterparty was left to choose.
func (s Selection) Delegated() bool {
	return s.Method == entity.DeliveryMethodPickup && (s.Address == nil || s.Address.Location == nil) &&
		!s.Address.HasStreetAddress()
}

// Config configures a Workflow.
type Config struct {
	UserID    uuid.UUID
	Validator *validation.AddressValidator
	// OnSelect receives every confirmed selection.
	OnSelect func(Selection)
	// IndicatorOptions configure the form's validity indicator.
	IndicatorOptions []indicator.Option
}

// Workflow is the location selection state machine. It is not safe for concurrent use.
type Workflow struct {
	userID        uuid.UUID
	validator     *validation.AddressValidator
	onSelect      func(Selection)
	indicatorOpts []indicator.Option

	mode      Mode
	closed    bool
	selection *Selection
	saved     []*entity.Address

	counterparty    string
	pair            Pair
	meetupRequested Pair
	meetupPoint     *entity.MeetupPoint
	meetupLoading   bool
	meetupErr       error
}

// New returns a workflow in Unselected mode.
func New(cfg Config) *Workflow {
	v := cfg.Validator
	if v == nil {
		v = validation.NewAddressValidator()
	}

	return &Workflow{
		userID:        cfg.UserID,
		validator:     v,
		onSelect:      cfg.OnSelect,
		indicatorOpts: cfg.IndicatorOptions,
		mode:          Unselected{},
	}
}

func (w *Workflow) Mode() Mode { return w.mode }

func (w *Workflow) Closed() bool { return w.closed }

// Selection returns the last confirmed selection, or nil.
func (w *Workflow) Selection() *Selection { return w.selection }

// Open reopens the surface after a confirm.
func (w *Workflow) Open() ([]Command, error) {
	w.closed = false
	w.mode = Unselected{}

	return nil, nil
}

// Back returns to the top-level picker from any mode.
func (w *Workflow) Back() ([]Command, error) {
	if w.closed {
		return nil, ErrClosed
	}
	w.mode = Unselected{}

	return nil, nil
}

// SetParties sets the exchange pair. A pair not yet requested triggers one meetup
// point fetch; the point cached for a previous pair is dropped.
func (w *Workflow) SetParties(from, to uuid.UUID, counterpartyName string) ([]Command, error) {
	w.counterparty = counterpartyName

	pair := Pair{From: from, To: to}
	if pair != w.pair {
		w.pair = pair
		w.meetupPoint = nil
		w.meetupErr = nil
		w.meetupLoading = false
		w.meetupRequested = Pair{}
	}

	return w.ensureMeetupPoint(), nil
}

// RetryMeetupPoint re-issues a failed meetup point fetch for the current pair.
func (w *Workflow) RetryMeetupPoint() ([]Command, error) {
	if w.meetupErr == nil {
		return nil, nil
	}
	w.meetupErr = nil
	w.meetupRequested = Pair{}

	return w.ensureMeetupPoint(), nil
}

func (w *Workflow) ensureMeetupPoint() []Command {
	if w.pair.IsZero() || w.meetupRequested == w.pair {
		return nil
	}

	w.meetupRequested = w.pair
	w.meetupLoading = true

	return []Command{FetchMeetupPoint{Pair: w.pair}}
}

// SelectDelegate chooses to let the counterparty decide.
func (w *Workflow) SelectDelegate() ([]Command, error) {
	if w.closed {
		return nil, ErrClosed
	}
	w.mode = DelegateToCounterparty{}

	return nil, nil
}

// SelectOwnAddress opens the saved address list and loads it.
func (w *Workflow) SelectOwnAddress() ([]Command, error) {
	if w.closed {
		return nil, ErrClosed
	}
	w.mode = &OwnAddress{Addresses: w.saved, Loading: true, Selected: w.pickedAddress()}

	return []Command{LoadAddresses{}}, nil
}

// pickedAddress is the saved address of the last pickup selection, if any.
func (w *Workflow) pickedAddress() uuid.UUID {
	if w.selection == nil || w.selection.Method != entity.DeliveryMethodPickup || w.selection.Address == nil {
		return uuid.Nil
	}

	return w.selection.Address.ID
}

// SelectMeetup opens the meetup picker.
func (w *Workflow) SelectMeetup() ([]Command, error) {
	if w.closed {
		return nil, ErrClosed
	}
	w.mode = &Meetup{}

	return w.ensureMeetupPoint(), nil
}

// Retry re-issues a failed address list load.
func (w *Workflow) Retry() ([]Command, error) {
	m, ok := w.mode.(*OwnAddress)
	if !ok {
		return nil, ErrWrongMode
	}
	if m.Loading || m.Err == nil {
		return nil, nil
	}

	m.Err = nil
	m.Loading = true

	return []Command{LoadAddresses{}}, nil
}

// Pick confirms a saved address for pickup. Picking the same entry again re-confirms it.
func (w *Workflow) Pick(id uuid.UUID) ([]Command, error) {
	m, ok := w.mode.(*OwnAddress)
	if !ok {
		return nil, ErrWrongMode
	}

	for _, address := range m.Addresses {
		if address.ID == id {
			m.Selected = id
			w.emit(Selection{Address: address, Method: entity.DeliveryMethodPickup})

			return nil, nil
		}
	}

	return nil, errors.Wrapf(ErrUnknownAddress, "address %s", id)
}

// StartCreate opens the address entry form. The saved list must have loaded so
// duplicate names are caught before submit.
func (w *Workflow) StartCreate() ([]Command, error) {
	m, ok := w.mode.(*OwnAddress)
	if !ok {
		return nil, ErrWrongMode
	}
	if m.Loading || m.Err != nil {
		return nil, ErrAddressesUnknown
	}
	w.mode = &CreateAddress{Form: newForm(w.userID, indicator.New(w.indicatorOpts...))}

	return nil, nil
}

// Edit sets one field of the address form from its text input.
func (w *Workflow) Edit(field validation.Field, value string) ([]Command, error) {
	form, err := w.form()
	if err != nil {
		return nil, err
	}

	if err := form.edit(field, value); err != nil {
		return nil, err
	}
	form.refreshValidity(w.validator)

	return nil, nil
}

// Search asks for place suggestions. Results for an older query are ignored.
func (w *Workflow) Search(query string) ([]Command, error) {
	form, err := w.form()
	if err != nil {
		return nil, err
	}

	form.Query = strings.TrimSpace(query)
	form.SearchErr = nil
	if form.Query == "" {
		form.Suggestions = nil
		form.Searching = false

		return nil, nil
	}
	form.Searching = true

	return []Command{SearchPlaces{Query: form.Query}}, nil
}

// ChoosePlace resolves a suggestion into the form fields.
func (w *Workflow) ChoosePlace(placeID string) ([]Command, error) {
	form, err := w.form()
	if err != nil {
		return nil, err
	}

	form.ResolvingPlaceID = placeID
	form.Resolving = true
	form.ResolveErr = nil

	return []Command{ResolvePlace{PlaceID: placeID}}, nil
}

// Save submits the form. An invalid record only flips the indicator and a name
// already in the saved list is refused; neither reaches the backend.
func (w *Workflow) Save() ([]Command, error) {
	form, err := w.form()
	if err != nil {
		return nil, err
	}
	if form.Saving {
		return nil, nil
	}

	address := form.Address
	address.UserID = w.userID
	address.Name = strings.TrimSpace(address.Name)

	if violations := w.validator.Violations(&address); len(violations) > 0 {
		form.markInvalid(violations)

		return nil, ErrInvalidAddress
	}

	if w.nameTaken(address.Name) {
		form.SaveErr = ErrNameExists

		return nil, ErrNameExists
	}

	form.Saving = true
	form.SaveErr = nil

	return []Command{SubmitAddress{Address: &address}}, nil
}

// DropPin places the meetup pin.
func (w *Workflow) DropPin(pin entity.Coordinates) ([]Command, error) {
	m, ok := w.mode.(*Meetup)
	if !ok {
		return nil, ErrWrongMode
	}
	if !pin.InBounds() {
		return nil, ErrInvalidPin
	}
	m.Pin = &pin

	return nil, nil
}

// Confirm finishes the delegate and meetup modes, and re-confirms a picked address.
func (w *Workflow) Confirm() ([]Command, error) {
	switch m := w.mode.(type) {
	case DelegateToCounterparty:
		w.emit(Selection{Address: entity.NewUndecidedAddress(w.userID), Method: entity.DeliveryMethodPickup})
	case *Meetup:
		if m.Pin == nil {
			return nil, ErrPinRequired
		}
		w.emit(Selection{Address: entity.NewMeetupAddress(w.userID, *m.Pin), Method: entity.DeliveryMethodMeetup})
	case *OwnAddress:
		if m.Selected == uuid.Nil {
			return nil, ErrNothingToConfirm
		}

		return w.Pick(m.Selected)
	default:
		return nil, ErrNothingToConfirm
	}

	return nil, nil
}

// Apply folds the outcome of a command into the workflow. Outcomes for a mode or
// pair that is no longer current are discarded.
func (w *Workflow) Apply(ev Event) []Command {
	switch e := ev.(type) {
	case AddressesLoaded:
		return w.applyAddressesLoaded(e)
	case AddressSubmitted:
		return w.applyAddressSubmitted(e)
	case PlacesFound:
		if form, err := w.form(); err == nil && form.Searching && form.Query == e.Query {
			form.Searching = false
			form.Suggestions = e.Suggestions
			form.SearchErr = e.Err
		}
	case PlaceResolved:
		if form, err := w.form(); err == nil && form.Resolving && form.ResolvingPlaceID == e.PlaceID {
			form.Resolving = false
			form.ResolveErr = e.Err
			if e.Err == nil && e.Place != nil {
				form.applyPlace(e.Place)
				form.refreshValidity(w.validator)
			}
		}
	case MeetupPointFetched:
		if e.Pair != w.pair || !w.meetupLoading {
			return nil
		}
		w.meetupLoading = false
		w.meetupErr = e.Err
		if e.Err == nil {
			w.meetupPoint = e.Point
		}
	}

	return nil
}

func (w *Workflow) applyAddressesLoaded(e AddressesLoaded) []Command {
	if e.Err == nil {
		w.saved = e.Addresses
	}

	m, ok := w.mode.(*OwnAddress)
	if !ok || !m.Loading {
		return nil
	}

	m.Loading = false
	m.Err = e.Err
	if e.Err == nil {
		m.Addresses = e.Addresses
	}

	return nil
}

func (w *Workflow) applyAddressSubmitted(e AddressSubmitted) []Command {
	if e.Err == nil && e.Address != nil {
		w.saved = append(w.saved, e.Address)
	}

	m, ok := w.mode.(*CreateAddress)
	if !ok || !m.Form.Saving {
		return nil
	}

	m.Form.Saving = false
	if e.Err != nil {
		m.Form.SaveErr = e.Err

		return nil
	}

	w.mode = &OwnAddress{Addresses: w.saved, Loading: true}

	return []Command{LoadAddresses{}}
}

func (w *Workflow) form() (*Form, error) {
	m, ok := w.mode.(*CreateAddress)
	if !ok {
		return nil, ErrWrongMode
	}

	return m.Form, nil
}

func (w *Workflow) nameTaken(name string) bool {
	for _, address := range w.saved {
		if address.Name == name {
			return true
		}
	}

	return false
}

func (w *Workflow) emit(sel Selection) {
	w.selection = &sel
	w.mode = Unselected{}
	w.closed = true

	if w.onSelect != nil {
		w.onSelect(sel)
	}
}

// Snapshot is a copy of the workflow state that can be read from another goroutine.
type Snapshot struct {
	Mode          Mode
	Closed        bool
	Selection     *Selection
	Counterparty  string
	Pair          Pair
	MeetupPoint   *entity.MeetupPoint
	MeetupLoading bool
	MeetupErr     error
	Saved         []*entity.Address
	// Err is the error returned by the last action, if any.
	Err error
}

// Snapshot copies the current state.
func (w *Workflow) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:          w.mode.clone(),
		Closed:        w.closed,
		Counterparty:  w.counterparty,
		Pair:          w.pair,
		MeetupLoading: w.meetupLoading,
		MeetupErr:     w.meetupErr,
		Saved:         append([]*entity.Address(nil), w.saved...),
	}
	if w.selection != nil {
		sel := *w.selection
		snap.Selection = &sel
	}
	if w.meetupPoint != nil {
		point := *w.meetupPoint
		snap.MeetupPoint = &point
	}

	return snap
}

// MeetupPoint returns the recommended point for the current pair, if known.
func (w *Workflow) MeetupPoint() *entity.MeetupPoint { return w.meetupPoint }

// MeetupLoading reports whether the point for the current pair is being fetched.
func (w *Workflow) MeetupLoading() bool { return w.meetupLoading }

// Summary renders the last selection for the summary card.
func (w *Workflow) Summary() string {
	return Summary(w.selection, w.counterparty)
}

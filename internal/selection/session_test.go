package selection_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"handoff/internal/domain/entity"
	"handoff/internal/selection"
	mockSelection "handoff/internal/mocks/selection"
	mockService "handoff/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type snapshots struct {
	mu  sync.Mutex
	all []selection.Snapshot
	ch  chan selection.Snapshot
}

func newSnapshots() *snapshots {
	return &snapshots{ch: make(chan selection.Snapshot, 64)}
}

func (s *snapshots) observe(snap selection.Snapshot) {
	s.mu.Lock()
	s.all = append(s.all, snap)
	s.mu.Unlock()
	s.ch <- snap
}

// await returns the first snapshot satisfying cond.
func (s *snapshots) await(t *testing.T, cond func(selection.Snapshot) bool) selection.Snapshot {
	t.Helper()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case snap := <-s.ch:
			if cond(snap) {
				return snap
			}
		case <-timeout:
			t.Fatal("timed out waiting for snapshot")

			return selection.Snapshot{}
		}
	}
}

type sessionFixture struct {
	session   *selection.Session
	addresses *mockSelection.MockAddressBook
	places    *mockService.MockGeocodingProvider
	meetup    *mockSelection.MockMeetupPointService
	snaps     *snapshots
	selected  chan selection.Selection
	cancel    context.CancelFunc
	stopped   chan error
}

func startSession(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		addresses: mockSelection.NewMockAddressBook(t),
		places:    mockService.NewMockGeocodingProvider(t),
		meetup:    mockSelection.NewMockMeetupPointService(t),
		snaps:     newSnapshots(),
		selected:  make(chan selection.Selection, 1),
		stopped:   make(chan error, 1),
	}

	wf := selection.New(selection.Config{
		UserID:   me,
		OnSelect: func(s selection.Selection) { f.selected <- s },
	})
	runner := selection.NewRunner(f.addresses, f.places, f.meetup, newDiscardLogger())
	f.session = selection.NewSession(wf, runner, f.snaps.observe, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	go func() { f.stopped <- f.session.Run(ctx) }()

	t.Cleanup(f.stop)

	return f
}

func (f *sessionFixture) stop() {
	f.cancel()
	<-f.stopped
	f.stopped <- nil
}

func TestSession_OwnAddressPick(t *testing.T) {
	f := startSession(t)
	address := home()

	f.addresses.EXPECT().ListAddresses(mock.Anything).Return([]*entity.Address{address}, nil).Once()

	require.True(t, f.session.Dispatch(func(w *selection.Workflow) ([]selection.Command, error) {
		return w.SelectOwnAddress()
	}))

	f.snaps.await(t, func(s selection.Snapshot) bool {
		m, ok := s.Mode.(*selection.OwnAddress)

		return ok && !m.Loading && len(m.Addresses) == 1
	})

	f.session.Dispatch(func(w *selection.Workflow) ([]selection.Command, error) {
		return w.Pick(address.ID)
	})

	sel := <-f.selected
	assert.Equal(t, address.ID, sel.Address.ID)
	assert.Equal(t, entity.DeliveryMethodPickup, sel.Method)
}

func TestSession_ActionErrorIsReported(t *testing.T) {
	f := startSession(t)

	f.session.Dispatch(func(w *selection.Workflow) ([]selection.Command, error) {
		return w.SelectMeetup()
	})
	f.session.Dispatch(func(w *selection.Workflow) ([]selection.Command, error) {
		return w.Confirm()
	})

	snap := f.snaps.await(t, func(s selection.Snapshot) bool { return s.Err != nil })
	assert.ErrorIs(t, snap.Err, selection.ErrPinRequired)
}

func TestSession_DuplicateNameNeverCallsCreate(t *testing.T) {
	f := startSession(t)

	f.addresses.EXPECT().ListAddresses(mock.Anything).Return([]*entity.Address{home()}, nil).Once()

	f.session.Dispatch(func(w *selection.Workflow) ([]selection.Command, error) { return w.SelectOwnAddress() })
	f.snaps.await(t, func(s selection.Snapshot) bool {
		m, ok := s.Mode.(*selection.OwnAddress)

		return ok && !m.Loading
	})

	f.session.Dispatch(func(w *selection.Workflow) ([]selection.Command, error) {
		if _, err := w.StartCreate(); err != nil {
			return nil, err
		}
		fillValidForm(t, w, "Home")

		return w.Save()
	})

	snap := f.snaps.await(t, func(s selection.Snapshot) bool { return s.Err != nil })
	assert.ErrorIs(t, snap.Err, selection.ErrNameExists)
	// CreateAddress has no expectation: the mock fails the test if it is called.
}

func TestSession_RunnerFailureBecomesErrorState(t *testing.T) {
	f := startSession(t)

	f.addresses.EXPECT().ListAddresses(mock.Anything).Return(nil, errors.New("503")).Once()

	f.session.Dispatch(func(w *selection.Workflow) ([]selection.Command, error) { return w.SelectOwnAddress() })

	snap := f.snaps.await(t, func(s selection.Snapshot) bool {
		m, ok := s.Mode.(*selection.OwnAddress)

		return ok && m.Err != nil
	})
	assert.False(t, snap.Mode.(*selection.OwnAddress).Loading)
}

func TestSession_PanickingPortIsRecovered(t *testing.T) {
	f := startSession(t)

	f.meetup.EXPECT().GetMeetupPoint(mock.Anything, selection.Pair{From: me, To: alice}).
		RunAndReturn(func(context.Context, selection.Pair) (*entity.MeetupPoint, error) {
			panic("nil map")
		}).Once()

	f.session.Dispatch(func(w *selection.Workflow) ([]selection.Command, error) {
		return w.SetParties(me, alice, "Alice")
	})

	snap := f.snaps.await(t, func(s selection.Snapshot) bool { return s.MeetupErr != nil })
	assert.Contains(t, snap.MeetupErr.Error(), "nil map")
	assert.False(t, snap.MeetupLoading)
}

func TestSession_TeardownDiscardsLateResults(t *testing.T) {
	f := startSession(t)
	release := make(chan struct{})

	f.meetup.EXPECT().GetMeetupPoint(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ selection.Pair) (*entity.MeetupPoint, error) {
			<-release

			return &entity.MeetupPoint{}, nil
		}).Once()

	f.session.Dispatch(func(w *selection.Workflow) ([]selection.Command, error) {
		return w.SetParties(me, alice, "Alice")
	})
	f.snaps.await(t, func(s selection.Snapshot) bool { return s.MeetupLoading })

	f.cancel()
	close(release)
	<-f.stopped
	f.stopped <- nil

	assert.False(t, f.session.Dispatch(func(w *selection.Workflow) ([]selection.Command, error) {
		return w.Back()
	}))
}

package selection

import (
	"context"
	"log/slog"
	"sync"
)

// Action is a workflow handler bound to its arguments, e.g.
//
//	func(w *Workflow) ([]Command, error) { return w.Pick(id) }
type Action func(w *Workflow) ([]Command, error)

// Session owns a Workflow and runs it as a single-writer event loop: actions and
// command outcomes are applied on the loop goroutine, commands run on their own
// goroutines. Cancelling the Run context stops everything; outcomes that arrive
// later are discarded.
type Session struct {
	workflow *Workflow
	runner   *Runner
	observe  func(Snapshot)
	logger   *slog.Logger

	actions chan Action
	events  chan Event
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewSession wires a workflow to a runner. observe, if set, receives a snapshot
// after every change, on the loop goroutine.
func NewSession(workflow *Workflow, runner *Runner, observe func(Snapshot), logger *slog.Logger) *Session {
	return &Session{
		workflow: workflow,
		runner:   runner,
		observe:  observe,
		logger:   logger,
		actions:  make(chan Action),
		events:   make(chan Event),
		done:     make(chan struct{}),
	}
}

// Dispatch queues an action. It returns false once the session has stopped.
func (s *Session) Dispatch(action Action) bool {
	select {
	case s.actions <- action:
		return true
	case <-s.done:
		return false
	}
}

// Run drives the loop until ctx is cancelled and waits for in-flight commands.
func (s *Session) Run(ctx context.Context) error {
	defer func() {
		close(s.done)
		s.wg.Wait()
	}()

	s.notify(nil)

	for {
		select {
		case <-ctx.Done():
			return nil
		case action := <-s.actions:
			cmds, err := action(s.workflow)
			s.start(ctx, cmds)
			s.notify(err)
		case ev := <-s.events:
			s.start(ctx, s.workflow.Apply(ev))
			s.notify(nil)
		}
	}
}

func (s *Session) start(ctx context.Context, cmds []Command) {
	for _, cmd := range cmds {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()

			ev := s.runner.Run(ctx, cmd)
			if ev == nil {
				return
			}

			select {
			case s.events <- ev:
			case <-ctx.Done():
				s.logger.Debug("Dropped selection result after teardown")
			}
		}()
	}
}

func (s *Session) notify(err error) {
	if s.observe == nil {
		return
	}

	snap := s.workflow.Snapshot()
	snap.Err = err
	s.observe(snap)
}

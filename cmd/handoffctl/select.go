package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"handoff/internal/client"
	"handoff/internal/selection"
	"handoff/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	exchangeID       string
	counterpartyID   string
	counterpartyName string
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick the handoff location for an exchange",
	Long: `Opens the location picker. The confirmed choice is recorded for the exchange:
a saved address for pickup, a meetup pin, or a note that the other party decides.

Example:
  handoffctl select --exchange 5f0c... --with 9b1e... --with-name Alice`,
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().StringVar(&exchangeID, "exchange", "", "Exchange ID (required)")
	selectCmd.Flags().StringVar(&counterpartyID, "with", "", "User ID of the other party; enables the recommended meetup point")
	selectCmd.Flags().StringVar(&counterpartyName, "with-name", "", "Display name of the other party")
	_ = selectCmd.MarkFlagRequired("exchange")
}

func runSelect(cmd *cobra.Command, _ []string) error {
	exchange, err := uuid.Parse(exchangeID)
	if err != nil {
		return errors.Wrap(err, "--exchange")
	}

	api, err := newClient()
	if err != nil {
		return err
	}
	userID, err := client.UserID(token)
	if err != nil {
		return err
	}

	// Without --with there is no pair, so no meetup point is fetched.
	to := uuid.Nil
	if counterpartyID != "" {
		if to, err = uuid.Parse(counterpartyID); err != nil {
			return errors.Wrap(err, "--with")
		}
	}
	setParties := func(w *selection.Workflow) ([]selection.Command, error) {
		return w.SetParties(userID, to, counterpartyName)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workflow := selection.New(selection.Config{UserID: userID})
	runner := selection.NewRunner(api, api, api, logger)

	var program *tea.Program
	session := selection.NewSession(workflow, runner, func(snap selection.Snapshot) {
		program.Send(tui.SnapshotMsg(snap))
	}, logger)

	program = tea.NewProgram(tui.New(tui.Queue(ctx, session.Dispatch), setParties), tea.WithContext(ctx))

	var final tea.Model
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return session.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()

		var err error
		final, err = program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}

		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	model, _ := final.(tui.Model)
	sel := model.Selection()
	if sel == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "No location selected.")
		return nil
	}

	reqCtx, reqCancel := context.WithTimeout(cmd.Context(), timeout)
	defer reqCancel()

	delivery, err := api.DecideDelivery(reqCtx, exchange, *sel)
	if err != nil {
		return errors.Wrap(err, "record selection")
	}
	logger.Info("Recorded delivery decision",
		"exchange_id", exchange,
		"method", delivery.Method,
	)

	fmt.Fprintln(cmd.OutOrStdout(), selection.Summary(sel, counterpartyName))

	return nil
}

package main

import (
	"context"
	"fmt"

	"handoff/internal/selection"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var deliveryCmd = &cobra.Command{
	Use:   "delivery [exchange-id]",
	Short: "Show the handoff location recorded for an exchange",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelivery,
}

func runDelivery(cmd *cobra.Command, args []string) error {
	exchange, err := uuid.Parse(args[0])
	if err != nil {
		return errors.Wrap(err, "exchange id")
	}

	api, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	delivery, err := api.GetDelivery(ctx, exchange)
	if err != nil {
		return err
	}

	sel := selection.Selection{Address: &delivery.Address, Method: delivery.Method}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Method:     %s\n", delivery.Method)
	fmt.Fprintf(out, "Decided at: %s\n\n", delivery.DecidedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintln(out, selection.Summary(&sel, ""))

	return nil
}

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"handoff/internal/domain/entity"
	"handoff/internal/domain/validation"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var addressesCmd = &cobra.Command{
	Use:   "addresses",
	Short: "Manage saved addresses",
}

var addressesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved addresses",
	Args:  cobra.NoArgs,
	RunE:  runAddressesList,
}

var addressesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a new address",
	Example: `  handoffctl addresses add --name Home --street "1 Main Street" --city Springfield \
    --country US --postal-code 12345 --lat 39.78 --long -89.65`,
	Args: cobra.NoArgs,
	RunE: runAddressesAdd,
}

var newAddress struct {
	name, street, apartment, city, region, country, postalCode, message string
	lat, long                                                           float64
}

func init() {
	f := addressesAddCmd.Flags()
	f.StringVar(&newAddress.name, "name", "", "Label, unique among your addresses")
	f.StringVar(&newAddress.street, "street", "", "Street address")
	f.StringVar(&newAddress.apartment, "apartment", "", "Apartment or unit")
	f.StringVar(&newAddress.city, "city", "", "City")
	f.StringVar(&newAddress.region, "region", "", "State or region")
	f.StringVar(&newAddress.country, "country", "", "Country")
	f.StringVar(&newAddress.postalCode, "postal-code", "", "Postal code")
	f.Float64Var(&newAddress.lat, "lat", 0, "Latitude")
	f.Float64Var(&newAddress.long, "long", 0, "Longitude")
	f.StringVar(&newAddress.message, "message", "", "Notes for the other party")

	addressesCmd.AddCommand(addressesListCmd)
	addressesCmd.AddCommand(addressesAddCmd)
}

func runAddressesList(cmd *cobra.Command, _ []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	addresses, err := api.ListAddresses(ctx)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved addresses.")
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("NAME", "ADDRESS", "LOCATION", "ID")
	for _, a := range addresses {
		t.Row(a.Name, oneLine(a), location(a.Location), a.ID.String())
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())

	return nil
}

func runAddressesAdd(cmd *cobra.Command, _ []string) error {
	userID, err := userFromToken()
	if err != nil {
		return err
	}

	address := &entity.Address{
		UserID:        userID,
		Name:          strings.TrimSpace(newAddress.name),
		StreetAddress: newAddress.street,
		Apartment:     newAddress.apartment,
		City:          newAddress.city,
		Region:        newAddress.region,
		Country:       newAddress.country,
		PostalCode:    newAddress.postalCode,
		Location:      &entity.Coordinates{Lat: newAddress.lat, Long: newAddress.long},
		Message:       newAddress.message,
	}

	if violations := validation.NewAddressValidator().Violations(address); len(violations) > 0 {
		names := make([]string, len(violations))
		for i, v := range violations {
			names[i] = string(v)
		}

		return errors.Errorf("missing or invalid fields: %s", strings.Join(names, ", "))
	}

	api, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	if err := api.CreateAddress(ctx, address); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%s)\n", address.Name, address.ID)

	return nil
}

func oneLine(a *entity.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.StreetAddress, a.Apartment, a.City, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

func location(c *entity.Coordinates) string {
	if c == nil {
		return "-"
	}

	return strconv.FormatFloat(c.Lat, 'f', 5, 64) + ", " + strconv.FormatFloat(c.Long, 'f', 5, 64)
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"florabot/internal/models"
	"florabot/internal/normalize"
)

// OrdersOptions holds flags for the orders subcommands.
type OrdersOptions struct {
	*RootOptions
	Limit int
}

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrdersOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and update shop orders",
	}

	recent := &cobra.Command{
		Use:   "recent",
		Short: "List the most recent orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecent(cmd, opts)
		},
	}
	recent.Flags().IntVar(&opts.Limit, "limit", 10, "maximum number of orders")

	setStatus := &cobra.Command{
		Use:   "set-status <order-id> <status>",
		Short: "Set the status of an order",
		Long: "Set the status of an order. Status is one of: accepted, assembling,\n" +
			"courier, delivered, canceled. The original submitter is notified.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetStatus(cmd, opts, args[0], args[1])
		},
	}

	cmd.AddCommand(recent)
	cmd.AddCommand(setStatus)

	return cmd
}

func runRecent(cmd *cobra.Command, opts *OrdersOptions) error {
	orders, err := newAPIClient(opts.RootOptions).recentOrders(cmd.Context(), opts.Limit)
	if errors.Is(err, errSilent) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(orders)
	}

	if len(orders) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No orders yet.")
		return nil
	}
	for _, o := range orders {
		fmt.Fprintln(cmd.OutOrStdout(), orderLine(o))
	}
	return nil
}

func runSetStatus(cmd *cobra.Command, opts *OrdersOptions, orderID, status string) error {
	order, err := newAPIClient(opts.RootOptions).setStatus(cmd.Context(), orderID, status)
	if errors.Is(err, errSilent) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(order)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", order.OrderID, normalize.StatusLabel(order.Status))
	return nil
}

func orderLine(o models.Order) string {
	name, _ := o.Customer["name"].(string)
	if name == "" {
		name = "—"
	}
	return fmt.Sprintf("%s  %-22s %12s %s  %s",
		o.OrderID, normalize.StatusLabel(o.Status),
		normalize.Money(o.Total), o.Currency, name)
}

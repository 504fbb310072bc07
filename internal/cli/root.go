// Package cli implements the floractl administrative command tree. Every
// command talks to a running florabot instance over its HTTP API.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	// Addr is the florabot base URL.
	Addr string
	// Token is the admin identity token presented as a bearer token.
	Token string
	// Format selects the output rendering: "text" or "json".
	Format string
}

// NewRootCommand creates the root command for floractl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "floractl",
		Short:         "Administrative CLI for the FLORA order service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Addr, "addr", envOr("FLORABOT_ADDR", "http://127.0.0.1:8080"),
		"florabot base URL")
	cmd.PersistentFlags().StringVar(&opts.Token, "token", envOr("FLORACTL_TOKEN", ""),
		"admin identity token")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewOrdersCommand(opts))
	cmd.AddCommand(NewTokenCommand())

	return cmd
}

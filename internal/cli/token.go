package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"florabot/internal/auth"
	"florabot/internal/models"
)

// TokenOptions holds flags for the token command.
type TokenOptions struct {
	TGID     int64
	Username string
	Name     string
	Key      string
	TTL      time.Duration
}

// NewTokenCommand creates the token command. It mints identity tokens
// locally from the shared signing key, for handing to the web form or for
// the admin's own FLORACTL_TOKEN.
func NewTokenCommand() *cobra.Command {
	opts := &TokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an identity token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Key == "" {
				return fmt.Errorf("signing key is required (--key or JWT_SIGNING_KEY)")
			}
			if opts.TGID == 0 {
				return fmt.Errorf("--id is required")
			}

			signed, err := auth.NewToken([]byte(opts.Key), opts.TTL).Create(models.Identity{
				TGID:     opts.TGID,
				Username: opts.Username,
				Name:     opts.Name,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().Int64Var(&opts.TGID, "id", 0, "Telegram numeric ID")
	cmd.Flags().StringVar(&opts.Username, "username", "", "Telegram handle")
	cmd.Flags().StringVar(&opts.Name, "name", "", "display name")
	cmd.Flags().StringVar(&opts.Key, "key", envOr("JWT_SIGNING_KEY", ""), "token signing key")
	cmd.Flags().DurationVar(&opts.TTL, "ttl", 720*time.Hour, "token lifetime")

	return cmd
}

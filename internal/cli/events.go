package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/cers/internal/config"
	"github.com/MikeSquared-Agency/cers/internal/hermes"
)

func newEventsCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Tail CERS events from NATS",
		Long: `Print every event published under cers.> until interrupted.
Requires hermes.url (or CERS_HERMES_URL) to be set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(o.configPath)
			if err != nil {
				return err
			}
			if cfg.Hermes.URL == "" {
				return errors.New("hermes.url is not configured")
			}
			logger := newLogger(cfg.Logging, cmd.ErrOrStderr())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client, err := hermes.NewNATSClient(ctx, cfg.Hermes.URL, logger)
			if err != nil {
				return err
			}
			defer client.Close()

			out := cmd.OutOrStdout()
			if err := client.Subscribe(hermes.SubjectAll, func(subject string, data []byte) {
				fmt.Fprintf(out, "%s %s\n", subject, data)
			}); err != nil {
				return fmt.Errorf("subscribe: %w", err)
			}
			logger.Info("listening for events", "subject", hermes.SubjectAll)

			<-ctx.Done()
			return nil
		},
	}
}

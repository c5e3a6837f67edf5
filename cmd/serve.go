package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/derby/app"
	"github.com/kilianp07/derby/config"
	"github.com/kilianp07/derby/infra/logger"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the heat schedule API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			svc, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := svc.Close(); err != nil {
					logger.New("main").Errorf("service close: %v", err)
				}
			}()
			return svc.Run(cmd.Context())
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ufal/maskit-web/pkg/maskit"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the service version and features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := maskit.NewService(a.client(), a.cfg.API.InfoCacheTTL)
			info := svc.ServerInfo(cmd.Context())

			status := "online"
			if !info.Online {
				status = "offline"
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Server:   %s (%s)\nVersion:  %s\nFeatures: %s\n",
				a.cfg.API.BaseURL, status, info.Version, info.Features)
			return err
		},
	}
}

package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/shenikar/safe_route_system/internal/app"
	"github.com/shenikar/safe_route_system/internal/repository"
)

func (c *cli) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove the stored risk area set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := app.Open(cmd.Context(), c.cfg, c.log)
			if err != nil {
				return eris.Wrap(err, "open store")
			}
			defer res.Close()

			store := repository.NewRiskAreaStore(res.Store, c.cfg.StoreKey, c.cfg.StoreTimeout, c.log)
			if err := store.Clear(cmd.Context()); err != nil {
				return eris.Wrap(err, "clear risk areas")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed risk areas under %q\n", c.cfg.StoreKey)
			return nil
		},
	}
}

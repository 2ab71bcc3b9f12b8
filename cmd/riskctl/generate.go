package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/shenikar/safe_route_system/internal/generator"
	"github.com/shenikar/safe_route_system/internal/service"
)

func (c *cli) generateCmd() *cobra.Command {
	var (
		count int
		seed  string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate synthetic incidents and rebuild risk areas",
		Long:  "Replaces the incident dataset with synthetic incidents around the catalog cities, builds one risk area per incident and saves the set.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var seedPtr *uint64
			if seed != "" {
				s := generator.Seed(seed)
				seedPtr = &s
			}

			return c.withService(cmd.Context(), func(svc service.SafetyService, _ *generator.Catalog) error {
				result, err := svc.GenerateIncidents(cmd.Context(), count, seedPtr)
				if err != nil {
					return eris.Wrap(err, "generate incidents")
				}

				if out != "" {
					incidents, err := svc.ListIncidents(cmd.Context())
					if err != nil {
						return eris.Wrap(err, "list incidents")
					}
					f, err := os.Create(out)
					if err != nil {
						return eris.Wrap(err, "create output file")
					}
					defer f.Close()
					if err := printJSON(f, incidents); err != nil {
						return eris.Wrap(err, "write incidents")
					}
				}

				return printJSON(cmd.OutOrStdout(), result)
			})
		},
	}

	cmd.Flags().IntVar(&count, "count", generator.DefaultCount, "number of incidents")
	cmd.Flags().StringVar(&seed, "seed", "", "seed for a reproducible dataset (number or any string)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write generated incidents as JSON to this file")
	return cmd
}

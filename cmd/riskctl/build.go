package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/shenikar/safe_route_system/internal/app"
	"github.com/shenikar/safe_route_system/internal/generator"
	"github.com/shenikar/safe_route_system/internal/ingest"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/service"
)

func (c *cli) buildCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build risk areas from an incident file",
		Long:  "Reads incidents from an NCRB-style CSV or a JSON array, builds one risk area per incident and saves the set.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withService(cmd.Context(), func(svc service.SafetyService, catalog *generator.Catalog) error {
				incidents, err := readIncidents(input, ingest.NewImporter(app.CityCentres(catalog), time.Now))
				if err != nil {
					return err
				}
				result, err := svc.IngestIncidents(cmd.Context(), incidents)
				if err != nil {
					return eris.Wrap(err, "build risk areas")
				}
				return printJSON(cmd.OutOrStdout(), result)
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "incident file (.csv or .json)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// readIncidents выбирает разбор по расширению файла
func readIncidents(path string, importer *ingest.Importer) ([]models.Incident, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "open incident file")
	}
	defer f.Close()

	var incidents []models.Incident
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		incidents, err = importer.ParseCSV(f)
	case ".json":
		incidents, err = importer.ParseJSON(f)
	default:
		return nil, eris.Errorf("unsupported incident file %q: want .csv or .json", path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "parse %s", path)
	}
	return incidents, nil
}

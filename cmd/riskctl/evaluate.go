package main

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/shenikar/safe_route_system/internal/generator"
	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/service"
)

func (c *cli) evaluateCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a straight-line route against the stored risk areas",
		Long:  "Loads the saved risk area set and reports whether the segment between two lng,lat points crosses any area.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := parseCoordinate(start)
			if err != nil {
				return eris.Wrap(err, "--start")
			}
			to, err := parseCoordinate(end)
			if err != nil {
				return eris.Wrap(err, "--end")
			}

			return c.withService(cmd.Context(), func(svc service.SafetyService, _ *generator.Catalog) error {
				route, err := svc.EvaluateRoute(cmd.Context(), from, to, nil)
				if err != nil {
					return eris.Wrap(err, "evaluate route")
				}
				return printJSON(cmd.OutOrStdout(), route)
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "route start as lng,lat")
	cmd.Flags().StringVar(&end, "end", "", "route end as lng,lat")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

// parseCoordinate разбирает строку вида "77.2090,28.6139"
func parseCoordinate(s string) (geo.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geo.Coordinate{}, eris.Errorf("coordinate %q must be lng,lat", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Coordinate{}, eris.Wrapf(err, "longitude %q", parts[0])
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Coordinate{}, eris.Wrapf(err, "latitude %q", parts[1])
	}
	c := geo.Coordinate{Lng: lng, Lat: lat}
	if err := geo.ValidateCoordinate(c); err != nil {
		return geo.Coordinate{}, err
	}
	return c, nil
}

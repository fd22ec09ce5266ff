package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"contoso_suites/internal/adapters/contoso"
	"contoso_suites/internal/shared"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:  "contosoctl",
		Usage: "Query the Contoso Suites hotel and booking API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "Base URL of the API",
				Sources: cli.EnvVars("CONTOSO_API_URL"),
				Value:   "http://localhost:8080",
			},
			&cli.IntFlag{
				Name:    "rps",
				Usage:   "Client-side request rate limit",
				Sources: cli.EnvVars("CONTOSO_API_RPS"),
				Value:   5,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: json or yaml",
				Value:   "json",
				Validator: func(v string) error {
					if v != "json" && v != "yaml" {
						return fmt.Errorf("unsupported output format %q", v)
					}
					return nil
				},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log requests to stderr",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			lvl := zerolog.WarnLevel
			if cmd.Bool("debug") {
				lvl = zerolog.DebugLevel
			}
			log.Logger = log.Logger.Level(lvl)
			return ctx, nil
		},
		Commands: []*cli.Command{
			hotelsCmd(),
			bookingsCmd(),
		},
	}
}

func hotelsCmd() *cli.Command {
	return &cli.Command{
		Name:  "hotels",
		Usage: "List all hotels",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := client(cmd)
			if err != nil {
				return err
			}
			hotels, err := c.GetHotels(ctx)
			if err != nil {
				return fmt.Errorf("list hotels: %w", err)
			}
			log.Debug().Int("count", len(hotels)).Msg("hotels fetched")
			return render(os.Stdout, cmd.String("output"), hotels)
		},
	}
}

func bookingsCmd() *cli.Command {
	return &cli.Command{
		Name:  "bookings",
		Usage: "List bookings for a hotel, optionally only those starting on or after a date",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "hotel-id",
				Usage:    "Hotel identifier",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "since",
				Usage: "Earliest stay begin date (ISO-8601, e.g. 2024-03-01 or 2024-03-01T15:00:00Z)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := client(cmd)
			if err != nil {
				return err
			}
			hotelID := int(cmd.Int("hotel-id"))

			since := cmd.String("since")
			if since == "" {
				bookings, err := c.GetBookingsForHotel(ctx, hotelID)
				if err != nil {
					return fmt.Errorf("list bookings: %w", err)
				}
				return render(os.Stdout, cmd.String("output"), bookings)
			}

			minDate, err := shared.ParseDateTime(since)
			if err != nil {
				return fmt.Errorf("--since: %w", err)
			}
			bookings, err := c.GetRecentBookingsForHotel(ctx, hotelID, minDate)
			if err != nil {
				return fmt.Errorf("list recent bookings: %w", err)
			}
			return render(os.Stdout, cmd.String("output"), bookings)
		},
	}
}

func client(cmd *cli.Command) (*contoso.Client, error) {
	log.Debug().Str("api", cmd.String("api")).Msg("using API")
	return contoso.New(cmd.String("api"), int(cmd.Int("rps")))
}

// render writes v as JSON or YAML. YAML keeps the JSON field names.
func render(w io.Writer, format string, v any) error {
	if format == "yaml" {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(b, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(generic)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

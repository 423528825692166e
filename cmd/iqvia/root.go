package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"ulascansenturk/allergy-forecast/pkg/iqvia"
)

type options struct {
	timeout       time.Duration
	pollenBaseURL string
	asthmaBaseURL string
	logLevel      string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "iqvia",
		Short: "Query the IQVIA allergy and asthma forecasts for a US ZIP code",
		Long: `iqvia fetches forecasts from pollen.com and asthmaforecast.com and prints
the JSON document returned by the service.

Examples:
  iqvia allergens current 17015
  iqvia allergens outlook 17015
  iqvia asthma historic 17015`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}
			log.Logger = log.Logger.Level(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "HTTP timeout for the forecast request")
	rootCmd.PersistentFlags().StringVar(&opts.pollenBaseURL, "pollen-url", iqvia.DefaultPollenBaseURL, "base URL of the pollen forecast API")
	rootCmd.PersistentFlags().StringVar(&opts.asthmaBaseURL, "asthma-url", iqvia.DefaultAsthmaBaseURL, "base URL of the asthma forecast API")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newCategoryCmd(opts, iqvia.CategoryAllergens, "Pollen forecasts from pollen.com"),
		newCategoryCmd(opts, iqvia.CategoryAsthma, "Asthma forecasts from asthmaforecast.com"),
	)

	return rootCmd
}

func newCategoryCmd(opts *options, category iqvia.Category, short string) *cobra.Command {
	var kinds []string
	for _, kind := range []iqvia.Kind{iqvia.KindCurrent, iqvia.KindExtended, iqvia.KindHistoric, iqvia.KindOutlook} {
		if iqvia.Supports(category, kind) {
			kinds = append(kinds, string(kind))
		}
	}

	return &cobra.Command{
		Use:       fmt.Sprintf("%s <kind> <zip>", category),
		Short:     short,
		Args:      cobra.ExactArgs(2),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := iqvia.ParseKind(args[0])
			if err != nil {
				return err
			}

			return runForecast(cmd, opts, category, kind, args[1])
		},
	}
}

func runForecast(cmd *cobra.Command, opts *options, category iqvia.Category, kind iqvia.Kind, zipCode string) error {
	client, err := iqvia.NewClient(zipCode,
		iqvia.WithHTTPClient(&http.Client{Timeout: opts.timeout}),
		iqvia.WithPollenBaseURL(opts.pollenBaseURL),
		iqvia.WithAsthmaBaseURL(opts.asthmaBaseURL),
		iqvia.WithLogger(log.Logger),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	data, err := client.Forecast(ctx, category, kind)
	if errors.Is(err, iqvia.ErrInvalidZIP) {
		return fmt.Errorf("no %s forecast available: %w", category, err)
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode forecast: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

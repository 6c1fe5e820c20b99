package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kellegous/labkit/weather"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWeatherCmd(a *app) *cobra.Command {
	var (
		units  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "weather [city]",
		Short: "Show the current weather for a city",
		Long: `Fetches the current weather from OpenWeather. The API key is read from
$OPENWEATHER_API_KEY, then from .env files, and is asked for otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u weather.Units
			if cmd.Flags().Changed("units") {
				var err error
				if u, err = weather.ParseUnits(units); err != nil {
					return err
				}
			}

			key, err := weather.LoadAPIKey(weather.KeySource{
				Getenv: a.getenv,
				Dirs:   a.ctx.EnvDirs(),
				Prompt: a.prompt,
			})
			if err != nil {
				return err
			}

			var city string
			if len(args) > 0 {
				city = args[0]
			} else if city, err = a.prompt.Line("Enter the city name: "); err != nil {
				return err
			}

			r, err := a.ctx.WeatherClient(key, u).Fetch(cmd.Context(), city)
			if err != nil {
				zap.L().Debug("weather fetch failed",
					zap.String("city", city),
					zap.Error(err))
				var se *weather.StatusError
				if errors.As(err, &se) && se.Detail != "" {
					return fmt.Errorf("%w: %s", err, se.Detail)
				}
				return err
			}

			if asJSON {
				b, err := json.MarshalIndent(r, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, string(b))
				return nil
			}

			fmt.Fprintf(a.out, "Weather in %s:\n", r.Location())
			fmt.Fprintf(a.out, "  Description : %s\n", r.Description)
			fmt.Fprintf(a.out, "  Temperature : %g° (%s)\n", r.Temperature, r.Units)
			fmt.Fprintf(a.out, "  Feels like  : %g°\n", r.FeelsLike)
			fmt.Fprintf(a.out, "  Humidity    : %g%%\n", r.Humidity)
			fmt.Fprintf(a.out, "  Pressure    : %g hPa\n", r.Pressure)
			fmt.Fprintf(a.out, "  Wind speed  : %g\n", r.WindSpeed)
			return nil
		},
	}

	cmd.Flags().StringVar(&units, "units", string(weather.Metric), "standard, metric or imperial")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kellegous/labkit/config"
	"github.com/kellegous/labkit/internal/prompt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by all commands of one invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	getenv func(string) string

	conf    string
	verbose bool

	ctx    *config.Context
	prompt *prompt.Prompt
}

var buildLogger = func(cfg zap.Config) (*zap.Logger, error) {
	return cfg.Build()
}

func setupLogger(verbose bool) error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	lg, err := buildLogger(cfg)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(lg)
	return nil
}

// loadConfig reads the config file. A missing file is only an error when it
// was named explicitly.
func loadConfig(filename string, explicit bool) (*config.Info, error) {
	var cfg config.Info
	if err := cfg.ReadFile(filename); os.IsNotExist(err) && !explicit {
		cfg = config.Default()
	} else if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}

	return &cfg, nil
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{
		in:     in,
		out:    out,
		getenv: os.Getenv,
	}

	root := &cobra.Command{
		Use:   "labkit",
		Short: "Classroom lab exercises: sorting, primes, bills, users, weather and more",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogger(a.verbose); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			cfg, err := loadConfig(a.conf, cmd.Flags().Changed("conf"))
			if err != nil {
				return err
			}

			zap.L().Debug("config loaded",
				zap.String("conf", a.conf),
				zap.String("algorithm", cfg.Sort.Algorithm))

			a.ctx = config.BuildContext(cfg, zap.L())
			a.prompt = prompt.New(a.in, a.out)
			return nil
		},
		SilenceUsage: true,
	}

	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.conf, "conf", "labkit.json", "config file (JSON or YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSortCmd(a),
		newPrimeCmd(a),
		newArmstrongCmd(a),
		newFactorialCmd(a),
		newBillCmd(a),
		newUsersCmd(a),
		newWeatherCmd(a),
		newRecommendCmd(a),
	)

	return root
}

// execute runs cmd and flushes the global logger whether or not cmd failed.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	_ = zap.L().Sync()
	return err
}

func main() {
	if err := execute(newRootCmd(os.Stdin, os.Stdout)); err != nil {
		os.Exit(1)
	}
}

// Command cloth runs an interactive Verlet cloth simulation.
//
// A grid of particles joined by distance constraints hangs from three pins
// and can be grabbed and dragged with the left mouse button. The cloth is
// drawn either in an ebiten window or, with --frontend terminal, in the
// terminal using tcell.
//
// Configuration comes from, in increasing precedence: built-in defaults, a
// TOML file (--config, or ./cloth.toml), CLOTH_* environment variables and
// command-line flags.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "cloth",
		Short:         "Interactive Verlet cloth simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}

			console := zapcore.Lock(os.Stdout)
			if cfg.Frontend == frontendTerminal {
				// tcell owns the terminal; only the log file receives output.
				console = discard{}
			}
			log := initLogger(cfg.Logger, console)
			defer func() { _ = log.Sync() }()

			log.Info("starting",
				zap.String("frontend", cfg.Frontend),
				zap.Int("rows", cfg.Cloth.Rows),
				zap.Int("cols", cfg.Cloth.Cols),
				zap.Int("iterations", cfg.Physics.Iterations),
				zap.Float64("time_step", cfg.Physics.TimeStep),
			)
			return run(cfg, log)
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./cloth.toml)")
	if err := registerFlags(cmd, v); err != nil {
		panic(err)
	}
	return cmd
}

// run starts the optional CPU profile and hands control to the frontend.
func run(cfg *Config, log *zap.Logger) error {
	if cfg.Profile.CPUProfile != "" {
		stop, err := startCPUProfile(cfg.Profile.CPUProfile, log)
		if err != nil {
			return err
		}
		log.Info("cpu profile started", zap.String("path", cfg.Profile.CPUProfile))
		defer stop()
	}

	switch cfg.Frontend {
	case frontendTerminal:
		return runTerminal(cfg, log)
	default:
		return runEbiten(cfg, log)
	}
}

// discard is a zapcore.WriteSyncer that drops everything.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
func (discard) Sync() error                 { return nil }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger().Error("cloth exited", zap.Error(err))
		os.Exit(1)
	}
}

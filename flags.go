package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagBinding ties a command-line flag to the configuration key it overrides.
type flagBinding struct {
	flag string
	key  string
}

var flagBindings = []flagBinding{
	{"frontend", "frontend"},
	{"debug", "debug"},
	{"rows", "cloth.rows"},
	{"cols", "cloth.cols"},
	{"seed", "cloth.seed"},
	{"unpinned", "cloth.unpinned"},
	{"iterations", "physics.iterations"},
	{"clamp-per-iteration", "physics.clamp_per_iteration"},
	{"enable-audio", "audio.enabled"},
	{"cpuprofile", "profile.cpu_profile"},
	{"record-default-pgo", "profile.record_default_pgo"},
	{"log-level", "logger.level"},
	{"log-file", "logger.log_file"},
}

// registerFlags declares the command-line flags and binds each to v.
// Defaults here only document the behaviour; SetDefaults is authoritative.
func registerFlags(cmd *cobra.Command, v *viper.Viper) error {
	f := cmd.Flags()

	// frontend picks the window (ebiten) or the terminal (tcell) renderer.
	f.String("frontend", frontendEbiten, "renderer to use: ebiten or terminal")

	// debug enables the FPS/strain overlay and debug logging of solver state.
	f.Bool("debug", false, "show FPS, strain and solver overlay")

	f.Int("rows", 10, "cloth rows")
	f.Int("cols", 10, "cloth columns")
	f.Int64("seed", 0, "jitter seed (0 seeds from the clock)")
	f.Bool("unpinned", false, "do not pin the top row")

	// iterations is the number of relaxation passes per frame; more is stiffer.
	f.Int("iterations", 1, "constraint relaxation passes per frame")
	f.Bool("clamp-per-iteration", false, "clamp to the window on every pass instead of once per frame")

	// enable-audio plays a tone whose loudness follows the cloth's stretch.
	f.Bool("enable-audio", false, "enable experimental strain audio output")

	f.String("cpuprofile", "", "write a CPU profile of the whole run to this file")

	// record-default-pgo drags the cloth around automatically while capturing default.pgo.
	f.Bool("record-default-pgo", false, "drag the cloth automatically while capturing default.pgo")

	f.String("log-level", "info", "log level: debug, info, warn, error")
	f.String("log-file", "", "also write JSON logs to this rotating file")

	for _, b := range flagBindings {
		if err := v.BindPFlag(b.key, f.Lookup(b.flag)); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"VerletCloth/sim"
)

// Runtime constants for the frontends. Simulation tunables live in Config.
const (
	defaultTPS               = 60.0
	minIterations            = 1
	maxIterations            = 64
	iterationStep            = 1
	autoDragSpeed            = 4
	skippedLogInterval       = 2 * time.Second
	audioSampleRate          = 48000
	audioPlayerBufferLatency = 80 * time.Millisecond
	strainToneHz             = 110.0
	strainGain               = 4.0
	pcm16MaxValue            = 32767
	defaultPGOPath           = "default.pgo"
	envPrefix                = "CLOTH"
	frontendEbiten           = "ebiten"
	frontendTerminal         = "terminal"
)

// Config is the full application configuration, assembled by viper from
// defaults, an optional TOML file, CLOTH_* environment variables and flags.
type Config struct {
	Frontend    string            `mapstructure:"frontend"`
	Debug       bool              `mapstructure:"debug"`
	Cloth       ClothConfig       `mapstructure:"cloth"`
	Physics     PhysicsConfig     `mapstructure:"physics"`
	Interaction InteractionConfig `mapstructure:"interaction"`
	Window      WindowConfig      `mapstructure:"window"`
	Terminal    TerminalConfig    `mapstructure:"terminal"`
	Audio       AudioConfig       `mapstructure:"audio"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Profile     ProfileConfig     `mapstructure:"profile"`
}

// ClothConfig describes the particle grid.
type ClothConfig struct {
	Rows       int     `mapstructure:"rows"`
	Cols       int     `mapstructure:"cols"`
	Spacing    float64 `mapstructure:"spacing"`
	Jitter     float64 `mapstructure:"jitter"`
	PrevJitter float64 `mapstructure:"prev_jitter"`
	Seed       int64   `mapstructure:"seed"` // 0 seeds from the clock
	Pins       []int   `mapstructure:"pins"` // empty pins the top corners and midpoint
	Unpinned   bool    `mapstructure:"unpinned"`
}

type PhysicsConfig struct {
	GravityX          float64 `mapstructure:"gravity_x"`
	GravityY          float64 `mapstructure:"gravity_y"`
	GravityZ          float64 `mapstructure:"gravity_z"`
	TimeStep          float64 `mapstructure:"time_step"`
	Iterations        int     `mapstructure:"iterations"`
	Damping           float64 `mapstructure:"damping"`
	ClampPerIteration bool    `mapstructure:"clamp_per_iteration"`
}

type InteractionConfig struct {
	ParticleRadius float64 `mapstructure:"particle_radius"`
	GrabSlack      float64 `mapstructure:"grab_slack"`
}

type WindowConfig struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Title     string `mapstructure:"title"`
	Resizable bool   `mapstructure:"resizable"`
}

// TerminalConfig maps character cells to world units for the tcell frontend.
type TerminalConfig struct {
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
	FPS        int     `mapstructure:"fps"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type ProfileConfig struct {
	CPUProfile       string        `mapstructure:"cpu_profile"`
	RecordDefaultPGO bool          `mapstructure:"record_default_pgo"`
	PGODuration      time.Duration `mapstructure:"pgo_duration"`
}

// SetDefaults registers the default value of every configuration key.
func SetDefaults(v *viper.Viper) {
	def := sim.DefaultConfig()

	v.SetDefault("frontend", frontendEbiten)
	v.SetDefault("debug", false)

	v.SetDefault("cloth.rows", def.Rows)
	v.SetDefault("cloth.cols", def.Cols)
	v.SetDefault("cloth.spacing", float64(def.Spacing))
	v.SetDefault("cloth.jitter", float64(def.Jitter))
	v.SetDefault("cloth.prev_jitter", 0.0)
	v.SetDefault("cloth.seed", int64(0))
	v.SetDefault("cloth.pins", []int{})
	v.SetDefault("cloth.unpinned", false)

	v.SetDefault("physics.gravity_x", float64(def.Gravity.X))
	v.SetDefault("physics.gravity_y", float64(def.Gravity.Y))
	v.SetDefault("physics.gravity_z", float64(def.Gravity.Z))
	v.SetDefault("physics.time_step", float64(def.TimeStep))
	v.SetDefault("physics.iterations", def.Iterations)
	v.SetDefault("physics.damping", float64(def.Damping))
	v.SetDefault("physics.clamp_per_iteration", false)

	v.SetDefault("interaction.particle_radius", float64(def.ParticleRadius))
	v.SetDefault("interaction.grab_slack", float64(def.GrabSlack))

	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Verlet Cloth")
	v.SetDefault("window.resizable", true)

	v.SetDefault("terminal.cell_width", 8.0)
	v.SetDefault("terminal.cell_height", 16.0)
	v.SetDefault("terminal.fps", 30)

	v.SetDefault("audio.enabled", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("profile.cpu_profile", "")
	v.SetDefault("profile.record_default_pgo", false)
	v.SetDefault("profile.pgo_duration", "15s")
}

// loadConfig reads path (or ./cloth.toml when path is empty and the file
// exists) on top of the defaults and environment.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("cloth")
		v.SetConfigType("toml")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the frontend-level settings and the simulation settings.
func (c *Config) Validate() error {
	switch c.Frontend {
	case frontendEbiten, frontendTerminal:
	default:
		return fmt.Errorf("%w: unknown frontend %q", sim.ErrInvalidConfig, c.Frontend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", sim.ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 || c.Terminal.FPS <= 0 {
		return fmt.Errorf("%w: terminal cell %vx%v at %d fps", sim.ErrInvalidConfig,
			c.Terminal.CellWidth, c.Terminal.CellHeight, c.Terminal.FPS)
	}
	if c.Profile.RecordDefaultPGO && c.Profile.CPUProfile != "" {
		// Only one CPU profile can run per process.
		return fmt.Errorf("%w: cpu_profile and record_default_pgo are exclusive", sim.ErrInvalidConfig)
	}
	if c.Profile.RecordDefaultPGO && c.Profile.PGODuration <= 0 {
		return fmt.Errorf("%w: pgo duration %v", sim.ErrInvalidConfig, c.Profile.PGODuration)
	}
	simCfg := c.SimConfig()
	if err := simCfg.Validate(); err != nil {
		return err
	}
	for _, id := range simCfg.PinIDs() {
		if id < 0 || id >= simCfg.Rows*simCfg.Cols {
			return fmt.Errorf("%w: pin %d", sim.ErrParticleOutOfRange, id)
		}
	}
	return nil
}

// SimConfig converts the simulation sections into a sim.Config.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Rows:       c.Cloth.Rows,
		Cols:       c.Cloth.Cols,
		Spacing:    float32(c.Cloth.Spacing),
		Jitter:     float32(c.Cloth.Jitter),
		PrevJitter: float32(c.Cloth.PrevJitter),
		Pins:       c.Cloth.Pins,
		Unpinned:   c.Cloth.Unpinned,
		Gravity: sim.Vec3{
			X: float32(c.Physics.GravityX),
			Y: float32(c.Physics.GravityY),
			Z: float32(c.Physics.GravityZ),
		},
		TimeStep:           float32(c.Physics.TimeStep),
		Iterations:         c.Physics.Iterations,
		Damping:            float32(c.Physics.Damping),
		ClampEachIteration: c.Physics.ClampPerIteration,
		ParticleRadius:     float32(c.Interaction.ParticleRadius),
		GrabSlack:          float32(c.Interaction.GrabSlack),
	}
}

// seed resolves the jitter seed, falling back to the clock.
func (c *Config) seed() int64 {
	if c.Cloth.Seed != 0 {
		return c.Cloth.Seed
	}
	return time.Now().UnixNano()
}

// clothOrigin anchors particle 0 at the centre of a width x height surface.
func clothOrigin(width, height float32) sim.Vec3 {
	return sim.Vec3{X: width / 2, Y: height / 2}
}

// newState builds the simulation for a surface of the given size.
func newState(cfg *Config, width, height float32) (*sim.State, error) {
	state, err := sim.New(cfg.SimConfig(), clothOrigin(width, height), sim.NewSeededRand(cfg.seed()))
	if err != nil {
		return nil, fmt.Errorf("building cloth: %w", err)
	}
	state.Verbose = cfg.Debug
	return state, nil
}

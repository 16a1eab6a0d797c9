package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"hrsynth/pkg/models"
)

// ErrInvalidConfig is returned when configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix prefixes every environment override, e.g. HRSYNTH_DATA_GENERATION_SEED.
const EnvPrefix = "HRSYNTH"

// Config holds the configuration for the application.
type Config struct {
	DataGeneration struct {
		SampleSize       int    `mapstructure:"sample_size"`
		Seed             int64  `mapstructure:"seed"`
		ReferenceDate    string `mapstructure:"reference_date"`
		EarliestHireDate string `mapstructure:"earliest_hire_date"`
		OutputDir        string `mapstructure:"output_dir"`
		OutputFile       string `mapstructure:"output_file"`
		ReportDir        string `mapstructure:"report_dir"`
		Workers          int    `mapstructure:"workers"`
	} `mapstructure:"data_generation"`
	Logging struct {
		Level string `mapstructure:"level"`
		JSON  bool   `mapstructure:"json"`
	} `mapstructure:"logging"`

	reference    time.Time
	earliestHire time.Time
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_generation.sample_size", 5000)
	v.SetDefault("data_generation.seed", 42)
	v.SetDefault("data_generation.reference_date", "2025-05-01")
	v.SetDefault("data_generation.earliest_hire_date", "1995-01-01")
	v.SetDefault("data_generation.output_dir", "data/raw")
	v.SetDefault("data_generation.output_file", "hr_data.csv")
	v.SetDefault("data_generation.report_dir", "reports/data_generation")
	v.SetDefault("data_generation.workers", runtime.NumCPU())
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.json", false)
}

// New returns a viper instance with defaults and environment overrides set up.
// path selects an explicit parameter file; when empty, params.yaml is searched
// for in . and ./config.
func New(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("params")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the parameter file into v (flags must already be bound) and
// validates the result. A missing file is only an error when it was named
// explicitly.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || v.ConfigFileUsed() != "" {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads the configuration from a file and the environment.
func LoadConfig(path string) (*Config, error) {
	return Load(New(path))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks every value and parses the dates.
func (c *Config) Validate() error {
	dg := &c.DataGeneration
	if dg.SampleSize <= 0 {
		return invalid("data_generation.sample_size must be positive, got %d", dg.SampleSize)
	}
	if dg.Workers < 1 {
		return invalid("data_generation.workers must be at least 1, got %d", dg.Workers)
	}
	if strings.TrimSpace(dg.OutputFile) == "" {
		return invalid("data_generation.output_file is empty")
	}

	ref, err := models.ParseDate(dg.ReferenceDate)
	if err != nil {
		return invalid("data_generation.reference_date: %v", err)
	}
	earliest, err := models.ParseDate(dg.EarliestHireDate)
	if err != nil {
		return invalid("data_generation.earliest_hire_date: %v", err)
	}
	if !ref.After(earliest) {
		return invalid("data_generation.reference_date %s must be after earliest_hire_date %s", dg.ReferenceDate, dg.EarliestHireDate)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	c.reference = ref
	c.earliestHire = earliest
	return nil
}

// ReferenceDate is the "today" of the simulation.
func (c *Config) ReferenceDate() time.Time {
	return c.reference
}

// EarliestHireDate bounds hire-date sampling from below.
func (c *Config) EarliestHireDate() time.Time {
	return c.earliestHire
}

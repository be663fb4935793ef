package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/Takumouse/sales-dashboard2/internal/logger"
)

const envPrefix = "SALESDASH_"

type DatasetConfig struct {
	Source  string        `yaml:"source" toml:"source" json:"source" env:"SOURCE"`
	Timeout time.Duration `yaml:"timeout" toml:"timeout" json:"timeout" env:"TIMEOUT"`
}

type PreferencesDriver string

const (
	DriverSQLite PreferencesDriver = "sqlite"
	DriverFile   PreferencesDriver = "file"
)

type PreferencesConfig struct {
	Driver PreferencesDriver `yaml:"driver" toml:"driver" json:"driver" env:"DRIVER"`
	File   string            `yaml:"file" toml:"file" json:"file" env:"FILE"`
}

type DBConfig struct {
	Source       string `yaml:"source" toml:"source" json:"source" env:"SOURCE"`
	JournalMode  string `yaml:"journal_mode" toml:"journal_mode" json:"journal_mode" env:"JOURNAL_MODE"`
	Synchronous  string `yaml:"synchronous" toml:"synchronous" json:"synchronous" env:"SYNCHRONOUS"`
	BusyTimeout  int    `yaml:"busy_timeout" toml:"busy_timeout" json:"busy_timeout" env:"BUSY_TIMEOUT"`
	MaxOpenConns int    `yaml:"max_open_conns" toml:"max_open_conns" json:"max_open_conns" env:"MAX_OPEN_CONNS"`
}

type ServerConfig struct {
	Port              string        `yaml:"port" toml:"port" json:"port" env:"PORT"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" toml:"read_header_timeout" json:"read_header_timeout" env:"READ_HEADER_TIMEOUT"`
	// TrustedOrigins may post commands cross-origin, e.g. a dashboard hosted elsewhere.
	TrustedOrigins []string `yaml:"trusted_origins" toml:"trusted_origins" json:"trusted_origins" env:"TRUSTED_ORIGINS" envSeparator:","`
}

type PaginationConfig struct {
	PageSize int `yaml:"page_size" toml:"page_size" json:"page_size" env:"PAGE_SIZE"`
}

type Config struct {
	Dataset     DatasetConfig     `yaml:"dataset" toml:"dataset" json:"dataset" envPrefix:"DATASET_"`
	Preferences PreferencesConfig `yaml:"preferences" toml:"preferences" json:"preferences" envPrefix:"PREFERENCES_"`
	DB          DBConfig          `yaml:"db" toml:"db" json:"db" envPrefix:"DB_"`
	Server      ServerConfig      `yaml:"server" toml:"server" json:"server" envPrefix:"SERVER_"`
	Pagination  PaginationConfig  `yaml:"pagination" toml:"pagination" json:"pagination" envPrefix:"PAGINATION_"`
	Logger      logger.Config     `yaml:"logger" toml:"logger" json:"logger" envPrefix:"LOG_"`
}

const (
	defaultDatasetSource   = "data/sales.json"
	defaultDatasetTimeout  = 5 * time.Second
	defaultDBSource        = "salesdash.db"
	defaultPreferencesFile = "salesdash-preferences.json"
	defaultPort            = "8080"
	defaultReadTimeout     = 3 * time.Second
	defaultPageSize        = 10
	defaultLogLevel        = logger.LevelInfo
	defaultLogFormat       = logger.FormatText
	defaultLogOutput       = "stdout"
)

func defaults() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Source:  defaultDatasetSource,
			Timeout: defaultDatasetTimeout,
		},
		Preferences: PreferencesConfig{
			Driver: DriverSQLite,
			File:   defaultPreferencesFile,
		},
		DB: DBConfig{
			Source:      defaultDBSource,
			JournalMode: "WAL",
			BusyTimeout: 5000,
		},
		Server: ServerConfig{
			Port:              defaultPort,
			ReadHeaderTimeout: defaultReadTimeout,
		},
		Pagination: PaginationConfig{
			PageSize: defaultPageSize,
		},
		Logger: logger.Config{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Output: defaultLogOutput,
		},
	}
}

// Parse builds the configuration from defaults, the optional config file at
// path, a .env file in the working directory and SALESDASH_* environment
// variables, in increasing order of precedence. A missing file is not an error.
func Parse(path string) (*Config, error) {
	conf := defaults()

	// a missing .env file is fine
	_ = godotenv.Load()

	if path != "" {
		if err := conf.parseFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(conf, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) parseFile(path string) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(content, c)
	case ".json", ".hujson":
		var standardized []byte
		standardized, err = hujson.Standardize(content)
		if err == nil {
			err = json.Unmarshal(standardized, c)
		}
	default:
		err = yaml.Unmarshal(content, c)
	}

	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// jsonDuration reads durations written as "5s" strings, like the YAML and TOML
// decoders do, or as nanosecond numbers.
type jsonDuration time.Duration

func (d *jsonDuration) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case float64:
		*d = jsonDuration(time.Duration(v))
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*d = jsonDuration(parsed)
	default:
		return fmt.Errorf("invalid duration %s", data)
	}

	return nil
}

func (c *DatasetConfig) UnmarshalJSON(data []byte) error {
	type plain DatasetConfig
	aux := struct {
		*plain
		Timeout *jsonDuration `json:"timeout"`
	}{
		plain:   (*plain)(c),
		Timeout: (*jsonDuration)(&c.Timeout),
	}

	return json.Unmarshal(data, &aux)
}

func (c *ServerConfig) UnmarshalJSON(data []byte) error {
	type plain ServerConfig
	aux := struct {
		*plain
		ReadHeaderTimeout *jsonDuration `json:"read_header_timeout"`
	}{
		plain:             (*plain)(c),
		ReadHeaderTimeout: (*jsonDuration)(&c.ReadHeaderTimeout),
	}

	return json.Unmarshal(data, &aux)
}

func (c *Config) validate() error {
	switch c.Preferences.Driver {
	case DriverSQLite, DriverFile:
	default:
		return fmt.Errorf("unsupported preferences driver %q", c.Preferences.Driver)
	}

	return nil
}

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Environment variable names surfaced in configuration-missing messages.
// Keep these in sync with the koanf keys below.
const (
	EnvStorageEndpoint  = "PATHSNAP_STORAGE_ENDPOINT"
	EnvStorageAccessKey = "PATHSNAP_STORAGE_ACCESSKEY"
	EnvStorageSecretKey = "PATHSNAP_STORAGE_SECRETKEY"
	EnvStorageBucket    = "PATHSNAP_STORAGE_BUCKET"
)

type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Snapshot SnapshotConfig `koanf:"snapshot" validate:"required"`
	Storage  *StorageConfig `koanf:"storage"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"readtimeout" validate:"required"`
	WriteTimeout int    `koanf:"writetimeout" validate:"required"`
	IdleTimeout  int    `koanf:"idletimeout" validate:"required"`
}

type SnapshotConfig struct {
	// Host identifies this host in the snapshot filename ({host}_data.json).
	Host string `koanf:"host" validate:"required"`
	// Script is the PATH enumeration script; resolved relative to Dir when
	// not absolute.
	Script string `koanf:"script" validate:"required"`
	// Dir is where snapshot files are written.
	Dir string `koanf:"dir" validate:"required"`
}

// StorageConfig holds the blob-store settings. The whole section is optional
// at startup; /upload-data reports which variable is missing at request time.
type StorageConfig struct {
	Endpoint  string `koanf:"endpoint"`
	Region    string `koanf:"region"`
	AccessKey string `koanf:"accesskey"`
	SecretKey string `koanf:"secretkey"`
	Bucket    string `koanf:"bucket"`
}

// Load reads the configuration from PATHSNAP_* environment variables using
// koanf, fills defaults and validates the result. Failures are fatal.
func Load() *Config {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")
	err := k.Load(env.Provider("PATHSNAP_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "PATHSNAP_")), "_", ".")
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load env variables")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	applyDefaults(cfg)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		logger.Fatal().Err(err).Msg("could not validate config")
	}

	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Primary.Env == "" {
		cfg.Primary.Env = "development"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8000"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Snapshot.Host == "" {
		cfg.Snapshot.Host = "unknown"
	}
	if cfg.Snapshot.Dir == "" {
		cfg.Snapshot.Dir = "."
	}
	if cfg.Snapshot.Script == "" {
		cfg.Snapshot.Script = "show-path.sh"
	}
	if !filepath.IsAbs(cfg.Snapshot.Script) {
		cfg.Snapshot.Script = filepath.Join(cfg.Snapshot.Dir, cfg.Snapshot.Script)
	}
}

// The methods below implement handler.Settings so handlers never read the
// environment ad hoc.

func (c *Config) HostID() string { return c.Snapshot.Host }

func (c *Config) DataDir() string { return c.Snapshot.Dir }

// SearchPath reads PATH live so each query reflects the current process
// environment.
func (c *Config) SearchPath() string { return os.Getenv("PATH") }

func (c *Config) StorageEndpoint() string {
	if c.Storage == nil {
		return ""
	}
	return c.Storage.Endpoint
}

func (c *Config) StorageAccessKey() string {
	if c.Storage == nil {
		return ""
	}
	return c.Storage.AccessKey
}

func (c *Config) StorageSecretKey() string {
	if c.Storage == nil {
		return ""
	}
	return c.Storage.SecretKey
}

func (c *Config) StorageBucket() string {
	if c.Storage == nil {
		return ""
	}
	return c.Storage.Bucket
}

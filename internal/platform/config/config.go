package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	DefaultStorageKey = "taskflows-data"
	FileName          = "taskflows.yaml"
	envPrefix         = "TASKFLOWS_"
	maxConfigFileSize = 1 << 20
)

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type Config struct {
	DataDir    string    `koanf:"-"`
	Backend    string    `koanf:"backend"`
	StorageKey string    `koanf:"storage_key"`
	DBPath     string    `koanf:"db_path"`
	Log        LogConfig `koanf:"log"`
}

// New returns the defaults for a data directory without reading any file or env.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{DataDir: dataDir}
	applyDefaults(&cfg)
	return cfg, nil
}

// Load layers <dataDir>/taskflows.yaml (or configPath when set) and TASKFLOWS_* env
// variables over the defaults. A missing default file is not an error. An empty
// dataDir resolves through ResolveDataDir.
//
//	TASKFLOWS_BACKEND     -> backend
//	TASKFLOWS_STORAGE_KEY -> storage_key
//	TASKFLOWS_LOG_LEVEL   -> log.level
func Load(dataDir, configPath string) (Config, error) {
	if dataDir == "" {
		resolved, err := ResolveDataDir()
		if err != nil {
			return Config{}, err
		}
		dataDir = resolved
	}
	k := koanf.New(".")

	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(dataDir, FileName)
	}
	content, err := readConfigFile(configPath, explicit)
	if err != nil {
		return Config{}, err
	}
	if content != nil {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.DataDir = dataDir
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveDataDir picks TASKFLOWS_DATA_DIR, then ~/.local/share/taskflows.
func ResolveDataDir() (string, error) {
	if custom := os.Getenv(envPrefix + "DATA_DIR"); custom != "" {
		return custom, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", fmt.Errorf("home directory not found")
	}
	return filepath.Join(home, ".local", "share", "taskflows"), nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unsupported backend %q", c.Backend)
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return fmt.Errorf("storage key is required")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log format %q", c.Log.Format)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Backend == "" {
		cfg.Backend = BackendFile
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = DefaultStorageKey
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "taskflows.db")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

func readConfigFile(path string, required bool) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil, nil
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return content, nil
}

// envKey maps TASKFLOWS_LOG_LEVEL to log.level and TASKFLOWS_STORAGE_KEY to storage_key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}

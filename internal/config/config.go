package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sonicdash/sonic/internal/theme"
)

const (
	DefaultAddr      = ":5001"
	DefaultDBPath    = "sonic.db"
	DefaultStaticDir = "static"
)

type File struct {
	Version int          `yaml:"version" json:"version" toml:"version"`
	Server  Server       `yaml:"server" json:"server" toml:"server"`
	Theme   theme.Config `yaml:"theme_config" json:"theme_config" toml:"theme_config"`
}

type Server struct {
	Addr         string `yaml:"addr,omitempty" json:"addr,omitempty" toml:"addr,omitempty"`
	DBPath       string `yaml:"db_path,omitempty" json:"db_path,omitempty" toml:"db_path,omitempty"`
	StaticDir    string `yaml:"static_dir,omitempty" json:"static_dir,omitempty" toml:"static_dir,omitempty"`
	MDNS         *bool  `yaml:"mdns,omitempty" json:"mdns,omitempty" toml:"mdns,omitempty"`
	MDNSInstance string `yaml:"mdns_instance,omitempty" json:"mdns_instance,omitempty" toml:"mdns_instance,omitempty"`
}

func (s Server) MDNSEnabled() bool {
	return s.MDNS == nil || *s.MDNS
}

// Default is the configuration used when no file is given.
func Default() File {
	return File{
		Version: 1,
		Server: Server{
			Addr:      DefaultAddr,
			DBPath:    DefaultDBPath,
			StaticDir: DefaultStaticDir,
		},
	}
}

func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	return Parse(data, path)
}

// Parse decodes a config file. The format follows the extension of source:
// .toml is TOML, everything else (YAML, JSON) goes through the YAML decoder.
func Parse(data []byte, source string) (File, error) {
	cfg := Default()
	cfg.Version = 0

	if strings.EqualFold(filepath.Ext(source), ".toml") {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse TOML in %q: %w", source, err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse YAML in %q: %w", source, err)
		}
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return cfg, fmt.Errorf("invalid config in %q: %s", source, strings.Join(errs, "; "))
	}
	cfg.fillDefaults()
	return cfg, nil
}

// Validate reports structural errors only. Theme problems that resolution
// can mask are reported by theme.Config.Lint instead.
func (cfg File) Validate() []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported config version %d", cfg.Version))
	}
	if addr := strings.TrimSpace(cfg.Server.Addr); addr != "" && strings.ContainsAny(addr, " \t\n") {
		errs = append(errs, fmt.Sprintf("server.addr %q is invalid", addr))
	}
	for id := range cfg.Theme.Profiles {
		if id == "" {
			errs = append(errs, "theme_config.profiles contains an empty profile id")
		}
	}
	return errs
}

func (cfg *File) fillDefaults() {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if strings.TrimSpace(cfg.Server.DBPath) == "" {
		cfg.Server.DBPath = DefaultDBPath
	}
	if strings.TrimSpace(cfg.Server.StaticDir) == "" {
		cfg.Server.StaticDir = DefaultStaticDir
	}
}

// ApplyEnv overrides server settings from SONIC_* environment variables.
func (cfg *File) ApplyEnv() {
	cfg.Server.Addr = envOrDefault("SONIC_SERVER_ADDR", cfg.Server.Addr)
	cfg.Server.DBPath = envOrDefault("SONIC_DB_PATH", cfg.Server.DBPath)
	cfg.Server.StaticDir = envOrDefault("SONIC_STATIC_DIR", cfg.Server.StaticDir)
	cfg.Server.MDNSInstance = envOrDefault("SONIC_MDNS_INSTANCE", cfg.Server.MDNSInstance)
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SONIC_MDNS_ENABLE"))) {
	case "false", "0", "no":
		off := false
		cfg.Server.MDNS = &off
	case "true", "1", "yes":
		on := true
		cfg.Server.MDNS = &on
	}
	cfg.fillDefaults()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

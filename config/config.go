package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/mazishark/mazishark/constants"
	"github.com/mazishark/mazishark/utils"
)

type Config struct {
	HTTP    HTTPConfig     `json:"http"`
	Data    DataConfig     `json:"data"`
	CORS    CORSConfig     `json:"cors"`
	Log     LogConfig      `json:"log"`
	Tracing *TracingConfig `json:"tracing,omitempty"`
}

type HTTPConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// DataConfig locates the habitat index asset. Path may be a local filesystem
// path or an s3://bucket/key URL. An empty Path means "search the default
// candidate locations in the bundle".
type DataConfig struct {
	Path string `json:"path"`
}

type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins"`
}

type LogConfig struct {
	Level string `json:"level"`
}

type TracingConfig struct {
	Exporter    string `json:"exporter"`
	Endpoint    string `json:"endpoint,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
}

// LoadConfig reads the optional JSON config file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv builds a config purely from the environment. This is the only
// config path available inside the serverless runtime, where no config file
// ships with the bundle.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables onto the config. Env wins over the
// config file; unset variables leave existing values alone.
func (c *Config) ApplyEnv() error {
	if v := dataPathFromEnv(); v != "" {
		c.Data.Path = v
	}
	if v, ok := os.LookupEnv(constants.EnvCORSAllowOrigins); ok {
		c.CORS.AllowOrigins = ParseOrigins(v)
	}
	if v := os.Getenv(constants.EnvHost); v != "" {
		c.HTTP.Host = v
	}
	port, err := utils.GetIntEnvVar(constants.EnvPort, c.HTTP.Port)
	if err != nil {
		return err
	}
	c.HTTP.Port = port
	if v := os.Getenv(constants.EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return nil
}

// dataPathFromEnv resolves DATA_PATH, honoring the legacy alias.
func dataPathFromEnv() string {
	if v := os.Getenv(constants.EnvDataPath); v != "" {
		return v
	}
	return os.Getenv(constants.EnvDataPathAlias)
}

// ParseOrigins splits a comma-separated origin list, dropping empty entries.
// An empty or unset value means allow all.
func ParseOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Origins returns the configured allowlist, defaulting to allow-all.
func (c *Config) Origins() []string {
	if len(c.CORS.AllowOrigins) == 0 {
		return []string{"*"}
	}
	return c.CORS.AllowOrigins
}

// Addr returns the listen address for the local server.
func (c *Config) Addr() string {
	host := c.HTTP.Host
	if host == "" {
		host = constants.DefaultHost
	}
	port := c.HTTP.Port
	if port == 0 {
		port = constants.DefaultPort
	}
	return host + ":" + strconv.Itoa(port)
}

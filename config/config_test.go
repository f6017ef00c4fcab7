package config

import (
	"os"
	"reflect"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cfgJSON := `{"http":{"host":"h","port":8081},"data":{"path":"data/h.json"},"cors":{"allow_origins":["https://a","https://b"]},"log":{"level":"debug"}}`
	tmp, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write([]byte(cfgJSON)); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	tmp.Close()

	c, err := LoadConfig(tmp.Name())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.HTTP.Host != "h" || c.HTTP.Port != 8081 {
		t.Errorf("unexpected HTTP: %+v", c.HTTP)
	}
	if c.Data.Path != "data/h.json" {
		t.Errorf("unexpected Data: %+v", c.Data)
	}
	if len(c.CORS.AllowOrigins) != 2 {
		t.Errorf("unexpected CORS: %+v", c.CORS)
	}
	if c.Log.Level != "debug" {
		t.Errorf("unexpected Log: %+v", c.Log)
	}
}

func TestLoadConfig_FileNotExist(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.json")
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmp, err := os.CreateTemp("", "bad.json")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write([]byte("{not json")); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	tmp.Close()

	if _, err := LoadConfig(tmp.Name()); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATA_PATH", "/srv/habitat_index_H.json")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a, https://b")
	t.Setenv("PORT", "9090")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Data.Path != "/srv/habitat_index_H.json" {
		t.Errorf("unexpected data path: %s", cfg.Data.Path)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowOrigins, []string{"https://a", "https://b"}) {
		t.Errorf("unexpected origins: %v", cfg.CORS.AllowOrigins)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("unexpected port: %d", cfg.HTTP.Port)
	}
}

func TestFromEnv_LegacyDataPathAlias(t *testing.T) {
	t.Setenv("MAZI_DATA_PATH", "/legacy/h.json")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Data.Path != "/legacy/h.json" {
		t.Errorf("alias not honored: %s", cfg.Data.Path)
	}
}

func TestFromEnv_DataPathWinsOverAlias(t *testing.T) {
	t.Setenv("DATA_PATH", "/new/h.json")
	t.Setenv("MAZI_DATA_PATH", "/legacy/h.json")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Data.Path != "/new/h.json" {
		t.Errorf("DATA_PATH should win: %s", cfg.Data.Path)
	}
}

func TestFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := FromEnv(); err == nil {
		t.Error("expected error for invalid PORT, got nil")
	}
}

func TestParseOrigins(t *testing.T) {
	tests := map[string]struct {
		in     string
		expect []string
	}{
		"single":     {in: "https://a", expect: []string{"https://a"}},
		"list":       {in: "https://a,https://b", expect: []string{"https://a", "https://b"}},
		"whitespace": {in: " https://a , https://b ", expect: []string{"https://a", "https://b"}},
		"star":       {in: "*", expect: []string{"*"}},
		"empty":      {in: "", expect: []string{"*"}},
		"commas":     {in: ",,", expect: []string{"*"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseOrigins(tc.in); !reflect.DeepEqual(got, tc.expect) {
				t.Errorf("ParseOrigins(%q) = %v, want %v", tc.in, got, tc.expect)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{}
	if got := cfg.Addr(); got != ":8080" {
		t.Errorf("default addr = %s", got)
	}
	cfg.HTTP.Host = "127.0.0.1"
	cfg.HTTP.Port = 9000
	if got := cfg.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("addr = %s", got)
	}
}

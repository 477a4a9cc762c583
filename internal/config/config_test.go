package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" || cfg.Store.Driver != DriverMemory {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Order.CurrencySymbol != "£" || cfg.REST.Timeout != 10*time.Second {
		t.Errorf("unexpected order/rest defaults %+v %+v", cfg.Order, cfg.REST)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PUBSTOCK_STORE_DRIVER", "rest")
	t.Setenv("PUBSTOCK_REST_URL", "https://example.supabase.co/rest/v1")
	t.Setenv("PUBSTOCK_ORDER_CURRENCY_SYMBOL", "€")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Driver != DriverREST || cfg.REST.URL != "https://example.supabase.co/rest/v1" || cfg.Order.CurrencySymbol != "€" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "pubstock.yaml")
	content := "http:\n  addr: \":9090\"\nstore:\n  driver: postgres\ndatabase:\n  url: postgres://localhost/pub\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" || cfg.Store.Driver != DriverPostgres || cfg.Database.URL != "postgres://localhost/pub" {
		t.Errorf("file not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{Store: StoreConfig{Driver: DriverMemory}}, false},
		{"postgres without url", Config{Store: StoreConfig{Driver: DriverPostgres}}, true},
		{"rest without url", Config{Store: StoreConfig{Driver: DriverREST}}, true},
		{"unknown driver", Config{Store: StoreConfig{Driver: "sqlite"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// chdir switches the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

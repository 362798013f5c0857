package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mxmauro/teaecb/crypto/tea"
	"github.com/mxmauro/teaecb/internal/config"
	"github.com/pion/logging"
)

// -----------------------------------------------------------------------------

func TestDefaults(t *testing.T) {
	var cfg config.Config

	cfg.Resolve(config.Flags{})
	if cfg.Message != config.DefaultMessage || cfg.Workers != 1 || !*cfg.ShowBlocks {
		t.Fatalf("unexpected defaults %+v", cfg)
	}

	key, err := cfg.TEAKey()
	if err != nil {
		t.Fatal(err)
	}
	if key != (tea.Key{0xA56BABCD, 0x000FF123, 0xDEADBEEF, 0x01234567}) {
		t.Fatalf("unexpected default key %08X", key)
	}

	level, err := cfg.Level()
	if err != nil {
		t.Fatal(err)
	}
	if level != logging.LogLevelError {
		t.Fatalf("unexpected default level %v", level)
	}
}

func TestLoadAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{"message":"from file","key":"12345678 9ABCDEF0 FEDCBA98 76543210","workers":4,"show_blocks":true}`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(config.Flags{
		Message:    "from flag",
		LogLevel:   "debug",
		HideBlocks: true,
	})

	if cfg.Message != "from flag" || cfg.Workers != 4 || *cfg.ShowBlocks {
		t.Fatalf("unexpected resolved config %+v", cfg)
	}
	key, err := cfg.TEAKey()
	if err != nil {
		t.Fatal(err)
	}
	if key != (tea.Key{0x12345678, 0x9ABCDEF0, 0xFEDCBA98, 0x76543210}) {
		t.Fatalf("unexpected key %08X", key)
	}
	if level, _ := cfg.Level(); level != logging.LogLevelDebug {
		t.Fatalf("unexpected level %v", level)
	}
}

func TestInvalidValues(t *testing.T) {
	cfg := config.Config{Key: "XYZ", LogLevel: "loud"}

	if _, err := cfg.TEAKey(); err == nil {
		t.Fatal("invalid hex key accepted")
	}
	cfg.Key = "A56BABCD"
	if _, err := cfg.TEAKey(); err == nil {
		t.Fatal("short key accepted")
	}
	if _, err := cfg.Level(); err == nil {
		t.Fatal("unknown log level accepted")
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file accepted")
	}
}

package universe

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"simlife/src/life"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(fn, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoadOptions(t *testing.T) {
	fn := writeConfig(t, `{"width": 20, "engine": "sparse", "density": 0.05, "interval": "150ms"}`)
	o, err := LoadOptions(fn, DefaultUniverseOptions)
	if err != nil {
		t.Fatal(err)
	}
	if o.Width != 20 || o.Height != DefHeight || o.Engine != life.StrategySparse || o.Density != 0.05 || o.Interval != 150*time.Millisecond {
		t.Fatalf("loaded %+v", o)
	}
}

func TestLoadOptionsKeepsInterval(t *testing.T) {
	o, err := LoadOptions(writeConfig(t, `{"width": 5}`), DefaultUniverseOptions)
	if err != nil {
		t.Fatal(err)
	}
	if o.Interval != DefSimulationInterval {
		t.Fatalf("interval %v, expected %v", o.Interval, DefSimulationInterval)
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "missing.json"), DefaultUniverseOptions); !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("expected not exist error, got %v", err)
	}

	if _, err := LoadOptions(writeConfig(t, `{"width": `), DefaultUniverseOptions); err == nil {
		t.Fatalf("expected the error on malformed JSON")
	}

	_, err := LoadOptions(writeConfig(t, `{"engine": "hex"}`), DefaultUniverseOptions)
	if !errors.Is(err, life.ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}

	if _, err := LoadOptions(writeConfig(t, `{"interval": "fast"}`), DefaultUniverseOptions); err == nil {
		t.Fatalf("expected the error on malformed interval")
	}

	if _, err := LoadOptions(writeConfig(t, `{"interval": 100}`), DefaultUniverseOptions); err == nil {
		t.Fatalf("expected the error on the interval without the unit")
	}

	if _, err := LoadOptions(writeConfig(t, `{"density": 2}`), DefaultUniverseOptions); err == nil {
		t.Fatalf("expected the error on density out of range")
	}
}

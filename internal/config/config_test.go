package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDirHonorsEnv(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("MBU_HOME", tmp)

	if got := Dir(); got != tmp {
		t.Errorf("Dir() = %q, want %q", got, tmp)
	}
	if got := FilePath(); got != filepath.Join(tmp, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("MBU_HOME", t.TempDir())
	Load()

	if got := Get(KeyStableVersion); got != "1.16.1" {
		t.Errorf("Get(%s) = %q, want %q", KeyStableVersion, got, "1.16.1")
	}
	if got := Get(KeyExperimentalVersion); got != "1.16.100" {
		t.Errorf("Get(%s) = %q, want %q", KeyExperimentalVersion, got, "1.16.100")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("MBU_HOME", t.TempDir())
	t.Setenv("MBU_FORMAT_VERSION_STABLE", "1.16.0")
	Load()

	if got := Get(KeyStableVersion); got != "1.16.0" {
		t.Errorf("Get(%s) = %q, want %q", KeyStableVersion, got, "1.16.0")
	}
}

func TestSetWritesFile(t *testing.T) {
	viper.Reset()
	tmp := t.TempDir()
	t.Setenv("MBU_HOME", tmp)
	Load()

	if err := Set(KeyNamespace, "my_addon"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(tmp, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if len(data) == 0 {
		t.Error("config file is empty")
	}
	if got := Get(KeyNamespace); got != "my_addon" {
		t.Errorf("Get(namespace) = %q, want %q", got, "my_addon")
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown(KeyGameDir) {
		t.Errorf("IsKnown(%q) = false", KeyGameDir)
	}
	if IsKnown("nope") {
		t.Error("IsKnown(nope) = true")
	}
}

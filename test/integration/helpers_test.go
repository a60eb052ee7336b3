//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/pack"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/workspace"
	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // MBU_HOME, holds config.yaml
	GameDir    string // MBU_GAME_DIR, a fake com.mojang folder
	ProjectDir string // project root holding the packs
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so every operation is sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		GameDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}

	t.Setenv("MBU_HOME", env.HomeDir)
	t.Setenv("MBU_GAME_DIR", env.GameDir)
	viper.Reset()
	t.Cleanup(viper.Reset)

	return env
}

// setupProject creates an add-on named name in env.ProjectDir and returns the
// resolved workspace.
func setupProject(t *testing.T, env *testEnv, name string) *workspace.Context {
	t.Helper()

	p, err := options.ResolveProject(options.Project{Name: name}, "")
	if err != nil {
		t.Fatalf("ResolveProject: %v", err)
	}
	if _, err := pack.CreateProject(env.ProjectDir, p); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	return resolve(t, env)
}

// resolve re-reads the workspace, as every command does.
func resolve(t *testing.T, env *testEnv) *workspace.Context {
	t.Helper()
	ctx, err := workspace.Resolve(env.ProjectDir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return ctx
}

// writeFile creates a file with content, creating parent dirs as needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

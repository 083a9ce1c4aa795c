package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config %s: %v", name, err)
	}
	return path
}

func TestRunBuildRunsEachProjectInOrder(t *testing.T) {
	base := t.TempDir()
	projA := filepath.Join(base, "ui")
	projB := filepath.Join(base, "icons")
	if err := os.MkdirAll(projA, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(projB, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestSprite(t, projA, "a.png", 8, 8)
	writeTestSprite(t, projB, "b.png", 8, 8)

	cfg := `
projects:
  - args:
      input: ` + projA + `
    width: 32
    height: 32
  - args:
      input: ` + projB + `
    width: 32
    height: 32
`
	configPath := writeConfig(t, base, ".spritesqueeze.yaml", cfg)

	opts := &CmdBuild{}
	opts.Args.Path = configPath

	if err := runBuild(opts); err != nil {
		t.Fatalf("runBuild: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projA, "atlas.png")); err != nil {
		t.Fatalf("project ui atlas not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projB, "atlas.png")); err != nil {
		t.Fatalf("project icons atlas not written: %v", err)
	}
}

func TestRunBuildBareListConfig(t *testing.T) {
	base := t.TempDir()
	proj := filepath.Join(base, "sprites")
	if err := os.MkdirAll(proj, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestSprite(t, proj, "a.png", 8, 8)

	cfg := `
- args:
    input: ` + proj + `
  width: 16
  height: 16
`
	configPath := writeConfig(t, base, "jobs.yaml", cfg)

	opts := &CmdBuild{}
	opts.Args.Path = configPath

	if err := runBuild(opts); err != nil {
		t.Fatalf("runBuild: %v", err)
	}
	if _, err := os.Stat(filepath.Join(proj, "atlas.png")); err != nil {
		t.Fatalf("atlas not written: %v", err)
	}
}

func TestRunBuildFiltersByProjectName(t *testing.T) {
	base := t.TempDir()
	projA := filepath.Join(base, "ui")
	projB := filepath.Join(base, "icons")
	if err := os.MkdirAll(projA, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(projB, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestSprite(t, projA, "a.png", 8, 8)
	writeTestSprite(t, projB, "b.png", 8, 8)

	cfg := `
projects:
  - args:
      input: ` + projA + `
    width: 32
    height: 32
  - args:
      input: ` + projB + `
    width: 32
    height: 32
`
	configPath := writeConfig(t, base, ".spritesqueeze.yaml", cfg)

	opts := &CmdBuild{Only: []string{"ui"}}
	opts.Args.Path = configPath

	if err := runBuild(opts); err != nil {
		t.Fatalf("runBuild: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projA, "atlas.png")); err != nil {
		t.Fatalf("selected project ui atlas not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projB, "atlas.png")); err == nil {
		t.Fatal("unselected project icons should not have been built")
	}
}

func TestRunBuildMissingConfigFails(t *testing.T) {
	base := t.TempDir()

	opts := &CmdBuild{}
	opts.Args.Path = filepath.Join(base, "does-not-exist.yaml")

	if err := runBuild(opts); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestRunBuildEmptyProjectListFails(t *testing.T) {
	base := t.TempDir()
	configPath := writeConfig(t, base, "empty.yaml", "projects: []\n")

	opts := &CmdBuild{}
	opts.Args.Path = configPath

	if err := runBuild(opts); err == nil {
		t.Fatal("expected error for empty project list")
	}
}

func TestRunBuildUnknownProjectNameFails(t *testing.T) {
	base := t.TempDir()
	proj := filepath.Join(base, "sprites")
	if err := os.MkdirAll(proj, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestSprite(t, proj, "a.png", 8, 8)

	cfg := `
projects:
  - args:
      input: ` + proj + `
    width: 16
    height: 16
`
	configPath := writeConfig(t, base, ".spritesqueeze.yaml", cfg)

	opts := &CmdBuild{Only: []string{"nonexistent"}}
	opts.Args.Path = configPath

	if err := runBuild(opts); err == nil {
		t.Fatal("expected error when no project matches --project filter")
	}
}

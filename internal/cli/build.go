package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

const defaultConfigName = ".spritesqueeze.yaml"

// CmdBuild runs a sequence of pack jobs read from a config file. Jobs run
// one after another, in file order; nothing here schedules or caches
// work across invocations.
type CmdBuild struct {
	Args struct {
		Path string `positional-arg-name:"path" description:"Path to config file or directory (default: ./.spritesqueeze.yaml)"`
	} `positional-args:"yes"`

	Only []string `short:"p" long:"project" description:"Build only selected project names (repeatable)" yaml:"-"`
}

// Execute runs the build command.
func (c *CmdBuild) Execute(args []string) error {
	return runBuild(c)
}

func runBuild(opts *CmdBuild) error {
	configPath, err := resolveConfigPath(opts.Args.Path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	projects, err := parsePackProjects(data)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if len(projects) == 0 {
		return fmt.Errorf("no projects found in %q", configPath)
	}

	baseDir := filepath.Dir(configPath)
	selected, err := filterProjects(projects, opts.Only, baseDir)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no projects selected")
	}

	for i := range selected {
		if err := runPack(&selected[i]); err != nil {
			return fmt.Errorf("project %d (%s): %w", i, selected[i].Args.Input, err)
		}
	}

	return nil
}

func resolveConfigPath(arg string) (string, error) {
	if strings.TrimSpace(arg) == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get cwd: %w", err)
		}
		path := filepath.Join(cwd, defaultConfigName)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config not found: %s", path)
		}
		return path, nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		return "", fmt.Errorf("config path: %w", err)
	}
	if info.IsDir() {
		path := filepath.Join(arg, defaultConfigName)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config not found: %s", path)
		}
		return path, nil
	}

	return arg, nil
}

// parsePackProjects parses either a `projects:` document or a bare list.
func parsePackProjects(data []byte) ([]CmdPack, error) {
	var doc struct {
		Projects []CmdPack `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Projects) > 0 {
		return doc.Projects, nil
	}

	var list []CmdPack
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, err
	}

	return list, nil
}

func filterProjects(projects []CmdPack, only []string, baseDir string) ([]CmdPack, error) {
	for i := range projects {
		if err := defaults.Set(&projects[i]); err != nil {
			return nil, fmt.Errorf("apply defaults: %w", err)
		}
		normalizeProjectPaths(&projects[i], baseDir)
	}
	if len(only) == 0 {
		return projects, nil
	}

	onlySet := make(map[string]struct{}, len(only))
	for _, name := range only {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		onlySet[name] = struct{}{}
	}
	if len(onlySet) == 0 {
		return nil, fmt.Errorf("no valid --project values")
	}

	out := make([]CmdPack, 0, len(projects))
	for _, cfg := range projects {
		name := filepath.Base(strings.TrimSuffix(cfg.Args.Input, "/"))
		if _, ok := onlySet[name]; ok {
			out = append(out, cfg)
		}
	}

	return out, nil
}

func normalizeProjectPaths(cfg *CmdPack, baseDir string) {
	cfg.Args.Input = resolveRelativePath(baseDir, cfg.Args.Input)
	cfg.OutputTexture = resolveRelativePath(baseDir, cfg.OutputTexture)
	cfg.OutputInfo = resolveRelativePath(baseDir, cfg.OutputInfo)
}

func resolveRelativePath(baseDir, path string) string {
	if strings.TrimSpace(path) == "" {
		return path
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

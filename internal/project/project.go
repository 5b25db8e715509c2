// Package project drives a single stm32pio project directory through its
// lifecycle: config initialization, CubeMX code generation, PlatformIO
// project creation and patching, and cleanup.
package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/stm32pio/stm32pio/internal/cubemx"
	"github.com/stm32pio/stm32pio/internal/defs"
	"github.com/stm32pio/stm32pio/internal/logging"
	"github.com/stm32pio/stm32pio/internal/platformio"
	"github.com/stm32pio/stm32pio/internal/settings"
)

var (
	execCommand = exec.CommandContext
	lookPath    = exec.LookPath
)

// generator runs CubeMX against a command script.
type generator interface {
	Run(ctx context.Context, scriptPath string) (string, error)
}

// pioRunner initializes a PlatformIO project in a directory.
type pioRunner interface {
	ProjectInit(ctx context.Context, dir, board string) (string, error)
}

// Project is one STM32 project directory together with its settings.
type Project struct {
	root      string
	logger    *slog.Logger
	manager   *settings.Manager
	generator generator
	pio       pioRunner
}

// NewProject opens the project at root, loading stm32pio.ini on top of
// the defaults when the file exists.
func NewProject(root string, logger *slog.Logger) (*Project, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}

	manager := settings.NewManager(abs)
	if _, err := manager.Load(); err != nil {
		return nil, err
	}
	cfg := manager.Config()

	return &Project{
		root:      abs,
		logger:    logger.With(logging.OpKey, filepath.Base(abs)),
		manager:   manager,
		generator: cubemx.Runner{CubeMXCmd: cfg.App.CubeMXCmd, JavaCmd: cfg.App.JavaCmd},
		pio:       platformio.NewClient(cfg.App.PlatformIOCmd),
	}, nil
}

// Root returns the absolute project directory.
func (p *Project) Root() string { return p.root }

// Config returns the current merged configuration.
func (p *Project) Config() settings.Config { return p.manager.Config() }

// Manager exposes the settings manager for callers that need to persist
// configuration changes.
func (p *Project) Manager() *settings.Manager { return p.manager }

// Init discovers the .ioc file, records it (and the board, when given)
// in the configuration and writes stm32pio.ini.
func (p *Project) Init(board string) error {
	ioc, err := p.iocFile()
	if err != nil {
		return err
	}

	if p.manager.Config().Project.InspectIOC {
		for _, warning := range p.inspectIOC(ioc) {
			p.logger.Warn(warning)
		}
	}

	if err := p.manager.Update(func(c *settings.Config) {
		c.Project.IOCFile = filepath.Base(ioc)
		if board != "" {
			c.Project.Board = board
		}
	}); err != nil {
		return err
	}
	if err := p.manager.Save(); err != nil {
		return err
	}
	p.logger.Info("project initialized", "config", p.manager.Path())
	return nil
}

// Generate renders the CubeMX command script for this project and runs
// the generator headlessly. The tool's output decides success, not its
// exit code.
func (p *Project) Generate(ctx context.Context) error {
	ioc, err := p.iocFile()
	if err != nil {
		return err
	}

	script, err := os.CreateTemp("", "stm32pio-cubemx-script-*")
	if err != nil {
		return fmt.Errorf("create CubeMX script: %w", err)
	}
	defer os.Remove(script.Name())

	content := p.renderScript(ioc)
	if _, err := script.WriteString(content); err != nil {
		script.Close()
		return fmt.Errorf("write CubeMX script: %w", err)
	}
	if err := script.Close(); err != nil {
		return fmt.Errorf("write CubeMX script: %w", err)
	}

	p.logger.Info("starting CubeMX code generation")
	output, err := p.generator.Run(ctx, script.Name())
	p.logger.Debug("CubeMX output", "output", output)
	if err != nil {
		p.logger.Error("CubeMX code generation failed", logging.ErrAttr(p.logger, err))
		return fmt.Errorf("code generation: %w", err)
	}
	p.logger.Info("CubeMX code generated")
	return nil
}

// renderScript substitutes the project paths into the configured CubeMX
// script template.
func (p *Project) renderScript(iocPath string) string {
	return strings.NewReplacer(
		"${ioc_file_absolute_path}", iocPath,
		"${project_dir_absolute_path}", p.root,
	).Replace(p.manager.Config().Project.CubeMXScriptContent)
}

// PIOInit creates the PlatformIO project for the configured board.
func (p *Project) PIOInit(ctx context.Context) error {
	board := p.manager.Config().Project.Board
	if board == "" {
		return ErrBoardNotSet
	}

	p.logger.Info("initializing PlatformIO project", "board", board)
	output, err := p.pio.ProjectInit(ctx, p.root, board)
	p.logger.Debug("PlatformIO output", "output", output)
	if err != nil {
		return err
	}
	p.logger.Info("PlatformIO project initialized")
	return nil
}

// Patch merges the configured patch fragment into platformio.ini so the
// build picks up the CubeMX directory layout, then drops the stock
// 'include' directory when it is empty.
func (p *Project) Patch() error {
	pioIniPath := filepath.Join(p.root, defs.PlatformIOINI)
	if !fileExists(pioIniPath) {
		return ErrNotPIOInitialized
	}

	target, err := ini.Load(pioIniPath)
	if err != nil {
		return fmt.Errorf("parse %s: %w", defs.PlatformIOINI, err)
	}
	patch, err := ini.Load([]byte(p.manager.Config().Project.PlatformIOIniPatchContent))
	if err != nil {
		return fmt.Errorf("parse patch content: %w", err)
	}

	for _, sec := range patch.Sections() {
		if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}
		tgt := target.Section(sec.Name())
		for _, key := range sec.Keys() {
			tgt.Key(key.Name()).SetValue(key.Value())
		}
	}
	if err := target.SaveTo(pioIniPath); err != nil {
		return fmt.Errorf("save %s: %w", defs.PlatformIOINI, err)
	}

	include := filepath.Join(p.root, "include")
	if entries, err := os.ReadDir(include); err == nil && len(entries) == 0 {
		if err := os.Remove(include); err != nil {
			p.logger.Warn("cannot remove empty 'include' directory", "error", err)
		}
	}

	p.logger.Info("platformio.ini patched")
	return nil
}

// Clean removes generated artifacts. With cleanup_use_git enabled it
// delegates to git clean, otherwise it deletes everything in the project
// root except the .ioc file and the cleanup_ignore entries.
func (p *Project) Clean(ctx context.Context) error {
	cfg := p.manager.Config()

	if cfg.Project.CleanupUseGit {
		cmd := execCommand(ctx, "git", "clean", "-fdx")
		cmd.Dir = p.root
		output, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("git clean: %w: %s", err, strings.TrimSpace(string(output)))
		}
		p.logger.Info("project cleaned with git", "output", strings.TrimSpace(string(output)))
		return nil
	}

	keep := make(map[string]bool)
	for _, line := range strings.Split(cfg.Project.CleanupIgnore, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			keep[line] = true
		}
	}
	if ioc, err := p.iocFile(); err == nil {
		keep[filepath.Base(ioc)] = true
	}

	entries, err := os.ReadDir(p.root)
	if err != nil {
		return fmt.Errorf("read project directory: %w", err)
	}
	for _, entry := range entries {
		if keep[entry.Name()] {
			continue
		}
		if err := os.RemoveAll(filepath.Join(p.root, entry.Name())); err != nil {
			return fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
		p.logger.Debug("removed", "path", entry.Name())
	}
	p.logger.Info("project cleaned")
	return nil
}

// ToolCheck is the resolution result for one configured external tool.
type ToolCheck struct {
	Name string // tool label (platformio, cubemx, java)
	Cmd  string // configured command
	Err  error  // nil when the command resolves to an executable
}

// OK reports whether the tool resolved.
func (c ToolCheck) OK() bool { return c.Err == nil }

// Validate checks that each configured external tool resolves to an
// executable, without running anything.
func (p *Project) Validate() []ToolCheck {
	cfg := p.manager.Config()
	return []ToolCheck{
		resolveTool("platformio", cfg.App.PlatformIOCmd, false),
		resolveTool("cubemx", cfg.App.CubeMXCmd, false),
		resolveTool("java", cfg.App.JavaCmd, true),
	}
}

// resolveTool resolves a configured command either on PATH or as a file
// path. Optional tools may carry the explicit unavailable sentinel.
func resolveTool(name, cmd string, optional bool) ToolCheck {
	check := ToolCheck{Name: name, Cmd: cmd}
	switch {
	case cmd == "":
		check.Err = fmt.Errorf("%s command is not configured", name)
	case optional && settings.IsNone(cmd):
		// Deliberately disabled, counts as resolved.
	case strings.ContainsRune(cmd, os.PathSeparator) || strings.ContainsRune(cmd, '/'):
		info, err := os.Stat(cmd)
		if err != nil {
			check.Err = fmt.Errorf("%s: %w", name, err)
		} else if info.IsDir() {
			check.Err = fmt.Errorf("%s: %s is a directory", name, cmd)
		}
	default:
		if _, err := lookPath(cmd); err != nil {
			check.Err = fmt.Errorf("%s: %w", name, err)
		}
	}
	return check
}

package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvasko/sysforge/internal/menu"
	"github.com/nvasko/sysforge/internal/task"
	"github.com/nvasko/sysforge/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	RootView   string
	WorkDir    string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	workDir, err := resolveWorkDir(cfg.WorkDir)
	if err != nil {
		return fmt.Errorf("resolve work directory: %w", err)
	}
	rootView := menu.MainMenu
	if cfg.RootView != "" {
		view, ok := menu.ViewByName(cfg.RootView)
		if !ok {
			return fmt.Errorf("unknown root view %q", cfg.RootView)
		}
		rootView = view
	}
	registry := task.DefaultRegistry(workDir)
	model := ui.NewModel(registry, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, rootView)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// resolveWorkDir expands and creates the snapshot/ISO work directory.
func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".local", "share", "sysforge")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

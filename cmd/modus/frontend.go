package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/modus/editor"
	"github.com/iw2rmb/modus/internal/config"
	"github.com/iw2rmb/modus/internal/fileio"
	"github.com/iw2rmb/modus/internal/termcell"
	"github.com/iw2rmb/modus/session"
)

// model hosts the editor component as a Bubble Tea program.
type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func editorConfig(cfg config.Config, doc fileio.Document, logger *log.Logger) editor.Config {
	return editor.Config{
		Text:         doc.Text,
		Path:         doc.Path,
		Storage:      fileio.StoreFor(doc),
		Logger:       logger,
		ShowLineNums: cfg.LineNumbers,
		TabWidth:     cfg.TabWidth,
		Style: editor.PaletteStyle(editor.Palette{
			Gutter:        cfg.Theme.Gutter,
			LineNumActive: cfg.Theme.LineNumberActive,
			StatusBar:     cfg.Theme.StatusBar,
			StatusError:   cfg.Theme.StatusError,
		}),
	}
}

func runTea(ctx context.Context, cfg config.Config, doc fileio.Document, logger *log.Logger) error {
	p := tea.NewProgram(model{editor: editor.New(editorConfig(cfg, doc, logger))},
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("tea: %w", err)
	}
	return nil
}

func tcellTheme(cfg config.Config) termcell.Theme {
	if !cfg.Color {
		return termcell.Theme{StatusMode: tcell.StyleDefault.Reverse(true), StatusBar: tcell.StyleDefault.Reverse(true), StatusError: tcell.StyleDefault.Reverse(true)}
	}
	return termcell.PaletteTheme(termcell.Palette{
		Gutter:        cfg.Theme.Gutter,
		LineNumActive: cfg.Theme.LineNumberActive,
		StatusBar:     cfg.Theme.StatusBar,
		StatusError:   cfg.Theme.StatusError,
	})
}

func runTcell(ctx context.Context, cfg config.Config, doc fileio.Document, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer screen.Fini()

	sess := session.New(doc.Text, session.Options{
		Path:        doc.Path,
		Storage:     fileio.StoreFor(doc),
		Logger:      logger,
		TabWidth:    cfg.TabWidth,
		LineNumbers: cfg.LineNumbers,
	})
	return termcell.Run(ctx, screen, sess, tcellTheme(cfg))
}

// Package app owns the terminal lifecycle and the single-threaded run loop:
// block on the next input event, dispatch it to the editor, render, repeat
// until the editor reports it is done.
package app

import (
	"runtime"

	"github.com/gdamore/tcell/v2"

	"github.com/zafkar/rudit/internal/config"
	"github.com/zafkar/rudit/internal/editor"
	"github.com/zafkar/rudit/internal/logger"
)

// App is the top-level runtime for rudit.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	runtime.LockOSThread()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Editor.Debug); err != nil {
		return err
	}
	defer logger.Close()

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	if cfg.Editor.UseMouse {
		s.EnableMouse()
	}
	if cfg.Editor.UsePaste {
		s.EnablePaste()
	}

	ed := editor.New(cfg)
	if len(a.args) > 0 {
		if err := ed.OpenFile(a.args[0]); err != nil {
			return err
		}
		logger.Info("opened document", "path", a.args[0])
	}
	ed.SetSize(s.Size())

	ed.Render(s)
	for !ed.Done() {
		switch ev := s.PollEvent().(type) {
		case *tcell.EventKey:
			if ed.HandleKey(ev) {
				continue
			}
		case *tcell.EventMouse:
			ed.HandleMouse(ev)
		case *tcell.EventResize:
			ed.SetSize(ev.Size())
			s.Sync()
		}
		ed.Render(s)
	}
	return nil
}

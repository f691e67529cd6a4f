package editor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/zafkar/rudit/internal/buffer"
	"github.com/zafkar/rudit/internal/command"
	"github.com/zafkar/rudit/internal/config"
	"github.com/zafkar/rudit/internal/logger"
)

// Mode is the controller's interaction state. ModeInit exists only until the
// first layout pass; ModeClosed is terminal and stops event processing.
type Mode int

const (
	ModeInit Mode = iota
	ModeEdit
	ModeCommand
	ModeClosed
)

const (
	actionQuit         = "quit"
	actionMoveUp       = "move_up"
	actionMoveDown     = "move_down"
	actionMoveLeft     = "move_left"
	actionMoveRight    = "move_right"
	actionPageUp       = "page_up"
	actionPageDown     = "page_down"
	actionDeleteBack   = "delete_back"
	actionDeleteFront  = "delete_front"
	actionDeleteAll    = "delete_all"
	actionSave         = "save"
	actionEnterCommand = "enter_command"
	actionEnterEdit    = "enter_edit"

	// A binding value of "command <line>" runs <line> through the command
	// grammar, so arbitrary grammar commands can live in the keymap.
	commandActionPrefix = "command "
)

type keymapSet struct {
	edit    map[string]string
	command map[string]string
}

// Editor owns the two line buffers and routes input events to them. The edit
// buffer holds the document; the command buffer is the one-line input for
// the command language. Which one receives text follows the mode.
type Editor struct {
	editBuf  *buffer.Buffer
	cmdBuf   *buffer.Buffer
	mode     Mode
	keymap   keymapSet
	filename string
	termSize buffer.Pos

	statusMessage string
	lastKeyCombo  string
	needFullClear bool

	styleEdit    tcell.Style
	styleCommand tcell.Style
	styleStatus  tcell.Style

	actionHook func(action string) // test hook
}

func New(cfg config.Config) *Editor {
	edit := make(map[string]string, len(cfg.Keymap.Edit))
	for k, v := range cfg.Keymap.Edit {
		edit[k] = v
	}
	cmd := make(map[string]string, len(cfg.Keymap.Command))
	for k, v := range cfg.Keymap.Command {
		cmd[k] = v
	}
	editFg := parseColor(cfg.Theme.EditForeground, tcell.ColorWhite)
	editBg := parseColor(cfg.Theme.EditBackground, tcell.ColorBlack)
	cmdFg := parseColor(cfg.Theme.CommandForeground, tcell.ColorBlack)
	cmdBg := parseColor(cfg.Theme.CommandBackground, tcell.ColorYellow)
	statusFg := parseColor(cfg.Theme.StatusForeground, tcell.ColorWhite)
	statusBg := parseColor(cfg.Theme.StatusBackground, tcell.ColorGray)
	return &Editor{
		editBuf:      buffer.New(),
		cmdBuf:       buffer.New(),
		mode:         ModeInit,
		keymap:       keymapSet{edit: edit, command: cmd},
		styleEdit:    tcell.StyleDefault.Foreground(editFg).Background(editBg),
		styleCommand: tcell.StyleDefault.Foreground(cmdFg).Background(cmdBg),
		styleStatus:  tcell.StyleDefault.Foreground(statusFg).Background(statusBg),
	}
}

// OpenFile loads path into the edit buffer and remembers it as the document
// path. A file that does not exist yet starts an empty document under that
// name.
func (e *Editor) OpenFile(path string) error {
	buf, err := buffer.LoadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			buf = buffer.New()
		} else {
			return err
		}
	}
	e.editBuf = buf
	e.filename = path
	e.updateLayout()
	return nil
}

func (e *Editor) Done() bool { return e.mode == ModeClosed }

func (e *Editor) Mode() Mode       { return e.mode }
func (e *Editor) Filename() string { return e.filename }

func (e *Editor) StatusMessage() string { return e.statusMessage }

func (e *Editor) EditBuffer() *buffer.Buffer    { return e.editBuf }
func (e *Editor) CommandBuffer() *buffer.Buffer { return e.cmdBuf }

// SetSize records the terminal size and recomputes the layout. The very
// first layout pass moves the controller out of ModeInit.
func (e *Editor) SetSize(width, height int) {
	e.termSize = buffer.FromCell(width, height)
	e.updateLayout()
}

func (e *Editor) setMode(mode Mode) {
	e.mode = mode
	e.updateLayout()
}

// updateLayout partitions the terminal between the two buffers: the bottom
// row is the status line, the command buffer grows from just above it to fit
// its content (command mode only), the edit buffer takes the rest.
func (e *Editor) updateLayout() {
	if e.mode == ModeInit {
		e.mode = ModeEdit
	}
	w, h := e.termSize.X, e.termSize.Y

	cmdHeight := 0
	if e.mode == ModeCommand {
		// An empty command buffer still shows one row for its implicit
		// empty line, otherwise the prompt would have nowhere to go.
		cmdHeight = min(max(0, h-1), max(1, e.cmdBuf.Len()))
	}
	e.cmdBuf.SetViewportSize(buffer.Pos{X: w, Y: cmdHeight})
	e.cmdBuf.SetOrigin(buffer.Pos{X: 0, Y: max(0, h-1-cmdHeight)})

	e.editBuf.SetViewportSize(buffer.Pos{X: w, Y: max(0, h-1-cmdHeight)})
	e.editBuf.SetOrigin(buffer.Pos{})

	e.needFullClear = true
}

func (e *Editor) activeBuffer() *buffer.Buffer {
	if e.mode == ModeCommand {
		return e.cmdBuf
	}
	return e.editBuf
}

func (e *Editor) setStatus(msg string) {
	e.statusMessage = msg
}

// HandleKey resolves a key press against the active mode's keymap and
// applies the bound action, falling back to literal insertion for unbound
// keys. Returns true when the editor is done and the run loop should exit.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	if e.mode == ModeClosed {
		return true
	}
	chord := keyString(ev)
	e.lastKeyCombo = chord
	e.statusMessage = ""

	keymap := e.keymap.edit
	if e.mode == ModeCommand {
		keymap = e.keymap.command
	}
	if action, ok := keymap[chord]; ok {
		return e.execAction(action)
	}

	switch {
	case ev.Key() == tcell.KeyEnter:
		if e.mode == ModeCommand {
			e.runCommandLine(e.cmdBuf.Contents())
			e.cmdBuf.Clear()
			if e.mode == ModeCommand {
				e.setMode(ModeEdit)
			}
		} else {
			e.editBuf.SplitLine()
			e.needFullClear = true
		}
	case ev.Key() == tcell.KeyRune:
		e.insertText(string(ev.Rune()))
	default:
		// Unmapped special keys insert their name rather than being
		// dropped silently.
		e.insertText(chord)
	}
	return e.mode == ModeClosed
}

func (e *Editor) insertText(text string) {
	if err := e.activeBuffer().InsertText(text); err != nil {
		// Unreachable while MoveTo is the only cursor mutator.
		logger.Error("insert failed", "err", err, "text", text)
	}
}

func (e *Editor) execAction(action string) bool {
	if e.actionHook != nil {
		e.actionHook(action)
	}
	if line, ok := strings.CutPrefix(action, commandActionPrefix); ok {
		e.runCommandLine(line)
		return e.mode == ModeClosed
	}
	buf := e.activeBuffer()
	switch action {
	case actionQuit:
		e.setMode(ModeClosed)
		return true
	case actionMoveUp:
		buf.MoveUp()
	case actionMoveDown:
		buf.MoveDown()
	case actionMoveLeft:
		buf.MoveLeftBy(1)
	case actionMoveRight:
		buf.MoveRightBy(1)
	case actionPageUp:
		buf.MoveUpN(max(0, buf.ViewportSize().Y-1))
	case actionPageDown:
		buf.MoveDownN(max(0, buf.ViewportSize().Y-1))
	case actionDeleteBack:
		buf.DeleteBack(1)
		e.needFullClear = true
	case actionDeleteFront:
		buf.DeleteFront(1)
		e.needFullClear = true
	case actionDeleteAll:
		buf.Clear()
		e.needFullClear = true
	case actionSave:
		e.saveDocument()
	case actionEnterCommand:
		if e.mode == ModeEdit {
			e.setMode(ModeCommand)
		}
	case actionEnterEdit:
		if e.mode == ModeCommand {
			e.setMode(ModeEdit)
		}
	default:
		e.setStatus("unknown action: " + action)
		logger.Warn("unknown action in keymap", "action", action)
	}
	return false
}

// saveDocument persists the edit buffer to the current document path. With
// no path set it seeds the command buffer with a save_as prompt instead, so
// the user supplies one.
func (e *Editor) saveDocument() {
	if e.filename == "" {
		e.cmdBuf = buffer.Load("save_as ")
		e.cmdBuf.MoveLineEnd()
		e.setMode(ModeCommand)
		return
	}
	if err := e.editBuf.Save(e.filename); err != nil {
		e.setStatus(err.Error())
		logger.Error("save failed", "path", e.filename, "err", err)
		return
	}
	e.setStatus(fmt.Sprintf("written %s", e.filename))
	logger.Info("document saved", "path", e.filename)
}

func (e *Editor) runCommandLine(line string) {
	cmd, err := command.Parse(line)
	if err != nil {
		e.setStatus(err.Error())
		logger.Warn("command rejected", "input", line, "err", err)
		return
	}
	e.execCommand(cmd)
}

func (e *Editor) execCommand(cmd command.Command) {
	switch cmd.Kind {
	case command.SetFilename:
		e.filename = cmd.Arg
		if cmd.Arg == "" {
			e.setStatus("filename cleared")
		} else {
			e.setStatus("filename set to " + cmd.Arg)
		}
	case command.SaveAs:
		e.filename = cmd.Arg
		if err := e.editBuf.Save(e.filename); err != nil {
			e.setStatus(err.Error())
			logger.Error("save failed", "path", e.filename, "err", err)
			return
		}
		e.setStatus(fmt.Sprintf("written %s", e.filename))
		logger.Info("document saved", "path", e.filename)
	}
}

// HandleMouse maps wheel and primary-button events onto the edit buffer.
// The command buffer ignores the mouse entirely.
func (e *Editor) HandleMouse(ev *tcell.EventMouse) {
	if e.mode != ModeEdit {
		return
	}
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		e.editBuf.MoveUp()
	case ev.Buttons()&tcell.WheelDown != 0:
		e.editBuf.MoveDown()
	case ev.Buttons()&tcell.Button1 != 0:
		x, y := ev.Position()
		e.editBuf.MoveRelative(buffer.FromCell(x, y).Sub(e.editBuf.Origin()))
	}
}

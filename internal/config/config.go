package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Keymap holds the two chord-to-action tables, one per mode. A value is an
// action name ("move_up", "quit", ...) or "command <line>" to bind a
// command-language line to a chord.
type Keymap struct {
	Edit    map[string]string `toml:"edit"`
	Command map[string]string `toml:"command"`
}

type EditorOptions struct {
	UseMouse bool `toml:"use-mouse"`
	UsePaste bool `toml:"use-paste"`
	Debug    bool `toml:"debug"`
}

type Theme struct {
	EditForeground    string `toml:"edit-foreground"`
	EditBackground    string `toml:"edit-background"`
	CommandForeground string `toml:"command-foreground"`
	CommandBackground string `toml:"command-background"`
	StatusForeground  string `toml:"status-foreground"`
	StatusBackground  string `toml:"status-background"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
	Keymap Keymap        `toml:"keymap"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			UseMouse: true,
			UsePaste: true,
		},
		Theme: Theme{
			EditForeground:    "#B3B1AD",
			EditBackground:    "#0A0E14",
			CommandForeground: "#0A0E14",
			CommandBackground: "#E6B450",
			StatusForeground:  "#B3B1AD",
			StatusBackground:  "#0F1419",
		},
		Keymap: Keymap{
			Edit: map[string]string{
				"up":        "move_up",
				"down":      "move_down",
				"left":      "move_left",
				"right":     "move_right",
				"pgup":      "page_up",
				"pgdn":      "page_down",
				"backspace": "delete_back",
				"del":       "delete_front",
				"esc":       "enter_command",
				"ctrl+q":    "quit",
				"ctrl+s":    "save",
				"ctrl+u":    "delete_all",
			},
			Command: map[string]string{
				"up":        "move_up",
				"down":      "move_down",
				"left":      "move_left",
				"right":     "move_right",
				"pgup":      "page_up",
				"pgdn":      "page_down",
				"backspace": "delete_back",
				"del":       "delete_front",
				"esc":       "enter_edit",
				"ctrl+q":    "quit",
				"ctrl+u":    "delete_all",
			},
		},
	}
}

// Load reads the user config and merges it over the defaults. A missing
// config file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	md, err := toml.Decode(string(data), &userCfg)
	if err != nil {
		return cfg, err
	}

	// The booleans default to true, so a zero check cannot tell "absent"
	// from "false"; only keys the file actually defines override.
	if md.IsDefined("editor", "use-mouse") {
		cfg.Editor.UseMouse = userCfg.Editor.UseMouse
	}
	if md.IsDefined("editor", "use-paste") {
		cfg.Editor.UsePaste = userCfg.Editor.UsePaste
	}
	if md.IsDefined("editor", "debug") {
		cfg.Editor.Debug = userCfg.Editor.Debug
	}
	if userCfg.Theme.EditForeground != "" {
		cfg.Theme.EditForeground = userCfg.Theme.EditForeground
	}
	if userCfg.Theme.EditBackground != "" {
		cfg.Theme.EditBackground = userCfg.Theme.EditBackground
	}
	if userCfg.Theme.CommandForeground != "" {
		cfg.Theme.CommandForeground = userCfg.Theme.CommandForeground
	}
	if userCfg.Theme.CommandBackground != "" {
		cfg.Theme.CommandBackground = userCfg.Theme.CommandBackground
	}
	if userCfg.Theme.StatusForeground != "" {
		cfg.Theme.StatusForeground = userCfg.Theme.StatusForeground
	}
	if userCfg.Theme.StatusBackground != "" {
		cfg.Theme.StatusBackground = userCfg.Theme.StatusBackground
	}
	if userCfg.Keymap.Edit != nil {
		for k, v := range userCfg.Keymap.Edit {
			cfg.Keymap.Edit[k] = v
		}
	}
	if userCfg.Keymap.Command != nil {
		for k, v := range userCfg.Keymap.Command {
			cfg.Keymap.Command[k] = v
		}
	}

	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("RUDIT_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "rudit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rudit"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

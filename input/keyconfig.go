package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Key names for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

var specialKeyNames = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
}

type keyFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeyConfig parses the [keys] section of a TOML file into a sparse override table
// Other sections are ignored; an absent section yields an empty table
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var doc keyFile
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		Runes: make(map[rune]Intent),
		Keys:  make(map[tcell.Key]Intent),
	}

	for keyStr, actionName := range doc.Keys {
		intent, err := ParseAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] %q: %w", keyStr, err)
		}

		name := strings.ToLower(keyStr)
		if k, ok := specialKeyNames[name]; ok {
			kt.Keys[k] = intent
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] %q: %w", keyStr, err)
		}
		kt.Runes[r] = intent
	}

	return kt, nil
}

func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrUnknownKey
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.ToLower(r), nil
}

package window

import (
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ray-caster/input"
)

var letterKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
	ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
	ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
	ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

var specialKeys = map[tcell.Key]ebiten.Key{
	tcell.KeyLeft:   ebiten.KeyLeft,
	tcell.KeyRight:  ebiten.KeyRight,
	tcell.KeyUp:     ebiten.KeyUp,
	tcell.KeyDown:   ebiten.KeyDown,
	tcell.KeyEscape: ebiten.KeyEscape,
	tcell.KeyEnter:  ebiten.KeyEnter,
	tcell.KeyTab:    ebiten.KeyTab,
}

// runeKey maps a bound rune to its physical window key
func runeKey(r rune) (ebiten.Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return letterKeys[r-'a'], true
	case r >= '0' && r <= '9':
		return digitKeys[r-'0'], true
	case r == ' ':
		return ebiten.KeySpace, true
	}
	return 0, false
}

// Bind moves key to intent, dropping any earlier binding of the same key
func (b *Bindings) Bind(key ebiten.Key, intent input.Intent) {
	for i, keys := range b.Move {
		b.Move[i] = slices.DeleteFunc(keys, func(k ebiten.Key) bool { return k == key })
	}
	b.Quit = slices.DeleteFunc(b.Quit, func(k ebiten.Key) bool { return k == key })

	switch intent {
	case input.IntentQuit:
		b.Quit = append(b.Quit, key)
	case input.IntentNone:
	default:
		b.Move[intent] = append(b.Move[intent], key)
	}
}

// Apply layers a terminal key table override onto the bindings
// Keys with no window equivalent (ctrl chords, punctuation) are returned as skipped
func (b *Bindings) Apply(kt *input.KeyTable) (skipped int) {
	if kt == nil {
		return 0
	}
	for r, intent := range kt.Runes {
		key, ok := runeKey(r)
		if !ok {
			skipped++
			continue
		}
		b.Bind(key, intent)
	}
	for tk, intent := range kt.Keys {
		key, ok := specialKeys[tk]
		if !ok {
			skipped++
			continue
		}
		b.Bind(key, intent)
	}
	return skipped
}

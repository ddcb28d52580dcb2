package session

import "github.com/iw2rmb/modus/buffer"

// Translate maps a keystroke to intents for the given mode. Keys without a
// binding produce no intents, leaving buffer and mode untouched.
func Translate(mode Mode, ev InputEvent) []Intent {
	switch mode {
	case ModeNormal:
		return translateNormal(ev)
	case ModeInsert:
		return translateInsert(ev)
	case ModeSelection:
		return nil
	default:
		return nil
	}
}

func translateNormal(ev InputEvent) []Intent {
	switch ev.Key {
	case KeyRune:
		return normalRune(ev.Rune)
	case KeyLeft, KeyBackspace:
		return []Intent{moveIntent(buffer.DirLeft)}
	case KeyDown, KeyEnter:
		return []Intent{moveIntent(buffer.DirDown)}
	case KeyUp:
		return []Intent{moveIntent(buffer.DirUp)}
	case KeyRight:
		return []Intent{moveIntent(buffer.DirRight)}
	case KeyHome:
		return []Intent{moveIntent(buffer.DirLineStart)}
	case KeyEnd:
		return []Intent{moveIntent(buffer.DirLineEnd)}
	case KeyEscape:
		return []Intent{{Kind: IntentQuit}}
	case KeyPageUp:
		return []Intent{pageIntent(PageUp)}
	case KeyPageDown:
		return []Intent{pageIntent(PageDown)}
	case KeyDelete, KeyUnknown:
		return nil
	default:
		return nil
	}
}

func normalRune(r rune) []Intent {
	switch r {
	case 'h':
		return []Intent{moveIntent(buffer.DirLeft)}
	case 'j':
		return []Intent{moveIntent(buffer.DirDown)}
	case 'k':
		return []Intent{moveIntent(buffer.DirUp)}
	case 'l':
		return []Intent{moveIntent(buffer.DirRight)}
	case 'q':
		return []Intent{{Kind: IntentQuit}}
	case 'i':
		return []Intent{modeIntent(ModeInsert)}
	case 'I':
		return []Intent{moveIntent(buffer.DirLineStart), modeIntent(ModeInsert)}
	case 'a':
		return []Intent{moveIntent(buffer.DirRight), modeIntent(ModeInsert)}
	case 'A':
		return []Intent{moveIntent(buffer.DirLineEnd), modeIntent(ModeInsert)}
	case 's':
		return []Intent{{Kind: IntentSave}}
	default:
		return nil
	}
}

func translateInsert(ev InputEvent) []Intent {
	switch ev.Key {
	case KeyRune:
		if !ev.Printable() {
			return nil
		}
		return []Intent{{Kind: IntentInsert, Rune: ev.Rune}}
	case KeyLeft:
		return []Intent{moveIntent(buffer.DirLeft)}
	case KeyDown:
		return []Intent{moveIntent(buffer.DirDown)}
	case KeyUp:
		return []Intent{moveIntent(buffer.DirUp)}
	case KeyRight:
		return []Intent{moveIntent(buffer.DirRight)}
	case KeyHome:
		return []Intent{moveIntent(buffer.DirLineStart)}
	case KeyEnd:
		return []Intent{moveIntent(buffer.DirLineEnd)}
	case KeyEscape:
		return []Intent{modeIntent(ModeNormal)}
	case KeyEnter:
		return []Intent{{Kind: IntentSplitLine}}
	case KeyBackspace:
		return []Intent{{Kind: IntentDeleteBefore}}
	case KeyDelete:
		return []Intent{{Kind: IntentDeleteAt}}
	case KeyPageUp, KeyPageDown, KeyUnknown:
		return nil
	default:
		return nil
	}
}

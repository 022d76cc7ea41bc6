package readline

import (
	"github.com/ollama/termline/terminfo"
)

// processEvent wendet ein Ereignis auf den Puffer an und meldet das Ende der Sitzung
func processEvent(buf *Buffer, ev Event) (bool, error) {
	switch ev.Kind {
	case EventStop:
		return true, ev.Err
	case EventASCII:
		if ev.Char == CharEnter || ev.Char == CharCR {
			return true, nil
		}
		buf.Add(ev.Char)
	case EventEscape:
		processKey(buf, ev.Key)
	case EventSpecial:
		buf.Insert(ev.Literal)
	}

	return false, nil
}

func processKey(buf *Buffer, key terminfo.Input) {
	switch key {
	case terminfo.KeyLeft:
		buf.MoveLeft()
	case terminfo.KeyRight:
		buf.MoveRight()
	case terminfo.KeyHome:
		buf.MoveToStart()
	case terminfo.KeyEnd:
		buf.MoveToEnd()
	case terminfo.KeyBackspace:
		buf.Remove()
	case terminfo.KeyDelete:
		buf.Delete()
	}
}

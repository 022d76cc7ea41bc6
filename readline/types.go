package readline

const (
	CharEOT   = 0x04
	CharTab   = 0x09
	CharEnter = 0x0a
	CharCR    = 0x0d
	CharEsc   = 0x1b
	CharSpace = 0x20
	CharDel   = 0x7f
)

const (
	// Startgroesse von Line-Buffer und Kanal-Puffern
	startAlloc = 1024
	growFactor = 2
	bufferSize = 1024

	// Spalten pro Tab im sichtbaren Echo
	tabWidth = 4
)

// Echo bestimmt, was beim Tippen an das Terminal zurueckgeschrieben wird
type Echo int

const (
	// EchoVisible schreibt die echten Zeichen
	EchoVisible Echo = iota
	// EchoHidden schreibt nichts
	EchoHidden
	// EchoMasked schreibt pro Zeichen das Ersatzzeichen aus Prompt.Mask
	EchoMasked
)

func (e Echo) String() string {
	switch e {
	case EchoVisible:
		return "visible"
	case EchoHidden:
		return "hidden"
	case EchoMasked:
		return "masked"
	default:
		return "unknown"
	}
}

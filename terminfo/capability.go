// Package terminfo - Capability-Modul
//
// Dieses Paket liest die kompilierte Terminfo-Datenbank des aktuellen Terminals
// und stellt genau die Sequenzen bereit, die der Zeileneditor braucht:
// Pfeil-, Home-, End-, Backspace- und Delete-Tasten (Input) sowie Cursor-
// Bewegung und Keypad-Modus (Output).
//
// Hauptkomponenten:
// - Input/Output: Bezeichner der unterstuetzten Capabilities
// - Store: unveraenderliche Tabelle der geladenen Sequenzen
// - Load/LoadTerm: Suche und Laden fuer einen Terminal-Typ
// - Parse: Parser fuer das Binaerformat aus term(5)
package terminfo

// Input bezeichnet eine Sequenz, die das Terminal beim Tastendruck sendet
type Input int

const (
	KeyLeft Input = iota
	KeyRight
	KeyBackspace
	KeyHome
	KeyEnd
	KeyDelete

	inputCount
)

// Output bezeichnet eine Sequenz, die das Programm an das Terminal sendet
type Output int

const (
	CursorLeft Output = iota
	CursorRight
	KeypadLocal
	KeypadXmit

	outputCount
)

// Inputs gibt alle Input-Capabilities in Registrierungsreihenfolge zurueck
func Inputs() []Input {
	ids := make([]Input, 0, inputCount)
	for id := range inputCount {
		ids = append(ids, id)
	}
	return ids
}

// Outputs gibt alle Output-Capabilities zurueck
func Outputs() []Output {
	ids := make([]Output, 0, outputCount)
	for id := range outputCount {
		ids = append(ids, id)
	}
	return ids
}

// Index in das String-Offset-Array, Reihenfolge aus ncurses <term.h>
var inputIndex = [inputCount]int{
	KeyLeft:      79,  // key_left
	KeyRight:     83,  // key_right
	KeyBackspace: 55,  // key_backspace
	KeyHome:      76,  // key_home
	KeyEnd:       164, // key_end
	KeyDelete:    59,  // key_dc
}

var outputIndex = [outputCount]int{
	CursorLeft:  14, // cursor_left
	CursorRight: 17, // cursor_right
	KeypadLocal: 88, // keypad_local
	KeypadXmit:  89, // keypad_xmit
}

var inputNames = [inputCount]string{
	KeyLeft:      "kcub1",
	KeyRight:     "kcuf1",
	KeyBackspace: "kbs",
	KeyHome:      "khome",
	KeyEnd:       "kend",
	KeyDelete:    "kdch1",
}

var outputNames = [outputCount]string{
	CursorLeft:  "cub1",
	CursorRight: "cuf1",
	KeypadLocal: "rmkx",
	KeypadXmit:  "smkx",
}

func (id Input) valid() bool  { return id >= 0 && id < inputCount }
func (id Output) valid() bool { return id >= 0 && id < outputCount }

// String gibt den Terminfo-Kurznamen zurueck (z.B. "kcub1")
func (id Input) String() string {
	if !id.valid() {
		return "unknown"
	}
	return inputNames[id]
}

// String gibt den Terminfo-Kurznamen zurueck (z.B. "cub1")
func (id Output) String() string {
	if !id.valid() {
		return "unknown"
	}
	return outputNames[id]
}

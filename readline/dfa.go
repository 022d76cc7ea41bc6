// Package readline - Escape-Erkennung
//
// Die Tastensequenzen aus der Terminfo-Datenbank werden in einen Praefixbaum
// eingefuegt. Knoten liegen in einer Arena und werden per Index adressiert;
// Kinder bilden eine einfach verkettete Geschwisterliste.
//
// Hauptkomponenten:
// - Recognizer: Praefixbaum ueber alle Input-Capabilities
// - Search: byteweise Suche mit Ergebnis Matched, NoMatch oder EndOfInput

package readline

import (
	"log/slog"

	"github.com/emirpasic/gods/v2/lists/arraylist"

	"github.com/ollama/termline/terminfo"
)

const (
	rootNode = 0
	noNode   = -1
)

type nodeKind uint8

const (
	edgeNode nodeKind = iota
	acceptNode
)

// node ist entweder ein Kantenknoten mit Kindern oder ein Akzeptor
type node struct {
	edge   byte
	kind   nodeKind
	first  int // erstes Kind, nur edgeNode
	next   int // naechstes Geschwister
	accept terminfo.Input
}

// MatchResult ist das Ergebnis einer Suche
type MatchResult int

const (
	NoMatch MatchResult = iota
	Matched
	EndOfInput
)

func (r MatchResult) String() string {
	switch r {
	case NoMatch:
		return "no match"
	case Matched:
		return "matched"
	case EndOfInput:
		return "end of input"
	default:
		return "unknown"
	}
}

// Match beschreibt eine abgeschlossene Suche
type Match struct {
	Result MatchResult
	// Key ist nur bei Matched gesetzt
	Key terminfo.Input
	// Consumed zaehlt die gelesenen Bytes
	Consumed int
	// Err ist der Fehler der Byte-Quelle bei EndOfInput
	Err error
}

// Recognizer ist nach dem Aufbau unveraenderlich und kann geteilt werden
type Recognizer struct {
	nodes *arraylist.List[node]
}

// NewRecognizer baut den Baum aus allen vorhandenen Input-Capabilities
func NewRecognizer(caps *terminfo.Store) *Recognizer {
	r := newRecognizer()
	for _, id := range terminfo.Inputs() {
		seq, ok := caps.Input(id)
		if !ok {
			continue
		}
		if !r.insert(seq, id) {
			slog.Debug("escape sequence conflicts with registered key, skipped", "key", id, "sequence", terminfo.Printable(seq))
		}
	}

	return r
}

func newRecognizer() *Recognizer {
	return &Recognizer{
		nodes: arraylist.New(node{kind: edgeNode, first: noNode, next: noNode}),
	}
}

// Empty meldet einen Baum ohne Sequenzen
func (r *Recognizer) Empty() bool {
	return r.get(rootNode).first == noNode
}

func (r *Recognizer) get(i int) node {
	n, _ := r.nodes.Get(i)
	return n
}

// child sucht das Kind von parent mit der Kante c
func (r *Recognizer) child(parent int, c byte) (int, bool) {
	for i := r.get(parent).first; i != noNode; {
		n := r.get(i)
		if n.edge == c {
			return i, true
		}
		i = n.next
	}
	return noNode, false
}

// insert fuegt seq ein. Eine Sequenz, die durch einen Akzeptor laeuft oder auf
// einem vorhandenen Knoten endet, wird abgelehnt: die erste Registrierung gewinnt.
func (r *Recognizer) insert(seq []byte, id terminfo.Input) bool {
	if len(seq) == 0 {
		return false
	}

	cur := rootNode
	for _, c := range seq {
		if r.get(cur).kind == acceptNode {
			return false
		}

		next, ok := r.child(cur, c)
		if !ok {
			parent := r.get(cur)
			next = r.nodes.Size()
			r.nodes.Add(node{edge: c, kind: edgeNode, first: noNode, next: parent.first})
			parent.first = next
			r.nodes.Set(cur, parent)
		}
		cur = next
	}

	n := r.get(cur)
	if n.kind == acceptNode || n.first != noNode {
		return false
	}

	n.kind = acceptNode
	n.accept = id
	r.nodes.Set(cur, n)
	return true
}

// Search zieht Bytes aus next, bis ein Akzeptor erreicht ist, eine Kante fehlt
// oder next einen Fehler meldet. Bei leerem Baum wird kein Byte gelesen.
func (r *Recognizer) Search(next func() (byte, error)) Match {
	if r.Empty() {
		return Match{Result: NoMatch}
	}

	var m Match
	cur := rootNode
	for {
		c, err := next()
		if err != nil {
			m.Result = EndOfInput
			m.Err = err
			return m
		}
		m.Consumed++

		child, ok := r.child(cur, c)
		if !ok {
			m.Result = NoMatch
			return m
		}

		if n := r.get(child); n.kind == acceptNode {
			m.Result = Matched
			m.Key = n.accept
			return m
		}
		cur = child
	}
}

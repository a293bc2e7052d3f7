package dimacs

import "errors"

// Sentinel errors for parsing and validation.
var (
	// ErrSyntax wraps a grammar error from the underlying parser.
	ErrSyntax = errors.New("dimacs: syntax error")

	// ErrMalformedLine is returned when a line has the wrong number of fields.
	ErrMalformedLine = errors.New("dimacs: malformed line")

	// ErrUnexpectedLine is returned for a keyword foreign to the format.
	ErrUnexpectedLine = errors.New("dimacs: unexpected line")

	// ErrNoProblemLine is returned when a .col input has no positive "p" line.
	ErrNoProblemLine = errors.New("dimacs: missing or empty problem line")

	// ErrMissingStart is returned when a .dat input has no non-empty "s" line.
	ErrMissingStart = errors.New("dimacs: missing start configuration")

	// ErrMissingTarget is returned when a .dat input has no non-empty "t" line.
	ErrMissingTarget = errors.New("dimacs: missing target configuration")

	// ErrMissingAnswer is returned when an answer has no "a YES" or "a NO" line.
	ErrMissingAnswer = errors.New("dimacs: missing answer line")
)

// ModelHeader is the comment line opening every answer file.
const ModelHeader = "c model ISR_TJ"

// Col is a parsed .col graph. Endpoints stay 1-based as read.
type Col struct {
	// Kind is the optional format word of the problem line, e.g. "edge".
	Kind string
	// Order is the declared vertex count n.
	Order int
	// Declared is the edge count stated on the problem line, 0 if absent.
	Declared int
	// Edges lists every "e" line in input order.
	Edges [][2]int
}

// Dat is a parsed .dat instance with 1-based vertex ids as read.
type Dat struct {
	Start  []int
	Target []int
}

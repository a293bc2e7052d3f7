package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/reconf/idastar"
)

// WriteOutput writes out in the answer format: the model header, the sorted
// start and target, the verdict and, for YES, one line per path step.
func WriteOutput(w io.Writer, out idastar.Output) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(ModelHeader)
	bw.WriteByte('\n')
	writeIDs(bw, keyStart, out.Start)
	writeIDs(bw, keyTarget, out.Target)
	fmt.Fprintf(bw, "%s %s\n", keyAnswer, out.Answer)
	if out.Answer == idastar.AnswerYes {
		for _, step := range out.Steps {
			writeIDs(bw, keyAnswer, step)
		}
	}

	return bw.Flush()
}

// ParseOutput reads an answer file back into its wire representation.
// Ids stay 1-based. Step lines are collected in order; the verdict line may
// appear anywhere but exactly once.
func ParseOutput(r io.Reader) (*idastar.Output, error) {
	doc, err := parse("answer", r)
	if err != nil {
		return nil, err
	}

	out := &idastar.Output{Steps: [][]int{}}
	for _, l := range doc.Lines {
		switch l.Key {
		case keyStart, keyTarget:
			if l.Word != "" {
				return nil, malformed(l, "<ids...>")
			}
			if l.Key == keyStart {
				out.Start = l.Values
			} else {
				out.Target = l.Values
			}
		case keyAnswer:
			if l.Word == "" {
				out.Steps = append(out.Steps, l.Values)
				continue
			}
			if (l.Word != idastar.AnswerYes && l.Word != idastar.AnswerNo) || len(l.Values) != 0 {
				return nil, malformed(l, "YES, NO or <ids...>")
			}
			if out.Answer != "" {
				return nil, fmt.Errorf("%w: %s: second verdict", ErrMalformedLine, l.Pos)
			}
			out.Answer = l.Word
		default:
			return nil, unexpected(l, "answer")
		}
	}
	if out.Answer == "" {
		return nil, ErrMissingAnswer
	}

	return out, nil
}

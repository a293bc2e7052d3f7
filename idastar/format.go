package idastar

import "github.com/katalvlaran/reconf/bitset"

// Answer tokens of the wire format.
const (
	AnswerYes = "YES"
	AnswerNo  = "NO"
)

// Output is the wire representation of a solve: 1-based vertex ids, each
// list sorted ascending.
type Output struct {
	Start  []int
	Target []int
	Answer string
	// Steps lists the full token set at every path step, first and last
	// included. Empty when Answer is NO.
	Steps [][]int
}

// Format converts res into its wire representation. A nil or unsolvable
// result renders as NO with no steps.
func Format(res *Result) Output {
	out := Output{Answer: AnswerNo, Steps: [][]int{}}
	if res == nil {
		return out
	}
	if res.Start != nil {
		out.Start = OneBased(res.Start)
	}
	if res.Target != nil {
		out.Target = OneBased(res.Target)
	}
	if !res.Solvable {
		return out
	}

	out.Answer = AnswerYes
	out.Steps = make([][]int, len(res.Path))
	for i, st := range res.Path {
		out.Steps[i] = OneBased(st)
	}

	return out
}

// OneBased lists the members of s as ascending 1-based ids.
func OneBased(s *bitset.Set) []int {
	ids := s.Members()
	for i := range ids {
		ids[i]++
	}

	return ids
}

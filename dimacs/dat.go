package dimacs

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/reconf/bitset"
	"github.com/katalvlaran/reconf/idastar"
)

// ParseDat reads a .dat instance. Both "s" and "t" must be present and
// non-empty; a repeated line replaces the earlier one.
func ParseDat(r io.Reader) (*Dat, error) {
	doc, err := parse("dat", r)
	if err != nil {
		return nil, err
	}

	dat := &Dat{}
	for _, l := range doc.Lines {
		switch l.Key {
		case keyStart, keyTarget:
			if l.Word != "" {
				return nil, malformed(l, "<ids...>")
			}
			if l.Key == keyStart {
				dat.Start = l.Values
			} else {
				dat.Target = l.Values
			}
		default:
			return nil, unexpected(l, "dat")
		}
	}
	if len(dat.Start) == 0 {
		return nil, ErrMissingStart
	}
	if len(dat.Target) == 0 {
		return nil, ErrMissingTarget
	}

	return dat, nil
}

// Vertices returns the start and target as 0-based vertex ids.
func (d *Dat) Vertices() (start, target []int) {
	return zeroBased(d.Start), zeroBased(d.Target)
}

func zeroBased(ids []int) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = id - 1
	}

	return out
}

// WriteDat writes the start and target sets as a .dat file.
func WriteDat(w io.Writer, start, target *bitset.Set) error {
	bw := bufio.NewWriter(w)
	writeIDs(bw, keyStart, idastar.OneBased(start))
	writeIDs(bw, keyTarget, idastar.OneBased(target))

	return bw.Flush()
}

// writeIDs emits "<key> id id ...". An empty list leaves the bare key.
func writeIDs(bw *bufio.Writer, key string, ids []int) {
	bw.WriteString(key)
	for _, id := range ids {
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(id))
	}
	bw.WriteByte('\n')
}

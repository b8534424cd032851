// Package align implements a generic longest-common-block sequence aligner.
// The same algorithm serves word-level alignment (keys are normalized words)
// and character-level alignment (keys are runes).
package align

// OpTag identifies the kind of an alignment operation.
type OpTag int

const (
	// OpEqual indicates a run of matching elements in both sequences.
	OpEqual OpTag = iota
	// OpReplace indicates both sequences have leftover, non-matching elements.
	OpReplace
	// OpDelete indicates elements present only in sequence A.
	OpDelete
	// OpInsert indicates elements present only in sequence B.
	OpInsert
)

// String returns the lowercase tag name.
func (t OpTag) String() string {
	switch t {
	case OpEqual:
		return "equal"
	case OpReplace:
		return "replace"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Op is a single alignment operation covering a[I1:I2] and b[J1:J2].
// For OpDelete J1 == J2, for OpInsert I1 == I2. The ordered op sequence
// partitions both input sequences with no gaps or overlaps.
type Op struct {
	Tag OpTag
	I1  int
	I2  int
	J1  int
	J2  int
}

type matchBlock struct {
	a    int
	b    int
	size int
}

// Align computes the ordered alignment operations between two sequences.
// It repeatedly finds the longest common contiguous block between the
// remaining regions, emits it as OpEqual and recurses on both sides.
// Ties between equal-length candidate blocks resolve to the block starting
// earliest in a, so the op sequence is reproducible for identical inputs.
func Align[K comparable](a, b []K) []Op {
	blocks := matchingBlocks(a, b)

	ops := make([]Op, 0, len(blocks)*2)
	i, j := 0, 0
	for _, m := range blocks {
		switch {
		case i < m.a && j < m.b:
			ops = append(ops, Op{Tag: OpReplace, I1: i, I2: m.a, J1: j, J2: m.b})
		case i < m.a:
			ops = append(ops, Op{Tag: OpDelete, I1: i, I2: m.a, J1: j, J2: j})
		case j < m.b:
			ops = append(ops, Op{Tag: OpInsert, I1: i, I2: i, J1: j, J2: m.b})
		}
		if m.size > 0 {
			ops = append(ops, Op{Tag: OpEqual, I1: m.a, I2: m.a + m.size, J1: m.b, J2: m.b + m.size})
		}
		i, j = m.a+m.size, m.b+m.size
	}
	return ops
}

// Ratio measures the similarity of two sequences as 2*M/T where M is the
// total size of the matched blocks and T the combined length. The result is
// in [0, 1]; two empty sequences are considered identical.
func Ratio[K comparable](x, y []K) float64 {
	total := len(x) + len(y)
	if total == 0 {
		return 1.0
	}

	matched := 0
	for _, op := range Align(x, y) {
		if op.Tag == OpEqual {
			matched += op.I2 - op.I1
		}
	}
	return 2.0 * float64(matched) / float64(total)
}

// matchingBlocks returns the maximal matching blocks in ascending order,
// adjacent blocks merged, terminated by a zero-size sentinel at (len(a), len(b)).
func matchingBlocks[K comparable](a, b []K) []matchBlock {
	b2j := make(map[K][]int, len(b))
	for j, key := range b {
		b2j[key] = append(b2j[key], j)
	}

	var blocks []matchBlock
	var scan func(alo, ahi, blo, bhi int)
	scan = func(alo, ahi, blo, bhi int) {
		i, j, size := longestMatch(a, b2j, alo, ahi, blo, bhi)
		if size == 0 {
			return
		}
		scan(alo, i, blo, j)
		blocks = append(blocks, matchBlock{a: i, b: j, size: size})
		scan(i+size, ahi, j+size, bhi)
	}
	scan(0, len(a), 0, len(b))

	merged := make([]matchBlock, 0, len(blocks)+1)
	for _, m := range blocks {
		if n := len(merged); n > 0 && merged[n-1].a+merged[n-1].size == m.a && merged[n-1].b+merged[n-1].size == m.b {
			merged[n-1].size += m.size
			continue
		}
		merged = append(merged, m)
	}
	return append(merged, matchBlock{a: len(a), b: len(b)})
}

// longestMatch finds the longest matching block within a[alo:ahi] and
// b[blo:bhi]. Among blocks of maximal size it returns the one starting
// earliest in a, then earliest in b.
func longestMatch[K comparable](a []K, b2j map[K][]int, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo

	// j2len[j] is the length of the longest match ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return besti, bestj, bestsize
}

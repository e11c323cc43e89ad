package domain

import "fmt"

// Range is a half-open interval [Start, End) of body line indices assigned
// to one output file. Ranges produced by Partition are never empty.
type Range struct {
	Start int
	End   int
}

// Len returns the number of lines in the range.
func (r Range) Len() int { return r.End - r.Start }

// Plan is the ordered sequence of per-file line ranges. Ranges are
// ascending, contiguous and non-overlapping, covering [0, total) exactly.
type Plan []Range

// TotalLines returns the number of lines covered by the plan.
func (p Plan) TotalLines() int {
	var total int
	for _, r := range p {
		total += r.Len()
	}
	return total
}

// Partition computes the per-file line ranges for totalLines body lines
// under the given directive. A zero total yields an empty plan: empty
// output files are never part of a plan.
func Partition(totalLines int, d Directive) (Plan, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if totalLines < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTotal, totalLines)
	}
	if totalLines == 0 {
		return Plan{}, nil
	}

	switch d.Mode() {
	case ModeLineCount:
		return byLineCount(totalLines, d.N()), nil
	default:
		return byFileCount(totalLines, d.N()), nil
	}
}

// byLineCount cuts [0, total) into ranges of n lines; the last range keeps
// the remainder when total is not a multiple of n.
func byLineCount(total, n int) Plan {
	plan := make(Plan, 0, (total+n-1)/n)
	for start := 0; start < total; start += n {
		end := start + n
		if end > total {
			end = total
		}
		plan = append(plan, Range{Start: start, End: end})
	}
	return plan
}

// byFileCount balances [0, total) over k ranges differing in length by at
// most one line. The remainder goes to the EARLIEST ranges; output naming
// depends on that ordering, so it must not change. When total < k only
// total single-line ranges are produced.
func byFileCount(total, k int) Plan {
	if k > total {
		k = total
	}
	quot, rem := total/k, total%k

	plan := make(Plan, 0, k)
	start := 0
	for i := 0; i < k; i++ {
		n := quot
		if i < rem {
			n++
		}
		plan = append(plan, Range{Start: start, End: start + n})
		start += n
	}
	return plan
}

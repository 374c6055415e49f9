package board

// LineDisplacement maps one originally occupied index of a line to its final
// index after reduction. Merged pairs produce two displacements targeting the
// same destination, each carrying its pre-merge value.
type LineDisplacement struct {
	From  int
	To    int
	Value int
}

// LineResult is the outcome of reducing a single row or column.
type LineResult struct {
	Cells         []int
	MergedIndices []int
	Displacements []LineDisplacement
	Moved         bool
}

// ReduceLine compacts and merges one line toward index 0 (forward=true) or
// toward the last index (forward=false). The backward case is solved by
// remapping indices onto a logically reversed line, so the merge policy is
// a single oriented scan either way.
//
// The scan pairs greedily left to right and never revisits a merged slot:
// [3,3,3] forward reduces to [6,3,0], not [6,6,0] or [9,0,0].
func ReduceLine(line []int, forward bool) LineResult {
	n := len(line)

	type entry struct {
		idx int
		val int
	}
	var entries []entry
	for i, v := range line {
		if v != 0 {
			entries = append(entries, entry{idx: i, val: v})
		}
	}

	if !forward {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
		for i := range entries {
			entries[i].idx = n - 1 - entries[i].idx
		}
	}

	res := LineResult{Cells: make([]int, n)}
	slot := 0
	for i := 0; i < len(entries); i++ {
		cur := entries[i]
		if i+1 < len(entries) && entries[i+1].val == cur.val {
			next := entries[i+1]
			res.Cells[slot] = cur.val + next.val
			res.MergedIndices = append(res.MergedIndices, slot)
			res.Displacements = append(res.Displacements,
				LineDisplacement{From: cur.idx, To: slot, Value: cur.val},
				LineDisplacement{From: next.idx, To: slot, Value: next.val},
			)
			i++
		} else {
			res.Cells[slot] = cur.val
			res.Displacements = append(res.Displacements,
				LineDisplacement{From: cur.idx, To: slot, Value: cur.val},
			)
		}
		slot++
	}

	if !forward {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			res.Cells[i], res.Cells[j] = res.Cells[j], res.Cells[i]
		}
		for i := range res.MergedIndices {
			res.MergedIndices[i] = n - 1 - res.MergedIndices[i]
		}
		for i := range res.Displacements {
			res.Displacements[i].From = n - 1 - res.Displacements[i].From
			res.Displacements[i].To = n - 1 - res.Displacements[i].To
		}
	}

	for i := range line {
		if res.Cells[i] != line[i] {
			res.Moved = true
			break
		}
	}

	return res
}

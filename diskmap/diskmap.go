package diskmap

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/puzzletrace/trace"
)

// Parse reads the dense disk map. Surrounding whitespace is ignored.
func Parse(input string) (Disk, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Disk{}, ErrEmptyInput
	}

	d := Disk{Blocks: make([]Block, 0, len(input))}
	for i, r := range input {
		if r < '0' || r > '9' {
			return Disk{}, fmt.Errorf("%w: %q at offset %d", ErrBadDigit, r, i)
		}
		b := Block{File: Free, Size: int(r - '0')}
		if len(d.Blocks)%2 == 0 {
			b.File = len(d.Blocks) / 2
		}
		d.Blocks = append(d.Blocks, b)
	}

	return d, nil
}

// Units expands d into one entry per unit.
func (d Disk) Units() []int {
	n := 0
	for _, b := range d.Blocks {
		n += b.Size
	}
	units := make([]int, 0, n)
	for _, b := range d.Blocks {
		for range b.Size {
			units = append(units, b.File)
		}
	}

	return units
}

// CompactUnits moves units from the tail into the leftmost free slots.
// It returns the compacted layout and the moves in destination order.
//
// Complexity: O(n) over n units; both cursors only move inward.
func CompactUnits(d Disk) ([]int, []Move) {
	units := d.Units()
	var moves []Move

	// left seeks the next free slot, right the last occupied unit.
	left, right := 0, len(units)-1
	for {
		for left < len(units) && units[left] != Free {
			left++
		}
		for right >= 0 && units[right] == Free {
			right--
		}
		if left >= right {
			break
		}
		units[left], units[right] = units[right], Free
		moves = append(moves, Move{From: right, To: left})
	}

	return units, moves
}

// span is a run of free units.
type span struct {
	start, size int
}

// CompactFiles moves whole files, highest ID first, into the leftmost free
// span before them that is large enough. It returns the compacted layout and
// the unit moves in destination order.
//
// Each file is tried exactly once; a file with no fitting span stays put.
//
// Complexity:
//
//   - Time:  O(F × G + n) for F files, G free spans and n units, plus O(m log m) to order m moves.
//   - Space: O(n + F + G).
func CompactFiles(d Disk) ([]int, []Move) {
	units := d.Units()

	// 1) Index file extents and the free spans between them, left to right.
	var (
		gaps  []span
		files []span // indexed by file ID
	)
	pos := 0
	for _, b := range d.Blocks {
		if b.File == Free {
			if b.Size > 0 {
				gaps = append(gaps, span{start: pos, size: b.Size})
			}
		} else {
			files = append(files, span{start: pos, size: b.Size})
		}
		pos += b.Size
	}

	// 2) Walk files from the highest ID down.
	var moves []Move
	for id := len(files) - 1; id >= 0; id-- {
		f := files[id]
		if f.size == 0 {
			continue
		}
		// 3) First-fit scan over spans left of the file. Spans freed by moved
		//    files sit right of every remaining file, so they never qualify
		//    and need not be tracked.
		for g := range gaps {
			if gaps[g].start >= f.start {
				break
			}
			if gaps[g].size < f.size {
				continue
			}
			// 4) Move unit by unit and shrink the span from the left.
			for k := range f.size {
				units[gaps[g].start+k] = id
				units[f.start+k] = Free
				moves = append(moves, Move{From: f.start + k, To: gaps[g].start + k})
			}
			gaps[g].start += f.size
			gaps[g].size -= f.size
			break
		}
	}
	// 5) Report moves in destination order.
	slices.SortFunc(moves, func(a, b Move) int { return cmp.Compare(a.To, b.To) })

	return units, moves
}

// Checksum sums position × file ID over occupied units.
func Checksum(units []int) int {
	sum := 0
	for i, id := range units {
		if id != Free {
			sum += i * id
		}
	}

	return sum
}

// Solve compacts d with strategy and computes the checksum.
func Solve(d Disk, strategy Strategy) Result {
	initial := d.Units()
	rec := trace.NewRecorder[Event](len(initial) * 8)
	rec.Emit(Input{Disk: slices.Clone(initial)})

	var (
		units []int
		moves []Move
	)
	if strategy == Files {
		units, moves = CompactFiles(d)
	} else {
		units, moves = CompactUnits(d)
	}

	for _, m := range moves {
		rec.Emit(Select{Index: m.From})
		rec.Emit(Select{Index: m.To})
		rec.Emit(Moved{Move: m})
		rec.Emit(SelectOut{Index: m.From})
		rec.Emit(SelectOut{Index: m.To})
	}

	sum := 0
	for i, id := range units {
		if id == Free {
			continue
		}
		rec.Emit(Select{Index: i})
		rec.Emit(Multiply{Lhs: i, Rhs: id, Result: i * id})
		sum += i * id
		rec.Emit(RunningChecksum{Checksum: sum})
		rec.Emit(SelectOut{Index: i})
	}

	return Result{Checksum: sum, Trace: rec.Trace()}
}

package scene

import "math"

// Placement is one grid cell, centered on the scene origin.
type Placement struct {
	Index int     `json:"index"`
	Col   int     `json:"col"`
	Row   int     `json:"row"`
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
}

// ColumnsPolicy decides how many columns a grid of n items uses.
//
// FixedColumns is append-stable: adding an item never moves the ones already
// placed. SquareColumns recomputes ceil(sqrt(n)) per call and therefore
// reshuffles as n grows; it exists for parity with the stock overview and is
// not append-stable.
type ColumnsPolicy func(n int) int

// FixedColumns always lays out the given number of columns.
func FixedColumns(columns int) ColumnsPolicy {
	return func(int) int {
		if columns < 1 {
			return 1
		}
		return columns
	}
}

// SquareColumns picks ceil(sqrt(n)) columns for a near-square grid.
func SquareColumns() ColumnsPolicy {
	return func(n int) int {
		if n < 1 {
			return 1
		}
		return int(math.Ceil(math.Sqrt(float64(n))))
	}
}

// GridSpec fixes the spacing constants and column policy for one overview
// scene.
type GridSpec struct {
	SpacingX float64
	SpacingZ float64
	Policy   ColumnsPolicy
}

// Layout places n items on a centered grid. For each index i:
//
//	col = i % columns, row = i / columns
//	x = (col - (columns-1)/2) * spacingX
//	z = (row - (rows-1)/2) * spacingZ
//
// The result is deterministic for a given (n, spec).
func (s GridSpec) Layout(n int) []Placement {
	if n <= 0 {
		return nil
	}

	policy := s.Policy
	if policy == nil {
		policy = FixedColumns(3)
	}
	columns := policy(n)
	if columns < 1 {
		columns = 1
	}
	rows := (n + columns - 1) / columns

	placements := make([]Placement, n)
	for i := 0; i < n; i++ {
		col := i % columns
		row := i / columns
		placements[i] = Placement{
			Index: i,
			Col:   col,
			Row:   row,
			X:     (float64(col) - float64(columns-1)/2) * s.SpacingX,
			Z:     (float64(row) - float64(rows-1)/2) * s.SpacingZ,
		}
	}
	return placements
}

// Columns reports the column count the spec would use for n items.
func (s GridSpec) Columns(n int) int {
	policy := s.Policy
	if policy == nil {
		policy = FixedColumns(3)
	}
	c := policy(n)
	if c < 1 {
		return 1
	}
	return c
}

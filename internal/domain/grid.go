package domain

// Stand pitches on the market map, in pixels of the 1100x750 plan.
var (
	GridColumns = []int{20, 130, 240, 350, 460, 570, 680}
	GridRows    = []int{20, 120, 220, 320, 420, 520}
)

// IsReservedCell reports cells that hold no stand: the office in the top-right
// corner, the WC bottom-left and the entrance bottom-right.
func IsReservedCell(row, col int) bool {
	last := len(GridRows) - 1
	switch {
	case row == 0 && col == len(GridColumns)-1:
		return true
	case row == last && col == 0:
		return true
	case row == last && col >= len(GridColumns)-2:
		return true
	}
	return false
}

// GridLocations lists stand pitches row by row, left to right.
func GridLocations() []Location {
	locs := make([]Location, 0, len(GridRows)*len(GridColumns))
	for row, y := range GridRows {
		for col, x := range GridColumns {
			if IsReservedCell(row, col) {
				continue
			}
			locs = append(locs, Location{X: x, Y: y})
		}
	}
	return locs
}

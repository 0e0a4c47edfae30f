package schedule

import "sort"

// Booking is one grid entry: a time-bounded inspection assigned to a day
// column. StartSlot and EndSlot are inclusive row indices into the TimeTable;
// a booking whose time label did not resolve carries a negative slot.
type Booking struct {
	ID        string `json:"id"`
	Day       int    `json:"day"`
	StartSlot int    `json:"startSlot"`
	EndSlot   int    `json:"endSlot"`
	Title     string `json:"title,omitempty"`
	Subtitle  string `json:"subtitle,omitempty"`
	Category  string `json:"category,omitempty"`
}

// CellState describes what a grid cell holds.
type CellState int

const (
	// CellEmpty marks a cell no booking covers.
	CellEmpty CellState = iota
	// CellStart marks the first row of a booking; its Span tells the
	// renderer how many rows to merge.
	CellStart
	// CellSpanned marks a follow-on row owned by the booking that started
	// above it; the renderer emits nothing for it.
	CellSpanned
)

// Cell is one entry of the rows x day-columns grid.
type Cell struct {
	State   CellState `json:"state"`
	Booking *Booking  `json:"booking,omitempty"`
	Span    int       `json:"span,omitempty"`
}

// ConflictReason classifies why a booking could not be placed as given.
type ConflictReason string

const (
	// ConflictOverlap: the booking's range intersects an earlier-sorted
	// booking in the same column. The booking is not placed.
	ConflictOverlap ConflictReason = "overlap"
	// ConflictUnknownTime: a slot index does not resolve to a table row.
	ConflictUnknownTime ConflictReason = "unknown_time"
	// ConflictUnknownDay: the day column is not part of the grid.
	ConflictUnknownDay ConflictReason = "unknown_day"
	// ConflictInvertedRange: the booking ends before it starts.
	ConflictInvertedRange ConflictReason = "inverted_range"
	// ConflictTruncated: the booking ran past the last row and was clipped.
	// Unlike the other reasons the booking is still placed.
	ConflictTruncated ConflictReason = "truncated"
)

// Conflict reports a booking the layout could not place exactly as given.
type Conflict struct {
	Booking  Booking        `json:"booking"`
	Reason   ConflictReason `json:"reason"`
	WinnerID string         `json:"winnerId,omitempty"` // overlap only: the booking that kept the rows
}

// Grid holds the computed placement for a rows x day-columns matrix.
// Cells is indexed [row][column] where column follows the order of Days.
type Grid struct {
	Days  []int    `json:"days"`
	Rows  int      `json:"rows"`
	Cells [][]Cell `json:"cells"`

	colByDay map[int]int
}

// At returns the cell at the given row and day-column value.
func (g *Grid) At(row, day int) (Cell, bool) {
	col, ok := g.colByDay[day]
	if !ok || row < 0 || row >= g.Rows {
		return Cell{}, false
	}
	return g.Cells[row][col], true
}

// Layout places bookings into a rows x day-columns grid with no overlap
// logic left to the renderer. It never fails on imperfect booking data:
// every problem is reported through the returned conflicts, sorted by
// booking ID so identical input always yields identical output. The error
// return covers structural misuse only.
func Layout(bookings []Booking, table *TimeTable, dayColumns []int) (*Grid, []Conflict, error) {
	if table == nil || table.Len() == 0 {
		return nil, nil, ErrEmptyTimeTable
	}
	if len(dayColumns) == 0 {
		return nil, nil, ErrNoDayColumns
	}

	rows := table.Len()
	colByDay := make(map[int]int, len(dayColumns))
	for col, day := range dayColumns {
		if _, dup := colByDay[day]; dup {
			return nil, nil, ErrDuplicateDayCols
		}
		colByDay[day] = col
	}

	grid := &Grid{
		Days:     append([]int(nil), dayColumns...),
		Rows:     rows,
		Cells:    make([][]Cell, rows),
		colByDay: colByDay,
	}
	for r := range grid.Cells {
		grid.Cells[r] = make([]Cell, len(dayColumns))
	}

	var conflicts []Conflict

	// Validation pass: split bookings into placeable candidates per column
	// and immediate rejections.
	type candidate struct {
		booking   Booking
		start     int
		end       int
		truncated bool
	}
	perColumn := make(map[int][]candidate, len(dayColumns))
	for _, b := range bookings {
		col, ok := colByDay[b.Day]
		if !ok {
			conflicts = append(conflicts, Conflict{Booking: b, Reason: ConflictUnknownDay})
			continue
		}
		if b.StartSlot < 0 || b.StartSlot >= rows || b.EndSlot < 0 {
			conflicts = append(conflicts, Conflict{Booking: b, Reason: ConflictUnknownTime})
			continue
		}
		if b.EndSlot < b.StartSlot {
			conflicts = append(conflicts, Conflict{Booking: b, Reason: ConflictInvertedRange})
			continue
		}
		c := candidate{booking: b, start: b.StartSlot, end: b.EndSlot}
		if c.end >= rows {
			c.end = rows - 1
			c.truncated = true
		}
		perColumn[col] = append(perColumn[col], c)
	}

	// Placement pass: one forward sweep per column. Earlier start wins;
	// ties break on ID so conflicting inputs resolve deterministically.
	for col := range grid.Days {
		cands := perColumn[col]
		sort.Slice(cands, func(i, j int) bool {
			if cands[i].start != cands[j].start {
				return cands[i].start < cands[j].start
			}
			return cands[i].booking.ID < cands[j].booking.ID
		})

		occupiedUntil := -1
		winnerID := ""
		for _, c := range cands {
			if c.start <= occupiedUntil {
				conflicts = append(conflicts, Conflict{
					Booking:  c.booking,
					Reason:   ConflictOverlap,
					WinnerID: winnerID,
				})
				continue
			}

			b := c.booking
			grid.Cells[c.start][col] = Cell{
				State:   CellStart,
				Booking: &b,
				Span:    c.end - c.start + 1,
			}
			for r := c.start + 1; r <= c.end; r++ {
				grid.Cells[r][col] = Cell{State: CellSpanned, Booking: &b}
			}
			occupiedUntil = c.end
			winnerID = b.ID

			if c.truncated {
				conflicts = append(conflicts, Conflict{Booking: c.booking, Reason: ConflictTruncated})
			}
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].Booking.ID != conflicts[j].Booking.ID {
			return conflicts[i].Booking.ID < conflicts[j].Booking.ID
		}
		return conflicts[i].Reason < conflicts[j].Reason
	})

	return grid, conflicts, nil
}

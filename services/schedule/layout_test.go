package schedule

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T, n int) *TimeTable {
	t.Helper()
	labels := make([]string, n)
	hours := []string{
		"8:00 am", "9:00 am", "10:00 am", "11:00 am", "12:00 pm", "1:00 pm",
		"2:00 pm", "3:00 pm", "4:00 pm", "5:00 pm", "6:00 pm", "7:00 pm",
	}
	copy(labels, hours[:n])
	table, err := NewTimeTable(labels)
	require.NoError(t, err)
	return table
}

func TestLayout_EmptyInputYieldsEmptyGrid(t *testing.T) {
	table := testTable(t, 8)
	days := []int{1, 2, 3, 4, 5}

	grid, conflicts, err := Layout(nil, table, days)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.Equal(t, 8, grid.Rows)
	assert.Equal(t, days, grid.Days)

	for row := 0; row < grid.Rows; row++ {
		for _, day := range days {
			cell, ok := grid.At(row, day)
			require.True(t, ok)
			assert.Equal(t, CellEmpty, cell.State)
			assert.Nil(t, cell.Booking)
		}
	}
}

func TestLayout_StructuralErrors(t *testing.T) {
	table := testTable(t, 4)

	_, _, err := Layout(nil, nil, []int{1})
	assert.ErrorIs(t, err, ErrEmptyTimeTable)

	_, _, err = Layout(nil, table, nil)
	assert.ErrorIs(t, err, ErrNoDayColumns)

	_, _, err = Layout(nil, table, []int{1, 2, 1})
	assert.ErrorIs(t, err, ErrDuplicateDayCols)
}

func TestLayout_PlacesNonOverlappingBookings(t *testing.T) {
	table := testTable(t, 8)
	bookings := []Booking{
		{ID: "a", Day: 1, StartSlot: 0, EndSlot: 2, Title: "12 Maple Drive"},
		{ID: "b", Day: 1, StartSlot: 4, EndSlot: 4, Title: "4 Elm Court"},
		{ID: "c", Day: 3, StartSlot: 1, EndSlot: 3, Title: "77 Harbor View"},
	}

	grid, conflicts, err := Layout(bookings, table, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	cell, ok := grid.At(0, 1)
	require.True(t, ok)
	assert.Equal(t, CellStart, cell.State)
	assert.Equal(t, "a", cell.Booking.ID)
	assert.Equal(t, 3, cell.Span)

	for row := 1; row <= 2; row++ {
		cell, _ = grid.At(row, 1)
		assert.Equal(t, CellSpanned, cell.State)
		assert.Equal(t, "a", cell.Booking.ID)
	}

	cell, _ = grid.At(3, 1)
	assert.Equal(t, CellEmpty, cell.State)

	// A single-slot booking starts and ends on its own row.
	cell, _ = grid.At(4, 1)
	assert.Equal(t, CellStart, cell.State)
	assert.Equal(t, "b", cell.Booking.ID)
	assert.Equal(t, 1, cell.Span)

	cell, _ = grid.At(1, 3)
	assert.Equal(t, CellStart, cell.State)
	assert.Equal(t, "c", cell.Booking.ID)
	assert.Equal(t, 3, cell.Span)

	// Day 2 has no bookings at all.
	for row := 0; row < grid.Rows; row++ {
		cell, _ = grid.At(row, 2)
		assert.Equal(t, CellEmpty, cell.State)
	}
}

func TestLayout_OverlapDefersLaterBooking(t *testing.T) {
	table := testTable(t, 8)
	bookings := []Booking{
		{ID: "1", Day: 1, StartSlot: 0, EndSlot: 2},
		{ID: "2", Day: 1, StartSlot: 1, EndSlot: 1},
	}

	grid, conflicts, err := Layout(bookings, table, []int{1})
	require.NoError(t, err)

	cell, _ := grid.At(0, 1)
	assert.Equal(t, CellStart, cell.State)
	assert.Equal(t, "1", cell.Booking.ID)
	assert.Equal(t, 3, cell.Span)

	// Booking 2 never reaches the grid.
	cell, _ = grid.At(1, 1)
	assert.Equal(t, CellSpanned, cell.State)
	assert.Equal(t, "1", cell.Booking.ID)

	require.Len(t, conflicts, 1)
	assert.Equal(t, "2", conflicts[0].Booking.ID)
	assert.Equal(t, ConflictOverlap, conflicts[0].Reason)
	assert.Equal(t, "1", conflicts[0].WinnerID)
}

func TestLayout_EqualStartsTieBreakOnID(t *testing.T) {
	table := testTable(t, 6)
	bookings := []Booking{
		{ID: "b", Day: 2, StartSlot: 3, EndSlot: 4},
		{ID: "a", Day: 2, StartSlot: 3, EndSlot: 5},
	}

	grid, conflicts, err := Layout(bookings, table, []int{1, 2})
	require.NoError(t, err)

	cell, _ := grid.At(3, 2)
	assert.Equal(t, CellStart, cell.State)
	assert.Equal(t, "a", cell.Booking.ID)

	require.Len(t, conflicts, 1)
	assert.Equal(t, "b", conflicts[0].Booking.ID)
	assert.Equal(t, ConflictOverlap, conflicts[0].Reason)
	assert.Equal(t, "a", conflicts[0].WinnerID)
}

func TestLayout_SameRangeDifferentDaysDoNotConflict(t *testing.T) {
	table := testTable(t, 6)
	bookings := []Booking{
		{ID: "a", Day: 1, StartSlot: 2, EndSlot: 4},
		{ID: "b", Day: 2, StartSlot: 2, EndSlot: 4},
	}

	grid, conflicts, err := Layout(bookings, table, []int{1, 2})
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	for _, day := range []int{1, 2} {
		cell, _ := grid.At(2, day)
		assert.Equal(t, CellStart, cell.State)
	}
}

func TestLayout_TruncatesBookingPastLastRow(t *testing.T) {
	table := testTable(t, 5)
	bookings := []Booking{
		{ID: "long", Day: 1, StartSlot: 3, EndSlot: 9},
	}

	grid, conflicts, err := Layout(bookings, table, []int{1})
	require.NoError(t, err)

	cell, _ := grid.At(3, 1)
	assert.Equal(t, CellStart, cell.State)
	assert.Equal(t, 2, cell.Span) // clipped to rows 3..4

	cell, _ = grid.At(4, 1)
	assert.Equal(t, CellSpanned, cell.State)

	require.Len(t, conflicts, 1)
	assert.Equal(t, "long", conflicts[0].Booking.ID)
	assert.Equal(t, ConflictTruncated, conflicts[0].Reason)
}

func TestLayout_RejectsUnresolvableBookings(t *testing.T) {
	table := testTable(t, 5)
	bookings := []Booking{
		{ID: "badStart", Day: 1, StartSlot: -1, EndSlot: 2},
		{ID: "badDay", Day: 9, StartSlot: 0, EndSlot: 1},
		{ID: "inverted", Day: 1, StartSlot: 3, EndSlot: 1},
		{ID: "ok", Day: 1, StartSlot: 0, EndSlot: 0},
	}

	grid, conflicts, err := Layout(bookings, table, []int{1})
	require.NoError(t, err)

	// The valid booking still lands.
	cell, _ := grid.At(0, 1)
	assert.Equal(t, CellStart, cell.State)
	assert.Equal(t, "ok", cell.Booking.ID)

	require.Len(t, conflicts, 3)
	reasons := map[string]ConflictReason{}
	for _, c := range conflicts {
		reasons[c.Booking.ID] = c.Reason
	}
	assert.Equal(t, ConflictUnknownTime, reasons["badStart"])
	assert.Equal(t, ConflictUnknownDay, reasons["badDay"])
	assert.Equal(t, ConflictInvertedRange, reasons["inverted"])
}

func TestLayout_EveryBookingStartsExactlyOnce(t *testing.T) {
	table := testTable(t, 12)
	bookings := []Booking{
		{ID: "a", Day: 1, StartSlot: 0, EndSlot: 1},
		{ID: "b", Day: 1, StartSlot: 2, EndSlot: 5},
		{ID: "c", Day: 2, StartSlot: 0, EndSlot: 11},
		{ID: "d", Day: 3, StartSlot: 6, EndSlot: 6},
	}

	grid, conflicts, err := Layout(bookings, table, []int{1, 2, 3})
	require.NoError(t, err)
	require.Empty(t, conflicts)

	starts := map[string]int{}
	for row := 0; row < grid.Rows; row++ {
		for _, day := range grid.Days {
			cell, _ := grid.At(row, day)
			if cell.State == CellStart {
				starts[cell.Booking.ID]++
				duration := cell.Booking.EndSlot - cell.Booking.StartSlot + 1
				assert.Equal(t, duration, cell.Span)
				assert.Equal(t, cell.Booking.StartSlot, row)
			}
		}
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}, starts)
}

func TestLayout_DeterministicAcrossInputOrder(t *testing.T) {
	table := testTable(t, 10)
	bookings := []Booking{
		{ID: "a", Day: 1, StartSlot: 0, EndSlot: 3},
		{ID: "b", Day: 1, StartSlot: 2, EndSlot: 4},
		{ID: "c", Day: 2, StartSlot: 1, EndSlot: 1},
		{ID: "d", Day: 2, StartSlot: 1, EndSlot: 2},
		{ID: "e", Day: 7, StartSlot: 5, EndSlot: 20},
	}
	days := []int{1, 2, 7}

	baseGrid, baseConflicts, err := Layout(bookings, table, days)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]Booking(nil), bookings...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		grid, conflicts, err := Layout(shuffled, table, days)
		require.NoError(t, err)
		assert.Equal(t, baseConflicts, conflicts)
		assert.Equal(t, baseGrid.Cells, grid.Cells)
	}
}

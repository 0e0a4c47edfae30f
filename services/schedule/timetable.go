package schedule

import (
	"errors"
	"fmt"
)

// Layout errors. These indicate structural misuse of the API; data-quality
// problems in bookings are reported through the conflicts channel instead.
var (
	ErrEmptyTimeTable   = errors.New("time table must not be empty")
	ErrNoDayColumns     = errors.New("at least one day column is required")
	ErrDuplicateDayCols = errors.New("day columns must be unique")
)

// TimeTable is the ordered sequence of display time labels shared by every
// day column of the grid. Row indices are positions in this sequence.
type TimeTable struct {
	labels []string
	index  map[string]int
}

// NewTimeTable builds a TimeTable from ordered display labels.
func NewTimeTable(labels []string) (*TimeTable, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyTimeTable
	}
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		if _, dup := index[label]; dup {
			return nil, fmt.Errorf("duplicate time label %q", label)
		}
		index[label] = i
	}
	return &TimeTable{labels: labels, index: index}, nil
}

// DefaultTimeTable returns the hourly noon-to-11pm table used by the
// inspection grid.
func DefaultTimeTable() *TimeTable {
	table, _ := NewTimeTable([]string{
		"12:00 pm", "1:00 pm", "2:00 pm", "3:00 pm", "4:00 pm", "5:00 pm",
		"6:00 pm", "7:00 pm", "8:00 pm", "9:00 pm", "10:00 pm", "11:00 pm",
	})
	return table
}

// Len returns the number of time rows.
func (t *TimeTable) Len() int {
	return len(t.labels)
}

// Labels returns a copy of the ordered display labels.
func (t *TimeTable) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Label returns the display label at the given row index.
func (t *TimeTable) Label(row int) string {
	return t.labels[row]
}

// IndexOf resolves a display label to its row index.
func (t *TimeTable) IndexOf(label string) (int, bool) {
	i, ok := t.index[label]
	return i, ok
}

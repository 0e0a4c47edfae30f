package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeTable_RejectsEmpty(t *testing.T) {
	_, err := NewTimeTable(nil)
	assert.ErrorIs(t, err, ErrEmptyTimeTable)
}

func TestNewTimeTable_RejectsDuplicateLabels(t *testing.T) {
	_, err := NewTimeTable([]string{"9:00 am", "10:00 am", "9:00 am"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate time label")
}

func TestTimeTable_IndexOf(t *testing.T) {
	table, err := NewTimeTable([]string{"9:00 am", "10:00 am", "11:00 am"})
	require.NoError(t, err)

	idx, ok := table.IndexOf("10:00 am")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = table.IndexOf("midnight")
	assert.False(t, ok)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, "11:00 am", table.Label(2))
}

func TestTimeTable_LabelsReturnsCopy(t *testing.T) {
	table, err := NewTimeTable([]string{"9:00 am", "10:00 am"})
	require.NoError(t, err)

	labels := table.Labels()
	labels[0] = "mutated"

	idx, ok := table.IndexOf("9:00 am")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "9:00 am", table.Label(0))
}

func TestDefaultTimeTable_CoversNoonToEleven(t *testing.T) {
	table := DefaultTimeTable()
	assert.Equal(t, 12, table.Len())
	assert.Equal(t, "12:00 pm", table.Label(0))
	assert.Equal(t, "11:00 pm", table.Label(11))
}

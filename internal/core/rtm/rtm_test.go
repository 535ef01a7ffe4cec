package rtm

import (
	"errors"
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	input := `{
		"lists": [{"id": "7", "name": "Work"}, {"id": 8, "name": "Home"}],
		"tasks": [
			{"id": 42, "list_id": "7", "name": "Write report", "date_due": 1700000000000, "date_due_has_time": true, "tags": ["a", "b"]},
			{"id": "43", "list_id": 8, "parent_id": "42", "date_completed": null, "postpone_count": 2}
		],
		"notes": [{"id": "1", "series_id": "9", "content": "first"}]
	}`

	e, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, e.Lists, 2)
	assert.Equal(t, ID("8"), e.Lists[1].ID)

	require.Len(t, e.Tasks, 2)
	assert.Equal(t, ID("42"), e.Tasks[0].ID)
	assert.Equal(t, int64(1700000000000), e.Tasks[0].DateDue)
	assert.True(t, e.Tasks[0].DateDueHasTime)
	assert.Equal(t, []string{"a", "b"}, e.Tasks[0].Tags)

	assert.Equal(t, ID("8"), e.Tasks[1].ListID)
	assert.Equal(t, ID("42"), e.Tasks[1].ParentID)
	assert.False(t, e.Tasks[1].Completed())
	assert.Equal(t, 2, e.Tasks[1].Postpones())

	require.Len(t, e.Notes, 1)
}

func TestDecode_MissingCollections(t *testing.T) {
	e, err := Decode(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, e.Lists)
	assert.Empty(t, e.Tasks)
	assert.Empty(t, e.Notes)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"tasks": [`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestDecode_TrailingData(t *testing.T) {
	for _, input := range []string{`{"tasks": []}garbage`, `{"tasks": []} {}`, `{"tasks": []}]`} {
		_, err := Decode(strings.NewReader(input))
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrMalformed)
	}

	_, err := Decode(strings.NewReader("{\"tasks\": []}\n\t "))
	require.NoError(t, err)
}

func TestDecode_MissingTaskID(t *testing.T) {
	input := `{"tasks": [{"id": "1"}, {"name": "no id"}, {"id": null}]}`

	_, err := Decode(strings.NewReader(input))

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "tasks[1].id", fieldErrs[0].Field)
	assert.Equal(t, "tasks[2].id", fieldErrs[1].Field)
}

func TestTask_Postpones(t *testing.T) {
	assert.Equal(t, 0, Task{}.Postpones())
	assert.Equal(t, 3, Task{Postponed: 3, PostponeCount: 1}.Postpones())
	assert.Equal(t, 1, Task{PostponeCount: 1}.Postpones())
}

func TestCounts(t *testing.T) {
	c := CountTasks([]Task{
		{ID: "1"},
		{ID: "2", DateCompleted: 1},
		{ID: "3"},
	})
	assert.Equal(t, Counts{Total: 3, Incomplete: 2, Completed: 1}, c)

	c.Merge(Counts{Total: 1, Completed: 1})
	assert.Equal(t, Counts{Total: 4, Incomplete: 2, Completed: 2}, c)
}

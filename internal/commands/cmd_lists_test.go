package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/rtm2ics/internal/core/rtm"
)

func TestLists_Table(t *testing.T) {
	input := writeExport(t, sampleExport)

	stdout, err := runApp(t, NewListsCmd(testFlags()).Register, "lists", input)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "LIST"))
	assert.True(t, strings.HasPrefix(lines[1], "Home/Garden"))
	assert.True(t, strings.HasPrefix(lines[2], "List-77 (unknown)"))
	assert.True(t, strings.HasPrefix(lines[3], "Work"))
	assert.Equal(t, []string{"4", "3", "1"}, strings.Fields(lines[4]))
}

func TestLists_JSON(t *testing.T) {
	input := writeExport(t, sampleExport)

	stdout, err := runApp(t, NewListsCmd(testFlags()).Register, "lists", "--json", input)
	require.NoError(t, err)

	var got []rtm.ListSummary
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		var s rtm.ListSummary
		require.NoError(t, json.Unmarshal([]byte(line), &s))
		got = append(got, s)
	}

	require.Len(t, got, 3)
	assert.Equal(t, rtm.ListSummary{
		ID:       "1",
		Name:     "Work",
		Resolved: true,
		Counts:   rtm.Counts{Total: 2, Incomplete: 1, Completed: 1},
	}, got[2])
	assert.False(t, got[1].Resolved)
}

func TestLists_Empty(t *testing.T) {
	input := writeExport(t, `{"lists": [{"id": "1", "name": "Work"}]}`)

	stdout, err := runApp(t, NewListsCmd(testFlags()).Register, "lists", input)
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

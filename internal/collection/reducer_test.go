package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourname/moodtracker/internal"
)

func assertSortedByDateDesc(t *testing.T, dates []string) {
	t.Helper()
	for i := 1; i < len(dates); i++ {
		assert.GreaterOrEqual(t, dates[i-1], dates[i])
	}
}

func happinessDates(list []internal.HappinessEntry) []string {
	dates := make([]string, len(list))
	for i, e := range list {
		dates[i] = e.Date
	}
	return dates
}

func mediaDates(list []internal.MediaEntry) []string {
	dates := make([]string, len(list))
	for i, e := range list {
		dates[i] = e.Date
	}
	return dates
}

func TestAddHappinessSortsDescending(t *testing.T) {
	var list []internal.HappinessEntry
	list = AddHappiness(list, internal.HappinessEntry{Date: "2024-10-21", Happiness: 1})
	list = AddHappiness(list, internal.HappinessEntry{Date: "2024-10-23", Happiness: 0})
	list = AddHappiness(list, internal.HappinessEntry{Date: "2024-10-22", Happiness: -1})

	assert.Equal(t, []string{"2024-10-23", "2024-10-22", "2024-10-21"}, happinessDates(list))
}

func TestAddHappinessIdempotent(t *testing.T) {
	e := internal.HappinessEntry{Date: "2024-10-23", Happiness: 2}
	list := AddHappiness(nil, e)
	list = AddHappiness(list, e)

	assert.Len(t, list, 1)
	assert.Equal(t, e, list[0])
}

func TestAddHappinessLastWriteWins(t *testing.T) {
	list := AddHappiness(nil, internal.HappinessEntry{Date: "2024-10-23", Happiness: 2})
	list = AddHappiness(list, internal.HappinessEntry{Date: "2024-10-23", Happiness: -1})

	assert.Len(t, list, 1)
	assert.Equal(t, -1, list[0].Happiness)
}

func TestAddHappinessDoesNotMutateInput(t *testing.T) {
	orig := []internal.HappinessEntry{{Date: "2024-10-21", Happiness: 1}}
	_ = AddHappiness(orig, internal.HappinessEntry{Date: "2024-10-22", Happiness: 0})

	assert.Equal(t, []internal.HappinessEntry{{Date: "2024-10-21", Happiness: 1}}, orig)
}

func TestUpdateHappinessInPlace(t *testing.T) {
	list := []internal.HappinessEntry{
		{Date: "2024-10-23", Happiness: 2},
		{Date: "2024-10-22", Happiness: 0},
	}
	out := UpdateHappiness(list, list[0], internal.HappinessEntry{Date: "2024-10-23", Happiness: -2})

	assert.Len(t, out, 2)
	assert.Equal(t, internal.HappinessEntry{Date: "2024-10-23", Happiness: -2}, out[0])
}

func TestUpdateHappinessDateMoveEvictsOccupant(t *testing.T) {
	list := []internal.HappinessEntry{
		{Date: "2024-10-23", Happiness: 2},
		{Date: "2024-10-22", Happiness: 0},
	}
	// Move the 10-22 entry onto 10-23, which is occupied.
	out := UpdateHappiness(list, list[1], internal.HappinessEntry{Date: "2024-10-23", Happiness: 1})

	assert.Len(t, out, 1)
	assert.Equal(t, internal.HappinessEntry{Date: "2024-10-23", Happiness: 1}, out[0])
}

func TestDeleteHappinessBatch(t *testing.T) {
	list := []internal.HappinessEntry{
		{Date: "2024-10-23", Happiness: 2},
		{Date: "2024-10-22", Happiness: 0},
		{Date: "2024-10-21", Happiness: -1},
	}
	out := DeleteHappiness(list, []internal.HappinessEntry{
		{Date: "2024-10-23", Happiness: 2},
		{Date: "2024-10-21", Happiness: -1},
		{Date: "2024-01-01", Happiness: 0}, // absent: no-op
	})

	assert.Equal(t, []internal.HappinessEntry{{Date: "2024-10-22", Happiness: 0}}, out)
}

func TestDeleteHappinessAbsentIsNoOp(t *testing.T) {
	list := []internal.HappinessEntry{{Date: "2024-10-22", Happiness: 0}}
	out := DeleteHappiness(list, []internal.HappinessEntry{{Date: "2024-10-22", Happiness: 1}})

	assert.Equal(t, list, out)
}

func TestAddMediaAllowsSharedDates(t *testing.T) {
	a := internal.MediaEntry{ID: "a", Date: "2024-10-20", Type: "book", Duration: 45}
	b := internal.MediaEntry{ID: "b", Date: "2024-10-20", Type: "music", Duration: 30}
	c := internal.MediaEntry{ID: "c", Date: "2024-10-21", Type: "video", Duration: 15}

	list := AddMedia(nil, a, b)
	list = AddMedia(list, c)

	assert.Len(t, list, 3)
	assertSortedByDateDesc(t, mediaDates(list))
	assert.Equal(t, "c", list[0].ID)
}

func TestUpdateMediaByID(t *testing.T) {
	list := []internal.MediaEntry{
		{ID: "a", Date: "2024-10-20", Type: "book", Duration: 45},
		{ID: "b", Date: "2024-10-20", Type: "music", Duration: 30},
	}
	out := UpdateMedia(list, internal.MediaEntry{ID: "b", Date: "2024-10-22", Type: "podcast", Duration: 60})

	assert.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "podcast", out[0].Type)
	assertSortedByDateDesc(t, mediaDates(out))
}

func TestDeleteMediaBatch(t *testing.T) {
	list := []internal.MediaEntry{
		{ID: "a", Date: "2024-10-20"},
		{ID: "b", Date: "2024-10-21"},
		{ID: "c", Date: "2024-10-22"},
	}
	out := DeleteMedia(list, []string{"a", "c", "zzz"})

	assert.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}

func TestReducersAlwaysSorted(t *testing.T) {
	list := []internal.HappinessEntry{
		{Date: "2024-10-19", Happiness: 0},
		{Date: "2024-10-25", Happiness: 1},
	}
	list = AddHappiness(list, internal.HappinessEntry{Date: "2024-10-21", Happiness: 2})
	assertSortedByDateDesc(t, happinessDates(list))

	list = UpdateHappiness(list, list[2], internal.HappinessEntry{Date: "2024-10-28", Happiness: 0})
	assertSortedByDateDesc(t, happinessDates(list))

	list = DeleteHappiness(list, list[:1])
	assertSortedByDateDesc(t, happinessDates(list))
}

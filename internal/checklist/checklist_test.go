package checklist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyabroad/departure-planner/internal/models"
	"studyabroad/departure-planner/internal/plannererror"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	require.Len(t, tmpl, 19)

	tmpl[0].Title = "mutated"
	assert.NotEqual(t, "mutated", Template()[0].Title, "Template must return a copy")

	allowed := map[string]bool{}
	for _, c := range Categories() {
		allowed[c] = true
	}
	for _, entry := range Template() {
		assert.True(t, allowed[entry.Category], entry.Category)
		assert.Positive(t, entry.DaysBeforeDeparture)
	}
}

func TestGenerate(t *testing.T) {
	departure := date(2025, time.September, 1)
	now := date(2025, time.March, 1)

	items := Generate(departure, now)
	require.Len(t, items, 19)

	ids := map[string]bool{}
	for _, item := range items {
		assert.False(t, item.Completed)
		assert.False(t, ids[item.ID], "duplicate id %s", item.ID)
		ids[item.ID] = true
	}

	// 184 days to departure: the passport task is 4 days out, the 1-day task 183.
	assert.Equal(t, "180-Check passport expiry and renew if needed", items[len(items)-1].ID)
	assert.Equal(t, "D-4", items[len(items)-1].RecommendedDate)
	assert.Equal(t, "D-183", items[0].RecommendedDate)
	assert.Equal(t, "1-Final pre-departure check", items[0].ID)
}

func TestGenerateOrdering(t *testing.T) {
	departure := date(2025, time.September, 1)
	now := date(2025, time.July, 1) // 62 days out

	items := Generate(departure, now)

	prev := sortKey(items[0].RecommendedDate)
	for _, item := range items[1:] {
		key := sortKey(item.RecommendedDate)
		assert.LessOrEqual(t, key, prev)
		prev = key
	}

	// Tasks whose target date has passed collapse to D+0 and come last.
	last := items[len(items)-1]
	assert.Equal(t, "D+0", last.RecommendedDate)

	// Ties keep template order: the three 120-day tasks are overdue and the
	// passport check precedes the visa tasks.
	var overdue []string
	for _, item := range items {
		if item.RecommendedDate == "D+0" {
			overdue = append(overdue, item.ID)
		}
	}
	require.NotEmpty(t, overdue)
	assert.Equal(t, "180-Check passport expiry and renew if needed", overdue[0])
}

func TestGenerateForProfile(t *testing.T) {
	profile := models.DefaultProfile()
	profile.DepartureDate = "2025-09-01"

	items, err := GenerateForProfile(profile, date(2025, time.March, 1))
	require.NoError(t, err)
	assert.Len(t, items, 19)

	profile.DepartureDate = "soon"
	_, err = GenerateForProfile(profile, date(2025, time.March, 1))
	assert.True(t, plannererror.IsInvalidInput(err))
}

func TestNewCustomItem(t *testing.T) {
	now := date(2025, time.August, 1)

	t.Run("with profile", func(t *testing.T) {
		profile := models.DefaultProfile()
		profile.DepartureDate = "2025-09-01"

		item, err := NewCustomItem("  Buy adapter ", "", &profile, now)
		require.NoError(t, err)
		assert.Equal(t, "Buy adapter", item.Title)
		assert.Equal(t, CategoryOther, item.Category)
		assert.Equal(t, "D-31", item.RecommendedDate)
		assert.Contains(t, item.ID, CustomIDPrefix)
		assert.False(t, item.Completed)
	})

	t.Run("without profile", func(t *testing.T) {
		item, err := NewCustomItem("Buy adapter", CategoryPacking, nil, now)
		require.NoError(t, err)
		assert.Equal(t, "D-0", item.RecommendedDate)
		assert.Equal(t, CategoryPacking, item.Category)
	})

	t.Run("past departure", func(t *testing.T) {
		profile := models.DefaultProfile()
		profile.DepartureDate = "2025-07-01"

		item, err := NewCustomItem("Late task", "", &profile, now)
		require.NoError(t, err)
		assert.Equal(t, "D+0", item.RecommendedDate)
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := NewCustomItem("   ", "", nil, now)
		assert.True(t, plannererror.IsInvalidInput(err))
	})

	t.Run("unique ids", func(t *testing.T) {
		a, _ := NewCustomItem("A", "", nil, now)
		b, _ := NewCustomItem("A", "", nil, now)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestAppend(t *testing.T) {
	items := Generate(date(2025, time.September, 1), date(2025, time.March, 1))
	custom, err := NewCustomItem("Extra", "", nil, date(2025, time.March, 1))
	require.NoError(t, err)

	out := Append(items, custom)
	require.Len(t, out, 20)
	assert.Equal(t, custom, out[19])
	assert.Len(t, items, 19)
}

func TestToggle(t *testing.T) {
	items := Generate(date(2025, time.September, 1), date(2025, time.March, 1))
	id := items[3].ID

	once := Toggle(items, id)
	assert.True(t, once[3].Completed)
	assert.False(t, items[3].Completed, "input must not be modified")

	twice := Toggle(once, id)
	assert.Equal(t, items, twice)

	assert.Equal(t, items, Toggle(items, "missing"))
}

func TestDelete(t *testing.T) {
	items := Generate(date(2025, time.September, 1), date(2025, time.March, 1))
	id := items[5].ID

	out := Delete(items, id)
	require.Len(t, out, 18)
	assert.False(t, Contains(out, id))
	assert.Equal(t, items[4], out[4])
	assert.Equal(t, items[6], out[5])

	assert.Equal(t, out, Delete(out, id))
}

func TestValidateIDs(t *testing.T) {
	assert.NoError(t, ValidateIDs(nil))
	assert.NoError(t, ValidateIDs(Generate(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))))

	err := ValidateIDs([]models.ChecklistItem{{ID: "x"}, {ID: "x"}})
	require.Error(t, err)
	assert.True(t, plannererror.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "duplicate id")

	err = ValidateIDs([]models.ChecklistItem{{ID: ""}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be blank")
}

func TestGroupByCategory(t *testing.T) {
	items := []models.ChecklistItem{
		{ID: "1", Category: "Travel"},
		{ID: "2", Category: "Documents"},
		{ID: "3", Category: "Travel"},
		{ID: "4", Category: "Other"},
	}

	groups := GroupByCategory(items)
	require.Len(t, groups, 3)
	assert.Equal(t, "Documents", groups[0].Category)
	assert.Equal(t, "Other", groups[1].Category)
	assert.Equal(t, "Travel", groups[2].Category)
	assert.Equal(t, "1", groups[2].Items[0].ID)
	assert.Equal(t, "3", groups[2].Items[1].ID)

	assert.Empty(t, GroupByCategory(nil))
}

func TestProgress(t *testing.T) {
	items := Generate(date(2025, time.September, 1), date(2025, time.March, 1))
	items = Toggle(items, items[0].ID)
	items = Toggle(items, items[1].ID)

	done, total := Progress(items)
	assert.Equal(t, 2, done)
	assert.Equal(t, 19, total)
}

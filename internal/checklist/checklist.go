// Package checklist turns a departure date into a dated preparation checklist
// and provides the pure operations applied to it afterwards.
package checklist

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"studyabroad/departure-planner/internal/dateutils"
	"studyabroad/departure-planner/internal/models"
	"studyabroad/departure-planner/internal/plannererror"
)

// CustomIDPrefix prefixes the ids of user-added items.
const CustomIDPrefix = "custom-"

// Generate builds the checklist for the profile's departure date, evaluated at now.
// Items are ordered by remaining days, longest lead time first.
func Generate(departure time.Time, now time.Time) []models.ChecklistItem {
	items := make([]models.ChecklistItem, 0, len(template))
	for _, entry := range template {
		targetDate := departure.AddDate(0, 0, -entry.DaysBeforeDeparture)
		items = append(items, models.ChecklistItem{
			ID:              strconv.Itoa(entry.DaysBeforeDeparture) + "-" + entry.Title,
			Title:           entry.Title,
			RecommendedDate: dateutils.FormatRelativeDay(dateutils.DaysUntil(targetDate, now)),
			Completed:       false,
			Category:        entry.Category,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return sortKey(items[i].RecommendedDate) > sortKey(items[j].RecommendedDate)
	})
	return items
}

// GenerateForProfile is Generate using the profile's departure date.
func GenerateForProfile(profile models.StudyProfile, now time.Time) ([]models.ChecklistItem, error) {
	departure, err := profile.Departure()
	if err != nil {
		return nil, &plannererror.InvalidInputError{
			Field:  "departureDate",
			Value:  profile.DepartureDate,
			Reason: "expected YYYY-MM-DD",
		}
	}
	return Generate(departure, now), nil
}

// sortKey maps a label to its signed ordering key. Overdue labels sort last.
func sortKey(label string) int {
	days, overdue, err := dateutils.ParseRelativeDay(label)
	if err != nil || overdue {
		return math.MinInt
	}
	return days
}

// NewCustomItem creates a user-added item. The label is the distance to the
// departure when the profile has one, otherwise "D-0".
func NewCustomItem(title, category string, profile *models.StudyProfile, now time.Time) (models.ChecklistItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.ChecklistItem{}, &plannererror.InvalidInputError{
			Field:  "title",
			Value:  title,
			Reason: "must not be blank",
		}
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = CategoryOther
	}

	label := dateutils.FormatRelativeDay(0)
	if profile != nil {
		if departure, err := profile.Departure(); err == nil {
			label = dateutils.FormatRelativeDay(dateutils.DaysUntil(departure, now))
		}
	}

	return models.ChecklistItem{
		ID:              CustomIDPrefix + uuid.New().String(),
		Title:           title,
		RecommendedDate: label,
		Category:        category,
	}, nil
}

// Append returns a new collection with item at the end.
func Append(items []models.ChecklistItem, item models.ChecklistItem) []models.ChecklistItem {
	out := make([]models.ChecklistItem, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Toggle returns a new collection with the completion flag of id flipped.
// Unknown ids leave the collection unchanged.
func Toggle(items []models.ChecklistItem, id string) []models.ChecklistItem {
	out := make([]models.ChecklistItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
		}
	}
	return out
}

// Delete returns a new collection without the item with the given id.
func Delete(items []models.ChecklistItem, id string) []models.ChecklistItem {
	out := make([]models.ChecklistItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// Contains reports whether an item with id exists.
func Contains(items []models.ChecklistItem, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// ValidateIDs rejects blank and duplicate ids.
func ValidateIDs(items []models.ChecklistItem) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return &plannererror.InvalidInputError{Field: "id", Value: item.ID, Reason: "must not be blank"}
		}
		if seen[id] {
			return &plannererror.InvalidInputError{Field: "id", Value: item.ID, Reason: "duplicate id"}
		}
		seen[id] = true
	}
	return nil
}

// GroupByCategory partitions items by category. Groups are sorted by category
// name; items keep their collection order.
func GroupByCategory(items []models.ChecklistItem) []models.CategoryGroup {
	index := make(map[string]int)
	var groups []models.CategoryGroup
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, models.CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})
	return groups
}

// Progress counts completed items.
func Progress(items []models.ChecklistItem) (done, total int) {
	for _, item := range items {
		if item.Completed {
			done++
		}
	}
	return done, len(items)
}

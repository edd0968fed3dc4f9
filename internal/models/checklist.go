package models

// ChecklistTemplateEntry is one milestone of the fixed preparation template.
type ChecklistTemplateEntry struct {
	Title               string
	DaysBeforeDeparture int
	Category            string
}

// ChecklistItem is a dated, categorized task shown to the user.
type ChecklistItem struct {
	ID              string `json:"id" csv:"ID"`
	Title           string `json:"title" csv:"Title"`
	RecommendedDate string `json:"recommendedDate" csv:"RecommendedDate"` // relative-day label, e.g. D-30
	Completed       bool   `json:"completed" csv:"Completed"`
	Category        string `json:"category" csv:"Category"`
}

// CategoryGroup is a display partition of checklist items sharing a category.
type CategoryGroup struct {
	Category string
	Items    []ChecklistItem
}

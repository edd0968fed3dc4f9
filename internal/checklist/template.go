package checklist

import "studyabroad/departure-planner/internal/models"

// Checklist categories.
const (
	CategoryDocuments     = "Documents"
	CategorySchool        = "School"
	CategoryInsurance     = "Insurance"
	CategoryFinance       = "Finance"
	CategoryTravel        = "Travel"
	CategoryHousing       = "Housing"
	CategoryCommunication = "Communication"
	CategoryPacking       = "Packing"
	CategoryInfo          = "Info"
	CategoryOther         = "Other"
)

var template = [...]models.ChecklistTemplateEntry{
	{Title: "Check passport expiry and renew if needed", DaysBeforeDeparture: 180, Category: CategoryDocuments},
	{Title: "Prepare visa application documents", DaysBeforeDeparture: 150, Category: CategoryDocuments},
	{Title: "Submit visa application", DaysBeforeDeparture: 120, Category: CategoryDocuments},
	{Title: "Confirm letter of acceptance", DaysBeforeDeparture: 120, Category: CategorySchool},
	{Title: "Pay tuition", DaysBeforeDeparture: 90, Category: CategorySchool},
	{Title: "Apply for health insurance", DaysBeforeDeparture: 90, Category: CategoryInsurance},
	{Title: "Check vaccinations and book missing shots", DaysBeforeDeparture: 90, Category: CategoryInsurance},
	{Title: "Prepare bank account opening documents", DaysBeforeDeparture: 60, Category: CategoryFinance},
	{Title: "Get an international credit or debit card", DaysBeforeDeparture: 60, Category: CategoryFinance},
	{Title: "Book flight", DaysBeforeDeparture: 60, Category: CategoryTravel},
	{Title: "Confirm housing (dorm, homestay or rental)", DaysBeforeDeparture: 60, Category: CategoryHousing},
	{Title: "Pay first month rent and deposit", DaysBeforeDeparture: 45, Category: CategoryHousing},
	{Title: "Arrange phone plan or SIM card", DaysBeforeDeparture: 30, Category: CategoryCommunication},
	{Title: "Write packing list (clothes, electronics, documents)", DaysBeforeDeparture: 30, Category: CategoryPacking},
	{Title: "Make copies of essential documents", DaysBeforeDeparture: 14, Category: CategoryDocuments},
	{Title: "Collect local contacts and addresses", DaysBeforeDeparture: 14, Category: CategoryInfo},
	{Title: "Confirm airport pickup or transit", DaysBeforeDeparture: 7, Category: CategoryTravel},
	{Title: "Final packing", DaysBeforeDeparture: 3, Category: CategoryPacking},
	{Title: "Final pre-departure check", DaysBeforeDeparture: 1, Category: CategoryOther},
}

// Template returns a copy of the fixed preparation template.
func Template() []models.ChecklistTemplateEntry {
	out := make([]models.ChecklistTemplateEntry, len(template))
	copy(out, template[:])
	return out
}

// Categories returns the template categories in first-seen order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, entry := range template {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			out = append(out, entry.Category)
		}
	}
	if !seen[CategoryOther] {
		out = append(out, CategoryOther)
	}
	return out
}

package logging

// Standardized field names for structured logging.
const (
	FieldCity           = "city"
	FieldDurationMonths = "duration_months"
	FieldDepartureDate  = "departure_date"
	FieldItemID         = "item_id"
	FieldCategory       = "category"
	FieldStoreKey       = "store_key"
	FieldBackend        = "backend"
	FieldOperation      = "operation"
	FieldStatus         = "status"
	FieldReason         = "reason"
	FieldError          = "error"
	FieldCount          = "count"
	FieldRate           = "rate"
	FieldFile           = "file_path"
	FieldOutputFile     = "output_file"
	FieldFormat         = "format"
)

package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldCountry    = "country"
	FieldDateKey    = "date_key"
	FieldHolidays   = "holidays"
	FieldForce      = "force"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentCalendar = "calendar"
	ComponentStorage  = "storage"
	ComponentAMQP     = "amqp"
	ComponentWorker   = "worker"
	ComponentGemini   = "gemini"
	ComponentExport   = "export"
)

// Operations defines standard operation names
const (
	OpRead     = "read"
	OpUpsert   = "upsert"
	OpDelete   = "delete"
	OpClear    = "clear"
	OpFetch    = "fetch"
	OpMerge    = "merge"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpExport   = "export"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

package api

// ErrorResponse is the body of every API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// ServiceResponse is one catalogue entry.
type ServiceResponse struct {
	Key            string   `json:"key"`
	Title          string   `json:"title"`
	Description    string   `json:"description"` // markdown
	Link           string   `json:"link"`
	ProcessingTime string   `json:"processing_time,omitempty"`
	Fee            string   `json:"fee"` // decimal pounds, e.g. "82.50"
	FeeText        string   `json:"fee_text"`
	MinimumAge     int      `json:"minimum_age,omitempty"`
	Requirements   []string `json:"requirements,omitempty"`
	Online         bool     `json:"online"`
	Featured       bool     `json:"featured"`
}

// ServiceListResponse lists the catalogue.
type ServiceListResponse struct {
	Data  []ServiceResponse `json:"data"`
	Total int               `json:"total"`
}

// ReceiptContentResponse is the confirmation copy of a service, without a
// reference.
type ReceiptContentResponse struct {
	Service     string   `json:"service"`
	Title       string   `json:"title"`
	Prefix      string   `json:"prefix"`
	NextSteps   []string `json:"next_steps"`
	Explanation string   `json:"explanation"`
	NoticeTitle string   `json:"notice_title"`
	NoticeText  string   `json:"notice_text"`
}

// OptionResponse is one value of a choice field.
type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldResponse describes one form field.
type FieldResponse struct {
	Name      string           `json:"name"`
	Label     string           `json:"label"`
	Hint      string           `json:"hint,omitempty"`
	Kind      string           `json:"kind"` // "text", "optional_text", "email", "message", "date" or "choice"
	Step      int              `json:"step"`
	Required  bool             `json:"required"`
	MinLength int              `json:"min_length,omitempty"`
	MaxLength int              `json:"max_length,omitempty"`
	Default   string           `json:"default,omitempty"`
	Options   []OptionResponse `json:"options,omitempty"`
}

// FormResponse describes a form and its fields in display order.
type FormResponse struct {
	Name    string          `json:"name"`
	Service string          `json:"service"`
	Steps   []string        `json:"steps,omitempty"`
	Fields  []FieldResponse `json:"fields"`
}

// ValidateRequest carries field values keyed by field name.
type ValidateRequest struct {
	Values map[string]string `json:"values"`
}

// ValidateResponse reports the outcome of validating every field.
type ValidateResponse struct {
	Valid  bool                `json:"valid"`
	Errors []FieldErrorResponse `json:"errors"`
}

// FieldErrorResponse is one field's validation message.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

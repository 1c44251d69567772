package response_models

// CreateResult reports the outcome of an idempotency-guarded insert. A write
// skipped because an equivalent record already exists is a successful outcome
// with Acknowledged=false, never an error.
type CreateResult struct {
	Acknowledged bool        `json:"acknowledged"`
	Message      string      `json:"message,omitempty"`
	Record       interface{} `json:"record,omitempty"`
}

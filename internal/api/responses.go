package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type FieldError struct {
	Field   string `json:"field" example:"monthly_fee_cents"`
	Message string `json:"message" example:"monthly fee must be positive"`
}

type ValidationErrorResponse struct {
	Error  string       `json:"error" example:"validation failed"`
	Fields []FieldError `json:"fields"`
}

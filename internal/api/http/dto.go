package httpapi

// DetectRequest тело POST /detect
type DetectRequest struct {
	Image string `json:"image" validate:"required"` // data:<mime>;base64,<payload>
}

// DetectResponse ответ POST /detect
type DetectResponse struct {
	EyesDetected bool   `json:"eyes_detected"`
	Image        string `json:"image"` // data:image/jpeg;base64,<payload>
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

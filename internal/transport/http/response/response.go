package response

import "time"

// ErrorBody is the uniform shape every failure is rendered as, whatever
// raised it.
type ErrorBody struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
}

func NewErrorBody(status int, message, rawErr, path string) ErrorBody {
	return ErrorBody{
		Status:    status,
		Message:   message,
		Error:     rawErr,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Path:      path,
	}
}

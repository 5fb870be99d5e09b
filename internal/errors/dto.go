package errors

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Status  int               `json:"status" example:"404"`
	Error   string            `json:"error" example:"Not Found"`
	Message string            `json:"message" example:"Object not found with id: 7"`
	Path    string            `json:"path" example:"/api/rooms/7"`
	Errors  map[string]string `json:"errors,omitempty"`
}

package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Kept in sync with the central error handler's envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// deleteResponse confirms a successful delete.
type deleteResponse struct {
	Detail string `json:"detail"`
}

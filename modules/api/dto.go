package api

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse acknowledges operations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// RootResponse is served at GET /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse is served at GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ModuleHealth is one entry of GET /health/modules.
type ModuleHealth struct {
	Healthy bool           `json:"healthy"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ModulesHealthResponse aggregates module health checks.
type ModulesHealthResponse struct {
	Status  string                  `json:"status"`
	Modules map[string]ModuleHealth `json:"modules"`
}

// CartItemQuantityRequest is the body of PUT /api/cart/:user_id/items/:item_id.
type CartItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

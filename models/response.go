package models

// HealthCheckResponse is the body of the health endpoint
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// DataResponse wraps a single document or message
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ListResponse wraps a list of documents. Pagination is only set by the
// paginated list endpoints.
type ListResponse struct {
	Success    bool        `json:"success"`
	Count      int         `json:"count"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Data       interface{} `json:"data"`
}

// Pagination describes the neighbouring pages of a list result
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// PageRef points at a page of results
type PageRef struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

// TokenResponse is returned by every endpoint that signs the user in
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

package types

// ErrorResponse is the generic error JSON shape returned by the API
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DataResponse is the envelope wrapped around every successful payload,
// matching the shape the scanner clients expect
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

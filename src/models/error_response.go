package models

// ErrorResponse is the standard error payload for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Activity not found"`
}

// MessageResponse is the standard payload for successful mutations.
type MessageResponse struct {
	Message string `json:"message" example:"Signed up test@mergington.edu for Chess Club"`
}

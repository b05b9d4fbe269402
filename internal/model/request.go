package model

import "fmt"

const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// ConversationTurn is one prior exchange supplied by the client, oldest first.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AnalyzeRequest is the body of POST /analyze. Pointer fields let the binder
// tell a missing field apart from a zero value such as mileage 0. Year and
// mileage accept any JSON value that is a whole number.
type AnalyzeRequest struct {
	Query   *string            `json:"query" binding:"required"`
	Make    *string            `json:"make" binding:"required"`
	Model   *string            `json:"model" binding:"required"`
	Year    *WholeNumber       `json:"year" binding:"required"`
	Mileage *WholeNumber       `json:"mileage" binding:"required"`
	History []ConversationTurn `json:"history"`
}

// VehicleContext renders the background sentence handed to the model.
func (r *AnalyzeRequest) VehicleContext() string {
	return fmt.Sprintf("Vehicle: %d %s %s with %d miles.", deref(r.Year), derefString(r.Make), derefString(r.Model), deref(r.Mileage))
}

func (r *AnalyzeRequest) QueryText() string {
	return derefString(r.Query)
}

func deref(v *WholeNumber) int {
	if v == nil {
		return 0
	}
	return v.Int()
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

package model

import "catalogapi/internal/validation"

// UserInput is a request-scoped user shape; it is never persisted.
type UserInput struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
}

func (in *UserInput) Validate() error {
	return validation.Struct(in)
}

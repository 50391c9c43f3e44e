package model

import (
	"time"

	"catalogapi/internal/validation"
)

// Item represents a catalog entry stored by the system.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, repository) without coupling to persistence.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Tax         *float64  `json:"tax,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemInput is the request body shape for creating or replacing an item.
// Tax is a pointer so "absent" and "zero" stay distinguishable; the
// price-with-tax computation only applies when tax was actually sent.
type ItemInput struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description string   `json:"description" validate:"omitempty,max=300"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Tax         *float64 `json:"tax" validate:"omitempty,gte=0"`
	Tags        []string `json:"tags" validate:"omitempty,dive,min=1"`
}

// Validate applies the struct tag rules.
func (in *ItemInput) Validate() error {
	return validation.Struct(in)
}

// PriceWithTax returns price+tax and whether tax was provided at all.
func (in *ItemInput) PriceWithTax() (float64, bool) {
	if in.Tax == nil {
		return in.Price, false
	}
	return in.Price + *in.Tax, true
}

// ItemDetailsInput is the combined body for the details update endpoint:
// two models plus a singular body value on the same level.
type ItemDetailsInput struct {
	Item       *ItemInput `json:"item" validate:"required"`
	User       *UserInput `json:"user" validate:"required"`
	Importance int        `json:"importance" validate:"required,gte=1"`
}

func (in *ItemDetailsInput) Validate() error {
	return validation.Struct(in)
}

// EmbeddedItemInput expects the item object nested under an "item" key
// rather than as the top-level body.
type EmbeddedItemInput struct {
	Item *ItemInput `json:"item" validate:"required"`
}

func (in *EmbeddedItemInput) Validate() error {
	return validation.Struct(in)
}

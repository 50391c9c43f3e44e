package model

import "catalogapi/internal/validation"

// FilterParams is a query-parameter model: the whole query string binds
// into one validated struct instead of per-parameter parsing.
type FilterParams struct {
	Limit   int      `json:"limit" query:"limit" validate:"gt=0,lte=100"`
	Offset  int      `json:"offset" query:"offset" validate:"gte=0"`
	OrderBy string   `json:"order_by" query:"order_by" validate:"oneof=created_at updated_at"`
	Tags    []string `json:"tags" query:"tags" validate:"omitempty,dive,min=1"`
}

// DefaultFilterParams returns the model with its documented defaults applied.
func DefaultFilterParams() FilterParams {
	return FilterParams{
		Limit:   100,
		Offset:  0,
		OrderBy: "created_at",
		Tags:    []string{},
	}
}

// FilterParamKeys lists the query keys the model declares. The strict
// endpoint rejects anything outside this set.
func FilterParamKeys() []string {
	return []string{"limit", "offset", "order_by", "tags"}
}

func (f *FilterParams) Validate() error {
	return validation.Struct(f)
}

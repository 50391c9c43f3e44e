package model

import "strings"

// ModelName is the closed set of ML model identifiers accepted as a path
// parameter. Anything outside the set is rejected before reaching a handler body.
type ModelName string

const (
	ModelAlexNet ModelName = "alexnet"
	ModelResNet  ModelName = "resnet"
	ModelLeNet   ModelName = "lenet"
)

// ModelNames lists the accepted values in declaration order.
func ModelNames() []ModelName {
	return []ModelName{ModelAlexNet, ModelResNet, ModelLeNet}
}

// ParseModelName validates a raw path segment against the accepted set.
func ParseModelName(s string) (ModelName, bool) {
	m := ModelName(s)
	switch m {
	case ModelAlexNet, ModelResNet, ModelLeNet:
		return m, true
	}
	return "", false
}

// Message returns the per-model greeting.
func (m ModelName) Message() string {
	switch m {
	case ModelAlexNet:
		return "Deep Learning FTW!"
	case ModelLeNet:
		return "LeCNN all the images"
	default:
		return "Have some residuals"
	}
}

// ModelNamesList renders the accepted values for error messages.
func ModelNamesList() string {
	names := ModelNames()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}

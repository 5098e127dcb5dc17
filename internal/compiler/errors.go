package compiler

import "fmt"

// Error codes (E200-E299 resolution, E300-E399 declaration set,
// E400-E499 configuration).
const (
	ErrUnsupportedType       = "E200" // no supported IR shape for a type annotation
	ErrUnsupportedAliasShape = "E201" // alias is neither a literal union nor an object shape
	ErrHeterogeneousEnum     = "E202" // enum mixes string and numeric member values
	ErrDuplicateDeclaration  = "E300" // two declarations share one name
	ErrCircularDependency    = "E301" // reference cycle between declarations
	ErrMissingConfiguration  = "E400" // required per-target configuration absent
)

// UnsupportedTypeError reports a type annotation that resolves to no
// supported IR shape. Name is the annotation's literal textual form.
type UnsupportedTypeError struct {
	Name string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("[%s] unsupported type: %s", ErrUnsupportedType, e.Name)
}

// Code returns the stable error code.
func (e *UnsupportedTypeError) Code() string { return ErrUnsupportedType }

// UnsupportedAliasShapeError reports a type alias that is neither a
// pure literal union nor a plain object shape.
type UnsupportedAliasShapeError struct {
	Alias string
}

func (e *UnsupportedAliasShapeError) Error() string {
	return fmt.Sprintf("[%s] unsupported alias shape: %s", ErrUnsupportedAliasShape, e.Alias)
}

// Code returns the stable error code.
func (e *UnsupportedAliasShapeError) Code() string { return ErrUnsupportedAliasShape }

// HeterogeneousEnumError reports an enum mixing string and numeric
// member values.
type HeterogeneousEnumError struct {
	Enum string
}

func (e *HeterogeneousEnumError) Error() string {
	return fmt.Sprintf("[%s] enum %s mixes string and number member values", ErrHeterogeneousEnum, e.Enum)
}

// Code returns the stable error code.
func (e *HeterogeneousEnumError) Code() string { return ErrHeterogeneousEnum }

// DuplicateDeclarationError reports two input declarations sharing a
// name. Enums and records share one namespace.
type DuplicateDeclarationError struct {
	Name string
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("[%s] duplicate declaration: %s", ErrDuplicateDeclaration, e.Name)
}

// Code returns the stable error code.
func (e *DuplicateDeclarationError) Code() string { return ErrDuplicateDeclaration }

// CircularDependencyError reports a reference cycle, naming the
// declaration at which the cycle was detected.
type CircularDependencyError struct {
	Name string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("[%s] circular dependency detected at %s", ErrCircularDependency, e.Name)
}

// Code returns the stable error code.
func (e *CircularDependencyError) Code() string { return ErrCircularDependency }

// MissingConfigurationError reports a required per-target configuration
// field that was absent, surfaced before emission begins.
type MissingConfigurationError struct {
	Field string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("[%s] missing required configuration: %s", ErrMissingConfiguration, e.Field)
}

// Code returns the stable error code.
func (e *MissingConfigurationError) Code() string { return ErrMissingConfiguration }

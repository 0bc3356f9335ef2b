package ui

import "errors"

var (
	ErrInvalidComponent  = errors.New("ui: invalid component")
	ErrComponentNotFound = errors.New("ui: component not found")
	ErrNotClonable       = errors.New("ui: component cannot be cloned")
	ErrNoManager         = errors.New("ui: component has no manager")
)

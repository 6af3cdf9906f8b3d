// Package validation provides input validation utilities for dagkit.
//
// It supports both struct tag validation (using the validator library)
// and programmatic validation with error collection. Struct tag
// validation is used for configuration and pipeline definitions.
//
// # Struct Tag Validation
//
//	type Definition struct {
//	    Name  string    `validate:"required"`
//	    Tasks []TaskDef `validate:"required,min=1,dive"`
//	}
//	err := validation.ValidateStruct(&def)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("input", cfg.Input).Min("top_n", cfg.TopN, 1)
//	err := v.Validate()
package validation

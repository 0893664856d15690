// Package validation provides struct-tag and field-level validation
// helpers used by the configuration loader.
//
// Struct validation is backed by go-playground/validator:
//
//	if err := validation.Validate(&cfg); err != nil { ... }
//
// Field-level validation collects errors across multiple checks:
//
//	v := validation.New().Required("id", cfg.ID).OneOf("type", string(cfg.Type), "webextension", "sdk", "bootstrapped")
//	if err := v.Validate(); err != nil { ... }
package validation

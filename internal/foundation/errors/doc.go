// Package errors provides classified error primitives used across docsidebars.
//
// A ClassifiedError carries a category (config, validation, network, ...),
// a severity, a retry hint and structured context. Errors are created with the
// fluent builder:
//
//	err := errors.ValidationError("icon asset not found").
//		WithContext("sidebar", "apis").
//		WithContext("icon", "/img/docs/sdk/rust.svg").
//		Build()
//
// The CLI adapter maps categories to process exit codes.
package errors

// Package errs provides standardized error types for the back-office application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure scenarios of this domain:
//   - ValueIsRequiredError: a required value (customer name, contact, items) is missing
//   - ValueIsInvalidError: a value is present but invalid (non-positive quantity)
//   - ObjectNotFoundError: a lookup by identifier found nothing (unknown product)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// All of these map to the user-correctable validation failures of the order
// workflow; none of them is fatal to the process.
package errs

// Package errs provides the standardized error taxonomy for the courier hub
// application. Every failure that crosses a layer boundary is one of the
// types defined here, so callers classify errors with errors.Is against the
// exported sentinels instead of matching message strings.
//
// The taxonomy mirrors how the HTTP layer responds:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed input, mapped to 400
//   - ObjectNotFoundError: unknown or foreign-tenant entity, mapped to 404
//   - ConflictError: lifecycle or uniqueness invariant violated, mapped to 409
//   - InvalidTransitionError: status change with no edge in the shipment
//     state machine, mapped to 400
//
// Each error type follows the same pattern: a sentinel variable, a struct
// with detail fields, constructors with and without a cause, an Error()
// formatter and an Unwrap() returning the sentinel.
package errs

// Package errs holds the error kinds the order service reports to its callers.
//
// Validation family (IsValidation reports true, HTTP 400):
//   - ValueIsRequiredError: a mandatory field or parameter is missing
//   - ValueIsInvalidError: a value breaks a domain rule, such as an unknown status
//   - ValueIsOutOfRangeError: a number falls outside [Min, Max]
//
// Lookup failures (HTTP 404):
//   - ObjectNotFoundError: no order has the requested id
//
// Storage failures (HTTP 500, body carries no detail):
//   - PersistenceError: the store is unreachable, timed out or rejected a write
//
// Each kind wraps a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) so callers
// branch with errors.Is instead of type assertions:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//		return ctx.JSON(http.StatusNotFound, failure("Order not found"))
//	}
//
// Messages never contain raw newlines; user-supplied values are flattened first.
package errs

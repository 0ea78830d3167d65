// Package apperr defines the kinds of failure a gridcal run can end with and
// renders them into the single message the entry point shows the user.
//
// Every error produced while resolving arguments or laying out months is an
// *Error carrying a Kind. Callers branch on the kind with errors.Is against
// the exported sentinels, or with KindOf.
package apperr

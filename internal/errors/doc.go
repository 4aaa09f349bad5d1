// Package errors provides structured errors for the rules service.
//
// Errors carry a Code, a user-facing message, an optional cause and
// metadata. Repositories return NotFound for missing records, orchestrators
// return InvalidArgument for malformed requests and FailedPrecondition for
// operations that cannot proceed. FailedPrecondition errors carry a Reason
// in their metadata:
//
//	errors.Ineligiblef("%s cannot multiclass into %s", from, to)
//	errors.VersionMismatch(envelope.Version, currentVersion)
//	errors.StaleExport(age, limit)
//
// and callers branch with IsIneligible, IsVersionMismatch and IsStaleExport.
//
// Game-rule violations are not errors. The validation engine reports them
// as a list of messages inside a ValidationResult so the caller sees every
// problem at once.
//
// Handlers convert with ToGRPCError; clients restore with FromGRPCError.
package errors

// Package apperrors is the error taxonomy of the tiling calculator. It
// defines one typed error per failure class (configuration, validation,
// enumeration limits, timeouts, calculation faults), the process exit code
// each class maps to, and HandleCalculationError, which turns any error
// from a count or walk into user-facing text plus the right exit code.
//
// Wrapped causes travel through Unwrap, so errors.Is and errors.As work
// across the taxonomy.
package apperrors

// Package orchestration coordinates concurrent execution of tiling counts
// and cross-checks the results of the independent counting methods. It
// decouples the counting work from presentation via the ProgressReporter,
// ResultPresenter, and ErrorHandler interfaces.
package orchestration

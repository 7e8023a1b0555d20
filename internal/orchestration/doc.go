// Package orchestration runs one operation on several arithmetic backends
// concurrently and cross-checks their results. It decouples execution from
// presentation via the ProgressReporter and ResultPresenter interfaces.
package orchestration

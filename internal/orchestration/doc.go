// Package orchestration converts many decimal files concurrently and
// aggregates the outcome. Presentation stays behind the ProgressReporter and
// ResultPresenter interfaces so the same batch can run under the CLI or in
// tests.
package orchestration

// Package metrics provides the observability hooks for parse runs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no call site needs a nil check:
//
//	d := markup.New(markup.WithGrammar(grammar), markup.WithRecorder(metrics.NoopRecorder{}))
//
// When metrics are enabled in the configuration the CLI swaps in a
// PrometheusRecorder bound to its own registry and, in watch mode, serves that
// registry through HTTPHandler.
package metrics

// Package analysis extracts frequency content from expectation series,
// mainly to read off Rabi and vacuum-Rabi frequencies from a finished
// run.
package analysis

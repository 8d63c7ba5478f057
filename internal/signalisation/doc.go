// Package signalisation defines the record model shared by every stage of
// the duplicate-processing pipeline.
//
// A Record carries the raw CSV fields of one fingerprint registration plus
// the classification appended by the decision engine. The package owns the
// canonical column names, the required-schema check, and the normalization
// rules that build the composite duplicate key. Original field values are
// never rewritten; normalization output exists only for key comparison.
package signalisation

// Package dedup implements the duplicate-signalisation decision engine.
//
// The pipeline is a deterministic batch computation: records whose GASPARD
// identifier starts with "PN" are excluded outright, the remainder is
// partitioned into duplicate groups by normalized identity key, and each
// group runs through a fixed cascade of tie-break rules (Tri 1, Tri 2,
// Tri 3.1 to 3.3) until every member is marked kept or removed. Earlier
// rules take absolute precedence; Tri 3.3 always terminates the chain.
//
// Classify is the whole pipeline; Partition, GroupRecords, and TieBreak
// expose the individual stages for targeted testing. All stage functions return new
// values and leave their inputs untouched, so resolved groups never alias
// caller state.
package dedup

// Package csvio reads and writes the signalisation CSV exchange format.
//
// Input files are comma-separated with a mandatory header row; lines opening
// with '#' are explanatory comments and are skipped, which lets previously
// generated reports be re-read. The reader decodes legacy single-byte
// charsets (latin-1, windows-1252) on request so exports from older systems
// load without a manual conversion step. The writer produces the same shape,
// including the commented title block the analysts expect at the top of each
// report.
package csvio

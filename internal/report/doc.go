// Package report renders the export bundle of a classification run.
//
// Each run writes a timestamped directory under the configured exports root
// containing the detailed kept and to-remove reports, the minimal deletion
// list for system import, and an HTML plus text summary of the run. Report
// content is derived purely from the engine's Result; this package never
// re-decides anything.
package report

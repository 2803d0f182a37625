// Package report persists search results as tab-separated text and reads
// them back.
//
// Files:
//
//	Write / Read       – region report (header + one row per region);
//	                     ReadWith filters node IDs against a node table.
//	WritePathMatrix    – subpath counts per (region, path).
//	WriteParams / ReadParams – run ID and search parameters.
//	WriteHistogram     – region count per node-set size.
//
// A report read back yields restored regions: node sets and persisted
// statistics only. They can be printed or re-written verbatim, but the
// search cannot continue from them because sequences are absent.
//
// Malformed input is reported as *ParseError carrying the 1-based line.
package report

// Package store checkpoints search runs in BadgerDB.
//
// A run is opened with Begin, which records its parameters and the report
// header. Store.Checkpoint plugs into finder.WithOnAccept and stores each
// accepted region as a report row the moment it is committed, so a run that
// is interrupted can still be exported with Export and read back with
// report.Read.
//
// Checkpoint rows are numbered in acceptance order; the final report written
// by the CLI numbers regions in sorted order instead.
package store

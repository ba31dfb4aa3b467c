// Package schedule runs one scheduling pass over a roster.
//
// Scheduler.Run builds the capacity network, solves it, checks the result,
// optionally proves it maximum, records metrics and logs a summary tagged
// with a per-run UUID. It never modifies the roster; callers use
// roster.Roster.Apply with Result.Assigned.
package schedule

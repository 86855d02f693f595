// Package queries holds the read side of the lifecycle. Handlers run plain SQL
// through GORM and return flat response structs; they never load aggregates.
package queries

// Package commands holds the validated write requests of the lifecycle. Each
// command is built by its constructor, which joins every field error, and carries
// the acting user so capability checks can run where the data is.
//
// Commands are executed by the lifecycle orchestrator, which owns the transaction
// and the per-listing critical section.
package commands

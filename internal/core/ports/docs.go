// Package ports defines the contracts between the lifecycle core and its adapters:
// one repository per persisted entity, the unit of work that binds them to a
// transaction, and the keyed lock guarding a listing's critical section.
package ports

// Package services provides the domain services of the fulfillment engine:
// operations that span places and vehicles and do not belong to a single
// aggregate.
//
// The package includes:
//   - CompatibilityResolver: which vehicle types may carry a load class on a route
//   - AllocationPlanner: greedy two pass vehicle selection (on site, then relocation)
//   - FulfillmentExecutor: pickup, load, move, deliver and unload of a plan
//   - Journal: the ordered record of every vehicle movement of one run
//
// Planner and executor work on the repositories of the caller's unit of work,
// so every read and write of a run belongs to the same transaction.
package services

// Package fleet contains the Vehicle aggregate and the vehicle types with
// their load and route capabilities.
package fleet

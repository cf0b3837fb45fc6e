// Package place contains the Place aggregate: the stops goods are picked up
// from and delivered to, with the storage rules of each place kind.
package place

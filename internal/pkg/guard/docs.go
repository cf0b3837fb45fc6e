// Package guard holds the constructor guard shared by the domain model.
package guard

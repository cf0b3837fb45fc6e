// Package geo holds the nations and cities places are attached to.
package geo

// Package services provides domain services that act on more than one order at once.
//
// The package includes:
//   - StatusTransitionEngine: applies one status to a set of order ids as a single unit
package services

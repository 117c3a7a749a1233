// Package kernel provides the identity and time primitives shared by the order domain.
//
// The package includes:
//   - OrderID: the integer identifier of an order, zero is never valid
//   - IDGenerator / MonotonicIDGenerator: structurally unique, strictly increasing order ids
//   - Clock / MonotonicClock: receipt timestamps that never go backwards between calls
//   - UUID: random identifiers for live subscribers and HTTP requests
//
// Every type here is safe for concurrent use.
package kernel

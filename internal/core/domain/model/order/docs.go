// Package order provides the Order aggregate and its lifecycle events.
//
// The package includes:
//   - Order: one shipment request, identified by kernel.OrderID and stamped with its receipt time
//   - Details / Item: the client-supplied part of an order, validated on construction
//   - Status: the closed set of statuses an order can be moved to
//   - OrderCreated, StatusUpdated, OrderDeleted: events emitted after a mutation persists
//
// Key business rules:
//   - Every order starts in Received
//   - Any valid status may follow any other; there is no forward-only rule
//   - Deletion is terminal and an id is never reused
package order

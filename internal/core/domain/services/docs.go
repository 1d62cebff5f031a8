// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RoutePlanner: A pure domain service that groups delivery stops into a
//     visiting order and sets far outliers aside
//   - StockLedger: The critical section through which all stock reservations,
//     releases and external reconciliations are serialized
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

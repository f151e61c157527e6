// Package services provides domain services that orchestrate business logic
// across multiple domain entities of the medicine order system.
//
// The package includes:
//   - PharmacyMatcher: ranks pharmacies by geographic proximity to a delivery
//     point and quotes distance-based delivery fees and time estimates.
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root.
package services

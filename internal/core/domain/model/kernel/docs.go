// Package kernel provides core domain primitives shared across the medicine
// order domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a validated latitude/longitude pair with great-circle distance
//   - OrderNumber: the human-readable, immutable order identifier
//
// These primitives enforce domain invariants at construction time, are
// immutable, and are safe for concurrent use.
package kernel

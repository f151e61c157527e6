// Package ports defines repository and gateway interfaces for the medicine
// order domain. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/order"
)

// ErrConcurrencyConflict is returned by Update when the stored order version
// no longer matches the version the aggregate was loaded with. The caller
// should reload the aggregate and retry or surface a conflict to the client.
var ErrConcurrencyConflict = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using optimistic
	// concurrency control. The write only succeeds when the stored version
	// matches the aggregate's loaded version; otherwise ErrConcurrencyConflict
	// is returned and no changes are applied.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and current assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderNumber retrieves an order aggregate by its business order number.
	GetByOrderNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetAllInPendingStatus retrieves all orders that have no pharmacy assigned yet.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllInRejectedStatus retrieves all orders whose last assignment was
	// rejected and that still need a new pharmacy.
	GetAllInRejectedStatus(ctx context.Context) ([]*order.Order, error)
}

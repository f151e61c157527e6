// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"mediorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PharmacyRepoFactory provides access to the pharmacy repository within a transaction.
	PharmacyRepoFactory interface {
		PharmacyRepository() ports.PharmacyRepository
	}

	// PrescriptionRepoFactory provides access to the prescription repository within a transaction.
	PrescriptionRepoFactory interface {
		PrescriptionRepository() ports.PrescriptionRepository
	}

	// PatientRepoFactory provides access to the patient repository within a transaction.
	PatientRepoFactory interface {
		PatientRepository() ports.PatientRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignmentUoW manages transactions for pharmacy assignment.
	// Covers the order aggregate plus the pharmacy directory it is matched against.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		PharmacyRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// CreateOrderUoW manages transactions for order creation.
	// Order creation reads the prescription, the patient record and the
	// pharmacy directory before persisting the new order.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		PharmacyRepoFactory
		PrescriptionRepoFactory
		PatientRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}
)

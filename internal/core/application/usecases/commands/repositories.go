// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
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

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StockRepoFactory provides access to stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// CourierRepoFactory provides access to courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// ClinicRepoFactory provides access to clinic repository within a transaction.
	ClinicRepoFactory interface {
		ClinicRepository() ports.ClinicRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StockUoW manages transactions for stock-only operations.
	StockUoW interface {
		TxManager
		StockRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// ClinicUoW manages transactions for clinic-only operations.
	ClinicUoW interface {
		TxManager
		ClinicRepoFactory
	}

	// ClinicUoWFactory creates new clinic unit of work instances.
	ClinicUoWFactory interface {
		Create() ClinicUoW
	}

	// OrderStockUoW manages transactions spanning orders and stock.
	// Used by commands that reserve or release stock for an order, so the
	// order write and the stock adjustment commit or roll back together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   stockRepo := uow.StockRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderStockUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
	}

	// OrderStockUoWFactory creates new order+stock unit of work instances.
	OrderStockUoWFactory interface {
		Create() OrderStockUoW
	}

	// OrderCourierUoW manages transactions spanning orders and the courier
	// roster. Used when a command reads or mutates both.
	OrderCourierUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// OrderCourierUoWFactory creates new order+courier unit of work instances.
	OrderCourierUoWFactory interface {
		Create() OrderCourierUoW
	}

	// OrderClinicUoW manages transactions spanning orders and clinics.
	OrderClinicUoW interface {
		TxManager
		OrderRepoFactory
		ClinicRepoFactory
	}

	// OrderClinicUoWFactory creates new order+clinic unit of work instances.
	OrderClinicUoWFactory interface {
		Create() OrderClinicUoW
	}
)

package persistence

import (
	"context"

	"github.com/upendo-clinic/donation-ledger/internal/domain/entity"
)

// DonationRepository defines essential methods to interact with donation
// transaction records
type DonationRepository interface {
	// Create persists a new pending transaction. Called before the partner
	// push request so a durable record exists even if the call never completes.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database is unreachable
	Create(ctx context.Context, transaction *entity.DonationTransaction) error

	// Update persists correlation ids and post-transition bookkeeping such as
	// the supporter link. Terminal status transitions go through
	// UpdateIfPending instead.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrDatabaseConnection: If the database is unreachable
	Update(ctx context.Context, transaction *entity.DonationTransaction) error

	// UpdateIfPending persists a terminal status transition only if the stored
	// row is still pending. The condition is evaluated inside the UPDATE
	// statement, so concurrent deliveries of the same callback race on the
	// database row and exactly one of them wins.
	//
	// Possible errors:
	// - ErrDuplicateCallback: If another delivery already finalized the transaction
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrDatabaseConnection: If the database is unreachable
	UpdateIfPending(ctx context.Context, transaction *entity.DonationTransaction) error

	// GetByID retrieves a transaction by its opaque identifier
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction with the given id exists
	// - ErrDatabaseConnection: If the database is unreachable
	GetByID(ctx context.Context, id string) (*entity.DonationTransaction, error)

	// GetByCheckoutRequestID retrieves a transaction by the partner's checkout
	// request id. This is the only key the callback reconciler may use.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction matches
	// - ErrDatabaseConnection: If the database is unreachable
	GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*entity.DonationTransaction, error)
}

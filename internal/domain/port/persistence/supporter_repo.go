package persistence

import (
	"context"
	"time"

	"github.com/upendo-clinic/donation-ledger/internal/domain/entity"
)

// SupporterRepository defines methods to interact with the supporter ledger
type SupporterRepository interface {
	// ApplyContribution upserts the supporter row for the contribution's
	// normalized name as a single atomic store operation: the create branch
	// initializes totals, the update branch increments them at the SQL level.
	// Concurrent contributions under the same name must not lose updates.
	// Returns the post-upsert supporter snapshot.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database is unreachable
	ApplyContribution(ctx context.Context, contribution *entity.Contribution, at time.Time) (*entity.DonationSupporter, error)

	// GetByID retrieves a supporter by primary key
	//
	// Possible errors:
	// - ErrSupporterNotFound: If no supporter with the given id exists
	// - ErrDatabaseConnection: If the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.DonationSupporter, error)

	// GetByNormalizedName retrieves a supporter by the normalized dedup key
	//
	// Possible errors:
	// - ErrSupporterNotFound: If no supporter with the given key exists
	// - ErrDatabaseConnection: If the database is unreachable
	GetByNormalizedName(ctx context.Context, normalizedName string) (*entity.DonationSupporter, error)

	// UpdateAcknowledgement sets only the public acknowledgement flag,
	// leaving totals and counts untouched
	//
	// Possible errors:
	// - ErrSupporterNotFound: If no supporter with the given id exists
	// - ErrDatabaseConnection: If the database is unreachable
	UpdateAcknowledgement(ctx context.Context, id uint64, granted bool, at time.Time) (*entity.DonationSupporter, error)

	// List returns the full supporter set, used by the overview aggregator
	// and the admin snapshots view
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database is unreachable
	List(ctx context.Context) ([]*entity.DonationSupporter, error)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories only ever see this interface, so the same code runs both as
// single-statement calls on the pool and inside the seeding transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store bundles the per-entity repositories behind one handle. It is
// constructed once in main and passed explicitly to resolvers and the seeder;
// there is no package-level pool.
type Store struct {
	db      *sql.DB // nil when bound to a transaction
	q       Querier
	metrics *Metrics
	logger  *zap.Logger

	Sites            *SitesRepo
	Rooms            *RoomsRepo
	Devices          *DevicesRepo
	SensorReadings   *SensorReadingsRepo
	ControlSetpoints *ControlSetpointsRepo
}

type Option func(*Store)

// WithMetrics attaches store-call counters.
func WithMetrics(m *Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithLogger sets the logger used for transaction bookkeeping.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

func New(db *sql.DB, opts ...Option) *Store {
	s := &Store{db: db, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.bind(db)
	return s
}

func (s *Store) bind(q Querier) {
	s.q = q
	s.Sites = &SitesRepo{q: q, metrics: s.metrics}
	s.Rooms = &RoomsRepo{q: q, metrics: s.metrics}
	s.Devices = &DevicesRepo{q: q, metrics: s.metrics}
	s.SensorReadings = &SensorReadingsRepo{q: q, metrics: s.metrics}
	s.ControlSetpoints = &ControlSetpointsRepo{q: q, metrics: s.metrics}
}

// WithTx runs fn against a transaction-bound copy of the store. Any error
// from fn (or commit) rolls back every statement issued through the copy.
func (s *Store) WithTx(ctx context.Context, fn func(*Store) error) error {
	if s.db == nil {
		return errors.New("store is already transaction-bound")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	txStore := &Store{metrics: s.metrics, logger: s.logger}
	txStore.bind(tx)
	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Warn("transaction rollback failed", zap.Error(rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

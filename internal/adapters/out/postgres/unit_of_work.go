// Package postgres provides the GORM based Unit of Work of the freight
// service. A unit of work owns one database transaction; every repository it
// hands out runs inside that transaction once Begin has been called, and on
// the plain connection otherwise.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	place, err := uow.PlaceRepository().GetForUpdate(ctx, id)
//	...
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and
// is otherwise a no-op, so deferring it is safe.
//
// Transactions start at the isolation level the factory was configured with.
// A positive lock timeout is applied with SET LOCAL, so waiting on a row lock
// fails with SQLSTATE 55P03 instead of blocking until the request deadline.
// Begin and Commit failures are classified with pgerr, so serialization
// conflicts surface as errs.TransientFailureError.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"freight/internal/adapters/out/postgres/georepo"
	"freight/internal/adapters/out/postgres/placerepo"
	"freight/internal/adapters/out/postgres/requestrepo"
	"freight/internal/adapters/out/postgres/vehiclerepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/pgerr"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// Option configures a GormUnitOfWorkFactory.
type Option func(*GormUnitOfWorkFactory)

// WithIsolation sets the isolation level of every transaction.
func WithIsolation(level sql.IsolationLevel) Option {
	return func(f *GormUnitOfWorkFactory) { f.isolation = level }
}

// WithLockTimeout bounds how long a statement waits for a row lock.
// Zero leaves the server default in place.
func WithLockTimeout(d time.Duration) Option {
	return func(f *GormUnitOfWorkFactory) { f.lockTimeout = d }
}

// GormUnitOfWorkFactory creates UnitOfWork instances on a shared *gorm.DB.
// The default isolation level is serializable.
//
// Example:
//
//	factory := NewGormUnitOfWorkFactory(db,
//	    WithIsolation(sql.LevelRepeatableRead),
//	    WithLockTimeout(5*time.Second),
//	)
//	uow := factory.Create()
type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	isolation   sql.IsolationLevel
	lockTimeout time.Duration
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...Option) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db, isolation: sql.LevelSerializable}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns a fresh unit of work. Instances are not safe for concurrent
// use; every request gets its own.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		isolation:         f.isolation,
		lockTimeout:       f.lockTimeout,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	isolation         sql.IsolationLevel
	lockTimeout       time.Duration
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is
// active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: uow.isolation})
	if tx.Error != nil {
		return pgerr.Classify("begin transaction", tx.Error)
	}

	if uow.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", uow.lockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			_ = tx.Rollback().Error
			return pgerr.Classify("set lock timeout", err)
		}
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return pgerr.Classify("commit transaction", err)
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) PlaceRepository() ports.PlaceRepository {
	return placerepo.NewGormPlaceRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) GeoRepository() ports.GeoRepository {
	return georepo.NewGormGeoRepository(uow.conn())
}

func (uow *GormUnitOfWork) TransportRequestRepository() ports.TransportRequestRepository {
	return requestrepo.NewGormTransportRequestRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories for every aggregate they write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs lists the ids of the aggregates written in the current
// transaction, once per aggregate in first write order.
func (uow *GormUnitOfWork) TrackedIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(uow.trackedAggregates))
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		ids = append(ids, t.ID)
	}
	return ids
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

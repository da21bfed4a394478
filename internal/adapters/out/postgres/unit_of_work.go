// Package postgres implements the unit-of-work port on top of GORM. A unit
// of work owns one database transaction, hands out repositories bound to it,
// and records the aggregates they touch.
//
// Typical handler flow:
//
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ParcelRepository().Add(ctx, parcel); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"mailroom/internal/adapters/out/postgres/parcelrepo"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate mutated during the unit of work,
// keeping the door open for post-commit processing such as an outbox.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory builds units of work over a shared GORM connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a UnitOfWork with its own transaction state and aggregate
// tracking, isolated from any other in-flight operation.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork is the GORM-backed ports.UnitOfWork. It lazily opens a
// transaction on Begin and records every aggregate its repositories add or
// update.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens a transaction. Calling Begin again while one is open is a
// no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finishes the open transaction. Returns gorm.ErrInvalidTransaction
// when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the open transaction. Returns gorm.ErrInvalidTransaction
// when none is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ParcelRepository returns a parcel repository bound to the open transaction,
// or to the main connection when no transaction has been started.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return parcelrepo.NewGormParcelRepository(db, uow)
}

// TrackAggregate is called by repositories whenever an aggregate is written
// through this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

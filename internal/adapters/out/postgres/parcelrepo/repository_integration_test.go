package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"mailroom/internal/adapters/out/postgres/parcelrepo"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite provides integration tests for
// ParcelRepository using PostgreSQL containers to verify persistence behavior.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) newParcel(
	trackingNumber string,
	registeredAt time.Time,
) *parcel.Parcel {
	slot, err := kernel.ParseSlot("B1")
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(), trackingNumber, "Amazon", "Maria Rodriguez", "Caja",
		parcel.SizeMedium, slot, "R1", "", "Carlos Lopez", registeredAt)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) addParcel(p *parcel.Parcel) {
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), p))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ValidParcel_Success() {
	p := suite.newParcel("TRK-1001", time.Now().UTC())

	suite.addParcel(p)

	var count int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&count).Error)
	suite.EqualValues(1, count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_ExistingParcel_RoundTrips() {
	registeredAt := time.Now().UTC().Truncate(time.Second)
	p := suite.newParcel("TRK-1002", registeredAt)
	suite.addParcel(p)

	retrieved, err := suite.repository.Get(context.Background(), p.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.IsEqual(p))
	suite.Equal("TRK-1002", retrieved.TrackingNumber())
	suite.Equal("Amazon", retrieved.Carrier())
	suite.Equal(parcel.SizeMedium, retrieved.Size())
	suite.Equal("B1", retrieved.Slot().String())
	suite.Equal(parcel.Pending, retrieved.Status())
	suite.True(retrieved.RegisteredAt().Equal(registeredAt))
	suite.Nil(retrieved.DeliveredAt())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NonExistentParcel_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_DeliveryPersists() {
	ctx := context.Background()
	p := suite.newParcel("TRK-1003", time.Now().UTC().Add(-24*time.Hour))
	suite.addParcel(p)

	suite.Require().NoError(p.Deliver([]byte("signature-blob"), time.Now().UTC()))

	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.repository.Update(ctx, p))

	retrieved, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Delivered, retrieved.Status())
	suite.Equal([]byte("signature-blob"), retrieved.Signature())
	suite.NotNil(retrieved.DeliveredAt())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetForDelivery_PicksNewestOpenRecord() {
	ctx := context.Background()
	now := time.Now().UTC()

	older := suite.newParcel("TRK-DUP", now.Add(-72*time.Hour))
	newer := suite.newParcel("TRK-DUP", now.Add(-time.Hour))
	delivered := suite.newParcel("TRK-DUP", now.Add(-48*time.Hour))
	suite.Require().NoError(delivered.Deliver([]byte("sig"), now))

	suite.addParcel(older)
	suite.addParcel(newer)
	suite.addParcel(delivered)

	found, err := suite.repository.GetForDelivery(ctx, "TRK-DUP")
	suite.Require().NoError(err)
	suite.True(found.IsEqual(newer))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetForDelivery_AllDelivered_ReturnsDeliveredRecord() {
	ctx := context.Background()
	now := time.Now().UTC()
	p := suite.newParcel("TRK-1004", now.Add(-time.Hour))
	suite.Require().NoError(p.Deliver([]byte("sig"), now))
	suite.addParcel(p)

	found, err := suite.repository.GetForDelivery(ctx, "TRK-1004")

	suite.Require().NoError(err)
	suite.True(found.IsEqual(p))
	suite.Equal(parcel.Delivered, found.Status())
	suite.Require().ErrorIs(
		found.Deliver([]byte("second-sig"), now), parcel.ErrInvalidStatusTransition)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetForDelivery_UnknownTrackingNumber_ReturnsNotFound() {
	found, err := suite.repository.GetForDelivery(context.Background(), "TRK-GHOST")

	suite.Nil(found)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllInStatus_OrdersMostRecentFirst() {
	ctx := context.Background()
	now := time.Now().UTC()

	first := suite.newParcel("TRK-A", now.Add(-3*time.Hour))
	second := suite.newParcel("TRK-B", now.Add(-time.Hour))
	suite.addParcel(first)
	suite.addParcel(second)

	pending, err := suite.repository.GetAllInStatus(ctx, parcel.Pending)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].IsEqual(second))
	suite.True(pending[1].IsEqual(first))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAll_LegacyTimestampRowsSortByInstant() {
	ctx := context.Background()

	recent := suite.newParcel("TRK-NEW", time.Now().UTC().Add(-time.Hour))
	suite.addParcel(recent)

	// A legacy-format timestamp sorts after RFC 3339 text even though the
	// instant it denotes is years older.
	legacy := parcelrepo.ParcelDTO{
		ID:             kernel.NewUUID().Bytes(),
		TrackingNumber: "TRK-OLD",
		Carrier:        "UPS",
		Recipient:      "Ana Garcia",
		Category:       "Caja",
		Size:           "Mediano",
		Slot:           "B2",
		RackNumber:     "R1",
		RegisteredBy:   "Laura Torres",
		RegisteredAt:   "31/12/2020, 09:00:00",
		Status:         "Pending",
	}
	suite.Require().NoError(suite.db.Create(&legacy).Error)

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("TRK-NEW", all[0].TrackingNumber())
	suite.Equal("TRK-OLD", all[1].TrackingNumber())

	pending, err := suite.repository.GetAllInStatus(ctx, parcel.Pending)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal("TRK-NEW", pending[0].TrackingNumber())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_LegacyTimestampIsNormalized() {
	ctx := context.Background()

	// Row imported from the legacy system with its timestamp format.
	id := kernel.NewUUID()
	dto := parcelrepo.ParcelDTO{
		ID:             id.Bytes(),
		TrackingNumber: "TRK-LEGACY",
		Carrier:        "DHL",
		Recipient:      "Juan Perez",
		Category:       "Sobre",
		Size:           "Chico",
		Slot:           "A2",
		RackNumber:     "R1",
		RegisteredBy:   "Laura Torres",
		RegisteredAt:   "15/03/2024, 14:30:00",
		Status:         "Pending",
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(2024, retrieved.RegisteredAt().Year())
	suite.Equal(time.March, retrieved.RegisteredAt().Month())
	suite.Equal(15, retrieved.RegisteredAt().Day())
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}

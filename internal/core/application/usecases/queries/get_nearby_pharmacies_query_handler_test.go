package queries_test

import (
	"context"
	"testing"
	"time"

	"mediorder/internal/adapters/out/postgres/pharmacyrepo"
	"mediorder/internal/core/application/usecases/queries"
	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// stubGeocoder returns a fixed point or a fixed error for every query.
type stubGeocoder struct {
	point kernel.GeoPoint
	err   error
}

func (g stubGeocoder) Geocode(_ context.Context, _ string) (kernel.GeoPoint, error) {
	if g.err != nil {
		return kernel.GeoPoint{}, g.err
	}
	return g.point, nil
}

type GetNearbyPharmaciesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	origin    kernel.GeoPoint
}

func (suite *GetNearbyPharmaciesQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&pharmacyrepo.PharmacyDTO{})
	suite.Require().NoError(err)

	suite.origin, err = kernel.NewGeoPoint(12.9716, 77.5946)
	suite.Require().NoError(err)
}

func (suite *GetNearbyPharmaciesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetNearbyPharmaciesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE pharmacies").Error
	suite.Require().NoError(err)
}

func (suite *GetNearbyPharmaciesQueryHandlerTestSuite) handler() queries.GetNearbyPharmaciesQueryHandler {
	return queries.NewGetNearbyPharmaciesQueryHandler(suite.db, stubGeocoder{point: suite.origin})
}

// insertPharmacyAt stores a pharmacy roughly distanceKm north of the origin.
// One degree of latitude spans about 111.19 km.
func (suite *GetNearbyPharmaciesQueryHandlerTestSuite) insertPharmacyAt(name string, distanceKm float64) uuid.UUID {
	lat := suite.origin.Latitude() + distanceKm/111.19
	lng := suite.origin.Longitude()

	dto := pharmacyrepo.PharmacyDTO{
		ID:        uuid.New(),
		Name:      name,
		Address:   name + " address",
		Latitude:  &lat,
		Longitude: &lng,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *GetNearbyPharmaciesQueryHandlerTestSuite) TestHandle_RanksByDistance() {
	farID := suite.insertPharmacyAt("Wellness Forte", 8)
	nearID := suite.insertPharmacyAt("Apollo 24x7", 1)
	midID := suite.insertPharmacyAt("MedPlus Central", 4)

	query, err := queries.NewGetNearbyPharmaciesQuery("560001", 10)
	suite.Require().NoError(err)

	result, err := suite.handler().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(nearID, result[0].ID.Bytes())
	suite.Equal(midID, result[1].ID.Bytes())
	suite.Equal(farID, result[2].ID.Bytes())
	suite.InDelta(1, result[0].DistanceKm, 0.1)
	suite.Equal("Apollo 24x7", result[0].Name)
	suite.Equal("Apollo 24x7 address", result[0].Address)
}

func (suite *GetNearbyPharmaciesQueryHandlerTestSuite) TestHandle_ExcludesBeyondRadius() {
	suite.insertPharmacyAt("Apollo 24x7", 2)
	suite.insertPharmacyAt("Remote Pharmacy", 25)

	query, err := queries.NewGetNearbyPharmaciesQuery("560001", 10)
	suite.Require().NoError(err)

	result, err := suite.handler().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Apollo 24x7", result[0].Name)
}

func (suite *GetNearbyPharmaciesQueryHandlerTestSuite) TestHandle_SkipsPharmaciesWithoutCoordinates() {
	dto := pharmacyrepo.PharmacyDTO{
		ID:      uuid.New(),
		Name:    "Unlisted Pharmacy",
		Address: "no geocode",
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	query, err := queries.NewGetNearbyPharmaciesQuery("560001", 10)
	suite.Require().NoError(err)

	result, err := suite.handler().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetNearbyPharmaciesQueryHandlerTestSuite) TestHandle_GeocoderFailure_Propagates() {
	suite.insertPharmacyAt("Apollo 24x7", 2)

	handler := queries.NewGetNearbyPharmaciesQueryHandler(
		suite.db, stubGeocoder{err: ports.ErrLocationNotResolved})

	query, err := queries.NewGetNearbyPharmaciesQuery("000000", 10)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, ports.ErrLocationNotResolved)
	suite.Nil(result)
}

func (suite *GetNearbyPharmaciesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetNearbyPharmaciesQuery{}

	result, err := suite.handler().Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetNearbyPharmaciesQueryIsNotConstructed)
	suite.Nil(result)
}

func TestGetNearbyPharmaciesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetNearbyPharmaciesQueryHandlerTestSuite))
}

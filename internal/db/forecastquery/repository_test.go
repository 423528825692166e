package forecastquery_test

import (
	"database/sql"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"testing"
	"time"
	"ulascansenturk/allergy-forecast/internal/db/forecastquery"
)

type ForecastRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo forecastquery.Repository
}

func (s *ForecastRepositorySuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{})
	s.Require().NoError(err)

	s.repo = forecastquery.NewRepository(s.DB)
}

func (s *ForecastRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *ForecastRepositorySuite) TestLogForecastQuery() {
	s.Run("Successfully logs a forecast query", func() {
		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "forecast_queries"`).
			WithArgs(
				"17015",
				"allergens",
				"current",
				3,
				false,
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		s.mock.ExpectCommit()

		err := s.repo.LogForecastQuery("17015", "allergens", "current", 3, false)

		s.Require().NoError(err)
	})

	s.Run("Logs an invalid ZIP lookup", func() {
		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "forecast_queries"`).
			WithArgs(
				"99999",
				"asthma",
				"historic",
				1,
				true,
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		s.mock.ExpectCommit()

		err := s.repo.LogForecastQuery("99999", "asthma", "historic", 1, true)

		s.Require().NoError(err)
	})

	s.Run("Returns error when database operation fails", func() {
		dbError := errors.New("database error")

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "forecast_queries"`).
			WithArgs(
				"60601",
				"allergens",
				"outlook",
				5,
				false,
				sqlmock.AnyArg(),
			).
			WillReturnError(dbError)
		s.mock.ExpectRollback()

		err := s.repo.LogForecastQuery("60601", "allergens", "outlook", 5, false)

		s.Require().Error(err)
		s.Require().Equal("database error", err.Error())
	})
}

func (s *ForecastRepositorySuite) TestGetRecentForecastQuery() {
	queryRegex := `SELECT \* FROM "forecast_queries" WHERE zip_code = \$1 ORDER BY created_at DESC,"forecast_queries"."id" LIMIT \$2`

	s.Run("Successfully retrieves the most recent forecast query", func() {
		createdAt := time.Now()

		rows := sqlmock.NewRows([]string{
			"id", "zip_code", "category", "kind", "request_count", "invalid_zip", "created_at",
		}).AddRow(
			1, "17015", "asthma", "extended", 2, false, createdAt,
		)

		s.mock.ExpectQuery(queryRegex).
			WithArgs("17015", 1).
			WillReturnRows(rows)

		result, err := s.repo.GetRecentForecastQuery("17015")

		s.Require().NoError(err)
		s.Require().NotNil(result)
		s.Require().Equal("17015", result.ZIPCode)
		s.Require().Equal("asthma", result.Category)
		s.Require().Equal("extended", result.Kind)
		s.Require().Equal(2, result.RequestCount)
		s.Require().False(result.InvalidZIP)
	})

	s.Run("Returns error when no record found", func() {
		s.mock.ExpectQuery(queryRegex).
			WithArgs("10001", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		result, err := s.repo.GetRecentForecastQuery("10001")

		s.Require().Error(err)
		s.Require().Equal("record not found", err.Error())
		s.Require().Nil(result)
	})

	s.Run("Returns error when database query fails", func() {
		dbError := errors.New("connection error")

		s.mock.ExpectQuery(queryRegex).
			WithArgs("94105", 1).
			WillReturnError(dbError)

		result, err := s.repo.GetRecentForecastQuery("94105")

		s.Require().Error(err)
		s.Require().Equal("connection error", err.Error())
		s.Require().Nil(result)
	})
}

func TestForecastRepositorySuite(t *testing.T) {
	suite.Run(t, new(ForecastRepositorySuite))
}

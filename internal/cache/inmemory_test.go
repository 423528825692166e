package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/allergy-forecast/internal/cache"
	"ulascansenturk/allergy-forecast/pkg/iqvia"
)

type InMemoryCacheTestSuite struct {
	suite.Suite
	cacheProvider *cache.InMemoryCache
	ctx           context.Context
}

func (s *InMemoryCacheTestSuite) SetupTest() {
	s.cacheProvider = cache.NewInMemoryCacheProvider(100 * time.Millisecond)
	s.ctx = context.Background()
}

func (s *InMemoryCacheTestSuite) TearDownTest() {
	s.NoError(s.cacheProvider.Close())
}

func forecastData(index float64) *cache.ForecastCacheData {
	return &cache.ForecastCacheData{
		Payload: iqvia.Payload{
			"Type": "pollen",
			"Location": map[string]interface{}{
				"ZIP":     "17015",
				"periods": []interface{}{map[string]interface{}{"Index": index}},
			},
		},
	}
}

func firstIndex(data *cache.ForecastCacheData) float64 {
	period := data.Payload.Periods()[0].(map[string]interface{})
	return period["Index"].(float64)
}

func (s *InMemoryCacheTestSuite) TestGetNonExistentKey() {
	value, exists, err := s.cacheProvider.Get(s.ctx, "nonexistent")

	s.NoError(err)
	s.False(exists)
	s.Nil(value)
}

func (s *InMemoryCacheTestSuite) TestSetAndGetPayload() {
	key := "allergens:current:17015"

	err := s.cacheProvider.Set(s.ctx, key, forecastData(6.3), 5*time.Minute)
	s.NoError(err)

	value, exists, err := s.cacheProvider.Get(s.ctx, key)
	s.NoError(err)
	s.True(exists)
	s.Require().NotNil(value)
	s.False(value.InvalidZIP)
	s.Len(value.Payload.Periods(), 1)
	s.Equal(6.3, firstIndex(value))
}

func (s *InMemoryCacheTestSuite) TestSetAndGetInvalidZIP() {
	key := "asthma:current:99999"

	err := s.cacheProvider.Set(s.ctx, key, &cache.ForecastCacheData{
		InvalidZIP: true,
		Reason:     "no data returned for ZIP code",
	}, 5*time.Minute)
	s.NoError(err)

	value, exists, err := s.cacheProvider.Get(s.ctx, key)
	s.NoError(err)
	s.True(exists)
	s.Require().NotNil(value)
	s.True(value.InvalidZIP)
	s.Nil(value.Payload)
	s.Equal("no data returned for ZIP code", value.Reason)
}

func (s *InMemoryCacheTestSuite) TestReturnedPayloadIsACopy() {
	key := "allergens:extended:17015"
	s.NoError(s.cacheProvider.Set(s.ctx, key, forecastData(4.0), 5*time.Minute))

	first, _, err := s.cacheProvider.Get(s.ctx, key)
	s.Require().NoError(err)
	first.Payload["Type"] = "mutated"

	second, _, err := s.cacheProvider.Get(s.ctx, key)
	s.Require().NoError(err)
	s.Equal("pollen", second.Payload["Type"])
}

func (s *InMemoryCacheTestSuite) TestExpiration() {
	key := "allergens:historic:17015"

	err := s.cacheProvider.Set(s.ctx, key, forecastData(2.0), 50*time.Millisecond)
	s.NoError(err)

	value, exists, err := s.cacheProvider.Get(s.ctx, key)
	s.NoError(err)
	s.True(exists)
	s.NotNil(value)

	time.Sleep(75 * time.Millisecond)

	value, exists, err = s.cacheProvider.Get(s.ctx, key)
	s.NoError(err)
	s.False(exists)
	s.Nil(value)
}

func (s *InMemoryCacheTestSuite) TestOverwrite() {
	key := "asthma:extended:17015"

	s.NoError(s.cacheProvider.Set(s.ctx, key, forecastData(3.5), 5*time.Minute))
	s.NoError(s.cacheProvider.Set(s.ctx, key, forecastData(4.5), 5*time.Minute))

	value, exists, err := s.cacheProvider.Get(s.ctx, key)
	s.NoError(err)
	s.True(exists)
	s.Equal(4.5, firstIndex(value))
}

func (s *InMemoryCacheTestSuite) TestAutomaticCleanup() {
	key := "allergens:current:10001"

	err := s.cacheProvider.Set(s.ctx, key, forecastData(1.1), 50*time.Millisecond)
	s.NoError(err)
	s.Equal(1, s.cacheProvider.Len())

	time.Sleep(200 * time.Millisecond)

	s.Equal(0, s.cacheProvider.Len())
}

func (s *InMemoryCacheTestSuite) TestConcurrentAccess() {
	key := "allergens:current:60601"
	iterations := 100
	ttl := 5 * time.Minute

	s.NoError(s.cacheProvider.Set(s.ctx, key, forecastData(0), ttl))

	done := make(chan bool)
	for i := 0; i < iterations; i++ {
		go func() {
			value, exists, err := s.cacheProvider.Get(s.ctx, key)
			s.NoError(err)
			s.True(exists)
			s.NotNil(value)
			done <- true
		}()
	}

	for i := 0; i < iterations; i++ {
		<-done
	}

	for i := 0; i < iterations; i++ {
		go func(index float64) {
			s.NoError(s.cacheProvider.Set(s.ctx, key, forecastData(index), ttl))
			done <- true
		}(float64(i))
	}

	for i := 0; i < iterations; i++ {
		<-done
	}

	value, exists, err := s.cacheProvider.Get(s.ctx, key)
	s.NoError(err)
	s.True(exists)
	s.GreaterOrEqual(firstIndex(value), 0.0)
	s.LessOrEqual(firstIndex(value), float64(iterations-1))
}

func TestInMemoryCacheTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCacheTestSuite))
}

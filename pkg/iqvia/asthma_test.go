package iqvia_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"ulascansenturk/allergy-forecast/pkg/iqvia"
)

func (s *ClientTestSuite) TestAsthma_Current() {
	current, err := s.newClient(testZIP).Asthma.Current(context.Background())
	s.Require().NoError(err)
	s.Len(current.Periods(), 3)
	s.Equal("asthma", current["Type"])
	s.Equal("/api/forecast/current/asthma/"+testZIP, s.requests[0].URL.Path)
}

func (s *ClientTestSuite) TestAsthma_Extended() {
	extended, err := s.newClient(testZIP).Asthma.Extended(context.Background())
	s.Require().NoError(err)
	s.Len(extended.Periods(), 5)
}

func (s *ClientTestSuite) TestAsthma_Historic() {
	historic, err := s.newClient(testZIP).Asthma.Historic(context.Background())
	s.Require().NoError(err)
	s.Len(historic.Periods(), 30)
}

func (s *ClientTestSuite) TestAsthma_BadZIP() {
	client := s.newClient(testBadZIP)

	for _, fetch := range []func(context.Context) (iqvia.Payload, error){
		client.Asthma.Current,
		client.Asthma.Extended,
		client.Asthma.Historic,
	} {
		_, err := fetch(context.Background())
		s.ErrorIs(err, iqvia.ErrInvalidZIP)
	}
}

func (s *ClientTestSuite) TestAsthma_NullLocation() {
	s.pollenServer.Close()
	s.asthmaServer.Close()

	s.asthmaServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Type":"asthma","ForecastDate":"2018-06-12T00:00:00-04:00","Location":null}`))
	}))
	s.pollenServer = httptest.NewServer(http.HandlerFunc(s.serveFixture))
	s.httpClient.Transport = &mockTransport{
		pollenURL: s.pollenServer.URL,
		asthmaURL: s.asthmaServer.URL,
	}

	_, err := s.newClient(testZIP).Asthma.Current(context.Background())
	s.ErrorIs(err, iqvia.ErrInvalidZIP)
}

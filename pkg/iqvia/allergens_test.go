package iqvia_test

import (
	"context"

	"ulascansenturk/allergy-forecast/pkg/iqvia"
)

func (s *ClientTestSuite) TestAllergens_Current() {
	current, err := s.newClient(testZIP).Allergens.Current(context.Background())
	s.Require().NoError(err)
	s.Len(current.Periods(), 3)
	s.Equal("pollen", current["Type"])
}

func (s *ClientTestSuite) TestAllergens_Extended() {
	extended, err := s.newClient(testZIP).Allergens.Extended(context.Background())
	s.Require().NoError(err)
	s.Len(extended.Periods(), 5)
}

func (s *ClientTestSuite) TestAllergens_Historic() {
	historic, err := s.newClient(testZIP).Allergens.Historic(context.Background())
	s.Require().NoError(err)
	s.Len(historic.Periods(), 30)
}

func (s *ClientTestSuite) TestAllergens_Outlook() {
	outlook, err := s.newClient(testZIP).Allergens.Outlook(context.Background())
	s.Require().NoError(err)
	s.Equal("subsiding", outlook.Trend())
	s.Equal("/api/forecast/outlook/"+testZIP, s.requests[0].URL.Path)
}

func (s *ClientTestSuite) TestAllergens_BadZIP() {
	client := s.newClient(testBadZIP)

	endpoints := map[string]func(context.Context) (iqvia.Payload, error){
		"current":  client.Allergens.Current,
		"extended": client.Allergens.Extended,
		"historic": client.Allergens.Historic,
		"outlook":  client.Allergens.Outlook,
	}

	for name, fetch := range endpoints {
		data, err := fetch(context.Background())
		s.Nil(data, name)
		s.ErrorIs(err, iqvia.ErrInvalidZIP, name)

		var zipErr *iqvia.InvalidZIPError
		s.Require().ErrorAs(err, &zipErr, name)
		s.Equal(testBadZIP, zipErr.ZIP, name)
	}
}

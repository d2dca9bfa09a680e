package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/listing-monitor/internal/domain"
	"github.com/listing-monitor/internal/domain/repository"
	"github.com/listing-monitor/internal/pkg/errors"
	"github.com/listing-monitor/internal/repository/postgres/testhelpers"
)

// ItemRepositoryTestSuite tests ItemRepository, including the dispatch filter
type ItemRepositoryTestSuite struct {
	suite.Suite
	testDB       *testhelpers.TestDB
	itemRepo     repository.ItemRepository
	cityRepo     repository.CityRepository
	districtRepo repository.DistrictRepository
	ctx          context.Context

	base time.Time
}

func (s *ItemRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.itemRepo = testhelpers.NewItemRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.cityRepo = testhelpers.NewCityRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.districtRepo = testhelpers.NewDistrictRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *ItemRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *ItemRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.NoError(s.testDB.Cleanup(s.ctx))
}

func (s *ItemRepositoryTestSuite) createItem(itemURL, sourceURL string, firstSeen time.Time, cityID, districtID *int64) *domain.Item {
	created, err := s.itemRepo.Create(s.ctx, &domain.Item{
		ItemURL:    itemURL,
		SourceURL:  sourceURL,
		FirstSeen:  firstSeen,
		CityID:     cityID,
		DistrictID: districtID,
	})
	s.Require().NoError(err)
	return created
}

func (s *ItemRepositoryTestSuite) TestCreate_DuplicateURL() {
	s.createItem("https://www.olx.pl/oferta/1", "https://www.olx.pl/search", s.base, nil, nil)

	_, err := s.itemRepo.Create(s.ctx, &domain.Item{
		ItemURL:   "https://www.olx.pl/oferta/1",
		SourceURL: "https://www.olx.pl/search",
		FirstSeen: s.base,
	})
	s.Equal(errors.ErrItemExists, err)
}

func (s *ItemRepositoryTestSuite) TestListToSend_SourceAndTimeFilter() {
	src := "https://www.olx.pl/search"
	s.createItem("https://www.olx.pl/oferta/old", src, s.base.Add(-2*time.Hour), nil, nil)
	fresh := s.createItem("https://www.olx.pl/oferta/fresh", src, s.base, nil, nil)
	s.createItem("https://www.otodom.pl/oferta/other", "https://www.otodom.pl/search", s.base, nil, nil)

	items, err := s.itemRepo.ListToSend(s.ctx, domain.DispatchFilter{
		SourceURL: src,
		Since:     s.base.Add(-time.Hour),
	})
	s.NoError(err)
	s.Len(items, 1)
	s.Equal(fresh.ID, items[0].ID)
}

func (s *ItemRepositoryTestSuite) TestListToSend_BoundaryExcluded() {
	src := "https://www.olx.pl/search"
	s.createItem("https://www.olx.pl/oferta/at", src, s.base, nil, nil)

	// first_seen strictly greater than Since
	items, err := s.itemRepo.ListToSend(s.ctx, domain.DispatchFilter{
		SourceURL: src,
		Since:     s.base,
	})
	s.NoError(err)
	s.Empty(items)
}

func (s *ItemRepositoryTestSuite) TestListToSend_OrderedNewestFirst() {
	src := "https://www.olx.pl/search"
	a := s.createItem("https://www.olx.pl/oferta/a", src, s.base.Add(10*time.Minute), nil, nil)
	b := s.createItem("https://www.olx.pl/oferta/b", src, s.base.Add(30*time.Minute), nil, nil)
	c := s.createItem("https://www.olx.pl/oferta/c", src, s.base.Add(20*time.Minute), nil, nil)

	items, err := s.itemRepo.ListToSend(s.ctx, domain.DispatchFilter{
		SourceURL: src,
		Since:     s.base,
	})
	s.NoError(err)
	s.Require().Len(items, 3)
	s.Equal(b.ID, items[0].ID)
	s.Equal(c.ID, items[1].ID)
	s.Equal(a.ID, items[2].ID)
}

func (s *ItemRepositoryTestSuite) TestListToSend_CityFilterIncludesSentinel() {
	warsaw, err := s.cityRepo.GetOrCreate(s.ctx, "Warszawa", "warszawa")
	s.Require().NoError(err)
	krakow, err := s.cityRepo.GetOrCreate(s.ctx, "Kraków", "krakow")
	s.Require().NoError(err)
	unknown, err := s.cityRepo.GetOrCreate(s.ctx, "Unknown", "unknown")
	s.Require().NoError(err)

	src := "https://www.olx.pl/search"
	inCity := s.createItem("https://www.olx.pl/oferta/w", src, s.base, &warsaw.ID, nil)
	s.createItem("https://www.olx.pl/oferta/k", src, s.base, &krakow.ID, nil)
	sentinel := s.createItem("https://www.olx.pl/oferta/u", src, s.base, &unknown.ID, nil)

	items, err := s.itemRepo.ListToSend(s.ctx, domain.DispatchFilter{
		SourceURL:      src,
		Since:          s.base.Add(-time.Hour),
		CityID:         &warsaw.ID,
		SentinelCityID: &unknown.ID,
	})
	s.NoError(err)
	s.Len(items, 2)

	ids := []int64{items[0].ID, items[1].ID}
	s.ElementsMatch([]int64{inCity.ID, sentinel.ID}, ids)
}

func (s *ItemRepositoryTestSuite) TestListToSend_CityFilterWithoutSentinel() {
	warsaw, err := s.cityRepo.GetOrCreate(s.ctx, "Warszawa", "warszawa")
	s.Require().NoError(err)
	krakow, err := s.cityRepo.GetOrCreate(s.ctx, "Kraków", "krakow")
	s.Require().NoError(err)

	src := "https://www.olx.pl/search"
	inCity := s.createItem("https://www.olx.pl/oferta/w", src, s.base, &warsaw.ID, nil)
	s.createItem("https://www.olx.pl/oferta/k", src, s.base, &krakow.ID, nil)

	items, err := s.itemRepo.ListToSend(s.ctx, domain.DispatchFilter{
		SourceURL: src,
		Since:     s.base.Add(-time.Hour),
		CityID:    &warsaw.ID,
	})
	s.NoError(err)
	s.Len(items, 1)
	s.Equal(inCity.ID, items[0].ID)
}

func (s *ItemRepositoryTestSuite) TestListToSend_DistrictFilterIncludesSentinels() {
	warsaw, err := s.cityRepo.GetOrCreate(s.ctx, "Warszawa", "warszawa")
	s.Require().NoError(err)
	mokotow, err := s.districtRepo.GetOrCreate(s.ctx, warsaw.ID, "Mokotów", "mokotow")
	s.Require().NoError(err)
	wola, err := s.districtRepo.GetOrCreate(s.ctx, warsaw.ID, "Wola", "wola")
	s.Require().NoError(err)
	unknown, err := s.districtRepo.GetOrCreate(s.ctx, warsaw.ID, "Unknown", "unknown")
	s.Require().NoError(err)

	src := "https://www.olx.pl/search"
	allowed := s.createItem("https://www.olx.pl/oferta/m", src, s.base, &warsaw.ID, &mokotow.ID)
	s.createItem("https://www.olx.pl/oferta/w", src, s.base, &warsaw.ID, &wola.ID)
	sentinel := s.createItem("https://www.olx.pl/oferta/u", src, s.base, &warsaw.ID, &unknown.ID)

	items, err := s.itemRepo.ListToSend(s.ctx, domain.DispatchFilter{
		SourceURL:           src,
		Since:               s.base.Add(-time.Hour),
		DistrictIDs:         []int64{mokotow.ID},
		SentinelDistrictIDs: []int64{unknown.ID},
	})
	s.NoError(err)
	s.Len(items, 2)

	ids := []int64{items[0].ID, items[1].ID}
	s.ElementsMatch([]int64{allowed.ID, sentinel.ID}, ids)
}

func (s *ItemRepositoryTestSuite) TestGetSeenAfter() {
	src := "https://www.olx.pl/search"
	s.createItem("https://www.olx.pl/oferta/old", src, s.base.Add(-48*time.Hour), nil, nil)
	fresh := s.createItem("https://www.olx.pl/oferta/new", src, s.base, nil, nil)

	items, err := s.itemRepo.GetSeenAfter(s.ctx, s.base.Add(-24*time.Hour), 100)
	s.NoError(err)
	s.Len(items, 1)
	s.Equal(fresh.ID, items[0].ID)
}

func (s *ItemRepositoryTestSuite) TestDeleteOlderThan() {
	src := "https://www.olx.pl/search"
	old := s.createItem("https://www.olx.pl/oferta/old", src, s.base.Add(-31*24*time.Hour), nil, nil)
	kept := s.createItem("https://www.olx.pl/oferta/new", src, s.base, nil, nil)

	deleted, err := s.itemRepo.DeleteOlderThan(s.ctx, s.base.Add(-30*24*time.Hour))
	s.NoError(err)
	s.Len(deleted, 1)
	s.Equal(old.ID, deleted[0].ID)

	_, err = s.itemRepo.GetByID(s.ctx, old.ID)
	s.Equal(errors.ErrItemNotFound, err)

	_, err = s.itemRepo.GetByID(s.ctx, kept.ID)
	s.NoError(err)
}

func TestItemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryTestSuite))
}

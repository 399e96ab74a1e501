package v1_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	externalmock "github.com/KirkDiggler/wizarding-catalog/internal/clients/external/mock"
	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	v1 "github.com/KirkDiggler/wizarding-catalog/internal/handlers/api/v1"
	"github.com/KirkDiggler/wizarding-catalog/internal/orchestrators/catalog"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/idgen"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/pagination"
	"github.com/KirkDiggler/wizarding-catalog/internal/store"
	"github.com/KirkDiggler/wizarding-catalog/internal/testutils/builders"
	"github.com/KirkDiggler/wizarding-catalog/internal/testutils/mocks"
)

// RoutesTestSuite drives the router against a real orchestrator and store
type RoutesTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	server http.Handler
}

func (s *RoutesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	mockClient := externalmock.NewMockClient(s.ctrl)

	roster := make([]entities.Character, 0, 15)
	for i := 1; i <= 15; i++ {
		roster = append(roster, builders.Character().
			WithID(fmt.Sprintf("char-%d", i)).
			WithName(fmt.Sprintf("Wizard %d", i)).
			Build())
	}
	mocks.ExpectCatalogLoad(mockClient, roster, nil)

	st, err := store.New(&store.Config{Client: mockClient})
	s.Require().NoError(err)

	service, err := catalog.NewOrchestrator(&catalog.Config{
		Store:       st,
		IDGenerator: idgen.NewSequential("search"),
		PageSize:    5,
	})
	s.Require().NoError(err)
	_, err = service.LoadCatalog(context.Background(), &catalog.LoadCatalogInput{})
	s.Require().NoError(err)

	h, err := v1.NewHandler(&v1.HandlerConfig{CatalogService: service})
	s.Require().NoError(err)
	s.server = h.Routes()
}

func (s *RoutesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RoutesTestSuite) list(path string) (int, []entities.Character, pagination.Meta) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	var body struct {
		Data []entities.Character `json:"data"`
		Meta pagination.Meta      `json:"meta"`
	}
	if rec.Code == http.StatusOK {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec.Code, body.Data, body.Meta
}

func (s *RoutesTestSuite) TestConfiguredPageSizeApplies() {
	code, characters, meta := s.list("/api/v1/characters")

	s.Require().Equal(http.StatusOK, code)
	s.Len(characters, 5)
	s.Equal(5, meta.Limit)
	s.Equal(15, meta.Total)
	s.Equal(3, meta.TotalPages)
}

func (s *RoutesTestSuite) TestExplicitLimitOverridesPageSize() {
	code, characters, meta := s.list("/api/v1/characters?limit=10&page=2")

	s.Require().Equal(http.StatusOK, code)
	s.Len(characters, 5)
	s.Equal(10, meta.Limit)
	s.Equal(11, meta.From)
	s.Equal(15, meta.To)
}

func (s *RoutesTestSuite) TestHugePageIsEmptyNotAnError() {
	for _, page := range []string{"461168601842738792", "9223372036854775807"} {
		s.Run(page, func() {
			code, characters, meta := s.list("/api/v1/characters?page=" + page)

			s.Require().Equal(http.StatusOK, code)
			s.Empty(characters)
			s.Equal(15, meta.Total)
			s.Equal(0, meta.From)
		})
	}
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

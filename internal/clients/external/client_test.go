package external_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wizarding-catalog/internal/clients/external"
	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
	"github.com/KirkDiggler/wizarding-catalog/internal/testutils"
)

type ClientTestSuite struct {
	suite.Suite
	ctx      context.Context
	server   *httptest.Server
	handlers map[string]http.HandlerFunc
	client   external.Client
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.handlers = map[string]http.HandlerFunc{}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := s.handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))

	client, err := external.New(&external.Config{BaseURL: s.server.URL + "/api"})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) respondJSON(path string, status int, body any) {
	s.handlers[path] = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Empty(r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

func (s *ClientTestSuite) TestConfigDefaults() {
	cfg := &external.Config{}
	s.Require().NoError(cfg.Validate())
	s.Equal(external.DefaultBaseURL, cfg.BaseURL)
	s.Equal(30*time.Second, cfg.HTTPTimeout)
	s.NotNil(cfg.Logger)

	s.Error((&external.Config{HTTPTimeout: -time.Second}).Validate())
}

func (s *ClientTestSuite) TestListCharacters() {
	s.respondJSON("/api/characters", http.StatusOK, testutils.Students())

	characters, err := s.client.ListCharacters(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(characters, 2)
	s.Equal(testutils.HarryPotter(), characters[0])
	s.Equal("Hermione Granger", characters[1].Name)
}

func (s *ClientTestSuite) TestListCharactersKeepsNullableFields() {
	s.handlers["/api/characters"] = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"x","name":"Mrs Norris","alternate_names":[],"house":"",
			"dateOfBirth":null,"yearOfBirth":null,"wand":{"wood":"","core":"","length":""}}]`))
	}

	characters, err := s.client.ListCharacters(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(characters, 1)
	s.Nil(characters[0].DateOfBirth)
	s.Nil(characters[0].YearOfBirth)
	s.Nil(characters[0].Wand.Length)
	s.Equal("", characters[0].House)
}

func (s *ClientTestSuite) TestListSpells() {
	s.respondJSON("/api/spells", http.StatusOK, testutils.AllSpells())

	spells, err := s.client.ListSpells(s.ctx)
	s.Require().NoError(err)
	s.Equal(testutils.AllSpells(), spells)
}

func (s *ClientTestSuite) TestEmptyCollection() {
	s.respondJSON("/api/spells", http.StatusOK, []entities.Spell{})

	spells, err := s.client.ListSpells(s.ctx)
	s.Require().NoError(err)
	s.NotNil(spells)
	s.Empty(spells)
}

func (s *ClientTestSuite) TestHTTPFailures() {
	testCases := []struct {
		name     string
		status   int
		code     errors.Code
		expected string
	}{
		{name: "not found", status: http.StatusNotFound, code: errors.CodeNotFound, expected: "API Error: 404 Not Found"},
		{name: "server error", status: http.StatusInternalServerError, code: errors.CodeInternal, expected: "API Error: 500 Internal Server Error"},
		{name: "unavailable", status: http.StatusServiceUnavailable, code: errors.CodeUnavailable, expected: "API Error: 503 Service Unavailable"},
		{name: "rate limited", status: http.StatusTooManyRequests, code: errors.CodeResourceExhausted, expected: "API Error: 429 Too Many Requests"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.respondJSON("/api/characters", tc.status, map[string]string{"error": "nope"})

			characters, err := s.client.ListCharacters(s.ctx)
			s.Nil(characters)
			s.Require().Error(err)
			s.Equal(tc.code, errors.GetCode(err))
			s.Equal(tc.expected, errors.GetMessage(err))

			var apiErr *external.APIError
			s.Require().True(stderrors.As(err, &apiErr))
			s.Equal(tc.status, apiErr.StatusCode)
			s.Equal(http.StatusText(tc.status), apiErr.Status)
		})
	}
}

func (s *ClientTestSuite) TestNonStandardStatusKeepsProviderReason() {
	s.handlers["/api/spells"] = func(w http.ResponseWriter, _ *http.Request) {
		conn, buf, err := w.(http.Hijacker).Hijack()
		s.Require().NoError(err)
		defer conn.Close()
		_, _ = buf.WriteString("HTTP/1.1 599 Spell Misfire\r\nContent-Length: 0\r\nConnection: close\r\n\r\n")
		_ = buf.Flush()
	}

	_, err := s.client.ListSpells(s.ctx)
	s.Require().Error(err)
	s.Equal("API Error: 599 Spell Misfire", errors.GetMessage(err))

	var apiErr *external.APIError
	s.Require().True(stderrors.As(err, &apiErr))
	s.Equal(599, apiErr.StatusCode)
	s.Equal("Spell Misfire", apiErr.Status)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *ClientTestSuite) TestTransportFailure() {
	s.server.Close()

	_, err := s.client.ListSpells(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))

	var apiErr *external.APIError
	s.False(stderrors.As(err, &apiErr))
}

func (s *ClientTestSuite) TestMalformedBody() {
	s.handlers["/api/spells"] = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}

	_, err := s.client.ListSpells(s.ctx)
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

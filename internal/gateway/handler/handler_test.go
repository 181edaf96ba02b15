package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"aidchain/contract"
	"aidchain/internal/gateway/handler"
	"aidchain/internal/gateway/stats"
)

type stubService struct {
	overview   stats.Overview
	packages   []contract.AidPackageView
	recipients []contract.RecipientProfileView
	err        error
}

func (s *stubService) Overview(context.Context) (stats.Overview, error) {
	return s.overview, s.err
}

func (s *stubService) Packages(context.Context) ([]contract.AidPackageView, error) {
	return s.packages, s.err
}

func (s *stubService) Recipients(context.Context) ([]contract.RecipientProfileView, error) {
	return s.recipients, s.err
}

func newRouter(svc handler.Service) chi.Router {
	r := chi.NewRouter()
	handler.New(slog.Default(), svc).Register(r)
	return r
}

func get(t *testing.T, router chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGetStats(t *testing.T) {
	router := newRouter(&stubService{overview: stats.Overview{
		TotalPackages:  3,
		TotalDonations: 6_000_000_000,
	}})

	rec := get(t, router, "/api/v1/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body stats.Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, uint64(3), body.TotalPackages)
	require.Equal(t, int64(6_000_000_000), body.TotalDonations)
}

func TestGetPackages(t *testing.T) {
	router := newRouter(&stubService{packages: []contract.AidPackageView{
		{ID: 0, Donor: "hive:donor", StatusLabel: "created"},
	}})

	rec := get(t, router, "/api/v1/packages")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Packages []contract.AidPackageView `json:"packages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Packages, 1)
	require.Equal(t, "hive:donor", body.Packages[0].Donor)
}

func TestGetRecipientsEmpty(t *testing.T) {
	router := newRouter(&stubService{})

	rec := get(t, router, "/api/v1/recipients")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"recipients":[]}`, rec.Body.String())
}

func TestUpstreamFailureMapsToBadGateway(t *testing.T) {
	router := newRouter(&stubService{err: errors.New("node is down")})

	for _, path := range []string{"/api/v1/stats", "/api/v1/packages", "/api/v1/recipients"} {
		rec := get(t, router, path)
		require.Equal(t, http.StatusBadGateway, rec.Code, path)
		require.JSONEq(t, `{"error":"chain read failed"}`, rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	router := newRouter(&stubService{})

	rec := get(t, router, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

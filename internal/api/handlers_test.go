// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/searchrec/internal/catalog"
	"github.com/tomtom215/searchrec/internal/config"
	"github.com/tomtom215/searchrec/internal/core"
	"github.com/tomtom215/searchrec/internal/logging"
	"github.com/tomtom215/searchrec/internal/models"
	"github.com/tomtom215/searchrec/internal/recommend"
	"github.com/tomtom215/searchrec/internal/search"
	"github.com/tomtom215/searchrec/internal/store"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// envelope mirrors models.APIResponse with Data left raw for per-test decoding.
type envelope struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Data    json.RawMessage        `json:"data"`
	Errors  []models.APIFieldError `json:"errors"`
}

func defaultAPIConfig() config.APIConfig {
	return config.APIConfig{
		DefaultPageSize:       10,
		DefaultHotWordsLimit:  10,
		DefaultRecommendLimit: 5,
	}
}

func newTestService(t *testing.T) *core.Service {
	t.Helper()

	logger := logging.NewTestLogger(io.Discard)
	st, err := store.New(catalog.Seed(), store.WithClock(func() time.Time { return fixedTime }))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	svc, err := core.NewService(core.Dependencies{
		Store:       st,
		Ranker:      search.NewRanker(st, search.RankerConfig{CacheEnabled: true, CacheCapacity: 16}, logger),
		HotWords:    search.NewHotWordAggregator(st),
		Recommender: recommend.NewEngine(st, logger),
	}, logger)
	if err != nil {
		t.Fatalf("core.NewService() error = %v", err)
	}
	return svc
}

func newTestRouter(t *testing.T, mwCfg *ChiMiddlewareConfig, metrics config.MetricsConfig) http.Handler {
	t.Helper()
	h := NewHandler(newTestService(t), defaultAPIConfig())
	return NewRouter(h, NewChiMiddleware(mwCfg), metrics).SetupChi()
}

func serve(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode body %q: %v", method, target, rec.Body.String(), err)
		}
	}
	return rec, env
}

func itemIDs(t *testing.T, raw json.RawMessage) []int {
	t.Helper()
	var items []models.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	ids := make([]int, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	return ids
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearchEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil, config.MetricsConfig{})

	t.Run("ranked results", func(t *testing.T) {
		rec, env := serve(t, router, http.MethodGet, "/api/search?q=python")
		if rec.Code != http.StatusOK || env.Code != 200 || env.Message != "success" {
			t.Fatalf("status = %d, envelope = %+v", rec.Code, env)
		}

		var page models.SearchPage
		if err := json.Unmarshal(env.Data, &page); err != nil {
			t.Fatalf("decode page: %v", err)
		}
		if page.Total != 1 || page.Page != 1 || page.Size != 10 {
			t.Errorf("page = %+v, want total 1 page 1 size 10", page)
		}
		if len(page.Results) != 1 || page.Results[0].ID != 1 || page.Results[0].Score != 8 {
			t.Errorf("results = %+v, want item 1 with score 8", page.Results)
		}
	})

	t.Run("page past the end keeps total", func(t *testing.T) {
		_, env := serve(t, router, http.MethodGet, "/api/search?q=%E7%BC%96%E7%A8%8B&page=5&size=2")
		var page models.SearchPage
		if err := json.Unmarshal(env.Data, &page); err != nil {
			t.Fatalf("decode page: %v", err)
		}
		if page.Total != 3 || len(page.Results) != 0 {
			t.Errorf("page = %+v, want total 3 and no results", page)
		}
	})

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing query", target: "/api/search"},
		{name: "non-numeric page", target: "/api/search?q=go&page=abc"},
		{name: "page zero", target: "/api/search?q=go&page=0"},
		{name: "size above max", target: "/api/search?q=go&size=51"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := serve(t, router, http.MethodGet, tt.target)
			if rec.Code != http.StatusUnprocessableEntity || env.Code != 422 {
				t.Errorf("status = %d code = %d, want 422", rec.Code, env.Code)
			}
			if len(env.Errors) == 0 {
				t.Error("expected field errors in the envelope")
			}
		})
	}
}

func TestHotWordsEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil, config.MetricsConfig{})
	for _, q := range []string{"a", "b", "a", "c", "a"} {
		serve(t, router, http.MethodGet, "/api/search?q="+q)
	}

	_, env := serve(t, router, http.MethodGet, "/api/hot-words?limit=2")
	var words []models.HotWord
	if err := json.Unmarshal(env.Data, &words); err != nil {
		t.Fatalf("decode hot words: %v", err)
	}
	want := []models.HotWord{{Word: "a", Count: 3}, {Word: "b", Count: 1}}
	if len(words) != len(want) || words[0] != want[0] || words[1] != want[1] {
		t.Errorf("hot words = %+v, want %+v", words, want)
	}

	rec, _ := serve(t, router, http.MethodGet, "/api/hot-words?limit=0")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("limit=0 status = %d, want 422", rec.Code)
	}
}

func TestHotWordsEndpointEmptyLog(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil, config.MetricsConfig{})
	rec, env := serve(t, router, http.MethodGet, "/api/hot-words")
	if rec.Code != http.StatusOK || env.Code != 200 {
		t.Fatalf("status = %d code = %d, want 200", rec.Code, env.Code)
	}
	if env.Data != nil {
		var words []models.HotWord
		if err := json.Unmarshal(env.Data, &words); err != nil || len(words) != 0 {
			t.Errorf("data = %s, want an empty list", env.Data)
		}
	}
}

func TestClickAndRecommendEndpoints(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil, config.MetricsConfig{})

	_, env := serve(t, router, http.MethodGet, "/api/recommend?limit=3")
	if env.Message != models.MessageColdStart {
		t.Errorf("cold start message = %q", env.Message)
	}
	if ids := itemIDs(t, env.Data); !equalInts(ids, []int{6, 5, 4}) {
		t.Errorf("cold start ids = %v, want [6 5 4]", ids)
	}

	rec, env := serve(t, router, http.MethodPost, "/api/click/5")
	if rec.Code != http.StatusOK || env.Message != "success" {
		t.Fatalf("click status = %d, envelope = %+v", rec.Code, env)
	}
	if env.Data != nil {
		t.Errorf("click data = %s, want omitted", env.Data)
	}

	_, env = serve(t, router, http.MethodGet, "/api/recommend")
	if env.Message != models.MessageSuccess {
		t.Errorf("affinity message = %q", env.Message)
	}
	if ids := itemIDs(t, env.Data); !equalInts(ids, []int{6, 4, 3, 1, 8}) {
		t.Errorf("affinity ids = %v, want [6 4 3 1 8]", ids)
	}

	_, env = serve(t, router, http.MethodGet, "/api/stats")
	var stats models.StoreStats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.CatalogItems != 8 || stats.ClickLogLen != 1 {
		t.Errorf("stats = %+v, want 8 items and 1 click", stats)
	}
}

func TestClickEndpointErrors(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil, config.MetricsConfig{})

	rec, env := serve(t, router, http.MethodPost, "/api/click/999")
	if rec.Code != http.StatusNotFound || env.Code != 404 || env.Message != "Item not found" {
		t.Errorf("unknown item: status = %d, envelope = %+v", rec.Code, env)
	}

	rec, env = serve(t, router, http.MethodPost, "/api/click/abc")
	if rec.Code != http.StatusUnprocessableEntity || len(env.Errors) != 1 || env.Errors[0].Field != "item_id" {
		t.Errorf("non-numeric id: status = %d, envelope = %+v", rec.Code, env)
	}

	rec, _ = serve(t, router, http.MethodGet, "/api/click/1")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET click status = %d, want 405", rec.Code)
	}

	// Rejected clicks leave the click log empty.
	_, env = serve(t, router, http.MethodGet, "/api/recommend")
	if env.Message != models.MessageColdStart {
		t.Errorf("message after rejected clicks = %q, want cold start", env.Message)
	}
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil, config.MetricsConfig{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var health models.Health
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "healthy" || !health.Timestamp.Equal(fixedTime) {
		t.Errorf("health = %+v", health)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestIntQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target  string
		want    int
		wantErr bool
	}{
		{target: "/?limit=7", want: 7},
		{target: "/?limit=%207%20", want: 7},
		{target: "/", want: 5},
		{target: "/?limit=", want: 5},
		{target: "/?limit=-3", want: -3},
		{target: "/?limit=1.5", wantErr: true},
		{target: "/?limit=ten", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()
			got, err := intQuery(httptest.NewRequest(http.MethodGet, tt.target, nil), "limit", 5)
			if (err != nil) != tt.wantErr {
				t.Fatalf("intQuery() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("intQuery() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	if got := sanitizeLogValue("a\nb\x7f"); got != `a\x0ab\x7f` {
		t.Errorf("sanitizeLogValue() = %q", got)
	}
}

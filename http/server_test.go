package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/fundfaq"
	fundhttp "github.com/fwojciec/fundfaq/http"
	"github.com/fwojciec/fundfaq/inmem"
	"github.com/fwojciec/fundfaq/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(opts ...fundhttp.ServerOption) *fundhttp.Server {
	svc := inmem.NewDefaultFAQService()
	opts = append([]fundhttp.ServerOption{fundhttp.WithLogger(discardLogger())}, opts...)
	return fundhttp.NewServer(svc, svc, opts...)
}

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_FAQs(t *testing.T) {
	t.Parallel()

	t.Run("lists every question in order", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, newTestServer(), httptest.NewRequest(http.MethodGet, "/faqs", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var summaries []fundfaq.FAQSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
		require.Len(t, summaries, 10)
		assert.Equal(t, fundfaq.FAQSummary{ID: 1, Question: "What is expense ratio in mutual funds?"}, summaries[0])
		assert.Equal(t, 10, summaries[9].ID)
	})

	t.Run("is also served under /api", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, newTestServer(), httptest.NewRequest(http.MethodGet, "/api/faqs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("returns 304 for matching ETag", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer()
		first := serve(t, srv, httptest.NewRequest(http.MethodGet, "/faqs", nil))
		etag := first.Header().Get("ETag")
		require.NotEmpty(t, etag)

		req := httptest.NewRequest(http.MethodGet, "/faqs", nil)
		req.Header.Set("If-None-Match", etag)
		second := serve(t, srv, req)

		assert.Equal(t, http.StatusNotModified, second.Code)
		assert.Empty(t, second.Body.String())
		assert.Equal(t, etag, second.Header().Get("ETag"))
	})

	t.Run("returns 500 when catalog fails", func(t *testing.T) {
		t.Parallel()

		faqs := &mock.FAQService{
			FindFAQSummariesFn: func(ctx context.Context) ([]*fundfaq.FAQSummary, error) {
				return nil, errors.New("boom")
			},
		}
		srv := fundhttp.NewServer(faqs, &mock.Searcher{}, fundhttp.WithLogger(discardLogger()))

		rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/faqs", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal error.", decode(t, rec)["error"])
	})
}

func TestServer_Search(t *testing.T) {
	t.Parallel()

	t.Run("returns matching FAQ", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, newTestServer(), httptest.NewRequest(http.MethodGet, "/search?q=what+is+expense+ratio", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, true, body["found"])
		assert.Equal(t, "What is expense ratio in mutual funds?", body["question"])
		assert.Equal(t, "SEBI Circular", body["source_name"])
		assert.Contains(t, body["source"], "sebi.gov.in")
		assert.Contains(t, body["answer"], "Total Expense Ratio")
		assert.NotContains(t, body, "keywords")
	})

	t.Run("returns found false when nothing matches", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, newTestServer(), httptest.NewRequest(http.MethodGet, "/search?q=sip", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{"found": false}, decode(t, rec))
	})

	for _, target := range []string{"/search", "/search?q=", "/search?q=%20%20", "/api/search?q="} {
		target := target
		t.Run("returns 400 for "+target, func(t *testing.T) {
			t.Parallel()

			rec := serve(t, newTestServer(), httptest.NewRequest(http.MethodGet, target, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, map[string]any{"error": "No query provided"}, decode(t, rec))
		})
	}

	t.Run("returns 500 on searcher failure", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string) (*fundfaq.FAQ, error) {
				return nil, errors.New("boom")
			},
		}
		srv := fundhttp.NewServer(&mock.FAQService{}, searcher, fundhttp.WithLogger(discardLogger()))

		rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/search?q=aum", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_FAQ(t *testing.T) {
	t.Parallel()

	t.Run("returns record by id", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, newTestServer(), httptest.NewRequest(http.MethodGet, "/faq/9", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, true, body["found"])
		assert.Equal(t, "What is KYC for mutual funds?", body["question"])
		assert.Equal(t, "CAMS KRA", body["source_name"])
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, newTestServer(), httptest.NewRequest(http.MethodGet, "/api/faq/999", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, map[string]any{"found": false}, decode(t, rec))
	})

	t.Run("returns 400 for malformed id", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, newTestServer(), httptest.NewRequest(http.MethodGet, "/faq/abc", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"error": "Invalid FAQ id"}, decode(t, rec))
	})
}

func TestServer_Middleware(t *testing.T) {
	t.Parallel()

	t.Run("generates request id", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, newTestServer(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
	})

	t.Run("propagates client request id", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "req-123")

		rec := serve(t, newTestServer(), req)

		assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("logs each request", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := inmem.NewDefaultFAQService()
		srv := fundhttp.NewServer(svc, svc, fundhttp.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

		req := httptest.NewRequest(http.MethodGet, "/faq/999", nil)
		req.Header.Set("X-Request-ID", "req-456")
		serve(t, srv, req)

		output := buf.String()
		assert.Contains(t, output, "http request")
		assert.Contains(t, output, "path=/faq/999")
		assert.Contains(t, output, "status=404")
		assert.Contains(t, output, "request_id=req-456")
	})

	t.Run("sets CORS headers for allowed origin", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(fundhttp.WithAllowedOrigins("https://ui.example.com"))

		req := httptest.NewRequest(http.MethodGet, "/faqs", nil)
		req.Header.Set("Origin", "https://ui.example.com")
		rec := serve(t, srv, req)

		assert.Equal(t, "https://ui.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("omits CORS headers for other origins", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(fundhttp.WithAllowedOrigins("https://ui.example.com"))

		req := httptest.NewRequest(http.MethodGet, "/faqs", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := serve(t, srv, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("rate limits requests", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(fundhttp.WithRateLimit(0.001, 1))

		first := serve(t, srv, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		second := serve(t, srv, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, first.Code)
		require.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Equal(t, map[string]any{"error": "Rate limit exceeded"}, decode(t, second))
	})

	t.Run("returns JSON 404 for unknown routes", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, newTestServer(), httptest.NewRequest(http.MethodGet, "/nope", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, map[string]any{"error": "Not found"}, decode(t, rec))
	})
}

func TestServer_Serve(t *testing.T) {
	t.Parallel()

	t.Run("serves until context is cancelled", func(t *testing.T) {
		t.Parallel()

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- newTestServer().Serve(ctx, ln)
		}()

		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
	})

	t.Run("ListenAndServe fails for bad address", func(t *testing.T) {
		t.Parallel()

		err := newTestServer().ListenAndServe(context.Background(), "256.256.256.256:99999")

		require.Error(t, err)
	})
}

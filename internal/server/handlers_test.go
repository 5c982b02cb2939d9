package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hyperjump/youyaku/internal/archive"
	"github.com/hyperjump/youyaku/internal/config"
	"github.com/hyperjump/youyaku/internal/embedding"
	"github.com/hyperjump/youyaku/internal/generate"
	"github.com/hyperjump/youyaku/internal/models"
	"github.com/hyperjump/youyaku/internal/pipeline"
	"github.com/hyperjump/youyaku/internal/report"
	"github.com/hyperjump/youyaku/internal/sample"
	"github.com/hyperjump/youyaku/internal/service"
	"github.com/hyperjump/youyaku/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()

	store, err := storage.NewSQLiteStorage(filepath.Join(dir, "cases.db"))
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ar, err := archive.Open(filepath.Join(dir, "summaries.bleve"))
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	t.Cleanup(func() { _ = ar.Close() })

	pl := pipeline.New(embedding.NewHashEmbedder(64), generate.Noop{}, 3, generate.DefaultParams())
	svc := service.New(store, ar, pl, report.Options{}, zap.NewNop())

	srv := NewServer(svc, &config.ServerConfig{Host: "localhost", Port: 0}, zap.NewNop())
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["status"] != "ok" {
		t.Errorf("body: %v", body)
	}
}

func TestSummarizeReport(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/v1/summarize", models.SummarizeRequest{
		Title: sample.Title,
		Text:  sample.CaseText(),
		Mode:  models.ModeReport,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status: got %d", resp.StatusCode)
	}
	var body models.SummarizeResponse
	decodeBody(t, resp, &body)
	if body.CaseID == "" || len(body.SummaryIDs) != 1 {
		t.Errorf("response: %+v", body)
	}
	if !strings.Contains(body.Report, "PARTIES INVOLVED:") {
		t.Errorf("report missing parties section:\n%s", body.Report)
	}
	if body.Summary != "" {
		t.Errorf("pipeline summary present in report mode: %q", body.Summary)
	}

	// The stored summary is retrievable.
	getResp, err := http.Get(ts.URL + "/api/v1/summaries/" + body.SummaryIDs[0])
	if err != nil {
		t.Fatalf("GET summary: %v", err)
	}
	if getResp.StatusCode != http.StatusOK {
		t.Errorf("get summary status: %d", getResp.StatusCode)
	}
	var sum models.Summary
	decodeBody(t, getResp, &sum)
	if sum.Kind != models.KindReport || sum.CaseID != body.CaseID {
		t.Errorf("stored summary: %+v", sum)
	}
}

func TestSummarizeBoth(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/v1/summarize", models.SummarizeRequest{
		Text: sample.CaseText(),
		Mode: models.ModeBoth,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status: got %d", resp.StatusCode)
	}
	var body models.SummarizeResponse
	decodeBody(t, resp, &body)
	if len(body.SummaryIDs) != 2 || body.Report == "" || body.Summary == "" {
		t.Errorf("both mode response: ids=%v report=%d bytes summary=%d bytes",
			body.SummaryIDs, len(body.Report), len(body.Summary))
	}
}

func TestSummarizeValidation(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/v1/summarize", "application/json", strings.NewReader("{broken"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed body: got %d", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/v1/summarize", models.SummarizeRequest{Text: ""})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty text: got %d", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/v1/summarize", models.SummarizeRequest{Text: "x.", Mode: "bogus"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid mode: got %d", resp.StatusCode)
	}
}

func TestListSummariesValidation(t *testing.T) {
	ts := newTestServer(t)
	for _, query := range []string{"?limit=abc", "?offset=-1", "?limit=1&offset=x"} {
		resp, err := http.Get(ts.URL + "/api/v1/summaries" + query)
		if err != nil {
			t.Fatalf("GET %s: %v", query, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: got %d, want 400", query, resp.StatusCode)
		}
	}

	// Missing params still default.
	resp, err := http.Get(ts.URL + "/api/v1/summaries")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("no params: got %d, want 200", resp.StatusCode)
	}
}

func TestSearchArchivedSummaries(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/v1/summarize", models.SummarizeRequest{
		Text: sample.CaseText(),
		Mode: models.ModeReport,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("summarize status: %d", resp.StatusCode)
	}

	searchResp := postJSON(t, ts.URL+"/api/v1/search", models.SearchQuery{Query: "damages"})
	if searchResp.StatusCode != http.StatusOK {
		t.Fatalf("search status: %d", searchResp.StatusCode)
	}
	var body models.SearchResponse
	decodeBody(t, searchResp, &body)
	if body.Total < 1 {
		t.Errorf("expected at least one hit, got %+v", body)
	}
}

func TestSearchValidation(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/v1/search", models.SearchQuery{Query: ""})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty query: got %d", resp.StatusCode)
	}
}

func TestStatusCounts(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/v1/summarize", models.SummarizeRequest{Text: sample.CaseText()})
	resp.Body.Close()

	statusResp, err := http.Get(ts.URL + "/api/v1/status")
	if err != nil {
		t.Fatalf("GET status: %v", err)
	}
	var body map[string]float64
	decodeBody(t, statusResp, &body)
	if body["cases"] != 1 || body["summaries"] != 1 {
		t.Errorf("counts: %v", body)
	}
}

func TestGetSummaryNotFound(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/v1/summaries/missing")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status: got %d", resp.StatusCode)
	}
}

func TestDemoSummaryStableAcrossMethods(t *testing.T) {
	ts := newTestServer(t)

	read := func(method string) string {
		t.Helper()
		req, err := http.NewRequest(method, ts.URL+"/summary", nil)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s /summary: %v", method, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s /summary status: %d", method, resp.StatusCode)
		}
		var b bytes.Buffer
		if _, err := b.ReadFrom(resp.Body); err != nil {
			t.Fatalf("read body: %v", err)
		}
		return b.String()
	}

	get1 := read(http.MethodGet)
	get2 := read(http.MethodGet)
	post := read(http.MethodPost)

	if get1 != get2 {
		t.Error("GET /summary not stable across requests")
	}
	if get1 != post {
		t.Error("GET and POST /summary bodies differ")
	}
	if !strings.Contains(get1, "COMMERCIAL CASE SUMMARY") {
		t.Errorf("demo summary body:\n%s", get1)
	}
	if !strings.Contains(get1, "Meridian Supply Co.") {
		t.Errorf("demo summary missing plaintiff:\n%s", get1)
	}
}

package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handler "textstats/internal/handler/http"
	"textstats/internal/handler/http/requestid"
	"textstats/internal/observability/logging"
)

func TestLogging_RecordsCompletedRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := handler.Logging(logger)(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusCreated)
		w.Write([]byte("done"))
	}))

	req := httptest.NewRequest(nethttp.MethodPost, "/tools/count_words", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON log entry: %v", err)
	}
	if entry["method"] != "POST" {
		t.Errorf("method = %v, expected POST", entry["method"])
	}
	if entry["path"] != "/tools/count_words" {
		t.Errorf("path = %v, expected /tools/count_words", entry["path"])
	}
	if entry["status"] != float64(nethttp.StatusCreated) {
		t.Errorf("status = %v, expected %d", entry["status"], nethttp.StatusCreated)
	}
	if entry["bytes"] != float64(4) {
		t.Errorf("bytes = %v, expected 4", entry["bytes"])
	}
}

func TestLogging_StoresRequestLoggerInContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := handler.Logging(logger)(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		logging.FromContext(r.Context()).Info("handling")
		w.WriteHeader(nethttp.StatusOK)
	}))

	req := httptest.NewRequest(nethttp.MethodGet, "/tools", nil)
	req = req.WithContext(requestid.WithRequestID(req.Context(), "req-42"))
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, `"msg":"handling"`) {
		t.Error("handler log line missing from output")
	}
	if !strings.Contains(out, `"request_id":"req-42"`) {
		t.Error("request-scoped logger missing request_id attribute")
	}
}

func TestRecover_ConvertsPanicTo500(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := handler.Recover(logger)(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		panic("handler exploded")
	}))

	req := httptest.NewRequest(nethttp.MethodGet, "/tools", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != nethttp.StatusInternalServerError {
		t.Fatalf("status = %d, expected %d", rr.Code, nethttp.StatusInternalServerError)
	}
	if !strings.Contains(buf.String(), "handler exploded") {
		t.Error("panic value missing from log output")
	}
	if strings.Contains(rr.Body.String(), "handler exploded") {
		t.Error("panic value leaked into the response body")
	}
}

func TestLimitRequestBody(t *testing.T) {
	h := handler.LimitRequestBody(8)(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(nethttp.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(nethttp.StatusOK)
	}))

	req := httptest.NewRequest(nethttp.MethodPost, "/analyze", strings.NewReader("tiny"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != nethttp.StatusOK {
		t.Errorf("small body: status = %d, expected %d", rr.Code, nethttp.StatusOK)
	}

	req = httptest.NewRequest(nethttp.MethodPost, "/analyze", strings.NewReader(strings.Repeat("x", 64)))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != nethttp.StatusRequestEntityTooLarge {
		t.Errorf("oversized body: status = %d, expected %d", rr.Code, nethttp.StatusRequestEntityTooLarge)
	}
}

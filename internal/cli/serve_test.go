package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	srv := httptest.NewServer(newRouter(logger))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestConnectivityEndpoint(t *testing.T) {
	srv := testServer(t)

	body := `{"reaches": [
		{"id": 1, "downstream_id": -1},
		{"id": 2, "downstream_id": 1},
		{"id": 3, "downstream_id": 1},
		{"id": 4, "downstream_id": 2}
	]}`

	resp, err := http.Post(srv.URL+"/v1/connectivity", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	want := "1,0,2,2,3\n2,1,1,4,0\n3,1,0,0,0\n4,2,0,0,0\n"
	if string(data) != want {
		t.Errorf("body = %q, want %q", data, want)
	}
}

func TestConnectivityEndpointMaxUpstreams(t *testing.T) {
	srv := testServer(t)

	body := `{"reaches": [
		{"id": 1, "downstream_id": -1},
		{"id": 2, "downstream_id": 1}
	], "max_upstreams": 3}`

	resp, err := http.Post(srv.URL+"/v1/connectivity", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	want := "1,0,1,2,0,0\n2,1,0,0,0,0\n"
	if string(data) != want {
		t.Errorf("body = %q, want %q", data, want)
	}
}

func TestConnectivityEndpointErrors(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "MalformedJSON",
			body:       `{"reaches": [`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "EmptyNetwork",
			body:       `{"reaches": []}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "DuplicateReach",
			body:       `{"reaches": [{"id": 1}, {"id": 1}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "DUPLICATE_REACH",
		},
		{
			name:       "WidthOutOfRange",
			body:       `{"reaches": [{"id": 1}], "max_upstreams": 13}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_WIDTH",
		},
		{
			name: "FanInOverflow",
			body: `{"reaches": [
				{"id": 1, "downstream_id": -1},
				{"id": 2, "downstream_id": 1},
				{"id": 3, "downstream_id": 1}
			], "max_upstreams": 1}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "FAN_IN_OVERFLOW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/v1/connectivity", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var e errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if e.Code != tt.wantCode {
				t.Errorf("code = %q, want %q (message: %s)", e.Code, tt.wantCode, e.Error)
			}
			if e.Error == "" {
				t.Error("error message should not be empty")
			}
		})
	}
}

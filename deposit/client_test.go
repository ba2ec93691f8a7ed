package deposit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/research-data-tools/depositcsv/meta"
)

func testResource() *Resource {
	return &Resource{
		Kind:   KindData,
		Status: "pending",
		Metas: []meta.Entry{
			{PropertyURI: "http://nakala.fr/terms#title", Value: "Été", Lang: "fr"},
		},
		Files: []File{{Name: "data.csv"}},
	}
}

func TestSubmitSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-KEY")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotBody); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing X-Request-Id header")
		}
		w.WriteHeader(http.StatusCreated)
		if _, err := w.Write([]byte(`{"payload":{"id":"10.34847/nkl.abcd1234"}}`)); err != nil {
			t.Errorf("writing response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	id, err := client.Submit(context.Background(), testResource())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if id != "10.34847/nkl.abcd1234" {
		t.Errorf("id = %q", id)
	}
	if gotPath != "/datas" {
		t.Errorf("path = %q, want /datas", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("api key = %q", gotKey)
	}

	metas, ok := gotBody["metas"].([]any)
	if !ok || len(metas) != 1 {
		t.Fatalf("metas = %v", gotBody["metas"])
	}
	entry := metas[0].(map[string]any)
	if entry["propertyUri"] != "http://nakala.fr/terms#title" || entry["value"] != "Été" || entry["lang"] != "fr" {
		t.Errorf("meta entry = %v", entry)
	}
	if _, present := entry["typeUri"]; present {
		t.Error("typeUri serialized for untyped entry")
	}
}

func TestSubmitCollectionEndpoint(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotBody); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		if _, err := w.Write([]byte(`{"id":"coll-1"}`)); err != nil {
			t.Errorf("writing response: %v", err)
		}
	}))
	defer server.Close()

	res := &Resource{
		Kind:    KindCollection,
		Status:  "private",
		DataIDs: []string{"10.34847/nkl.a", "10.34847/nkl.b"},
	}
	client := NewClient(server.URL, "k")
	id, err := client.Submit(context.Background(), res)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if id != "coll-1" {
		t.Errorf("id = %q", id)
	}
	if gotPath != "/collections" {
		t.Errorf("path = %q, want /collections", gotPath)
	}
	datas, ok := gotBody["datas"].([]any)
	if !ok || len(datas) != 2 {
		t.Errorf("datas = %v", gotBody["datas"])
	}
	if _, present := gotBody["files"]; present {
		t.Error("files serialized on a collection")
	}
}

func TestSubmitErrors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantRetryable bool
	}{
		{"bad request", http.StatusBadRequest, `{"message":"invalid metas"}`, false},
		{"unauthorized", http.StatusUnauthorized, `{"message":"bad key"}`, false},
		{"throttled", http.StatusTooManyRequests, ``, true},
		{"server error", http.StatusInternalServerError, `boom`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if _, err := w.Write([]byte(tt.body)); err != nil {
					t.Errorf("writing response: %v", err)
				}
			}))
			defer server.Close()

			client := NewClient(server.URL, "k")
			_, err := client.Submit(context.Background(), testResource())
			if err == nil {
				t.Fatal("Submit() error = nil, want error")
			}
			if IsRetryable(err) != tt.wantRetryable {
				t.Errorf("IsRetryable(%v) = %v, want %v", err, IsRetryable(err), tt.wantRetryable)
			}
		})
	}
}

func TestSubmitNetworkErrorRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, "k")
	_, err := client.Submit(context.Background(), testResource())
	if err == nil {
		t.Fatal("Submit() error = nil, want error")
	}
	if !IsRetryable(err) {
		t.Errorf("IsRetryable(%v) = false, want true", err)
	}
}

func TestResourceExtras(t *testing.T) {
	res := testResource()
	res.SetExtra("internal_note", "keep")
	res.SetExtra("weight", 3)

	if got := res.GetExtraString("internal_note"); got != "keep" {
		t.Errorf("GetExtraString() = %q", got)
	}

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	extras, ok := body["extras"].(map[string]any)
	if !ok {
		t.Fatalf("extras = %v", body["extras"])
	}
	if extras["internal_note"] != "keep" {
		t.Errorf("extras = %v", extras)
	}
}

func TestResourceMarshalEmptyMetas(t *testing.T) {
	res := &Resource{Kind: KindData, Status: "pending"}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := body["metas"].([]any); !ok {
		t.Errorf("metas = %v, want empty array not null", body["metas"])
	}
}

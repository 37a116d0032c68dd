package xcatalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := New(server.URL, "it", WithRateLimit(0), WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New("", "it"); err == nil {
		t.Fatal("expected error for empty base url")
	}
	if _, err := New("   ", "it"); err == nil {
		t.Fatal("expected error for blank base url")
	}
}

func TestFetchTrimArrayResponse(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody trimSearchRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		io.WriteString(w, `[{"name":"GOLF 1.5 TSI","make":"VOLKSWAGEN","providerCode":"123456789012","powerHp":150},{"name":"GOLF 2.0 TDI","make":"VOLKSWAGEN"}]`)
	}))

	record, err := client.FetchTrim(context.Background(), "123456789012")
	if err != nil {
		t.Fatalf("FetchTrim: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/trim/search" {
		t.Errorf("request = %s %s, want PUT /trim/search", gotMethod, gotPath)
	}
	if gotBody.ReferenceCode != "123456789012" || gotBody.Source != "infocar" || gotBody.Country != "it" || gotBody.VehicleType != "auto" {
		t.Errorf("unexpected request payload: %+v", gotBody)
	}
	if record.Name != "GOLF 1.5 TSI" || record.PowerHP != 150 {
		t.Errorf("unexpected first record: %+v", record)
	}
}

func TestFetchTrimObjectResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"name":"PANDA 1.0 HYBRID","make":"FIAT","providerCode":"000111000111"}`)
	}))

	record, err := client.FetchTrim(context.Background(), "000111000111")
	if err != nil {
		t.Fatalf("FetchTrim: %v", err)
	}
	if record.Name != "PANDA 1.0 HYBRID" || record.Make != "FIAT" {
		t.Errorf("unexpected record: %+v", record)
	}
}

func TestFetchTrimMisses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"http 404", http.StatusNotFound, "", ErrNotFound},
		{"empty array", http.StatusOK, `[]`, ErrNotFound},
		{"empty body", http.StatusOK, ``, ErrNotFound},
		{"error envelope", http.StatusOK, `{"code":"TRIM_NOT_FOUND"}`, ErrNotFound},
		{"not found envelope", http.StatusOK, `{"code":"NOT_FOUND"}`, ErrNotFound},
		{"blank object", http.StatusOK, `{}`, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			_, err := client.FetchTrim(context.Background(), "123456789012")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FetchTrim error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFetchTrimServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	_, err := client.FetchTrim(context.Background(), "123456789012")
	if err == nil {
		t.Fatal("expected error for status 500")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("server error must not look like a miss")
	}
}

func TestResolveTrimDirectHit(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"name":"IBIZA 1.0","make":"SEAT"}`)
	}))

	record, used, inverted, err := client.ResolveTrim(context.Background(), "111222333444")
	if err != nil {
		t.Fatalf("ResolveTrim: %v", err)
	}
	if record.Name != "IBIZA 1.0" {
		t.Errorf("record name = %q", record.Name)
	}
	if used != "111222333444" || inverted {
		t.Errorf("used = %q inverted = %v, want original code without inversion", used, inverted)
	}
}

func TestResolveTrimInversionFallback(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body trimSearchRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.ReferenceCode == "333444111222" {
			io.WriteString(w, `{"name":"CLIO 1.0 TCE","make":"RENAULT"}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	record, used, inverted, err := client.ResolveTrim(context.Background(), "111222333444")
	if err != nil {
		t.Fatalf("ResolveTrim: %v", err)
	}
	if record.Name != "CLIO 1.0 TCE" {
		t.Errorf("record name = %q", record.Name)
	}
	if used != "333444111222" || !inverted {
		t.Errorf("used = %q inverted = %v, want inverted code", used, inverted)
	}
}

func TestResolveTrimNonInvertibleMiss(t *testing.T) {
	calls := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))

	_, _, _, err := client.ResolveTrim(context.Background(), "SHORTCODE")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("ResolveTrim error = %v, want ErrNotFound", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no inverted retry for non-numeric code)", calls)
	}
}

func TestResolveTrimBothMiss(t *testing.T) {
	calls := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))

	_, _, inverted, err := client.ResolveTrim(context.Background(), "111222333444")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("ResolveTrim error = %v, want ErrNotFound", err)
	}
	if inverted {
		t.Error("inverted should be false when both lookups miss")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestExistingMappingPicksLatestEurotax(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Encode()
		io.WriteString(w, `[
			{"id":"20240101-a","destCode":"OLD123","destProvider":"eurotax","score":0.81},
			{"id":"20250301-b","destCode":"NEW456","destProvider":"eurotax","score":0.92},
			{"id":"20260101-z","destCode":"OTHER","destProvider":"datcode","score":0.99}
		]`)
	}))

	mapping, err := client.ExistingMapping(context.Background(), "111222333444", "car")
	if err != nil {
		t.Fatalf("ExistingMapping: %v", err)
	}
	if gotPath != "/v1/private/mapping/infocar/111222333444" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "country=it&vehicleType=car" {
		t.Errorf("query = %q", gotQuery)
	}
	if mapping == nil {
		t.Fatal("expected a mapping")
	}
	if mapping.DestCode != "NEW456" || mapping.Score != 0.92 {
		t.Errorf("latest mapping = %+v, want NEW456", mapping)
	}
}

func TestExistingMappingNone(t *testing.T) {
	t.Run("http 404", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		mapping, err := client.ExistingMapping(context.Background(), "111222333444", "car")
		if err != nil {
			t.Fatalf("ExistingMapping: %v", err)
		}
		if mapping != nil {
			t.Errorf("mapping = %+v, want nil", mapping)
		}
	})
	t.Run("only other providers", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[{"id":"x","destCode":"D1","destProvider":"datcode"}]`)
		}))
		mapping, err := client.ExistingMapping(context.Background(), "111222333444", "car")
		if err != nil {
			t.Fatalf("ExistingMapping: %v", err)
		}
		if mapping != nil {
			t.Errorf("mapping = %+v, want nil", mapping)
		}
	})
}

func TestSubmitMappingPayload(t *testing.T) {
	var gotMethod, gotPath string
	var got mappingSubmission
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))

	err := client.SubmitMapping(context.Background(), Submission{
		SourceCode:   "111222333444",
		DestCode:     "987654",
		Score:        119,
		MaxScore:     157,
		VehicleClass: "LCV",
	})
	if err != nil {
		t.Fatalf("SubmitMapping: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/v1/private/mapping" {
		t.Errorf("request = %s %s, want POST /v1/private/mapping", gotMethod, gotPath)
	}
	want := mappingSubmission{
		Country:        "it",
		DestCode:       "987654",
		DestProvider:   "eurotax",
		Score:          0.7580,
		SourceCode:     "111222333444",
		SourceProvider: "infocar",
		Strategy:       "manual",
		VehicleType:    "lcv",
	}
	if got != want {
		t.Errorf("payload = %+v, want %+v", got, want)
	}
}

func TestSubmitMappingDefaults(t *testing.T) {
	var got mappingSubmission
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
	}))

	err := client.SubmitMapping(context.Background(), Submission{
		SourceCode: "111222333444",
		DestCode:   "987654",
		Score:      157,
		MaxScore:   157,
		Country:    "de",
	})
	if err != nil {
		t.Fatalf("SubmitMapping: %v", err)
	}
	if got.VehicleType != "car" {
		t.Errorf("vehicleType = %q, want car", got.VehicleType)
	}
	if got.Country != "de" {
		t.Errorf("country = %q, want de", got.Country)
	}
	if got.Score != 1 {
		t.Errorf("score = %v, want 1", got.Score)
	}
}

func TestSubmitMappingRejectedStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	err := client.SubmitMapping(context.Background(), Submission{SourceCode: "x", DestCode: "y", Score: 1, MaxScore: 10})
	if err == nil {
		t.Fatal("expected error for rejected submission")
	}
}

package tuner

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"deploykit/icons"
)

func newTestServer(t *testing.T) (*httptest.Server, *icons.Store, *Hub) {
	t.Helper()
	store := icons.NewStore(filepath.Join(t.TempDir(), "overrides.toml"), nil)
	catalog := icons.Default().WithStore(store)
	hub := NewHub()
	handler := NewHandler(catalog, store, hub)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.HandleFunc("GET /api/v1/ws", hub.ServeWS)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, store, hub
}

func iconURL(base, subject string) string {
	return base + "/api/v1/icons/" + url.PathEscape(subject)
}

func TestListIcons(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/v1/icons")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Subjects []string `json:"subjects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Subjects) == 0 {
		t.Fatal("no subjects returned")
	}
	found := false
	for _, s := range body.Subjects {
		if s == "AP - Cisco MR36H" {
			found = true
		}
	}
	if !found {
		t.Error("known subject missing from list")
	}
}

func TestGetIconParams(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp, err := http.Get(iconURL(srv.URL, "AP - Cisco MR36H"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Category string                 `json:"category"`
		Params   map[string]interface{} `json:"params"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Category != "APs" {
		t.Errorf("category = %q", body.Category)
	}
	if body.Params["brand_text"] != "CISCO" {
		t.Errorf("brand_text = %v", body.Params["brand_text"])
	}
}

func TestGetIconUnknown(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp, err := http.Get(iconURL(srv.URL, "AP - Not A Device"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func putJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestPutIconUpdatesStore(t *testing.T) {
	srv, store, _ := newTestServer(t)
	resp := putJSON(t, iconURL(srv.URL, "AP - Cisco MR36H"),
		map[string]any{"img_scale_ratio": 1.25, "brand_text": "MERAKI"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	ov, ok := store.Get("AP - Cisco MR36H")
	if !ok || ov.ImgScaleRatio == nil || *ov.ImgScaleRatio != 1.25 {
		t.Errorf("override not stored: %+v", ov)
	}

	var body struct {
		Params map[string]interface{} `json:"params"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Params["brand_text"] != "MERAKI" {
		t.Errorf("response params not merged: %v", body.Params["brand_text"])
	}
}

func TestPutIconRejectsUnknownParam(t *testing.T) {
	srv, store, _ := newTestServer(t)
	resp := putJSON(t, iconURL(srv.URL, "AP - Cisco MR36H"), map[string]any{"bogus": 1})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if _, ok := store.Get("AP - Cisco MR36H"); ok {
		t.Error("rejected update still wrote to store")
	}
}

func TestDeleteIcon(t *testing.T) {
	srv, store, _ := newTestServer(t)
	if err := store.Set("AP - Cisco MR36H", icons.Override{}); err != nil {
		t.Fatal(err)
	}
	req, _ := http.NewRequest(http.MethodDelete, iconURL(srv.URL, "AP - Cisco MR36H"), nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if _, ok := store.Get("AP - Cisco MR36H"); ok {
		t.Error("override still present after delete")
	}
}

func TestPreviewReturnsPDF(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp, err := http.Get(iconURL(srv.URL, "AP - Cisco MR36H") + "/preview")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Error("body is not a PDF")
	}
	if !bytes.Contains(body, []byte("(j100) Tj")) {
		t.Error("preview does not carry the sample identifier")
	}
}

func TestRunScript(t *testing.T) {
	srv, store, _ := newTestServer(t)
	payload, _ := json.Marshal(map[string]string{
		"script": `getIcon("HL - Artist").set("no_id_box", true); "done"`,
	})
	resp, err := http.Post(srv.URL+"/api/v1/script", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d: %s", resp.StatusCode, raw)
	}
	var body struct {
		Result interface{} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Result != "done" {
		t.Errorf("result = %v", body.Result)
	}
	ov, ok := store.Get("HL - Artist")
	if !ok || ov.NoIDBox == nil || !*ov.NoIDBox {
		t.Error("script change not persisted")
	}
}

func TestRunScriptBadBody(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/v1/script", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"pngstash/models"
)

func multipartBody(t *testing.T, fields map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, data := range fields {
		fw, err := mw.CreateFormFile(name, name+".bin")
		if err != nil {
			t.Fatalf("CreateFormFile() error: %v", err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestServer(t *testing.T) {
	dir := testSetup(t, true)
	carrier, err := os.ReadFile(writeCarrier(t, dir))
	if err != nil {
		t.Fatalf("read carrier: %v", err)
	}
	ts := httptest.NewServer((&Server{config: cfg}).routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	if err != nil {
		t.Fatalf("GET /ping: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /ping status %d", resp.StatusCode)
	}

	payload := []byte("over the wire \x00\x01")
	body, ctype := multipartBody(t, map[string][]byte{"carrier": carrier, "payload": payload})
	resp, err = http.Post(ts.URL+"/inject", ctype, body)
	if err != nil {
		t.Fatalf("POST /inject: %v", err)
	}
	injected := &bytes.Buffer{}
	injected.ReadFrom(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "image/png" {
		t.Fatalf("POST /inject status %d: %s", resp.StatusCode, injected.String())
	}

	resp, err = http.Post(ts.URL+"/extract", "image/png", bytes.NewReader(injected.Bytes()))
	if err != nil {
		t.Fatalf("POST /extract: %v", err)
	}
	extracted := &bytes.Buffer{}
	extracted.ReadFrom(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !bytes.Equal(extracted.Bytes(), payload) {
		t.Errorf("POST /extract status %d, body %q", resp.StatusCode, extracted.Bytes())
	}

	resp, err = http.Post(ts.URL+"/inspect", "image/png", bytes.NewReader(injected.Bytes()))
	if err != nil {
		t.Fatalf("POST /inspect: %v", err)
	}
	var report models.ChainReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode inspect response: %v", err)
	}
	resp.Body.Close()
	n := report.TotalChunks()
	if n < 3 || report.Chunks[n-2].Type != "tEXt" || report.Chunks[n-1].Type != "IEND" || report.ValidChunks != n {
		t.Errorf("unexpected report %+v", report)
	}

	ops, err := store.ListOperations(0)
	if err != nil || len(ops) != 2 {
		t.Errorf("expected 2 recorded operations, got %d (%v)", len(ops), err)
	}
}

func TestServerErrors(t *testing.T) {
	dir := testSetup(t, false)
	carrier, err := os.ReadFile(writeCarrier(t, dir))
	if err != nil {
		t.Fatalf("read carrier: %v", err)
	}
	ts := httptest.NewServer((&Server{config: cfg}).routes())
	defer ts.Close()
	cases := []struct {
		name   string
		path   string
		body   []byte
		status int
	}{
		{name: "extract plain carrier", path: "/extract", body: carrier, status: http.StatusNotFound},
		{name: "extract not png", path: "/extract", body: []byte("hello"), status: http.StatusUnprocessableEntity},
		{name: "extract truncated", path: "/extract", body: carrier[:len(carrier)-12], status: http.StatusUnprocessableEntity},
		{name: "inspect not png", path: "/inspect", body: []byte("hello"), status: http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+tc.path, "image/png", bytes.NewReader(tc.body))
			if err != nil {
				t.Fatalf("POST %s: %v", tc.path, err)
			}
			resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Errorf("status %d, want %d", resp.StatusCode, tc.status)
			}
		})
	}

	body, ctype := multipartBody(t, map[string][]byte{"carrier": carrier})
	resp, err := http.Post(ts.URL+"/inject", ctype, body)
	if err != nil {
		t.Fatalf("POST /inject: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("inject without payload: status %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/extract")
	if err != nil {
		t.Fatalf("GET /extract: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /extract: status %d", resp.StatusCode)
	}
}

func TestServerBodyLimit(t *testing.T) {
	dir := testSetup(t, false)
	carrier, err := os.ReadFile(writeCarrier(t, dir))
	if err != nil {
		t.Fatalf("read carrier: %v", err)
	}
	cfg.MaxBodyBytes = 16
	ts := httptest.NewServer((&Server{config: cfg}).routes())
	defer ts.Close()
	resp, err := http.Post(ts.URL+"/extract", "image/png", bytes.NewReader(carrier))
	if err != nil {
		t.Fatalf("POST /extract: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Errorf("expected oversized body to be rejected")
	}
}

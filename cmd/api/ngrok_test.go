package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestDetectNgrokURL(t *testing.T) {
	t.Run("prefers https", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/tunnels" {
				t.Errorf("path = %s", r.URL.Path)
			}
			w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
		}))
		defer ts.Close()

		got, err := detectNgrokURL(context.Background(), ts.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "https://a.ngrok.io" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("bad json is not retried", func(t *testing.T) {
		var calls atomic.Int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Write([]byte(`{`))
		}))
		defer ts.Close()

		if _, err := detectNgrokURL(context.Background(), ts.URL); err == nil {
			t.Fatal("expected an error")
		}
		if calls.Load() != 1 {
			t.Errorf("calls = %d, want 1", calls.Load())
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tunnels":[]}`))
		}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := detectNgrokURL(ctx, ts.URL); err == nil {
			t.Fatal("expected an error")
		}
	})
}

package refresher

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetcher_StatusAndUserAgent(t *testing.T) {
	var gotUA, gotMethod string
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/dead", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := NewFetcherWithClient(srv.Client())
	ctx := context.Background()

	status, err := f.Fetch(ctx, srv.URL+"/ok")
	if err != nil || status != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", status, err)
	}
	if gotMethod != http.MethodGet {
		t.Fatalf("method = %q, want GET", gotMethod)
	}
	if gotUA != UserAgent {
		t.Fatalf("User-Agent = %q", gotUA)
	}

	status, err = f.Fetch(ctx, srv.URL+"/dead")
	if err != nil || status != http.StatusNotFound {
		t.Fatalf("expected 404 without error, got %d %v", status, err)
	}
}

func TestFetcher_NetworkError(t *testing.T) {
	// Grab a free port, then close it so the dial is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	_, err = NewFetcher().Fetch(context.Background(), "http://"+addr+"/")
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fe.Type != ErrorTypeNetwork {
		t.Fatalf("type = %s, want network", fe.Type)
	}
	if fe.Detail() == "" {
		t.Fatal("expected a detail message")
	}
}

func TestFetcher_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewFetcherWithClient(&http.Client{Timeout: 50 * time.Millisecond})
	_, err := f.Fetch(context.Background(), srv.URL)

	var fe *FetchError
	if !errors.As(err, &fe) || fe.Type != ErrorTypeTimeout {
		t.Fatalf("expected timeout FetchError, got %v", err)
	}
}

func TestFetcher_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFetcherWithClient(srv.Client()).Fetch(ctx, srv.URL)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Type != ErrorTypeCancelled {
		t.Fatalf("expected cancelled FetchError, got %v", err)
	}
}

func TestFetcher_InvalidURL(t *testing.T) {
	_, err := NewFetcher().Fetch(context.Background(), "https://streamtape.com/\x7f")
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Type != ErrorTypeInvalidURL {
		t.Fatalf("expected invalid_url FetchError, got %v", err)
	}
}

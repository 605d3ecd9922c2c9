package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFromURL_InvalidURL(t *testing.T) {
	tests := []struct {
		name   string
		urlStr string
	}{
		{"empty URL", ""},
		{"malformed URL", "not-a-url"},
		{"no scheme", "example.com"},
		{"no host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := IngestFromURL(context.Background(), tt.urlStr, false, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrHTTPRequestFailed)
		})
	}
}

func TestIngestFromURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		html := `<!DOCTYPE html>
<html><body>
	<nav>Site navigation</nav>
	<main>
		<h2>SKILLS</h2>
		<p>Python, Machine Learning,    Statistics</p>
		<h2>EDUCATION</h2>
		<p>Bachelor of Science in Physics</p>
	</main>
	<footer>Footer links</footer>
</body></html>`
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	defer server.Close()

	text, metadata, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)
	assert.Contains(t, text, "Python, Machine Learning, Statistics")
	assert.Contains(t, text, "Bachelor of Science in Physics")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Footer links")

	require.NotNil(t, metadata)
	assert.Equal(t, server.URL, metadata.URL)
	assert.Equal(t, "unknown", metadata.Platform)
	assert.Equal(t, len(text), metadata.Chars)
	assert.NotEmpty(t, metadata.Hash)
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, _, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestIngestFromURL_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><main>   </main></body></html>"))
	}))
	defer server.Close()

	_, _, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestIngestFromURL_NoiseStripped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		html := `<html><body><main>
			<p>Requirements: strong statistics background</p>
			<form><input name="apply"/></form>
			<div class="cookie-banner">We use cookies</div>
		</main></body></html>`
		_, _ = w.Write([]byte(html))
	}))
	defer server.Close()

	text, _, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)
	assert.Contains(t, text, "Requirements: strong statistics background")
	assert.NotContains(t, text, "We use cookies")
}

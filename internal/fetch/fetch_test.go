package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Physics Careers</h1></body></html>"))
	}))
	defer server.Close()

	page, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, page.URL)
	assert.Contains(t, page.HTML, "<h1>Physics Careers</h1>")
	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Contains(t, page.ContentType, "text/html")
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	page, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, page) // page is returned even on error
	assert.Equal(t, http.StatusNotFound, page.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestURL_CustomHeaders(t *testing.T) {
	var gotAgent, gotCustom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotCustom = r.Header.Get("X-Check")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	opts := &Options{
		Timeout:   5 * time.Second,
		UserAgent: "career-compass-test",
		Headers:   map[string]string{"X-Check": "yes"},
	}
	_, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, "career-compass-test", gotAgent)
	assert.Equal(t, "yes", gotCustom)
}

func TestURL_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := URL(ctx, server.URL, nil)
	require.Error(t, err)
}

func TestExtractMainText_MainElement(t *testing.T) {
	html := `<html><body>
		<nav>Navigation links</nav>
		<main>SKILLS: Python, Calculus</main>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "SKILLS: Python, Calculus")
	assert.NotContains(t, text, "Navigation links")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractMainText_SelectorPriority(t *testing.T) {
	html := `<html><body>
		<article>Article text</article>
		<main>Main text</main>
	</body></html>`

	// "main" is listed first, so it wins even though article appears earlier.
	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Main text", text)
}

func TestExtractMainText_BodyFallback(t *testing.T) {
	html := `<html><body><div>Plain page content</div></body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Plain page content", text)
}

func TestExtractMainText_NoiseSelectors(t *testing.T) {
	html := `<html><body><main>
		<p>Requirements: statistics degree</p>
		<div class="apply-box">Apply now</div>
	</main></body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors(), ".apply-box")
	require.NoError(t, err)
	assert.Contains(t, text, "Requirements: statistics degree")
	assert.NotContains(t, text, "Apply now")
}

func TestExtractMainText_PreservesLines(t *testing.T) {
	html := `<html><body><main>
		<h2>SKILLS</h2>
		<p>Python</p>

		<h2>EDUCATION</h2>
		<p>BSc Physics</p>
	</main></body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	// Headers stay on their own lines so section extraction still works.
	assert.Contains(t, text, "SKILLS\nPython")
	assert.Contains(t, text, "EDUCATION\nBSc Physics")
	assert.NotContains(t, text, "\n\n")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   short page   "))

	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'x'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}

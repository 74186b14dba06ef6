// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/soundfolio/internal/models"
)

// MockCatalog is a test double for [services.Catalog] that records every call.
type MockCatalog struct {
	mu sync.Mutex

	Songs     models.Collection
	ListErr   error
	CreateErr error

	// CreateErrFor, when set, decides the CreateSong error per payload.
	CreateErrFor func(models.SongPayload) error

	queries  []models.QueryState
	payloads []models.SongPayload
}

func (m *MockCatalog) ListSongs(ctx context.Context, q models.QueryState) (models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, q)
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Songs, nil
}

func (m *MockCatalog) CreateSong(ctx context.Context, payload models.SongPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads = append(m.payloads, payload)
	if m.CreateErrFor != nil {
		return m.CreateErrFor(payload)
	}
	return m.CreateErr
}

// Queries returns the query of every ListSongs call, in call order.
func (m *MockCatalog) Queries() []models.QueryState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.QueryState(nil), m.queries...)
}

// Payloads returns the payload of every CreateSong call, in call order.
func (m *MockCatalog) Payloads() []models.SongPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.SongPayload(nil), m.payloads...)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

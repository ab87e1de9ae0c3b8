// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"sync"
	"time"
)

// DataSource fetches the list of bank records from one of the two providers
// (remote endpoint or bundled mock data). Callers never know which variant is
// active.
//
//go:generate mockgen -destination=mocks/mock_datasource.go -package=mocks -source=datasource.go DataSource
type DataSource interface {
	FetchBanks(ctx context.Context) ([]BankDTO, error)
}

// DefaultRemoteURL is the endpoint the remote data source reads when the
// configuration does not override it.
const DefaultRemoteURL = "https://cdf-test-mobile-default-rtdb.europe-west1.firebasedatabase.app/banks.json"

// RemoteDataSource fetches bank records with a single HTTP GET against a
// fixed endpoint.
type RemoteDataSource struct {
	URL  string
	HTTP *http.Client
	// Token, when set, supplies a bearer token attached to every request.
	// Minting and refreshing tokens is the caller's concern.
	Token func(ctx context.Context) (string, error)
}

// NewRemoteDataSource creates a remote data source for url. A nil client
// falls back to a default with a 30 second timeout.
func NewRemoteDataSource(url string, client *http.Client) *RemoteDataSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &RemoteDataSource{URL: url, HTTP: client}
}

// FetchBanks implements DataSource. Transport failures and non-200 statuses
// surface as *FetchError, malformed bodies as *DecodeError.
func (s *RemoteDataSource) FetchBanks(ctx context.Context) ([]BankDTO, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &FetchError{URL: s.URL, Err: fmt.Errorf("create request: %w", err)}
	}
	if s.Token != nil {
		token, err := s.Token(ctx)
		if err != nil {
			return nil, &FetchError{URL: s.URL, Err: fmt.Errorf("get token: %w", err)}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, &FetchError{URL: s.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{URL: s.URL, Err: fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))}
	}

	var response BankResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, &DecodeError{Source: s.URL, Err: err}
	}
	return response.Banks, nil
}

//go:embed resources/bank.json
var mockResources embed.FS

// mockResourcePath is where the bundled dataset lives inside the resource FS.
const mockResourcePath = "resources/bank.json"

// MockDataSource serves the bundled static dataset. A missing or malformed
// resource is a packaging defect and surfaces as *DecodeError.
type MockDataSource struct {
	fsys fs.FS
	path string
}

// NewMockDataSource creates a mock data source over the embedded resource.
func NewMockDataSource() *MockDataSource {
	return &MockDataSource{fsys: mockResources, path: mockResourcePath}
}

// NewMockDataSourceFS creates a mock data source reading path from fsys.
// Tests use this to supply custom datasets.
func NewMockDataSourceFS(fsys fs.FS, path string) *MockDataSource {
	return &MockDataSource{fsys: fsys, path: path}
}

// FetchBanks implements DataSource.
func (s *MockDataSource) FetchBanks(ctx context.Context) ([]BankDTO, error) {
	data, err := fs.ReadFile(s.fsys, s.path)
	if err != nil {
		return nil, &DecodeError{Source: s.path, Err: fmt.Errorf("read resource: %w", err)}
	}
	var response BankResponseDTO
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, &DecodeError{Source: s.path, Err: err}
	}
	return response.Banks, nil
}

// SourceSwitcher holds the active DataSource behind a mutex and rebinds it on
// mode changes. The binding is scoped to the composition root that owns the
// switcher; nothing global.
type SourceSwitcher struct {
	mu     sync.Mutex
	mode   AppMode
	active DataSource
	remote DataSource
	mock   DataSource
}

// NewSourceSwitcher creates a switcher over the two variants, starting in
// initial mode.
func NewSourceSwitcher(remote, mock DataSource, initial AppMode) *SourceSwitcher {
	s := &SourceSwitcher{remote: remote, mock: mock}
	s.Switch(initial)
	return s
}

// Switch rebinds the active data source. After Switch returns, the next
// FetchBanks resolved through Active uses the source for mode. Calling it
// repeatedly with the same mode is a no-op.
func (s *SourceSwitcher) Switch(mode AppMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	if mode == ModeRemote {
		s.active = s.remote
	} else {
		s.active = s.mock
	}
}

// Active returns the currently bound data source.
func (s *SourceSwitcher) Active() DataSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Mode returns the currently bound mode.
func (s *SourceSwitcher) Mode() AppMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

package table

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/aretw0/notegen/pkg/core"
)

// DefaultURI is the published reference table of note frequencies (A4 = 440 Hz).
const DefaultURI = "https://pages.mtu.edu/~suits/notefreqs.html"

// maxBodySize bounds how much of a remote table is read.
const maxBodySize = 8 << 20

// Source loads the note table from a web page or a local file.
// It implements core.TableSource.
type Source struct {
	URI    string
	Reader Reader
	Client *http.Client
	Logger *slog.Logger
}

// NewSource creates a Source for uri decoded by reader.
func NewSource(uri string, reader Reader, logger *slog.Logger) *Source {
	return &Source{
		URI:    uri,
		Reader: reader,
		Client: http.DefaultClient,
		Logger: logger,
	}
}

// Rows implements core.TableSource.
func (s *Source) Rows(ctx context.Context) ([]core.NoteRow, error) {
	if s.Reader == nil {
		return nil, fmt.Errorf("%w: no reader for %q", core.ErrAcquisition, s.URI)
	}

	body, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	rows, err := s.Reader.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read table from %s: %w", s.URI, err)
	}

	if s.Logger != nil {
		s.Logger.Debug("table parsed", "uri", s.URI, "rows", len(rows))
	}
	return rows, nil
}

func (s *Source) open(ctx context.Context) (io.ReadCloser, error) {
	if !isRemote(s.URI) {
		path := strings.TrimPrefix(s.URI, "file://")
		if s.Logger != nil {
			s.Logger.Debug("opening table file", "path", path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrAcquisition, err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URI, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", core.ErrAcquisition, err)
	}
	req.Header.Set("Accept", "text/html,text/csv,application/yaml;q=0.9,*/*;q=0.8")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	if s.Logger != nil {
		s.Logger.Debug("fetching table", "url", s.URI)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch %s: %v", core.ErrAcquisition, s.URI, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: HTTP %d from %s", core.ErrAcquisition, resp.StatusCode, s.URI)
	}

	return struct {
		io.Reader
		io.Closer
	}{io.LimitReader(resp.Body, maxBodySize), resp.Body}, nil
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	if isRemote(s.URI) {
		return "http"
	}
	return "file"
}

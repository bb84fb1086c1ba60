package govukholidays

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// defaultTimeout bounds the GOV.UK request when the caller does not
// supply their own HTTP client.
const defaultTimeout = 30 * time.Second

// RemoteSource loads bank holidays from the GOV.UK JSON feed over HTTP.
//
// Each Load makes exactly one request: nothing is cached, nothing is
// retried and there is no automatic fallback to the embedded snapshot.
// Retry and fallback policy belong to the caller.
type RemoteSource struct {
	url    string
	client *http.Client
}

// NewRemoteSource returns a source for the official GOV.UK feed.
func NewRemoteSource() *RemoteSource {
	return NewRemoteSourceURL(SourceURL)
}

// NewRemoteSourceURL returns a source for an alternative endpoint serving
// the same JSON schema.
func NewRemoteSourceURL(url string) *RemoteSource {
	return &RemoteSource{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// WithClient replaces the HTTP client, e.g. to change the timeout or
// transport. Returns the source for chaining.
func (s *RemoteSource) WithClient(client *http.Client) *RemoteSource {
	s.client = client
	return s
}

// Load performs one GET against the feed and decodes the response body.
// Failures are typed: *TransportError if the request never completed,
// *StatusError for a non-2xx response, *DecodeError for a malformed body.
func (s *RemoteSource) Load(ctx context.Context) (RawCalendar, error) {
	logrus.WithField("url", s.url).Debug("loading bank holidays")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logrus.Errorf("failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	return decodeCalendar(resp.Body)
}

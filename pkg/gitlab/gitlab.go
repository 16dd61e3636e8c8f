package gitlab

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	gitlabapi "gitlab.com/gitlab-org/api/client-go"
	"golang.org/x/time/rate"
)

const (
	// GitlabBaseURL is the default GitLab base URL.
	GitlabBaseURL = "https://gitlab.com"

	// listAPIPageSize defines the page size for list API pagination.
	listAPIPageSize = 100

	// ListRateLimitPerSecond caps the rate of list API calls.
	// GitLab enforces per-user request limits on the REST API; staying
	// well under them avoids HTTP 429 on large group trees.
	// https://docs.gitlab.com/security/rate_limits/
	ListRateLimitPerSecond = 5
	// ListRateLimitBurst defines the burst limit for list API calls.
	ListRateLimitBurst = 10
)

var log Logger

// Logger interface defines the logging methods used by the GitLab service.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

func init() {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetLogger sets the logger.
func SetLogger(l Logger) {
	if l != nil {
		log = l
	}
}

// Service provides methods to interact with the GitLab API.
type Service struct {
	client           GitLabClient
	rateLimitListAPI *rate.Limiter
}

// NewService returns a Service talking to the GitLab instance at baseURL
// with the given private token. baseURL is the instance URL without the
// /api/v4 suffix (the client appends it).
func NewService(baseURL, token string, httpClient *http.Client) (*Service, error) {
	if token == "" {
		log.Warn("no token provided")
	}
	opts := []gitlabapi.ClientOptionFunc{
		gitlabapi.WithBaseURL(baseURL),
	}
	if httpClient != nil {
		opts = append(opts, gitlabapi.WithHTTPClient(httpClient))
	}
	client, err := gitlabapi.NewClient(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gitlab client: %w", err)
	}
	return NewServiceWithClient(NewGitLabClientWrapper(client)), nil
}

// NewServiceWithClient returns a Service using an already constructed client.
// Mostly useful for tests.
func NewServiceWithClient(client GitLabClient) *Service {
	return &Service{
		client:           client,
		rateLimitListAPI: rate.NewLimiter(rate.Limit(ListRateLimitPerSecond), ListRateLimitBurst),
	}
}

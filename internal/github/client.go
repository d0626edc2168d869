package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v82/github"
	"github.com/google/uuid"
	"github.com/inovacc/ghexplorer/internal/model"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com/"

// Client resolves repository full names against the GitHub REST API.
type Client struct {
	gh  *github.Client
	log *slog.Logger
}

// ClientOptions configures the GitHub client.
type ClientOptions struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption applies a configuration to ClientOptions.
type ClientOption func(*ClientOptions)

// WithBaseURL points the client at another API root (GitHub Enterprise, tests).
func WithBaseURL(u string) ClientOption {
	return func(o *ClientOptions) { o.baseURL = u }
}

// WithToken sets the personal access token for authenticated requests.
func WithToken(token string) ClientOption {
	return func(o *ClientOptions) { o.token = token }
}

// WithHTTPClient sets the underlying HTTP client. Ignored when a token is set.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(o *ClientOptions) { o.httpClient = c }
}

// WithLogger sets the logger; slog.Default() otherwise.
func WithLogger(l *slog.Logger) ClientOption {
	return func(o *ClientOptions) { o.logger = l }
}

// NewClient constructs a Client. An empty token gives an unauthenticated client.
func NewClient(opts ...ClientOption) (*Client, error) {
	o := ClientOptions{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	httpClient := o.httpClient
	if o.token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gh := github.NewClient(httpClient)

	base := o.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", o.baseURL)
	}

	gh.BaseURL = u

	return &Client{gh: gh, log: o.logger}, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.gh.BaseURL.String()
}

// FetchByFullName resolves "<owner>/<name>" to a project. The full name is
// sent as is; the service decides whether it exists.
func (c *Client) FetchByFullName(ctx context.Context, fullName string) (model.Project, error) {
	repo, err := c.getRepository(ctx, fullName)
	if err != nil {
		return model.Project{}, err
	}

	return toProject(repo), nil
}

// FetchDetail resolves a full name to the extended detail view.
func (c *Client) FetchDetail(ctx context.Context, fullName string) (model.ProjectDetail, error) {
	repo, err := c.getRepository(ctx, fullName)
	if err != nil {
		return model.ProjectDetail{}, err
	}

	return model.ProjectDetail{
		Project:         toProject(repo),
		HTMLURL:         repo.GetHTMLURL(),
		Language:        repo.GetLanguage(),
		StargazersCount: repo.GetStargazersCount(),
		ForksCount:      repo.GetForksCount(),
		OpenIssuesCount: repo.GetOpenIssuesCount(),
	}, nil
}

func (c *Client) getRepository(ctx context.Context, fullName string) (*github.Repository, error) {
	log := c.log.With("request_id", uuid.NewString(), "full_name", fullName)
	log.DebugContext(ctx, "Fetching repository from GitHub API")

	req, err := c.gh.NewRequest(http.MethodGet, "repos/"+fullName, nil)
	if err != nil {
		return nil, &LookupError{Kind: FailureTransport, FullName: fullName, Err: err}
	}

	repo := new(github.Repository)

	if _, err := c.gh.Do(ctx, req, repo); err != nil {
		lerr := classify(fullName, err)
		log.WarnContext(ctx, "Repository lookup failed", "kind", lerr.Kind, "status", lerr.StatusCode, "error", err)

		return nil, lerr
	}

	if repo.GetFullName() == "" || repo.GetOwner().GetLogin() == "" {
		log.WarnContext(ctx, "Repository payload missing required fields")

		return nil, &LookupError{
			Kind:     FailureDecode,
			FullName: fullName,
			Err:      errors.New("response lacks full_name or owner.login"),
		}
	}

	log.DebugContext(ctx, "Repository resolved", "resolved", repo.GetFullName())

	return repo, nil
}

func classify(fullName string, err error) *LookupError {
	var (
		errResp   *github.ErrorResponse
		rateErr   *github.RateLimitError
		abuseErr  *github.AbuseRateLimitError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &errResp):
		return &LookupError{Kind: FailureStatus, FullName: fullName, StatusCode: statusOf(errResp.Response), Err: err}
	case errors.As(err, &rateErr):
		return &LookupError{Kind: FailureStatus, FullName: fullName, StatusCode: statusOf(rateErr.Response), Err: err}
	case errors.As(err, &abuseErr):
		return &LookupError{Kind: FailureStatus, FullName: fullName, StatusCode: statusOf(abuseErr.Response), Err: err}
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return &LookupError{Kind: FailureDecode, FullName: fullName, Err: err}
	default:
		return &LookupError{Kind: FailureTransport, FullName: fullName, Err: err}
	}
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}

	return resp.StatusCode
}

func toProject(repo *github.Repository) model.Project {
	return model.Project{
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		Owner: model.Owner{
			Login:     repo.GetOwner().GetLogin(),
			AvatarURL: repo.GetOwner().GetAvatarURL(),
		},
	}
}

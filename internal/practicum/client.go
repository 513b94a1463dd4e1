package practicum

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/Fornello2023/homework-bot/pkg/logger"
)

const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

type Config struct {
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"-"`
}

// Doer is the transport slice of http.Client the client depends on.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	http     Doer
	log      logger.Logger
	endpoint string
	token    string
}

func NewClient(log logger.Logger, cfg Config) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		// Timeout is deliberately unset: a hung connection blocks the
		// cycle until the peer gives up.
		http:     &http.Client{},
		log:      log.With("practicum"),
		endpoint: endpoint,
		token:    cfg.Token,
	}
}

// WithDoer replaces the HTTP transport.
func (c *Client) WithDoer(d Doer) *Client {
	c.http = d
	return c
}

// Fetch asks the API for homework status updates since the from
// timestamp and returns the decoded JSON payload.
func (c *Client) Fetch(ctx context.Context, from int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, newError(KindTransport, err, "build request to %s", c.endpoint)
	}

	req.Header.Set("Authorization", "OAuth "+c.token)

	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(from, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorf("endpoint %s is unreachable: %s", c.endpoint, err)
		return nil, newError(KindTransport, err, "request homework statuses")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, newError(KindResponseFormat, nil, "unexpected status code %d from API", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindTransport, err, "read API response body")
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, newError(KindResponseFormat, err, "decode API response")
	}

	return payload, nil
}

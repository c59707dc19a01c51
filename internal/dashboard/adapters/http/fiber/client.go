package fiber

import (
	"context"
	"errors"
	"fmt"
	"time"

	"item-stats-service/internal/dashboard/core/domain"
	"item-stats-service/internal/dashboard/core/ports"

	"github.com/gofiber/fiber/v2"
)

type SummaryClient struct {
	client  *fiber.Client
	baseURL string
	token   string
	timeout time.Duration
}

var _ ports.SummaryClientPort = (*SummaryClient)(nil)

// NewSummaryClient returns a client for the stats API at baseURL. token, when
// set, is sent as a bearer token. A zero timeout keeps the client default.
func NewSummaryClient(baseURL, token string, timeout time.Duration) *SummaryClient {
	return &SummaryClient{
		client:  &fiber.Client{},
		baseURL: baseURL,
		token:   token,
		timeout: timeout,
	}
}

func (c *SummaryClient) Fetch(_ context.Context, path string) ([]byte, error) {
	url := c.baseURL + path

	a := c.client.Get(url)
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	if c.timeout > 0 {
		a.Timeout(c.timeout)
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: GET %s: %v", domain.ErrFetchFailure, url, errors.Join(errs...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: GET %s: unexpected status %d", domain.ErrFetchFailure, url, code)
	}

	return body, nil
}

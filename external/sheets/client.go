package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
	"github.com/riskibarqy/fkl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fkl-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/fkl-dashboard/internal/usecase"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL        = "https://sheets.googleapis.com/v4"
	defaultMaxConcurrency = 4
	maxResponseBytes      = 6 << 20
)

type ClientConfig struct {
	// HTTPClient must already carry authorization, see NewAuthorizedHTTPClient.
	HTTPClient     *http.Client
	BaseURL        string
	SpreadsheetID  string
	Timeout        time.Duration
	MaxConcurrency int
	Retry          resilience.RetryPolicy
	CircuitBreaker resilience.BreakerConfig
	Logger         *logging.Logger
}

// Client reads one spreadsheet in which every worksheet holds the rounds of one team.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	spreadsheetID  string
	maxConcurrency int
	retry          resilience.RetryPolicy
	logger         *logging.Logger
	breaker        *resilience.Breaker
	flight         singleflight.Group
}

func NewClient(cfg ClientConfig) (*Client, error) {
	spreadsheetID := strings.TrimSpace(cfg.SpreadsheetID)
	if spreadsheetID == "" {
		return nil, crerr.New("sheets: spreadsheet id is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency < 1 {
		maxConcurrency = defaultMaxConcurrency
	}

	breaker := resilience.NewBreaker(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.State) {
		logger.Warn("sheets circuit breaker changed state", "from", from, "to", to)
	})

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		spreadsheetID:  spreadsheetID,
		maxConcurrency: maxConcurrency,
		retry:          cfg.Retry,
		logger:         logger,
		breaker:        breaker,
	}, nil
}

// FetchTeams reads every worksheet, keeping worksheet order. The worksheet title is the team name.
func (c *Client) FetchTeams(ctx context.Context) ([]roundstat.TeamTable, error) {
	titles, err := c.SheetTitles(ctx)
	if err != nil {
		return nil, err
	}

	tables := make([]roundstat.TeamTable, len(titles))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(c.maxConcurrency).WithCancelOnError().WithFirstError()
	for i, title := range titles {
		p.Go(func(ctx context.Context) error {
			values, err := c.SheetValues(ctx, title)
			if err != nil {
				return crerr.Wrapf(err, "fetch worksheet %q", title)
			}
			tables[i] = roundstat.TeamTable{Team: title, Rows: roundstat.FromGrid(values)}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return tables, nil
}

func (c *Client) SheetTitles(ctx context.Context) ([]string, error) {
	var payload spreadsheetEnvelope
	path := "/spreadsheets/" + url.PathEscape(c.spreadsheetID)
	if err := c.doJSON(ctx, path, url.Values{"fields": {"sheets.properties.title"}}, &payload); err != nil {
		return nil, crerr.Wrap(err, "list worksheets")
	}

	titles := make([]string, 0, len(payload.Sheets))
	for _, item := range payload.Sheets {
		if title := item.Properties.Title; strings.TrimSpace(title) != "" {
			titles = append(titles, title)
		}
	}
	return titles, nil
}

// SheetValues returns the raw cell grid of one worksheet, header row first.
func (c *Client) SheetValues(ctx context.Context, title string) ([][]any, error) {
	var payload valueRangeEnvelope
	path := "/spreadsheets/" + url.PathEscape(c.spreadsheetID) + "/values/" + url.PathEscape(quoteSheetTitle(title))
	query := url.Values{
		"majorDimension":    {"ROWS"},
		"valueRenderOption": {"UNFORMATTED_VALUE"},
	}
	if err := c.doJSON(ctx, path, query, &payload); err != nil {
		return nil, err
	}
	if payload.Values == nil {
		return [][]any{}, nil
	}
	return payload.Values, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		var raw []byte
		err := c.breaker.Do(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, resilience.IsTransient)
		return raw, err
	})
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "sheets circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: google sheets is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return crerr.Newf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode sheets payload")
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var raw []byte
	err := resilience.Retry(ctx, c.retry, func(ctx context.Context, attempt int) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return crerr.Wrap(err, "build request")
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return resilience.MarkTransient(crerr.Wrap(err, "send request"))
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		_ = resp.Body.Close()
		if readErr != nil {
			return resilience.MarkTransient(crerr.Wrap(readErr, "read response body"))
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			raw = body
			return nil
		}

		statusErr := crerr.Newf("sheets status=%d body=%s", resp.StatusCode, abbreviateBody(body))
		if isRetryableStatus(resp.StatusCode) {
			return resilience.MarkTransient(statusErr)
		}
		return statusErr
	})
	if err != nil {
		c.logger.WarnContext(ctx, "sheets request failed", "url", fullURL, "error", err)
		return nil, err
	}
	return raw, nil
}

// quoteSheetTitle turns a worksheet title into an A1 range covering the whole sheet.
func quoteSheetTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

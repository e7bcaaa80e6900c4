package starling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"roundup-saver/config"
	"roundup-saver/internal/core/domain"
	"roundup-saver/internal/core/ports"
	"roundup-saver/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 4 << 20

	// timestampLayout matches the millisecond ISO format the feed endpoint expects.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.BankClient against the Starling v2 API.
type Client struct {
	baseURL    string
	token      string
	httpClient HTTPClient
	metrics    ports.Metrics // nil = no metrics
	log        zerolog.Logger
}

// NewClient creates a bank client. A nil httpClient gets a net/http client
// bounded by cfg.Timeout.
func NewClient(cfg config.BankConfig, httpClient HTTPClient, metrics ports.Metrics, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.AccessToken,
		httpClient: httpClient,
		metrics:    metrics,
		log:        log,
	}
}

// ListAccounts handles GET /v2/accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var resp accountsResponse
	if err := c.do(ctx, "list_accounts", http.MethodGet, "/v2/accounts", nil, &resp); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(resp.Accounts))
	for _, a := range resp.Accounts {
		accounts = append(accounts, a.toDomain())
	}
	return accounts, nil
}

// ListTransactionsBetween handles GET /v2/feed/account/{a}/category/{c}/transactions-between.
func (c *Client) ListTransactionsBetween(ctx context.Context, accountUID, categoryUID string, from, to time.Time) ([]domain.FeedItem, error) {
	q := url.Values{}
	q.Set("minTransactionTimestamp", from.UTC().Format(timestampLayout))
	q.Set("maxTransactionTimestamp", to.UTC().Format(timestampLayout))
	path := fmt.Sprintf("/v2/feed/account/%s/category/%s/transactions-between?%s",
		url.PathEscape(accountUID), url.PathEscape(categoryUID), q.Encode())

	var resp feedResponse
	if err := c.do(ctx, "list_transactions", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	items := make([]domain.FeedItem, 0, len(resp.FeedItems))
	for _, item := range resp.FeedItems {
		items = append(items, item.toDomain())
	}
	return items, nil
}

// ListSavingsGoals handles GET /v2/account/{a}/savings-goals.
func (c *Client) ListSavingsGoals(ctx context.Context, accountUID string) ([]domain.SavingsGoal, error) {
	path := fmt.Sprintf("/v2/account/%s/savings-goals", url.PathEscape(accountUID))

	var resp savingsGoalsResponse
	if err := c.do(ctx, "list_savings_goals", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	goals := make([]domain.SavingsGoal, 0, len(resp.SavingsGoalList))
	for _, g := range resp.SavingsGoalList {
		goals = append(goals, g.toDomain())
	}
	return goals, nil
}

// CreateSavingsGoal handles PUT /v2/account/{a}/savings-goals.
func (c *Client) CreateSavingsGoal(ctx context.Context, accountUID, name, currency string) (*domain.SavingsGoal, error) {
	path := fmt.Sprintf("/v2/account/%s/savings-goals", url.PathEscape(accountUID))
	body := createGoalRequest{Name: name, Currency: currency}

	var resp createGoalResponse
	if err := c.do(ctx, "create_savings_goal", http.MethodPut, path, body, &resp); err != nil {
		return nil, err
	}
	if resp.Success != nil && !*resp.Success {
		return nil, apperror.ErrBankAPI("Starling API error: savings goal was not created", fmt.Errorf("create_savings_goal: success=false"))
	}
	if resp.SavingsGoalUID == "" {
		return nil, apperror.ErrBankAPI("Starling API error: savings goal response missing uid", fmt.Errorf("create_savings_goal: empty savingsGoalUid"))
	}

	c.log.Info().Str("account_uid", accountUID).Str("savings_goal_uid", resp.SavingsGoalUID).Msg("savings goal created")

	return &domain.SavingsGoal{
		SavingsGoalUID: resp.SavingsGoalUID,
		Name:           name,
		TotalSaved:     &domain.Amount{Currency: currency},
	}, nil
}

// TransferToSavingsGoal handles PUT /v2/account/{a}/savings-goals/{g}/add-money/{transferUid}.
func (c *Client) TransferToSavingsGoal(ctx context.Context, accountUID, goalUID string, transferUID uuid.UUID, amount domain.Amount) error {
	path := fmt.Sprintf("/v2/account/%s/savings-goals/%s/add-money/%s",
		url.PathEscape(accountUID), url.PathEscape(goalUID), transferUID.String())
	body := topUpRequest{Amount: wireAmount{Currency: amount.Currency, MinorUnits: amount.MinorUnits}}

	var resp topUpResponse
	if err := c.do(ctx, "add_money", http.MethodPut, path, body, &resp); err != nil {
		return err
	}
	if resp.Success != nil && !*resp.Success {
		return apperror.ErrBankAPI("Starling API error: transfer was not accepted", fmt.Errorf("add_money %s: success=false", transferUID))
	}
	return nil
}

// AccountHolderName handles GET /v2/account-holder/name.
func (c *Client) AccountHolderName(ctx context.Context) (string, error) {
	var resp accountHolderNameResponse
	if err := c.do(ctx, "account_holder_name", http.MethodGet, "/v2/account-holder/name", nil, &resp); err != nil {
		return "", err
	}
	return resp.AccountHolderName, nil
}

// do sends one request and decodes a JSON body into out (if non-nil).
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("%s: marshal request: %w", op, err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("%s: build request: %w", op, err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(op, 0, start)
		c.log.Warn().Err(err).Str("op", op).Msg("bank request failed")
		return apperror.ErrBankUnavailable(fmt.Errorf("%s: %w", op, err))
	}
	defer resp.Body.Close()
	c.observe(op, resp.StatusCode, start)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperror.ErrBankUnavailable(fmt.Errorf("%s: read body: %w", op, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := errorMessage(resp.StatusCode, raw)
		c.log.Warn().Str("op", op).Int("status", resp.StatusCode).Str("message", msg).Msg("bank returned error")
		return apperror.ErrBankAPI("Starling API error: "+msg, fmt.Errorf("%s: status %d", op, resp.StatusCode))
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperror.ErrBankAPI("Starling API returned an unreadable response", fmt.Errorf("%s: decode: %w", op, err))
	}
	return nil
}

func (c *Client) observe(op string, status int, start time.Time) {
	if c.metrics != nil {
		c.metrics.BankRequest(op, status, time.Since(start))
	}
}

// errorMessage picks error_description, then error, then the raw body text,
// then a generic status line.
func errorMessage(status int, body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil {
		if e.ErrorDescription != "" {
			return e.ErrorDescription
		}
		if e.Error != "" {
			return e.Error
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") {
		return text
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}

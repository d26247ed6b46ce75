package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Nick-the-BinaryTree/allergy-albert/internal/model"
)

// DefaultGraphURL is the Graph API version the bot was built against
const DefaultGraphURL = "https://graph.facebook.com/v2.6"

// Client errors
var (
	ErrEmptyReply = errors.New("nothing to send")
	ErrNoToken    = errors.New("page access token not configured")
)

// APIError is returned when the Graph API answers with a non-2xx status
type APIError struct {
	StatusCode int
	Status     string
	Graph      *GraphError
}

func (e *APIError) Error() string {
	if e.Graph != nil {
		return fmt.Sprintf("graph api %d: %s (type=%s code=%d)", e.StatusCode, e.Graph.Message, e.Graph.Type, e.Graph.Code)
	}
	return fmt.Sprintf("graph api %d: %s", e.StatusCode, e.Status)
}

// Client talks to the Messenger Send and Thread Settings APIs
type Client struct {
	httpClient  *http.Client
	graphURL    string
	accessToken string
	logger      *slog.Logger
}

// Config holds client settings
type Config struct {
	GraphURL        string
	PageAccessToken string
	Timeout         time.Duration // default 10s
	HTTPClient      *http.Client
	Logger          *slog.Logger
}

// NewClient creates a Send API client
func NewClient(cfg Config) *Client {
	if cfg.GraphURL == "" {
		cfg.GraphURL = DefaultGraphURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		httpClient:  cfg.HTTPClient,
		graphURL:    strings.TrimRight(cfg.GraphURL, "/"),
		accessToken: cfg.PageAccessToken,
		logger:      cfg.Logger,
	}
}

// Send delivers reply to recipientID
func (c *Client) Send(ctx context.Context, recipientID string, reply model.ReplyAction) error {
	if reply.IsEmpty() {
		return ErrEmptyReply
	}

	var resp SendResponse
	if err := c.post(ctx, "/me/messages", NewSendRequest(recipientID, reply), &resp); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}

	if resp.MessageID != "" {
		c.logger.InfoContext(ctx, "message sent",
			slog.String("message_id", resp.MessageID),
			slog.String("recipient_id", resp.RecipientID),
		)
	} else {
		c.logger.InfoContext(ctx, "send api called", slog.String("recipient_id", resp.RecipientID))
	}
	return nil
}

// SetGreeting sets the page's greeting text
func (c *Client) SetGreeting(ctx context.Context, text string) error {
	settings := ThreadSettings{SettingType: "greeting", Greeting: &Greeting{Text: text}}
	if err := c.post(ctx, "/me/thread_settings", settings, nil); err != nil {
		return fmt.Errorf("setting greeting: %w", err)
	}
	c.logger.InfoContext(ctx, "greeting set")
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	if c.accessToken == "" {
		return ErrNoToken
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	endpoint := c.graphURL + path + "?" + url.Values{"access_token": {c.accessToken}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
		var eb graphErrorBody
		if json.Unmarshal(data, &eb) == nil {
			apiErr.Graph = eb.Error
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

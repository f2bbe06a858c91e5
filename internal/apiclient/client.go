// Package apiclient is a thin REST client for the society backend. It is
// used by the operational tooling (the smoke checker) and is suitable for
// any Go program that needs to drive the API without hand-rolling HTTP.
package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to one backend instance. It is not safe for concurrent
// use while SetToken is being called.
type Client struct {
	http  *resty.Client
	token string
}

// NewClient constructs a [Client] for the given base URL. The address is
// normalised: a missing scheme defaults to http and trailing slashes are
// stripped. Returns an error if the address cannot be parsed as a URL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	http := resty.New().
		SetBaseURL(normalized).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: http}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores the bearer token (whitespace-trimmed) for use on all
// subsequent authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an
// empty string if none has been set.
func (c *Client) Token() string {
	return c.token
}

// Login authenticates with the given credentials and stores the issued
// token on the client for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var result LoginResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return LoginResult{}, err
	}

	c.SetToken(result.Token)

	return result, nil
}

// ListResidents fetches every resident record. Requires an admin token.
func (c *Client) ListResidents(ctx context.Context) ([]Resident, error) {
	var result residentsListResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.token).
		SetResult(&result).
		Get("/api/users/residents")
	if err != nil {
		return nil, fmt.Errorf("list residents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Residents, nil
}

// SendNotification creates a notification for the given recipient.
// Requires an admin token.
func (c *Client) SendNotification(ctx context.Context, req SendNotificationParams) (Notification, error) {
	var result notificationResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.token).
		SetBody(req).
		SetResult(&result).
		Post("/api/notifications/send")
	if err != nil {
		return Notification{}, fmt.Errorf("send notification request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Notification{}, err
	}

	return result.Notification, nil
}

// MyNotifications fetches one page of the authenticated resident's
// notifications together with the pagination block.
func (c *Client) MyNotifications(ctx context.Context, page, limit int) (NotificationsPage, error) {
	return c.listNotifications(ctx, "/api/notifications/my-notifications", page, limit)
}

// SentNotifications fetches one page of the authenticated admin's sent
// notifications.
func (c *Client) SentNotifications(ctx context.Context, page, limit int) (NotificationsPage, error) {
	return c.listNotifications(ctx, "/api/notifications/sent", page, limit)
}

func (c *Client) listNotifications(ctx context.Context, path string, page, limit int) (NotificationsPage, error) {
	request := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.token)
	if page > 0 {
		request.SetQueryParam("page", fmt.Sprint(page))
	}
	if limit > 0 {
		request.SetQueryParam("limit", fmt.Sprint(limit))
	}

	var result NotificationsPage
	resp, err := request.SetResult(&result).Get(path)
	if err != nil {
		return NotificationsPage{}, fmt.Errorf("list notifications request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return NotificationsPage{}, err
	}

	return result, nil
}

// MarkRead marks the notification as read on behalf of its recipient.
func (c *Client) MarkRead(ctx context.Context, notificationID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.token).
		Put("/api/notifications/" + notificationID + "/read")
	if err != nil {
		return fmt.Errorf("mark read request: %w", err)
	}

	return mapHTTPError(resp)
}

// Respond records the recipient's coming/not_coming choice.
func (c *Client) Respond(ctx context.Context, notificationID, response, message string) (Notification, error) {
	var result notificationResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.token).
		SetBody(map[string]string{"response": response, "responseMessage": message}).
		SetResult(&result).
		Put("/api/notifications/" + notificationID + "/respond")
	if err != nil {
		return Notification{}, fmt.Errorf("respond request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Notification{}, err
	}

	return result.Notification, nil
}

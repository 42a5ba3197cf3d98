package signbank

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// csrfCookieName is the Django CSRF cookie set by the login page.
const csrfCookieName = "csrftoken"

// Client fetches the gloss and asset export files from a Signbank instance.
// Exports require an authenticated session: the login form is fetched first
// to obtain a CSRF cookie, then posted with the configured credentials.
type Client struct {
	cfg      Config
	http     *http.Client
	log      *zap.Logger
	loggedIn bool
}

// NewClient creates a Signbank client with its own cookie-tracking session.
func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}

	return &Client{
		cfg:  cfg,
		http: &http.Client{Jar: jar, Timeout: time.Duration(timeout) * time.Second},
		log:  log,
	}, nil
}

// FetchGlossExport retrieves the published-gloss CSV export.
func (c *Client) FetchGlossExport(ctx context.Context) ([]byte, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	exportURL := fmt.Sprintf("%s/dictionary/advanced/?%s", c.cfg.Host, url.Values{
		"dataset":   {c.cfg.DatasetID},
		"published": {"on"},
		"format":    {"CSV"},
	}.Encode())

	return c.get(ctx, exportURL)
}

// FetchAssetExport retrieves the video/asset CSV export.
func (c *Client) FetchAssetExport(ctx context.Context) ([]byte, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}
	return c.get(ctx, c.cfg.Host+"/video/csv")
}

// login establishes the authenticated session once per client.
func (c *Client) login(ctx context.Context) error {
	if c.loggedIn {
		return nil
	}

	loginURL := c.cfg.Host + "/accounts/login/"

	// First request sets the CSRF cookie.
	if _, err := c.get(ctx, loginURL); err != nil {
		return fmt.Errorf("failed to load login page: %w", err)
	}

	token := c.csrfToken(loginURL)
	if token == "" {
		return fmt.Errorf("login page did not set a %s cookie", csrfCookieName)
	}

	form := url.Values{
		"username":            {c.cfg.Username},
		"password":            {c.cfg.Password},
		"csrfmiddlewaretoken": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", c.cfg.Host)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("login failed with status %s", resp.Status)
	}

	c.log.Info("authenticated with signbank", zap.String("host", c.cfg.Host))
	c.loggedIn = true
	return nil
}

// csrfToken returns the CSRF cookie value for the login URL, if set.
func (c *Client) csrfToken(loginURL string) string {
	u, err := url.Parse(loginURL)
	if err != nil {
		return ""
	}
	for _, cookie := range c.http.Jar.Cookies(u) {
		if cookie.Name == csrfCookieName {
			return cookie.Value
		}
	}
	return ""
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s from %s", resp.Status, rawURL)
	}
	return io.ReadAll(resp.Body)
}

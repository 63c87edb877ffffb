package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	pathLogin               = "/auth/employee-login"
	pathRefresh             = "/auth/employee-refresh-token" //nolint:gosec
	pathEmployeeInfo        = "/employeeinfo"
	pathAssignedPermissions = "/employeeinfo/permissions"
	pathPermissions         = "/permissions"
	pathCompanies           = "/companies"

	// CatalogPageSize is large enough to fetch the whole permission catalog in one page.
	CatalogPageSize = 10000

	// MaxResponseBytes caps a backend answer; anything longer fails with ErrResponseTooLarge.
	MaxResponseBytes = 8 << 20
	tracerName       = "github.com/66gu1/filmoradmin/internal/app/backend"
)

type Config struct {
	BaseURL        string `mapstructure:"base_url" json:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" json:"timeout_seconds"`
}

type Observer interface {
	Backend(operation, status string, seconds float64)
}

type Client struct {
	baseURL  *url.URL
	http     *http.Client
	tracer   trace.Tracer
	observer Observer
}

func NewClient(cfg Config, observer Observer) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend.NewClient: base url is empty")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend.NewClient: invalid base url %q", cfg.BaseURL)
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:  base,
		http:     &http.Client{Timeout: timeout},
		tracer:   otel.Tracer(tracerName),
		observer: observer,
	}, nil
}

// Login exchanges form-encoded credentials for a token pair.
func (c *Client) Login(ctx context.Context, username, password string) (TokenPair, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var pair TokenPair
	if err := c.call(ctx, "login", http.MethodPost, pathLogin, "", nil,
		"application/x-www-form-urlencoded", []byte(form.Encode()), &pair); err != nil {
		return TokenPair{}, fmt.Errorf("backend.Client.Login: %w", err)
	}

	return pair, nil
}

func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (TokenPair, error) {
	body, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return TokenPair{}, fmt.Errorf("backend.Client.RefreshToken: %w", err)
	}

	var pair TokenPair
	if err = c.call(ctx, "refresh_token", http.MethodPost, pathRefresh, "", nil,
		"application/json", body, &pair); err != nil {
		return TokenPair{}, fmt.Errorf("backend.Client.RefreshToken: %w", err)
	}

	return pair, nil
}

func (c *Client) EmployeeInfo(ctx context.Context, token string) (Employee, error) {
	var employee Employee
	if err := c.call(ctx, "employee_info", http.MethodGet, pathEmployeeInfo, token, nil, "", nil, &employee); err != nil {
		return Employee{}, fmt.Errorf("backend.Client.EmployeeInfo: %w", err)
	}

	return employee, nil
}

func (c *Client) PermissionCatalog(ctx context.Context, token string) ([]Permission, error) {
	query := url.Values{}
	query.Set("page", "1")
	query.Set("page_size", strconv.Itoa(CatalogPageSize))

	var resp page[Permission]
	if err := c.call(ctx, "permission_catalog", http.MethodGet, pathPermissions, token, query, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("backend.Client.PermissionCatalog: %w", err)
	}

	return resp.Results, nil
}

func (c *Client) AssignedPermissions(ctx context.Context, token string) ([]AssignedPermission, error) {
	var assigned []AssignedPermission
	if err := c.call(ctx, "assigned_permissions", http.MethodGet, pathAssignedPermissions, token, nil, "", nil, &assigned); err != nil {
		return nil, fmt.Errorf("backend.Client.AssignedPermissions: %w", err)
	}

	return assigned, nil
}

func (c *Client) Company(ctx context.Context, token string, id int64) (Company, error) {
	var company Company
	path := fmt.Sprintf("%s/%d", pathCompanies, id)
	if err := c.call(ctx, "company", http.MethodGet, path, token, nil, "", nil, &company); err != nil {
		return Company{}, fmt.Errorf("backend.Client.Company: %w", err)
	}

	return company, nil
}

// Do forwards a raw JSON request. Non-2xx answers come back as *Error with the body preserved.
func (c *Client) Do(ctx context.Context, token string, req Request) (Response, error) {
	contentType := ""
	if len(req.Body) > 0 {
		contentType = "application/json"
	}
	body, status, err := c.send(ctx, "proxy", req.Method, req.Path, token, req.Query, contentType, req.Body)
	if err != nil {
		return Response{}, fmt.Errorf("backend.Client.Do: %w", err)
	}

	return Response{Status: status, Body: body}, nil
}

func (c *Client) call(ctx context.Context, op, method, path, token string, query url.Values, contentType string, body []byte, out any) error {
	respBody, _, err := c.send(ctx, op, method, path, token, query, contentType, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err = json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}

	return nil
}

func (c *Client) send(ctx context.Context, op, method, path, token string, query url.Values, contentType string, body []byte) ([]byte, int, error) {
	ctx, span := c.tracer.Start(ctx, "backend."+op, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
	)

	start := time.Now()
	status := 0
	defer func() {
		if c.observer != nil {
			c.observer.Backend(op, statusLabel(status), time.Since(start).Seconds())
		}
	}()

	// path arrives escaped; ids are escaped by the caller
	target, err := c.baseURL.Parse(c.baseURL.EscapedPath() + path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build url")
		return nil, 0, fmt.Errorf("build %s url: %w", op, err)
	}
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return nil, 0, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return nil, 0, fmt.Errorf("%s request: %w", op, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, status, fmt.Errorf("read %s response: %w", op, err)
	}
	if len(respBody) > MaxResponseBytes {
		span.RecordError(ErrResponseTooLarge)
		span.SetStatus(codes.Error, "body too large")
		return nil, 0, fmt.Errorf("read %s response: %w", op, ErrResponseTooLarge)
	}

	if status < 200 || status > 299 {
		berr := newError(op, status, respBody)
		span.RecordError(berr)
		span.SetStatus(codes.Error, berr.Message)
		return respBody, status, berr
	}

	return respBody, status, nil
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}

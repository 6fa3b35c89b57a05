package logsources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"log-dashboard/internal/models"
	"log-dashboard/internal/sessions"
	"log-dashboard/internal/shared/loggers"
)

const (
	opHealth   = "health"
	opRegister = "register"
	opLogin    = "login"
	opList     = "list_files"
	opUpload   = "upload"
	opLogs     = "get_logs"
	opAnalyze  = "analyze"

	// maxErrorBody bounds how much of a failed reply is kept in HTTPError.
	maxErrorBody = 4 << 10
)

// TokenResponse is the backend's reply to a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AnalysisResponse wraps the insights produced for one file.
type AnalysisResponse struct {
	Insights []*models.Insight `json:"insights"`
}

//go:generate mockgen -source=backend_client.go -destination=./mocks/backend_client_mock.go -package=mocks
type BackendClient interface {
	Health(ctx context.Context) error
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
	ListFiles(ctx context.Context, sess *sessions.Session) ([]*models.FileDescriptor, error)
	UploadFile(ctx context.Context, sess *sessions.Session, fileName string, content io.Reader) (*models.FileDescriptor, error)
	GetLogs(ctx context.Context, sess *sessions.Session, fileHash string) ([]*models.LogEntry, error)
	AnalyzeFile(ctx context.Context, sess *sessions.Session, fileHash string) (*AnalysisResponse, error)
}

type backendClient struct {
	baseURL string
	client  *http.Client
}

func NewBackendClient(baseURL string, timeout time.Duration) BackendClient {
	return &backendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *backendClient) Health(ctx context.Context) error {
	var reply struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, opHealth, http.MethodGet, "/health", nil, "", nil, &reply); err != nil {
		return err
	}
	if reply.Status != "ok" {
		return fmt.Errorf("%w: health status %q", ErrBackendUnavailable, reply.Status)
	}
	return nil
}

func (c *backendClient) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := c.do(ctx, opRegister, http.MethodPost, "/register", nil, "application/json", bytes.NewReader(body), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for an access token. The backend takes an OAuth2 password form
// where the username field carries the email.
func (c *backendClient) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var token TokenResponse
	if err := c.do(ctx, opLogin, http.MethodPost, "/login", nil, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()), &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: empty access token", ErrBackendUnauthorized)
	}
	return &token, nil
}

func (c *backendClient) ListFiles(ctx context.Context, sess *sessions.Session) ([]*models.FileDescriptor, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	files := make([]*models.FileDescriptor, 0)
	if err := c.do(ctx, opList, http.MethodGet, "/files", sess, "", nil, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (c *backendClient) UploadFile(ctx context.Context, sess *sessions.Session, fileName string, content io.Reader) (*models.FileDescriptor, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var file models.FileDescriptor
	if err := c.do(ctx, opUpload, http.MethodPost, "/upload", sess, mw.FormDataContentType(), &buf, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

func (c *backendClient) GetLogs(ctx context.Context, sess *sessions.Session, fileHash string) ([]*models.LogEntry, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	body, err := fileHashBody(fileHash)
	if err != nil {
		return nil, err
	}

	logs := make([]*models.LogEntry, 0)
	if err := c.do(ctx, opLogs, http.MethodPost, "/logs", sess, "application/json", body, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *backendClient) AnalyzeFile(ctx context.Context, sess *sessions.Session, fileHash string) (*AnalysisResponse, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	body, err := fileHashBody(fileHash)
	if err != nil {
		return nil, err
	}

	var analysis AnalysisResponse
	if err := c.do(ctx, opAnalyze, http.MethodPost, "/analyse", sess, "application/json", body, &analysis); err != nil {
		return nil, err
	}
	if analysis.Insights == nil {
		analysis.Insights = make([]*models.Insight, 0)
	}
	return &analysis, nil
}

// do sends one request and decodes a 2xx JSON reply into out.
func (c *backendClient) do(
	ctx context.Context,
	op, method, path string,
	sess *sessions.Session,
	contentType string,
	body io.Reader,
	out any,
) (err error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldOperation, op).Logger()
	startTime := time.Now()
	outcome := outcomeOK
	defer func() {
		metricBackendCalls.WithLabelValues(op, outcome).Inc()
		metricBackendCallDuration.WithLabelValues(op).Observe(time.Since(startTime).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		outcome = outcomeUnavailable
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		outcome = outcomeUnavailable
		logger.Warn().Err(err).Msg("Log backend request failed")
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		outcome = outcomeRejected
		return ErrBackendUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = outcomeHTTPError
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Warn().Int("status", resp.StatusCode).Msg("Log backend replied with an error")
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = outcomeDecodeError
		return fmt.Errorf("decode %s reply: %w", op, err)
	}
	return nil
}

func requireSession(sess *sessions.Session) error {
	if sess == nil || sess.AccessToken == "" {
		return ErrMissingSession
	}
	return nil
}

func fileHashBody(fileHash string) (io.Reader, error) {
	if fileHash == "" {
		return nil, errors.New("file hash is required")
	}
	body, err := json.Marshal(map[string]string{"file_hash": fileHash})
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(body), nil
}

// Package gateway is the Go client of the Formery HTTP API: the remote
// collaborator the builder saves definitions to and the fill flow submits
// responses to. Session credentials ride implicitly on every call through the
// client's cookie jar once Login or Signup succeeds.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/lshigami/Formery/internal/builder"
	"github.com/lshigami/Formery/internal/dto"
	"github.com/lshigami/Formery/internal/fill"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("not allowed")
)

// APIError carries a rejection the server explained; everything else in the
// error taxonomy collapses into the generic wrapped transport error.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway: %s (status %d)", e.Message, e.Status)
}

// Client talks to one Formery deployment. It implements builder.FormSaver and
// fill.ResponseSubmitter, so a Draft can be handed the client directly.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second, Jar: jar},
	}, nil
}

// --- auth ---

func (c *Client) Signup(ctx context.Context, username, email, password string) (string, error) {
	var out dto.MessageResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/users/signup",
		dto.SignupRequest{Username: username, Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Username, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out dto.MessageResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/users/login",
		dto.LoginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Username, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/users/logout", nil, nil)
}

func (c *Client) CurrentSession(ctx context.Context) (*dto.SessionResponse, error) {
	var out dto.SessionResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Profile(ctx context.Context) (*dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	if err := c.doJSON(ctx, http.MethodPut, "/api/users/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- forms ---

func (c *Client) CreateForm(ctx context.Context, def builder.Definition) (uint, error) {
	var out dto.FormDTO
	err := c.doJSON(ctx, http.MethodPost, "/api/forms", saveRequestFrom(def), &out)
	if err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) UpdateForm(ctx context.Context, id uint, def builder.Definition) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/forms/%d", id), saveRequestFrom(def), nil)
}

func (c *Client) GetForm(ctx context.Context, id uint) (*dto.FormDTO, error) {
	var out dto.FormDTO
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/forms/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListForms(ctx context.Context) ([]dto.FormSummaryDTO, error) {
	var out []dto.FormSummaryDTO
	if err := c.doJSON(ctx, http.MethodGet, "/api/forms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteForm(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/forms/%d", id), nil, nil)
}

func (c *Client) Template(ctx context.Context, name string) (*dto.TemplateDTO, error) {
	var out dto.TemplateDTO
	if err := c.doJSON(ctx, http.MethodGet, "/api/forms/templates/"+name, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Themes(ctx context.Context) ([]builder.Theme, error) {
	var out []builder.Theme
	if err := c.doJSON(ctx, http.MethodGet, "/api/themes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- responses ---

func (c *Client) SubmitResponse(ctx context.Context, formID uint, answers []fill.AnswerRecord) error {
	payload := dto.SubmitResponseRequest{FormID: formID}
	for _, record := range answers {
		payload.Answers = append(payload.Answers, dto.AnswerInput{
			QuestionID: record.QuestionID,
			Question:   record.Question,
			Answer:     record.Answer,
		})
	}
	return c.doJSON(ctx, http.MethodPost, "/api/responses/submit", payload, nil)
}

func (c *Client) ListResponses(ctx context.Context, formID uint) ([]dto.ResponseDTO, error) {
	var out []dto.ResponseDTO
	path := fmt.Sprintf("/api/responses?formId=%d", formID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMyResponses(ctx context.Context) ([]dto.ResponseDTO, error) {
	var out []dto.ResponseDTO
	if err := c.doJSON(ctx, http.MethodGet, "/api/responses/user", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteResponse(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/responses/%d", id), nil, nil)
}

// --- upload ---

// UploadFile streams one binary to the upload endpoint and returns the
// stored-file reference.
func (c *Client) UploadFile(ctx context.Context, filename string, src io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return "", fmt.Errorf("failed to read upload source: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway call failed: %w", err)
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		return "", err
	}
	var out dto.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	return out.FilePath, nil
}

// --- plumbing ---

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway call failed: %w", err)
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		return err
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	message := http.StatusText(resp.StatusCode)
	var apiErr dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		message = apiErr.Message
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	}
	return &APIError{Status: resp.StatusCode, Message: message}
}

func saveRequestFrom(def builder.Definition) dto.SaveFormRequest {
	return dto.SaveFormRequest{
		Title:       def.Title,
		Description: def.Description,
		Theme:       def.Theme,
		Questions:   def.Questions,
	}
}

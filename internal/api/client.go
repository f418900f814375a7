package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client wraps the backend's session endpoints. Every method returns either a
// typed payload or an *Error; no other error type crosses this boundary.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the given base URL. A timeout of 0 disables
// the client-side deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListSessions fetches all sessions in display order. Called once at startup.
func (c *Client) ListSessions(ctx context.Context) ([]*ChatSession, error) {
	var sessions []*ChatSession
	if err := c.do(ctx, http.MethodGet, "/api/sessions", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// CreateSession asks the server for a fresh session with a generated id and
// title and no messages.
func (c *Client) CreateSession(ctx context.Context) (*ChatSession, error) {
	session := &ChatSession{}
	if err := c.do(ctx, http.MethodPost, "/api/sessions", nil, session); err != nil {
		return nil, err
	}
	return session, nil
}

// RenameSession sets a session's title and returns the updated session.
func (c *Client) RenameSession(ctx context.Context, sessionID, title string) (*ChatSession, error) {
	body := struct {
		Title string `json:"title"`
	}{Title: title}
	session := &ChatSession{}
	if err := c.do(ctx, http.MethodPut, "/api/sessions/"+url.PathEscape(sessionID), body, session); err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSession destroys a session. The caller only needs the acknowledgment.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodDelete, "/api/sessions/"+url.PathEscape(sessionID), nil, nil)
}

// SendMessage submits one user utterance and returns the entire updated
// session. The grounding decision belongs to the server; the client only
// forwards the document-mode flag.
func (c *Client) SendMessage(ctx context.Context, sessionID, text string, useDocument bool) (*ChatSession, error) {
	body := struct {
		Message     string `json:"message"`
		SessionID   string `json:"sessionId"`
		UseDocument bool   `json:"useDocument"`
	}{Message: text, SessionID: sessionID, UseDocument: useDocument}

	response := struct {
		Session *ChatSession `json:"session"`
		Error   string       `json:"error"`
	}{}
	if err := c.do(ctx, http.MethodPost, "/api/chat", body, &response); err != nil {
		return nil, err
	}
	if response.Error != "" {
		return nil, applicationError(response.Error)
	}
	if response.Session == nil {
		return nil, applicationError("server returned no session")
	}
	return response.Session, nil
}

// UploadDocument posts the file as multipart form data under the `file`
// field. Success means the server holds a document for grounded queries.
// Extension validation happens before this is ever called.
func (c *Client) UploadDocument(ctx context.Context, fileName string, fileBytes []byte) error {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return transportError(err, "building multipart request")
	}
	if _, err := part.Write(fileBytes); err != nil {
		return transportError(err, "building multipart request")
	}
	if err := writer.Close(); err != nil {
		return transportError(err, "building multipart request")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-document", &buffer)
	if err != nil {
		return transportError(err, "building request")
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())

	data, err := c.roundTrip(request)
	if err != nil {
		return err
	}
	response := struct {
		Error string `json:"error"`
	}{}
	if len(data) > 0 {
		// A malformed body on a 2xx ack is not actionable; the upload stands.
		_ = json.Unmarshal(data, &response)
	}
	if response.Error != "" {
		return applicationError(response.Error)
	}
	return nil
}

// do issues a JSON round-trip and decodes the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return transportError(err, "encoding request")
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return transportError(err, "building request")
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	data, err := c.roundTrip(request)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return transportError(err, "decoding response")
	}
	return nil
}

// roundTrip executes the request, classifying connectivity failures as
// transport errors and non-2xx statuses as HTTP errors. The body's error
// message, when present, takes precedence over the generic status message.
func (c *Client) roundTrip(request *http.Request) ([]byte, error) {
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, transportError(err, "request failed")
	}
	defer response.Body.Close()

	var buffer bytes.Buffer
	if _, err := buffer.ReadFrom(response.Body); err != nil {
		return nil, transportError(err, "reading response")
	}
	data := buffer.Bytes()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, httpError(response.StatusCode, errorMessage(data))
	}
	return data, nil
}

// errorMessage extracts the `error` field of a failure body, if any.
func errorMessage(data []byte) string {
	payload := struct {
		Error string `json:"error"`
	}{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Error
}

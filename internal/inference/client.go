package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://router.huggingface.co/hf-inference/models/"
	DefaultModel   = "stabilityai/stable-diffusion-xl-base-1.0"
)

// Error reports a failed call to the inference provider.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("inference request failed: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("inference request failed: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client talks to a Hugging Face compatible text-to-image endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

type textToImageRequest struct {
	Inputs string `json:"inputs"`
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Model returns the model used when GenerateImage is called without one.
func (c *Client) Model() string {
	return c.model
}

// GenerateImage runs prompt through model and returns the image bytes. An
// empty model selects the client default. The call is made exactly once.
func (c *Client) GenerateImage(ctx context.Context, prompt, model string) ([]byte, error) {
	if model == "" {
		model = c.model
	}

	jsonData, err := json.Marshal(textToImageRequest{Inputs: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/" + strings.TrimPrefix(model, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/png")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &Error{StatusCode: resp.StatusCode, Message: providerMessage(body)}
	}

	raw, err := rawReply(resp)
	if err != nil {
		return nil, err
	}

	reply, err := Classify(raw)
	if err != nil {
		return nil, err
	}

	return Normalize(reply)
}

// rawReply extracts the payload from resp according to its content type.
func rawReply(resp *http.Response) (any, error) {
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))

	switch {
	case strings.HasPrefix(mediaType, "image/"):
		return resp.Body, nil
	case mediaType == "application/json":
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &Error{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
		}
		return jsonReply(resp.StatusCode, body)
	case mediaType == "application/octet-stream" || mediaType == "":
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &Error{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
		}
		return body, nil
	}

	return nil, fmt.Errorf("%w: content type %q", ErrUnsupportedFormat, mediaType)
}

func jsonReply(status int, body []byte) (any, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	switch payload := v.(type) {
	case string:
		return payload, nil
	case map[string]any:
		if msg, ok := payload["error"].(string); ok {
			return nil, &Error{StatusCode: status, Message: msg}
		}
		for _, key := range []string{"image", "b64_json"} {
			if s, ok := payload[key].(string); ok {
				return s, nil
			}
		}
		if images, ok := payload["images"].([]any); ok && len(images) > 0 {
			if s, ok := images[0].(string); ok {
				return s, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: unexpected JSON payload", ErrUnsupportedFormat)
}

func providerMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	if len(body) == 0 {
		return "empty response body"
	}
	return string(body)
}

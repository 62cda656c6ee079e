package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Envelope là vỏ phản hồi chung của backend:
// {success, message?, result: {items}}
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type resultItems struct {
	Items json.RawMessage `json:"items"`
}

// Client gọi REST backend. Không singleton, truyền qua constructor.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Items giải mã result.items. Backend trả object đơn khi chỉ có một kết
// quả thay vì mảng một phần tử, nên phải thử mảng trước rồi fallback.
func Items[T any](env Envelope) ([]T, error) {
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return nil, nil
	}
	var r resultItems
	if err := json.Unmarshal(env.Result, &r); err != nil {
		return nil, fmt.Errorf("result không đúng định dạng: %w", err)
	}
	if len(r.Items) == 0 || string(r.Items) == "null" {
		return nil, nil
	}
	var many []T
	if err := json.Unmarshal(r.Items, &many); err == nil {
		return many, nil
	}
	var one T
	if err := json.Unmarshal(r.Items, &one); err != nil {
		return nil, fmt.Errorf("items không đúng định dạng: %w", err)
	}
	return []T{one}, nil
}

func (c *Client) do(req *http.Request) (Envelope, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return Envelope{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope{}, err
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, fmt.Errorf("phản hồi không đúng vỏ chung (HTTP %d): %w", resp.StatusCode, err)
	}
	return env, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (Envelope, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Envelope{}, err
	}
	return c.do(req)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) (Envelope, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Envelope{}, err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return Envelope{}, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (Envelope, error) {
	return c.sendJSON(ctx, http.MethodPost, path, payload)
}

func (c *Client) putJSON(ctx context.Context, path string, payload any) (Envelope, error) {
	return c.sendJSON(ctx, http.MethodPut, path, payload)
}

// sendMultipart ghép từng field một, file là phần tùy chọn — đúng hợp
// đồng upload ảnh món ăn của backend
func (c *Client) sendMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, file io.Reader) (Envelope, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return Envelope{}, err
		}
	}
	if file != nil && fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return Envelope{}, err
		}
		if _, err := io.Copy(part, file); err != nil {
			return Envelope{}, err
		}
	}
	if err := writer.Close(); err != nil {
		return Envelope{}, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return Envelope{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req)
}

package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/explore-karnataka/backend/internal/ai"
)

// Client calls the out-of-process image classifier over HTTP.
type Client struct {
	BaseURL string
	httpDo  *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		httpDo: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Classify posts the image and returns the predicted label and confidence.
func (c *Client) Classify(ctx context.Context, image []byte, filename string) (ai.Prediction, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return ai.Prediction{}, err
	}
	if _, err := part.Write(image); err != nil {
		return ai.Prediction{}, err
	}
	if err := mw.Close(); err != nil {
		return ai.Prediction{}, err
	}

	endpoint := fmt.Sprintf("%s/predict", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return ai.Prediction{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return ai.Prediction{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ai.Prediction{}, fmt.Errorf("classifier http %d", resp.StatusCode)
	}

	var out ai.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ai.Prediction{}, err
	}
	return out, nil
}

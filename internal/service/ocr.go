package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"time"

	"github.com/foodconnect/backend/internal/logger"
	"github.com/foodconnect/backend/internal/scoring"
)

// OCRExtraction is what the OCR collaborator returns for one label image:
// tokenized ingredients, per-100g nutrition facts where legible, and the
// raw text for licence-number detection.
type OCRExtraction struct {
	ProductName string                  `json:"product_name"`
	Ingredients []string                `json:"ingredients"`
	Nutrition   *scoring.NutritionFacts `json:"nutrition_facts"`
	Allergens   []string                `json:"allergens"`
	ServingSize string                  `json:"serving_size"`
	FSSAINumber string                  `json:"fssai_number"`
	RawText     string                  `json:"raw_text"`
}

// OCRClient talks to the label-extraction collaborator over HTTP.
type OCRClient struct {
	baseURL string
	client  *http.Client
}

func NewOCRClient(baseURL string) *OCRClient {
	return &OCRClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ocrClientError marks a 4xx reply, which a retry cannot fix.
type ocrClientError struct {
	err error
}

func (e *ocrClientError) Error() string { return e.err.Error() }
func (e *ocrClientError) Unwrap() error { return e.err }

var fssaiPattern = regexp.MustCompile(`\b\d{14}\b`)

// DetectFSSAI finds a 14-digit licence number in raw label text. Returns
// empty when none is present.
func DetectFSSAI(text string) string {
	return fssaiPattern.FindString(text)
}

// Extract uploads the label image and returns the parsed extraction. A
// failed connection or a 5xx reply is retried once; 4xx replies are not,
// since resending the same image cannot help.
func (c *OCRClient) Extract(ctx context.Context, imageData []byte, filename string) (*OCRExtraction, error) {
	extraction, err := c.post(ctx, imageData, filename)
	if err == nil {
		return extraction, nil
	}
	var clientErr *ocrClientError
	if errors.As(err, &clientErr) {
		return nil, err
	}

	logger.L().Warnw("ocr request failed, retrying once", "error", err)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(time.Second):
	}
	return c.post(ctx, imageData, filename)
}

func (c *OCRClient) post(ctx context.Context, imageData []byte, filename string) (*OCRExtraction, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ocr request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ocr response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("ocr service returned status %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, &ocrClientError{err: err}
		}
		return nil, err
	}

	var extraction OCRExtraction
	if err := json.Unmarshal(body, &extraction); err != nil {
		return nil, fmt.Errorf("failed to parse ocr response: %w", err)
	}

	if extraction.FSSAINumber == "" && extraction.RawText != "" {
		extraction.FSSAINumber = DetectFSSAI(extraction.RawText)
	}

	return &extraction, nil
}

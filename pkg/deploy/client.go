package deploy

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/valyala/fasthttp"

	"seogen-go/pkg/logger"
	"seogen-go/pkg/page"
)

// Client submits finished page sets to a deployment backend in gzipped
// JSON batches.
type Client struct {
	config Config
	client *fasthttp.Client
	log    *logger.Logger
}

// NewClient creates a deployment backend client.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("deployment backend URL is required")
	}
	if config.BatchSize == 0 {
		config.BatchSize = 100
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	client := &fasthttp.Client{
		ReadTimeout:         config.Timeout,
		WriteTimeout:        config.Timeout,
		MaxConnsPerHost:     100,
		MaxIdleConnDuration: 90 * time.Second,
	}

	return &Client{
		config: config,
		client: client,
		log:    logger.Component("deploy_client"),
	}, nil
}

// SubmitPages uploads the page set in sequential batches. Paths are
// sorted so batch contents are deterministic for a given page set.
func (c *Client) SubmitPages(ctx context.Context, deploymentID, businessID string, pages map[string]*page.GeneratedPage) error {
	if len(pages) == 0 {
		c.log.Debug("No pages to submit")
		return nil
	}

	paths := make([]string, 0, len(pages))
	for path := range pages {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	uploads := make([]PageUpload, 0, len(paths))
	for _, path := range paths {
		pg := pages[path]
		uploads = append(uploads, PageUpload{
			Path:            path,
			Title:           pg.Title,
			MetaDescription: pg.MetaDescription,
			Content:         pg.Content,
			WordCount:       pg.WordCount,
			Method:          string(pg.Method),
		})
	}

	totalBatches := (len(uploads) + c.config.BatchSize - 1) / c.config.BatchSize
	c.log.WithFields(map[string]interface{}{
		"deployment_id": deploymentID,
		"total_pages":   len(uploads),
		"batch_size":    c.config.BatchSize,
		"total_batches": totalBatches,
	}).Info("Starting page set submission")

	for i := 0; i < len(uploads); i += c.config.BatchSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := i + c.config.BatchSize
		if end > len(uploads) {
			end = len(uploads)
		}

		batch := UploadBatch{
			DeploymentID: deploymentID,
			BusinessID:   businessID,
			Pages:        uploads[i:end],
		}
		if err := c.submitBatch(batch); err != nil {
			return fmt.Errorf("failed to submit batch %d/%d: %w", i/c.config.BatchSize+1, totalBatches, err)
		}
	}

	c.log.WithField("total_batches", totalBatches).Info("Page set submission completed")
	return nil
}

func (c *Client) submitBatch(batch UploadBatch) error {
	jsonData, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}

	requestBody := jsonData
	contentEncoding := ""
	if c.config.EnableGzip {
		var buf bytes.Buffer
		gzipWriter := gzip.NewWriter(&buf)
		if _, err := gzipWriter.Write(jsonData); err != nil {
			gzipWriter.Close()
			return fmt.Errorf("failed to write to gzip: %w", err)
		}
		if err := gzipWriter.Close(); err != nil {
			return fmt.Errorf("failed to close gzip writer: %w", err)
		}
		requestBody = buf.Bytes()
		contentEncoding = "gzip"
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.config.BaseURL + "/api/v1/deployments/pages")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if c.config.APIKey != "" {
		req.Header.Set("X-API-Key", c.config.APIKey)
	}
	if contentEncoding != "" {
		req.Header.Set("Content-Encoding", contentEncoding)
	}
	req.SetBody(requestBody)

	if err := c.client.DoTimeout(req, resp, c.config.Timeout); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var backendResp BackendResponse
	if err := json.Unmarshal(resp.Body(), &backendResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.log.WithFields(map[string]interface{}{
		"response_code": backendResp.Code,
		"batch_pages":   len(batch.Pages),
	}).Debug("Batch submitted")
	return nil
}

// Package piston is the HTTP client for the external Piston code
// execution sandbox. Every response shape the runner can produce --
// success, compile failure, runtime failure, transport failure,
// malformed error body -- is normalized into one Result so the editor
// UI always has something renderable.
package piston

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "http://localhost:2000"
	apiPrefix      = "/api/v2"

	// Generous but finite stage timeouts, in milliseconds. Memory is
	// left unlimited (-1); the sandbox enforces its own ceiling.
	compileTimeoutMS = 3000
	runTimeoutMS     = 3000
	memoryUnlimited  = -1
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Piston client for the given base URL (without the
// /api/v2 suffix). Empty baseURL falls back to the local default.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL + apiPrefix,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// executeRequest is Piston's wire format for POST /execute.
type executeRequest struct {
	Language           string        `json:"language"`
	Version            string        `json:"version"`
	Files              []requestFile `json:"files"`
	Stdin              string        `json:"stdin"`
	Args               []string      `json:"args"`
	CompileTimeout     int           `json:"compile_timeout"`
	RunTimeout         int           `json:"run_timeout"`
	CompileMemoryLimit int           `json:"compile_memory_limit"`
	RunMemoryLimit     int           `json:"run_memory_limit"`
}

type requestFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// stage is one execution stage (compile or run) in Piston's response.
// Compiled languages produce both; interpreted ones only run.
type stage struct {
	Stdout string  `json:"stdout"`
	Stderr string  `json:"stderr"`
	Code   int     `json:"code"`
	Signal *string `json:"signal"`
}

type executeResponse struct {
	Compile *stage `json:"compile"`
	Run     *stage `json:"run"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Result is the normalized execution outcome returned to the editor.
// Execution failures are data, not errors: the caller always gets a
// renderable Result, never a transport fault.
type Result struct {
	Success  bool    `json:"success"`
	Stdout   string  `json:"stdout"`
	Stderr   string  `json:"stderr"`
	ExitCode int     `json:"exitCode"`
	Signal   *string `json:"signal,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// Execute runs code through Piston and normalizes the response.
// Network errors and 4xx/5xx bodies come back as a failed Result
// rather than an error.
func (c *Client) Execute(ctx context.Context, language, version, code, stdin string, args []string) Result {
	if args == nil {
		args = []string{}
	}

	payload := executeRequest{
		Language:           RuntimeLanguage(language),
		Version:            version,
		Files:              []requestFile{{Name: EntryFilename(language), Content: code}},
		Stdin:              stdin,
		Args:               args,
		CompileTimeout:     compileTimeoutMS,
		RunTimeout:         runTimeoutMS,
		CompileMemoryLimit: memoryUnlimited,
		RunMemoryLimit:     memoryUnlimited,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return failedResult(fmt.Sprintf("failed to encode request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/execute", bytes.NewReader(body))
	if err != nil {
		return failedResult(fmt.Sprintf("failed to build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Piston execution error: %v", err)
		return failedResult(err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return failedResult(fmt.Sprintf("failed to read response: %v", err))
	}

	if resp.StatusCode >= 400 {
		message := "Execution failed"
		var errResp errorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Message != "" {
			message = errResp.Message
		}
		log.Printf("Piston returned %d: %s", resp.StatusCode, message)
		return failedResult(message)
	}

	var execResp executeResponse
	if err := json.Unmarshal(data, &execResp); err != nil {
		return failedResult(fmt.Sprintf("failed to decode response: %v", err))
	}

	return normalizeResult(execResp)
}

// Runtimes forwards Piston's available-runtime catalog. Unlike Execute,
// an unreachable runner here is an error: there is no partial result
// worth rendering.
func (c *Client) Runtimes(ctx context.Context) ([]Runtime, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/runtimes", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available runtimes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch available runtimes: unexpected status %d", resp.StatusCode)
	}

	var runtimes []Runtime
	if err := json.NewDecoder(resp.Body).Decode(&runtimes); err != nil {
		return nil, fmt.Errorf("failed to decode runtimes: %w", err)
	}

	return runtimes, nil
}

// Runtime is one entry in Piston's runtime catalog.
type Runtime struct {
	Language string   `json:"language"`
	Version  string   `json:"version"`
	Aliases  []string `json:"aliases"`
	Runtime  string   `json:"runtime,omitempty"`
}

func failedResult(message string) Result {
	return Result{
		Success:  false,
		Error:    message,
		Stdout:   "",
		Stderr:   message,
		ExitCode: 1,
	}
}

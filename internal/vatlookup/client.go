// Package vatlookup talks to an external VAT-identifier registry (a
// VIES-style lookup). The call is opportunistic: time-boxed, and any failure
// is inconclusive rather than an error the caller must handle.
package vatlookup

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Result of one registry check. Conclusive is false when the registry was
// unreachable or answered with garbage; Valid is only meaningful when
// Conclusive is true.
type Result struct {
	Valid      bool
	Conclusive bool
}

// Validator checks an EU VAT identifier against a registry.
type Validator interface {
	Validate(ctx context.Context, vatID string) Result
}

// HTTPValidator queries a JSON endpoint: GET {base}/check?vatId=...
// expecting {"valid": bool}.
type HTTPValidator struct {
	BaseURL string
	Client  *http.Client
	Logger  *slog.Logger
}

func NewHTTPValidator(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPValidator {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPValidator{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

func (v *HTTPValidator) Validate(ctx context.Context, vatID string) Result {
	if v.BaseURL == "" {
		return Result{}
	}
	u := fmt.Sprintf("%s/check?vatId=%s", v.BaseURL, url.QueryEscape(vatID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Result{}
	}
	resp, err := v.Client.Do(req)
	if err != nil {
		v.Logger.Warn("vatlookup.unreachable", "err", err)
		return Result{}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		v.Logger.Warn("vatlookup.bad_status", "status", resp.StatusCode)
		return Result{}
	}
	var body struct {
		Valid bool `json:"valid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}
	}
	return Result{Valid: body.Valid, Conclusive: true}
}

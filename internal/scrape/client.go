// Package scrape issues one templated HTTP request against a remote API and
// prints the raw status and body. No retry, no auth refresh, no pagination.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// Request describes the single request to issue.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Cookies map[string]string
	// Body, when non-nil, is marshalled as the JSON request body.
	Body any
}

// Client executes Requests and writes the report to Out.
type Client struct {
	http *resty.Client
	Out  io.Writer
}

// NewClient creates a Client reporting to out.
func NewClient(out io.Writer) *Client {
	return &Client{
		http: resty.New().SetTimeout(time.Minute),
		Out:  out,
	}
}

// Do issues req and prints the status code followed by the body: indented
// JSON when the body parses as JSON, raw text otherwise. A non-JSON body is
// not an error.
func (c *Client) Do(ctx context.Context, req Request) error {
	r := c.http.R().SetContext(ctx)
	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}
	for name, value := range req.Cookies {
		r.SetCookie(&http.Cookie{Name: name, Value: value})
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json")
		r.SetBody(req.Body)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	resp, err := r.Execute(method, req.URL)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, req.URL, err)
	}

	fmt.Fprintf(c.Out, "status: %d\n", resp.StatusCode())

	var decoded any
	if err := json.Unmarshal(resp.Body(), &decoded); err == nil {
		pretty, err := json.MarshalIndent(decoded, "", "  ")
		if err == nil {
			fmt.Fprintf(c.Out, "%s\n", pretty)
			return nil
		}
	}
	fmt.Fprintf(c.Out, "%s\n", resp.String())
	return nil
}

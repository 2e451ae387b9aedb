package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/subcommands"

	"kline-tools/internal/scrape"
)

// requestCmd issues a single scripted HTTP request and prints the response.
type requestCmd struct {
	method  string
	url     string
	headers headerFlags
	cookies headerFlags
	data    string
}

// headerFlags collects repeated "Name: value" or "name=value" pairs.
type headerFlags map[string]string

func (h headerFlags) String() string { return "" }

func (h headerFlags) Set(s string) error {
	if name, value, ok := strings.Cut(s, ":"); ok {
		h[strings.TrimSpace(name)] = strings.TrimSpace(value)
		return nil
	}
	if name, value, ok := strings.Cut(s, "="); ok {
		h[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return nil
}

func (*requestCmd) Name() string     { return "request" }
func (*requestCmd) Synopsis() string { return "issue one HTTP request and print the response" }
func (*requestCmd) Usage() string {
	return `request -url URL [-X POST] [-H 'Name: value']... [-cookie name=value]... [-data '{"k":"v"}']:
  Issue the request and print the status code and body. JSON bodies are
  pretty-printed; anything else prints as raw text.
`
}

func (c *requestCmd) SetFlags(f *flag.FlagSet) {
	c.headers = headerFlags{}
	c.cookies = headerFlags{}
	f.StringVar(&c.method, "X", "GET", "HTTP method")
	f.StringVar(&c.url, "url", "", "request URL")
	f.Var(c.headers, "H", "request header 'Name: value' (repeatable)")
	f.Var(c.cookies, "cookie", "cookie name=value (repeatable)")
	f.StringVar(&c.data, "data", "", "JSON request body")
}

func (c *requestCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" {
		slog.Error("-url is required")
		return subcommands.ExitUsageError
	}

	req := scrape.Request{
		Method:  c.method,
		URL:     c.url,
		Headers: c.headers,
		Cookies: c.cookies,
	}
	if c.data != "" {
		var body any
		if err := json.Unmarshal([]byte(c.data), &body); err != nil {
			slog.Error("-data is not valid JSON", "error", err)
			return subcommands.ExitUsageError
		}
		req.Body = body
	}

	if err := scrape.NewClient(os.Stdout).Do(ctx, req); err != nil {
		slog.Error("request failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

package fetch

import (
	"context"
	"fmt"
	"time"
	"wikifeet-go/internal/components/assert"
	"wikifeet-go/internal/components/telemetry"
	"wikifeet-go/lib/restyutil"
	libtelemetry "wikifeet-go/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	report_fetch_text = "fetch.text"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// API is the page fetching capability, it returns the body of the page at `url` as text
// or an error if the page could not be retrieved.
//
// note: fault injection point
type API interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// StatusError is returned when the server answered with a non-2xx status.
type StatusError struct {
	Url  string
	Code int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.Url, e.Code)
}

type Options struct {
	UserAgent string
	Timeout   time.Duration
	// RateLimit is the maximum amount of requests per second, 0 disables limiting.
	RateLimit float64
	RateBurst int
	// AllowedHosts restricts redirects to the given hostnames, empty allows any redirect.
	AllowedHosts     []string
	CloudflareBypass bool
	// Dump receives every request/response exchange when set.
	Dump restyutil.MessageOutput
}

func DefaultOptions() Options {
	return Options{
		UserAgent:        DefaultUserAgent,
		Timeout:          time.Second * 30,
		RateLimit:        2,
		RateBurst:        2,
		AllowedHosts:     []string{"www.wikifeet.com", "wikifeet.com"},
		CloudflareBypass: true,
	}
}

// Resty is the standard implementation of API, a single Resty should be created and
// shared by everything that fetches pages.
type Resty struct {
	http *resty.Client
	tel  telemetry.API
}

func NewResty(opts Options, tel telemetry.API) Resty {
	assert.NotNil(tel)

	tel = telemetry.NewScopedAPI("fetch", tel)

	client := resty.New()
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	client.SetHeader("user-agent", userAgent)
	if len(opts.AllowedHosts) > 0 {
		client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(opts.AllowedHosts...))
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		// burst >= 1 means that no requests will be dropped, only delayed
		limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(client, tel)
	libtelemetry.InstrumentResty(client, "wikifeet/fetch")
	restyutil.DumpMessages(client, opts.Dump)

	return Resty{http: client, tel: tel}
}

func (r Resty) FetchText(ctx context.Context, url string) (string, error) {
	res, err := r.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if res.IsError() {
		err := StatusError{Url: url, Code: res.StatusCode()}
		r.tel.ReportWarning(report_fetch_text, err)
		return "", err
	}
	return res.String(), nil
}

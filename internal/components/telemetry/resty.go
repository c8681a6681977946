package telemetry

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	report_resty_request   = "resty.request"
	report_resty_response  = "resty.response"
	report_resty_in_flight = "resty.in-flight"
)

type restyCounters struct {
	nextId   atomic.Uint64
	inFlight atomic.Int64
}

type restyReporter struct {
	tel      API
	counters *restyCounters
}

type requestInfoKey struct{}

type requestInfo struct {
	id    uint64
	start time.Time
}

// InstrumentResty reports the start and the outcome of every request made by the
// client, together with the amount of requests in flight.
func InstrumentResty(client *resty.Client, tel API) {
	r := restyReporter{tel: tel, counters: &restyCounters{}}
	client.OnBeforeRequest(r.started)
	client.OnAfterResponse(r.answered)
	client.OnError(r.failed)
}

// finished decrements the in-flight gauge and returns the info attached when the
// request started, ok is false when the request never went through started.
func (r restyReporter) finished(ctx context.Context) (requestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey{}).(requestInfo)
	if ok {
		r.tel.ReportCount(report_resty_in_flight, r.counters.inFlight.Add(-1))
	}
	return info, ok
}

func (r restyReporter) started(_ *resty.Client, req *resty.Request) error {
	info := requestInfo{
		id:    r.counters.nextId.Add(1),
		start: time.Now(),
	}
	req.SetContext(context.WithValue(req.Context(), requestInfoKey{}, info))

	r.tel.ReportDebug(report_resty_request, info.id, req.Method, req.URL)
	r.tel.ReportCount(report_resty_in_flight, r.counters.inFlight.Add(1))
	return nil
}

func (r restyReporter) answered(_ *resty.Client, res *resty.Response) error {
	info, ok := r.finished(res.Request.Context())
	if !ok {
		r.tel.ReportWarning(report_resty_response, "missing request context", res.Request.URL)
		return nil
	}
	r.tel.ReportDebug(
		report_resty_response,
		info.id,
		time.Since(info.start).String(),
		res.Status(),
	)
	return nil
}

func (r restyReporter) failed(req *resty.Request, err error) {
	var elapsed time.Duration
	info, ok := r.finished(req.Context())
	if ok {
		elapsed = time.Since(info.start)
	}
	r.tel.ReportBroken(report_resty_response, err, req.Method, req.URL, elapsed)
}

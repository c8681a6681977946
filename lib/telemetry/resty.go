package telemetry

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/semconv/v1.13.0/httpconv"
	"go.opentelemetry.io/otel/trace"
)

type restyInstruments struct {
	tracer   trace.Tracer
	requests otelmetric.Int64Counter
}

// InstrumentResty starts a span for every request made by the client and counts
// requests by outcome.
func InstrumentResty(client *resty.Client, name string) {
	requests, err := otel.Meter(name).Int64Counter(
		"http.client.requests",
		otelmetric.WithDescription("outgoing http requests by outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}

	i := restyInstruments{
		tracer:   otel.Tracer(name),
		requests: requests,
	}
	client.OnBeforeRequest(i.onBeforeRequest)
	client.OnAfterResponse(i.onAfterResponse)
	client.OnError(i.onError)
}

func (i restyInstruments) count(ctx context.Context, outcome string) {
	if i.requests == nil {
		return
	}
	i.requests.Add(ctx, 1, otelmetric.WithAttributes(attribute.String("outcome", outcome)))
}

func (i restyInstruments) onBeforeRequest(_ *resty.Client, req *resty.Request) error {
	ctx, _ := i.tracer.Start(req.Context(), req.Method)
	req.SetContext(ctx)
	return nil
}

func (i restyInstruments) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	ctx := res.Request.Context()
	span := trace.SpanFromContext(ctx)
	defer span.End()

	// setting request attributes here since res.Request.RawRequest is nil in onBeforeRequest
	span.SetName(fmt.Sprintf("http %s", res.Request.Method))
	span.SetAttributes(httpconv.ClientRequest(res.Request.RawRequest)...)
	span.SetAttributes(httpconv.ClientResponse(res.RawResponse)...)

	if res.IsError() {
		span.SetStatus(codes.Error, res.Status())
		i.count(ctx, "status_error")
		return nil
	}
	i.count(ctx, "ok")
	return nil
}

func (i restyInstruments) onError(req *resty.Request, err error) {
	ctx := req.Context()
	span := trace.SpanFromContext(ctx)
	defer span.End()

	span.RecordError(err)
	span.SetStatus(codes.Error, "request failed")
	i.count(ctx, "transport_error")

	span.SetName(fmt.Sprintf("http %s", req.Method))
	if req.RawRequest == nil {
		return
	}
	span.SetAttributes(httpconv.ClientRequest(req.RawRequest)...)
}

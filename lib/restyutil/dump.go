package restyutil

import (
	"github.com/go-resty/resty/v2"
)

// MessageOutput receives every completed request/response exchange of a client,
// formatted as text and keyed by the request url.
type MessageOutput interface {
	Write(url string, contents string)
}

// DumpMessages writes every exchange that received a response to `output`.
// `output` can be nil, in which case the function is a no-op.
func DumpMessages(client *resty.Client, output MessageOutput) {
	if output == nil {
		return
	}
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		output.Write(res.Request.URL, formatHttpMessage(res))
		return nil
	})
}

package client

import "net/http"

// Interceptor decorates a RoundTripper. Interceptors compose at construction
// time and wrap the authenticating transport, so they observe both transport
// failures and authentication failures.
type Interceptor func(next http.RoundTripper) http.RoundTripper

// Option configures New.
type Option = func(*options)

type options struct {
	base         http.RoundTripper
	interceptors []Interceptor
}

// WithBase sets the transport the authenticated client delegates to.
// Defaults to http.DefaultTransport.
func WithBase(base http.RoundTripper) Option {
	return func(o *options) {
		if base != nil {
			o.base = base
		}
	}
}

// WithInterceptor appends interceptors to the chain. They run in the order
// given: the first interceptor wraps all that follow.
func WithInterceptor(interceptors ...Interceptor) Option {
	return func(o *options) {
		o.interceptors = append(o.interceptors, interceptors...)
	}
}

// WithErrorReporter installs an interceptor that hands every request error
// to reporter. The error still propagates to the caller unchanged; reporting
// never retries, swallows or rewrites it.
func WithErrorReporter(reporter Reporter) Option {
	return WithInterceptor(func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if err != nil && reporter != nil {
				reporter.ReportError(ErrorEvent{
					Name:    "error",
					Message: err.Error(),
					Method:  req.Method,
					URL:     req.URL.String(),
				})
			}
			return resp, err
		})
	})
}

// ErrorEvent describes one failed request.
type ErrorEvent struct {
	// Name classifies the event for the receiving sink.
	Name string
	// Message is the error text.
	Message string
	// Method and URL identify the request that failed.
	Method string
	URL    string
}

// Reporter consumes error events. Implementations decide where events go;
// the client never performs reporting I/O of its own.
type Reporter interface {
	ReportError(event ErrorEvent)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(event ErrorEvent)

func (f ReporterFunc) ReportError(event ErrorEvent) { f(event) }

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

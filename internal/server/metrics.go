package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"tinylink/pkg/metrics"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
)

// Metrics is a server middleware recording request counts and latency per
// operation.
func Metrics(m *metrics.Metrics) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			var operation string
			if tr, ok := transport.FromServerContext(ctx); ok {
				operation = tr.Operation()
			}

			start := time.Now()
			reply, err := handler(ctx, req)

			code := http.StatusOK
			if err != nil {
				code = int(errors.FromError(err).Code)
			}
			m.Requests.WithLabelValues(operation, strconv.Itoa(code)).Inc()
			m.Duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

			return reply, err
		}
	}
}

package server

import (
	nethttp "net/http"

	"tinylink/internal/conf"
	"tinylink/internal/service"
	"tinylink/pkg/apierror"
	"tinylink/pkg/metrics"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, link *service.LinkService, m *metrics.Metrics, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
			Metrics(m),
		),
		http.Filter(CORS(c.GetCors().GetAllowedOrigins())),
		http.ErrorEncoder(errorEncoder(logger)),
	}
	if hc := c.GetHttp(); hc != nil {
		if hc.Network != "" {
			opts = append(opts, http.Network(hc.Network))
		}
		if hc.Addr != "" {
			opts = append(opts, http.Address(hc.Addr))
		}
		if hc.Timeout != nil {
			opts = append(opts, http.Timeout(hc.Timeout.AsDuration()))
		}
	}
	srv := http.NewServer(opts...)

	// Fixed paths first; the redirect route matches any single segment.
	srv.Handle("/metrics", m.Handler())
	service.RegisterLinkHTTPServer(srv, link)

	return srv
}

// errorEncoder writes {"error", "reason"} bodies and logs server-side
// failures, which reach the client only as "Server error".
func errorEncoder(logger log.Logger) http.EncodeErrorFunc {
	helper := log.NewHelper(logger)
	return func(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
		status, body := apierror.FromError(err)
		if status >= nethttp.StatusInternalServerError {
			helper.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
		}
		apierror.Write(w, status, body)
	}
}

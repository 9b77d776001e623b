package api

import (
	"net/http"

	"github.com/SirJonasM/fpga-router/pkg/api/middleware"
)

const maxRequestBodyBytes = 10 * 1024 * 1024 // 10MB; routing plans are small JSON documents

func (s *Server) panicRecoveryMiddleware(next http.Handler) http.Handler {
	return middleware.PanicRecovery()(next)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return middleware.Logging(middleware.GetRequestID)(next)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return middleware.CORS(s.corsConfig)(next)
}

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return middleware.RequestID()(next)
}

func (s *Server) securityHeadersMiddleware(next http.Handler) http.Handler {
	return middleware.SecurityHeaders(&middleware.SecurityHeadersConfig{})(next)
}

func (s *Server) bodySizeLimitMiddleware(next http.Handler) http.Handler {
	return middleware.BodySizeLimit(maxRequestBodyBytes)(next)
}

func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return middleware.Metrics(s.metricsRegistry)(next)
}

func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	if s.rateLimiter == nil {
		return next
	}
	getClientID := func(r *http.Request) string {
		if caller, ok := r.Context().Value(callerContextKey).(string); ok && caller != "" {
			return "caller:" + caller
		}
		return middleware.GetClientIP(r)
	}
	return middleware.RateLimit(s.rateLimiter, getClientID, nil)(next)
}

// chain applies middleware in the order given, outermost first.
func chain(h http.Handler, mw ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

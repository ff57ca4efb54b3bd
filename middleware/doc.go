// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /data", middleware.WithLogging(handler))

Logs request start (request_id, method, path, client_ip) and completion
(status, duration_ms). The request id is taken from X-Request-ID when the
caller sends one, otherwise a new UUID, and is echoed in the response.

# CORS Middleware

Enable cross-origin requests for the grid and chart endpoints:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET and OPTIONS with headers Content-Type and X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadGateway, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware

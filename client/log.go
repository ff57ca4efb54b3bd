// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"errors"
	"log/slog"
)

// maxLoggedBody keeps error logs readable when a server returns a page of HTML.
const maxLoggedBody = 2048

// LogError writes one error record for a failed fetch with whatever detail
// the error carries: status, raw body and the underlying error.
func LogError(log *slog.Logger, msg string, err error) {
	if log == nil {
		log = slog.Default()
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		log.Error(msg, "error", err)
		return
	}

	body := fe.Body
	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody] + "..."
	}
	log.Error(msg,
		"kind", fe.Kind.String(),
		"url", fe.URL,
		"status", fe.StatusCode,
		"body", body,
		"error", fe.Err,
	)
}

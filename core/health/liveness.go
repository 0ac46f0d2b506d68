package health

import (
	"github.com/hooly/hooly/core/handler"
	"github.com/hooly/hooly/core/response"
)

// Liveness reports that the process is up. It always returns "ALIVE" with 200 OK.
//
//	r.Get("/health/live", health.Liveness[*web.Context])
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}

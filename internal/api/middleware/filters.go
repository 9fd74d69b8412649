package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDHeader    = "X-Request-ID"
	RequestIDAttribute = "requestID"
)

// RequestID reuses the caller's X-Request-ID or generates one, echoes it
// back and stores it on the request context.
func RequestID(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	id := req.HeaderParameter(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	req.SetAttribute(RequestIDAttribute, id)
	req.Request = req.Request.WithContext(models.WithRequestID(req.Request.Context(), id))
	resp.AddHeader(RequestIDHeader, id)

	chain.ProcessFilter(req, resp)
}

func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()

	chain.ProcessFilter(req, resp)

	event := log.Info()
	if resp.StatusCode() >= http.StatusInternalServerError {
		event = log.Error()
	} else if resp.StatusCode() >= http.StatusBadRequest {
		event = log.Warn()
	}

	id, _ := req.Attribute(RequestIDAttribute).(string)
	event.
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Str("requestID", id).
		Msg("HTTP request")
}

func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from panic")

			resp.WriteHeaderAndEntity(http.StatusInternalServerError, ErrorResponse{
				Error: http.StatusText(http.StatusInternalServerError),
				Code:  http.StatusInternalServerError,
			})
		}
	}()

	chain.ProcessFilter(req, resp)
}

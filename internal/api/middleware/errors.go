package middleware

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error   string `json:"error" description:"HTTP status text"`
	Code    int    `json:"code" description:"HTTP status code"`
	Details string `json:"details,omitempty" description:"What went wrong"`
}

// HandleError writes an ErrorResponse. Server errors are logged and their
// details are not sent to the caller.
func HandleError(resp *restful.Response, err error, status int) {
	body := ErrorResponse{
		Error: http.StatusText(status),
		Code:  status,
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("Request failed")
		body.Details = "the interview model could not produce a response"
	} else if err != nil {
		body.Details = err.Error()
	}

	if writeErr := resp.WriteHeaderAndEntity(status, body); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}

// ServiceErrorHandler renders routing failures (404, 405, 415) as an
// ErrorResponse. Install it with Container.ServiceErrorHandler.
func ServiceErrorHandler(serviceErr restful.ServiceError, req *restful.Request, resp *restful.Response) {
	for header, values := range serviceErr.Header {
		for _, value := range values {
			resp.Header().Add(header, value)
		}
	}

	// no route was selected, so nothing else tells the response how to encode
	resp.SetRequestAccepts(restful.MIME_JSON)

	var err error
	if serviceErr.Message != "" {
		err = errors.New(serviceErr.Message)
	}
	HandleError(resp, err, serviceErr.Code)
}

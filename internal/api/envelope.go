package api

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// envelopeVersion is bumped when the envelope structure changes in a way
// clients must know about. The field is named exactly "v" on the wire.
const envelopeVersion = 1

type successEnvelope struct {
	V       int  `json:"v"`
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type errorEnvelope struct {
	V       int    `json:"v"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer wraps every response body in the shared envelope
// structure so clients can decode all responses uniformly.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	if apiErr, ok := v.(*APIError); ok {
		return errorEnvelope{
			V:       envelopeVersion,
			Error:   apiErr.Message,
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		}, nil
	}

	if strings.HasPrefix(status, "4") || strings.HasPrefix(status, "5") {
		message := status
		if err, ok := v.(error); ok {
			message = err.Error()
		}
		return errorEnvelope{
			V:     envelopeVersion,
			Error: message,
		}, nil
	}

	return successEnvelope{
		V:       envelopeVersion,
		Success: true,
		Data:    v,
	}, nil
}

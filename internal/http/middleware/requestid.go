package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// RequestIDHeader is the header used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the Fiber locals key holding the request ID.
	RequestIDLocalKey = "request_id"
	// RequestIDAttribute is the span attribute carrying the request ID.
	RequestIDAttribute = attribute.Key("http.request_id")
)

// RequestID makes sure every request carries an ID. An incoming X-Request-ID is kept,
// otherwise a UUID is generated. The ID is stored in locals for the logger and error
// envelope, echoed in the response header and set on the active span so traces and
// JSON logs can be joined.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		if span := trace.SpanFromContext(c.UserContext()); span.IsRecording() {
			span.SetAttributes(RequestIDAttribute.String(id))
		}

		return c.Next()
	}
}

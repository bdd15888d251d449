package console

import (
	"errors"

	"permit-service-api/client"
)

// ConnectivityMessage is the single generic message shown for any transport
// failure, identical across all mutation flows.
const ConnectivityMessage = "Tidak dapat terhubung ke server. Silakan coba lagi."

// ValidationError is a pre-flight rejection: the action was blocked before
// any network call was made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UserMessage reduces any error from the controller to the text shown to
// the operator: validation and application errors verbatim, transport
// detail collapsed into the generic connectivity message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Message
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	if errors.Is(err, client.ErrConnectivity) {
		return ConnectivityMessage
	}

	return err.Error()
}

package domain

// GenericRemoteMessage is shown when the backend rejects an operation without
// saying why.
const GenericRemoteMessage = "No se pudo completar la operación, intente de nuevo"

// ValidationError is raised synchronously, before any network call. It never
// leaves partial state behind and its message is safe to show to the admin.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RemoteError means a call to a backend collaborator failed or was rejected.
// Message carries whatever the backend provided, falling back to
// GenericRemoteMessage. Local state is never mutated by a RemoteError.
type RemoteError struct {
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return GenericRemoteMessage
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewRemoteError builds a RemoteError, substituting the generic message when
// the backend gave none.
func NewRemoteError(message string, err error) *RemoteError {
	if message == "" {
		message = GenericRemoteMessage
	}
	return &RemoteError{Message: message, Err: err}
}

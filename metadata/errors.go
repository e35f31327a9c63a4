package metadata

import "fmt"

// EnvNotSetError is used to communicate that the environment variable holding
// the metadata endpoint URL is absent, meaning this process probably isn't
// running under ECS. No request has been made when this error is returned.
type EnvNotSetError struct {
	Name string // name of the environment variable
}

func (e EnvNotSetError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Name)
}

// IsEnvNotSetError returns true, if err is an EnvNotSetError error.
//
// This auxiliary function helps ensure that we type cast correctly.
func IsEnvNotSetError(err error) bool {
	_, ok := err.(EnvNotSetError)
	return ok
}

// FetchError is used to communicate that the metadata document could not be
// obtained. It covers transport failures, non-2xx responses and documents
// that don't match the expected schema alike, the underlying cause is always
// available through Cause or Unwrap.
type FetchError struct {
	Op  string // operation that failed, used in the error message
	Err error  // underlying cause
}

func (e FetchError) Error() string {
	return fmt.Sprintf("%s, error: %s", e.Op, e.Err)
}

// Cause returns the underlying error, adhering to the pkg/errors causer
// interface.
func (e FetchError) Cause() error {
	return e.Err
}

// Unwrap returns the underlying error for errors.Is/As traversal.
func (e FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError returns true, if err is a FetchError error.
func IsFetchError(err error) bool {
	_, ok := err.(FetchError)
	return ok
}

package resolver

import "fmt"

// SecretFetchError is returned when a secret cannot be fetched or decoded
type SecretFetchError struct {
	Name string
	Err  error
}

func (e *SecretFetchError) Error() string {
	return fmt.Sprintf("failed to load secret %q - please check your access to it: %v", e.Name, e.Err)
}

func (e *SecretFetchError) Unwrap() error {
	return e.Err
}

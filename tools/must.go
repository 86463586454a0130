package tools

// Must returns v, panicking on a non-nil err. Meant for startup paths only.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

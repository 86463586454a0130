package tools

import "strings"

// FullURL joins baseURL and path with exactly one slash. An empty baseURL
// yields an empty result.
func FullURL(baseURL, path string) string {
	if baseURL == "" {
		return ""
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return baseURL
	}
	return baseURL + "/" + path
}

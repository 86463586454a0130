package response

import "github.com/gin-gonic/gin"

var (
	NotConfigured = gin.H{"error": "Server initialization error: API key not configured securely on Google Cloud."}
	MissingFields = gin.H{"error": "Missing prompt, image data, or mime type in request body."}
	MalformedBody = gin.H{"error": "Request body must be a JSON object."}
	BodyTooLarge  = gin.H{"error": "Request body exceeds the 10MB limit."}

	SafetyBlocked    = gin.H{"error": "The spell was rejected by the Guardian of the Nexus (Safety Filter)."}
	GenerationFailed = gin.H{"error": "The Transmutation failed to yield a visual artifact."}
	InternalError    = gin.H{"error": "Internal Alchemy Engine Failure. Check server logs."}
)

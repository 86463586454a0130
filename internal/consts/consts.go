package consts

const (
	EnvAPIKey = "GEMINI_API_KEY"
	EnvPort   = "PORT"

	DefaultPort      = "8080"
	DefaultStaticDir = "public"
)

// BodyLimit is the largest request body accepted, in bytes.
const BodyLimit int64 = 10 << 20

const ProxyPath = "/api/proxy"

const (
	GeminiBaseURL    = "https://generativelanguage.googleapis.com"
	GeminiAPIVersion = "v1beta"
	DefaultModel     = "gemini-2.5-flash-image-preview"
)

const (
	BackendSDK  = "sdk"
	BackendREST = "rest"
)

const (
	RoleUser           = "user"
	ModalityImage      = "IMAGE"
	FinishReasonSafety = "SAFETY"
)

const (
	HeaderRequestID = "X-Request-Id"
	CtxRequestID    = "request_id"
)

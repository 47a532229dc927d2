package observability

// Semantic conventions for observability attributes. These constants define
// standard attribute names to keep emitted telemetry consistent across
// components.

// --- LLM Provider Attributes ---

const (
	// AttrLLMProvider is the name of the LLM provider (e.g. "deepseek")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier (e.g. "deepseek-chat")
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMResponseID is the unique response identifier from the provider
	AttrLLMResponseID = "llm.response.id"

	// AttrLLMFinishReason is the reason the generation finished
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMJSONMode reports whether JSON Mode was requested
	AttrLLMJSONMode = "llm.json_mode"
)

// --- Token Usage Attributes ---

const (
	AttrTokensPrompt     = "llm.tokens.prompt"
	AttrTokensCompletion = "llm.tokens.completion"
	AttrTokensTotal      = "llm.tokens.total"
)

// --- Normalization Attributes ---

const (
	// AttrNormalizeExpectArray reports whether the schema hint declared a
	// top-level array expectation.
	AttrNormalizeExpectArray = "normalize.expect_array"

	// AttrNormalizeApplied reports whether normalization changed the content.
	AttrNormalizeApplied = "normalize.applied"
)

// --- HTTP Attributes ---

const (
	AttrHTTPMethod           = "http.method"
	AttrHTTPURL              = "http.url"
	AttrHTTPStatusCode       = "http.status_code"
	AttrHTTPRequestBodySize  = "http.request.body.size"
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- Span Status Attributes ---

const (
	AttrStatus            = "status"
	AttrStatusDescription = "status.description"
)

package fetch

// Config holds configuration for the retrying HTTP client.
type Config struct {
	// MaxAttempts is the total attempt budget per request, including the
	// first try.
	MaxAttempts int `mapstructure:"max_attempts" default:"5"`
	// BackoffSeconds is the base backoff; attempt n waits
	// backoff * 2^(n-1) before retrying.
	BackoffSeconds int `mapstructure:"backoff_seconds" default:"1"`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

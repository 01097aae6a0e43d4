package graphql

const (
	// PublicKeyHeader carries the account's public API key.
	PublicKeyHeader = "X-Public-Key"
	// PrivateKeyHeader carries the account's private API key. It must never be
	// logged.
	PrivateKeyHeader = "X-Private-Key"
	// TargetEnvironmentHeader selects the environment (e.g. "staging",
	// "production") the request operates on.
	TargetEnvironmentHeader = "X-Target-Environment"
	// ContentTypeHeader and ContentTypeJSON describe every request body.
	ContentTypeHeader = "Content-Type"
	ContentTypeJSON   = "application/json"
)

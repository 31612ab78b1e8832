package sigv4

const (
	// EmptyStringSHA256 is the hex encoded sha256 value of an empty string.
	EmptyStringSHA256 = `e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855`

	// AmzDateKey is the header key for the request timestamp, in
	// YYYYMMDDTHHMMSSZ format.
	AmzDateKey = "X-Amz-Date"

	// AmzSecurityTokenKey is the header key for the session token.
	AmzSecurityTokenKey = "X-Amz-Security-Token"

	// DefaultServiceName is the service used when Config.ServiceName is
	// empty. It is the service name of the API Gateway execute-api endpoint.
	DefaultServiceName = "execute-api"

	authorizationHeader = "Authorization"
	hostHeader          = "Host"

	signingAlgorithm = "AWS4-HMAC-SHA256"

	timeFormat      = "20060102T150405Z"
	shortTimeFormat = "20060102"
)

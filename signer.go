package sigv4

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"
)

// Config describes one request to be signed and the credentials to sign it
// with. Config values are consumed by Sign and Build; neither writes to the
// caller's maps.
type Config struct {
	// Method is the HTTP method, such as GET or POST. Required.
	Method string

	// Endpoint is the scheme and authority the request is sent to, such as
	// https://dynamodb.us-east-1.amazonaws.com. Required. It must parse as a
	// URL; behavior on a malformed endpoint is the caller's responsibility.
	Endpoint string

	// Path is the URL path component of the request. Required. A query
	// string carried in Path is dropped when the path is resolved; use
	// Params instead.
	Path string

	// Headers holds headers to include in the signature. Optional. Names
	// are matched case-insensitively and lower-cased during canonicalization.
	Headers map[string]string

	// Params holds query string parameters. Optional.
	Params map[string]string

	// Body is the request payload. A nil Body signs as an empty string, a
	// string or []byte Body is signed verbatim, and any other value is
	// serialized to JSON first.
	Body interface{}

	// Region is the AWS region, such as us-east-1. Required.
	Region string

	// AccessKey and SecretKey are the credentials used to sign. Required.
	AccessKey string
	SecretKey string

	// SessionToken, when not empty, is included as the
	// X-Amz-Security-Token header.
	SessionToken string

	// ServiceName is the AWS service to sign for. Defaults to
	// DefaultServiceName.
	ServiceName string
}

// Parts holds every artifact of one signing pass. Callers that only need
// headers to attach to a request should use Sign instead.
type Parts struct {
	// Config is the resolved copy of the input config: defaults populated,
	// Body replaced by its serialized string form, and Headers pointing at
	// the same map as Parts.Headers.
	Config Config

	// Headers is the complete header map for the request: the caller's
	// headers plus the date, host, optional security token and
	// Authorization headers.
	Headers map[string]string

	// AuthHeader is the value of the Authorization header.
	AuthHeader string

	// Signature is the hex encoded request signature.
	Signature string

	// CanonicalRequest and StringToSign are the intermediate strings the
	// signature was computed over.
	CanonicalRequest string
	StringToSign     string
}

// Sign signs the request described by cfg and returns the complete header
// map to attach to it. See Build for the full artifact set.
func Sign(cfg Config) (map[string]string, error) {
	parts, err := Build(cfg)
	if err != nil {
		return nil, err
	}
	return parts.Headers, nil
}

// Build runs the signing pipeline over cfg and returns every intermediate
// artifact along with the final header map.
//
// If cfg.Headers carries a date header it is used verbatim as the signing
// timestamp, which makes the result deterministic. Otherwise the current UTC
// time is used and recorded under AmzDateKey.
func Build(cfg Config) (*Parts, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	cfg = resolveDefaults(cfg)

	amzDate, ok := headerLookup(cfg.Headers, AmzDateKey)
	if !ok {
		amzDate = NewTime(time.Now()).TimeFormat()
		cfg.Headers[AmzDateKey] = amzDate
	}

	endpoint, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	resolved, err := url.Parse(cfg.Endpoint + cfg.Path)
	if err != nil {
		return nil, err
	}

	cfg.Headers[hostHeader] = endpoint.Host
	if cfg.SessionToken != "" {
		cfg.Headers[AmzSecurityTokenKey] = cfg.SessionToken
	}

	payload, err := serializeBody(cfg.Body)
	if err != nil {
		return nil, err
	}
	cfg.Body = payload

	canonReq := CanonicalRequest(cfg.Method, resolved.Path, cfg.Headers, cfg.Params, payload)
	scope := CredentialScope(amzDate, cfg.Region, cfg.ServiceName)
	strToSign := StringToSign(amzDate, scope, canonReq)
	key := DeriveKey(cfg.SecretKey, cfg.ServiceName, cfg.Region, amzDate)
	signature := Signature(key, strToSign)
	auth := AuthorizationHeader(cfg.AccessKey, scope, SignedHeaderNames(cfg.Headers), signature)
	cfg.Headers[authorizationHeader] = auth

	return &Parts{
		Config:           cfg,
		Headers:          cfg.Headers,
		AuthHeader:       auth,
		Signature:        signature,
		CanonicalRequest: canonReq,
		StringToSign:     strToSign,
	}, nil
}

func validate(cfg Config) error {
	required := []struct {
		name  string
		value string
	}{
		{"Method", cfg.Method},
		{"Path", cfg.Path},
		{"Region", cfg.Region},
		{"Endpoint", cfg.Endpoint},
		{"AccessKey", cfg.AccessKey},
		{"SecretKey", cfg.SecretKey},
	}
	for _, f := range required {
		if f.value == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}

// resolveDefaults returns a copy of cfg with optional fields populated. The
// Headers and Params maps are copied so the caller's maps are never written
// to.
func resolveDefaults(cfg Config) Config {
	headers := make(map[string]string, len(cfg.Headers)+4)
	for name, value := range cfg.Headers {
		headers[name] = value
	}
	cfg.Headers = headers

	params := make(map[string]string, len(cfg.Params))
	for name, value := range cfg.Params {
		params[name] = value
	}
	cfg.Params = params

	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	return cfg
}

// headerLookup finds a header value by name, ignoring case.
func headerLookup(headers map[string]string, name string) (string, bool) {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

func serializeBody(body interface{}) (string, error) {
	switch v := body.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

package sigv4

import (
	"encoding/hex"
	"strings"
)

// CredentialScope builds the credential scope string that binds a signature
// to a single date, region and service. The date portion is the first 8
// characters of amzDate.
func CredentialScope(amzDate, region, service string) string {
	return strings.Join([]string{
		shortDate(amzDate),
		region,
		service,
		"aws4_request",
	}, "/")
}

// StringToSign builds the final message fed into the signing hmac, combining
// the algorithm identifier, the timestamp, the credential scope and the hash
// of the canonical request.
func StringToSign(amzDate, credentialScope, canonicalRequest string) string {
	return strings.Join([]string{
		signingAlgorithm,
		amzDate,
		credentialScope,
		hashHex(canonicalRequest),
	}, "\n")
}

// Signature computes the hex encoded request signature over stringToSign
// using a key produced by DeriveKey.
func Signature(signingKey []byte, stringToSign string) string {
	return hex.EncodeToString(hmacSHA256(signingKey, stringToSign))
}

// AuthorizationHeader assembles the Authorization header value. The
// signedHeaders argument must list exactly the headers that were hashed into
// the canonical request, in the SignedHeaderNames form.
func AuthorizationHeader(accessKey, credentialScope, signedHeaders, signature string) string {
	var buf strings.Builder
	buf.Grow(len(signingAlgorithm) + len(accessKey) + len(credentialScope) +
		len(signedHeaders) + len(signature) + 48)
	buf.WriteString(signingAlgorithm)
	buf.WriteString(" Credential=")
	buf.WriteString(accessKey)
	buf.WriteByte('/')
	buf.WriteString(credentialScope)
	buf.WriteString(", SignedHeaders=")
	buf.WriteString(signedHeaders)
	buf.WriteString(", Signature=")
	buf.WriteString(signature)
	return buf.String()
}

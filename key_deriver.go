package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
)

// DeriveKey derives the signing key for the scope formed by amzDate, region
// and service. Each hmac-sha256 in the chain keys the next, so the raw secret
// is never used to sign a request directly. The `AWS4` prefix and
// `aws4_request` suffix are fixed by the protocol.
func DeriveKey(secret, service, region, amzDate string) []byte {
	kDate := hmacSHA256([]byte("AWS4"+secret), shortDate(amzDate))
	kRegion := hmacSHA256(kDate, region)
	kService := hmacSHA256(kRegion, service)
	return hmacSHA256(kService, "aws4_request")
}

func hmacSHA256(key []byte, data string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(data))
	return h.Sum(nil)
}

// shortDate returns the YYYYMMDD portion of a YYYYMMDDTHHMMSSZ timestamp.
func shortDate(amzDate string) string {
	if len(amzDate) < 8 {
		return amzDate
	}
	return amzDate[:8]
}

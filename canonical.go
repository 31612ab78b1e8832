package sigv4

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// CanonicalRequest builds the canonical request string from the request
// method, path, headers, query parameters and payload. The result is the
// newline-joined form `<METHOD>\n<URI>\n<QUERY>\n<HEADERS>\n<SIGNED_HEADERS>\n<PAYLOAD_HASH>`
// described in the package documentation.
//
// Every entry in headers is signed. Headers whose names differ only in case
// are merged into a single canonical line, with their values sorted and
// comma-joined.
func CanonicalRequest(method, path string, headers, params map[string]string, payload string) string {
	canonHeaders, signedNames := canonicalHeaders(headers)
	return strings.Join([]string{
		strings.ToUpper(method),
		canonicalURI(path),
		canonicalQuery(params),
		canonHeaders,
		signedNames,
		hashHex(payload),
	}, "\n")
}

// SignedHeaderNames returns the semicolon-delimited list of lower-cased
// header names, sorted, as it appears in both the canonical request and the
// Authorization header.
func SignedHeaderNames(headers map[string]string) string {
	_, signedNames := canonicalHeaders(headers)
	return signedNames
}

// canonicalURI percent-encodes path, leaving `/` intact as the segment
// separator. An empty path canonicalizes to `/`.
func canonicalURI(path string) string {
	if path == "" {
		return "/"
	}
	var buf strings.Builder
	buf.Grow(len(path))
	for i := 0; i < len(path); i++ {
		c := path[i]
		if noEscape(c) || c == '/' {
			buf.WriteByte(c)
			continue
		}
		buf.WriteByte('%')
		buf.WriteByte(upperhex[c>>4])
		buf.WriteByte(upperhex[c&0xf])
	}
	return buf.String()
}

func noEscape(c byte) bool {
	return (c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.' || c == '~'
}

// canonicalQuery encodes params as `name=value` pairs joined by `&`. Pairs
// are sorted by raw name, ties broken by raw value, before encoding.
func canonicalQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	type pair struct {
		name  string
		value string
	}
	pairs := make([]pair, 0, len(params))
	for name, value := range params {
		pairs = append(pairs, pair{name, value})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].name != pairs[j].name {
			return pairs[i].name < pairs[j].name
		}
		return pairs[i].value < pairs[j].value
	})
	encoded := make([]string, len(pairs))
	for i, p := range pairs {
		encoded[i] = escapeQuery(p.name) + "=" + escapeQuery(p.value)
	}
	return strings.Join(encoded, "&")
}

// escapeQuery percent-encodes a query name or value, leaving only RFC 3986
// unreserved characters (ALPHA / DIGIT / "-" / "." / "_" / "~") unescaped.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// canonicalHeaders returns the canonical header lines and the signed header
// names list. Header values have surrounding whitespace removed and inner
// whitespace runs collapsed to a single space. Lines are ordered by the
// lower-cased header name.
func canonicalHeaders(headers map[string]string) (string, string) {
	grouped := make(map[string][]string, len(headers))
	for name, value := range headers {
		lower := strings.ToLower(name)
		grouped[lower] = append(grouped[lower], trimSpaces(value))
	}
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf strings.Builder
	for _, name := range names {
		values := grouped[name]
		sort.Strings(values)
		buf.WriteString(name)
		buf.WriteByte(':')
		buf.WriteString(strings.Join(values, ","))
		buf.WriteByte('\n')
	}
	return buf.String(), strings.Join(names, ";")
}

// trimSpaces removes leading and trailing whitespace from value and replaces
// consecutive whitespace characters with a single space.
func trimSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// hashHex returns the lower-cased hex encoded sha256 value of s.
func hashHex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

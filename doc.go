/*
Package sigv4 computes AWS Signature Version 4 (sigv4) authentication material for an HTTP request. See authoritative
documentation at https://docs.aws.amazon.com/IAM/latest/UserGuide/signing-elements.html for details.

The package performs no network I/O and resolves no credentials. A request is described by a Config value; Sign returns
the complete header map to attach to it, and Build additionally returns every intermediate artifact (canonical request,
string to sign, signature). The individual pipeline stages are exposed as pure functions for callers that need them.

The sigv4 algorithm is briefly described here.

Step 1: make a canonical request string in the format `<METHOD>\n<URI>\n<QUERY>\n<HEADERS>\n<SIGNED_HEADERS>\n<PAYLOAD_HASH>`.

    - `METHOD`: HTTP method in upper case.
    - `URI`: the URL path component (between host and query), such as `/foo/bar`. It must be URI-encoded, with `/` kept
      as the segment separator. Use `/` if this component is empty.
    - `QUERY`: the URL query component (after the first `?`), such as `Foo=A&Bar=B`. Both name and value of each pair
      are percent-encoded, leaving only unreserved characters (letters, digits, `-`, `.`, `_`, `~`) unescaped. Pairs
      are sorted by name, and pairs with the same name are sorted by value. Use an empty string if there is no query
      component.
    - `HEADERS`: for each signed header, a `name:value` line terminated by newline (`\n`). Header names must be in
      lower-case and sorted. Leading and trailing spaces in values are removed, and runs of whitespace are replaced
      with a single space. Headers whose names differ only in case are merged into one line, values comma separated.
      The `host` header must be included.
    - `SIGNED_HEADERS`: semi-colon (`;`) delimited list of header names in `HEADERS`. Like `HEADERS`, it must be
      sorted and in lower-case.
    - `PAYLOAD_HASH`: the value of `hex(sha256(BODY))`, where `BODY` is the HTTP request body content. If the request
      body is empty, this is the hash value of an empty string (EmptyStringSHA256).

Step 2: calculate `hex(sha256(CANON_REQ_STR))`, where `CANON_REQ_STR` is result of step 1.

Step 3: calculate string to sign: `<ALGO>\n<TIMESTAMP>\n<CRED_SCOPE>\n<HASH>`, where:

    - `ALGO`: hardcoded `AWS4-HMAC-SHA256`
    - `TIMESTAMP`: the request time in `YYYYMMDDTHHMMSSZ` format
    - `CRED_SCOPE`: `<YYYYMMDD>/<region>/<service>/aws4_request`, where `<YYYYMMDD>` is date portion of `TIMESTAMP`
    - `HASH`: value from step 2

Step 4: calculate signature `<sig>` per pseudo code here:

    // Secret is user secret key
    // Date is YYYYMMDD date from CRED_SCOPE in step 3
    hDate = hmacsha256("AWS4"+Secret, Date)
    // region and service are the same values in CRED_SCOPE
    hRegion = hmacsha256(hDate, Region)
    hService = hmacsha256(hRegion, Service)
    hSig = hmacsha256(hService, "aws4_request")

    // StringToSign is value from step 3
    // sig is the final result for this step
    sig = hex(hmacsha256(hSig, StringToSign))

Step 5: add signature to the request headers:

    Authorization: AWS4-HMAC-SHA256 Credential=<ACCESS_ID>/<CRED_SCOPE>, SignedHeaders=<SIGNED_HEADERS>, Signature=<SIG>

The query string (presigned URL) variant of step 5 is not supported by this package.
*/
package sigv4

package sigv4

import (
	"strings"
	"testing"
)

func TestCanonicalRequestHeaders(t *testing.T) {
	headers := map[string]string{
		"FooInnerSpace":    "   inner      space    ",
		"FooLeadingSpace":  "    leading-space",
		"FooNoSpace":       "no-space",
		"FooTabSpace":      "\ttab-space\t",
		"FooTrailingSpace": "trailing-space    ",
		"FooWrappedSpace":  "   wrapped-space    ",
		"FooCase":          "value-b",
		"foocase":          "value-a",
		"Host":             "mockAPI.mock-region.amazonaws.com",
		"x-amz-date":       "20211020T124200Z",
	}

	expect := strings.Join([]string{
		`POST`,
		`/`,
		``,
		`foocase:value-a,value-b`,
		`fooinnerspace:inner space`,
		`fooleadingspace:leading-space`,
		`foonospace:no-space`,
		`footabspace:tab-space`,
		`footrailingspace:trailing-space`,
		`foowrappedspace:wrapped-space`,
		`host:mockAPI.mock-region.amazonaws.com`,
		`x-amz-date:20211020T124200Z`,
		``,
		`foocase;fooinnerspace;fooleadingspace;foonospace;footabspace;footrailingspace;foowrappedspace;host;x-amz-date`,
		`e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855`,
	}, "\n")

	actual := CanonicalRequest("POST", "/", headers, nil, "")
	if expect != actual {
		t.Errorf("expect %q but got %q", expect, actual)
	}
}

func TestCanonicalRequestQueryOrder(t *testing.T) {
	actual := CanonicalRequest("GET", "/", nil, map[string]string{"a": "1", "A": "2"}, "")
	if e, a := "A=2&a=1", strings.Split(actual, "\n")[2]; e != a {
		t.Errorf("expect canonical query %q but got %q", e, a)
	}
}

func TestCanonicalRequestQueryEscapes(t *testing.T) {
	params := map[string]string{
		"foo!*'()": "a b+c",
		"slash":    "/?=&",
	}
	actual := CanonicalRequest("GET", "/", nil, params, "")
	expect := "foo%21%2A%27%28%29=a%20b%2Bc&slash=%2F%3F%3D%26"
	if e, a := expect, strings.Split(actual, "\n")[2]; e != a {
		t.Errorf("expect canonical query %q but got %q", e, a)
	}
}

func TestCanonicalRequestEmptyPath(t *testing.T) {
	actual := CanonicalRequest("GET", "", nil, nil, "")
	if e, a := "/", strings.Split(actual, "\n")[1]; e != a {
		t.Errorf("expect canonical uri %q but got %q", e, a)
	}
}

func TestCanonicalRequestPathEscapes(t *testing.T) {
	actual := CanonicalRequest("GET", "/ሴ/example space/-._~AZaz09", nil, nil, "")
	expect := "/%E1%88%B4/example%20space/-._~AZaz09"
	if e, a := expect, strings.Split(actual, "\n")[1]; e != a {
		t.Errorf("expect canonical uri %q but got %q", e, a)
	}
}

func TestCanonicalRequestMethodUpperCase(t *testing.T) {
	actual := CanonicalRequest("post", "/", nil, nil, "")
	if e, a := "POST", strings.Split(actual, "\n")[0]; e != a {
		t.Errorf("expect method %q but got %q", e, a)
	}
}

func TestCanonicalRequestEmptyPayloadHash(t *testing.T) {
	actual := CanonicalRequest("GET", "/", nil, nil, "")
	lines := strings.Split(actual, "\n")
	if e, a := EmptyStringSHA256, lines[len(lines)-1]; e != a {
		t.Errorf("expect payload hash %q but got %q", e, a)
	}
}

func TestSignedHeaderNames(t *testing.T) {
	headers := map[string]string{
		"Content-Type": "application/json",
		"HOST":         "example.amazonaws.com",
		"x-amz-date":   "20150830T123600Z",
	}
	if e, a := "content-type;host;x-amz-date", SignedHeaderNames(headers); e != a {
		t.Errorf("expect %q but got %q", e, a)
	}

	collided := map[string]string{
		"X-Foo": "1",
		"x-foo": "2",
	}
	if e, a := "x-foo", SignedHeaderNames(collided); e != a {
		t.Errorf("expect %q but got %q", e, a)
	}
}

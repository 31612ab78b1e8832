package sigv4

import (
	"testing"
	gotime "time"
)

func BenchmarkDeriveKey(b *testing.B) {
	b.ReportAllocs()

	t := NewTime(gotime.Now())
	for i := 0; i < b.N; i++ {
		DeriveKey("SECRET", "dynamodb", "us-east-1", t.TimeFormat())
	}
}

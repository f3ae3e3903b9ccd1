package mailaddr

import (
	"strings"
	"testing"
)

func BenchmarkValidate(b *testing.B) {
	long := strings.Repeat("a", 60) + "@" + strings.Repeat("b", 60) + "." + strings.Repeat("c", 60) + ".com"

	benchmarks := []struct {
		name    string
		address string
	}{
		{name: "valid", address: "customer/department=shipping@example.com"},
		{name: "valid_long", address: long},
		{name: "invalid_local", address: "ab..cd@example.com"},
		{name: "invalid_domain", address: "abc@x.y-.z"},
		{name: "invalid_ascii", address: "abc@exámple.com"},
	}

	for _, bench := range benchmarks {
		b.Run(bench.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Validate(bench.address)
			}
		})
	}
}

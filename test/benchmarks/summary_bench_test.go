package benchmarks

import (
	"fmt"
	"testing"

	"github.com/tecops/assetdesk/internal/core/domain"
)

func buildDeviceRecords(n int) []domain.DeviceRecord {
	owners := []string{"company", "personal", ""}
	states := []string{"compliant", "noncompliant", "unknown"}
	systems := []string{"Windows", "macOS", "iOS", "Android"}

	records := make([]domain.DeviceRecord, n)
	for i := 0; i < n; i++ {
		records[i] = domain.DeviceRecord{
			"id":              fmt.Sprintf("dev-%d", i),
			"ownerType":       owners[i%len(owners)],
			"complianceState": states[i%len(states)],
			"operatingSystem": systems[i%len(systems)],
			"osVersion":       fmt.Sprintf("%d.%d", 10+i%5, i%10),
		}
		if i%3 == 1 {
			records[i]["userPrincipalName"] = fmt.Sprintf("user%d@example.com", i)
		}
	}
	return records
}

func BenchmarkSummarize(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("devices_%d", size), func(b *testing.B) {
			records := buildDeviceRecords(size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = domain.Summarize(records)
			}
		})
	}
}

func BenchmarkInferOwner(b *testing.B) {
	records := buildDeviceRecords(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = domain.InferOwner(records[i%len(records)])
	}
}

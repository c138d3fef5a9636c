package jointstate_test

import (
	"testing"
)

// BenchmarkProcessDefinition_BruteForce measures the alphabet^8 reference scan.
func BenchmarkProcessDefinition_BruteForce(b *testing.B) {
	m := mustHKY(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.ProcessDefinition(sepN50, false); err != nil {
			b.Fatalf("ProcessDefinition failed: %v", err)
		}
	}
}

// BenchmarkProcessDefinition_Structured measures the direct enumeration.
func BenchmarkProcessDefinition_Structured(b *testing.B) {
	m := mustHKY(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.StructuredProcessDefinition(sepN50, false); err != nil {
			b.Fatalf("StructuredProcessDefinition failed: %v", err)
		}
	}
}

// BenchmarkGenerator measures dense 256×256 materialization.
func BenchmarkGenerator(b *testing.B) {
	m := mustHKY(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Generator(sepN50); err != nil {
			b.Fatalf("Generator failed: %v", err)
		}
	}
}

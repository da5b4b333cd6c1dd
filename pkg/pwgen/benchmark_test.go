package pwgen_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/pwgen/pkg/pwgen"
)

func BenchmarkGenerate(b *testing.B) {
	b.Run("Default", func(b *testing.B) {
		g := pwgen.New(pwgen.WithSource(pwgen.NewSeededSource(1)))
		req := pwgen.DefaultRequest()
		b.ReportAllocs()
		for b.Loop() {
			_, _ = g.Generate(req)
		}
	})

	b.Run("Lowercase", func(b *testing.B) {
		g := pwgen.New(pwgen.WithSource(pwgen.NewSeededSource(1)))
		req := pwgen.Request{Length: 16}
		b.ReportAllocs()
		for b.Loop() {
			_, _ = g.Generate(req)
		}
	})

	b.Run("CryptoSource", func(b *testing.B) {
		g := pwgen.New()
		req := pwgen.DefaultRequest()
		b.ReportAllocs()
		for b.Loop() {
			_, _ = g.Generate(req)
		}
	})
}

func BenchmarkGenerateN(b *testing.B) {
	g := pwgen.New(pwgen.WithSource(pwgen.NewSeededSource(1)))
	ctx := context.Background()
	req := pwgen.DefaultRequest()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = g.GenerateN(ctx, 10, req)
	}
}

package crafting

import (
	"context"
	"testing"
)

func BenchmarkRecipeSatisfiedBy(b *testing.B) {
	ctx := context.Background()

	b.Run("cached pair", func(b *testing.B) {
		f := newFixture(b, Options{})
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			f.resolver.RecipeSatisfiedBy(ctx, "wood", "stone")
		}
	})

	b.Run("uncached pair", func(b *testing.B) {
		f := newFixture(b, Options{PairCacheSize: 1})
		pairs := [][2]string{{"wood", "stone"}, {"water", "stone"}, {"stick", "wood"}, {"wood", "wood"}}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			p := pairs[i%len(pairs)]
			f.resolver.RecipeSatisfiedBy(ctx, p[0], p[1])
		}
	})
}

func BenchmarkAttemptCombine(b *testing.B) {
	ctx := context.Background()
	f := newFixture(b, Options{DepletionEnabled: true})
	host := &fakeSpawner{}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// after the first pass every combine reports already made
		f.resolver.AttemptCombine(ctx, "water", "stone", origin, host)
		host.spawned = host.spawned[:0]
		host.shown = host.shown[:0]
	}
}

func BenchmarkLockedButBuildable(b *testing.B) {
	ctx := context.Background()
	f := newFixture(b, Options{})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.resolver.LockedButBuildableItems(ctx)
	}
}

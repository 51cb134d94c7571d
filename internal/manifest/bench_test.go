package manifest_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/manifest"
	"github.com/g5becks/mdxkit/internal/registry"
)

func BenchmarkManifestLoad100Docs(b *testing.B) {
	dir := b.TempDir()
	if err := manifest.Generate(benchmarkRegistry(b, 100), manifest.Options{}).Save(dir); err != nil {
		b.Fatalf("save failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := manifest.Load(dir); err != nil {
			b.Fatalf("load failed: %v", err)
		}
	}
}

func BenchmarkManifestGenerate100Docs(b *testing.B) {
	reg := benchmarkRegistry(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = manifest.Generate(reg, manifest.Options{})
	}
}

func BenchmarkManifestGenerate1000Docs(b *testing.B) {
	reg := benchmarkRegistry(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = manifest.Generate(reg, manifest.Options{})
	}
}

func benchmarkRegistry(b *testing.B, count int) *registry.Registry {
	b.Helper()

	docs := make(map[string]string, count)
	pages := make([]string, 0, count)
	for i := range count {
		path := fmt.Sprintf("guides/page-%04d", i)
		pages = append(pages, path)
		docs[path] = fmt.Sprintf(`---
title: Page %d
description: Benchmark page %d
---

<Note>Read this first.</Note>

## Section %d

Content for page %d.

<Steps>
<Step title="One">Do the first thing.</Step>
<Step title="Two">Do the second thing.</Step>
</Steps>
`, i, i, i, i)
	}

	reg, err := registry.Build(context.Background(), registry.Options{
		Nav:  config.Nav{Groups: []config.NavGroup{{Group: "Guides", Pages: pages}}},
		Docs: docs,
	})
	if err != nil {
		b.Fatalf("build failed: %v", err)
	}
	return reg
}

package manifest_test

import (
	"context"
	"testing"

	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/manifest"
	"github.com/g5becks/mdxkit/internal/parser"
	"github.com/g5becks/mdxkit/internal/registry"
)

const quickstart = `---
title: Quickstart
sidebarTitle: Quick
description: Get going fast
icon: rocket
---

<Note>Requires Go 1.25.</Note>

## Install

<CardGroup cols={2}>
<Card title="CLI" href="/cli">Use the CLI.</Card>
<Card title="API" href="/api">Use the API.</Card>
</CardGroup>

## Configure

<Tabs>
<Tab title="macOS">
<Tip>Use Homebrew.</Tip>
</Tab>
</Tabs>
`

const spec = `openapi: 3.0.0
info:
  title: Petstore
  version: 2.1.0
tags:
  - name: pets
paths:
  /pets:
    get:
      operationId: listPets
      tags: [pets]
      responses:
        "200":
          description: ok
`

func buildRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg, err := registry.Build(context.Background(), registry.Options{
		Nav: config.Nav{Groups: []config.NavGroup{
			{Group: "Getting Started", Tab: "Guides", Pages: []string{"quickstart"}},
		}},
		Docs:  map[string]string{"quickstart": quickstart, "orphan": "Just text.\n"},
		Specs: []registry.SpecSource{{Prefix: "api", Content: spec}, {Prefix: "bad", Content: "not: [valid"}},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return reg
}

func TestGenerateDocs(t *testing.T) {
	m := manifest.Generate(buildRegistry(t), manifest.Options{Site: manifest.Site{Title: "Acme"}})

	if m.Site.Title != "Acme" {
		t.Errorf("Site.Title = %q, want %q", m.Site.Title, "Acme")
	}

	if len(m.Docs) != 2 {
		t.Fatalf("Docs count = %d, want 2", len(m.Docs))
	}

	doc, ok := m.Doc("quickstart")
	if !ok {
		t.Fatal("Doc 'quickstart' not found")
	}

	if doc.Title != "Quickstart" || doc.SidebarTitle != "Quick" {
		t.Errorf("titles = %q/%q, want Quickstart/Quick", doc.Title, doc.SidebarTitle)
	}
	if doc.Icon != "rocket" || doc.Description != "Get going fast" {
		t.Errorf("icon/description = %q/%q", doc.Icon, doc.Description)
	}
	if doc.Group != "Getting Started" || doc.Tab != "Guides" {
		t.Errorf("group/tab = %q/%q, want Getting Started/Guides", doc.Group, doc.Tab)
	}

	wantNodes := map[parser.NodeKind]int{
		parser.KindCallout:   2,
		parser.KindCardGroup: 1,
		parser.KindCard:      2,
		parser.KindTabs:      1,
	}
	for kind, want := range wantNodes {
		if got := doc.Nodes[kind]; got != want {
			t.Errorf("Nodes[%s] = %d, want %d", kind, got, want)
		}
	}

	if len(doc.Headers) != 2 || doc.Headers[0].ID != "install" || doc.Headers[1].ID != "configure" {
		t.Errorf("Headers = %+v, want install and configure", doc.Headers)
	}
	if doc.Headers[0].Line != 10 {
		t.Errorf("Headers[0].Line = %d, want 10", doc.Headers[0].Line)
	}

	orphan, _ := m.Doc("orphan")
	if orphan.Group != "" || orphan.Lines != 2 {
		t.Errorf("orphan = %+v, want no group and 2 lines", orphan)
	}
	if orphan.Title != "" || orphan.Summary != "Just text." {
		t.Errorf("orphan title/summary = %q/%q, want empty/%q", orphan.Title, orphan.Summary, "Just text.")
	}
}

func TestGenerateSpecsAndProblems(t *testing.T) {
	m := manifest.Generate(buildRegistry(t), manifest.Options{})

	if len(m.Specs) != 1 {
		t.Fatalf("Specs count = %d, want 1", len(m.Specs))
	}

	s := m.Specs[0]
	if s.Prefix != "api" || s.Title != "Petstore" || s.Version != "2.1.0" || s.Operations != 1 {
		t.Errorf("Specs[0] = %+v", s)
	}

	if len(m.Endpoints) != 1 || m.Endpoints[0] != "api/list-pets" {
		t.Errorf("Endpoints = %v, want [api/list-pets]", m.Endpoints)
	}

	if len(m.Problems) != 1 || m.Problems[0].Prefix != "bad" || m.Problems[0].Error == "" {
		t.Errorf("Problems = %+v, want one for 'bad'", m.Problems)
	}

	if len(m.SearchIndex) != 2 {
		t.Errorf("SearchIndex count = %d, want 2 (one nav page, one operation)", len(m.SearchIndex))
	}
}

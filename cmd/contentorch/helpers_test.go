package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	contentorch "github.com/sabers13/agentic-ai-content-orchestrator"
)

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

// sampleDraft is a generator-style draft with front matter, a model-written
// TOC, a preface line, an FAQ block and an SEO postscript.
const sampleDraft = `---
title: What Is a Computer?
slug: what-is-a-computer
tags: [hardware]
---
Proposed SEO title: What Is a Computer?
Table of Contents
- Introduction
- Parts

## Introduction
A computer **computes** things.

## Parts
Some parts.

## FAQs
Is it hard?
No.

Optional SEO Enhancements
- add keywords
`

// sampleJSONDraft mirrors the generation step's JSON artifacts.
const sampleJSONDraft = `{
  "title": "Cloud Basics",
  "slug": "cloud-basics",
  "brief": "cloud basics",
  "tone": "friendly",
  "categories": ["Guides"],
  "content": "H2: Introduction\nThe cloud is a network.\n\nH2: Pricing\nPay as you go.",
  "seo_score": 71
}`

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// testEnv returns an environment with captured output and a fixed clock.
func testEnv(stdin string) (*Environment, *syncBuffer, *syncBuffer) {
	stdout, stderr := &syncBuffer{}, &syncBuffer{}
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// mockFormatter records calls and returns canned results.
type mockFormatter struct {
	mu    sync.Mutex
	calls []contentorch.Input
	err   error
	delay time.Duration
}

func (m *mockFormatter) Format(ctx context.Context, input contentorch.Input) (*contentorch.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}

	postSlug := input.Slug
	if postSlug == "" {
		postSlug = contentorch.PostSlug(input.Title)
	}
	return &contentorch.Result{
		Title:    input.Title,
		Slug:     postSlug,
		Markdown: input.Markdown,
		HTML:     "<p>" + input.Markdown + "</p>",
	}, nil
}

func (m *mockFormatter) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

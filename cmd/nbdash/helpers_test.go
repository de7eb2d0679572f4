package main

// Notes:
// - Shared fixtures for CLI tests: a minimal notebook document, a test
//   environment with captured output and a fixed clock, and a stub converter.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	nbdash "github.com/alnah/go-nbdash"
)

// sampleNotebook has a title heading, a paragraph and no outputs.
const sampleNotebook = `{
 "cells": [
  {"cell_type": "markdown", "metadata": {}, "source": ["# Sales Review\n", "\n", "Numbers for **Q3**."]},
  {"cell_type": "code", "execution_count": 1, "metadata": {}, "source": ["print(1)"],
   "outputs": [{"output_type": "stream", "name": "stdout", "text": ["1\n"]}]}
 ],
 "metadata": {"kernelspec": {"display_name": "Python 3", "language": "python", "name": "python3"}},
 "nbformat": 4,
 "nbformat_minor": 5
}`

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

// testEnv returns an Environment writing to in-memory buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return env, &stdout, &stderr
}

// writeTestFile creates path (and its parent directories) with content.
func writeTestFile(t *testing.T, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// readTestFile returns the content of path or fails the test.
func readTestFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// stubConverter returns a fixed result or error.
type stubConverter struct {
	html  []byte
	err   error
	input nbdash.Input
}

func (s *stubConverter) Convert(_ context.Context, input nbdash.Input) (*nbdash.ConvertResult, error) {
	s.input = input
	if s.err != nil {
		return nil, s.err
	}
	return &nbdash.ConvertResult{HTML: s.html, Title: "stub"}, nil
}

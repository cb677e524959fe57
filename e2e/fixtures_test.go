//go:build e2e && unix

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	browserScript = "browser.sh"
	openedFile    = "opened.txt"
	indexPath     = "/Salesforce-RAG/rag/rag-library.json"
)

const defaultLibrary = `{"files":[
  {"title":"Apex Basics","url":"apex.html","description":"Classes, triggers and governor limits"},
  {"title":"Flows","url":"/rag/flows.html","description":"Declarative automation"},
  {"title":"Integration Patterns","url":"integration.html","summary":"Callouts from Apex"}
]}`

// CreateTestWorkspace creates a temporary working directory holding a
// config file and a fake browser that records the URL it was asked to open
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir

	script := fmt.Sprintf("#!/bin/sh\necho \"$1\" > %q\n", filepath.Join(tmpDir, openedFile))
	if err := os.WriteFile(filepath.Join(tmpDir, browserScript), []byte(script), 0o755); err != nil {
		return "", err
	}
	// mouse off keeps the PTY output free of tracking sequences
	cfg := "[search]\ndebounce_ms = 50\n\n[ui]\nmouse = false\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ".docsearch.toml"), []byte(cfg), 0o644); err != nil {
		return "", err
	}
	return tmpDir, nil
}

// ServeLibrary serves body as the site's search index and returns the site origin
func (tf *TUITestFramework) ServeLibrary(body string) string {
	mux := http.NewServeMux()
	mux.HandleFunc(indexPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
	tf.site = httptest.NewServer(mux)
	return tf.site.URL
}

// OpenedURL waits for the fake browser to record a URL
func (tf *TUITestFramework) OpenedURL(timeout time.Duration) string {
	tf.t.Helper()
	path := filepath.Join(tf.workspace, openedFile)
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
			return strings.TrimSpace(string(data))
		}
		time.Sleep(25 * time.Millisecond)
	}
	return ""
}

// Package filestore persists low-churn feature state as flat JSON
// documents on disk.
//
// The shirt-design vote and the merchandise catalog see a handful of
// writes per day, so each lives in a single JSON file rather than the
// database. A Collection serializes all access to its file through a
// mutex and writes via temp-file-plus-rename, which keeps the document
// consistent across concurrent handlers and safe against a crash
// mid-write. Missing files lazily resolve to a default document.
//
// This store is deliberately single-process: the API server is the only
// writer. Anything needing multi-writer semantics belongs in the
// database instead.
package filestore

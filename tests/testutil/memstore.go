package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/conquiguias/conquiguias-api/internal/store"
)

// MemStore is an in-memory store.Store with the same optimistic-concurrency
// behavior as the GitHub-backed implementation: stale or missing version
// tokens on writes to existing paths are conflicts.
type MemStore struct {
	mu   sync.Mutex
	docs map[string]memDoc
	rev  int
}

type memDoc struct {
	content []byte
	version store.Version
}

func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]memDoc)}
}

// Seed puts a JSON document in place without version checks.
func (m *MemStore) Seed(path string, v any) {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rev++
	m.docs[path] = memDoc{content: content, version: store.Version(fmt.Sprintf("rev-%d", m.rev))}
}

// SeedRaw puts raw bytes in place, for malformed-document cases.
func (m *MemStore) SeedRaw(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rev++
	m.docs[path] = memDoc{content: content, version: store.Version(fmt.Sprintf("rev-%d", m.rev))}
}

// Contents returns the stored bytes for a path, nil when absent.
func (m *MemStore) Contents(path string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc, ok := m.docs[path]; ok {
		return doc.content
	}
	return nil
}

func (m *MemStore) Get(ctx context.Context, path string) (*store.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[path]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &store.Document{Content: doc.content, Version: doc.version}, nil
}

func (m *MemStore) PutJSON(ctx context.Context, path string, v any, version store.Version, message string) (store.Version, error) {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return m.put(path, content, version)
}

func (m *MemStore) PutBlob(ctx context.Context, path, contentBase64, message string) (store.Version, error) {
	return m.put(path, []byte(contentBase64), "")
}

func (m *MemStore) Delete(ctx context.Context, path string, version store.Version, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[path]
	if !ok {
		return store.ErrNotFound
	}
	if doc.version != version {
		return store.ErrVersionConflict
	}
	delete(m.docs, path)
	return nil
}

func (m *MemStore) List(ctx context.Context, dir string) ([]store.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefix := strings.TrimSuffix(dir, "/") + "/"
	var entries []store.Entry
	for path := range m.docs {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := strings.TrimPrefix(path, prefix)
		if strings.Contains(rest, "/") {
			continue
		}
		entries = append(entries, store.Entry{
			Name:        rest,
			Path:        path,
			DownloadURL: "https://raw.example.com/" + path,
			Type:        "file",
		})
	}
	if entries == nil {
		return nil, store.ErrNotFound
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (m *MemStore) put(path string, content []byte, version store.Version) (store.Version, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.docs[path]
	if ok && existing.version != version {
		return "", store.ErrVersionConflict
	}
	if !ok && version != "" {
		return "", store.ErrVersionConflict
	}

	m.rev++
	next := store.Version(fmt.Sprintf("rev-%d", m.rev))
	m.docs[path] = memDoc{content: content, version: next}
	return next, nil
}

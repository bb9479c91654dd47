package lsp

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

type document struct {
	uri     protocol.DocumentUri
	text    string
	version protocol.Integer
}

// documentStore holds the text of open documents. Edits to one document
// are serialized by the store's lock; readers get a stable snapshot.
type documentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[protocol.DocumentUri]*document)}
}

func (s *documentStore) open(uri protocol.DocumentUri, text string, version protocol.Integer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{uri: uri, text: text, version: version}
}

func (s *documentStore) close(uri protocol.DocumentUri) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// get returns a copy of the document so callers never observe a
// concurrent change.
func (s *documentStore) get(uri protocol.DocumentUri) (document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return document{}, false
	}
	return *doc, true
}

// change applies content changes in order. Whole-document changes replace
// the text; ranged changes splice it. It reports false for unknown URIs.
func (s *documentStore) change(uri protocol.DocumentUri, version protocol.Integer, changes []any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[uri]
	if !ok {
		return false
	}

	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			doc.text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				doc.text = c.Text
				continue
			}
			li := newLineIndex(doc.text)
			start, end := li.offset(c.Range.Start), li.offset(c.Range.End)
			if start > end {
				start, end = end, start
			}
			doc.text = doc.text[:start] + c.Text + doc.text[end:]
		}
	}
	doc.version = version
	return true
}

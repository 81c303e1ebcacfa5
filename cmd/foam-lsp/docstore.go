package main

import (
	"sync"

	"github.com/foam-tools/foamedit"
)

// document is one open editor buffer. file is nil while the text does
// not parse; err then holds the parse error.
type document struct {
	uri  string
	text string
	file *foamedit.File
	err  error
}

type documentStore struct {
	mu   sync.Mutex
	docs map[string]*document
}

func (ds *documentStore) put(uri, text string) *document {
	doc := &document{uri: uri, text: text}
	doc.file, doc.err = foamedit.Parse(text)
	ds.mu.Lock()
	ds.docs[uri] = doc
	ds.mu.Unlock()
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.docs[uri]
}

func (ds *documentStore) drop(uri string) {
	ds.mu.Lock()
	delete(ds.docs, uri)
	ds.mu.Unlock()
}

package storage

import (
	"context"
	"errors"
)

// TextSource loads the raw recipe file.
type TextSource interface {
	Load(ctx context.Context) ([]byte, error)
}

// ListSink stores an exported shopping list.
type ListSink interface {
	Save(ctx context.Context, data []byte) error
}

// TestTextSource is a simple in-memory implementation for testing
type TestTextSource struct {
	data []byte
	err  error
}

func NewTestTextSource(data []byte) *TestTextSource {
	return &TestTextSource{data: data}
}

func NewTestTextSourceWithError() *TestTextSource {
	return &TestTextSource{err: errors.New("not found")}
}

func (t *TestTextSource) Load(ctx context.Context) ([]byte, error) {
	if t.err != nil {
		return nil, t.err
	}
	return t.data, nil
}

// TestListSink keeps every saved export in memory for testing
type TestListSink struct {
	Saved [][]byte
	err   error
}

func NewTestListSink() *TestListSink {
	return &TestListSink{}
}

func NewTestListSinkWithError() *TestListSink {
	return &TestListSink{err: errors.New("disk full")}
}

func (t *TestListSink) Save(ctx context.Context, data []byte) error {
	if t.err != nil {
		return t.err
	}
	t.Saved = append(t.Saved, append([]byte(nil), data...))
	return nil
}

// Last returns the most recent export, or nil when nothing was saved.
func (t *TestListSink) Last() []byte {
	if len(t.Saved) == 0 {
		return nil
	}
	return t.Saved[len(t.Saved)-1]
}

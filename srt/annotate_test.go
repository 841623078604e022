package srt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

func testChunks(n int) []Chunk {
	chunks := make([]Chunk, n)
	for i := range chunks {
		chunks[i] = Chunk{
			Start: float64(i * 10),
			End:   float64(i*10 + 8),
			Text:  fmt.Sprintf("chunk %d", i),
		}
	}
	return chunks
}

func TestAnnotateOrderPreserved(t *testing.T) {
	chunks := testChunks(8)

	// Finish order is scrambled; output order must not be.
	keywords := func(ctx context.Context, text string) ([]string, error) {
		time.Sleep(time.Duration(len(text)%3) * time.Millisecond)
		return []string{"kw:" + text}, nil
	}
	summary := func(ctx context.Context, text string) (string, error) {
		return "sum:" + text, nil
	}

	out := Annotate(context.Background(), chunks, keywords, summary, AnnotateOptions{MaxConcurrent: 4})
	if len(out) != len(chunks) {
		t.Fatalf("got %d chunks, want %d", len(out), len(chunks))
	}
	for i, c := range out {
		want := fmt.Sprintf("chunk %d", i)
		if c.Text != want {
			t.Errorf("chunk %d text = %q, want %q", i, c.Text, want)
		}
		if len(c.Keywords) != 1 || c.Keywords[0] != "kw:"+want {
			t.Errorf("chunk %d keywords = %v", i, c.Keywords)
		}
		if c.Summary != "sum:"+want {
			t.Errorf("chunk %d summary = %q", i, c.Summary)
		}
	}
}

func TestAnnotateFailuresAreAbsorbed(t *testing.T) {
	chunks := testChunks(5)

	keywords := func(ctx context.Context, text string) ([]string, error) {
		return nil, errors.New("provider down")
	}
	summary := func(ctx context.Context, text string) (string, error) {
		if strings.HasSuffix(text, "2") {
			return "", errors.New("provider down")
		}
		return "sum:" + text, nil
	}

	out := Annotate(context.Background(), chunks, keywords, summary, AnnotateOptions{MaxConcurrent: 2})
	if len(out) != len(chunks) {
		t.Fatalf("got %d chunks, want %d", len(out), len(chunks))
	}
	for i, c := range out {
		if c.Keywords == nil || len(c.Keywords) != 0 {
			t.Errorf("chunk %d keywords = %#v, want explicit empty slice", i, c.Keywords)
		}
		if i == 2 {
			if c.Summary != "" {
				t.Errorf("chunk 2 summary = %q, want empty", c.Summary)
			}
			continue
		}
		if c.Summary == "" {
			t.Errorf("chunk %d summary empty, want populated", i)
		}
	}
}

func TestAnnotateCancellation(t *testing.T) {
	chunks := testChunks(6)
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	completed := 0

	keywords := func(ctx context.Context, text string) ([]string, error) {
		if strings.HasSuffix(text, "0") || strings.HasSuffix(text, "1") {
			mu.Lock()
			completed++
			mu.Unlock()
			return []string{text}, nil
		}
		cancel()
		<-ctx.Done()
		return nil, ctx.Err()
	}
	summary := func(ctx context.Context, text string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "sum", nil
	}

	out := Annotate(ctx, chunks, keywords, summary, AnnotateOptions{MaxConcurrent: 1})
	if len(out) != len(chunks) {
		t.Fatalf("got %d chunks, want %d", len(out), len(chunks))
	}

	// The first two chunks finished before cancellation and keep their
	// annotations; later ones stay un-annotated rather than garbled.
	for i := 0; i < 2; i++ {
		if len(out[i].Keywords) != 1 {
			t.Errorf("chunk %d lost completed annotation: %#v", i, out[i].Keywords)
		}
	}
	for i := 3; i < len(out); i++ {
		if out[i].Keywords != nil || out[i].Summary != "" {
			t.Errorf("chunk %d annotated after cancellation: %+v", i, out[i])
		}
	}
	mu.Lock()
	defer mu.Unlock()
	if completed != 2 {
		t.Errorf("completed = %d, want 2", completed)
	}
}

func TestAnnotateEmptyInput(t *testing.T) {
	out := Annotate(context.Background(), nil, nil, nil, AnnotateOptions{})
	if len(out) != 0 {
		t.Fatalf("got %d chunks, want 0", len(out))
	}
}

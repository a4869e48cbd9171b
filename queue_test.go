package csslex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQueue(t *testing.T) {
	toks := Tokenize("a b c d e")

	q := newQueue(2)
	q.push(toks[0])
	q.push(toks[1])
	if got := q.pop(); got != toks[0] {
		t.Errorf("pop() = %v, want %v", got, toks[0])
	}
	// Wraps around the end of the ring, then forces it to grow.
	for _, tok := range toks[2:] {
		q.push(tok)
	}
	if got, want := q.len(), len(toks)-1; got != want {
		t.Fatalf("len() = %d, want %d", got, want)
	}
	for i, want := range toks[1:] {
		if got := q.get(i); got != want {
			t.Errorf("get(%d) = %v, want %v", i, got, want)
		}
	}
	var got []Token
	for q.len() > 0 {
		got = append(got, q.pop())
	}
	if diff := cmp.Diff(toks[1:], got); diff != "" {
		t.Errorf("popping queue returned diff (-want, +got): %s", diff)
	}
}

func TestNewQueueCapacity(t *testing.T) {
	for size, want := range map[int]int{0: 1, 1: 1, 3: 4, 4: 4, 5: 8} {
		if got := len(newQueue(size).ring); got != want {
			t.Errorf("newQueue(%d) ring size %d, want %d", size, got, want)
		}
	}
}

func TestQueuePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(q *queue)
	}{
		{"pop empty", func(q *queue) { q.pop() }},
		{"get empty", func(q *queue) { q.get(0) }},
		{"get negative", func(q *queue) {
			q.push(Token{})
			q.get(-1)
		}},
		{"get past tail", func(q *queue) {
			q.push(Token{})
			q.get(1)
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic")
				}
			}()
			test.fn(newQueue(1))
		})
	}
}

package util

import (
	"strings"
	"testing"
)

func TestUniqueQueueEnqueueDedup(t *testing.T) {
	q := NewUniqueQueue[string, int]()

	if added := q.Enqueue("a", 1); !added {
		t.Errorf("Enqueue(a, 1) = %v, want true", added)
	}
	if added := q.Enqueue("a", 2); added {
		t.Errorf("Enqueue(a, 2) = %v, want false (chave repetida)", added)
	}
	if got := q.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	_, v, ok := q.Dequeue()
	if !ok || v != 2 {
		t.Errorf("Dequeue() = (%d, %v), want (2, true): valor deve ser o atualizado", v, ok)
	}
}

func TestUniqueQueueOrder(t *testing.T) {
	q := NewUniqueQueue[string, int]()
	q.Enqueue("primeiro", 1)
	q.Enqueue("segundo", 2)
	q.Enqueue("terceiro", 3)

	want := []string{"primeiro", "segundo", "terceiro"}
	for _, w := range want {
		k, _, ok := q.Dequeue()
		if !ok || k != w {
			t.Errorf("Dequeue() = (%q, %v), want (%q, true)", k, ok, w)
		}
	}
	if _, _, ok := q.Dequeue(); ok {
		t.Errorf("Dequeue() em fila vazia = true, want false")
	}
}

func TestUniqueQueueRemoveWhere(t *testing.T) {
	q := NewUniqueQueue[string, int]()
	q.Enqueue("room_1:0", 0)
	q.Enqueue("room_1:1", 1)
	q.Enqueue("room_2:0", 2)

	removed := q.RemoveWhere(func(k string) bool { return strings.HasPrefix(k, "room_1:") })
	if removed != 2 {
		t.Errorf("RemoveWhere(room_1) = %d, want 2", removed)
	}
	if q.Contains("room_1:0") || q.Contains("room_1:1") {
		t.Errorf("fila ainda contém chaves canceladas de room_1")
	}
	if !q.Contains("room_2:0") {
		t.Errorf("fila perdeu chave de room_2 que não devia ser removida")
	}
	if got := q.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	// a ordem dos sobreviventes se mantém
	if k, _, ok := q.Dequeue(); !ok || k != "room_2:0" {
		t.Errorf("Dequeue() = (%q, %v), want (room_2:0, true)", k, ok)
	}
}

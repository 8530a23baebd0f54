package util

import "sync"

// UniqueQueue é uma fila thread-safe que garante no máximo uma entrada por
// chave. Usada para enfileirar trabalho por espaço (texturas de obras,
// descarte de modelos) sem duplicar pedidos quando o jogador oscila entre
// duas salas.
type UniqueQueue[K comparable, V any] struct {
	mu      sync.Mutex
	items   []entry[K, V]
	present map[K]bool
}

type entry[K comparable, V any] struct {
	Key   K
	Value V
}

// NewUniqueQueue cria uma fila vazia.
func NewUniqueQueue[K comparable, V any]() *UniqueQueue[K, V] {
	return &UniqueQueue[K, V]{
		items:   make([]entry[K, V], 0, 32),
		present: make(map[K]bool),
	}
}

// Enqueue adiciona um item se a chave ainda não estiver na fila; se já
// estiver, apenas atualiza o valor. Retorna true quando o item é novo.
func (q *UniqueQueue[K, V]) Enqueue(key K, value V) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.present[key] {
		for i := range q.items {
			if q.items[i].Key == key {
				q.items[i].Value = value
				break
			}
		}
		return false
	}

	q.items = append(q.items, entry[K, V]{Key: key, Value: value})
	q.present[key] = true
	return true
}

// Dequeue remove e retorna o item mais antigo. O booleano indica se havia item.
func (q *UniqueQueue[K, V]) Dequeue() (K, V, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	e := q.items[0]
	q.items = q.items[1:]
	delete(q.present, e.Key)
	return e.Key, e.Value, true
}

// RemoveWhere descarta todas as entradas cuja chave satisfaz o predicado e
// retorna quantas foram removidas. É o caminho de cancelamento: quando um
// espaço é removido do mundo, seus pedidos pendentes saem da fila antes de
// gerar trabalho.
func (q *UniqueQueue[K, V]) RemoveWhere(match func(K) bool) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.items[:0]
	removed := 0
	for _, e := range q.items {
		if match(e.Key) {
			delete(q.present, e.Key)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	q.items = kept
	return removed
}

// Contains verifica se uma chave está na fila.
func (q *UniqueQueue[K, V]) Contains(key K) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.present[key]
}

// Len retorna o número de itens na fila.
func (q *UniqueQueue[K, V]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Clear esvazia a fila.
func (q *UniqueQueue[K, V]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = q.items[:0]
	q.present = make(map[K]bool)
}

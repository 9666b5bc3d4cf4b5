// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package compile

import "iter"

// registry is an insertion-ordered mapping from generated type name to its
// body. Re-registering an existing name replaces the body but keeps the
// original position, so later registrations never reorder earlier ones.
type registry[V any] struct {
	keys   []string
	values map[string]V
}

func newRegistry[V any]() *registry[V] {
	return &registry[V]{values: make(map[string]V)}
}

func (r *registry[V]) set(key string, value V) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *registry[V]) len() int {
	return len(r.keys)
}

// entries iterates the registry in insertion order.
func (r *registry[V]) entries() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, key := range r.keys {
			if !yield(key, r.values[key]) {
				return
			}
		}
	}
}

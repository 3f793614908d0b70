package services

import "go.mongodb.org/mongo-driver/bson/primitive"

type entry interface {
	EntryID() primitive.ObjectID
}

// findEntry returns the position of id in items, or false when absent.
func findEntry[T entry](items []T, id primitive.ObjectID) (int, bool) {
	for i, it := range items {
		if it.EntryID() == id {
			return i, true
		}
	}
	return 0, false
}

// replaceEntry returns a copy of items with the entry at id swapped for repl.
func replaceEntry[T entry](items []T, id primitive.ObjectID, repl T) ([]T, bool) {
	i, ok := findEntry(items, id)
	if !ok {
		return items, false
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i] = repl
	return out, true
}

// removeEntry returns a copy of items without the entry at id.
func removeEntry[T entry](items []T, id primitive.ObjectID) ([]T, bool) {
	i, ok := findEntry(items, id)
	if !ok {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out, true
}

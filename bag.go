package wplot

// bag is a reference counted set with per-member bookkeeping data. Adding a
// member already present bumps its count; removing decrements and only drops
// the member when the count reaches zero. A plot uses bags so an axis shared
// by several datasets stays alive until its last user is removed.
type bag[T comparable, D any] struct {
	items []bagItem[T, D]
}

type bagItem[T comparable, D any] struct {
	obj   T
	count int
	data  D
}

func (b *bag[T, D]) index(obj T) int {
	for i := range b.items {
		if b.items[i].obj == obj {
			return i
		}
	}
	return -1
}

// add inserts obj or bumps its count, reporting whether it was already
// present. New members start with zero-valued data.
func (b *bag[T, D]) add(obj T) (present bool) {
	if i := b.index(obj); 0 <= i {
		b.items[i].count++
		return true
	}
	b.items = append(b.items, bagItem[T, D]{obj: obj, count: 1})
	return false
}

// remove decrements the count of obj, reporting whether the member was
// dropped entirely.
func (b *bag[T, D]) remove(obj T) (dropped bool) {
	i := b.index(obj)
	if i < 0 {
		return false
	}
	b.items[i].count--
	if 0 < b.items[i].count {
		return false
	}
	b.items = append(b.items[:i], b.items[i+1:]...)
	return true
}

// contains reports whether obj is in the bag.
func (b *bag[T, D]) contains(obj T) bool {
	return 0 <= b.index(obj)
}

// data returns a pointer to the bookkeeping data of obj, or nil when absent.
func (b *bag[T, D]) data(obj T) *D {
	i := b.index(obj)
	if i < 0 {
		return nil
	}
	return &b.items[i].data
}

// foreach calls fn for every member until fn returns false.
func (b *bag[T, D]) foreach(fn func(obj T, data *D) bool) {
	for i := range b.items {
		if !fn(b.items[i].obj, &b.items[i].data) {
			return
		}
	}
}

// find returns the first member for which pred is true.
func (b *bag[T, D]) find(pred func(obj T, data *D) bool) (T, bool) {
	for i := range b.items {
		if pred(b.items[i].obj, &b.items[i].data) {
			return b.items[i].obj, true
		}
	}
	var zero T
	return zero, false
}

// empty drops all members regardless of their counts.
func (b *bag[T, D]) empty() {
	b.items = nil
}

// len returns the number of distinct members.
func (b *bag[T, D]) len() int {
	return len(b.items)
}

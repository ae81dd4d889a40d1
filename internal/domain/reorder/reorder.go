// Package reorder implements drag-and-drop reordering over ordered
// collections: a flat list (Reorder) and a partition of items into named
// groups (Move).
//
// Both operations are pure. They never mutate their input and return the
// input unchanged when the move cannot be resolved, so a caller can apply
// them directly to a drop event without checking anything first:
//
//	cols = reorder.Move(cols, "task-1", reorder.OnItem("task-3"))
//	cols = reorder.Move(cols, "task-1", reorder.OnGroup[string]("done"))
//	projects = reorder.Reorder(projects, int64(4), int64(1))
//
// Dropping an item on the group that already holds it moves the item to the
// end of that group.
package reorder

// Keyed is implemented by anything that can be reordered. Keys must be
// unique across the whole collection passed to Move or Reorder.
type Keyed[K comparable] interface {
	Key() K
}

// Group is an ordered, named bucket of items.
type Group[T any] struct {
	ID    string
	Name  string
	Items []T
}

type targetKind uint8

const (
	targetItem targetKind = iota + 1
	targetGroup
)

// Target identifies where an item was dropped: on another item, or on a
// group itself (its header or empty area). The zero value resolves to
// nothing and makes Move a no-op.
type Target[K comparable] struct {
	kind    targetKind
	item    K
	groupID string
}

// OnItem targets the item with the given key; the dragged item takes its
// position.
func OnItem[K comparable](key K) Target[K] {
	return Target[K]{kind: targetItem, item: key}
}

// OnGroup targets a group directly; the dragged item is appended to it.
func OnGroup[K comparable](groupID string) Target[K] {
	return Target[K]{kind: targetGroup, groupID: groupID}
}

// IsItem reports whether the target is an item, returning its key.
func (t Target[K]) IsItem() (K, bool) {
	return t.item, t.kind == targetItem
}

// IsGroup reports whether the target is a group, returning its id.
func (t Target[K]) IsGroup() (string, bool) {
	return t.groupID, t.kind == targetGroup
}

// Reorder moves the item keyed active to the position currently held by the
// item keyed over. Items between the two positions shift by one. It returns
// items unchanged when either key is absent or both are equal.
func Reorder[T Keyed[K], K comparable](items []T, active, over K) []T {
	if active == over {
		return items
	}
	from := indexOf(items, active)
	to := indexOf(items, over)
	if from < 0 || to < 0 {
		return items
	}
	return splice(items, from, to)
}

// Move relocates the item keyed active within or across groups.
//
// Dropping on an item inserts the dragged item at that item's index in its
// group. Dropping on a group appends to it. The returned slice is new; only
// the affected groups get new item slices, every other group and all item
// values are shared with the input. The input is returned unchanged when the
// active item or the target cannot be found, or when an item is dropped on
// itself.
func Move[T Keyed[K], K comparable](groups []Group[T], active K, over Target[K]) []Group[T] {
	if key, ok := over.IsItem(); ok && key == active {
		return groups
	}

	fromGroup, fromIdx := locate(groups, active)
	if fromGroup < 0 {
		return groups
	}

	toGroup, toIdx := resolve(groups, over)
	if toGroup < 0 {
		return groups
	}

	out := make([]Group[T], len(groups))
	copy(out, groups)

	if fromGroup == toGroup {
		items := groups[fromGroup].Items
		if toIdx < 0 {
			toIdx = len(items) - 1
		}
		out[fromGroup].Items = splice(items, fromIdx, toIdx)
		return out
	}

	src := groups[fromGroup].Items
	moved := src[fromIdx]

	remaining := make([]T, 0, len(src)-1)
	remaining = append(remaining, src[:fromIdx]...)
	remaining = append(remaining, src[fromIdx+1:]...)

	dst := groups[toGroup].Items
	if toIdx < 0 {
		toIdx = len(dst)
	}
	inserted := make([]T, 0, len(dst)+1)
	inserted = append(inserted, dst[:toIdx]...)
	inserted = append(inserted, moved)
	inserted = append(inserted, dst[toIdx:]...)

	out[fromGroup].Items = remaining
	out[toGroup].Items = inserted
	return out
}

// locate returns the group index and item index of key, or -1, -1.
func locate[T Keyed[K], K comparable](groups []Group[T], key K) (int, int) {
	for g := range groups {
		if i := indexOf(groups[g].Items, key); i >= 0 {
			return g, i
		}
	}
	return -1, -1
}

// resolve returns the destination group index and the insertion index for
// the target. The insertion index is -1 when the target is a group.
func resolve[T Keyed[K], K comparable](groups []Group[T], over Target[K]) (int, int) {
	if key, ok := over.IsItem(); ok {
		return locate(groups, key)
	}
	if id, ok := over.IsGroup(); ok {
		for g := range groups {
			if groups[g].ID == id {
				return g, -1
			}
		}
	}
	return -1, -1
}

func indexOf[T Keyed[K], K comparable](items []T, key K) int {
	for i := range items {
		if items[i].Key() == key {
			return i
		}
	}
	return -1
}

// splice returns a copy of items with the element at from removed and
// reinserted at to. Both indexes refer to positions in the original slice.
func splice[T any](items []T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)
	if from == to {
		return out
	}
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

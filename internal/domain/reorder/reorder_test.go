package reorder_test

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain/reorder"
)

type card int

func (c card) Key() int { return int(c) }

type named string

func (n named) Key() string { return string(n) }

func groups(layout ...any) []reorder.Group[card] {
	out := make([]reorder.Group[card], 0, len(layout)/2)
	for i := 0; i < len(layout); i += 2 {
		ids, _ := layout[i+1].([]int)
		items := make([]card, len(ids))
		for j, id := range ids {
			items[j] = card(id)
		}
		out = append(out, reorder.Group[card]{ID: layout[i].(string), Name: layout[i].(string), Items: items})
	}
	return out
}

func keys(g reorder.Group[card]) []int {
	out := make([]int, len(g.Items))
	for i, c := range g.Items {
		out[i] = int(c)
	}
	return out
}

func requireGroup(t *testing.T, got []reorder.Group[card], id string, want []int) {
	t.Helper()
	for _, g := range got {
		if g.ID == id {
			if !slices.Equal(keys(g), want) {
				t.Errorf("group %s = %v, want %v", id, keys(g), want)
			}
			return
		}
	}
	t.Errorf("group %s missing", id)
}

func TestMove_Examples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     []reorder.Group[card]
		active int
		over   reorder.Target[int]
		want   map[string][]int
	}{
		{
			name:   "same group reorder shifts the range",
			in:     groups("A", []int{1, 2, 3}, "B", []int{}),
			active: 1,
			over:   reorder.OnItem(3),
			want:   map[string][]int{"A": {2, 3, 1}, "B": {}},
		},
		{
			name:   "same group reorder upwards",
			in:     groups("A", []int{1, 2, 3, 4}),
			active: 4,
			over:   reorder.OnItem(2),
			want:   map[string][]int{"A": {1, 4, 2, 3}},
		},
		{
			name:   "cross group inserts at target index",
			in:     groups("A", []int{1, 2}, "B", []int{3}),
			active: 2,
			over:   reorder.OnItem(3),
			want:   map[string][]int{"A": {1}, "B": {2, 3}},
		},
		{
			name:   "cross group into the middle",
			in:     groups("A", []int{1}, "B", []int{2, 3, 4}),
			active: 1,
			over:   reorder.OnItem(4),
			want:   map[string][]int{"A": {}, "B": {2, 3, 1, 4}},
		},
		{
			name:   "drop on empty group appends",
			in:     groups("A", []int{1}, "B", []int{}),
			active: 1,
			over:   reorder.OnGroup[int]("B"),
			want:   map[string][]int{"A": {}, "B": {1}},
		},
		{
			name:   "drop on non-empty group appends",
			in:     groups("A", []int{1, 2}, "B", []int{3, 4}),
			active: 1,
			over:   reorder.OnGroup[int]("B"),
			want:   map[string][]int{"A": {2}, "B": {3, 4, 1}},
		},
		{
			name:   "drop on own group moves to end",
			in:     groups("A", []int{1, 2, 3}),
			active: 1,
			over:   reorder.OnGroup[int]("A"),
			want:   map[string][]int{"A": {2, 3, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := reorder.Move(tt.in, tt.active, tt.over)
			for id, want := range tt.want {
				requireGroup(t, got, id, want)
			}
		})
	}
}

func TestMove_NoOps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		active int
		over   reorder.Target[int]
	}{
		{name: "dropping on self", active: 1, over: reorder.OnItem(1)},
		{name: "unknown active id", active: 99, over: reorder.OnGroup[int]("B")},
		{name: "unknown target item", active: 1, over: reorder.OnItem(42)},
		{name: "unknown target group", active: 1, over: reorder.OnGroup[int]("ghost")},
		{name: "zero target", active: 1, over: reorder.Target[int]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := groups("A", []int{1, 2}, "B", []int{3})
			got := reorder.Move(in, tt.active, tt.over)
			requireGroup(t, got, "A", []int{1, 2})
			requireGroup(t, got, "B", []int{3})
		})
	}
}

func TestMove_UnknownStringID(t *testing.T) {
	t.Parallel()

	in := []reorder.Group[named]{
		{ID: "A", Items: []named{"x"}},
		{ID: "B"},
	}
	got := reorder.Move(in, "ghost", reorder.OnGroup[string]("B"))
	if len(got[0].Items) != 1 || len(got[1].Items) != 0 {
		t.Errorf("Move(ghost) changed groups: %v", got)
	}
}

func TestMove_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := groups("A", []int{1, 2, 3}, "B", []int{4}, "C", []int{5})
	_ = reorder.Move(in, 1, reorder.OnItem(3))
	_ = reorder.Move(in, 2, reorder.OnItem(4))

	requireGroup(t, in, "A", []int{1, 2, 3})
	requireGroup(t, in, "B", []int{4})
	requireGroup(t, in, "C", []int{5})
}

func TestMove_SharesUntouchedGroups(t *testing.T) {
	t.Parallel()

	in := groups("A", []int{1, 2}, "B", []int{3}, "C", []int{5, 6})
	got := reorder.Move(in, 1, reorder.OnItem(3))

	if &got[2].Items[0] != &in[2].Items[0] {
		t.Error("untouched group C was copied, want its items shared with the input")
	}
	if &got[0].Items[0] == &in[0].Items[0] {
		t.Error("source group A shares storage with the input, want a new slice")
	}
}

func TestMove_LastItemLeavesEmptyGroup(t *testing.T) {
	t.Parallel()

	in := groups("A", []int{1}, "B", []int{2})
	got := reorder.Move(in, 1, reorder.OnItem(2))

	if len(got) != 2 {
		t.Fatalf("len(groups) = %d, want 2 (empty groups are kept)", len(got))
	}
	requireGroup(t, got, "A", []int{})
	requireGroup(t, got, "B", []int{1, 2})
}

func TestMove_ConservationAndExclusivity(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	state := groups("A", []int{1, 2, 3, 4}, "B", []int{5, 6}, "C", []int{}, "D", []int{7, 8, 9})
	groupIDs := []string{"A", "B", "C", "D", "ghost"}

	for step := range 500 {
		active := rng.IntN(11)
		var over reorder.Target[int]
		if rng.IntN(3) == 0 {
			over = reorder.OnGroup[int](groupIDs[rng.IntN(len(groupIDs))])
		} else {
			over = reorder.OnItem(rng.IntN(11))
		}
		state = reorder.Move(state, active, over)

		seen := make(map[int]string)
		total := 0
		for _, g := range state {
			for _, c := range g.Items {
				if prev, dup := seen[int(c)]; dup {
					t.Fatalf("step %d: item %d in both %s and %s", step, c, prev, g.ID)
				}
				seen[int(c)] = g.ID
				total++
			}
		}
		if total != 9 {
			t.Fatalf("step %d: item count = %d, want 9", step, total)
		}
	}
}

func TestReorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     []int
		active int
		over   int
		want   []int
	}{
		{name: "move down", in: []int{1, 2, 3, 4}, active: 1, over: 3, want: []int{2, 3, 1, 4}},
		{name: "move up", in: []int{1, 2, 3, 4}, active: 4, over: 1, want: []int{4, 1, 2, 3}},
		{name: "adjacent", in: []int{1, 2, 3}, active: 2, over: 3, want: []int{1, 3, 2}},
		{name: "same id", in: []int{1, 2, 3}, active: 2, over: 2, want: []int{1, 2, 3}},
		{name: "unknown active", in: []int{1, 2, 3}, active: 9, over: 2, want: []int{1, 2, 3}},
		{name: "unknown over", in: []int{1, 2, 3}, active: 1, over: 9, want: []int{1, 2, 3}},
		{name: "empty", in: []int{}, active: 1, over: 2, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := reorder.Reorder(cards(tt.in), tt.active, tt.over)
			if !slices.Equal(ints(got), tt.want) {
				t.Errorf("Reorder(%v, %d, %d) = %v, want %v", tt.in, tt.active, tt.over, ints(got), tt.want)
			}
		})
	}
}

func TestReorder_InverseOfAdjacentSwapRestores(t *testing.T) {
	t.Parallel()

	in := cards([]int{1, 2, 3, 4})
	for i := 0; i+1 < len(in); i++ {
		a, b := int(in[i]), int(in[i+1])
		t.Run(fmt.Sprintf("%d<->%d", a, b), func(t *testing.T) {
			t.Parallel()
			got := reorder.Reorder(reorder.Reorder(in, a, b), b, a)
			if !slices.Equal(ints(got), ints(in)) {
				t.Errorf("inverse of adjacent move = %v, want %v", ints(got), ints(in))
			}
		})
	}
}

func TestReorder_InverseOfDistantMoveIsNotIdentity(t *testing.T) {
	t.Parallel()

	in := cards([]int{1, 2, 3, 4})
	once := reorder.Reorder(in, 1, 3)
	if want := []int{2, 3, 1, 4}; !slices.Equal(ints(once), want) {
		t.Fatalf("Reorder(1, 3) = %v, want %v", ints(once), want)
	}
	twice := reorder.Reorder(once, 3, 1)
	if want := []int{2, 1, 3, 4}; !slices.Equal(ints(twice), want) {
		t.Errorf("Reorder(Reorder(1, 3), 3, 1) = %v, want %v", ints(twice), want)
	}
}

func TestReorder_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := cards([]int{1, 2, 3})
	_ = reorder.Reorder(in, 1, 3)
	if !slices.Equal(ints(in), []int{1, 2, 3}) {
		t.Errorf("input mutated to %v", ints(in))
	}
}

func TestReorder_MatchesSingleGroupMove(t *testing.T) {
	t.Parallel()

	base := []int{1, 2, 3, 4, 5}
	for _, a := range base {
		for _, b := range base {
			flat := reorder.Reorder(cards(base), a, b)
			grouped := reorder.Move(groups("A", base), a, reorder.OnItem(b))
			if !slices.Equal(ints(flat), keys(grouped[0])) {
				t.Errorf("Reorder(%d, %d) = %v, Move = %v", a, b, ints(flat), keys(grouped[0]))
			}
		}
	}
}

func TestTarget(t *testing.T) {
	t.Parallel()

	item := reorder.OnItem("task-1")
	if key, ok := item.IsItem(); !ok || key != "task-1" {
		t.Errorf("OnItem.IsItem() = %q, %v", key, ok)
	}
	if _, ok := item.IsGroup(); ok {
		t.Error("OnItem.IsGroup() = true, want false")
	}

	group := reorder.OnGroup[string]("todo")
	if id, ok := group.IsGroup(); !ok || id != "todo" {
		t.Errorf("OnGroup.IsGroup() = %q, %v", id, ok)
	}
	if _, ok := group.IsItem(); ok {
		t.Error("OnGroup.IsItem() = true, want false")
	}
}

func cards(ids []int) []card {
	out := make([]card, len(ids))
	for i, id := range ids {
		out[i] = card(id)
	}
	return out
}

func ints(cs []card) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = int(c)
	}
	return out
}

package entity

import (
	"testing"

	"battle-of-bastions/internal/types"

	"pgregory.net/rapid"
)

type item struct {
	id  types.EntityID
	val int
}

func (i item) EntityID() types.EntityID { return i.id }

func ids(a *Arena[item]) []types.EntityID {
	out := make([]types.EntityID, 0, a.Len())
	for _, it := range a.Items() {
		out = append(out, it.id)
	}
	return out
}

func TestArenaRemoveKeepsOrder(t *testing.T) {
	a := NewArena[item]()
	for i := 1; i <= 5; i++ {
		a.Add(item{id: types.EntityID(i), val: i * 10})
	}

	if !a.Remove(2) {
		t.Fatal("Remove(2) should succeed")
	}
	if a.Remove(2) {
		t.Fatal("second Remove(2) should be a no-op")
	}

	got := ids(&a)
	want := []types.EntityID{1, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("ids: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids: got %v want %v", got, want)
		}
	}
	if a.Get(4).val != 40 {
		t.Fatal("index not updated after Remove")
	}
	if a.Has(2) || a.Get(2) != nil {
		t.Fatal("removed id still reachable")
	}
}

func TestArenaRetain(t *testing.T) {
	a := NewArena[item]()
	for i := 1; i <= 6; i++ {
		a.Add(item{id: types.EntityID(i), val: i})
	}

	a.Retain(func(it *item) bool {
		it.val *= 100
		return it.id%2 == 0
	})

	if a.Len() != 3 || a.Get(4).val != 400 || a.Has(3) {
		t.Fatalf("after Retain: %v", a.Items())
	}
}

func TestArenaCloneIsIndependent(t *testing.T) {
	a := NewArena[item]()
	a.Add(item{id: 1, val: 1})
	c := a.Clone(nil)

	c.Get(1).val = 99
	c.Add(item{id: 2})

	if a.Get(1).val != 1 || a.Len() != 1 {
		t.Fatal("clone shares storage with the original")
	}
}

func TestArenaIndexProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := NewArena[item]()
		next := types.EntityID(1)
		ops := rapid.SliceOfN(rapid.IntRange(0, 2), 1, 100).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				a.Add(item{id: next})
				next++
			case 1:
				if a.Len() > 0 {
					i := rapid.IntRange(0, a.Len()-1).Draw(t, "i")
					a.Remove(a.At(i).id)
				}
			case 2:
				a.Retain(func(it *item) bool { return it.id%3 != 0 })
			}
		}

		prev := types.EntityID(0)
		for i, it := range a.Items() {
			if it.id <= prev {
				t.Fatalf("insertion order lost: %v", ids(&a))
			}
			prev = it.id
			if a.Get(it.id) != a.At(i) {
				t.Fatalf("index for %v points elsewhere", it.id)
			}
		}
	})
}

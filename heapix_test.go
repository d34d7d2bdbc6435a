package heapix_test

import (
	"math/rand"
	"testing"

	"github.com/PlotoZypresse/heapix"
	"github.com/PlotoZypresse/heapix/binaryheap"
	"github.com/PlotoZypresse/heapix/fibheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

var backends = []struct {
	name  string
	new   func() heapix.Heap[int]
	build func(items []heapix.Item[int]) heapix.Heap[int]
}{
	{
		name: "binaryheap",
		new:  func() heapix.Heap[int] { return binaryheap.New[int](intLess) },
		build: func(items []heapix.Item[int]) heapix.Heap[int] {
			return binaryheap.Build(intLess, items)
		},
	},
	{
		name: "fibheap",
		new:  func() heapix.Heap[int] { return fibheap.New[int](intLess) },
		build: func(items []heapix.Item[int]) heapix.Heap[int] {
			return fibheap.Build(intLess, items)
		},
	},
}

// TestContract runs the documented item lifecycle against every backend
// through the shared interface.
func TestContract(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			h := backend.new()

			assert.True(t, h.IsEmpty())
			_, ok := h.Min()
			assert.False(t, ok)
			_, ok = h.PopMin()
			assert.False(t, ok)

			h.Insert(0, 42)
			h.Insert(1, 17)
			h.Insert(2, 58)
			assert.Equal(t, 3, h.Len())

			item, ok := h.Min()
			require.True(t, ok)
			assert.Equal(t, heapix.Item[int]{ID: 1, Key: 17}, item)

			require.NoError(t, h.DecreaseKey(2, 13))
			item, ok = h.Min()
			require.True(t, ok)
			assert.Equal(t, heapix.Item[int]{ID: 2, Key: 13}, item)

			assert.ErrorIs(t, h.DecreaseKey(2, 13), heapix.ErrInvalidDecrease)
			assert.ErrorIs(t, h.DecreaseKey(5, 1), heapix.ErrNotFound)

			want := []heapix.Item[int]{
				{ID: 2, Key: 13},
				{ID: 1, Key: 17},
				{ID: 0, Key: 42},
			}
			for _, w := range want {
				item, ok := h.PopMin()
				require.True(t, ok)
				assert.Equal(t, w, item)
			}
			_, ok = h.PopMin()
			assert.False(t, ok)
			assert.True(t, h.IsEmpty())
		})
	}
}

// TestBuildMatchesInserts checks, per backend, that bulk construction and
// one-by-one insertion are observationally identical.
func TestBuildMatchesInserts(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	items := make([]heapix.Item[int], 300)
	for id, key := range rng.Perm(len(items)) {
		items[id] = heapix.Item[int]{ID: id, Key: key}
	}

	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			built := backend.build(items)
			inserted := backend.new()
			for _, item := range items {
				inserted.Insert(item.ID, item.Key)
			}

			require.Equal(t, inserted.Len(), built.Len())
			for !built.IsEmpty() {
				a, _ := built.PopMin()
				b, _ := inserted.PopMin()
				require.Equal(t, b, a)
			}
			assert.True(t, inserted.IsEmpty())
		})
	}
}

// TestBackendsMatch feeds identical random operation scripts, with globally
// unique keys so ties cannot occur, to both backends and requires identical
// observable behavior after every step.
func TestBackendsMatch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 25; trial++ {
		bin := heapix.Heap[int](binaryheap.New[int](intLess))
		fib := heapix.Heap[int](fibheap.New[int](intLess))

		used := map[int]bool{}
		key := func(base int) int {
			k := base
			for used[k] {
				k--
			}
			used[k] = true
			return k
		}

		live := map[int]int{} // id -> current key
		nextID := 0

		step := func() {
			switch r := rng.Intn(10); {
			case r < 5: // insert
				id := nextID
				nextID++
				k := key(rng.Intn(1 << 20))
				bin.Insert(id, k)
				fib.Insert(id, k)
				live[id] = k
			case r < 8 && len(live) > 0: // decrease a random live id
				var id int
				for id = range live {
					break
				}
				k := key(live[id] - 1 - rng.Intn(1000))
				require.NoError(t, bin.DecreaseKey(id, k))
				require.NoError(t, fib.DecreaseKey(id, k))
				live[id] = k
			default: // pop
				a, aok := bin.PopMin()
				b, bok := fib.PopMin()
				require.Equal(t, aok, bok)
				if aok {
					require.Equal(t, a, b, "backends diverged on PopMin")
					delete(live, a.ID)
				}
			}

			require.Equal(t, bin.Len(), fib.Len())
			a, aok := bin.Min()
			b, bok := fib.Min()
			require.Equal(t, aok, bok)
			if aok {
				require.Equal(t, a, b, "backends diverged on Min")
			}
		}

		for i := 0; i < 400; i++ {
			step()
		}
		for bin.Len() > 0 {
			a, _ := bin.PopMin()
			b, _ := fib.PopMin()
			require.Equal(t, a, b, "backends diverged while draining")
		}
		_, ok := fib.PopMin()
		require.False(t, ok)
	}
}

package ecs

// denseMapNilIndex marks the end of a bucket chain or an empty bucket head.
const denseMapNilIndex = ^uint32(0)

// denseMapNode is one packed-array entry: the key/value pair plus the
// intrusive prev/next indices threading its bucket's chain.
type denseMapNode[K comparable, V any] struct {
	key  K
	val  V
	prev uint32
	next uint32
}

// DenseMap is an open-chaining hash table with every node living in one
// packed slice instead of per-node heap allocations; each node threads its
// bucket chain with prev/next indices instead of pointers. The registry uses
// it to index component type to component-type id, the auxiliary
// type-to-pool lookup the top-level registry needs.
//
// Bucket count is always a power of two so the bucket for a hash is a mask,
// not a division.
type DenseMap[K comparable, V any] struct {
	buckets []uint32
	nodes   []denseMapNode[K, V]
	hash    func(K) uint64
	dirty   bool
}

const (
	denseMapMinBuckets  = 8
	denseMapLoadFactor  = 0.875
	denseMapGrowthRatio = 2
)

// NewDenseMap creates an empty map using hash to place keys into buckets.
func NewDenseMap[K comparable, V any](hash func(K) uint64) *DenseMap[K, V] {
	m := &DenseMap[K, V]{hash: hash}
	m.buckets = make([]uint32, denseMapMinBuckets)
	for i := range m.buckets {
		m.buckets[i] = denseMapNilIndex
	}
	return m
}

func (m *DenseMap[K, V]) bucketFor(key K) uint32 {
	return uint32(fastMod(m.hash(key), uint64(len(m.buckets))))
}

// fastMod computes value mod m for a power-of-two m via masking, the same
// trick the source borrows from EnTT.
func fastMod(value, m uint64) uint64 { return value & (m - 1) }

// Len returns the number of entries.
func (m *DenseMap[K, V]) Len() int { return len(m.nodes) }

func (m *DenseMap[K, V]) findNode(key K, bucket uint32) (uint32, bool) {
	idx := m.buckets[bucket]
	for idx != denseMapNilIndex {
		if m.nodes[idx].key == key {
			return idx, true
		}
		idx = m.nodes[idx].next
	}
	return 0, false
}

// Find returns a pointer to the stored value for key, and whether it exists.
// The pointer aliases internal storage and is invalidated by any mutation.
func (m *DenseMap[K, V]) Find(key K) (*V, bool) {
	bucket := m.bucketFor(key)
	idx, ok := m.findNode(key, bucket)
	if !ok {
		return nil, false
	}
	return &m.nodes[idx].val, true
}

func (m *DenseMap[K, V]) appendNode(bucket uint32, key K, val V) uint32 {
	idx := uint32(len(m.nodes))
	if m.buckets[bucket] == denseMapNilIndex {
		m.buckets[bucket] = idx
		m.nodes = append(m.nodes, denseMapNode[K, V]{key: key, val: val, prev: denseMapNilIndex, next: denseMapNilIndex})
		return idx
	}
	tail := m.buckets[bucket]
	for m.nodes[tail].next != denseMapNilIndex {
		tail = m.nodes[tail].next
	}
	m.nodes[tail].next = idx
	m.nodes = append(m.nodes, denseMapNode[K, V]{key: key, val: val, prev: tail, next: denseMapNilIndex})
	return idx
}

// GetOrInsert returns the existing value for key, or inserts make() and
// returns that. Matches the source's emplace_or_get.
func (m *DenseMap[K, V]) GetOrInsert(key K, make func() V) *V {
	m.rehashIfDue()
	bucket := m.bucketFor(key)
	if idx, ok := m.findNode(key, bucket); ok {
		return &m.nodes[idx].val
	}
	idx := m.appendNode(bucket, key, make())
	m.markDirty()
	return &m.nodes[idx].val
}

// Insert stores val for key, overwriting any existing entry.
func (m *DenseMap[K, V]) Insert(key K, val V) {
	m.rehashIfDue()
	bucket := m.bucketFor(key)
	if idx, ok := m.findNode(key, bucket); ok {
		m.nodes[idx].val = val
		return
	}
	m.appendNode(bucket, key, val)
	m.markDirty()
}

func (m *DenseMap[K, V]) markDirty() {
	m.dirty = float64(len(m.nodes))/float64(len(m.buckets)) > denseMapLoadFactor
}

func (m *DenseMap[K, V]) rehashIfDue() {
	if m.dirty {
		m.rehash()
	}
}

func (m *DenseMap[K, V]) rehash() {
	old := m.nodes
	newSize := len(m.buckets) * denseMapGrowthRatio
	m.buckets = make([]uint32, newSize)
	for i := range m.buckets {
		m.buckets[i] = denseMapNilIndex
	}
	m.nodes = nil
	for _, node := range old {
		bucket := m.bucketFor(node.key)
		m.appendNode(bucket, node.key, node.val)
	}
	m.dirty = false
}

// Erase removes key. A missing key is a no-op. The node that held the last
// position in the packed array is move-relocated into the vacated slot, and
// its chain neighbors (or its bucket head) are repointed to the new index.
func (m *DenseMap[K, V]) Erase(key K) {
	bucket := m.bucketFor(key)
	idx, ok := m.findNode(key, bucket)
	if !ok {
		return
	}
	node := m.nodes[idx]
	if node.prev != denseMapNilIndex {
		m.nodes[node.prev].next = node.next
	} else {
		m.buckets[bucket] = node.next
	}
	if node.next != denseMapNilIndex {
		m.nodes[node.next].prev = node.prev
	}

	last := uint32(len(m.nodes) - 1)
	if idx == last {
		m.nodes = m.nodes[:last]
		return
	}

	back := m.nodes[last]
	if back.prev != denseMapNilIndex {
		m.nodes[back.prev].next = idx
	} else {
		backBucket := m.bucketFor(back.key)
		m.buckets[backBucket] = idx
	}
	if back.next != denseMapNilIndex {
		m.nodes[back.next].prev = idx
	}
	m.nodes[idx] = back
	m.nodes = m.nodes[:last]
}

// ForEach calls fn for every entry in packed-array order: insertion order,
// except that Erase moves the last node into the erased node's position.
func (m *DenseMap[K, V]) ForEach(fn func(K, V)) {
	for _, node := range m.nodes {
		fn(node.key, node.val)
	}
}

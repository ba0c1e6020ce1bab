package ecs

// sparseSetNullIndex marks an absent entry in a sparse array.
const sparseSetNullIndex = ^uint32(0)

// SparseKey is any small handle usable as a sparse-set key: something that
// can report its own position in the set's sparse array. Entity and RawID
// are the two key types this package provides; the source specializes SparseSet<T>
// by hand for unsigned integers and for entity, which this constraint
// interface unifies into one generic type.
type SparseKey interface {
	comparable
	sparseIndex() uint32
}

// SparseSet is a dual-vector structure giving O(1) insert, erase, and
// membership, with dense iteration in insertion-minus-swap order. Erase is
// swap-with-last, so iteration order is not stable across mutation.
//
// Membership additionally compares the full key at the dense slot, not just
// presence in the sparse array. For the RawID variant that is a no-op (the
// stored key is the index itself); for the Entity variant it rejects a stale
// handle whose generation no longer matches, which is the stricter behavior
// the source's entity-keyed set needs and the integer-keyed one does not.
type SparseSet[K SparseKey] struct {
	sparse denseVector[uint32]
	dense  denseVector[K]
	cap    uint32
}

func newSparseSet[K SparseKey](capacity uint32) *SparseSet[K] {
	return &SparseSet[K]{cap: capacity}
}

// Integer-keyed (RawID) sets cap at 10^6; entity-keyed
// sets cap at 2^20, the limit baked into the entity handle's id field.
const (
	IntegerSparseSetCapacity = 1_000_000
	EntitySparseSetCapacity  = 1 << 20
)

// NewIntSparseSet creates a sparse set keyed by RawID, capped at
// IntegerSparseSetCapacity.
func NewIntSparseSet() *SparseSet[RawID] { return newSparseSet[RawID](IntegerSparseSetCapacity) }

// NewEntitySparseSet creates a sparse set keyed by Entity, capped at
// EntitySparseSetCapacity.
func NewEntitySparseSet() *SparseSet[Entity] { return newSparseSet[Entity](EntitySparseSetCapacity) }

func (s *SparseSet[K]) ensure(idx uint32) {
	if uint32(s.sparse.Len()) <= idx {
		s.sparse.Resize(int(idx)+1, sparseSetNullIndex)
	}
}

// Insert adds k to the set. If k's sparse slot is already occupied (by k
// itself, or for Entity by another handle with the same id) Insert is a
// no-op and k is not added. Exceeding the set's capacity fails with a
// CapacityExceeded fault.
func (s *SparseSet[K]) Insert(k K) error {
	idx := k.sparseIndex()
	if idx >= s.cap {
		return newCapacityExceededError(idx, s.cap)
	}
	s.ensure(idx)
	if s.sparse.At(int(idx)) != sparseSetNullIndex {
		return nil
	}
	s.dense.Push(k)
	s.sparse.Set(int(idx), uint32(s.dense.Len()-1))
	return nil
}

// Erase removes k, swapping the last dense element into its slot. A missing
// key is a no-op.
func (s *SparseSet[K]) Erase(k K) {
	idx := k.sparseIndex()
	if int(idx) >= s.sparse.Len() {
		return
	}
	pos := s.sparse.At(int(idx))
	if pos == sparseSetNullIndex || s.dense.At(int(pos)) != k {
		return
	}
	last := uint32(s.dense.Len() - 1)
	if pos != last {
		lastKey := s.dense.At(int(last))
		s.dense.Set(int(pos), lastKey)
		s.sparse.Set(int(lastKey.sparseIndex()), pos)
	}
	s.dense.Pop()
	s.sparse.Set(int(idx), sparseSetNullIndex)
}

// Has reports whether k is currently a member.
func (s *SparseSet[K]) Has(k K) bool {
	idx := k.sparseIndex()
	if int(idx) >= s.sparse.Len() {
		return false
	}
	pos := s.sparse.At(int(idx))
	return pos != sparseSetNullIndex && s.dense.At(int(pos)) == k
}

// IndexOf returns k's position in dense iteration order, if present.
func (s *SparseSet[K]) IndexOf(k K) (int, bool) {
	idx := k.sparseIndex()
	if int(idx) >= s.sparse.Len() {
		return 0, false
	}
	pos := s.sparse.At(int(idx))
	if pos == sparseSetNullIndex || s.dense.At(int(pos)) != k {
		return 0, false
	}
	return int(pos), true
}

// Len returns the number of members.
func (s *SparseSet[K]) Len() int { return s.dense.Len() }

// Data returns the dense member list in current iteration order. The slice
// aliases internal storage and is only valid until the next mutation.
func (s *SparseSet[K]) Data() []K { return s.dense.Data() }

// At returns the member at dense position i.
func (s *SparseSet[K]) At(i int) K { return s.dense.At(i) }

// Clear removes every member. Backing capacity is retained.
func (s *SparseSet[K]) Clear() {
	for i := 0; i < s.sparse.Len(); i++ {
		s.sparse.Set(i, sparseSetNullIndex)
	}
	s.dense.Clear()
}

package ecs

import "reflect"

// Registry owns every entity and component pool in one world. It is the
// library's single exported entry point; everything else in this package is
// either a helper type it composes or a free function generic over the
// component type it operates on (Go forbids extra type parameters on
// methods, so the source's templated member functions become package-level
// functions taking *Registry as their first argument).
type Registry struct {
	entities entityAllocator
	pools    []componentStorage
	typeIDs  *DenseMap[reflect.Type, uint32]
}

// NewRegistry creates an empty world.
func NewRegistry() *Registry {
	return &Registry{typeIDs: NewDenseMap[reflect.Type, uint32](hashReflectType)}
}

// hashReflectType hashes a reflect.Type by its string form. Types are
// registered a handful of times per process (once per component type ever
// used), so the cost of String() is never on a hot path.
func hashReflectType(t reflect.Type) uint64 {
	s := t.String()
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

// Create allocates a new entity handle.
func (r *Registry) Create() Entity { return r.entities.create() }

// Valid reports whether e refers to a live entity: a stale or already
// destroyed handle, or NullEntity, is not valid.
func (r *Registry) Valid(e Entity) bool { return r.entities.active(e) }

// Destroy releases e's slot for reuse and removes e from every component
// pool it was a member of. Destroying an already-invalid entity is a no-op.
func (r *Registry) Destroy(e Entity) {
	if !r.Valid(e) {
		return
	}
	for _, p := range r.pools {
		p.destroyEntity(e)
	}
	r.entities.release(e)
}

// Reset destroys every entity and clears every component pool, retaining
// backing capacity for reuse.
func (r *Registry) Reset() {
	for _, p := range r.pools {
		p.clear()
	}
	r.entities.clear()
}

// EntityCount returns the number of currently live entities.
func (r *Registry) EntityCount() int { return r.entities.Count() }

// MaxEntityCount returns the number of entity slots ever allocated,
// including released ones awaiting reuse.
func (r *Registry) MaxEntityCount() int { return r.entities.MaxCount() }

// TypeComponentCount returns the number of T components currently stored.
func TypeComponentCount[T any](r *Registry) int {
	p := poolFor[T](r, false)
	if p == nil {
		return 0
	}
	return p.count()
}

// MaxTypeComponentCount returns the number of T component slots ever
// allocated.
func MaxTypeComponentCount[T any](r *Registry) int {
	p := poolFor[T](r, false)
	if p == nil {
		return 0
	}
	return p.maxCount()
}

// ComponentCount returns the number of components currently stored across
// every pool.
func (r *Registry) ComponentCount() int {
	total := 0
	for _, p := range r.pools {
		total += p.count()
	}
	return total
}

// MaxComponentCount returns the number of component slots ever allocated
// across every pool.
func (r *Registry) MaxComponentCount() int {
	total := 0
	for _, p := range r.pools {
		total += p.maxCount()
	}
	return total
}

// poolFor returns the componentPool[T] backing T, creating and registering
// one on first use when create is true. A nil return with create false means
// no entity has ever used T.
func poolFor[T any](r *Registry, create bool) *componentPool[T] {
	var zero T
	t := reflect.TypeOf(zero)
	idPtr, ok := r.typeIDs.Find(t)
	if !ok {
		if !create {
			return nil
		}
		id := uint32(len(r.pools))
		r.typeIDs.Insert(t, id)
		p := newComponentPool[T]()
		r.pools = append(r.pools, p)
		return p
	}
	return r.pools[*idPtr].(*componentPool[T])
}

// Emplace attaches a T component to e, initialized to v, failing if e is
// invalid or already carries one.
func Emplace[T any](r *Registry, e Entity, v T) (*T, error) {
	if !r.Valid(e) {
		return nil, newInvalidEntityError(e)
	}
	return poolFor[T](r, true).create(e, v)
}

// GetOrEmplace returns e's existing T component, or attaches make() and
// returns that. Fails only if e is invalid.
func GetOrEmplace[T any](r *Registry, e Entity, make func() T) (*T, error) {
	if !r.Valid(e) {
		return nil, newInvalidEntityError(e)
	}
	p := poolFor[T](r, true)
	if p.has(e) {
		return p.get(e), nil
	}
	return p.create(e, make())
}

// Has reports whether e currently carries a T component.
func Has[T any](r *Registry, e Entity) bool {
	p := poolFor[T](r, false)
	return p != nil && p.has(e)
}

// Has2 reports whether e carries both A and B.
func Has2[A, B any](r *Registry, e Entity) bool {
	return Has[A](r, e) && Has[B](r, e)
}

// Has3 reports whether e carries A, B, and C.
func Has3[A, B, C any](r *Registry, e Entity) bool {
	return Has[A](r, e) && Has[B](r, e) && Has[C](r, e)
}

// Get returns a pointer to e's T component. Precondition: Has[T](r, e) is
// true; calling Get on an entity lacking the component is a contract
// violation and panics, matching the source's MYECS_ASSERT-guarded get().
func Get[T any](r *Registry, e Entity) *T {
	p := poolFor[T](r, false)
	if p == nil || !p.has(e) {
		panic("ecs: Get called on entity without the requested component")
	}
	return p.get(e)
}

// TryGet returns e's T component and true, or nil and false if e has none.
// The non-panicking counterpart to Get.
func TryGet[T any](r *Registry, e Entity) (*T, bool) {
	p := poolFor[T](r, false)
	if p == nil || !p.has(e) {
		return nil, false
	}
	return p.get(e), true
}

// Destroy removes e's T component. No-op if e has none.
func Destroy[T any](r *Registry, e Entity) {
	p := poolFor[T](r, false)
	if p == nil {
		return
	}
	p.destroy(e)
}

// Destroy2 removes both A and B from e.
func Destroy2[A, B any](r *Registry, e Entity) {
	Destroy[A](r, e)
	Destroy[B](r, e)
}

// Destroy3 removes A, B, and C from e.
func Destroy3[A, B, C any](r *Registry, e Entity) {
	Destroy[A](r, e)
	Destroy[B](r, e)
	Destroy[C](r, e)
}

// View returns every entity currently carrying a T component, in that
// component pool's dense iteration order.
func View[T any](r *Registry) []Entity {
	p := poolFor[T](r, false)
	if p == nil {
		return nil
	}
	return p.archetype.Data()
}

// View2 returns every entity carrying both A and B. The smaller of the two
// archetypes is walked and filtered against the other, so cost is
// O(min(|A|,|B|)); an entity is reported the first time it is encountered
// walking the smaller set.
func View2[A, B any](r *Registry) []Entity {
	pa := poolFor[A](r, false)
	pb := poolFor[B](r, false)
	if pa == nil || pb == nil {
		return nil
	}
	return intersect(pa.archetype, pb.archetype)
}

// View3 returns every entity carrying A, B, and C. The smallest of the three
// archetypes (the first one on a tie) is walked once and each of its entities
// is kept only if both other archetypes contain it.
func View3[A, B, C any](r *Registry) []Entity {
	pa := poolFor[A](r, false)
	pb := poolFor[B](r, false)
	pc := poolFor[C](r, false)
	if pa == nil || pb == nil || pc == nil {
		return nil
	}
	sets := []*SparseSet[Entity]{pa.archetype, pb.archetype, pc.archetype}
	smallest := sets[0]
	rest := []*SparseSet[Entity]{sets[1], sets[2]}
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			rest = rest[:0]
			for _, other := range sets {
				if other != s {
					rest = append(rest, other)
				}
			}
			smallest = s
		}
	}
	var out []Entity
	for _, e := range smallest.Data() {
		all := true
		for _, s := range rest {
			if !s.Has(e) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	return out
}

// intersect walks whichever of a, b holds fewer entities, keeping members
// present in both, the get_common strategy the source uses for view<Types...>.
func intersect(a, b *SparseSet[Entity]) []Entity {
	small, large := a, b
	if b.Len() < a.Len() {
		small, large = b, a
	}
	var out []Entity
	for _, e := range small.Data() {
		if large.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

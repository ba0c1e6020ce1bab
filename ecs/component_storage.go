package ecs

// componentStorage is the type-erased contract every componentPool[T]
// satisfies, letting the registry hold one heterogeneous ordered slice of
// pools indexed by component-type id. The source gets this through an
// abstract base class sitting in a fixed-size inline buffer with a
// move-thunk; Go's interface value is the idiomatic equivalent of that
// strategy (a boxed trait object addressed by type-id) without needing a
// hand-rolled vtable or placement-new.
type componentStorage interface {
	destroyEntity(e Entity)
	hasEntity(e Entity) bool
	count() int
	maxCount() int
	clear()
}

// componentPool is the dense storage for one component type T: a typed
// object pool for the values, a sparse set recording which entities own one
// (the type's archetype), and an index from entity id to pool id.
type componentPool[T any] struct {
	archetype         *SparseSet[Entity]
	entityToComponent denseVector[uint32]
	pool              objectPool[T]
}

func newComponentPool[T any]() *componentPool[T] {
	return &componentPool[T]{archetype: NewEntitySparseSet()}
}

// has reports whether e currently owns a component in this pool.
func (p *componentPool[T]) has(e Entity) bool { return p.archetype.Has(e) }

// create stores v for e. Fails with DuplicateComponent if e already has one.
func (p *componentPool[T]) create(e Entity, v T) (*T, error) {
	if p.has(e) {
		return nil, newDuplicateComponentError(e)
	}
	id := p.pool.create(v)
	if err := p.archetype.Insert(e); err != nil {
		p.pool.destroy(id)
		return nil, err
	}
	*p.entityToComponent.ForceGet(int(e.id)) = id
	return p.pool.get(id), nil
}

// get returns the component for e. Precondition: has(e) is true; violating
// it is a contract violation, not a recoverable error.
func (p *componentPool[T]) get(e Entity) *T {
	id := p.entityToComponent.At(int(e.id))
	return p.pool.get(id)
}

// destroy removes e's component. No-op if e has none.
func (p *componentPool[T]) destroy(e Entity) {
	if !p.has(e) {
		return
	}
	id := p.entityToComponent.At(int(e.id))
	p.archetype.Erase(e)
	p.pool.destroy(id)
}

func (p *componentPool[T]) destroyEntity(e Entity) { p.destroy(e) }

func (p *componentPool[T]) hasEntity(e Entity) bool { return p.has(e) }

func (p *componentPool[T]) count() int { return p.pool.count() }

func (p *componentPool[T]) maxCount() int { return p.pool.maxCount() }

// clear drops every component, the archetype, and the entity-to-pool-id
// index. Backing capacity of each is kept.
func (p *componentPool[T]) clear() {
	p.pool.clear()
	p.archetype.Clear()
	p.entityToComponent.ClearAll()
}

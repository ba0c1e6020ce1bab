// Package systems is an external collaborator that schedules per-frame work
// over an ecs.Registry: system scheduling is explicitly out of scope for the
// core registry, but a host program still needs something to drive its
// views every tick, so this package plays that role the way the teacher's
// own system manager did for its World type.
package systems

import "github.com/lzuwei/ecsreg/ecs"

// System is one unit of scheduled per-tick work.
type System interface {
	Update(r *ecs.Registry, deltaTime float64)
	Name() string
}

// Manager runs an ordered list of systems against a Registry, each one
// individually enabled or disabled.
type Manager struct {
	systems []System
	enabled map[System]bool
}

// NewManager creates an empty scheduler.
func NewManager() *Manager {
	return &Manager{enabled: make(map[System]bool)}
}

// Add appends system to the schedule, enabled by default.
func (m *Manager) Add(system System) {
	m.systems = append(m.systems, system)
	m.enabled[system] = true
}

// Remove drops system from the schedule.
func (m *Manager) Remove(system System) {
	for i, s := range m.systems {
		if s == system {
			m.systems = append(m.systems[:i], m.systems[i+1:]...)
			delete(m.enabled, system)
			return
		}
	}
}

// Enable turns system back on.
func (m *Manager) Enable(system System) { m.enabled[system] = true }

// Disable skips system on future Update calls without removing it.
func (m *Manager) Disable(system System) { m.enabled[system] = false }

// IsEnabled reports whether system currently runs on Update.
func (m *Manager) IsEnabled(system System) bool {
	enabled, ok := m.enabled[system]
	return ok && enabled
}

// Update runs every enabled system in schedule order.
func (m *Manager) Update(r *ecs.Registry, deltaTime float64) {
	for _, s := range m.systems {
		if m.IsEnabled(s) {
			s.Update(r, deltaTime)
		}
	}
}

// Systems returns the full schedule, enabled or not.
func (m *Manager) Systems() []System { return m.systems }

// BaseSystem supplies Name() so concrete systems only need to implement
// Update.
type BaseSystem struct {
	name string
}

// NewBaseSystem names a system.
func NewBaseSystem(name string) *BaseSystem { return &BaseSystem{name: name} }

// Name returns the system's name.
func (b *BaseSystem) Name() string { return b.name }

// Func1 adapts a plain function over one component type into a System,
// driven by ecs.View[T1].
type Func1[T1 any] struct {
	*BaseSystem
	fn func(r *ecs.Registry, dt float64, e ecs.Entity, c1 *T1)
}

// NewFunc1 wraps fn as a named single-component system.
func NewFunc1[T1 any](name string, fn func(r *ecs.Registry, dt float64, e ecs.Entity, c1 *T1)) *Func1[T1] {
	return &Func1[T1]{BaseSystem: NewBaseSystem(name), fn: fn}
}

// Update runs fn for every entity in ecs.View[T1](r).
func (s *Func1[T1]) Update(r *ecs.Registry, dt float64) {
	for _, e := range ecs.View[T1](r) {
		c1 := ecs.Get[T1](r, e)
		s.fn(r, dt, e, c1)
	}
}

// Func2 adapts a plain function over two component types into a System,
// driven by ecs.View2[T1,T2].
type Func2[T1, T2 any] struct {
	*BaseSystem
	fn func(r *ecs.Registry, dt float64, e ecs.Entity, c1 *T1, c2 *T2)
}

// NewFunc2 wraps fn as a named two-component system.
func NewFunc2[T1, T2 any](name string, fn func(r *ecs.Registry, dt float64, e ecs.Entity, c1 *T1, c2 *T2)) *Func2[T1, T2] {
	return &Func2[T1, T2]{BaseSystem: NewBaseSystem(name), fn: fn}
}

// Update runs fn for every entity in ecs.View2[T1,T2](r).
func (s *Func2[T1, T2]) Update(r *ecs.Registry, dt float64) {
	for _, e := range ecs.View2[T1, T2](r) {
		s.fn(r, dt, e, ecs.Get[T1](r, e), ecs.Get[T2](r, e))
	}
}

// Func3 adapts a plain function over three component types into a System,
// driven by ecs.View3[T1,T2,T3].
type Func3[T1, T2, T3 any] struct {
	*BaseSystem
	fn func(r *ecs.Registry, dt float64, e ecs.Entity, c1 *T1, c2 *T2, c3 *T3)
}

// NewFunc3 wraps fn as a named three-component system.
func NewFunc3[T1, T2, T3 any](name string, fn func(r *ecs.Registry, dt float64, e ecs.Entity, c1 *T1, c2 *T2, c3 *T3)) *Func3[T1, T2, T3] {
	return &Func3[T1, T2, T3]{BaseSystem: NewBaseSystem(name), fn: fn}
}

// Update runs fn for every entity in ecs.View3[T1,T2,T3](r).
func (s *Func3[T1, T2, T3]) Update(r *ecs.Registry, dt float64) {
	for _, e := range ecs.View3[T1, T2, T3](r) {
		s.fn(r, dt, e, ecs.Get[T1](r, e), ecs.Get[T2](r, e), ecs.Get[T3](r, e))
	}
}

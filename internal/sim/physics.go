package sim

import "github.com/vovakirdan/tui-crossing/internal/core"

// Category is a collision category bitmask.
type Category uint32

// Body is a collision footprint attached to a node.
type Body struct {
	Name        string
	Node        *Node
	Offset      core.Vec3
	Size        core.Footprint
	Category    Category
	ContactMask Category // Categories this body reports contacts with

	id uint64
}

// Bounds returns the footprint placed at the node's world position.
func (b *Body) Bounds() core.Box {
	return core.Box{
		Center: b.Node.WorldPosition().Add(b.Offset),
		Size:   b.Size,
	}
}

// Contact is a pair of overlapping bodies.
type Contact struct {
	A, B *Body
}

// Involves reports whether either side of the contact is in the category.
func (c Contact) Involves(cat Category) bool {
	return c.A.Category&cat != 0 || c.B.Category&cat != 0
}

// ContactListener receives contact events from a World. ContactBegan fires
// once per new overlap, ContactUpdated on every later step it persists and
// ContactEnded once it stops or a body is removed.
type ContactListener interface {
	ContactBegan(c Contact)
	ContactUpdated(c Contact)
	ContactEnded(c Contact)
}

type pairKey struct {
	lo, hi uint64
}

func keyFor(a, b *Body) pairKey {
	if a.id < b.id {
		return pairKey{a.id, b.id}
	}
	return pairKey{b.id, a.id}
}

// World detects overlaps between registered bodies.
type World struct {
	bodies    []*Body
	listeners []ContactListener
	active    []Contact
	activeSet map[pairKey]bool
	nextID    uint64
}

// NewWorld creates an empty physics world.
func NewWorld() *World {
	return &World{activeSet: make(map[pairKey]bool)}
}

// AddBody registers a body for contact detection.
func (w *World) AddBody(b *Body) {
	w.nextID++
	b.id = w.nextID
	w.bodies = append(w.bodies, b)
}

// RemoveBody unregisters a body. Contacts it was part of end immediately.
func (w *World) RemoveBody(b *Body) {
	kept := w.bodies[:0]
	for _, other := range w.bodies {
		if other != b {
			kept = append(kept, other)
		}
	}
	w.bodies = kept

	var ended []Contact
	still := w.active[:0]
	for _, c := range w.active {
		if c.A == b || c.B == b {
			delete(w.activeSet, keyFor(c.A, c.B))
			ended = append(ended, c)
			continue
		}
		still = append(still, c)
	}
	w.active = still
	for _, c := range ended {
		w.dispatch(func(l ContactListener) { l.ContactEnded(c) })
	}
}

// Bodies returns the registered bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// AddContactListener subscribes l to contact events.
func (w *World) AddContactListener(l ContactListener) {
	if w.hasListener(l) {
		return
	}
	w.listeners = append(w.listeners, l)
}

// RemoveContactListener unsubscribes l. It receives nothing further, even
// for contacts later in the step that is currently being dispatched.
func (w *World) RemoveContactListener(l ContactListener) {
	kept := w.listeners[:0]
	for _, other := range w.listeners {
		if other != l {
			kept = append(kept, other)
		}
	}
	w.listeners = kept
}

func (w *World) hasListener(l ContactListener) bool {
	for _, other := range w.listeners {
		if other == l {
			return true
		}
	}
	return false
}

func (w *World) dispatch(fn func(l ContactListener)) {
	snapshot := make([]ContactListener, len(w.listeners))
	copy(snapshot, w.listeners)
	for _, l := range snapshot {
		if w.hasListener(l) {
			fn(l)
		}
	}
}

// canContact reports whether either body asks for contacts with the other.
func canContact(a, b *Body) bool {
	return a.ContactMask&b.Category != 0 || b.ContactMask&a.Category != 0
}

// Step compares current overlaps against the previous step and dispatches
// began, updated and ended events, in body insertion order.
func (w *World) Step() {
	current := make(map[pairKey]bool)
	var began, updated []Contact

	for i := 0; i < len(w.bodies); i++ {
		a := w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			if !canContact(a, b) || !a.Bounds().Intersects(b.Bounds()) {
				continue
			}
			k := keyFor(a, b)
			current[k] = true
			if w.activeSet[k] {
				updated = append(updated, Contact{A: a, B: b})
			} else {
				began = append(began, Contact{A: a, B: b})
			}
		}
	}

	var ended []Contact
	still := make([]Contact, 0, len(current))
	for _, c := range w.active {
		if current[keyFor(c.A, c.B)] {
			still = append(still, c)
		} else {
			ended = append(ended, c)
		}
	}
	still = append(still, began...)
	w.active = still
	w.activeSet = current

	for _, c := range began {
		w.dispatch(func(l ContactListener) { l.ContactBegan(c) })
	}
	for _, c := range updated {
		w.dispatch(func(l ContactListener) { l.ContactUpdated(c) })
	}
	for _, c := range ended {
		w.dispatch(func(l ContactListener) { l.ContactEnded(c) })
	}
}

// ActiveContacts returns the number of overlaps currently tracked.
func (w *World) ActiveContacts() int {
	return len(w.active)
}

package resources

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nulltrace/hackcore/internal/process"
)

// EventKind distinguishes reservation events from releases.
type EventKind int

const (
	EventReserve EventKind = iota
	EventRelease
)

func (k EventKind) String() string {
	if k == EventRelease {
		return "release"
	}
	return "reserve"
}

// UsageEvent is a single budget reservation or release.
type UsageEvent struct {
	ProcessID uuid.UUID
	OwnerID   int
	Type      process.Type
	Kind      EventKind
	Usage     process.ResourceUsage
	Timestamp time.Time
}

// UsageSummary aggregates reserved cpu/ram/net over a set of events.
type UsageSummary struct {
	Reservations int
	CPU          int
	RAM          int
	Net          int
}

// Accountant keeps an audit trail of budget reservations for
// host-side monitoring. Aggregates are grouped by process type and by
// owner. Safe for concurrent use; schedulers for different owners may
// share one accountant.
type Accountant struct {
	mu      sync.RWMutex
	events  []UsageEvent
	byType  map[string]*UsageSummary
	byOwner map[int]*UsageSummary
}

// NewAccountant creates an empty accountant.
func NewAccountant() *Accountant {
	return &Accountant{
		byType:  make(map[string]*UsageSummary),
		byOwner: make(map[int]*UsageSummary),
	}
}

// Record logs a reservation or release for a process. Only reserves
// count toward the aggregates; releases are kept in the event trail.
func (a *Accountant) Record(p *process.Process, kind EventKind) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.events = append(a.events, UsageEvent{
		ProcessID: p.ID,
		OwnerID:   p.OwnerID,
		Type:      p.Type,
		Kind:      kind,
		Usage:     p.ResourceUsage,
		Timestamp: time.Now(),
	})

	if kind != EventReserve {
		return
	}
	addTo(a.byType, p.Type.String(), p.ResourceUsage)
	addOwner(a.byOwner, p.OwnerID, p.ResourceUsage)
}

func addTo(m map[string]*UsageSummary, key string, u process.ResourceUsage) {
	s, ok := m[key]
	if !ok {
		s = &UsageSummary{}
		m[key] = s
	}
	s.Reservations++
	s.CPU += u.CPU
	s.RAM += u.RAM
	s.Net += u.Net
}

func addOwner(m map[int]*UsageSummary, key int, u process.ResourceUsage) {
	s, ok := m[key]
	if !ok {
		s = &UsageSummary{}
		m[key] = s
	}
	s.Reservations++
	s.CPU += u.CPU
	s.RAM += u.RAM
	s.Net += u.Net
}

// TypeUsage returns cumulative reserved usage for a process type name.
func (a *Accountant) TypeUsage(typeName string) UsageSummary {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if s, ok := a.byType[typeName]; ok {
		return *s
	}
	return UsageSummary{}
}

// OwnerUsage returns cumulative reserved usage for an owner.
func (a *Accountant) OwnerUsage(ownerID int) UsageSummary {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if s, ok := a.byOwner[ownerID]; ok {
		return *s
	}
	return UsageSummary{}
}

// EventCount returns the total number of recorded events.
func (a *Accountant) EventCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.events)
}

// Events returns a copy of the full event trail.
func (a *Accountant) Events() []UsageEvent {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]UsageEvent, len(a.events))
	copy(out, a.events)
	return out
}

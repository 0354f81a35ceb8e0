package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventResize          EventType = "Resize"
	EventViewportChanged EventType = "ViewportChanged"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ResizeEvent is emitted by a render surface when its measured height changes
type ResizeEvent struct {
	HeightPx float64
	Measured bool // false when the surface has no usable measurement
}

func (e ResizeEvent) Type() EventType { return EventResize }

// ViewportChangedEvent is emitted after a committed change of offset or page size
type ViewportChangedEvent struct {
	Old ViewportState
	New ViewportState
}

func (e ViewportChangedEvent) Type() EventType { return EventViewportChanged }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

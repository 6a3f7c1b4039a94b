package systems

// SystemInfo describes an engine system for perf tracking and reports.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "orbital", "render")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so reports and the perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems to the registry.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: "propagation", Name: "Propagation", Description: "Advances bodies along Kepler orbits", Category: "orbital"})
	r.Register(SystemInfo{ID: "bridge", Name: "Render Bridge", Description: "Converts positions to render space through the change gate", Category: "render"})
	r.Register(SystemInfo{ID: "populate", Name: "Populate", Description: "Generates and spawns star systems on demand", Category: "generation"})
	r.Register(SystemInfo{ID: "telemetry", Name: "Telemetry", Description: "Collects tick timing and emission counts", Category: "internal"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns every registered system in registration order.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

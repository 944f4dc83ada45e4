package entity

// LocationStatus is the state of the location resolver.
type LocationStatus string

const (
	LocationUninitialized    LocationStatus = "uninitialized"
	LocationProbingDevice    LocationStatus = "probing_device"
	LocationDeviceActive     LocationStatus = "device_active"
	LocationPermissionDenied LocationStatus = "permission_denied"
	LocationCustomActive     LocationStatus = "custom_active"
)

// SelectedLocation is the user-chosen location persisted in durable storage.
type SelectedLocation struct {
	Coordinates Coordinate `json:"coordinates"`
	Name        string     `json:"name"`
}

// EffectiveLocation is the location every geo-aware query runs against.
// IsCustom is true only for a persisted user selection; a device-derived
// location is never persisted.
type EffectiveLocation struct {
	Coordinates Coordinate `json:"coordinates"`
	Name        string     `json:"name"`
	IsCustom    bool       `json:"is_custom"`
}

// Place is a geocoding result.
type Place struct {
	Name        string     `json:"name"`
	City        string     `json:"city,omitempty"`
	Region      string     `json:"region,omitempty"`
	Country     string     `json:"country,omitempty"`
	Coordinates Coordinate `json:"coordinates"`
}

// Label returns the most specific human-readable name available.
func (p *Place) Label() string {
	switch {
	case p == nil:
		return ""
	case p.City != "":
		return p.City
	case p.Region != "":
		return p.Region
	default:
		return p.Name
	}
}

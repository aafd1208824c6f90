package contracts

// DeviceInfo describes one MIDI output destination.
type DeviceInfo struct {
	ID           int    // Index to pass to ClientMIDI.SelectDevice.
	Name         string // Destination name as reported by the platform.
	Manufacturer string // Device manufacturer, when the platform knows it.
	EntityName   string // Name of the entity to which the destination belongs.
}

func (d DeviceInfo) String() string {
	if d.Manufacturer == "" {
		return d.Name
	}
	return d.Name + " (" + d.Manufacturer + ")"
}

package configuration

type FanConfig struct {
	Name  string          `json:"name"`
	Mode  ModeConfig      `json:"mode"`
	Read  []ChannelConfig `json:"read"`
	Write []ChannelConfig `json:"write"`
	// Temp is the register of the temperature channel, its domain is [0, maxTemp]
	Temp RegisterAddress `json:"temp"`
}

type ModeConfig struct {
	Register RegisterAddress `json:"register"`
	Manual   int             `json:"manual"`
	Auto     int             `json:"auto"`
}

// ChannelConfig describes a register holding a value in [Min, Max]
type ChannelConfig struct {
	Register RegisterAddress `json:"register"`
	Min      int             `json:"min"`
	Max      int             `json:"max"`
}

package game

type Difficulty struct {
	Name  string `yaml:"name"`
	Meter string `yaml:"meter,omitempty"`
}

// Chart types that map onto the four lanes
var NKeyMap = map[string]uint8{
	"dance-single": LaneCount,
}

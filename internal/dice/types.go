package dice

// Bounds on the configurable fields of a die.
const (
	MinCount    = 1
	MaxCount    = 10
	MinModifier = -20
	MaxModifier = 20
	MinFaces    = 1
	MaxFaces    = 9999
)

// CustomID is the id of the free-valued die.
const CustomID = "custom"

// DefaultCustomFaces is the face count a custom die starts with.
const DefaultCustomFaces = 10

// StandardFaces lists the polyhedral dice every board carries.
var StandardFaces = []int{4, 6, 8, 10, 12, 20, 100}

// Palette holds the color tokens offered by the color picker.
var Palette = []string{
	"#eab308", "#ef4444", "#3b82f6", "#10b981", "#f97316",
	"#8b5cf6", "#ec4899", "#06b6d4", "#64748b",
}

// Die is one configurable slot on the board and its last roll.
type Die struct {
	ID           string
	Faces        int
	Custom       bool
	Selected     bool
	Count        int
	Modifier     int
	Color        string
	DefaultColor string
	Rolls        []int
	Result       *int // nil until rolled, and again once deselected and rerolled

	// FaceText is the free-text field backing a custom die's face count.
	FaceText string
}

// Features gates the optional controls of the board.
type Features struct {
	Color    bool `yaml:"color" env:"COLOR"`
	Modifier bool `yaml:"modifier" env:"MODIFIER"`
	Custom   bool `yaml:"custom" env:"CUSTOM"`
}

// AllFeatures enables every optional control.
func AllFeatures() Features {
	return Features{Color: true, Modifier: true, Custom: true}
}

// Board is the whole widget state for one session.
type Board struct {
	Dice     []Die
	Rolling  bool
	Features Features
}

// DieSpec describes one die of a dice set file.
type DieSpec struct {
	ID     string `yaml:"id"`
	Faces  int    `yaml:"faces"`
	Color  string `yaml:"color"`
	Custom bool   `yaml:"custom"`
}

// Set is the list of dice a board is created from.
type Set struct {
	Name string    `yaml:"name"`
	Dice []DieSpec `yaml:"dice"`
}

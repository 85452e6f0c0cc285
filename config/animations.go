package config

// AnimationID names an animation in an entity's animation set
type AnimationID int

const (
	StillUp AnimationID = iota
)

func (id AnimationID) String() string {
	switch id {
	case StillUp:
		return "still_up"
	}
	return "unknown"
}

// EndControl decides what happens when an animation reaches its last frame
type EndControl int

const (
	EndLoop EndControl = iota
	EndStay
)

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
	End   EndControl
}

// CharacterAnimations maps a character key (e.g., "hero")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[AnimationID]AnimationDef{
	"hero": {
		StillUp: {First: 0, Last: 3, Step: 1, Speed: 8, End: EndLoop},
	},
}

// StartAnimation is played on every animated entity once loading completes
const StartAnimation = StillUp

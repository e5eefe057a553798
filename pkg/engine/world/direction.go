package world

// Direction names used by the reference world. The map is data driven, so any
// string a room declares an exit under is a legal direction.
const (
	North = "north"
	East  = "east"
	South = "south"
	West  = "west"
)

// Opposite returns the opposite cardinal direction.
// The second result is false for non-cardinal directions.
func Opposite(dir string) (string, bool) {
	switch dir {
	case North:
		return South, true
	case South:
		return North, true
	case East:
		return West, true
	case West:
		return East, true
	default:
		return "", false
	}
}

package foamedit

// State is the lifecycle of an open file. Mutations move a Clean file
// to Dirty; the next structural read rebuilds the node tree and moves
// it back.
type State int

const (
	Unloaded State = iota
	Clean
	Dirty
)

func (s State) String() string {
	t, ok := map[State]string{
		Unloaded: "Unloaded",
		Clean:    "Clean",
		Dirty:    "Dirty",
	}[s]
	if ok {
		return t
	}
	return "<unknown state>"
}

package sonar

// State is the hazard tier presented for one tick
type State uint8

const (
	Normal State = iota
	Attention
	Critical
	Error
)

func (s State) String() string {
	switch s {
	case Normal:
		return "NORMAL"
	case Attention:
		return "ATTENTION"
	case Critical:
		return "CRITICAL"
	case Error:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Upper bounds of each tier, inclusive
const (
	CriticalMax  Distance = 70
	AttentionMax Distance = 150
)

// Classify maps a valid distance to its hazard tier.  The closest
// threshold is checked first.
func Classify(d Distance) State {
	switch {
	case d <= CriticalMax:
		return Critical
	case d <= AttentionMax:
		return Attention
	}
	return Normal
}

package corridor

// Tuning constants shared by the pattern implementations and the growth
// operations, so every corridor species has one knob.
const (
	// baseWalkLen is the minimum length of a random-walk corridor.
	baseWalkLen = 8
	// walkLenJitter is the random extra length added on top of baseWalkLen.
	walkLenJitter = 8
	// extraWalks is how many corridors PatternRandom emits beyond roomCount.
	extraWalks = 2
	// extendStep is how many cells one Extend call appends.
	extendStep = 6
	// latticePitch is the row/column spacing of the PatternGrid lattice.
	latticePitch = 6
	// longPerAxis is how many spanning corridors AddLongCorridors lays per axis.
	longPerAxis = 2
	// cardinalSpokes is the spoke count PatternStar always starts with.
	cardinalSpokes = 4
)

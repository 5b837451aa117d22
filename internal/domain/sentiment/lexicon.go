package sentiment

// AFINN-style word weights in [-5, 5].
var lexicon = map[string]int{
	"amazing":     4,
	"awesome":     4,
	"banger":      3,
	"beautiful":   3,
	"best":        3,
	"bop":         2,
	"brilliant":   4,
	"catchy":      2,
	"classic":     2,
	"cool":        1,
	"enjoy":       2,
	"enjoyed":     2,
	"excellent":   3,
	"fantastic":   4,
	"favorite":    2,
	"favourite":   2,
	"fun":         4,
	"good":        3,
	"great":       3,
	"happy":       3,
	"incredible":  4,
	"joy":         3,
	"like":        2,
	"liked":       2,
	"love":        3,
	"loved":       3,
	"lovely":      3,
	"nice":        3,
	"perfect":     3,
	"superb":      5,
	"sweet":       2,
	"triumph":     4,
	"wonderful":   4,
	"wow":         4,
	"annoying":    -2,
	"awful":       -3,
	"bad":         -3,
	"boring":      -3,
	"cringe":      -2,
	"dislike":     -2,
	"doom":        -2,
	"dreadful":    -3,
	"dull":        -2,
	"gloom":       -1,
	"hate":        -3,
	"hated":       -3,
	"horrible":    -3,
	"meh":         -1,
	"mediocre":    -2,
	"sad":         -2,
	"skip":        -1,
	"terrible":    -3,
	"ugly":        -3,
	"unbearable":  -3,
	"vile":        -3,
	"worst":       -3,
}

var negators = map[string]struct{}{
	"not":    {},
	"no":     {},
	"never":  {},
	"don't":  {},
	"dont":   {},
	"didn't": {},
	"didnt":  {},
	"isn't":  {},
	"isnt":   {},
	"wasn't": {},
	"wasnt":  {},
	"can't":  {},
	"cant":   {},
}

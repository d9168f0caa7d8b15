package xiangting

// terminalTiles lists the 13 terminal/honor tile indices used by the
// thirteen-orphans evaluator: 1 and 9 of each numeric suit, plus all
// seven honors.
var terminalTiles = []Tile{
	New(Character, 1), New(Character, 9),
	New(Dot, 1), New(Dot, 9),
	New(Bamboo, 1), New(Bamboo, 9),
	New(Honor, 1), New(Honor, 2), New(Honor, 3), New(Honor, 4),
	New(Honor, 5), New(Honor, 6), New(Honor, 7),
}

// shisanyaoReplacementNumber computes the thirteen-orphans replacement
// number.
func shisanyaoReplacementNumber(hand TileCounts) int {
	k := 0
	hasPair := false
	for _, t := range terminalTiles {
		if hand[t] >= 1 {
			k++
		}
		if hand[t] >= 2 {
			hasPair = true
		}
	}
	r := 14 - k
	if hasPair {
		r--
	}
	return r
}

// shisanyaoNecessaryTiles returns the tiles that, if drawn, strictly
// reduce the thirteen-orphans replacement number.
func shisanyaoNecessaryTiles(hand TileCounts) TileFlags {
	var f TileFlags
	hasPair := false
	for _, t := range terminalTiles {
		if hand[t] >= 2 {
			hasPair = true
		}
	}
	for _, t := range terminalTiles {
		if hand[t] == 0 {
			f = f.Set(t)
		} else if !hasPair && hand[t] == 1 {
			f = f.Set(t)
		}
	}
	return f
}

// shisanyaoUnnecessaryTiles returns the tiles that, if discarded, leave
// the thirteen-orphans replacement number unchanged.
func shisanyaoUnnecessaryTiles(hand TileCounts) TileFlags {
	var f TileFlags
	terminal := make(map[Tile]bool, len(terminalTiles))
	for _, t := range terminalTiles {
		terminal[t] = true
	}
	numPairs := 0
	for _, t := range terminalTiles {
		if hand[t] >= 2 {
			numPairs++
		}
	}
	for t := Tile(0); t < NumTiles; t++ {
		if !terminal[t] {
			if hand[t] > 0 {
				f = f.Set(t)
			}
			continue
		}
		if hand[t] >= 3 || (hand[t] == 2 && numPairs >= 2) {
			f = f.Set(t)
		}
	}
	return f
}

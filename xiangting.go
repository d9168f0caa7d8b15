package xiangting

// Result bundles the outcome of a full hand analysis.
type Result struct {
	Replacement int
	Necessary   TileFlags
	Unnecessary TileFlags
}

// IsWinning reports whether the hand is already a complete winning hand.
func (r Result) IsWinning() bool {
	return r.Replacement == 0
}

// prepare validates hand and melds, returning the concealed hand size,
// the number of already-declared melds, the domain used by the
// seven-pairs evaluator, whether three-player rules apply, and the
// declared-meld tile counts to fold into the four-copy correction (nil
// if melds is nil, per the caller-controlled switch in spec §9).
func prepare(hand TileCounts, melds []Meld, pc PlayerCount) (size, declared int, domain []Tile, threePlayer bool, meldCounts *TileCounts, err error) {
	size, err = hand.Validate(pc)
	if err != nil {
		return 0, 0, nil, false, nil, err
	}
	threePlayer = pc == Three
	if melds != nil {
		extra, verr := validateMelds(melds, pc)
		if verr != nil {
			return 0, 0, nil, false, nil, verr
		}
		meldCounts = &extra
	}
	declared = 4 - RequiredMelds(size)
	domain = fourPlayerDomain
	if threePlayer {
		domain = threePlayerDomain
	}
	return size, declared, domain, threePlayer, meldCounts, nil
}

// replacementNumber computes the overall replacement number (the
// minimum across the standard, seven-pairs, and thirteen-orphans
// families) for an already-validated hand.
func replacementNumber(hand TileCounts, declared int, domain []Tile, threePlayer bool, meldCounts *TileCounts) int {
	min := standardReplacementNumber(hand, declared, meldCounts, threePlayer)
	if declared == 0 {
		// no melds declared: seven-pairs and thirteen-orphans are legal.
		if r := qiduiziReplacementNumber(hand, domain); r < min {
			min = r
		}
		if r := shisanyaoReplacementNumber(hand); r < min {
			min = r
		}
	}
	return min
}

// ReplacementNumber returns the replacement number for hand under
// player count pc, with optional declared melds.
func ReplacementNumber(hand TileCounts, melds []Meld, pc PlayerCount) (int, error) {
	_, declared, domain, threePlayer, meldCounts, err := prepare(hand, melds, pc)
	if err != nil {
		return 0, err
	}
	return replacementNumber(hand, declared, domain, threePlayer, meldCounts), nil
}

// NecessaryTiles returns the replacement number and the set of tiles
// that, if drawn, strictly reduce it.
func NecessaryTiles(hand TileCounts, melds []Meld, pc PlayerCount) (int, TileFlags, error) {
	_, declared, domain, threePlayer, meldCounts, err := prepare(hand, melds, pc)
	if err != nil {
		return 0, 0, err
	}
	base := replacementNumber(hand, declared, domain, threePlayer, meldCounts)
	var necessary TileFlags
	for t := Tile(0); t < NumTiles; t++ {
		if threePlayer && !inDomain(domain, t) {
			continue
		}
		if hand[t] >= 4 {
			continue
		}
		h := hand
		h[t]++
		if replacementNumber(h, declared, domain, threePlayer, meldCounts) < base {
			necessary = necessary.Set(t)
		}
	}
	return base, necessary, nil
}

// UnnecessaryTiles returns the replacement number and the set of tiles
// that, if discarded, leave it unchanged.
func UnnecessaryTiles(hand TileCounts, melds []Meld, pc PlayerCount) (int, TileFlags, error) {
	_, declared, domain, threePlayer, meldCounts, err := prepare(hand, melds, pc)
	if err != nil {
		return 0, 0, err
	}
	base := replacementNumber(hand, declared, domain, threePlayer, meldCounts)
	var unnecessary TileFlags
	for t := Tile(0); t < NumTiles; t++ {
		if hand[t] == 0 {
			continue
		}
		h := hand
		h[t]--
		if replacementNumber(h, declared, domain, threePlayer, meldCounts) == base {
			unnecessary = unnecessary.Set(t)
		}
	}
	return base, unnecessary, nil
}

// Analyze computes the replacement number together with the necessary
// and unnecessary tile sets in a single call.
func Analyze(hand TileCounts, melds []Meld, pc PlayerCount) (Result, error) {
	_, declared, domain, threePlayer, meldCounts, err := prepare(hand, melds, pc)
	if err != nil {
		return Result{}, err
	}
	base := replacementNumber(hand, declared, domain, threePlayer, meldCounts)

	var necessary, unnecessary TileFlags
	for t := Tile(0); t < NumTiles; t++ {
		if hand[t] < 4 {
			h := hand
			h[t]++
			if replacementNumber(h, declared, domain, threePlayer, meldCounts) < base {
				necessary = necessary.Set(t)
			}
		}
		if hand[t] > 0 {
			h := hand
			h[t]--
			if replacementNumber(h, declared, domain, threePlayer, meldCounts) == base {
				unnecessary = unnecessary.Set(t)
			}
		}
	}
	return Result{Replacement: base, Necessary: necessary, Unnecessary: unnecessary}, nil
}

func inDomain(domain []Tile, t Tile) bool {
	for _, d := range domain {
		if d == t {
			return true
		}
	}
	return false
}

package xiangting

// shupaiTileGroup computes the two representative block decompositions
// (A: minimum isolated tiles, B: maximum melds) of a numeric suit's
// 9-slot count vector, given the suit-local jiangpai rank (-1 if no
// rank is set aside as the pair) and the suit-local four-copy mask (bit
// n set if rank n is held in all four copies, across hand and melds).
//
// A kanchan/ryanmen dazi is only counted as a meld candidate if its
// remaining wait is not already fully held (it could never complete),
// and a duizi is only counted if its rank is not the jiangpai rank (a
// pair already set aside cannot also stand as a second meld candidate
// at that same rank).
func shupaiTileGroup(counts [9]uint8, jiangpai int, fourTiles uint16) (a, b BlockCount) {
	return countShupaiTileGroup(&counts, 0, jiangpai, fourTiles)
}

func countShupaiTileGroup(c *[9]uint8, n, jiangpai int, fourTiles uint16) (BlockCount, BlockCount) {
	if n > 8 {
		var sum uint8
		var mask uint16
		for i, v := range c {
			sum += v
			if v > 0 {
				mask |= 1 << uint(i)
			}
		}
		leaf := BlockCount{IsolatedN: sum, IsolatedMask: mask}
		return leaf, leaf
	}

	bestA, bestB := countShupaiTileGroup(c, n+1, jiangpai, fourTiles)

	update := func(ra, rb BlockCount) {
		if ra.IsolatedN < bestA.IsolatedN ||
			(ra.IsolatedN == bestA.IsolatedN && ra.Joints() < bestA.Joints()) {
			bestA = ra
		}
		if rb.Mianzi > bestB.Mianzi ||
			(rb.Mianzi == bestB.Mianzi && rb.Joints() > bestB.Joints()) {
			bestB = rb
		}
	}

	if n <= 6 && c[n] > 0 && c[n+1] > 0 && c[n+2] > 0 {
		c[n]--
		c[n+1]--
		c[n+2]--
		ra, rb := countShupaiTileGroup(c, n, jiangpai, fourTiles)
		c[n]++
		c[n+1]++
		c[n+2]++
		ra.Mianzi++
		rb.Mianzi++
		update(ra, rb)
	}

	if c[n] >= 3 {
		c[n] -= 3
		ra, rb := countShupaiTileGroup(c, n, jiangpai, fourTiles)
		c[n] += 3
		ra.Mianzi++
		rb.Mianzi++
		update(ra, rb)
	}

	if n <= 6 && c[n] > 0 && c[n+2] > 0 {
		c[n]--
		c[n+2]--
		ra, rb := countShupaiTileGroup(c, n, jiangpai, fourTiles)
		c[n]++
		c[n+2]++
		if fourTiles&(1<<uint(n+1)) == 0 {
			ra.Dazi++
			rb.Dazi++
		}
		update(ra, rb)
	}

	if n <= 7 && c[n] > 0 && c[n+1] > 0 {
		c[n]--
		c[n+1]--
		ra, rb := countShupaiTileGroup(c, n, jiangpai, fourTiles)
		c[n]++
		c[n+1]++

		var waitConsumed bool
		switch n {
		case 0:
			waitConsumed = fourTiles&(1<<2) != 0
		case 7:
			waitConsumed = fourTiles&(1<<6) != 0
		default:
			waitConsumed = fourTiles&(1<<uint(n-1)) != 0 && fourTiles&(1<<uint(n+2)) != 0
		}
		if !waitConsumed {
			ra.Dazi++
			rb.Dazi++
		}
		update(ra, rb)
	}

	if c[n] >= 2 {
		c[n] -= 2
		ra, rb := countShupaiTileGroup(c, n, jiangpai, fourTiles)
		c[n] += 2
		if n != jiangpai {
			ra.Duizi++
			rb.Duizi++
		}
		update(ra, rb)
	}

	return bestA, bestB
}

// zipaiTileGroup computes the honor suit's single decomposition: no
// sequences or partial sequences exist, so it is a direct per-rank
// count classification. jiangpai is the suit-local honor rank (0..6)
// set aside as the pair, or -1.
func zipaiTileGroup(counts []uint8, jiangpai int) BlockCount {
	var bc BlockCount
	for i, n := range counts {
		switch n {
		case 4:
			bc.Mianzi++
			bc.IsolatedN++
			bc.IsolatedMask |= 1 << uint(i)
		case 3:
			bc.Mianzi++
		case 2:
			if i != jiangpai {
				bc.Duizi++
			}
		case 1:
			bc.IsolatedN++
			bc.IsolatedMask |= 1 << uint(i)
		}
	}
	return bc
}

// shupaiCandidates returns the one-or-two representative block-count
// decompositions (min-isolated, max-meld) for a numeric suit's 9-slot
// count vector, with no jiangpai or four-copy context.
func shupaiCandidates(counts []uint8) []BlockCount {
	var c [9]uint8
	copy(c[:], counts)
	a, b := shupaiTileGroup(c, -1, 0)
	if a == b {
		return []BlockCount{a}
	}
	return []BlockCount{a, b}
}

// zipaiCandidate returns the honor suit's single canonical decomposition.
func zipaiCandidate(counts []uint8) BlockCount {
	return zipaiTileGroup(counts, -1)
}

// wanziCandidate returns the three-player character-suit decomposition
// restricted to ranks 1 and 9, with no jiangpai context.
func wanziCandidate(counts []uint8) BlockCount {
	return wanziAt(counts[0], counts[8])
}

// wanziTileGroup is wanziCandidate's jiangpai-aware counterpart: ranks
// 1 and 9 form no sequences, so like zipaiTileGroup it is a direct
// per-rank classification, only over indices 0 and 8. jiangpai is the
// suit-local rank (0 or 8) set aside as the pair, or -1.
func wanziTileGroup(counts []uint8, jiangpai int) BlockCount {
	var bc BlockCount
	for _, i := range [2]int{0, 8} {
		switch counts[i] {
		case 4:
			bc.Mianzi++
			bc.IsolatedN++
			bc.IsolatedMask |= 1 << uint(i)
		case 3:
			bc.Mianzi++
		case 2:
			if i != jiangpai {
				bc.Duizi++
			}
		case 1:
			bc.IsolatedN++
			bc.IsolatedMask |= 1 << uint(i)
		}
	}
	return bc
}

// calculateReplacementNumberFormula is the global combiner formula: given
// the total melds, meld-candidates (pairs + partial sequences), and
// isolated tiles across all four suits, plus whether a pair has been
// set aside, compute the standard-form replacement number.
//
// Reference: https://blog.kobalab.net/entry/20170917/1505601161
func calculateReplacementNumberFormula(mianzi, candidate, gulipai int, hasJiangpai bool) int {
	if mianzi+candidate > 4 {
		gulipai += mianzi + candidate - 4
		candidate = 4 - mianzi
	}
	if hasJiangpai {
		candidate++
	}
	if mianzi+candidate+gulipai > 5 {
		gulipai = 5 - mianzi - candidate
	}
	return 14 - mianzi*3 - candidate*2 - gulipai
}

// suitMasks merges four suits' suit-local isolated-tile masks into a
// single 34-bit-wide flag set.
func suitMasks(m, p, s uint16, z uint8) TileFlags {
	var f TileFlags
	f |= TileFlags(m)
	f |= TileFlags(p) << 9
	f |= TileFlags(s) << 18
	f |= TileFlags(z) << 27
	return f
}

// offsetJiangpai translates a global jiangpai tile index into a
// suit-local rank offset, or -1 if the jiangpai rank falls outside
// [start, upper).
func offsetJiangpai(jiangpai, start, upper int) int {
	if jiangpai >= start && jiangpai < upper {
		return jiangpai - start
	}
	return -1
}

// calculateReplacementNumberInner computes the standard-form replacement
// number for one concrete hand configuration (pair set aside or not),
// trying every combination of the numeric suits' (up to) two candidate
// decompositions against the honor suit's single decomposition.
func calculateReplacementNumberInner(hand TileCounts, numFulu int, fourTiles TileFlags, jiangpai int) int {
	hasJiangpai := jiangpai >= 0
	jM := offsetJiangpai(jiangpai, 0, 9)
	jP := offsetJiangpai(jiangpai, 9, 18)
	jS := offsetJiangpai(jiangpai, 18, 27)
	jZ := offsetJiangpai(jiangpai, 27, 34)

	var cm, cp, cs [9]uint8
	copy(cm[:], hand[0:9])
	copy(cp[:], hand[9:18])
	copy(cs[:], hand[18:27])

	const suitMask = 1<<9 - 1
	fm := uint16(fourTiles) & suitMask
	fp := uint16(fourTiles>>9) & suitMask
	fs := uint16(fourTiles>>18) & suitMask

	mA, mB := shupaiTileGroup(cm, jM, fm)
	pA, pB := shupaiTileGroup(cp, jP, fp)
	sA, sB := shupaiTileGroup(cs, jS, fs)
	z := zipaiTileGroup(hand[27:34], jZ)

	min := 14
	for _, m := range [2]BlockCount{mA, mB} {
		for _, p := range [2]BlockCount{pA, pB} {
			for _, s := range [2]BlockCount{sA, sB} {
				if r := combine(m, p, s, z, numFulu, fourTiles, hasJiangpai, false); r < min {
					min = r
					if min == 0 {
						return 0
					}
				}
			}
		}
	}
	return min
}

// calculateReplacementNumberInner3p is the three-player variant, which
// restricts the character suit to its ranks 1 and 9 block count.
func calculateReplacementNumberInner3p(hand TileCounts, numFulu int, fourTiles TileFlags, jiangpai int) int {
	hasJiangpai := jiangpai >= 0
	jM := offsetJiangpai(jiangpai, 0, 9)
	jP := offsetJiangpai(jiangpai, 9, 18)
	jS := offsetJiangpai(jiangpai, 18, 27)
	jZ := offsetJiangpai(jiangpai, 27, 34)

	m := wanziTileGroup(hand[0:9], jM)

	var cp, cs [9]uint8
	copy(cp[:], hand[9:18])
	copy(cs[:], hand[18:27])

	const suitMask = 1<<9 - 1
	fp := uint16(fourTiles>>9) & suitMask
	fs := uint16(fourTiles>>18) & suitMask

	pA, pB := shupaiTileGroup(cp, jP, fp)
	sA, sB := shupaiTileGroup(cs, jS, fs)
	z := zipaiTileGroup(hand[27:34], jZ)

	min := 14
	for _, p := range [2]BlockCount{pA, pB} {
		for _, s := range [2]BlockCount{sA, sB} {
			if r := combine(m, p, s, z, numFulu, fourTiles, hasJiangpai, true); r < min {
				min = r
				if min == 0 {
					return 0
				}
			}
		}
	}
	return min
}

// combine merges one candidate decomposition per suit into the total
// meld/candidate/isolated counts, applies the four-copy gulipai
// correction, and evaluates the combiner formula.
//
// A tile held in all four copies can never complete a pair, so it is
// dropped from the isolated count outright. If it sits in one of the
// suits eligible to form a sequence (numeric suits in four-player
// mode; only p/s in three-player mode, since wanzi is terminal-only
// and never forms a sequence) and at least two such isolated
// four-copy tiles remain with room for another meld, one of them is
// still recoverable as a sequence candidate (it can pair up with
// another isolated four-copy tile to form a dazi), so the correction
// restores one.
func combine(m, p, s, z BlockCount, numFulu int, fourTiles TileFlags, hasJiangpai, threePlayer bool) int {
	mianzi := numFulu + int(m.Mianzi) + int(p.Mianzi) + int(s.Mianzi) + int(z.Mianzi)
	dazi := int(m.Dazi) + int(p.Dazi) + int(s.Dazi)
	duizi := int(m.Duizi) + int(p.Duizi) + int(s.Duizi) + int(z.Duizi)
	candidate := dazi + duizi
	gulipai := int(m.IsolatedN) + int(p.IsolatedN) + int(s.IsolatedN) + int(z.IsolatedN)

	if fourTiles != 0 {
		mask := suitMasks(m.IsolatedMask, p.IsolatedMask, s.IsolatedMask, uint8(z.IsolatedMask))
		blocked := fourTiles & mask
		if blocked != 0 {
			var sequenceEligible TileFlags
			if threePlayer {
				sequenceEligible = TileFlags(1<<18-1) << 9 // p, s: bits 9..26
			} else {
				sequenceEligible = TileFlags(1<<27 - 1) // m, p, s: bits 0..26
			}

			recoverable := blocked & sequenceEligible
			numRecoverable := recoverable.Count()
			if mianzi < 4 && numRecoverable >= 2 {
				numRecoverable--
			}
			gulipai -= numRecoverable

			rest := blocked &^ sequenceEligible
			gulipai -= rest.Count()
		}
	}

	return calculateReplacementNumberFormula(mianzi, candidate, gulipai, hasJiangpai)
}

// fourCopyTiles returns the set of tiles held in quantity four across
// the concealed hand and (if non-nil) the declared melds.
func fourCopyTiles(hand TileCounts, meldCounts *TileCounts) TileFlags {
	var f TileFlags
	for t := Tile(0); t < NumTiles; t++ {
		n := hand[t]
		if meldCounts != nil {
			n += meldCounts[t]
		}
		if n == 4 {
			f = f.Set(t)
		}
	}
	return f
}

// standardReplacementNumber computes the standard-form replacement
// number for a validated hand: the concealed tile counts, the number
// of melds already declared, and whether meld tiles are counted
// toward the four-copy correction (meldCounts non-nil).
func standardReplacementNumber(hand TileCounts, numFulu int, meldCounts *TileCounts, threePlayer bool) int {
	fourTiles := fourCopyTiles(hand, meldCounts)
	inner := calculateReplacementNumberInner
	if threePlayer {
		inner = calculateReplacementNumberInner3p
	}

	min := inner(hand, numFulu, fourTiles, -1)
	if min == 0 {
		return 0
	}
	for n := Tile(0); n < NumTiles; n++ {
		if hand[n] >= 2 {
			h := hand
			h[n] -= 2
			temp := inner(h, numFulu, fourTiles, int(n))
			if temp < min {
				min = temp
			}
			if min == 0 {
				return 0
			}
		}
	}
	return min
}

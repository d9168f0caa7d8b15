package xiangting

import "testing"

func TestCalculateReplacementNumberFormula(t *testing.T) {
	tests := []struct {
		mianzi, candidate, gulipai int
		hasJiangpai                bool
		want                       int
	}{
		{4, 0, 1, true, 0},  // four melds plus an already-set-aside pair
		{4, 1, 0, false, 1}, // four melds plus an un-promoted pair candidate: still need the eye
		{0, 0, 0, false, 14}, // empty hand
		{3, 1, 1, false, 2}, // three melds, one candidate, one isolated tile
	}
	for _, tt := range tests {
		got := calculateReplacementNumberFormula(tt.mianzi, tt.candidate, tt.gulipai, tt.hasJiangpai)
		if got != tt.want {
			t.Errorf("calculateReplacementNumberFormula(%d,%d,%d,%v) = %d, want %d",
				tt.mianzi, tt.candidate, tt.gulipai, tt.hasJiangpai, got, tt.want)
		}
	}
}

func TestShupaiCandidatesKnownVector(t *testing.T) {
	// From the original source's own unit test: single-suit counts
	// [1,0,3,1,2,1,0,1,0] decompose into pattern A (mianzi=1,dazi=3,
	// duizi=0,gulipai=0) and pattern B (mianzi=2,dazi=0,duizi=0,gulipai=3).
	counts := []uint8{1, 0, 3, 1, 2, 1, 0, 1, 0}
	cands := shupaiCandidates(counts)
	if len(cands) != 2 {
		t.Fatalf("shupaiCandidates() returned %d candidates, want 2", len(cands))
	}
	a, b := cands[0], cands[1]
	if a.Mianzi != 1 || a.Dazi != 3 || a.Duizi != 0 || a.IsolatedN != 0 {
		t.Errorf("pattern A = %+v, want mianzi=1 dazi=3 duizi=0 gulipai=0", a)
	}
	if b.Mianzi != 2 || b.Dazi != 0 || b.Duizi != 0 || b.IsolatedN != 3 {
		t.Errorf("pattern B = %+v, want mianzi=2 dazi=0 duizi=0 gulipai=3", b)
	}
}

func TestStandardReplacementNumberWinningHand(t *testing.T) {
	// 123m 456p 789s 11z 222z
	hand := mustCounts(
		"1m", "2m", "3m",
		"4p", "5p", "6p",
		"7s", "8s", "9s",
		"1z", "1z",
		"2z", "2z", "2z",
	)
	if got := standardReplacementNumber(hand, 0, nil, false); got != 0 {
		t.Errorf("standardReplacementNumber() = %d, want 0", got)
	}
}

func TestStandardReplacementNumberTenpai(t *testing.T) {
	// 123m 456p 789s 1z1z 2z2z, waiting on a third z1 or z2 (shanpon).
	hand := mustCounts(
		"1m", "2m", "3m",
		"4p", "5p", "6p",
		"7s", "8s", "9s",
		"1z", "1z",
		"2z", "2z",
	)
	if got := standardReplacementNumber(hand, 0, nil, false); got != 1 {
		t.Errorf("standardReplacementNumber() = %d, want 1", got)
	}
}

func TestStandardReplacementNumberFourCopyBlockedWait(t *testing.T) {
	// 1111m 123p 112233s: the fourth 1m can never complete a second
	// meld, and the remaining two held as a jiangpai candidate cannot
	// also re-register as an extra duizi at that same rank. Reference:
	// original_source's own
	// calculate_replacement_number_waiting_for_the_5th_tile_1 test.
	hand := mustCounts(
		"1m", "1m", "1m", "1m",
		"1p", "2p", "3p",
		"1s", "1s", "2s", "2s", "3s", "3s",
	)
	if got := standardReplacementNumber(hand, 0, nil, false); got != 2 {
		t.Errorf("standardReplacementNumber() = %d, want 2", got)
	}
}

func TestStandardReplacementNumberThreePlayerIsolatedWanzi(t *testing.T) {
	// 1m 456p 789p 789s 555z (three-player): the lone 1m is an
	// isolated tile, not a meld candidate, and contributes exactly one
	// to the gulipai correction.
	hand := mustCounts(
		"1m",
		"4p", "5p", "6p", "7p", "8p", "9p",
		"7s", "8s", "9s",
		"5z", "5z", "5z",
	)
	if got := standardReplacementNumber(hand, 0, nil, true); got != 1 {
		t.Errorf("standardReplacementNumber() = %d, want 1", got)
	}
}

func TestStandardReplacementNumberThreePlayerFourWanzi(t *testing.T) {
	// Four copies of a terminal character tile: one can never become a
	// second pair/meld, exercising the 3p-scoped four-copy correction
	// in combine() (restricted to p/s, bits 9..26) alongside the
	// wanzi-specific subtraction. Reference: original_source's
	// calculate_replacement_number_3_player_4_19m_1/2/3 tests.
	hand := mustCounts(
		"1m", "1m", "1m", "1m",
		"1p", "1p", "1p",
		"2p", "2p", "2p",
		"3p", "3p", "3p",
	)
	if got := standardReplacementNumber(hand, 0, nil, true); got != 2 {
		t.Errorf("standardReplacementNumber() = %d, want 2", got)
	}
}

func TestWanziCandidateThreePlayer(t *testing.T) {
	// Three copies of 1m and three of 9m: a triplet each, no isolated
	// tiles.
	counts := []uint8{3, 0, 0, 0, 0, 0, 0, 0, 3}
	bc := wanziCandidate(counts)
	if bc.Mianzi != 2 {
		t.Errorf("wanziCandidate(%v).Mianzi = %d, want 2", counts, bc.Mianzi)
	}
}

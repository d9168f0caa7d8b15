package xiangting

import "testing"

func TestReplacementNumberWinningHand(t *testing.T) {
	// spec row 1: 123m 456p 789s 11z 222z, sum 14.
	hand := mustCounts(
		"1m", "2m", "3m",
		"4p", "5p", "6p",
		"7s", "8s", "9s",
		"1z", "1z",
		"2z", "2z", "2z",
	)
	got, err := ReplacementNumber(hand, nil, Four)
	if err != nil {
		t.Fatalf("ReplacementNumber() errored: %v", err)
	}
	if got != 0 {
		t.Errorf("ReplacementNumber() = %d, want 0", got)
	}
}

func TestReplacementNumberStandardTenpai(t *testing.T) {
	// spec row 2: 123m 456p 789s 11z 22z, sum 13, necessary = {z1, z2}.
	hand := mustCounts(
		"1m", "2m", "3m",
		"4p", "5p", "6p",
		"7s", "8s", "9s",
		"1z", "1z",
		"2z", "2z",
	)
	res, err := Analyze(hand, nil, Four)
	if err != nil {
		t.Fatalf("Analyze() errored: %v", err)
	}
	if res.Replacement != 1 {
		t.Errorf("Replacement = %d, want 1", res.Replacement)
	}
	for _, tile := range []Tile{New(Honor, 1), New(Honor, 2)} {
		if !res.Necessary.Has(tile) {
			t.Errorf("necessary tiles missing %s", tile)
		}
	}
}

func TestReplacementNumberThirteenOrphansTenpai(t *testing.T) {
	// spec row 3: the thirteen-orphans family wins the minimum.
	hand := mustCounts(
		"1m", "9m", "1p", "9p", "1s", "9s",
		"1z", "2z", "3z", "4z", "5z", "6z", "7z",
	)
	got, err := ReplacementNumber(hand, nil, Four)
	if err != nil {
		t.Fatalf("ReplacementNumber() errored: %v", err)
	}
	if got != 1 {
		t.Errorf("ReplacementNumber() = %d, want 1", got)
	}
}

func TestReplacementNumberSevenPairsTenpai(t *testing.T) {
	// spec row 4: the seven-pairs family wins the minimum.
	hand := mustCounts(
		"1m", "1m", "8m", "8m",
		"2p", "8p", "8p",
		"5s", "5s",
		"1z", "1z", "7z", "7z",
	)
	got, err := ReplacementNumber(hand, nil, Four)
	if err != nil {
		t.Fatalf("ReplacementNumber() errored: %v", err)
	}
	if got != 1 {
		t.Errorf("ReplacementNumber() = %d, want 1", got)
	}
}

func TestReplacementNumberDisablesSpecialFormsWithMelds(t *testing.T) {
	// Once melds are declared, seven-pairs and thirteen-orphans no
	// longer apply even if the remaining concealed tiles resemble them.
	hand := mustCounts("1m", "9m", "1p", "9p", "1s", "9s", "1z", "2z", "3z", "4z")
	melds := []Meld{NewTriplet(New(Honor, 5))}
	got, err := ReplacementNumber(hand, melds, Four)
	if err != nil {
		t.Fatalf("ReplacementNumber() errored: %v", err)
	}
	// with one meld declared, only the standard form applies; a
	// scattering of ten distinct singles is far from tenpai.
	if got < 2 {
		t.Errorf("ReplacementNumber() = %d, want >= 2 (special forms disabled)", got)
	}
}

func TestReplacementNumberInvalidSize(t *testing.T) {
	hand := mustCounts("1m", "2m", "3m")
	if _, err := ReplacementNumber(hand, nil, Four); err != ErrInvalidTileCount {
		t.Errorf("ReplacementNumber() error = %v, want ErrInvalidTileCount", err)
	}
}

func TestReplacementNumberInvalidThreePlayerTile(t *testing.T) {
	hand := mustCounts("5m", "5m", "1p", "2p", "3p", "4p", "5p", "6p", "7p", "8p", "9p", "1s", "2s")
	if _, err := ReplacementNumber(hand, nil, Three); err != ErrInvalidTileForThreePlayer {
		t.Errorf("ReplacementNumber(Three) error = %v, want ErrInvalidTileForThreePlayer", err)
	}
}

func TestResultIsWinning(t *testing.T) {
	hand := mustCounts(
		"1m", "2m", "3m",
		"4p", "5p", "6p",
		"7s", "8s", "9s",
		"1z", "1z",
		"2z", "2z", "2z",
	)
	res, err := Analyze(hand, nil, Four)
	if err != nil {
		t.Fatalf("Analyze() errored: %v", err)
	}
	if !res.IsWinning() {
		t.Error("IsWinning() = false, want true")
	}
}

func TestReplacementNumberFourCopyBlockedWait(t *testing.T) {
	// 1111m 123p 112233s (four-player): the fourth 1m is a dead wait
	// that can never complete a pair or meld, and the residual pair
	// candidate left at the jiangpai rank after pair-removal must not
	// be double-counted as an extra duizi.
	hand := mustCounts(
		"1m", "1m", "1m", "1m",
		"1p", "2p", "3p",
		"1s", "1s", "2s", "2s", "3s", "3s",
	)
	got, err := ReplacementNumber(hand, nil, Four)
	if err != nil {
		t.Fatalf("ReplacementNumber() errored: %v", err)
	}
	if got != 2 {
		t.Errorf("ReplacementNumber() = %d, want 2", got)
	}
}

func TestReplacementNumberThreePlayerIsolatedWanzi(t *testing.T) {
	// 1m 456p 789p 789s 555z (three-player): the isolated 1m
	// contributes exactly one to the gulipai correction, not two.
	hand := mustCounts(
		"1m",
		"4p", "5p", "6p", "7p", "8p", "9p",
		"7s", "8s", "9s",
		"5z", "5z", "5z",
	)
	got, err := ReplacementNumber(hand, nil, Three)
	if err != nil {
		t.Fatalf("ReplacementNumber() errored: %v", err)
	}
	if got != 1 {
		t.Errorf("ReplacementNumber() = %d, want 1", got)
	}
}

func TestThreePlayerVsFourPlayerReplacementNumber(t *testing.T) {
	// A hand legal under both rulesets (its only character tile is 1m)
	// must yield a replacement number within [0, 14] under each of them.
	hand := mustCounts(
		"1m", "1m", "1m", "1m",
		"1p", "1p", "1p", "1p",
		"2p", "2p", "2p",
		"3z", "3z",
	)
	four, err := ReplacementNumber(hand, nil, Four)
	if err != nil {
		t.Fatalf("ReplacementNumber(Four) errored: %v", err)
	}
	if four > 14 || four < 0 {
		t.Errorf("ReplacementNumber(Four) = %d, out of range", four)
	}
	three, err := ReplacementNumber(hand, nil, Three)
	if err != nil {
		t.Fatalf("ReplacementNumber(Three) errored: %v", err)
	}
	if three > 14 || three < 0 {
		t.Errorf("ReplacementNumber(Three) = %d, out of range", three)
	}
}

package xiangting

import "fmt"

// Error is a xiangting error.
type Error string

// Error satisfies the [error] interface.
func (err Error) Error() string {
	return string(err)
}

// Sentinel error values.
const (
	// ErrTooManyTiles is the too many tiles error.
	ErrTooManyTiles Error = "too many tiles"
	// ErrInvalidTileCount is the invalid tile count error.
	ErrInvalidTileCount Error = "invalid tile count"
	// ErrInvalidTileForThreePlayer is the invalid tile for three player error.
	ErrInvalidTileForThreePlayer Error = "invalid tile for three player rules"
	// ErrMeldIndexOutOfRange is the meld index out of range error.
	ErrMeldIndexOutOfRange Error = "meld index out of range"
	// ErrSequenceWithHonor is the sequence with honor error.
	ErrSequenceWithHonor Error = "sequence cannot be formed with an honor tile"
	// ErrInvalidSequenceCombination is the invalid sequence combination error.
	ErrInvalidSequenceCombination Error = "invalid sequence index and claimed-tile position combination"
	// ErrInvalidMeldForThreePlayer is the invalid meld for three player error.
	ErrInvalidMeldForThreePlayer Error = "invalid meld for three player rules"
	// ErrTooManyMelds is the too many melds error.
	ErrTooManyMelds Error = "too many melds"
)

// TooManyCopies is the too many copies of a tile error.
type TooManyCopies struct {
	Tile  Tile
	Count int
}

// Error satisfies the [error] interface.
func (err *TooManyCopies) Error() string {
	return fmt.Sprintf("tile %s: too many copies (%d)", err.Tile, err.Count)
}

// MeldIndexOutOfRange is the meld index out of range error, carrying the
// offending meld's index for diagnostics.
type MeldIndexOutOfRange struct {
	Index int
}

// Error satisfies the [error] interface.
func (err *MeldIndexOutOfRange) Error() string {
	return fmt.Sprintf("meld index %d out of range", err.Index)
}

// InvalidSequenceCombination is the invalid claimed-tile index and
// claimed-tile position combination error.
type InvalidSequenceCombination struct {
	Index    int
	Position ClaimedTilePosition
}

// Error satisfies the [error] interface.
func (err *InvalidSequenceCombination) Error() string {
	return fmt.Sprintf("invalid sequence combination: index %d, position %s", err.Index, err.Position)
}

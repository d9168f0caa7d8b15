package xiangting

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Tile is a mahjong tile index in [0,34).
//
// Layout: 0..8 is the character suit (m1..m9), 9..17 is the dot suit
// (p1..p9), 18..26 is the bamboo suit (s1..s9), 27..33 is the honor
// suit (z1..z7: East, South, West, North, White, Green, Red).
type Tile int

// NumTiles is the number of distinct tile kinds.
const NumTiles = 34

// InvalidTile is an invalid tile.
const InvalidTile Tile = -1

// TileSuit is a mahjong tile suit.
type TileSuit byte

// Tile suits.
const (
	Character TileSuit = 'm'
	Dot       TileSuit = 'p'
	Bamboo    TileSuit = 's'
	Honor     TileSuit = 'z'
)

// String satisfies the [fmt.Stringer] interface.
func (suit TileSuit) String() string {
	return string(byte(suit))
}

// New creates a tile from a suit and a 1-based rank within the suit
// (1-9 for numeric suits, 1-7 for honors). Returns [InvalidTile] if
// rank is out of range for suit.
func New(suit TileSuit, rank int) Tile {
	switch suit {
	case Character, Dot, Bamboo:
		if rank < 1 || 9 < rank {
			return InvalidTile
		}
		base := map[TileSuit]int{Character: 0, Dot: 9, Bamboo: 18}[suit]
		return Tile(base + rank - 1)
	case Honor:
		if rank < 1 || 7 < rank {
			return InvalidTile
		}
		return Tile(27 + rank - 1)
	}
	return InvalidTile
}

// Suit returns the tile's suit.
func (t Tile) Suit() TileSuit {
	switch {
	case t < 0 || NumTiles <= t:
		return 0
	case t < 9:
		return Character
	case t < 18:
		return Dot
	case t < 27:
		return Bamboo
	default:
		return Honor
	}
}

// Rank returns the tile's 1-based rank within its suit.
func (t Tile) Rank() int {
	switch {
	case t < 0 || NumTiles <= t:
		return 0
	case t < 9:
		return int(t) + 1
	case t < 18:
		return int(t) - 9 + 1
	case t < 27:
		return int(t) - 18 + 1
	default:
		return int(t) - 27 + 1
	}
}

// IsNumeric returns whether the tile belongs to a numeric (non-honor) suit.
func (t Tile) IsNumeric() bool {
	return 0 <= t && t < 27
}

// IsHonor returns whether the tile is an honor tile.
func (t Tile) IsHonor() bool {
	return 27 <= t && t < NumTiles
}

// IsTerminal returns whether the tile is a 1 or 9 of a numeric suit.
func (t Tile) IsTerminal() bool {
	return t.IsNumeric() && (t.Rank() == 1 || t.Rank() == 9)
}

// IsTerminalOrHonor returns whether the tile is a terminal or honor tile.
func (t Tile) IsTerminalOrHonor() bool {
	return t.IsTerminal() || t.IsHonor()
}

// honorNames are the names of the z1..z7 honor tiles, in index order.
var honorNames = [...]string{"East", "South", "West", "North", "White", "Green", "Red"}

// Name returns the tile's human-readable name.
func (t Tile) Name() string {
	if t < 0 || NumTiles <= t {
		return ""
	}
	if t.IsHonor() {
		return honorNames[t.Rank()-1]
	}
	suitName := map[TileSuit]string{Character: "Character", Dot: "Dot", Bamboo: "Bamboo"}[t.Suit()]
	return fmt.Sprintf("%d %s", t.Rank(), suitName)
}

// String satisfies the [fmt.Stringer] interface, returning the short
// form (ex: "1m", "7z").
func (t Tile) String() string {
	if t < 0 || NumTiles <= t {
		return "?"
	}
	return strconv.Itoa(t.Rank()) + t.Suit().String()
}

// Rune returns the tile's unicode mahjong tile glyph.
func (t Tile) Rune() rune {
	switch {
	case t < 0 || NumTiles <= t:
		return 0
	case t.IsHonor():
		// Unicode ordering is East,South,West,North,Red,Green,White;
		// ours is East,South,West,North,White,Green,Red.
		switch t.Rank() {
		case 1:
			return unicodeEastWind
		case 2:
			return unicodeEastWind + 1
		case 3:
			return unicodeEastWind + 2
		case 4:
			return unicodeEastWind + 3
		case 5:
			return unicodeWhiteDragon
		case 6:
			return unicodeGreenDragon
		case 7:
			return unicodeRedDragon
		}
		return 0
	default:
		base := map[TileSuit]rune{Character: unicodeChar1, Dot: unicodeDot1, Bamboo: unicodeBamboo1}[t.Suit()]
		return base + rune(t.Rank()-1)
	}
}

// Unicode mahjong tile code points (Mahjong Tiles block, U+1F000-U+1F02B).
const (
	unicodeEastWind    rune = '\U0001F000'
	unicodeRedDragon   rune = '\U0001F004'
	unicodeGreenDragon rune = '\U0001F005'
	unicodeWhiteDragon rune = '\U0001F006'
	unicodeChar1       rune = '\U0001F007'
	unicodeBamboo1     rune = '\U0001F010'
	unicodeDot1        rune = '\U0001F019'
)

// FromRune creates a tile from a unicode mahjong tile glyph, or
// [InvalidTile] if r is not a recognized glyph.
func FromRune(r rune) Tile {
	switch {
	case unicode.Is(rangeChar, r):
		return Tile(int(r - unicodeChar1))
	case unicode.Is(rangeDot, r):
		return Tile(9 + int(r-unicodeDot1))
	case unicode.Is(rangeBamboo, r):
		return Tile(18 + int(r-unicodeBamboo1))
	case unicode.Is(rangeWind, r):
		return Tile(27 + int(r-unicodeEastWind))
	case r == unicodeWhiteDragon:
		return New(Honor, 5)
	case r == unicodeGreenDragon:
		return New(Honor, 6)
	case r == unicodeRedDragon:
		return New(Honor, 7)
	}
	return InvalidTile
}

// FromString creates a tile from its short string form (ex: "1m", "7z").
func FromString(s string) (Tile, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return InvalidTile, fmt.Errorf("xiangting: invalid tile %q", s)
	}
	if r := []rune(s); len(r) == 1 {
		if t := FromRune(r[0]); t != InvalidTile {
			return t, nil
		}
	}
	if len(s) < 2 {
		return InvalidTile, fmt.Errorf("xiangting: invalid tile %q", s)
	}
	rankPart, suitPart := s[:len(s)-1], s[len(s)-1:]
	rank, err := strconv.Atoi(rankPart)
	if err != nil {
		return InvalidTile, fmt.Errorf("xiangting: invalid tile %q: %w", s, err)
	}
	t := New(TileSuit(suitPart[0]), rank)
	if t == InvalidTile {
		return InvalidTile, fmt.Errorf("xiangting: invalid tile %q", s)
	}
	return t, nil
}

// Parse parses a sequence of short tile strings (ex: "1m", "7z"),
// ignoring whitespace between them.
func Parse(v ...string) ([]Tile, error) {
	var tiles []Tile
	for _, s := range v {
		for _, field := range strings.Fields(s) {
			t, err := FromString(field)
			if err != nil {
				return nil, err
			}
			tiles = append(tiles, t)
		}
	}
	return tiles, nil
}

// Must parses a sequence of short tile strings, panicking on error.
func Must(v ...string) []Tile {
	tiles, err := Parse(v...)
	if err != nil {
		panic(err)
	}
	return tiles
}

// Format satisfies the [fmt.Formatter] interface.
//
// Supported verbs:
//
//	s - short form (ex: 1m, 7z)
//	v - same as s
//	n - human name (ex: "1 Character", "East")
//	c - unicode mahjong tile glyph
func (t Tile) Format(f fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 's', 'v':
		buf = append(buf, t.String()...)
	case 'n':
		buf = append(buf, t.Name()...)
	case 'c':
		buf = append(buf, string(t.Rune())...)
	default:
		buf = append(buf, fmt.Sprintf("%%!%c(ERROR=unknown verb, tile: %s)", verb, t.String())...)
	}
	_, _ = f.Write(buf)
}

// TileFormatter wraps formatting a set of tiles. Allows `go test` to
// function without disabling vet.
type TileFormatter []Tile

// Format satisfies the [fmt.Formatter] interface.
func (v TileFormatter) Format(f fmt.State, verb rune) {
	_, _ = f.Write([]byte{'['})
	for i, t := range v {
		if i != 0 {
			_, _ = f.Write([]byte{' '})
		}
		t.Format(f, verb)
	}
	_, _ = f.Write([]byte{']'})
}

func init() {
	char, dot, bamboo, wind := make([]rune, 9), make([]rune, 9), make([]rune, 9), make([]rune, 4)
	for i := 0; i < 9; i++ {
		char[i] = unicodeChar1 + rune(i)
		dot[i] = unicodeDot1 + rune(i)
		bamboo[i] = unicodeBamboo1 + rune(i)
	}
	for i := 0; i < 4; i++ {
		wind[i] = unicodeEastWind + rune(i)
	}
	rangeChar = rangetable.New(char...)
	rangeDot = rangetable.New(dot...)
	rangeBamboo = rangetable.New(bamboo...)
	rangeWind = rangetable.New(wind...)
}

var (
	rangeChar, rangeDot, rangeBamboo, rangeWind *unicode.RangeTable
)

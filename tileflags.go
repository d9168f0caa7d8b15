package xiangting

import "strings"

// TileFlags is a set of tile indices, stored as a bitset with bit i
// corresponding to tile i.
type TileFlags uint64

// Set returns flags with t added.
func (f TileFlags) Set(t Tile) TileFlags {
	return f | TileFlags(1)<<uint(t)
}

// Has returns whether flags contains t.
func (f TileFlags) Has(t Tile) bool {
	return f&(TileFlags(1)<<uint(t)) != 0
}

// Union returns the union of f and g.
func (f TileFlags) Union(g TileFlags) TileFlags {
	return f | g
}

// Count returns the number of tiles set.
func (f TileFlags) Count() int {
	n := 0
	for f != 0 {
		f &= f - 1
		n++
	}
	return n
}

// Tiles returns the sorted list of tiles set in f.
func (f TileFlags) Tiles() []Tile {
	var v []Tile
	for t := Tile(0); t < NumTiles; t++ {
		if f.Has(t) {
			v = append(v, t)
		}
	}
	return v
}

// String satisfies the [fmt.Stringer] interface.
func (f TileFlags) String() string {
	tiles := f.Tiles()
	s := make([]string, len(tiles))
	for i, t := range tiles {
		s[i] = t.String()
	}
	return "{" + strings.Join(s, " ") + "}"
}

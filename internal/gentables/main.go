// Command gentables regenerates the package's embedded lookup table:
//
//	wanzi19_table.dat -- three-player character-suit (ranks 1,9) decompositions
//
// The committed table in the repository root was produced by this
// algorithm; run with `go run internal/gentables/main.go` from the
// repository root to reproduce it.
//
// The numeric- and honor-suit decompositions were originally
// precomputed the same way (a context-free perfect-hash table), but a
// code review found that architecture structurally unable to express
// jiangpai-rank duizi exclusion or four-copy dead-wait suppression:
// both require knowing, per candidate decomposition, which rank was
// assumed to be the pair and which ranks are fully held, neither of
// which a context-free table can carry. Those two suits are now
// decomposed live by standard.go's shupaiTileGroup/zipaiTileGroup on
// every call instead. The three-player wanzi suit is small enough
// (25 keys) and asymmetric enough (only ranks 1 and 9 ever
// participate) that its jiangpai-free table stays as a fast path for
// the context-free case; the context-aware case is handled by
// standard.go's wanziTileGroup, computed directly without a table.
package main

import (
	"bytes"
	"os"
)

func writeWanzi19Table(path string) {
	var buf bytes.Buffer
	for c1 := 0; c1 <= 4; c1++ {
		for c9 := 0; c9 <= 4; c9++ {
			var mianzi, duizi int
			var mask uint16
			if c1 >= 3 {
				mianzi++
			} else if c1 == 2 {
				duizi++
			} else if c1 == 1 {
				mask |= 1
			}
			if c9 >= 3 {
				mianzi++
			} else if c9 == 2 {
				duizi++
			} else if c9 == 1 {
				mask |= 1 << 8
			}
			buf.Write([]byte{byte(mianzi), byte(duizi), byte(mask), byte(mask >> 8)})
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		panic(err)
	}
}

func main() {
	writeWanzi19Table("wanzi19_table.dat")
}

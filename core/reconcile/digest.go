package reconcile

import (
	"encoding/hex"
	"strconv"

	"github.com/zeebo/blake3"
)

// Digest fingerprints a slot layout. Two snapshots have the same digest iff
// every slot holds the same canonical key and quantity.
func Digest(s Snapshot) string {
	h := blake3.New()
	var buf []byte
	for i, stk := range s {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(i), 10)
		buf = append(buf, '|')
		if stk != nil {
			buf = append(buf, Canonicalize(stk)...)
			buf = append(buf, '|')
			buf = strconv.AppendInt(buf, int64(stk.Quantity), 10)
		}
		buf = append(buf, '\n')
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}

package matbin

import (
	"github.com/halotools/mattag"
)

// readStringTable reads the header-adjacent string table: a magic, an
// unused word, a byte budget, and NUL-terminated strings until the
// budget is consumed exactly. The scan never reads past the budget
// boundary; a terminator landing exactly on it closes the last entry. An
// unterminated run at the end of the budget is consumed and kept as the
// table's tail rather than returned as a partial string; the decoder
// reports it as a warning.
func readStringTable(c *cursor, st *mattag.StringTable) (failed bool) {
	if c.fixedBytes(st.Magic[:]) {
		return true
	}
	if c.u32(&st.Unused) {
		return true
	}
	if c.u32(&st.ByteBudget) {
		return true
	}
	if int64(st.ByteBudget) > c.remaining() {
		return c.fail(SizeError{Declared: int64(st.ByteBudget), Remaining: c.remaining()})
	}

	start := c.pos()
	for c.pos()-start < int64(st.ByteBudget) {
		limit := int64(st.ByteBudget) - (c.pos() - start)
		var s string
		var term bool
		if c.cstring(limit, &s, &term) {
			return true
		}
		if !term {
			st.Tail = []byte(s)
			break
		}
		st.Strings = append(st.Strings, s)
	}
	return false
}

package drv7s

// How the buses are wired. Letter is a segment, digit the common pin of a
// unit, nc means not connected.
//
//	bit     7  6  5  4  3  2  1  0
//	rows:   nc nc p  g  f  e  d  c
//	cols:   b  a  3  2  1  0  nc nc

// split maps the segment pattern of unit onto the two output buses.
func split(pattern byte, unit uint8) (rows, cols byte) {
	rows = pattern >> 2
	cols = (pattern&0x03)<<6 | (1<<unit)<<2
	return rows, cols
}

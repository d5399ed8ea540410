package printer

import (
	"bytes"
	"strings"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Code pages selectable via ESC t. PC866 covers Cyrillic receipts.
const (
	CodePagePC437 = 0
	CodePagePC866 = 17
)

// EncodeJob wraps a rendered plain-text receipt in the ESC/POS framing a
// thermal printer expects: initialize, select code page, one print line per
// text line, paper feed and a partial cut. The text itself arrives already
// laid out for the paper width; no reflow happens here.
func EncodeJob(text string, codePage byte) []byte {
	var buf bytes.Buffer

	buf.Write([]byte{ESC, '@'})           // initialize
	buf.Write([]byte{ESC, 't', codePage}) // select character code table

	for _, line := range strings.Split(text, "\n") {
		buf.WriteString(line)
		buf.WriteByte(LF)
	}

	buf.Write([]byte{LF, LF, LF})
	buf.Write([]byte{GS, 'V', 0x01}) // partial cut

	return buf.Bytes()
}

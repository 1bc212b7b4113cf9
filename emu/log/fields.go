package log

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// fieldKind tells how the value of a ZField is stored.
type fieldKind uint8

const (
	kindString fieldKind = iota
	kindBool
	kindInt
	kindUint
	kindHex
	kindError
	kindStringer
	kindBlob
)

// ZField is a typed log field. Formatting is deferred until the entry is
// emitted, building a field never allocates.
type ZField struct {
	Key string

	kind  fieldKind
	width uint8 // number of digits of hex values
	num   uint64
	str   string
	obj   any // error, fmt.Stringer or []byte
}

// Value formats the field value.
func (f *ZField) Value() string {
	switch f.kind {
	case kindString:
		return f.str
	case kindBool:
		return strconv.FormatBool(f.num != 0)
	case kindInt:
		return strconv.FormatInt(int64(f.num), 10)
	case kindUint:
		return strconv.FormatUint(f.num, 10)
	case kindHex:
		return zeroPad(strconv.FormatUint(f.num, 16), int(f.width))
	}

	if f.obj == nil {
		return "<nil>"
	}
	switch f.kind {
	case kindError:
		return f.obj.(error).Error()
	case kindStringer:
		return f.obj.(fmt.Stringer).String()
	case kindBlob:
		return hex.EncodeToString(f.obj.([]byte))
	}
	return ""
}

func zeroPad(s string, width int) string {
	const zeros = "0000000000000000"
	if n := width - len(s); n > 0 {
		return zeros[:n] + s
	}
	return s
}

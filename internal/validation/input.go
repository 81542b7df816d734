package validation

import "strconv"

type inputKind uint8

const (
	kindAbsent inputKind = iota
	kindText
	kindInt
)

// Input is a candidate national code as supplied by a caller: nothing at all,
// free-form text or an integer. The zero value is an absent input.
type Input struct {
	kind inputKind
	text string
	num  int64
}

func Absent() Input {
	return Input{}
}

func Text(s string) Input {
	return Input{kind: kindText, text: s}
}

// Int wraps an integer code. Leading zeros are lost in integer form and are
// restored by padding during validation.
func Int(n int64) Input {
	return Input{kind: kindInt, num: n}
}

func (in Input) IsAbsent() bool {
	return in.kind == kindAbsent
}

// String returns the textual form digits are extracted from.
func (in Input) String() string {
	switch in.kind {
	case kindText:
		return in.text
	case kindInt:
		return strconv.FormatInt(in.num, 10)
	default:
		return ""
	}
}

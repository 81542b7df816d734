package validation

import (
	"regexp"
	"strings"
)

const (
	CodeLength = 10

	MsgEmptyInput     = "empty input"
	MsgNoDigits       = "no digits found"
	MsgTooManyDigits  = "more than 10 digits"
	MsgIdenticalDigit = "all digits identical"
	MsgChecksum       = "checksum mismatch"
	MsgValid          = "valid national code"
)

// Result is the outcome of a national code check. Code is either empty or
// exactly CodeLength ASCII digits.
type Result struct {
	Code    string
	Valid   bool
	Message string
}

// FormatError reports whether the input could not be normalized at all, as
// opposed to a well-formed code that failed a semantic rule.
func (r Result) FormatError() bool {
	return r.Code == ""
}

type CodeValidator interface {
	ValidateNationalCode(in Input) Result
}

type NationalCodeValidator struct {
	nonDigit *regexp.Regexp
}

func NewNationalCodeValidator() *NationalCodeValidator {
	return &NationalCodeValidator{
		nonDigit: regexp.MustCompile(`[^0-9]`),
	}
}

var defaultValidator = NewNationalCodeValidator()

// ValidateNationalCode normalizes and validates an Iranian national code.
// It never fails: every rejection is reported through Result.
func ValidateNationalCode(in Input) Result {
	return defaultValidator.ValidateNationalCode(in)
}

func (v *NationalCodeValidator) ValidateNationalCode(in Input) Result {
	if in.IsAbsent() {
		return Result{Message: MsgEmptyInput}
	}

	digits := v.nonDigit.ReplaceAllString(in.String(), "")
	if digits == "" {
		return Result{Message: MsgNoDigits}
	}

	switch {
	case len(digits) > CodeLength:
		return Result{Message: MsgTooManyDigits}
	case len(digits) < CodeLength:
		digits = strings.Repeat("0", CodeLength-len(digits)) + digits
	}

	if strings.Count(digits, digits[:1]) == CodeLength {
		return Result{Code: digits, Message: MsgIdenticalDigit}
	}

	if !checksumOK(digits) {
		return Result{Code: digits, Message: MsgChecksum}
	}
	return Result{Code: digits, Valid: true, Message: MsgValid}
}

// checksumOK expects exactly CodeLength ASCII digits.
func checksumOK(code string) bool {
	var total int
	for i := 0; i < CodeLength-1; i++ {
		total += int(code[i]-'0') * (CodeLength - i)
	}
	check := int(code[CodeLength-1] - '0')

	remainder := total % 11
	if remainder < 2 {
		return check == remainder
	}
	return check == 11-remainder
}

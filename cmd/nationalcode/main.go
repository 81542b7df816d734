// Command nationalcode prints the validator's verdict for a fixed set of sample inputs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/AlenaMolokova/nationalcode/internal/validation"
)

const emptyCode = "¬"

var samples = []string{
	"0371591336",
	"1111111111",
	"2222222222",
	"090 123 456X",
	"123",
	"006774982X",
}

func main() {
	run(os.Stdout)
}

func run(w io.Writer) {
	for _, s := range samples {
		res := validation.ValidateNationalCode(validation.Text(s))
		code := res.Code
		if code == "" {
			code = emptyCode
		}
		fmt.Fprintf(w, "%12q  ->  %s  |  %t  |  %s\n", s, code, res.Valid, res.Message)
	}
}

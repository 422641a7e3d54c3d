// Package names normalizes tensor and operation names.
//
// A fully qualified tensor name is "op:N", where N is the output index of
// the producing operation. Metric accumulators declare dependencies by
// either form; fetch resolution always uses the tensor name while summary
// keys use the bare op name.
package names

import (
	"fmt"
	"strings"
)

// Parse splits a possibly qualified name into its op name and tensor name.
//
//	Parse("loss")   -> ("loss", "loss:0")
//	Parse("loss:0") -> ("loss", "loss:0")
//
// An output-index suffix must be a single decimal digit; anything else is
// rejected as malformed.
func Parse(name string) (op string, tensor string, err error) {
	i := strings.LastIndexByte(name, ':')
	if i < 0 {
		if name == "" {
			return "", "", fmt.Errorf("empty tensor name")
		}
		return name, name + ":0", nil
	}

	op = name[:i]
	suffix := name[i+1:]
	if op == "" || len(suffix) != 1 || suffix[0] < '0' || suffix[0] > '9' {
		return "", "", fmt.Errorf("malformed tensor name %q", name)
	}
	return op, name, nil
}

// Tensor returns the fully qualified tensor name, panicking on malformed
// input. Intended for names already validated at construction time.
func Tensor(name string) string {
	_, tensor, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return tensor
}

// Op returns the bare op name, panicking on malformed input.
func Op(name string) string {
	op, _, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return op
}

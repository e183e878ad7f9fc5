package renderer

import (
	"bytes"
	"io"
	"math"
	"strings"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) bool {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
		return true
	}
	return false
}

// bar draws a ratio as a run of full blocks, out of width.
func bar(ratio float64, width int) string {
	if math.IsNaN(ratio) || ratio <= 0 {
		return ""
	}
	n := int(math.Round(ratio * float64(width)))
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}

// cell escapes the pipe character of a markdown table cell.
func cell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

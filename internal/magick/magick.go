// Package magick translates a subset of ImageMagick convert options into
// color operation strings.
//
// Supported options:
//   - -channel X: select the bands the following operations apply to
//   - +channel: reset the band selection to RGB
//   - -sigmoidal-contrast C[xM%] or C,M%: "sigmoidal BANDS C M"
//   - -gamma G: "gamma BANDS G"
//   - -modulate B,S: "saturation S/100" (brightness is ignored)
//
// Anything else is skipped.
package magick

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var argSplit = regexp.MustCompile(`[,x]+`)

// translator holds the state of one translation pass.
type translator struct {
	bands string
	ops   []string
}

func (t *translator) setBands(arg string) {
	t.bands = strings.ToUpper(arg)
}

func (t *translator) sigmoidal(arg string) {
	args := splitArgs(arg)
	switch len(args) {
	case 0:
		return
	case 1:
		args = append(args, "0.5")
	default:
		mid, err := strconv.ParseFloat(strings.ReplaceAll(args[1], "%", ""), 64)
		if err != nil {
			return
		}
		args[1] = formatFloat(mid / 100)
	}
	t.ops = append(t.ops, "sigmoidal "+t.bands+" "+args[0]+" "+args[1])
}

func (t *translator) gamma(arg string) {
	t.ops = append(t.ops, "gamma "+t.bands+" "+arg)
}

func (t *translator) saturation(arg string) {
	args := splitArgs(arg)
	if len(args) < 2 {
		return
	}
	// args[0] is brightness
	sat, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return
	}
	t.ops = append(t.ops, "saturation "+formatFloat(sat/100))
}

// Operations translates ImageMagick convert options into a list of
// operations in the order they appear.
func Operations(opts string) []string {
	t := &translator{bands: "RGB"}

	var next func(string)
	for _, part := range strings.Fields(opts) {
		switch part {
		case "-channel":
			next = t.setBands
		case "+channel":
			t.setBands("RGB")
			next = nil
		case "-sigmoidal-contrast":
			next = t.sigmoidal
		case "-gamma":
			next = t.gamma
		case "-modulate":
			next = t.saturation
		default:
			if next != nil {
				next(part)
			}
			next = nil
		}
	}
	return t.ops
}

// ToOperations translates ImageMagick convert options into a single
// space-separated operations string.
//
//	ToOperations("-channel B -gamma 0.95 -modulate 100,125")
//	// "gamma B 0.95 saturation 1.25"
func ToOperations(opts string) string {
	return strings.Join(Operations(opts), " ")
}

func splitArgs(arg string) []string {
	var out []string
	for _, s := range argSplit.Split(arg, -1) {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// formatFloat prints v in its shortest form, keeping a ".0" on integral
// values ("1.0", not "1").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

package render

// Shade bands from blank to full block. Band index doubles as a brightness
// hint for themes.
var shadeRunes = [5]rune{' ', '░', '▒', '▓', '█'}

// NumBands is the number of shade bands Quantize maps into
const NumBands = len(shadeRunes)

// QuantizeBand maps a coverage fraction to a shade band index. Total over
// all inputs: anything below the first threshold (including negatives)
// lands in band 0, anything at or above 7/8 (including values over 1)
// lands in the solid band. Band edges are monotonic.
func QuantizeBand(coverage float64) int {
	switch {
	case coverage < 1.0/8:
		return 0
	case coverage < 3.0/8:
		return 1
	case coverage < 5.0/8:
		return 2
	case coverage < 7.0/8:
		return 3
	default:
		return 4
	}
}

// Quantize maps a coverage fraction to its shade rune
func Quantize(coverage float64) rune {
	return shadeRunes[QuantizeBand(coverage)]
}

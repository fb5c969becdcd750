package ocr

import "fmt"

// headerWhitelist restricts the header pass to the characters that appear in
// form titles and document codes, which keeps smudged letterheads from
// producing garbage.
const headerWhitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-:/()&.,"

// Params is one tesseract parameterization tried during the candidate
// search.
type Params struct {
	OEM       int
	PSM       int
	DPI       int
	Whitelist string
}

func (p Params) String() string {
	return fmt.Sprintf("oem%d/psm%d", p.OEM, p.PSM)
}

// FullPageParams returns the engine configurations tried against every
// preprocessing variant, broadest layouts first. The order matters: earlier
// entries win confidence ties.
func FullPageParams(dpi int) []Params {
	return []Params{
		{OEM: 3, PSM: 6, DPI: dpi},  // uniform block of text
		{OEM: 1, PSM: 6, DPI: dpi},  // LSTM-only, same layout
		{OEM: 3, PSM: 4, DPI: dpi},  // column of variable-size lines
		{OEM: 3, PSM: 11, DPI: dpi}, // sparse text
		{OEM: 3, PSM: 12, DPI: dpi}, // sparse text with OSD
		{OEM: 3, PSM: 3, DPI: dpi},  // fully automatic
	}
}

// HeaderParams is the single-line pass for the title band at the top of a
// form.
func HeaderParams(dpi int) Params {
	return Params{OEM: 3, PSM: 7, DPI: dpi, Whitelist: headerWhitelist}
}

// BodyParams is the block pass for the central region of the page.
func BodyParams(dpi int) Params {
	return Params{OEM: 3, PSM: 6, DPI: dpi}
}

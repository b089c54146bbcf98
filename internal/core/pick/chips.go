package pick

import "github.com/mattn/go-runewidth"

// MaxChipWidth caps a single chip label before truncation.
const MaxChipWidth = 32

// ChipLayout describes which chips fit on one line.
type ChipLayout struct {
	Labels []string // truncated labels of the visible chips
	Hidden int      // chips that did not fit, shown as "+N"
}

// FitChips lays labels out left to right. Each chip costs its display width
// plus pad cells plus gap; reserve cells stay free for the trailing "+N"
// chip and the dropdown arrow. maxLabel <= 0 uses MaxChipWidth.
func FitChips(labels []string, width, pad, gap, reserve, maxLabel int) ChipLayout {
	if maxLabel <= 0 {
		maxLabel = MaxChipWidth
	}
	budget := width - reserve
	used := 0
	var out ChipLayout
	for i, l := range labels {
		l = runewidth.Truncate(l, maxLabel, "…")
		cost := runewidth.StringWidth(l) + pad + gap
		if used+cost > budget {
			out.Hidden = len(labels) - i
			return out
		}
		used += cost
		out.Labels = append(out.Labels, l)
	}
	return out
}

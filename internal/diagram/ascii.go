package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gobridge/internal/foundation"
)

// PressureAt returns the contact pressure (kN/m²) at (x, y) from the centroid
// of a footing, x along its length and y along its width. Negative values are
// tension the soil cannot take.
func PressureAt(t foundation.Trial, x, y float64) float64 {
	if t.Length <= 0 || t.Width <= 0 {
		return 0
	}
	avg := t.P / (t.Length * t.Width)
	return avg * (1 + 12*t.ELong*x/(t.Length*t.Length) + 12*t.ETrans*y/(t.Width*t.Width))
}

// DrawFootingPlan creates an ASCII plan of the footing with its kern (the
// middle third on each axis) and the position of the resultant
func DrawFootingPlan(t foundation.Trial) string {
	var sb strings.Builder

	widthChars := 40
	heightChars := 14

	// Grid cell of a plan coordinate; x runs across, y runs down the page
	col := func(x float64) int {
		return int(math.Round((x/t.Length + 0.5) * float64(widthChars-1)))
	}
	row := func(y float64) int {
		return int(math.Round((0.5 - y/t.Width) * float64(heightChars-1)))
	}

	kernL, kernR := col(-t.Length/6), col(t.Length/6)
	kernT, kernB := row(t.Width/6), row(-t.Width/6)
	rc, rr := col(clamp(t.ELong, t.Length/2)), row(clamp(t.ETrans, t.Width/2))

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  FOOTING PLAN  %.2f m × %.2f m\n", t.Length, t.Width))
	sb.WriteString("  ────────────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))

	for i := 0; i < heightChars; i++ {
		line := []rune(strings.Repeat(" ", widthChars))

		// Kern outline
		if i >= kernT && i <= kernB {
			line[kernL] = '┊'
			line[kernR] = '┊'
		}
		if i == kernT || i == kernB {
			for j := kernL + 1; j < kernR; j++ {
				line[j] = '┄'
			}
		}

		line[col(0)] = '·'
		if i == rr {
			line[rc] = '●'
		}

		sb.WriteString(fmt.Sprintf("  │%s│", string(line)))
		if i == rr {
			sb.WriteString(fmt.Sprintf(" ◄─ P = %.0f kN", t.P))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	sb.WriteString(fmt.Sprintf("   ◄── L = %.2f m (along the stream) ──►\n", t.Length))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ┄┊┄ = Kern (no tension while the resultant stays inside)\n")
	sb.WriteString(fmt.Sprintf("  ●   = Resultant at e_L = %.3f m, e_B = %.3f m\n", t.ELong, t.ETrans))

	return sb.String()
}

func clamp(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}

// DrawPressureProfile creates an ASCII bar diagram of the contact pressure
// across the footing width along its most loaded edge, with the SBC marked
func DrawPressureProfile(t foundation.Trial, sbc float64) string {
	var sb strings.Builder

	rows := 11
	width := 40

	peak := math.Max(t.SigmaMax, sbc)
	if peak <= 0 {
		peak = 1
	}
	scale := float64(width) / peak
	sbcCol := int(sbc * scale)

	edge := math.Copysign(t.Length/2, t.ELong)
	if t.ELong == 0 {
		edge = t.Length / 2
	}

	sb.WriteString("\n")
	sb.WriteString("  BASE PRESSURE ACROSS THE WIDTH\n")
	sb.WriteString("  ──────────────────────────────\n\n")

	for i := 0; i < rows; i++ {
		y := t.Width/2 - t.Width*float64(i)/float64(rows-1)
		sigma := PressureAt(t, edge, y)

		barLen := int(math.Max(sigma, 0) * scale)
		bar := []rune(strings.Repeat("█", barLen) + strings.Repeat(" ", max(width-barLen, 0)+1))
		if sbcCol < len(bar) && sbc > 0 {
			if bar[sbcCol] == '█' {
				bar[sbcCol] = '▓'
			} else {
				bar[sbcCol] = '┆'
			}
		}

		label := fmt.Sprintf("%6.2f", y)
		note := fmt.Sprintf("%8.1f", sigma)
		if sigma < 0 {
			note += " (tension)"
		}
		sb.WriteString(fmt.Sprintf("  %s │%s%s\n", label, string(bar), note))
	}

	sb.WriteString(fmt.Sprintf("\n  ┆ = SBC %.1f kN/m²   σmax = %.1f   σmin = %.1f kN/m²\n", sbc, t.SigmaMax, t.SigmaMin))
	if t.TensionArea > 0 {
		sb.WriteString(fmt.Sprintf("  Tension area: %.2f m²\n", t.TensionArea))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}

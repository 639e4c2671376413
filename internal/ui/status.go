package ui

import (
	"fmt"

	"donut/internal/core"
)

// Status is the live part of the HUD.
type Status struct {
	FPS    float64
	Paused bool
	Drawn  int
}

type hudLine struct {
	label  string
	value  string
	header bool
}

// layoutLines flattens parameter groups into header and label/value lines.
func layoutLines(params core.ParameterSnapshot) []hudLine {
	var lines []hudLine
	for _, g := range params.Groups {
		lines = append(lines, hudLine{label: g.Name, header: true})
		for _, p := range g.Params {
			lines = append(lines, hudLine{label: p.Label, value: p.Value})
		}
	}
	return lines
}

func statusLine(st Status) string {
	if st.Paused {
		return fmt.Sprintf("paused  %d drawn", st.Drawn)
	}
	return fmt.Sprintf("%.1f fps  %d drawn", st.FPS, st.Drawn)
}

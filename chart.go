package main

import (
	"encoding/json"
	"strconv"
)

// ChartType is the Chart.js chart type
type ChartType string

const (
	ChartBar      ChartType = "bar"
	ChartLine     ChartType = "line"
	ChartPie      ChartType = "pie"
	ChartDoughnut ChartType = "doughnut"
)

// Circular reports whether the chart has no axes
func (t ChartType) Circular() bool {
	return t == ChartPie || t == ChartDoughnut
}

// ChartConfig is the declarative chart description handed to a renderer.
// Its JSON form is accepted by Chart.js as is; tick and tooltip affixes are
// applied by the page script. A config is read-only once built and may back
// several chart instances at the same time.
type ChartConfig struct {
	Type    ChartType    `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor Colors    `json:"backgroundColor,omitempty"`
	BorderColor     Colors    `json:"borderColor,omitempty"`
	BorderWidth     float64   `json:"borderWidth,omitempty"`
	BorderRadius    float64   `json:"borderRadius,omitempty"`
	BorderDash      []float64 `json:"borderDash,omitempty"`
	Tension         float64   `json:"tension,omitempty"`
	Fill            bool      `json:"fill,omitempty"`
	YAxisID         string    `json:"yAxisID,omitempty"`
}

// Colors is one color for the whole dataset or one per data point.
// A single color is encoded as a plain string.
type Colors []string

func (c Colors) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

func (c *Colors) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*c = Colors{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*c = many
	return nil
}

// At returns the color for data point i
func (c Colors) At(i int) string {
	if len(c) == 0 {
		return ""
	}
	return c[i%len(c)]
}

type ChartOptions struct {
	Responsive          bool              `json:"responsive"`
	MaintainAspectRatio bool              `json:"maintainAspectRatio"`
	IndexAxis           string            `json:"indexAxis,omitempty"`
	Scales              map[string]*Scale `json:"scales,omitempty"`
	Plugins             Plugins           `json:"plugins"`
}

type Scale struct {
	Type        string   `json:"type,omitempty"`
	Display     *bool    `json:"display,omitempty"`
	Position    string   `json:"position,omitempty"`
	BeginAtZero bool     `json:"beginAtZero,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Stacked     bool     `json:"stacked,omitempty"`
	Ticks       Ticks    `json:"ticks"`
	Grid        Grid     `json:"grid"`
}

// Ticks carries the unit affixes shown on axis labels, e.g. "€" and "M"
type Ticks struct {
	Color  string `json:"color,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// Format applies the affixes to a tick value already rendered as text
func (t Ticks) Format(v string) string {
	return t.Prefix + v + t.Suffix
}

type Grid struct {
	Color           string `json:"color,omitempty"`
	Display         *bool  `json:"display,omitempty"`
	DrawOnChartArea *bool  `json:"drawOnChartArea,omitempty"`
}

type Plugins struct {
	Legend  Legend   `json:"legend"`
	Tooltip *Tooltip `json:"tooltip,omitempty"`
}

type Legend struct {
	Display  *bool        `json:"display,omitempty"`
	Position string       `json:"position,omitempty"`
	Labels   LegendLabels `json:"labels"`
}

type LegendLabels struct {
	Color string `json:"color,omitempty"`
}

// Tooltip formats hovered values: label, value rounded to Decimals, Suffix
type Tooltip struct {
	Suffix   string `json:"suffix,omitempty"`
	Decimals int    `json:"decimals,omitempty"`
}

// ChartSpec binds a chart configuration to the canvas it is drawn on
type ChartSpec struct {
	Canvas string       `json:"canvas"`
	Title  string       `json:"title"`
	SubTab SubTab       `json:"sub_tab,omitempty"`
	Config *ChartConfig `json:"config"`
}

// =============================================================================
// Theme
// =============================================================================

// Dashboard accent colors
const (
	colorPrimary   = "#f97316"
	colorSecondary = "#06b6d4"
	colorAccent    = "#ec4899"
	colorSuccess   = "#10b981"
	colorWarning   = "#f59e0b"
	colorError     = "#ef4444"

	textLight   = "#e2e8f0"
	textMuted   = "#cbd5e1"
	tickMuted   = "#94a3b8"
	gridDark    = "#334155"
	gridFaint   = "rgba(255, 255, 255, 0.1)"
	borderSlate = "#1e293b"
)

// chartPalette is used for categorical series with no fixed meaning
var chartPalette = []string{"#f97316", "#06b6d4", "#ec4899", "#10b981", "#f59e0b", "#8b5cf6", "#ef4444", "#6b7280"}

// tones is a named color set shared by the charts of one section
type tones struct {
	Pink, Sky, Purple, Teal, Orange, Green, Red string
}

var (
	// vivid is used by the safety-net section
	vivid = tones{
		Pink:   "#ec4899",
		Sky:    "#06b6d4",
		Purple: "#8b5cf6",
		Teal:   "#14b8a6",
		Orange: "#f97316",
		Green:  "#10b981",
		Red:    "#ef4444",
	}

	// pastel is used by the pension and welfare sections
	pastel = tones{
		Pink:   "#f472b6",
		Sky:    "#38bdf8",
		Purple: "#c084fc",
		Teal:   "#2dd4bf",
		Orange: "#fb923c",
		Green:  "#4ade80",
		Red:    "#f87171",
	}
)

// translucent appends a hex alpha channel to a #rrggbb color
func translucent(hex string) string {
	return hex + "20"
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

// =============================================================================
// Option presets
// =============================================================================

// darkAxesOptions is the look of the sections drawn on the dark card grid
func darkAxesOptions() ChartOptions {
	return ChartOptions{
		Responsive: true,
		Scales: map[string]*Scale{
			"x": {Ticks: Ticks{Color: textLight}, Grid: Grid{Color: gridDark}},
			"y": {Ticks: Ticks{Color: textLight}, Grid: Grid{Color: gridDark}},
		},
		Plugins: Plugins{Legend: Legend{Labels: LegendLabels{Color: textLight}}},
	}
}

// tabbedAxesOptions is the look of the sections organised in sub-tabs
func tabbedAxesOptions() ChartOptions {
	return ChartOptions{
		Responsive: true,
		Scales: map[string]*Scale{
			"x": {Ticks: Ticks{Color: tickMuted}, Grid: Grid{Display: boolPtr(false)}},
			"y": {BeginAtZero: true, Ticks: Ticks{Color: tickMuted}, Grid: Grid{Color: gridFaint}},
		},
		Plugins: Plugins{Legend: Legend{Position: "bottom", Labels: LegendLabels{Color: textMuted}}},
	}
}

// circularOptions has no axes and a legend under the chart
func circularOptions(legendColor string) ChartOptions {
	return ChartOptions{
		Responsive: true,
		Plugins:    Plugins{Legend: Legend{Position: "bottom", Labels: LegendLabels{Color: legendColor}}},
	}
}

// stacked marks both axes as stacked
func stacked(o ChartOptions) ChartOptions {
	for _, axis := range []string{"x", "y"} {
		if s, ok := o.Scales[axis]; ok {
			s.Stacked = true
		}
	}
	return o
}

// hideLegend turns the legend off
func hideLegend(o ChartOptions) ChartOptions {
	o.Plugins.Legend.Display = boolPtr(false)
	return o
}

// =============================================================================
// Series shaping
// =============================================================================

// ScaleMillions converts euro to millions of euro for display
const ScaleMillions = 1_000_000

// ScaleThousands converts euro to thousands of euro for display
const ScaleThousands = 1_000

// scaled divides every raw value by divisor
func scaled(raw []float64, divisor float64) []float64 {
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = v / divisor
	}
	return out
}

// floats converts integer counts to chart values
func floats(values ...int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// yearLabels renders years as category labels
func yearLabels(years []int) []string {
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = strconv.Itoa(y)
	}
	return labels
}

// series extracts one field from every element of an ordered series
func series[T any](items []T, field func(T) float64) []float64 {
	out := make([]float64, len(items))
	for i, item := range items {
		out[i] = field(item)
	}
	return out
}

// years extracts the year of every element of an ordered series
func years[T any](items []T, year func(T) int) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = year(item)
	}
	return out
}

// byYear reads one field of a year-keyed map in ascending year order
func byYear[V any](m map[int]V, field func(V) float64) (labels []string, values []float64) {
	ys := Years(m)
	values = make([]float64, len(ys))
	for i, y := range ys {
		values[i] = field(m[y])
	}
	return yearLabels(ys), values
}

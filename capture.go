package main

import (
	"fmt"

	"k8s.io/klog/v2"
)

// headlessView is a View with every card of the layout present, used to
// drive a dashboard without a screen
type headlessView struct {
	layout  *Layout
	state   ViewState
	overlay string
}

func (v *headlessView) HasCanvas(canvas string) bool {
	if v.overlay != "" && canvas == ZoomCanvas(v.overlay) {
		return true
	}
	return v.layout.HasCanvas(canvas)
}

func (v *headlessView) Apply(state ViewState)     { v.state = state }
func (v *headlessView) OpenOverlay(canvas string) { v.overlay = canvas }
func (v *headlessView) CloseOverlay()             { v.overlay = "" }

// CapturedChart is one chart drawn while walking the dashboard
type CapturedChart struct {
	Card Card
	PNG  []byte
}

// CaptureCharts walks the dashboard through every section and sub-tab and
// collects the raster image of each chart mounted along the way, in page
// order.
func CaptureCharts(data *Dataset, layout *Layout, renderer *RasterRenderer) ([]CapturedChart, error) {
	view := &headlessView{layout: layout}
	dash := NewDashboard(data, view, renderer)
	if err := dash.Load(); err != nil {
		return nil, err
	}
	defer dash.Reset()

	var captured []CapturedChart
	collect := func() {
		for _, canvas := range mountOrder(layout, dash.State()) {
			chart, ok := dash.Charts().Live(canvas)
			if !ok {
				continue
			}
			card, _ := layout.Card(canvas)
			captured = append(captured, CapturedChart{Card: card, PNG: chart.(*RasterChart).PNG()})
		}
	}

	for _, s := range AllSections() {
		if err := dash.SelectSection(s); err != nil {
			return nil, fmt.Errorf("capturing %s: %w", s, err)
		}
		tabs := s.SubTabs()
		if len(tabs) == 0 {
			collect()
			continue
		}
		for _, tab := range tabs {
			if err := dash.SelectSubTab(tab); err != nil {
				return nil, fmt.Errorf("capturing %s/%s: %w", s, tab, err)
			}
			collect()
		}
	}
	klog.V(2).InfoS("Captured charts", "count", len(captured))
	return captured, nil
}

// mountOrder lists the canvases of the visible cards in page order
func mountOrder(layout *Layout, state ViewState) []string {
	var canvases []string
	for _, card := range layout.Cards(state.Section, state.SubTab()) {
		canvases = append(canvases, card.Canvas)
	}
	return canvases
}

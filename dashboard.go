package main

import (
	"errors"
	"fmt"
	"strings"

	"k8s.io/klog/v2"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownSubTab  = errors.New("unknown sub-tab")
	ErrNoChart        = errors.New("no chart on canvas")
	ErrNotLoaded      = errors.New("dashboard not loaded")
)

// View applies view states to a concrete screen: the browser page, or a
// headless canvas set when exporting.
type View interface {
	Surface

	// Apply shows the section and sub-tab of state and hides the others
	Apply(state ViewState)
	// OpenOverlay clones the card of canvas into the zoom overlay, making
	// ZoomCanvas(canvas) available
	OpenOverlay(canvas string)
	// CloseOverlay hides the overlay and drops the cloned card
	CloseOverlay()
}

// Dashboard is the controller of one dashboard page. It owns the view
// state and the live charts and is not safe for concurrent use.
type Dashboard struct {
	data   *Dataset
	view   View
	charts *ChartRegistry
	state  ViewState
	start  Section
	loaded bool
}

func NewDashboard(data *Dataset, view View, renderer Renderer) *Dashboard {
	return &Dashboard{
		data:   data,
		view:   view,
		charts: NewChartRegistry(renderer, view),
		state:  NewViewState(),
		start:  DefaultSection,
	}
}

// StartAt sets the section Load opens on
func (d *Dashboard) StartAt(s Section) {
	if s.Valid() {
		d.start = s
	}
}

// Load shows the default section and mounts its charts. A failure, a
// panicking builder included, is logged and leaves the dashboard in the
// loading state.
func (d *Dashboard) Load() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loading dashboard: %v", r)
		}
		if err != nil {
			klog.ErrorS(err, "Dashboard failed to load")
		}
	}()

	if d.data == nil {
		return errors.New("loading dashboard: no dataset")
	}
	state, err := NewViewState().Select(d.start)
	if err != nil {
		return err
	}
	d.state = state
	if err := d.render(); err != nil {
		return fmt.Errorf("loading dashboard: %w", err)
	}
	d.loaded = true
	klog.V(2).InfoS("Dashboard loaded", "section", d.state.Section, "charts", d.charts.Len())
	return nil
}

func (d *Dashboard) Loaded() bool           { return d.loaded }
func (d *Dashboard) State() ViewState       { return d.state }
func (d *Dashboard) Data() *Dataset         { return d.data }
func (d *Dashboard) Charts() *ChartRegistry { return d.charts }

// SelectSection activates a section, rebuilding its charts even when it is
// already active.
func (d *Dashboard) SelectSection(s Section) error {
	if !d.loaded {
		return ErrNotLoaded
	}
	next, err := d.state.Select(s)
	if err != nil {
		return err
	}
	d.CloseZoom()
	d.state = next
	return d.render()
}

// SelectSubTab activates a sub-tab of the current section
func (d *Dashboard) SelectSubTab(t SubTab) error {
	if !d.loaded {
		return ErrNotLoaded
	}
	next, err := d.state.SelectSubTab(t)
	if err != nil {
		return err
	}
	d.CloseZoom()
	d.state = next
	return d.render()
}

// Zoom opens the overlay on the card of canvas and mounts a second chart
// on the clone, sharing the configuration of the original. A card already
// zoomed is closed first; if the copy cannot be drawn the overlay is closed
// again.
func (d *Dashboard) Zoom(canvas string) error {
	if !d.loaded {
		return ErrNotLoaded
	}
	chart, ok := d.charts.Live(canvas)
	if !ok || strings.HasPrefix(canvas, ZoomCanvasPrefix) {
		return fmt.Errorf("%w: %s", ErrNoChart, canvas)
	}
	d.CloseZoom()

	d.state = d.state.OpenZoom(canvas)
	d.view.OpenOverlay(canvas)
	if _, err := d.charts.Mount(ZoomCanvas(canvas), chart.Config()); err != nil {
		d.CloseZoom()
		return err
	}
	return nil
}

// CloseZoom disposes the overlay chart and hides the overlay. The original
// chart stays mounted.
func (d *Dashboard) CloseZoom() {
	if !d.state.Zoom.Open {
		return
	}
	d.charts.Unmount(ZoomCanvas(d.state.Zoom.Canvas))
	d.view.CloseOverlay()
	d.state = d.state.CloseZoom()
}

// Reset disposes every live chart, the overlay one included
func (d *Dashboard) Reset() int {
	d.CloseZoom()
	return d.charts.UnmountAll()
}

// KPIs returns the headline figures formatted for display
func (d *Dashboard) KPIs() KPISummary {
	return FormatKPIs(d.data.KPI)
}

// render disposes whatever is mounted, applies the state and mounts the
// charts of the active section and sub-tab
func (d *Dashboard) render() error {
	d.charts.UnmountAll()
	d.view.Apply(d.state)

	specs, err := BuildSection(d.data, d.state.Section, d.state.SubTab())
	if err != nil {
		return err
	}
	for _, spec := range specs {
		if _, err := d.charts.Mount(spec.Canvas, spec.Config); err != nil {
			return err
		}
	}
	return nil
}

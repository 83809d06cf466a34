package main

import (
	"errors"
	"math"
	"testing"
)

// Chart Builder Tests
//
// Each builder reads the embedded dataset; the expected figures below are
// the published INPS values for the province and must pass through the
// builders unchanged.

const valueTolerance = 1e-9

func mustDataset(t *testing.T) *Dataset {
	t.Helper()
	d, err := DefaultDataset()
	if err != nil {
		t.Fatalf("DefaultDataset: %v", err)
	}
	return d
}

func mustBuild(t *testing.T, d *Dataset, s Section, tab SubTab) []ChartSpec {
	t.Helper()
	specs, err := BuildSection(d, s, tab)
	if err != nil {
		t.Fatalf("BuildSection(%s, %q): %v", s, tab, err)
	}
	return specs
}

func findSpec(t *testing.T, specs []ChartSpec, canvas string) ChartSpec {
	t.Helper()
	for _, s := range specs {
		if s.Canvas == canvas {
			return s
		}
	}
	t.Fatalf("no chart on canvas %q", canvas)
	return ChartSpec{}
}

func assertValues(t *testing.T, expected, actual []float64, description string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("%s: expected %d values %v, got %d %v", description, len(expected), expected, len(actual), actual)
	}
	for i := range expected {
		if math.Abs(expected[i]-actual[i]) > valueTolerance {
			t.Errorf("%s[%d]: expected %v, got %v", description, i, expected[i], actual[i])
		}
	}
}

func assertLabels(t *testing.T, expected, actual []string, description string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("%s: expected labels %v, got %v", description, expected, actual)
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("%s[%d]: expected %q, got %q", description, i, expected[i], actual[i])
		}
	}
}

// =============================================================================
// Dispatch
// =============================================================================

func TestBuildSection_EveryBuilderProducesCharts(t *testing.T) {
	d := mustDataset(t)
	for _, s := range AllSections() {
		tabs := s.SubTabs()
		if len(tabs) == 0 {
			tabs = []SubTab{NoSubTab}
		}
		for _, tab := range tabs {
			specs := mustBuild(t, d, s, tab)
			if len(specs) == 0 {
				t.Errorf("%s/%s: no charts", s, tab)
			}
		}
	}
}

func TestBuildSection_EmptySubTabSelectsDefault(t *testing.T) {
	d := mustDataset(t)
	specs := mustBuild(t, d, Pensioni, NoSubTab)
	for _, spec := range specs {
		if spec.SubTab != SubTabVigenti {
			t.Errorf("%s: expected sub-tab %q, got %q", spec.Canvas, SubTabVigenti, spec.SubTab)
		}
	}
	findSpec(t, specs, "pensionersByTypeChart")
}

func TestBuildSection_Errors(t *testing.T) {
	d := mustDataset(t)

	tests := []struct {
		name    string
		data    *Dataset
		section Section
		tab     SubTab
		want    error
	}{
		{"unknown section", d, Section(99), NoSubTab, ErrUnknownSection},
		{"negative section", d, Section(-1), NoSubTab, ErrUnknownSection},
		{"sub-tab of another section", d, Pensioni, SubTabCessazione, ErrUnknownSubTab},
		{"sub-tab on untabbed section", d, Demografia, SubTabVigenti, ErrUnknownSubTab},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildSection(tc.data, tc.section, tc.tab)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := BuildSection(nil, Demografia, NoSubTab); err == nil {
		t.Error("expected error for nil dataset")
	}
}

func TestBuildSection_CanvasesPerView(t *testing.T) {
	d := mustDataset(t)

	tests := []struct {
		section  Section
		tab      SubTab
		canvases []string
	}{
		{Demografia, NoSubTab, []string{"chart-popolazione", "chart-saldo-naturale", "chart-longevita", "chart-flussi-migratori"}},
		{MercatoLavoro, NoSubTab, []string{"chart-lavoratori-categoria", "chart-tasso-occupazione", "chart-assunzioni-cessazioni", "chart-retribuzioni"}},
		{EntrateVigilanza, NoSubTab, []string{"chart-entrate-contributive", "chart-vigilanza-ispettiva", "chart-durc"}},
		{Ammortizzatori, SubTabCessazione, []string{"naspiGenderChart", "benefitsTypeChart", "naspiTimingChart"}},
		{Ammortizzatori, SubTabSospensione, []string{"cigHoursChart", "cigBeneficiariesChart", "erogationTimingChart"}},
		{Pensioni, SubTabVigenti, []string{"pensionersByTypeChart", "averageAmountChart", "retirementAgeChart", "pensionsByFundChart"}},
		{Pensioni, SubTabLiquidate, []string{"liquidatedPensionsTrendChart", "calculationSystemChart", "liquidatedCompositionChart"}},
		{Pensioni, SubTabTempi, []string{"performanceByFundChart", "privateTimingDistributionChart", "benchmarkTimingChart"}},
		{Pensioni, SubTabAnticipi, []string{"anticipiTrendChart", "anticipiCompositionChart", "quoteGenderChart"}},
		{Contenzioso, SubTabAmministrativo, []string{"chart-contenzioso-amm"}},
		{Contenzioso, SubTabGiudiziario, []string{"chart-contenzioso-giud"}},
		{Contenzioso, SubTabATP, []string{"chart-atp-invalidita"}},
		{Patrimonio, NoSubTab, []string{"chart-patrimonio-valore"}},
	}
	for _, tc := range tests {
		t.Run(tc.section.String()+"/"+string(tc.tab), func(t *testing.T) {
			specs := mustBuild(t, d, tc.section, tc.tab)
			got := make([]string, len(specs))
			for i, s := range specs {
				got[i] = s.Canvas
			}
			assertLabels(t, tc.canvases, got, "canvases")
		})
	}
}

func TestBuildSection_SeriesMatchLabels(t *testing.T) {
	d := mustDataset(t)
	for _, s := range AllSections() {
		specs, err := BuildAll(d, s)
		if err != nil {
			t.Fatalf("BuildAll(%s): %v", s, err)
		}
		for _, spec := range specs {
			if spec.Title == "" {
				t.Errorf("%s: empty title", spec.Canvas)
			}
			for _, ds := range spec.Config.Data.Datasets {
				if len(ds.Data) != len(spec.Config.Data.Labels) {
					t.Errorf("%s/%q: %d values for %d labels", spec.Canvas, ds.Label, len(ds.Data), len(spec.Config.Data.Labels))
				}
			}
		}
	}
}

func TestBuildSection_FreshConfigs(t *testing.T) {
	d := mustDataset(t)
	first := findSpec(t, mustBuild(t, d, Demografia, NoSubTab), "chart-popolazione")
	second := findSpec(t, mustBuild(t, d, Demografia, NoSubTab), "chart-popolazione")
	if first.Config == second.Config {
		t.Error("expected each build to return a new config")
	}
}

// =============================================================================
// Pensions
// =============================================================================

func TestPensioni_VigentiByType(t *testing.T) {
	d := mustDataset(t)
	spec := findSpec(t, mustBuild(t, d, Pensioni, SubTabVigenti), "pensionersByTypeChart")

	if spec.Config.Type != ChartBar {
		t.Errorf("expected bar chart, got %s", spec.Config.Type)
	}
	assertLabels(t, []string{"Femmine", "Maschi"}, spec.Config.Data.Labels, "labels")
	assertValues(t, []float64{45645, 43460}, spec.Config.Data.Datasets[0].Data, "IVS")
	assertValues(t, []float64{14394, 8566}, spec.Config.Data.Datasets[1].Data, "assistenziali")
	if !spec.Config.Options.Scales["x"].Stacked || !spec.Config.Options.Scales["y"].Stacked {
		t.Error("expected stacked axes")
	}
}

func TestPensioni_LiquidateTrend(t *testing.T) {
	d := mustDataset(t)
	spec := findSpec(t, mustBuild(t, d, Pensioni, SubTabLiquidate), "liquidatedPensionsTrendChart")

	if spec.Config.Type != ChartLine {
		t.Errorf("expected line chart, got %s", spec.Config.Type)
	}
	assertLabels(t, []string{"2021", "2022", "2023", "2024"}, spec.Config.Data.Labels, "labels")
	totale := spec.Config.Data.Datasets[0]
	if totale.Label != "Totale" {
		t.Errorf("expected first dataset Totale, got %q", totale.Label)
	}
	assertValues(t, []float64{5818, 6030, 5508, 5822}, totale.Data, "totale")
	assertValues(t, []float64{3187, 3231, 2863, 2960}, spec.Config.Data.Datasets[1].Data, "femmine")
	assertValues(t, []float64{2631, 2799, 2645, 2862}, spec.Config.Data.Datasets[2].Data, "maschi")
}

func TestPensioni_TotalsPreservedAsGiven(t *testing.T) {
	// Totals in the dataset are carried as published, not recomputed from
	// the gender split
	d := mustDataset(t)
	for _, y := range d.Pensioni.PensioniLiquidate.Evoluzione {
		if y.Totale != y.Femmine+y.Maschi {
			t.Logf("%d: total %d differs from %d+%d", y.Anno, y.Totale, y.Femmine, y.Maschi)
		}
	}
	spec := findSpec(t, mustBuild(t, d, Pensioni, SubTabVigenti), "pensionsByFundChart")
	altre := spec.Config.Data.Datasets[0].Data[3]
	if altre != 9563 {
		t.Errorf("expected Altre Gestioni 9563, got %v", altre)
	}
}

// =============================================================================
// Currency scaling
// =============================================================================

func TestEntrate_MillionsOfEuro(t *testing.T) {
	d := mustDataset(t)
	spec := findSpec(t, mustBuild(t, d, EntrateVigilanza, NoSubTab), "chart-entrate-contributive")

	assertLabels(t, []string{"2022", "2023", "2024"}, spec.Config.Data.Labels, "labels")
	assertValues(t, []float64{
		622795440.27 / 1e6,
		646153457.06 / 1e6,
		675251190.81 / 1e6,
	}, spec.Config.Data.Datasets[0].Data, "entrate")

	ticks := spec.Config.Options.Scales["y"].Ticks
	if got := ticks.Format("675"); got != "€675M" {
		t.Errorf("expected tick €675M, got %s", got)
	}
}

func TestDurc_SecondaryAxis(t *testing.T) {
	d := mustDataset(t)
	spec := findSpec(t, mustBuild(t, d, EntrateVigilanza, NoSubTab), "chart-durc")

	if len(spec.Config.Data.Datasets) != 2 {
		t.Fatalf("expected 2 datasets, got %d", len(spec.Config.Data.Datasets))
	}
	if spec.Config.Data.Datasets[1].YAxisID != "y1" {
		t.Errorf("expected irregular share on y1, got %q", spec.Config.Data.Datasets[1].YAxisID)
	}
	if spec.Config.Options.Scales["y1"] == nil {
		t.Fatal("expected y1 scale")
	}
	if spec.Config.Options.Scales["y1"].Position != "right" {
		t.Errorf("expected y1 on the right, got %q", spec.Config.Options.Scales["y1"].Position)
	}
}

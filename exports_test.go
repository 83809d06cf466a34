package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func exportFixtures(t *testing.T) (*Config, *Dataset, *Layout) {
	t.Helper()
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	d := mustDataset(t)
	return config, d, mustLayout(t, d)
}

// =============================================================================
// HTML
// =============================================================================

func TestGenerateHTMLReport(t *testing.T) {
	config, d, layout := exportFixtures(t)
	path := filepath.Join(t.TempDir(), "out", "dashboard.html")

	stats, err := GenerateHTMLReport(config, d, layout, path)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Charts != layout.Len() {
		t.Errorf("expected %d charts, got %d", layout.Len(), stats.Charts)
	}
	if stats.Gzipped <= 0 || stats.Gzipped >= stats.Bytes {
		t.Errorf("unexpected sizes %d / %d", stats.Bytes, stats.Gzipped)
	}
	if r := stats.Reduction(); r <= 0 || r >= 100 {
		t.Errorf("unexpected reduction %.1f%%", r)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != stats.Bytes {
		t.Errorf("expected %d bytes on disk, got %d", stats.Bytes, len(raw))
	}
	page := string(raw)
	for _, want := range []string{
		"const STATIC = true;",
		`"atp":[{"canvas":"chart-atp-invalidita"`,
		`<canvas id="erogationTimingChart">`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("expected %s in export", want)
		}
	}
}

func TestStaticPayload_GroupsBySubTab(t *testing.T) {
	payload, count, err := staticPayload(mustDataset(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(payload) != len(AllSections()) {
		t.Errorf("expected %d sections, got %d", len(AllSections()), len(payload))
	}
	if n := len(payload["pensioni"][SubTabTempi]); n != 3 {
		t.Errorf("expected 3 tempi charts, got %d", n)
	}
	if n := len(payload["demografia"][NoSubTab]); n != 4 {
		t.Errorf("expected 4 untabbed demografia charts, got %d", n)
	}
	if count != 46 {
		t.Errorf("expected 46 charts, got %d", count)
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := sanitizeFilename(`Pesaro e Urbino: 2024/report?`); got != "Pesaro_e_Urbino__2024_report_" {
		t.Errorf("got %s", got)
	}
	name := filepath.Base(exportFilename("exports", "dashboard 2024", "html"))
	if !strings.HasPrefix(name, "dashboard_2024_") || !strings.HasSuffix(name, ".html") {
		t.Errorf("unexpected export name %s", name)
	}
}

// =============================================================================
// Workbook
// =============================================================================

func TestExportWorkbook(t *testing.T) {
	f, err := ExportWorkbook(mustDataset(t))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	want := []string{kpiSheet}
	for _, s := range AllSections() {
		want = append(want, s.Title())
	}
	assertLabels(t, want, f.GetSheetList(), "sheets")

	if v, _ := f.GetCellValue(kpiSheet, "B6"); v != "349882" {
		t.Errorf("expected population 349882 in B6, got %q", v)
	}
	if v, _ := f.GetCellValue(kpiSheet, "B13"); v != "+4.5%" {
		t.Errorf("expected +4.5%% in B13, got %q", v)
	}

	d := mustDataset(t)
	first := mustBuild(t, d, Pensioni, SubTabVigenti)[0]
	if v, _ := f.GetCellValue("Pensioni", "A1"); v != "Pensioni Vigenti - "+first.Title {
		t.Errorf("unexpected heading %q", v)
	}
	if v, _ := f.GetCellValue("Pensioni", "B2"); v != "Pensionati IVS" {
		t.Errorf("expected dataset header, got %q", v)
	}
	if v, _ := f.GetCellValue("Pensioni", "B3"); v != "45645" {
		t.Errorf("expected 45645, got %q", v)
	}
}

func TestSaveWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.xlsx")
	if err := SaveWorkbook(mustDataset(t), path); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(raw, []byte("PK")) {
		t.Error("expected a zip container")
	}
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Pensioni", "Pensioni"},
		{"Entrate/Vigilanza [2024]", "Entrate-Vigilanza -2024-"},
		{"Prestazioni assistenziali e sostegno al reddito", "Prestazioni assistenziali e sos"},
	}
	for _, tc := range tests {
		if got := sheetName(tc.in); got != tc.want {
			t.Errorf("sheetName(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

// =============================================================================
// PDF
// =============================================================================

func TestBuildPDFReport(t *testing.T) {
	if testing.Short() {
		t.Skip("renders every chart")
	}
	config, d, layout := exportFixtures(t)
	config.Export.ChartWidth, config.Export.ChartHeight = 400, 225

	pdf, err := BuildPDFReport(config, d, layout)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("expected PDF header")
	}
}

func TestCaptureCharts_PageOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("renders every chart")
	}
	_, d, layout := exportFixtures(t)
	captured, err := CaptureCharts(d, layout, NewRasterRenderer(200, 120))
	if err != nil {
		t.Fatal(err)
	}
	if len(captured) != layout.Len() {
		t.Fatalf("expected %d charts, got %d", layout.Len(), len(captured))
	}
	if captured[0].Card.Canvas != "chart-popolazione" {
		t.Errorf("expected chart-popolazione first, got %s", captured[0].Card.Canvas)
	}
	if last := captured[len(captured)-1]; last.Card.Canvas != "chart-patrimonio-valore" {
		t.Errorf("expected chart-patrimonio-valore last, got %s", last.Card.Canvas)
	}
	for _, c := range captured {
		if len(c.PNG) == 0 {
			t.Errorf("%s: empty image", c.Card.Canvas)
		}
	}
}

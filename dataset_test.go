package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultDataset_KPI(t *testing.T) {
	d := mustDataset(t)

	if d.Metadata.Territorio != "Provincia di Pesaro e Urbino" || d.Metadata.Anno != 2024 {
		t.Errorf("unexpected metadata %+v", d.Metadata)
	}

	k := d.KPI
	if k.PopolazioneTotale != 349882 {
		t.Errorf("popolazione: expected 349882, got %d", k.PopolazioneTotale)
	}
	if k.TassoOccupazione != 70.1 {
		t.Errorf("tasso occupazione: expected 70.1, got %v", k.TassoOccupazione)
	}
	if k.PensionatiTotale != 98502 {
		t.Errorf("pensionati: expected 98502, got %d", k.PensionatiTotale)
	}
	if k.EntrateContributive != 675251190.81 {
		t.Errorf("entrate: expected 675251190.81, got %v", k.EntrateContributive)
	}
	if k.CrescitaEntrate != "+4.5%" {
		t.Errorf("crescita: expected +4.5%%, got %s", k.CrescitaEntrate)
	}
	if k.SaldoDemografico2023 != -778 {
		t.Errorf("saldo demografico: expected -778, got %d", k.SaldoDemografico2023)
	}
}

func TestDefaultDataset_KPIMatchesTree(t *testing.T) {
	d := mustDataset(t)
	if d.KPI.PopolazioneTotale != d.Demografia.Popolazione.Totale {
		t.Errorf("KPI population %d, tree %d", d.KPI.PopolazioneTotale, d.Demografia.Popolazione.Totale)
	}
}

// =============================================================================
// Loading
// =============================================================================

func TestLoadDataset_RejectsUnknownKeys(t *testing.T) {
	doc := `
metadata:
  territorio: "Provincia di Pesaro e Urbino"
  anno: 2024
  fonti: "typo"
`
	_, err := LoadDataset(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "fonti") {
		t.Errorf("expected the unknown key in the error, got %v", err)
	}
}

func TestLoadDataset_Partial(t *testing.T) {
	doc := `
metadata:
  territorio: "Provincia di Ancona"
  anno: 2023
kpi:
  popolazione_totale: 464419
`
	d, err := LoadDataset(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if d.Metadata.Territorio != "Provincia di Ancona" || d.KPI.PopolazioneTotale != 464419 {
		t.Errorf("unexpected dataset %+v", d.Metadata)
	}

	// Sections missing from the document still build, with empty series
	if _, err := BuildSection(d, Demografia, NoSubTab); err != nil {
		t.Errorf("BuildSection on partial dataset: %v", err)
	}
}

func TestLoadDatasetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	if err := os.WriteFile(path, datasetYAML, 0644); err != nil {
		t.Fatal(err)
	}
	d, err := LoadDatasetFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if d.KPI.PensionatiTotale != 98502 {
		t.Errorf("expected 98502, got %d", d.KPI.PensionatiTotale)
	}

	if _, err := LoadDatasetFile(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestDataset_Section(t *testing.T) {
	d := mustDataset(t)
	for _, s := range AllSections() {
		v, err := d.Section(s)
		if err != nil || v == nil {
			t.Errorf("%s: got %v, %v", s, v, err)
		}
	}
	if _, err := d.Section(Section(10)); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("expected ErrUnknownSection, got %v", err)
	}
}

// =============================================================================
// Helpers
// =============================================================================

func TestPercent_Value(t *testing.T) {
	tests := []struct {
		in   Percent
		want float64
	}{
		{"52.4%", 52.4},
		{"+4.5%", 4.5},
		{" 8.6% ", 8.6},
		{"-1.2%", -1.2},
		{"12", 12},
		{"n.d.", 0},
		{"", 0},
	}
	for _, tc := range tests {
		if got := tc.in.Value(); got != tc.want {
			t.Errorf("Percent(%q).Value(): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestYears_Sorted(t *testing.T) {
	got := Years(map[int]string{2024: "c", 2022: "a", 2023: "b"})
	want := []int{2022, 2023, 2024}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
	if len(Years(map[int]int(nil))) != 0 {
		t.Error("expected no years for a nil map")
	}
}

package main

import "fmt"

// Builder turns the dataset into the charts of one section. Tabbed sections
// only build the charts of the given sub-tab; the others ignore it.
type Builder func(d *Dataset, tab SubTab) []ChartSpec

// builders is indexed by Section. Its type pins the length to sectionCount,
// so adding a section without a builder does not compile.
var builders = [...]Builder{
	buildDemografia,
	buildMercatoLavoro,
	buildEntrateVigilanza,
	buildAmmortizzatori,
	buildPensioni,
	buildAssistenza,
	buildRelazioniUtenza,
	buildOrganizzazione,
	buildContenzioso,
	buildPatrimonio,
}

var _ [sectionCount]Builder = builders

// BuildSection returns the chart specs of a section for the given sub-tab.
// An empty sub-tab selects the section's default one.
func BuildSection(d *Dataset, s Section, tab SubTab) ([]ChartSpec, error) {
	if d == nil {
		return nil, fmt.Errorf("build %s: nil dataset", s)
	}
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSection, int(s))
	}
	if tab == NoSubTab {
		tab = s.DefaultSubTab()
	} else if !s.HasSubTab(tab) {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownSubTab, tab, s)
	}

	specs := builders[s](d, tab)
	for i := range specs {
		specs[i].SubTab = tab
	}
	return specs, nil
}

// BuildAll returns every chart of a section across all of its sub-tabs
func BuildAll(d *Dataset, s Section) ([]ChartSpec, error) {
	tabs := s.SubTabs()
	if len(tabs) == 0 {
		return BuildSection(d, s, NoSubTab)
	}
	var all []ChartSpec
	for _, tab := range tabs {
		specs, err := BuildSection(d, s, tab)
		if err != nil {
			return nil, err
		}
		all = append(all, specs...)
	}
	return all, nil
}

// =============================================================================
// Dataset helpers
// =============================================================================

func bars(label string, values []float64, colors ...string) ChartDataset {
	return ChartDataset{Label: label, Data: values, BackgroundColor: colors}
}

func roundedBars(label string, values []float64, colors ...string) ChartDataset {
	ds := bars(label, values, colors...)
	ds.BorderRadius = 5
	return ds
}

func line(label string, values []float64, color string, tension float64) ChartDataset {
	return ChartDataset{Label: label, Data: values, BorderColor: Colors{color}, Tension: tension}
}

// area is a filled line on a translucent background of the same color
func area(label string, values []float64, color string) ChartDataset {
	ds := line(label, values, color, 0.4)
	ds.BackgroundColor = Colors{translucent(color)}
	ds.Fill = true
	return ds
}

// slices is the single dataset of a pie or doughnut chart
func slices(values []float64, colors ...string) ChartDataset {
	return ChartDataset{Data: values, BackgroundColor: colors, BorderColor: Colors{borderSlate}}
}

func chart(t ChartType, labels []string, opts ChartOptions, datasets ...ChartDataset) *ChartConfig {
	return &ChartConfig{Type: t, Data: ChartData{Labels: labels, Datasets: datasets}, Options: opts}
}

// =============================================================================
// 1. Demografia
// =============================================================================

func buildDemografia(d *Dataset, _ SubTab) []ChartSpec {
	demo := d.Demografia
	pop := demo.Popolazione

	saldo := demo.SaldoNaturale.SerieStorica
	saldoYears := years(saldo, func(b BilancioNaturale) int { return b.Anno })
	saldoOpts := darkAxesOptions()

	longYears := Years(demo.Longevita.Data)
	longOpts := darkAxesOptions()
	longOpts.Scales["y"].Min = floatPtr(75)

	flussi := demo.FlussiMigratori.SaldoDemografico.SerieStorica
	flussiYears := years(flussi, func(b BilancioDemografico) int { return b.Anno })
	demografico := line("Saldo Demografico", series(flussi, func(b BilancioDemografico) float64 { return float64(b.SaldoDemografico) }), colorPrimary, 0.4)
	demografico.BackgroundColor = Colors{translucent(colorPrimary)}
	demografico.BorderWidth = 3
	migratorio := line("Saldo Migratorio", series(flussi, func(b BilancioDemografico) float64 { return float64(b.SaldoMigratorio) }), colorSuccess, 0.4)
	migratorio.BackgroundColor = Colors{translucent(colorSuccess)}
	naturale := line("Saldo Naturale", series(flussi, func(b BilancioDemografico) float64 { return float64(b.SaldoNaturale) }), colorError, 0.4)
	naturale.BackgroundColor = Colors{translucent(colorError)}

	return []ChartSpec{
		{
			Canvas: "chart-popolazione",
			Title:  pop.Title,
			Config: chart(ChartDoughnut, []string{"Femmine", "Maschi"}, circularOptions(textLight),
				slices(floats(pop.Femmine, pop.Maschi), colorAccent, colorSecondary)),
		},
		{
			Canvas: "chart-saldo-naturale",
			Title:  demo.SaldoNaturale.Title,
			Config: chart(ChartLine, yearLabels(saldoYears), saldoOpts,
				area("Saldo Naturale", series(saldo, func(b BilancioNaturale) float64 { return float64(b.Saldo) }), colorError)),
		},
		{
			Canvas: "chart-longevita",
			Title:  demo.Longevita.Title,
			Config: chart(ChartBar, yearLabels(longYears), longOpts,
				bars("Femmine", seriesOfYears(longYears, func(y int) float64 { return demo.Longevita.Data[y].AllaNascita.Femmine }), colorAccent),
				bars("Maschi", seriesOfYears(longYears, func(y int) float64 { return demo.Longevita.Data[y].AllaNascita.Maschi }), colorSecondary)),
		},
		{
			Canvas: "chart-flussi-migratori",
			Title:  demo.FlussiMigratori.Title,
			Config: chart(ChartLine, yearLabels(flussiYears), darkAxesOptions(), migratorio, naturale, demografico),
		},
	}
}

// seriesOfYears evaluates field for each year in order
func seriesOfYears(ys []int, field func(int) float64) []float64 {
	out := make([]float64, len(ys))
	for i, y := range ys {
		out[i] = field(y)
	}
	return out
}

// =============================================================================
// 2. Mercato del lavoro
// =============================================================================

func buildMercatoLavoro(d *Dataset, _ SubTab) []ChartSpec {
	ml := d.MercatoLavoro
	lav := ml.Lavoratori
	occ := ml.IndicatoriOccupazione.TassoOccupazione

	occOpts := darkAxesOptions()
	occOpts.Scales["y"].BeginAtZero = true
	occOpts.Scales["y"].Max = floatPtr(100)
	occOpts.Scales["y"].Ticks.Suffix = "%"

	flowYears := Years(ml.Assunzioni.Confronto)
	flowOpts := darkAxesOptions()
	flowOpts.Scales["y"].BeginAtZero = true

	priv := ml.Retribuzioni.SettorePrivato
	sectors := []GenderRate{priv.Manifatturiero, priv.Costruzioni, priv.Commercio, priv.TurismoRistorazione, priv.AttivitaFinanziarie}
	payOpts := darkAxesOptions()
	payOpts.IndexAxis = "y"
	payOpts.Scales["x"].BeginAtZero = true
	payOpts.Scales["x"].Ticks.Prefix = "€"

	return []ChartSpec{
		{
			Canvas: "chart-lavoratori-categoria",
			Title:  lav.Title,
			Config: chart(ChartPie,
				[]string{"Dipendenti", "Artigiani", "Commercianti", "Agricoli Autonomi", "Gestione Separata"},
				circularOptions(textLight),
				slices(floats(lav.Dipendenti.Totale, lav.Autonomi.Artigiani, lav.Autonomi.Commercianti, lav.Autonomi.Agricoli, lav.GestioneSeparata),
					chartPalette[:5]...)),
		},
		{
			Canvas: "chart-tasso-occupazione",
			Title:  "Tasso di occupazione per fascia d'età",
			Config: chart(ChartBar, []string{"15-24", "25-34", "35-49", "50-64"}, occOpts,
				bars("Femmine", []float64{occ.Femmine.Da15a24, occ.Femmine.Da25a34, occ.Femmine.Da35a49, occ.Femmine.Da50a64}, colorAccent),
				bars("Maschi", []float64{occ.Maschi.Da15a24, occ.Maschi.Da25a34, occ.Maschi.Da35a49, occ.Maschi.Da50a64}, colorSecondary)),
		},
		{
			Canvas: "chart-assunzioni-cessazioni",
			Title:  "Assunzioni e cessazioni",
			Config: chart(ChartBar, yearLabels(flowYears), flowOpts,
				bars("Assunzioni", seriesOfYears(flowYears, func(y int) float64 { return float64(ml.Assunzioni.Confronto[y].Totale) }), colorSuccess),
				bars("Cessazioni", seriesOfYears(flowYears, func(y int) float64 { return float64(ml.Cessazioni.Confronto[y].Totale) }), colorError)),
		},
		{
			Canvas: "chart-retribuzioni",
			Title:  ml.Retribuzioni.Title,
			Config: chart(ChartBar,
				[]string{"Manifatturiero", "Costruzioni", "Commercio", "Turismo/Ristorazione", "Attività Finanziarie"},
				payOpts,
				bars("Femmine", series(sectors, func(g GenderRate) float64 { return g.Femmine }), colorAccent),
				bars("Maschi", series(sectors, func(g GenderRate) float64 { return g.Maschi }), colorSecondary)),
		},
	}
}

// =============================================================================
// 3. Entrate contributive e vigilanza
// =============================================================================

func buildEntrateVigilanza(d *Dataset, _ SubTab) []ChartSpec {
	ev := d.EntrateVigilanza

	entrate := ev.EntrateContributive.SerieStorica
	entrateYears := years(entrate, func(i Importo) int { return i.Anno })
	entrateOpts := darkAxesOptions()
	entrateOpts.Scales["y"].Ticks.Prefix = "€"
	entrateOpts.Scales["y"].Ticks.Suffix = "M"

	ispYears := Years(ev.VigilanzaIspettiva.Confronto)
	ispColors := []string{colorSecondary, colorPrimary}
	ispOpts := darkAxesOptions()
	ispOpts.Scales["y"].BeginAtZero = true
	var ispezioni []ChartDataset
	for i, y := range ispYears {
		v := ev.VigilanzaIspettiva.Confronto[y]
		ispezioni = append(ispezioni, bars(fmt.Sprint(y), []float64{
			float64(v.NumeroIspezioni),
			float64(v.AziendeIrregolari),
			v.AccertatoContributi / ScaleThousands,
			v.AccertatoSanzioni / ScaleThousands,
		}, ispColors[i%len(ispColors)]))
	}

	durc := ev.Durc.Evoluzione
	durcYears := years(durc, func(a DurcAnno) int { return a.Anno })
	regolari := line("DURC Regolari", series(durc, func(a DurcAnno) float64 { return float64(a.Regolari) }), colorSuccess, 0.4)
	regolari.BackgroundColor = Colors{translucent(colorSuccess)}
	regolari.YAxisID = "y"
	irregolari := line("% DURC Irregolari", series(durc, func(a DurcAnno) float64 { return a.PercIrregolari }), colorError, 0.4)
	irregolari.BackgroundColor = Colors{translucent(colorError)}
	irregolari.YAxisID = "y1"
	durcOpts := darkAxesOptions()
	durcOpts.Scales["y"].Type = "linear"
	durcOpts.Scales["y"].Display = boolPtr(true)
	durcOpts.Scales["y"].Position = "left"
	durcOpts.Scales["y1"] = &Scale{
		Type:     "linear",
		Display:  boolPtr(true),
		Position: "right",
		Ticks:    Ticks{Color: textLight, Suffix: "%"},
		Grid:     Grid{DrawOnChartArea: boolPtr(false)},
	}

	return []ChartSpec{
		{
			Canvas: "chart-entrate-contributive",
			Title:  ev.EntrateContributive.Title,
			Config: chart(ChartLine, yearLabels(entrateYears), entrateOpts,
				area("Entrate Contributive (€M)", scaled(series(entrate, func(i Importo) float64 { return i.Importo }), ScaleMillions), colorSuccess)),
		},
		{
			Canvas: "chart-vigilanza-ispettiva",
			Title:  ev.VigilanzaIspettiva.Title,
			Config: chart(ChartBar,
				[]string{"Ispezioni", "Aziende Irregolari", "Accertato Contributi (K€)", "Accertato Sanzioni (K€)"},
				ispOpts, ispezioni...),
		},
		{
			Canvas: "chart-durc",
			Title:  ev.Durc.Title,
			Config: chart(ChartLine, yearLabels(durcYears), durcOpts, regolari, irregolari),
		},
	}
}

// =============================================================================
// 4. Ammortizzatori sociali
// =============================================================================

func buildAmmortizzatori(d *Dataset, tab SubTab) []ChartSpec {
	am := d.Ammortizzatori
	c := vivid

	switch tab {
	case SubTabCessazione:
		naspi := am.Naspi.Evoluzione
		naspiYears := years(naspi, func(y YearCount) int { return y.Anno })

		benYears := Years(am.BeneficiariCessazione.Anni)
		ben := func(field func(CessazioneAnno) int) []float64 {
			return seriesOfYears(benYears, func(y int) float64 { return float64(field(am.BeneficiariCessazione.Anni[y])) })
		}

		timingOpts := circularOptions(textMuted)
		timingOpts.Plugins.Tooltip = &Tooltip{Suffix: "%", Decimals: 1}

		return []ChartSpec{
			{
				Canvas: "naspiGenderChart",
				Title:  "Beneficiari NASpI per genere",
				Config: chart(ChartBar, yearLabels(naspiYears), tabbedAxesOptions(),
					roundedBars("Femmine", series(naspi, func(y YearCount) float64 { return float64(y.Femmine) }), c.Pink),
					roundedBars("Maschi", series(naspi, func(y YearCount) float64 { return float64(y.Maschi) }), c.Sky)),
			},
			{
				Canvas: "benefitsTypeChart",
				Title:  am.BeneficiariCessazione.Title,
				Config: chart(ChartBar, yearLabels(benYears), tabbedAxesOptions(),
					roundedBars("NASpI", ben(func(a CessazioneAnno) int { return a.Naspi }), c.Purple),
					roundedBars("Disoccupazione Agricola", ben(func(a CessazioneAnno) int { return a.DisoccupazioneAgricola }), c.Teal),
					roundedBars("Dis-coll", ben(func(a CessazioneAnno) int { return a.DisColl }), c.Orange)),
			},
			{
				Canvas: "naspiTimingChart",
				Title:  "Tempi di liquidazione NASpI",
				Config: chart(ChartDoughnut, []string{"Entro 15 gg", "Oltre 15 gg"}, timingOpts,
					slices([]float64{am.Naspi.TempiLiquidazione.Entro15Giorni, am.Naspi.TempiLiquidazione.Oltre15Giorni}, c.Green, c.Red)),
			},
		}

	case SubTabSospensione:
		cig := am.Cig.Evoluzione
		cigYears := years(cig, func(o OreCig) int { return o.Anno })

		sospYears := Years(am.BeneficiariSospensione.Anni)
		sosp := func(field func(SospensioneAnno) int) []float64 {
			return seriesOfYears(sospYears, func(y int) float64 { return float64(field(am.BeneficiariSospensione.Anni[y])) })
		}

		tempi := am.TempiErogazione
		latest := func(t TempiGestione) []float64 {
			ys := Years(t.Anni)
			current := 0
			if len(ys) > 0 {
				current = t.Anni[ys[len(ys)-1]]
			}
			return floats(current, t.Confronti2024.RegioneMarche, t.Confronti2024.Italia)
		}

		return []ChartSpec{
			{
				Canvas: "cigHoursChart",
				Title:  am.Cig.Title,
				Config: chart(ChartLine, yearLabels(cigYears), tabbedAxesOptions(),
					line("CIGO", series(cig, func(o OreCig) float64 { return float64(o.Cigo) }), c.Sky, 0.3),
					line("CIGS", series(cig, func(o OreCig) float64 { return float64(o.Cigs) }), c.Pink, 0.3),
					line("Fondi Solidarietà", series(cig, func(o OreCig) float64 { return float64(o.Fis) }), c.Green, 0.3)),
			},
			{
				Canvas: "cigBeneficiariesChart",
				Title:  am.BeneficiariSospensione.Title,
				Config: chart(ChartBar, yearLabels(sospYears), tabbedAxesOptions(),
					roundedBars("CIGO", sosp(func(a SospensioneAnno) int { return a.Cigo }), c.Sky),
					roundedBars("CIGS", sosp(func(a SospensioneAnno) int { return a.Cigs }), c.Pink),
					roundedBars("Fondi Solidarietà", sosp(func(a SospensioneAnno) int { return a.Fis }), c.Green)),
			},
			{
				Canvas: "erogationTimingChart",
				Title:  tempi.Title,
				Config: chart(ChartBar, []string{"Pesaro e Urbino", "Regione Marche", "Italia"}, tabbedAxesOptions(),
					roundedBars("CIGO (gg)", latest(tempi.Cigo), c.Purple),
					roundedBars("FIS (gg)", latest(tempi.Fis), c.Teal)),
			},
		}
	}
	return nil
}

// =============================================================================
// 5. Pensioni
// =============================================================================

func buildPensioni(d *Dataset, tab SubTab) []ChartSpec {
	p := d.Pensioni
	c := pastel

	switch tab {
	case SubTabVigenti:
		byType := p.Pensionati.PerGenereTipologia
		pu := p.ImportiMediVigenti.ConfrontoTerritori.PesaroUrbino
		funds := []GenderRate{pu.FondoDipendenti, pu.DipendentiPubblici, pu.LavoratoriAutonomi}

		amountOpts := tabbedAxesOptions()
		amountOpts.Plugins.Tooltip = &Tooltip{Suffix: " €", Decimals: 2}

		age := p.EtaMediaPensionamento.Evoluzione
		ageYears := years(age, func(e EtaAnno) int { return e.Anno })

		g := p.PensioniVigenti.PerGestione

		return []ChartSpec{
			{
				Canvas: "pensionersByTypeChart",
				Title:  p.Pensionati.Title,
				Config: chart(ChartBar, []string{"Femmine", "Maschi"}, stacked(tabbedAxesOptions()),
					roundedBars("Pensionati IVS", floats(byType.IVS.Femmine, byType.IVS.Maschi), c.Teal),
					roundedBars("Beneficiari Assistenziali", floats(byType.Assistenziali.Femmine, byType.Assistenziali.Maschi), c.Purple)),
			},
			{
				Canvas: "averageAmountChart",
				Title:  p.ImportiMediVigenti.Title,
				Config: chart(ChartBar, []string{"FPLD", "Dip. Pubblici", "Lavoratori Autonomi"}, amountOpts,
					roundedBars("Femmine", series(funds, func(r GenderRate) float64 { return r.Femmine }), c.Pink),
					roundedBars("Maschi", series(funds, func(r GenderRate) float64 { return r.Maschi }), c.Sky)),
			},
			{
				Canvas: "retirementAgeChart",
				Title:  p.EtaMediaPensionamento.Title,
				Config: chart(ChartLine, yearLabels(ageYears), tabbedAxesOptions(),
					line("Femmine", series(age, func(e EtaAnno) float64 { return e.Femmine }), c.Pink, 0.3),
					line("Maschi", series(age, func(e EtaAnno) float64 { return e.Maschi }), c.Sky, 0.3)),
			},
			{
				Canvas: "pensionsByFundChart",
				Title:  p.PensioniVigenti.Title,
				Config: chart(ChartDoughnut, []string{"Lavoratori Autonomi", "FPLD", "Dipendenti Pubblici", "Altre Gestioni"},
					circularOptions(textMuted),
					slices(floats(g.LavoratoriAutonomi.Totale, g.FondoLavoratoriDipendenti.Totale, g.DipendentiPubblici.Totale, p.PensioniVigenti.AltreGestioni),
						c.Purple, c.Sky, c.Teal, c.Orange)),
			},
		}

	case SubTabLiquidate:
		liq := p.PensioniLiquidate
		liqYears := years(liq.Evoluzione, func(y YearCount) int { return y.Anno })
		totale := line("Totale", series(liq.Evoluzione, func(y YearCount) float64 { return float64(y.Totale) }), c.Teal, 0.3)
		totale.BorderWidth = 3
		femmine := line("Femmine", series(liq.Evoluzione, func(y YearCount) float64 { return float64(y.Femmine) }), c.Pink, 0.3)
		femmine.BorderDash = []float64{5, 5}
		maschi := line("Maschi", series(liq.Evoluzione, func(y YearCount) float64 { return float64(y.Maschi) }), c.Sky, 0.3)
		maschi.BorderDash = []float64{5, 5}

		sys := liq.SistemaCalcolo
		sysYears := years(sys, func(s SistemaCalcoloAnno) int { return s.Anno })
		comp := liq.Composizione2024

		return []ChartSpec{
			{
				Canvas: "liquidatedPensionsTrendChart",
				Title:  liq.Title,
				Config: chart(ChartLine, yearLabels(liqYears), tabbedAxesOptions(), totale, femmine, maschi),
			},
			{
				Canvas: "calculationSystemChart",
				Title:  "Pensioni liquidate per sistema di calcolo",
				Config: chart(ChartBar, yearLabels(sysYears), stacked(tabbedAxesOptions()),
					roundedBars("Retributivo", series(sys, func(s SistemaCalcoloAnno) float64 { return float64(s.Retributivo) }), c.Purple),
					roundedBars("Misto", series(sys, func(s SistemaCalcoloAnno) float64 { return float64(s.Misto) }), c.Sky),
					roundedBars("Contributivo", series(sys, func(s SistemaCalcoloAnno) float64 { return float64(s.Contributivo) }), c.Teal)),
			},
			{
				Canvas: "liquidatedCompositionChart",
				Title:  fmt.Sprintf("Composizione pensioni liquidate %d", d.Metadata.Anno),
				Config: chart(ChartDoughnut, []string{"Vecchiaia", "Anzianità/Anticipate", "Superstiti", "Invalidità"},
					circularOptions(textMuted),
					slices(floats(comp.Vecchiaia, comp.Anticipate, comp.Superstiti, comp.Invalidita), c.Teal, c.Sky, c.Purple, c.Pink)),
			},
		}

	case SubTabTempi:
		t := p.TempiLiquidazione

		perfOpts := hideLegend(tabbedAxesOptions())
		perfOpts.IndexAxis = "y"
		perfOpts.Scales = map[string]*Scale{
			"x": {BeginAtZero: true, Ticks: Ticks{Color: tickMuted, Suffix: "%"}, Grid: Grid{Color: gridFaint}},
			"y": {Ticks: Ticks{Color: tickMuted}, Grid: Grid{Display: boolPtr(false)}},
		}

		benchOpts := tabbedAxesOptions()
		benchOpts.Scales["y"].Ticks.Suffix = "%"

		dist := t.DistribuzionePrivata

		return []ChartSpec{
			{
				Canvas: "performanceByFundChart",
				Title:  t.Title,
				Config: chart(ChartBar, []string{"Fondi Speciali", "Gestione Pubblica", "Gestione Privata"}, perfOpts,
					roundedBars("% liquidate entro 30 giorni",
						[]float64{t.Entro30Giorni.FondiSpeciali, t.Entro30Giorni.GestionePubblica, t.Entro30Giorni.GestionePrivata},
						c.Teal, c.Purple, c.Sky)),
			},
			{
				Canvas: "privateTimingDistributionChart",
				Title:  "Distribuzione tempi - Gestione privata",
				Config: chart(ChartDoughnut, []string{"Entro 30 gg", "31-60 gg", "61-90 gg", "Oltre 90 gg"},
					circularOptions(textMuted),
					slices([]float64{dist.Entro30, dist.Da31a60, dist.Da61a90, dist.Oltre90}, c.Green, c.Orange, c.Pink, c.Red)),
			},
			{
				Canvas: "benchmarkTimingChart",
				Title:  "Confronto con la media nazionale",
				Config: chart(ChartBar, []string{"Gestione Privata", "Gestione Pubblica"}, benchOpts,
					roundedBars("Pesaro e Urbino", []float64{t.Entro30Giorni.GestionePrivata, t.Entro30Giorni.GestionePubblica}, c.Teal),
					roundedBars("Italia", []float64{t.Italia.GestionePrivata, t.Italia.GestionePubblica}, "rgba(45, 212, 191, 0.4)")),
			},
		}

	case SubTabAnticipi:
		a := p.AnticipazioniPensionistiche
		trendYears := Years(a.OpzioneDonna)
		quoteInYear := func(y int) float64 {
			for _, q := range a.Quote {
				if q.Anno == y {
					return float64(q.Totale)
				}
			}
			return 0
		}

		year := d.Metadata.Anno
		quoteLabels := make([]string, len(a.Quote))
		for i, q := range a.Quote {
			quoteLabels[i] = fmt.Sprintf("%s (%d)", q.Nome, q.Anno)
		}

		return []ChartSpec{
			{
				Canvas: "anticipiTrendChart",
				Title:  a.Title,
				Config: chart(ChartLine, yearLabels(trendYears), tabbedAxesOptions(),
					line("Opzione Donna", seriesOfYears(trendYears, func(y int) float64 { return float64(a.OpzioneDonna[y]) }), c.Pink, 0.3),
					line("Quota 102/103", seriesOfYears(trendYears, quoteInYear), c.Sky, 0.3)),
			},
			{
				Canvas: "anticipiCompositionChart",
				Title:  fmt.Sprintf("Composizione anticipi %d", year),
				Config: chart(ChartDoughnut, []string{"APE Sociale", "Quota 103", "Lavoratori Precoci", "Opzione Donna", "Lavori Usuranti"},
					circularOptions(textMuted),
					slices(floats(a.ApeSociale[year], a.Quota103[year].Totale, a.LavoratoriPrecoci[year], a.OpzioneDonna[year], a.LavoriUsuranti[year]),
						c.Teal, c.Sky, c.Purple, c.Pink, c.Orange)),
			},
			{
				Canvas: "quoteGenderChart",
				Title:  "Quote per genere",
				Config: chart(ChartBar, quoteLabels, stacked(tabbedAxesOptions()),
					roundedBars("Femmine", series(a.Quote, func(q Quota) float64 { return float64(q.Femmine) }), c.Pink),
					roundedBars("Maschi", series(a.Quote, func(q Quota) float64 { return float64(q.Maschi) }), c.Sky)),
			},
		}
	}
	return nil
}

// =============================================================================
// 6. Assistenza
// =============================================================================

func buildAssistenza(d *Dataset, _ SubTab) []ChartSpec {
	as := d.Assistenza
	c := pastel
	inv := as.InvaliditaCivile
	vig := inv.PrestazioniVigenti

	liq := inv.LiquidateEvoluzione
	liqYears := years(liq, func(t TotaleAnno) int { return t.Anno })

	defYears := Years(inv.TempiDefinizione)
	defColors := []string{"rgba(192, 132, 252, 0.6)", c.Purple}
	var definizione []ChartDataset
	for i, y := range defYears {
		t := inv.TempiDefinizione[y]
		color := defColors[len(defColors)-1]
		if i < len(defYears)-1 {
			color = defColors[0]
		}
		definizione = append(definizione, roundedBars(fmt.Sprintf("Tempo Medio %d (gg)", y), floats(t.PesaroUrbino, t.RegioneMarche, t.Italia), color))
	}

	sost := as.SostegnoReddito
	sostYears := Years(sost.EvoluzioneAccolte)
	accolte := func(field func(AccolteAnno) int) []float64 {
		return seriesOfYears(sostYears, func(y int) float64 { return float64(field(sost.EvoluzioneAccolte[y])) })
	}

	auLabels, auValues := byYear(as.AssegnoUnico.Anni, func(n NucleiAnno) float64 { return float64(n.NucleiAuDomanda) })
	rdc := sost.RdcPdc2023.DomandeAccolte

	return []ChartSpec{
		{
			Canvas: "prestazioniVigentiChart",
			Title:  inv.Title,
			Config: chart(ChartBar, []string{"Indennità di Accompagnamento", "Pensioni di Invalidità Civile"}, tabbedAxesOptions(),
				roundedBars("Femmine", floats(vig.IndennitaAccompagnamento.Femmine, vig.PensioniInvalidita.Femmine), c.Pink),
				roundedBars("Maschi", floats(vig.IndennitaAccompagnamento.Maschi, vig.PensioniInvalidita.Maschi), c.Sky)),
		},
		{
			Canvas: "liquidazioniTrendChart",
			Title:  "Invalidità civile - prestazioni liquidate",
			Config: chart(ChartLine, yearLabels(liqYears), hideLegend(tabbedAxesOptions()),
				line("Totale Prestazioni Liquidate", series(liq, func(t TotaleAnno) float64 { return float64(t.Totale) }), c.Teal, 0.3)),
		},
		{
			Canvas: "tempiDefinizioneChart",
			Title:  "Tempi medi di definizione (giorni)",
			Config: chart(ChartBar, []string{"Pesaro e Urbino", "Regione Marche", "Italia"}, tabbedAxesOptions(), definizione...),
		},
		{
			Canvas: "sostegnoRedditoChart",
			Title:  sost.Title,
			Config: chart(ChartBar, yearLabels(sostYears), stacked(tabbedAxesOptions()),
				roundedBars("RdC/PdC", accolte(func(a AccolteAnno) int { return a.RdcPdc }), c.Orange),
				roundedBars("ADI", accolte(func(a AccolteAnno) int { return a.Adi }), c.Sky),
				roundedBars("SFL", accolte(func(a AccolteAnno) int { return a.Sfl }), c.Teal)),
		},
		{
			Canvas: "assegnoUnicoChart",
			Title:  as.AssegnoUnico.Title,
			Config: chart(ChartBar, auLabels, hideLegend(tabbedAxesOptions()),
				roundedBars("Nuclei AU a domanda", auValues, c.Green, c.Teal)),
		},
		{
			Canvas: "rdcGenderChart",
			Title:  "RdC/PdC - domande accolte per genere",
			Config: chart(ChartDoughnut, []string{"Femmine", "Maschi"}, circularOptions(textMuted),
				slices(floats(rdc.Femmine, rdc.Maschi), c.Pink, c.Sky)),
		},
	}
}

// =============================================================================
// 7. Relazioni con l'utenza
// =============================================================================

func buildRelazioniUtenza(d *Dataset, _ SubTab) []ChartSpec {
	ru := d.RelazioniUtenza
	yearColors := []string{colorSecondary, colorPrimary}

	canaliYears := Years(ru.InformazionePrimoLivello.Anni)
	var canali []ChartDataset
	for i, y := range canaliYears {
		v := ru.InformazionePrimoLivello.Anni[y]
		canali = append(canali, bars(fmt.Sprint(y), floats(v.AccessoSede, v.RicontattoTelefonico, v.WebMeeting), yearColors[i%len(yearColors)]))
	}

	cas := ru.CassettoBidirezionale
	var casLabels []string
	var inEntrata, inUscita []float64
	for _, group := range []struct {
		name string
		anni map[int]Comunicazioni
	}{{"Aziende", cas.Aziende}, {"Patronati", cas.Patronati}} {
		for _, y := range Years(group.anni) {
			casLabels = append(casLabels, fmt.Sprintf("%s %d", group.name, y))
			inEntrata = append(inEntrata, float64(group.anni[y].InEntrata))
			inUscita = append(inUscita, float64(group.anni[y].InUscita))
		}
	}

	pecLabels, inviate := byYear(ru.FlussoPec.Anni, func(p PecAnno) float64 { return float64(p.Inviate) })
	_, ricevute := byYear(ru.FlussoPec.Anni, func(p PecAnno) float64 { return float64(p.Ricevute) })

	barOpts := func() ChartOptions {
		o := darkAxesOptions()
		o.Scales["y"].BeginAtZero = true
		return o
	}

	return []ChartSpec{
		{
			Canvas: "chart-canali-accesso",
			Title:  ru.InformazionePrimoLivello.Title,
			Config: chart(ChartBar, []string{"Accesso in Sede", "Ricontatto Telefonico", "Web Meeting"}, barOpts(), canali...),
		},
		{
			Canvas: "chart-cassetto-bidirezionale",
			Title:  cas.Title,
			Config: chart(ChartBar, casLabels, barOpts(),
				bars("In Entrata", inEntrata, colorSuccess),
				bars("In Uscita", inUscita, colorPrimary)),
		},
		{
			Canvas: "chart-pec",
			Title:  ru.FlussoPec.Title,
			Config: chart(ChartBar, pecLabels, barOpts(),
				bars("PEC Inviate", inviate, colorPrimary),
				bars("PEC Ricevute", ricevute, colorSecondary)),
		},
	}
}

// =============================================================================
// 8. Organizzazione
// =============================================================================

func buildOrganizzazione(d *Dataset, _ SubTab) []ChartSpec {
	org := d.Organizzazione
	perArea := org.Personale.PerArea
	str := org.DistribuzioneTerritoriale.Strutture

	strOpts := hideLegend(darkAxesOptions())
	strOpts.Scales["y"].BeginAtZero = true

	eta := org.Personale.EtaMedia.Evoluzione
	etaYears := years(eta, func(e EtaMediaAnno) int { return e.Anno })
	etaOpts := darkAxesOptions()
	etaOpts.Scales["y"].Min = floatPtr(50)
	etaOpts.Scales["y"].Max = floatPtr(60)
	etaOpts.Scales["y"].Ticks.Suffix = " anni"

	return []ChartSpec{
		{
			Canvas: "chart-personale",
			Title:  org.Personale.Title,
			Config: chart(ChartDoughnut, []string{"Dirigenti", "Medici/Professionisti", "Aree Professionali"}, circularOptions(textLight),
				slices(floats(perArea.Dirigenti.Totale, perArea.MediciProfessionisti.Totale, perArea.AreeProfessionali.Totale), colorError, colorWarning, colorPrimary)),
		},
		{
			Canvas: "chart-strutture",
			Title:  org.DistribuzioneTerritoriale.Title,
			Config: chart(ChartBar, []string{"Comuni", "Strutture INPS", "Patronati", "CAF"}, strOpts,
				bars("Numero", floats(str.NumeroComuni, str.StruttureInps, str.Patronati, str.Caf), colorSecondary, colorPrimary, colorSuccess, colorAccent)),
		},
		{
			Canvas: "chart-eta-media",
			Title:  "Età media del personale",
			Config: chart(ChartLine, yearLabels(etaYears), etaOpts,
				area("Età Media", series(eta, func(e EtaMediaAnno) float64 { return e.Eta }), colorPrimary)),
		},
	}
}

// =============================================================================
// 9. Contenzioso
// =============================================================================

func buildContenzioso(d *Dataset, tab SubTab) []ChartSpec {
	ct := d.Contenzioso

	switch tab {
	case SubTabAmministrativo:
		amm := ct.Amministrativo
		year := d.Metadata.Anno
		return []ChartSpec{{
			Canvas: "chart-contenzioso-amm",
			Title:  amm.Title,
			Config: chart(ChartDoughnut,
				[]string{fmt.Sprintf("Ricorsi Pervenuti %d", year), fmt.Sprintf("Ricorsi Pervenuti %d", year-1)},
				circularOptions(textLight),
				slices(floats(amm.RicorsiPervenuti, amm.RicorsiPervenuti2023), colorPrimary, colorSecondary)),
		}}

	case SubTabGiudiziario:
		m := ct.GiudiziarioOrdinario.PrincipaliMaterie
		materie := []Materia{m.ContenziosoContributivo, m.PrestazioniPensionistiche, m.InvaliditaCivileLegale}
		opts := darkAxesOptions()
		opts.Scales["y"].BeginAtZero = true
		opts.Scales["y"].Max = floatPtr(100)
		opts.Scales["y"].Ticks.Suffix = "%"
		return []ChartSpec{{
			Canvas: "chart-contenzioso-giud",
			Title:  ct.GiudiziarioOrdinario.Title,
			Config: chart(ChartBar, []string{"Contributivo", "Pensionistico", "Invalidità Civile"}, opts,
				bars("Favorevole INPS (%)", series(materie, func(m Materia) float64 { return m.FavorevoleInps.Value() }), colorSuccess),
				bars("Favorevole Utenti (%)", series(materie, func(m Materia) float64 { return m.FavorevoleUtenti.Value() }), colorError)),
		}}

	case SubTabATP:
		atp := ct.AtpInvaliditaCivile
		return []ChartSpec{{
			Canvas: "chart-atp-invalidita",
			Title:  atp.Title,
			Config: chart(ChartDoughnut, []string{"Favorevole INPS", "Favorevole Utenti", "Altri Esiti"}, circularOptions(textLight),
				slices([]float64{atp.FavorevoleInps.Value(), atp.FavorevoleUtenti.Value(), atp.AltriEsiti.Value()}, colorSuccess, colorError, colorWarning)),
		}}
	}
	return nil
}

// =============================================================================
// 10. Patrimonio
// =============================================================================

func buildPatrimonio(d *Dataset, _ SubTab) []ChartSpec {
	imm := d.Patrimonio.Immobiliare
	labels, raw := byYear(imm.ValoreEuro, func(v float64) float64 { return v })

	opts := darkAxesOptions()
	opts.Scales["y"].BeginAtZero = true
	opts.Scales["y"].Ticks.Prefix = "€"
	opts.Scales["y"].Ticks.Suffix = "M"

	return []ChartSpec{{
		Canvas: "chart-patrimonio-valore",
		Title:  imm.Title,
		Config: chart(ChartBar, labels, opts, bars("Valore Patrimonio (€M)", scaled(raw, ScaleMillions), colorPrimary)),
	}}
}

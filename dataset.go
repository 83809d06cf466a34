package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var datasetYAML []byte

// Dataset is the full statistics tree for one territory and year.
// It is decoded once and never mutated afterwards.
type Dataset struct {
	Metadata         Metadata             `yaml:"metadata" json:"metadata"`
	Demografia       DemografiaData       `yaml:"demografia" json:"demografia"`
	MercatoLavoro    MercatoLavoroData    `yaml:"mercato_lavoro" json:"mercato_lavoro"`
	EntrateVigilanza EntrateVigilanzaData `yaml:"entrate_vigilanza" json:"entrate_vigilanza"`
	Ammortizzatori   AmmortizzatoriData   `yaml:"ammortizzatori" json:"ammortizzatori"`
	Pensioni         PensioniData         `yaml:"pensioni" json:"pensioni"`
	Assistenza       AssistenzaData       `yaml:"assistenza" json:"assistenza"`
	RelazioniUtenza  RelazioniUtenzaData  `yaml:"relazioni_utenza" json:"relazioni_utenza"`
	Organizzazione   OrganizzazioneData   `yaml:"organizzazione" json:"organizzazione"`
	Contenzioso      ContenziosoData      `yaml:"contenzioso" json:"contenzioso"`
	Patrimonio       PatrimonioData       `yaml:"patrimonio" json:"patrimonio"`
	KPI              KPI                  `yaml:"kpi" json:"kpi"`
}

type Metadata struct {
	Territorio              string `yaml:"territorio" json:"territorio"`
	Anno                    int    `yaml:"anno" json:"anno"`
	Fonte                   string `yaml:"fonte" json:"fonte"`
	DataUltimoAggiornamento string `yaml:"data_ultimo_aggiornamento" json:"data_ultimo_aggiornamento"`
}

// KPI holds the headline figures shown above the tabs. They duplicate
// values found deeper in the tree.
type KPI struct {
	PopolazioneTotale    int     `yaml:"popolazione_totale" json:"popolazione_totale"`
	TassoOccupazione     float64 `yaml:"tasso_occupazione" json:"tasso_occupazione"`
	PensionatiTotale     int     `yaml:"pensionati_totale" json:"pensionati_totale"`
	EntrateContributive  float64 `yaml:"entrate_contributive" json:"entrate_contributive"`
	BeneficiariNaspi     int     `yaml:"beneficiari_naspi" json:"beneficiari_naspi"`
	PersonaleInps        int     `yaml:"personale_inps" json:"personale_inps"`
	SaldoDemografico2023 int     `yaml:"saldo_demografico_2023" json:"saldo_demografico_2023"`
	CrescitaEntrate      string  `yaml:"crescita_entrate" json:"crescita_entrate"`
}

// =============================================================================
// Shared shapes
// =============================================================================

// GenderPair is a female/male split of a count
type GenderPair struct {
	Femmine int `yaml:"femmine" json:"femmine"`
	Maschi  int `yaml:"maschi" json:"maschi"`
}

// GenderCount is a female/male split with the published total
type GenderCount struct {
	Femmine int `yaml:"femmine" json:"femmine"`
	Maschi  int `yaml:"maschi" json:"maschi"`
	Totale  int `yaml:"totale" json:"totale"`
}

// GenderRate is a female/male split of a rate, amount or age
type GenderRate struct {
	Femmine float64 `yaml:"femmine" json:"femmine"`
	Maschi  float64 `yaml:"maschi" json:"maschi"`
}

// Territori pairs the regional and national reference values of a metric
type Territori[T any] struct {
	RegioneMarche T `yaml:"regione_marche" json:"regione_marche"`
	Italia        T `yaml:"italia" json:"italia"`
}

// YearCount is one point of a yearly gender series
type YearCount struct {
	Anno        int `yaml:"anno" json:"anno"`
	GenderCount `yaml:",inline"`
}

// Importo is one point of a yearly currency series (euro)
type Importo struct {
	Anno    int     `yaml:"anno" json:"anno"`
	Importo float64 `yaml:"importo" json:"importo"`
}

// Percent is a percentage published as text, e.g. "52.4%" or "+4.5%"
type Percent string

// Value returns the numeric part of the percentage. Unparseable text yields 0.
func (p Percent) Value() float64 {
	s := strings.TrimSpace(string(p))
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimPrefix(s, "+")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Years returns the keys of a year-indexed map in ascending order
func Years[V any](m map[int]V) []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// =============================================================================
// 1. Demografia
// =============================================================================

type DemografiaData struct {
	Popolazione     Popolazione     `yaml:"popolazione" json:"popolazione"`
	SaldoNaturale   SaldoNaturale   `yaml:"saldo_naturale" json:"saldo_naturale"`
	Longevita       Longevita       `yaml:"longevita" json:"longevita"`
	FlussiMigratori FlussiMigratori `yaml:"flussi_migratori" json:"flussi_migratori"`
}

type FasceEta struct {
	Da0a14  int `yaml:"0-14" json:"0-14"`
	Da15a64 int `yaml:"15-64" json:"15-64"`
	Oltre65 int `yaml:"65_e_oltre" json:"65_e_oltre"`
}

type PercentualiPopolazione struct {
	Femmine float64 `yaml:"femmine" json:"femmine"`
	Maschi  float64 `yaml:"maschi" json:"maschi"`
	Da0a14  float64 `yaml:"0-14" json:"0-14"`
	Da15a64 float64 `yaml:"15-64" json:"15-64"`
	Oltre65 float64 `yaml:"65_e_oltre" json:"65_e_oltre"`
}

type ConfrontoPopolazione struct {
	Totale      int     `yaml:"totale" json:"totale"`
	FemminePerc float64 `yaml:"femmine_perc" json:"femmine_perc"`
	MaschiPerc  float64 `yaml:"maschi_perc" json:"maschi_perc"`
	Da0a14Perc  float64 `yaml:"0-14_perc" json:"0-14_perc"`
	Da15a64Perc float64 `yaml:"15-64_perc" json:"15-64_perc"`
	Oltre65Perc float64 `yaml:"65_e_oltre_perc" json:"65_e_oltre_perc"`
}

type Popolazione struct {
	Title       string                          `yaml:"title" json:"title"`
	Totale      int                             `yaml:"totale" json:"totale"`
	Femmine     int                             `yaml:"femmine" json:"femmine"`
	Maschi      int                             `yaml:"maschi" json:"maschi"`
	FasceEta    FasceEta                        `yaml:"fasce_eta" json:"fasce_eta"`
	Percentuali PercentualiPopolazione          `yaml:"percentuali" json:"percentuali"`
	Confronti   Territori[ConfrontoPopolazione] `yaml:"confronti" json:"confronti"`
}

type BilancioNaturale struct {
	Anno    int `yaml:"anno" json:"anno"`
	Nascite int `yaml:"nascite" json:"nascite"`
	Decessi int `yaml:"decessi" json:"decessi"`
	Saldo   int `yaml:"saldo" json:"saldo"`
}

type SaldoNaturale struct {
	Title         string             `yaml:"title" json:"title"`
	SerieStorica  []BilancioNaturale `yaml:"serie_storica" json:"serie_storica"`
	Incidenza2023 struct {
		SaldoNaturale        int     `yaml:"saldo_naturale" json:"saldo_naturale"`
		Popolazione          int     `yaml:"popolazione" json:"popolazione"`
		IncidenzaPercentuale float64 `yaml:"incidenza_percentuale" json:"incidenza_percentuale"`
	} `yaml:"incidenza_2023" json:"incidenza_2023"`
}

type SperanzaVita struct {
	AllaNascita GenderRate `yaml:"alla_nascita" json:"alla_nascita"`
	A65Anni     GenderRate `yaml:"a_65_anni" json:"a_65_anni"`
	A85Anni     GenderRate `yaml:"a_85_anni" json:"a_85_anni"`
}

type Longevita struct {
	Title         string                  `yaml:"title" json:"title"`
	Data          map[int]SperanzaVita    `yaml:"data" json:"data"`
	Confronti2023 Territori[SperanzaVita] `yaml:"confronti_2023" json:"confronti_2023"`
}

type FasceMigranti struct {
	Da0a17  int `yaml:"0-17" json:"0-17"`
	Da18a39 int `yaml:"18-39" json:"18-39"`
	Da40a64 int `yaml:"40-64" json:"40-64"`
	Oltre65 int `yaml:"oltre_65" json:"oltre_65"`
}

type Flusso struct {
	SerieStorica  []YearCount `yaml:"serie_storica" json:"serie_storica"`
	Dettaglio2023 struct {
		Femmine FasceMigranti `yaml:"femmine" json:"femmine"`
		Maschi  FasceMigranti `yaml:"maschi" json:"maschi"`
	} `yaml:"dettaglio_2023" json:"dettaglio_2023"`
	IncidenzaPercentuale float64 `yaml:"incidenza_percentuale" json:"incidenza_percentuale"`
}

type BilancioDemografico struct {
	Anno             int `yaml:"anno" json:"anno"`
	SaldoMigratorio  int `yaml:"saldo_migratorio" json:"saldo_migratorio"`
	SaldoNaturale    int `yaml:"saldo_naturale" json:"saldo_naturale"`
	SaldoDemografico int `yaml:"saldo_demografico" json:"saldo_demografico"`
}

type FlussiMigratori struct {
	Title            string `yaml:"title" json:"title"`
	Emigrati         Flusso `yaml:"emigrati" json:"emigrati"`
	Immigrati        Flusso `yaml:"immigrati" json:"immigrati"`
	SaldoDemografico struct {
		SerieStorica []BilancioDemografico `yaml:"serie_storica" json:"serie_storica"`
	} `yaml:"saldo_demografico" json:"saldo_demografico"`
}

// =============================================================================
// 2. Mercato del lavoro
// =============================================================================

type MercatoLavoroData struct {
	Lavoratori            Lavoratori            `yaml:"lavoratori" json:"lavoratori"`
	Assunzioni            Assunzioni            `yaml:"assunzioni" json:"assunzioni"`
	Cessazioni            Cessazioni            `yaml:"cessazioni" json:"cessazioni"`
	Retribuzioni          Retribuzioni          `yaml:"retribuzioni" json:"retribuzioni"`
	IndicatoriOccupazione IndicatoriOccupazione `yaml:"indicatori_occupazione" json:"indicatori_occupazione"`
}

type QuotaPartTime struct {
	Totale      int     `yaml:"totale" json:"totale"`
	PartTime    int     `yaml:"part_time" json:"part_time"`
	Percentuale float64 `yaml:"percentuale" json:"percentuale"`
}

type Lavoratori struct {
	Title      string `yaml:"title" json:"title"`
	Totale     int    `yaml:"totale" json:"totale"`
	Dipendenti struct {
		Totale          int         `yaml:"totale" json:"totale"`
		Comunitari      GenderCount `yaml:"comunitari" json:"comunitari"`
		Extracomunitari GenderCount `yaml:"extracomunitari" json:"extracomunitari"`
		Suddivisione    struct {
			Privati   int `yaml:"privati" json:"privati"`
			Pubblici  int `yaml:"pubblici" json:"pubblici"`
			Agricoli  int `yaml:"agricoli" json:"agricoli"`
			Domestici int `yaml:"domestici" json:"domestici"`
		} `yaml:"suddivisione" json:"suddivisione"`
	} `yaml:"dipendenti" json:"dipendenti"`
	Autonomi struct {
		Artigiani    int `yaml:"artigiani" json:"artigiani"`
		Commercianti int `yaml:"commercianti" json:"commercianti"`
		Agricoli     int `yaml:"agricoli" json:"agricoli"`
	} `yaml:"autonomi" json:"autonomi"`
	GestioneSeparata int `yaml:"gestione_separata" json:"gestione_separata"`
	PartTime         struct {
		TotaleDipendenti  int     `yaml:"totale_dipendenti" json:"totale_dipendenti"`
		PartTime          int     `yaml:"part_time" json:"part_time"`
		PercentualePU     float64 `yaml:"percentuale_pu" json:"percentuale_pu"`
		PercentualeMarche float64 `yaml:"percentuale_marche" json:"percentuale_marche"`
		PercentualeItalia float64 `yaml:"percentuale_italia" json:"percentuale_italia"`
		DettaglioGenere   struct {
			Femmine QuotaPartTime `yaml:"femmine" json:"femmine"`
			Maschi  QuotaPartTime `yaml:"maschi" json:"maschi"`
		} `yaml:"dettaglio_genere" json:"dettaglio_genere"`
	} `yaml:"part_time" json:"part_time"`
}

// Contratti counts hires or terminations by contract type
type Contratti struct {
	TempoIndeterminato int `yaml:"tempo_indeterminato" json:"tempo_indeterminato"`
	TempoDeterminato   int `yaml:"tempo_determinato" json:"tempo_determinato"`
	Stagionale         int `yaml:"stagionale" json:"stagionale"`
	Somministrazione   int `yaml:"somministrazione" json:"somministrazione"`
	Intermittente      int `yaml:"intermittente" json:"intermittente"`
	Totale             int `yaml:"totale" json:"totale"`
}

type Assunzioni struct {
	Title         string            `yaml:"title" json:"title"`
	Confronto     map[int]Contratti `yaml:"confronto" json:"confronto"`
	Dettaglio2024 struct {
		Italiani  GenderCount `yaml:"italiani" json:"italiani"`
		Stranieri GenderCount `yaml:"stranieri" json:"stranieri"`
	} `yaml:"dettaglio_2024" json:"dettaglio_2024"`
	PartTimeFasceEta2024 struct {
		Fino29  GenderCount `yaml:"fino_29" json:"fino_29"`
		Da30a50 GenderCount `yaml:"30_50" json:"30_50"`
		Oltre51 GenderCount `yaml:"51_oltre" json:"51_oltre"`
	} `yaml:"part_time_fasce_eta_2024" json:"part_time_fasce_eta_2024"`
}

type Cessazioni struct {
	Title     string            `yaml:"title" json:"title"`
	Confronto map[int]Contratti `yaml:"confronto" json:"confronto"`
}

type Retribuzioni struct {
	Title          string `yaml:"title" json:"title"`
	SettorePrivato struct {
		Manifatturiero      GenderRate `yaml:"manifatturiero" json:"manifatturiero"`
		Costruzioni         GenderRate `yaml:"costruzioni" json:"costruzioni"`
		Commercio           GenderRate `yaml:"commercio" json:"commercio"`
		TurismoRistorazione GenderRate `yaml:"turismo_ristorazione" json:"turismo_ristorazione"`
		AttivitaFinanziarie GenderRate `yaml:"attivita_finanziarie" json:"attivita_finanziarie"`
		SanitaAssistenza    GenderRate `yaml:"sanita_assistenza" json:"sanita_assistenza"`
		MediaTotale         GenderRate `yaml:"media_totale" json:"media_totale"`
	} `yaml:"settore_privato" json:"settore_privato"`
	SettorePubblico struct {
		AmministrazioniCentrali GenderRate `yaml:"amministrazioni_centrali" json:"amministrazioni_centrali"`
		AmministrazioniLocali   GenderRate `yaml:"amministrazioni_locali" json:"amministrazioni_locali"`
		ForzeArmate             GenderRate `yaml:"forze_armate" json:"forze_armate"`
		Scuola                  GenderRate `yaml:"scuola" json:"scuola"`
		ServizioSanitario       GenderRate `yaml:"servizio_sanitario" json:"servizio_sanitario"`
		Universita              GenderRate `yaml:"universita" json:"universita"`
		MediaTotale             GenderRate `yaml:"media_totale" json:"media_totale"`
	} `yaml:"settore_pubblico" json:"settore_pubblico"`
}

type FasceOccupazione struct {
	Da15a24 float64 `yaml:"15-24" json:"15-24"`
	Da25a34 float64 `yaml:"25-34" json:"25-34"`
	Da35a49 float64 `yaml:"35-49" json:"35-49"`
	Da50a64 float64 `yaml:"50-64" json:"50-64"`
}

type IndicatoriOccupazione struct {
	Title            string      `yaml:"title" json:"title"`
	Occupati         GenderCount `yaml:"occupati" json:"occupati"`
	TassoOccupazione struct {
		Totale     float64            `yaml:"totale" json:"totale"`
		Femmine    FasceOccupazione   `yaml:"femmine" json:"femmine"`
		Maschi     FasceOccupazione   `yaml:"maschi" json:"maschi"`
		Confronti  Territori[float64] `yaml:"confronti" json:"confronti"`
		Evoluzione map[int]float64    `yaml:"evoluzione" json:"evoluzione"`
	} `yaml:"tasso_occupazione" json:"tasso_occupazione"`
	Disoccupati         GenderCount `yaml:"disoccupati" json:"disoccupati"`
	TassoDisoccupazione struct {
		Totale     float64            `yaml:"totale" json:"totale"`
		Evoluzione map[int]float64    `yaml:"evoluzione" json:"evoluzione"`
		Confronti  Territori[float64] `yaml:"confronti" json:"confronti"`
	} `yaml:"tasso_disoccupazione" json:"tasso_disoccupazione"`
	Inattivi        GenderCount `yaml:"inattivi" json:"inattivi"`
	TassoInattivita struct {
		Totale     float64         `yaml:"totale" json:"totale"`
		Evoluzione map[int]float64 `yaml:"evoluzione" json:"evoluzione"`
	} `yaml:"tasso_inattivita" json:"tasso_inattivita"`
}

// =============================================================================
// 3. Entrate contributive e vigilanza
// =============================================================================

type EntrateVigilanzaData struct {
	EntrateContributive  EntrateContributive  `yaml:"entrate_contributive" json:"entrate_contributive"`
	RecuperoCrediti      RecuperoCrediti      `yaml:"recupero_crediti" json:"recupero_crediti"`
	RiscossioneCoattiva  RiscossioneCoattiva  `yaml:"riscossione_coattiva" json:"riscossione_coattiva"`
	VigilanzaIspettiva   VigilanzaIspettiva   `yaml:"vigilanza_ispettiva" json:"vigilanza_ispettiva"`
	VigilanzaDocumentale VigilanzaDocumentale `yaml:"vigilanza_documentale" json:"vigilanza_documentale"`
	Durc                 Durc                 `yaml:"durc" json:"durc"`
}

type EntrateContributive struct {
	Title         string             `yaml:"title" json:"title"`
	SerieStorica  []Importo          `yaml:"serie_storica" json:"serie_storica"`
	Confronti2024 Territori[float64] `yaml:"confronti_2024" json:"confronti_2024"`
}

type RecuperoCrediti struct {
	Title        string    `yaml:"title" json:"title"`
	SerieStorica []Importo `yaml:"serie_storica" json:"serie_storica"`
}

type RiscossioneCoattiva struct {
	Title    string `yaml:"title" json:"title"`
	Gestioni struct {
		AziendeUniemens          float64 `yaml:"aziende_uniemens" json:"aziende_uniemens"`
		GestioneAgricolaDatori   float64 `yaml:"gestione_agricola_datori" json:"gestione_agricola_datori"`
		GestioneAgricolaAutonomi float64 `yaml:"gestione_agricola_autonomi" json:"gestione_agricola_autonomi"`
		GestioneArtigiani        float64 `yaml:"gestione_artigiani" json:"gestione_artigiani"`
		GestioneCommercianti     float64 `yaml:"gestione_commercianti" json:"gestione_commercianti"`
		GestionePescatori        float64 `yaml:"gestione_pescatori" json:"gestione_pescatori"`
		TotaleProvinciale        float64 `yaml:"totale_provinciale" json:"totale_provinciale"`
	} `yaml:"gestioni" json:"gestioni"`
}

type Ispezioni struct {
	NumeroIspezioni       int     `yaml:"numero_ispezioni" json:"numero_ispezioni"`
	AziendeIrregolari     int     `yaml:"aziende_irregolari" json:"aziende_irregolari"`
	LavoratoriInteressati int     `yaml:"lavoratori_interessati" json:"lavoratori_interessati"`
	AccertatoContributi   float64 `yaml:"accertato_contributi" json:"accertato_contributi"`
	AccertatoSanzioni     float64 `yaml:"accertato_sanzioni" json:"accertato_sanzioni"`
}

type VigilanzaIspettiva struct {
	Title     string            `yaml:"title" json:"title"`
	Confronto map[int]Ispezioni `yaml:"confronto" json:"confronto"`
}

type VerificheDocumentali struct {
	Verifiche       int `yaml:"verifiche" json:"verifiche"`
	Irregolarita    int `yaml:"irregolarita" json:"irregolarita"`
	RapportiFittizi int `yaml:"rapporti_fittizi" json:"rapporti_fittizi"`
}

type VigilanzaDocumentale struct {
	Title string                       `yaml:"title" json:"title"`
	Anni  map[int]VerificheDocumentali `yaml:"anni" json:"anni"`
}

type DurcAnno struct {
	Anno           int     `yaml:"anno" json:"anno"`
	Regolari       int     `yaml:"regolari" json:"regolari"`
	Irregolari     int     `yaml:"irregolari" json:"irregolari"`
	PercIrregolari float64 `yaml:"perc_irregolari" json:"perc_irregolari"`
}

type Durc struct {
	Title      string     `yaml:"title" json:"title"`
	Evoluzione []DurcAnno `yaml:"evoluzione" json:"evoluzione"`
}

// =============================================================================
// 4. Ammortizzatori sociali
// =============================================================================

type AmmortizzatoriData struct {
	Naspi                  Naspi                  `yaml:"naspi" json:"naspi"`
	BeneficiariCessazione  BeneficiariCessazione  `yaml:"beneficiari_cessazione" json:"beneficiari_cessazione"`
	Cig                    Cig                    `yaml:"cig" json:"cig"`
	BeneficiariSospensione BeneficiariSospensione `yaml:"beneficiari_sospensione" json:"beneficiari_sospensione"`
	TempiErogazione        TempiErogazione        `yaml:"tempi_erogazione" json:"tempi_erogazione"`
}

type Naspi struct {
	Title             string         `yaml:"title" json:"title"`
	Evoluzione        []YearCount    `yaml:"evoluzione" json:"evoluzione"`
	Confronti2024     Territori[int] `yaml:"confronti_2024" json:"confronti_2024"`
	TempiLiquidazione struct {
		Entro15Giorni float64 `yaml:"entro_15_giorni" json:"entro_15_giorni"`
		Oltre15Giorni float64 `yaml:"oltre_15_giorni" json:"oltre_15_giorni"`
	} `yaml:"tempi_liquidazione" json:"tempi_liquidazione"`
}

type CessazioneAnno struct {
	Naspi                  int `yaml:"naspi" json:"naspi"`
	DisoccupazioneAgricola int `yaml:"disoccupazione_agricola" json:"disoccupazione_agricola"`
	DisColl                int `yaml:"dis_coll" json:"dis_coll"`
	Totale                 int `yaml:"totale" json:"totale"`
}

type BeneficiariCessazione struct {
	Title string                 `yaml:"title" json:"title"`
	Anni  map[int]CessazioneAnno `yaml:"anni" json:"anni"`
}

type OreCig struct {
	Anno   int `yaml:"anno" json:"anno"`
	Cigo   int `yaml:"cigo" json:"cigo"`
	Cigd   int `yaml:"cigd" json:"cigd"`
	Cigs   int `yaml:"cigs" json:"cigs"`
	Fis    int `yaml:"fis" json:"fis"`
	Totale int `yaml:"totale" json:"totale"`
}

type Cig struct {
	Title      string   `yaml:"title" json:"title"`
	Evoluzione []OreCig `yaml:"evoluzione" json:"evoluzione"`
}

type SospensioneAnno struct {
	Cigo   int `yaml:"cigo" json:"cigo"`
	Cigs   int `yaml:"cigs" json:"cigs"`
	Fis    int `yaml:"fis" json:"fis"`
	Totale int `yaml:"totale" json:"totale"`
}

type BeneficiariSospensione struct {
	Title string                  `yaml:"title" json:"title"`
	Anni  map[int]SospensioneAnno `yaml:"anni" json:"anni"`
}

// TempiGestione holds average payment days for one fund
type TempiGestione struct {
	Anni          map[int]int    `yaml:"anni" json:"anni"`
	Confronti2024 Territori[int] `yaml:"confronti_2024" json:"confronti_2024"`
}

type TempiErogazione struct {
	Title string        `yaml:"title" json:"title"`
	Cigo  TempiGestione `yaml:"cigo" json:"cigo"`
	Fis   TempiGestione `yaml:"fis" json:"fis"`
}

// =============================================================================
// 5. Pensioni
// =============================================================================

type PensioniData struct {
	Pensionati                  Pensionati                  `yaml:"pensionati" json:"pensionati"`
	PensioniVigenti             PensioniVigenti             `yaml:"pensioni_vigenti" json:"pensioni_vigenti"`
	ImportiMediVigenti          ImportiMediVigenti          `yaml:"importi_medi_vigenti" json:"importi_medi_vigenti"`
	EtaMediaPensionamento       EtaMediaPensionamento       `yaml:"eta_media_pensionamento" json:"eta_media_pensionamento"`
	PensioniLiquidate           PensioniLiquidate           `yaml:"pensioni_liquidate" json:"pensioni_liquidate"`
	TempiLiquidazione           TempiLiquidazionePensioni   `yaml:"tempi_liquidazione" json:"tempi_liquidazione"`
	AnticipazioniPensionistiche AnticipazioniPensionistiche `yaml:"anticipazioni_pensionistiche" json:"anticipazioni_pensionistiche"`
}

type Pensionati struct {
	Title        string `yaml:"title" json:"title"`
	Totale       int    `yaml:"totale" json:"totale"`
	Femmine      int    `yaml:"femmine" json:"femmine"`
	Maschi       int    `yaml:"maschi" json:"maschi"`
	PerTipologia struct {
		PensionatiIVS               int `yaml:"pensionati_ivs" json:"pensionati_ivs"`
		BeneficiariSociali          int `yaml:"beneficiari_sociali" json:"beneficiari_sociali"`
		BeneficiariInvaliditaCivile int `yaml:"beneficiari_invalidita_civile" json:"beneficiari_invalidita_civile"`
	} `yaml:"per_tipologia" json:"per_tipologia"`
	PerGenereTipologia struct {
		IVS           GenderPair `yaml:"ivs" json:"ivs"`
		Assistenziali GenderPair `yaml:"assistenziali" json:"assistenziali"`
	} `yaml:"per_genere_tipologia" json:"per_genere_tipologia"`
}

// Gestione breaks the pensions of one fund down by type
type Gestione struct {
	Totale     int `yaml:"totale" json:"totale"`
	Anticipate int `yaml:"anticipate" json:"anticipate"`
	Vecchiaia  int `yaml:"vecchiaia" json:"vecchiaia"`
	Invalidita int `yaml:"invalidita" json:"invalidita"`
	Superstiti int `yaml:"superstiti" json:"superstiti"`
}

type PensioniVigenti struct {
	Title         string `yaml:"title" json:"title"`
	Totale        int    `yaml:"totale" json:"totale"`
	AltreGestioni int    `yaml:"altre_gestioni" json:"altre_gestioni"`
	PerGestione   struct {
		FondoLavoratoriDipendenti Gestione `yaml:"fondo_lavoratori_dipendenti" json:"fondo_lavoratori_dipendenti"`
		DipendentiPubblici        Gestione `yaml:"dipendenti_pubblici" json:"dipendenti_pubblici"`
		LavoratoriAutonomi        Gestione `yaml:"lavoratori_autonomi" json:"lavoratori_autonomi"`
		AltrePrevidenziali        Gestione `yaml:"altre_previdenziali" json:"altre_previdenziali"`
	} `yaml:"per_gestione" json:"per_gestione"`
}

type ImportiGestioni struct {
	FondoDipendenti    GenderRate `yaml:"fondo_dipendenti" json:"fondo_dipendenti"`
	DipendentiPubblici GenderRate `yaml:"dipendenti_pubblici" json:"dipendenti_pubblici"`
	LavoratoriAutonomi GenderRate `yaml:"lavoratori_autonomi" json:"lavoratori_autonomi"`
	AltrePrevidenziali GenderRate `yaml:"altre_previdenziali" json:"altre_previdenziali"`
}

type ImportiMediVigenti struct {
	Title              string `yaml:"title" json:"title"`
	ConfrontoTerritori struct {
		PesaroUrbino ImportiGestioni `yaml:"pesaro_urbino" json:"pesaro_urbino"`
		Italia       ImportiGestioni `yaml:"italia" json:"italia"`
	} `yaml:"confronto_territori" json:"confronto_territori"`
}

type EtaAnno struct {
	Anno       int `yaml:"anno" json:"anno"`
	GenderRate `yaml:",inline"`
}

type EtaMediaPensionamento struct {
	Title      string    `yaml:"title" json:"title"`
	Evoluzione []EtaAnno `yaml:"evoluzione" json:"evoluzione"`
}

type SistemaCalcoloAnno struct {
	Anno         int `yaml:"anno" json:"anno"`
	Retributivo  int `yaml:"retributivo" json:"retributivo"`
	Misto        int `yaml:"misto" json:"misto"`
	Contributivo int `yaml:"contributivo" json:"contributivo"`
}

type PensioniLiquidate struct {
	Title            string               `yaml:"title" json:"title"`
	Evoluzione       []YearCount          `yaml:"evoluzione" json:"evoluzione"`
	SistemaCalcolo   []SistemaCalcoloAnno `yaml:"sistema_calcolo" json:"sistema_calcolo"`
	Composizione2024 struct {
		Vecchiaia  int `yaml:"vecchiaia" json:"vecchiaia"`
		Anticipate int `yaml:"anticipate" json:"anticipate"`
		Superstiti int `yaml:"superstiti" json:"superstiti"`
		Invalidita int `yaml:"invalidita" json:"invalidita"`
	} `yaml:"composizione_2024" json:"composizione_2024"`
}

type TempiLiquidazionePensioni struct {
	Title         string `yaml:"title" json:"title"`
	Entro30Giorni struct {
		FondiSpeciali    float64 `yaml:"fondi_speciali" json:"fondi_speciali"`
		GestionePubblica float64 `yaml:"gestione_pubblica" json:"gestione_pubblica"`
		GestionePrivata  float64 `yaml:"gestione_privata" json:"gestione_privata"`
	} `yaml:"entro_30_giorni" json:"entro_30_giorni"`
	DistribuzionePrivata struct {
		Entro30 float64 `yaml:"entro_30" json:"entro_30"`
		Da31a60 float64 `yaml:"da_31_a_60" json:"da_31_a_60"`
		Da61a90 float64 `yaml:"da_61_a_90" json:"da_61_a_90"`
		Oltre90 float64 `yaml:"oltre_90" json:"oltre_90"`
	} `yaml:"distribuzione_privata" json:"distribuzione_privata"`
	Italia struct {
		GestionePrivata  float64 `yaml:"gestione_privata" json:"gestione_privata"`
		GestionePubblica float64 `yaml:"gestione_pubblica" json:"gestione_pubblica"`
	} `yaml:"italia" json:"italia"`
}

// Quota is one early-retirement quota scheme in one year
type Quota struct {
	Nome        string `yaml:"nome" json:"nome"`
	Anno        int    `yaml:"anno" json:"anno"`
	GenderCount `yaml:",inline"`
}

type AnticipazioniPensionistiche struct {
	Title             string              `yaml:"title" json:"title"`
	OpzioneDonna      map[int]int         `yaml:"opzione_donna" json:"opzione_donna"`
	Quota103          map[int]GenderCount `yaml:"quota_103" json:"quota_103"`
	ApeSociale        map[int]int         `yaml:"ape_sociale" json:"ape_sociale"`
	LavoratoriPrecoci map[int]int         `yaml:"lavoratori_precoci" json:"lavoratori_precoci"`
	LavoriUsuranti    map[int]int         `yaml:"lavori_usuranti" json:"lavori_usuranti"`
	Quote             []Quota             `yaml:"quote" json:"quote"`
}

// =============================================================================
// 6. Assistenza
// =============================================================================

type AssistenzaData struct {
	InvaliditaCivile InvaliditaCivile `yaml:"invalidita_civile" json:"invalidita_civile"`
	SostegnoReddito  SostegnoReddito  `yaml:"sostegno_reddito" json:"sostegno_reddito"`
	AssegnoUnico     AssegnoUnico     `yaml:"assegno_unico" json:"assegno_unico"`
}

type DomandeAnno struct {
	DomandePresentate int `yaml:"domande_presentate" json:"domande_presentate"`
	DomandeAccolte    int `yaml:"domande_accolte" json:"domande_accolte"`
}

type TempiMediAnno struct {
	FaseSanitaria      int `yaml:"fase_sanitaria" json:"fase_sanitaria"`
	FaseAmministrativa int `yaml:"fase_amministrativa" json:"fase_amministrativa"`
	Totale             int `yaml:"totale" json:"totale"`
}

// TerritoriProvincia compares the province with region and nation
type TerritoriProvincia struct {
	PesaroUrbino  int `yaml:"pesaro_urbino" json:"pesaro_urbino"`
	RegioneMarche int `yaml:"regione_marche" json:"regione_marche"`
	Italia        int `yaml:"italia" json:"italia"`
}

type TotaleAnno struct {
	Anno   int `yaml:"anno" json:"anno"`
	Totale int `yaml:"totale" json:"totale"`
}

type InvaliditaCivile struct {
	Title              string `yaml:"title" json:"title"`
	PrestazioniVigenti struct {
		IndennitaAccompagnamento GenderCount `yaml:"indennita_accompagnamento" json:"indennita_accompagnamento"`
		PensioniInvalidita       GenderCount `yaml:"pensioni_invalidita" json:"pensioni_invalidita"`
		Totale                   GenderCount `yaml:"totale" json:"totale"`
	} `yaml:"prestazioni_vigenti" json:"prestazioni_vigenti"`
	PrestazioniLiquidate map[int]DomandeAnno        `yaml:"prestazioni_liquidate" json:"prestazioni_liquidate"`
	LiquidateEvoluzione  []TotaleAnno               `yaml:"liquidate_evoluzione" json:"liquidate_evoluzione"`
	TempiMedi            map[int]TempiMediAnno      `yaml:"tempi_medi" json:"tempi_medi"`
	TempiDefinizione     map[int]TerritoriProvincia `yaml:"tempi_definizione" json:"tempi_definizione"`
}

type AccolteAnno struct {
	RdcPdc int `yaml:"rdc_pdc" json:"rdc_pdc"`
	Adi    int `yaml:"adi" json:"adi"`
	Sfl    int `yaml:"sfl" json:"sfl"`
}

type SostegnoReddito struct {
	Title      string `yaml:"title" json:"title"`
	RdcPdc2023 struct {
		DomandePresentate GenderCount `yaml:"domande_presentate" json:"domande_presentate"`
		DomandeAccolte    GenderCount `yaml:"domande_accolte" json:"domande_accolte"`
	} `yaml:"rdc_pdc_2023" json:"rdc_pdc_2023"`
	AdiSfl2024 struct {
		AdiAccolte int `yaml:"adi_accolte" json:"adi_accolte"`
		SflAccolte int `yaml:"sfl_accolte" json:"sfl_accolte"`
	} `yaml:"adi_sfl_2024" json:"adi_sfl_2024"`
	EvoluzioneAccolte map[int]AccolteAnno `yaml:"evoluzione_accolte" json:"evoluzione_accolte"`
}

type NucleiAnno struct {
	NucleiAuDomanda int `yaml:"nuclei_au_domanda" json:"nuclei_au_domanda"`
	NucleiAuRdc     int `yaml:"nuclei_au_rdc" json:"nuclei_au_rdc"`
}

type AssegnoUnico struct {
	Title string             `yaml:"title" json:"title"`
	Anni  map[int]NucleiAnno `yaml:"anni" json:"anni"`
}

// =============================================================================
// 7. Relazioni con l'utenza
// =============================================================================

type RelazioniUtenzaData struct {
	InformazionePrimoLivello InformazionePrimoLivello `yaml:"informazione_primo_livello" json:"informazione_primo_livello"`
	ConsulenzaSecondoLivello ConsulenzaSecondoLivello `yaml:"consulenza_secondo_livello" json:"consulenza_secondo_livello"`
	CassettoBidirezionale    CassettoBidirezionale    `yaml:"cassetto_bidirezionale" json:"cassetto_bidirezionale"`
	FlussoPec                FlussoPec                `yaml:"flusso_pec" json:"flusso_pec"`
}

type PrenotazioniAnno struct {
	AccessoSede          int `yaml:"accesso_sede" json:"accesso_sede"`
	RicontattoTelefonico int `yaml:"ricontatto_telefonico" json:"ricontatto_telefonico"`
	WebMeeting           int `yaml:"web_meeting" json:"web_meeting"`
}

type InformazionePrimoLivello struct {
	Title string                   `yaml:"title" json:"title"`
	Anni  map[int]PrenotazioniAnno `yaml:"anni" json:"anni"`
}

type ConsulenzaSecondoLivello struct {
	Title string      `yaml:"title" json:"title"`
	Anni  map[int]int `yaml:"anni" json:"anni"`
}

type Comunicazioni struct {
	InEntrata int `yaml:"in_entrata" json:"in_entrata"`
	InUscita  int `yaml:"in_uscita" json:"in_uscita"`
}

type CassettoBidirezionale struct {
	Title     string                `yaml:"title" json:"title"`
	Aziende   map[int]Comunicazioni `yaml:"aziende" json:"aziende"`
	Patronati map[int]Comunicazioni `yaml:"patronati" json:"patronati"`
}

type PecAnno struct {
	Inviate  int `yaml:"inviate" json:"inviate"`
	Ricevute int `yaml:"ricevute" json:"ricevute"`
}

type FlussoPec struct {
	Title string          `yaml:"title" json:"title"`
	Anni  map[int]PecAnno `yaml:"anni" json:"anni"`
}

// =============================================================================
// 8. Organizzazione
// =============================================================================

type OrganizzazioneData struct {
	DistribuzioneTerritoriale DistribuzioneTerritoriale `yaml:"distribuzione_territoriale" json:"distribuzione_territoriale"`
	Personale                 Personale                 `yaml:"personale" json:"personale"`
}

type DistribuzioneTerritoriale struct {
	Title     string `yaml:"title" json:"title"`
	Strutture struct {
		NumeroComuni         int `yaml:"numero_comuni" json:"numero_comuni"`
		StruttureInps        int `yaml:"strutture_inps" json:"strutture_inps"`
		PuntiInps            int `yaml:"punti_inps" json:"punti_inps"`
		PuntiClienteServizio int `yaml:"punti_cliente_servizio" json:"punti_cliente_servizio"`
		Patronati            int `yaml:"patronati" json:"patronati"`
		Caf                  int `yaml:"caf" json:"caf"`
	} `yaml:"strutture" json:"strutture"`
}

type EtaMediaAnno struct {
	Anno int     `yaml:"anno" json:"anno"`
	Eta  float64 `yaml:"eta" json:"eta"`
}

type Personale struct {
	Title   string `yaml:"title" json:"title"`
	Totale  int    `yaml:"totale" json:"totale"`
	Femmine int    `yaml:"femmine" json:"femmine"`
	Maschi  int    `yaml:"maschi" json:"maschi"`
	PerArea struct {
		Dirigenti            GenderCount `yaml:"dirigenti" json:"dirigenti"`
		MediciProfessionisti GenderCount `yaml:"medici_professionisti" json:"medici_professionisti"`
		AreeProfessionali    GenderCount `yaml:"aree_professionali" json:"aree_professionali"`
	} `yaml:"per_area" json:"per_area"`
	Evoluzione []TotaleAnno `yaml:"evoluzione" json:"evoluzione"`
	EtaMedia   struct {
		Evoluzione []EtaMediaAnno `yaml:"evoluzione" json:"evoluzione"`
	} `yaml:"eta_media" json:"eta_media"`
}

// =============================================================================
// 9. Contenzioso
// =============================================================================

type ContenziosoData struct {
	Amministrativo       ContenziosoAmministrativo `yaml:"amministrativo" json:"amministrativo"`
	GiudiziarioOrdinario GiudiziarioOrdinario      `yaml:"giudiziario_ordinario" json:"giudiziario_ordinario"`
	AtpInvaliditaCivile  AtpInvaliditaCivile       `yaml:"atp_invalidita_civile" json:"atp_invalidita_civile"`
}

type ContenziosoAmministrativo struct {
	Title                      string  `yaml:"title" json:"title"`
	RicorsiPervenuti           int     `yaml:"ricorsi_pervenuti" json:"ricorsi_pervenuti"`
	RicorsiPervenuti2023       int     `yaml:"ricorsi_pervenuti_2023" json:"ricorsi_pervenuti_2023"`
	GiacenzaInizioAnno         int     `yaml:"giacenza_inizio_anno" json:"giacenza_inizio_anno"`
	GiacenzaFineAnno           int     `yaml:"giacenza_fine_anno" json:"giacenza_fine_anno"`
	RisoltiAmministrativamente Percent `yaml:"risolti_amministrativamente" json:"risolti_amministrativamente"`
	TrasmessiComitato          int     `yaml:"trasmessi_comitato" json:"trasmessi_comitato"`
	Deliberati                 int     `yaml:"deliberati" json:"deliberati"`
}

// Materia is the caseload of one subject matter before the ordinary courts
type Materia struct {
	DaLavorareInizio int     `yaml:"da_lavorare_inizio" json:"da_lavorare_inizio"`
	GiudiziIniziati  int     `yaml:"giudizi_iniziati" json:"giudizi_iniziati"`
	DaLavorareFine   int     `yaml:"da_lavorare_fine" json:"da_lavorare_fine"`
	Definiti         int     `yaml:"definiti" json:"definiti"`
	FavorevoleInps   Percent `yaml:"favorevole_inps" json:"favorevole_inps"`
	FavorevoleUtenti Percent `yaml:"favorevole_utenti" json:"favorevole_utenti"`
}

type GiudiziarioOrdinario struct {
	Title                 string  `yaml:"title" json:"title"`
	GiudiziPendentiTotali int     `yaml:"giudizi_pendenti_totali" json:"giudizi_pendenti_totali"`
	GiudiziDefiniti       Percent `yaml:"giudizi_definiti" json:"giudizi_definiti"`
	PrincipaliMaterie     struct {
		ContenziosoContributivo   Materia `yaml:"contenzioso_contributivo" json:"contenzioso_contributivo"`
		PrestazioniPensionistiche Materia `yaml:"prestazioni_pensionistiche" json:"prestazioni_pensionistiche"`
		InvaliditaCivileLegale    Materia `yaml:"invalidita_civile_legale" json:"invalidita_civile_legale"`
	} `yaml:"principali_materie" json:"principali_materie"`
}

type AtpInvaliditaCivile struct {
	Title            string  `yaml:"title" json:"title"`
	GiudiziIniziati  int     `yaml:"giudizi_iniziati" json:"giudizi_iniziati"`
	GiudiziDefiniti  int     `yaml:"giudizi_definiti" json:"giudizi_definiti"`
	FavorevoleInps   Percent `yaml:"favorevole_inps" json:"favorevole_inps"`
	FavorevoleUtenti Percent `yaml:"favorevole_utenti" json:"favorevole_utenti"`
	AltriEsiti       Percent `yaml:"altri_esiti" json:"altri_esiti"`
}

// =============================================================================
// 10. Patrimonio
// =============================================================================

type PatrimonioData struct {
	Immobiliare Immobiliare `yaml:"immobiliare" json:"immobiliare"`
}

type Immobiliare struct {
	Title         string             `yaml:"title" json:"title"`
	ValoreEuro    map[int]float64    `yaml:"valore_euro" json:"valore_euro"`
	Confronti2024 Territori[float64] `yaml:"confronti_2024" json:"confronti_2024"`
	Distribuzione struct {
		NumeroFabbricati    int `yaml:"numero_fabbricati" json:"numero_fabbricati"`
		NumeroUnitaAgricole int `yaml:"numero_unita_agricole" json:"numero_unita_agricole"`
	} `yaml:"distribuzione" json:"distribuzione"`
}

// =============================================================================
// Loading
// =============================================================================

// LoadDataset decodes a dataset document. Unknown keys are rejected so a
// typo in an external file does not silently blank a chart.
func LoadDataset(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data Dataset
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	return &data, nil
}

// LoadDatasetFile decodes a dataset from a YAML file on disk
func LoadDatasetFile(filename string) (*Dataset, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := LoadDataset(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// DefaultDataset returns the dataset compiled into the binary
func DefaultDataset() (*Dataset, error) {
	return LoadDataset(bytes.NewReader(datasetYAML))
}

// Section returns the subtree of the dataset backing a section
func (d *Dataset) Section(s Section) (any, error) {
	switch s {
	case Demografia:
		return d.Demografia, nil
	case MercatoLavoro:
		return d.MercatoLavoro, nil
	case EntrateVigilanza:
		return d.EntrateVigilanza, nil
	case Ammortizzatori:
		return d.Ammortizzatori, nil
	case Pensioni:
		return d.Pensioni, nil
	case Assistenza:
		return d.Assistenza, nil
	case RelazioniUtenza:
		return d.RelazioniUtenza, nil
	case Organizzazione:
		return d.Organizzazione, nil
	case Contenzioso:
		return d.Contenzioso, nil
	case Patrimonio:
		return d.Patrimonio, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSection, int(s))
	}
}

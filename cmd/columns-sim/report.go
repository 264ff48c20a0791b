package main

import (
	"io"
	"math"
	"slices"
	"strings"
	"text/template"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

type Report struct {
	// Configuration
	Games   int
	Workers int
	Seed    uint64
	Budget  uint64

	// Results
	Duration     time.Duration
	TotalTicks   uint64
	Finished     int
	Score        Stats
	Landed       Stats
	BestCombo    int
	LongestChain int
	BestSeed     uint64
}

type Stats struct {
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
	CILow  float64
	CIHigh float64
	P50    float64
	P90    float64
	P99    float64
}

// Summarize computes mean, deviation, a 95% confidence interval of the mean and
// empirical quantiles.
func Summarize(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		std = 0
	}
	half := distuv.UnitNormal.Quantile(0.975) * std / math.Sqrt(float64(len(sorted)))

	return Stats{
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		CILow:  mean - half,
		CIHigh: mean + half,
		P50:    stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		P99:    stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
}

func NewReport(results []Result, games, workers int, seed, budget uint64, duration time.Duration) *Report {
	r := &Report{
		Games:    games,
		Workers:  workers,
		Seed:     seed,
		Budget:   budget,
		Duration: duration,
	}

	scores := make([]float64, 0, len(results))
	landed := make([]float64, 0, len(results))
	best := -1
	for _, res := range results {
		scores = append(scores, float64(res.Score))
		landed = append(landed, float64(res.Landed))
		r.TotalTicks += res.Ticks
		if res.Finished {
			r.Finished++
		}
		r.BestCombo = max(r.BestCombo, res.MaxCombo)
		r.LongestChain = max(r.LongestChain, res.LongestChain)
		if res.Score > best {
			best = res.Score
			r.BestSeed = res.Seed
		}
	}
	r.Score = Summarize(scores)
	r.Landed = Summarize(landed)
	return r
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Color Columns Simulation Report

## Configuration
- **Games:** {{num .Games}}
- **Workers:** {{.Workers}}
- **First Seed:** {{.Seed}}
- **Tick Budget:** {{num .Budget}}

## Results
- **Run Time:** {{.Duration}}
- **Total Ticks:** {{num .TotalTicks}}
- **Games Over:** {{num .Finished}} of {{num .Games}}
- **Best Combo:** {{num .BestCombo}}
- **Longest Chain:** {{.LongestChain}}
- **Best Seed:** {{.BestSeed}}

{{table "Score" .Score}}
{{table "Landed Cargoes" .Landed}}`

	p := message.NewPrinter(language.English)
	fm := template.FuncMap{
		"num": func(v any) string {
			return p.Sprintf("%d", v)
		},
		"table": func(title string, s Stats) string {
			return fmtTable(p, title, []string{"Mean", "Std", "95% CI", "Min", "P50", "P90", "P99", "Max"}, map[string]string{
				"Mean":   p.Sprintf("%.2f", s.Mean),
				"Std":    p.Sprintf("%.2f", s.Std),
				"95% CI": p.Sprintf("%.2f .. %.2f", s.CILow, s.CIHigh),
				"Min":    p.Sprintf("%.0f", s.Min),
				"P50":    p.Sprintf("%.0f", s.P50),
				"P90":    p.Sprintf("%.0f", s.P90),
				"P99":    p.Sprintf("%.0f", s.P99),
				"Max":    p.Sprintf("%.0f", s.Max),
			})
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

func fmtTable(p *message.Printer, title string, keys []string, msg map[string]string) string {
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		maxKeyLen = max(maxKeyLen, runewidth.StringWidth(k))
		maxValLen = max(maxValLen, runewidth.StringWidth(m))
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)
	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	var b strings.Builder
	b.WriteString(top)
	b.WriteString(p.Sprintf("|%s%s%s|\n", blank(left), title, blank(right)))
	b.WriteString(divider)
	for _, k := range keys {
		b.WriteString(p.Sprintf("| %s%s | %s%s |\n", k, blank(maxKeyLen-2-runewidth.StringWidth(k)), msg[k], blank(maxValLen-2-runewidth.StringWidth(msg[k]))))
	}
	b.WriteString(divider)
	return b.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}

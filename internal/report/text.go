package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/philipbinhu/Stock/internal/emoji"
	"github.com/philipbinhu/Stock/internal/forecast"
	coinmath "github.com/philipbinhu/Stock/internal/math"
)

const (
	plotHeight = 10
	plotWidth  = 60
)

// Text writes a human readable report.
type Text struct {
	w     io.Writer
	plot  bool
	index int
	rows  [][]string
}

// NewText creates a text report writing to w.
func NewText(w io.Writer) *Text {
	return &Text{
		w:    w,
		rows: make([][]string, 0),
	}
}

// WithPlot adds a plot of the training values and the forecast to every series.
func (t *Text) WithPlot() *Text {
	t.plot = true
	return t
}

func (t *Text) Series(r forecast.Result) {
	t.index++
	fmt.Fprintf(t.w, "\nThe %s input stock dataset from %s\n", ordinal(t.index), r.Series)
	fmt.Fprintf(t.w, "Data size: %d\n", r.N+1)
	fmt.Fprintf(t.w, "The prediction of N+1 time is %s\n", r.Prediction.String())
	fmt.Fprintf(t.w, "The real value is %f\n", r.Record.Truth)
	fmt.Fprintf(t.w, "The absolute error is %f\n", r.Record.Absolute)
	if r.Record.RelativeOK {
		fmt.Fprintf(t.w, "The relative error is %f\n", r.Record.Relative)
	} else {
		fmt.Fprintf(t.w, "The relative error is undefined\n")
	}

	if t.plot && len(r.Targets) > 1 {
		series := make([]float64, len(r.Targets)+1)
		copy(series, r.Targets)
		series[len(r.Targets)] = r.Prediction.Mean
		fmt.Fprintln(t.w, asciigraph.Plot(series,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(r.Series)))
	}

	lower, upper := r.Prediction.Band(2)
	t.rows = append(t.rows, []string{
		r.Series,
		strconv.Itoa(r.N),
		coinmath.Format(r.Prediction.Mean),
		coinmath.Format(r.Prediction.Variance),
		fmt.Sprintf("[%s,%s]", coinmath.Format(lower), coinmath.Format(upper)),
		coinmath.Format(r.Record.Truth),
		coinmath.Format(r.Record.Absolute),
		relative(r.Record.Relative, r.Record.RelativeOK),
		baseline(r),
		signal(r),
	})
}

func (t *Text) Failure(id string, err error) {
	t.index++
	fmt.Fprintf(t.w, "\nThe %s input stock dataset from %s could not be forecasted: %s\n", ordinal(t.index), id, err.Error())
	t.rows = append(t.rows, []string{id, "-", "-", "-", "-", "-", "-", "-", "-", emoji.NoValue})
}

func (t *Text) Summary(s forecast.Summary) {
	fmt.Fprintf(t.w, "\nThe overall absolute mean error is %f\n", s.MeanAbsolute)
	if s.RelativeCount > 0 {
		fmt.Fprintf(t.w, "The overall average relative error is %f\n\n", s.MeanRelative)
	} else {
		fmt.Fprintf(t.w, "The overall average relative error is undefined\n\n")
	}

	table := tablewriter.NewWriter(t.w)
	table.SetHeader([]string{"series", "n", "mean", "variance", "2σ band", "truth", "abs", "rel", "least squares", ""})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(t.rows)
	table.SetFooter([]string{
		"overall",
		strconv.Itoa(s.Count),
		"", "", "",
		"rmse " + coinmath.Format(s.RMSE),
		coinmath.Format(s.MeanAbsolute),
		relative(s.MeanRelative, s.RelativeCount > 0),
		"",
		"",
	})
	table.Render()
}

func relative(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return coinmath.FormatP(v, 4)
}

func baseline(r forecast.Result) string {
	if !r.BaselineOK {
		return "-"
	}
	return coinmath.Format(r.Baseline)
}

// signal shows the direction of the forecast, its bias against the truth and its accuracy.
func signal(r forecast.Result) string {
	direction := emoji.Zero
	if len(r.Targets) > 0 {
		direction = emoji.MapToSentiment(r.Targets[len(r.Targets)-1], r.Prediction.Mean)
	}
	return direction +
		emoji.MapToSign(r.Prediction.Mean-r.Record.Truth) +
		emoji.MapAccuracy(r.Record.Relative, r.Record.RelativeOK)
}

func ordinal(i int) string {
	suffix := "th"
	switch {
	case i%100 >= 11 && i%100 <= 13:
	case i%10 == 1:
		suffix = "st"
	case i%10 == 2:
		suffix = "nd"
	case i%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", i, suffix)
}

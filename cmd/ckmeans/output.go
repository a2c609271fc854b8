package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yyyoichi/ckmeans"
)

type writer struct {
	w    io.Writer
	json bool
}

func newWriter(w io.Writer, format string) *writer {
	return &writer{w: w, json: format == "json"}
}

func (o *writer) groups(groups [][]float64) error {
	if o.json {
		return o.encode(groups)
	}
	for _, g := range groups {
		if _, err := fmt.Fprintln(o.w, join(g)); err != nil {
			return err
		}
	}
	return nil
}

func (o *writer) breaks(b []float64) error {
	if o.json {
		return o.encode(b)
	}
	_, err := fmt.Fprintln(o.w, join(b))
	return err
}

type report struct {
	K           int         `json:"k"`
	Groups      [][]float64 `json:"groups"`
	Sizes       []int       `json:"sizes"`
	Centers     []float64   `json:"centers"`
	Withinss    []float64   `json:"withinss"`
	TotWithinss float64     `json:"tot_withinss"`
	Totss       float64     `json:"totss"`
	Betweenss   float64     `json:"betweenss"`
	RawBreaks   []float64   `json:"raw_breaks"`
	RoundBreaks []float64   `json:"breaks"`
	Labels      []int       `json:"labels"`
}

func (o *writer) analyze(r *ckmeans.Result) error {
	if o.json {
		return o.encode(report{
			K:           r.K(),
			Groups:      r.Groups,
			Sizes:       r.Sizes,
			Centers:     r.Centers,
			Withinss:    r.Withinss,
			TotWithinss: r.TotWithinss,
			Totss:       r.Totss,
			Betweenss:   r.Betweenss,
			RawBreaks:   r.RawBreaks,
			RoundBreaks: r.RoundBreaks,
			Labels:      r.Labels,
		})
	}
	var sb strings.Builder
	for g := range r.K() {
		lo, hi := r.Groups[g][0], r.Groups[g][len(r.Groups[g])-1]
		fmt.Fprintf(&sb, "class %d: n=%d range=[%s, %s] center=%s withinss=%s\n",
			g, r.Sizes[g], format(lo), format(hi), format(r.Centers[g]), format(r.Withinss[g]))
	}
	fmt.Fprintf(&sb, "breaks: %s\n", join(r.RoundBreaks))
	fmt.Fprintf(&sb, "raw breaks: %s\n", join(r.RawBreaks))
	fmt.Fprintf(&sb, "withinss=%s betweenss=%s totss=%s\n",
		format(r.TotWithinss), format(r.Betweenss), format(r.Totss))
	_, err := io.WriteString(o.w, sb.String())
	return err
}

func (o *writer) encode(v any) error {
	return json.NewEncoder(o.w).Encode(v)
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func join(values []float64) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = format(v)
	}
	return strings.Join(s, " ")
}

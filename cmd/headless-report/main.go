package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/colorlink/internal/engine"
	"github.com/Garsondee/colorlink/internal/level"
)

// traceStep is the sampling distance used to replay straight strokes.
const traceStep = 10.0

type levelStats struct {
	level  int
	grid   int
	pairs  int
	layout string

	deterministic bool
	distinct      bool
	cataloged     bool

	// straight counts pairs that commit when joined by a straight drag,
	// attempted in emission order on a fresh board.
	straight int
	rejected map[string]int
}

func (ls levelStats) failed() bool {
	return !ls.deterministic || !ls.distinct || !ls.cataloged
}

type summary struct {
	levels     int
	failures   []int
	pairs      int
	straight   int
	maxGrid    int
	rejections map[string]int
}

func main() {
	var (
		from     int
		to       int
		viewport float64
		copyOut  bool
		logLevel string
	)
	flag.IntVar(&from, "from", 1, "first level to report")
	flag.IntVar(&to, "to", level.FinalLevel, "last level to report")
	flag.Float64Var(&viewport, "viewport", 720, "square viewport size used to replay strokes")
	flag.BoolVar(&copyOut, "copy", false, "copy the report to the clipboard")
	flag.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	log := logrus.New()
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid -log-level")
	}
	log.SetLevel(lvl)

	if err := validateRange(from, to, viewport); err != nil {
		log.WithError(err).Error("invalid flags")
		os.Exit(2)
	}

	catalog := level.NewCatalog()
	all := make([]levelStats, 0, to-from+1)
	for i := from; i <= to; i++ {
		ls, err := analyzeLevel(i, viewport, catalog, log)
		if err != nil {
			log.WithError(err).WithField("level", i).Error("analyze level")
			os.Exit(1)
		}
		all = append(all, ls)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== ColorLink Level Report ===\n")
	fmt.Fprintf(&b, "levels=%d..%d viewport=%.0f\n\n", from, to, viewport)
	for _, ls := range all {
		printLevel(&b, ls)
	}
	sum := summarize(all)
	printSummary(&b, sum)

	out := b.String()
	fmt.Print(out)

	if copyOut {
		if err := clipboard.WriteAll(out); err != nil {
			log.WithError(err).Warn("copy report to clipboard")
		} else {
			log.Info("report copied to clipboard")
		}
	}

	if len(sum.failures) > 0 {
		os.Exit(1)
	}
}

func validateRange(from, to int, viewport float64) error {
	switch {
	case from < 1 || to > level.FinalLevel:
		return fmt.Errorf("-from/-to must lie in 1..%d, got %d..%d", level.FinalLevel, from, to)
	case from > to:
		return fmt.Errorf("-from (%d) must not exceed -to (%d)", from, to)
	case viewport <= 0:
		return errors.New("-viewport must be > 0")
	}
	return nil
}

func analyzeLevel(idx int, viewport float64, catalog engine.Levels, log logrus.FieldLogger) (levelStats, error) {
	cfg, err := level.Generate(idx)
	if err != nil {
		return levelStats{}, err
	}
	again, err := level.Generate(idx)
	if err != nil {
		return levelStats{}, err
	}
	cached, err := catalog.Get(idx)
	if err != nil {
		return levelStats{}, err
	}

	ls := levelStats{
		level:         idx,
		grid:          cfg.GridSize,
		pairs:         len(cfg.Connections),
		layout:        cfg.Layout(),
		deterministic: cfg.Equal(again),
		distinct:      cfg.Distinct(),
		cataloged:     cfg.Equal(cached),
		rejected:      map[string]int{},
	}

	s := engine.New(
		engine.WithViewport(viewport, viewport),
		engine.WithLevels(catalog),
		engine.WithLogger(log),
	)
	snap, err := s.NewGame(idx)
	if err != nil {
		return levelStats{}, err
	}
	// Dots are laid out pairwise in emission order.
	for i := 0; i+1 < len(snap.Dots); i += 2 {
		a, b := snap.Dots[i].Pos(), snap.Dots[i+1].Pos()
		r := s.Drag(engine.Trace(traceStep, a, b)...)
		if r.Outcome == engine.OutcomeCommitted {
			ls.straight++
			continue
		}
		reason := r.Reason.String()
		if r.Outcome != engine.OutcomeRejected {
			reason = r.Outcome.String()
		}
		ls.rejected[reason]++
	}
	return ls, nil
}

func printLevel(w io.Writer, ls levelStats) {
	status := "ok"
	if ls.failed() {
		status = "FAIL"
	}
	fmt.Fprintf(w, "--- Level %d [%s] ---\n", ls.level, status)
	fmt.Fprintf(w, "grid=%d pairs=%d deterministic=%v distinct=%v cataloged=%v\n",
		ls.grid, ls.pairs, ls.deterministic, ls.distinct, ls.cataloged)
	fmt.Fprintf(w, "straight=%d/%d", ls.straight, ls.pairs)
	if len(ls.rejected) > 0 {
		fmt.Fprintf(w, " rejected=%s", joinCounts(ls.rejected))
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, ls.layout)
	fmt.Fprintln(w)
}

func summarize(all []levelStats) summary {
	sum := summary{levels: len(all), rejections: map[string]int{}}
	for _, ls := range all {
		if ls.failed() {
			sum.failures = append(sum.failures, ls.level)
		}
		sum.pairs += ls.pairs
		sum.straight += ls.straight
		if ls.grid > sum.maxGrid {
			sum.maxGrid = ls.grid
		}
		for k, v := range ls.rejected {
			sum.rejections[k] += v
		}
	}
	return sum
}

func printSummary(w io.Writer, sum summary) {
	fmt.Fprintf(w, "=== Summary ===\n")
	fmt.Fprintf(w, "levels=%d pairs=%d avg_pairs=%.2f max_grid=%d\n",
		sum.levels, sum.pairs, ratio(sum.pairs, sum.levels), sum.maxGrid)
	fmt.Fprintf(w, "straight=%d/%d (%.0f%%)\n", sum.straight, sum.pairs, 100*ratio(sum.straight, sum.pairs))
	if len(sum.rejections) > 0 {
		fmt.Fprintf(w, "rejections: %s\n", joinCounts(sum.rejections))
	}
	if len(sum.failures) == 0 {
		fmt.Fprintf(w, "checks: all passed\n")
		return
	}
	failed := make([]string, len(sum.failures))
	for i, l := range sum.failures {
		failed[i] = fmt.Sprint(l)
	}
	fmt.Fprintf(w, "checks: %d FAILED (levels %s)\n", len(sum.failures), strings.Join(failed, ","))
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// joinCounts formats a count map as "k=v" pairs sorted by key.
func joinCounts(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, " ")
}

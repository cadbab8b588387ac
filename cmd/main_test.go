package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/cardcore/domain/deck"
	"github.com/luca-patrignani/cardcore/domain/random"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runToString(t *testing.T, cfg Config) string {
	t.Helper()
	pterm.DisableStyling()
	var out bytes.Buffer
	if err := run(cfg, &out, quietLogger()); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	return out.String()
}

// withoutLedgerLine drops the final summary, whose hash depends on the clock.
func withoutLedgerLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return strings.Join(lines[:len(lines)-1], "\n")
}

func TestRunDealsEveryRound(t *testing.T) {
	out := runToString(t, Config{Seed: "42", Hands: 4, CardsPerHand: 13, Rounds: 2, Source: sourcePCG})
	for _, want := range []string{"Round 1 (seed 42)", "Round 2 (seed 43)", "no cards left", "2 deals recorded"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunIsReproducible(t *testing.T) {
	for _, source := range []string{sourcePCG, sourceXOF} {
		cfg := Config{Seed: "7", Hands: 3, CardsPerHand: 5, Rounds: 1, Source: source}
		a := withoutLedgerLine(runToString(t, cfg))
		b := withoutLedgerLine(runToString(t, cfg))
		if a != b {
			t.Fatalf("%s: same seed gave different deals:\n%s\n---\n%s", source, a, b)
		}
	}
}

func TestRunPrintsStats(t *testing.T) {
	out := runToString(t, Config{Seed: "1", Hands: 1, CardsPerHand: 2, Rounds: 1, Source: sourcePCG, Stats: true})
	if !strings.Contains(out, "clubs") || !strings.Contains(out, "13") {
		t.Fatalf("stats missing from output:\n%s", out)
	}
	if !strings.Contains(out, "50 cards left") {
		t.Fatalf("expected residual of 50 cards:\n%s", out)
	}
}

func TestDealRecordMatchesResult(t *testing.T) {
	cfg := Config{Hands: 2, CardsPerHand: 3, Source: sourcePCG}
	res, err := deck.Standard().ShuffleAndDeal(random.NewSource(5), 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	rec := dealRecord(cfg, 5, random.SeedSourceClient, res)
	if rec.Seed != 5 || rec.SeedSource != "client" || rec.Residual != 46 {
		t.Fatalf("unexpected record %+v", rec)
	}
	if len(rec.Hands) != 2 || len(rec.Hands[0]) != 3 {
		t.Fatalf("unexpected hands %v", rec.Hands)
	}
	if strings.Join(rec.Hands[1], " ") != strings.Join(res.Hands[1].Strings(), " ") {
		t.Fatalf("hand 2 mismatch: %v vs %v", rec.Hands[1], res.Hands[1])
	}
}

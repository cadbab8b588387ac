package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/cardcore/domain/deck"
	"github.com/luca-patrignani/cardcore/domain/eval"
	"github.com/luca-patrignani/cardcore/domain/random"
	"github.com/luca-patrignani/cardcore/ledger"
)

func main() {
	cfg, err := ParseConfig(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	if cfg.Verbose {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	// Create a new slog logger with the default PTerm logger as handler
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Card", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("core", pterm.FgDarkGray.ToStyle()),
	).Render()

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("dealing failed", "error", err)
		os.Exit(1)
	}
}

// run deals cfg.Rounds rounds from the standard deck, writing the tables to
// out and recording every deal in a ledger that is verified at the end.
func run(cfg Config, out io.Writer, logger *slog.Logger) error {
	requested, err := cfg.seed()
	if err != nil {
		return err
	}
	seed, seedSource, err := random.ResolveSeed(requested)
	if err != nil {
		return err
	}
	logger.Info("seed resolved", "seed", seed, "origin", string(seedSource), "source", cfg.Source)

	d := deck.Standard()
	if cfg.Stats {
		stats, err := renderStats(d)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, pterm.DefaultSection.Sprint("Deck"))
		fmt.Fprintln(out, stats)
	}

	chain := ledger.NewBlockchain()
	for round := range cfg.Rounds {
		roundSeed := seed + uint64(round)
		res, err := d.ShuffleAndDeal(cfg.newSource(roundSeed), cfg.Hands, cfg.CardsPerHand)
		if err != nil {
			return fmt.Errorf("round %d: %w", round+1, err)
		}

		var (
			results []eval.Result
			winners []int
		)
		if len(res.Hands) > 0 && (cfg.CardsPerHand == 5 || cfg.CardsPerHand == 7) {
			results, winners, err = eval.Showdown(res.Hands)
			if err != nil {
				return fmt.Errorf("round %d: %w", round+1, err)
			}
		}

		table, err := renderHands(res.Hands, results, winners)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, pterm.DefaultSection.Sprintf("Round %d (seed %d)", round+1, roundSeed))
		fmt.Fprintln(out, table)
		fmt.Fprintln(out, renderResidual(res.Residual))

		block, err := chain.Append(dealRecord(cfg, roundSeed, seedSource, res))
		if err != nil {
			return err
		}
		logger.Debug("deal recorded", "round", round+1, "block", block.Index, "hash", block.Hash)
		logger.Info("dealt", "round", round+1, "seed", roundSeed, "hands", len(res.Hands), "residual", res.Residual.Len())
	}

	if err := chain.Verify(); err != nil {
		return fmt.Errorf("deal ledger corrupted: %w", err)
	}
	fmt.Fprint(out, pterm.Success.Sprintfln("%d deals recorded, ledger head %s", chain.Len()-1, shortHash(chain.Latest().Hash)))
	return nil
}

func dealRecord(cfg Config, seed uint64, origin random.SeedSource, res deck.Result) ledger.Record {
	hands := make([][]string, len(res.Hands))
	for i, h := range res.Hands {
		hands[i] = h.Strings()
	}
	return ledger.Record{
		Kind:         ledger.KindDeal,
		Seed:         seed,
		SeedSource:   string(origin),
		Source:       cfg.Source,
		CardsPerHand: cfg.CardsPerHand,
		Hands:        hands,
		Residual:     res.Residual.Len(),
	}
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

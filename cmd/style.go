package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/cardcore/domain/cards"
	"github.com/luca-patrignani/cardcore/domain/deck"
	"github.com/luca-patrignani/cardcore/domain/eval"
)

func renderHands(hands []deck.Hand, results []eval.Result, winners []int) (string, error) {
	header := []string{"Hand", "Cards"}
	if results != nil {
		header = append(header, "Score", "Description")
	}
	data := pterm.TableData{header}
	for i, h := range hands {
		name := "#" + strconv.Itoa(i+1)
		if slices.Contains(winners, i) {
			name = pterm.LightGreen(name + " ★")
		}
		row := []string{name, prettyCards(h.Cards())}
		if results != nil {
			row = append(row, strconv.Itoa(int(results[i].Score)), results[i].Description)
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

func renderResidual(residual deck.Sequence) string {
	if residual.IsEmpty() {
		return pterm.Gray("no cards left")
	}
	return fmt.Sprintf("%d cards left: %s", residual.Len(), prettyCards(residual.Cards()))
}

func renderStats(d *deck.Deck) (string, error) {
	bySuit := d.CountsBySuit()
	suitData := pterm.TableData{{"Suit", "Cards"}}
	for _, s := range cards.AllSuits() {
		suitData = append(suitData, []string{s.Symbol() + " " + s.String(), strconv.Itoa(bySuit[s])})
	}
	suits, err := pterm.DefaultTable.WithHasHeader().WithData(suitData).Srender()
	if err != nil {
		return "", err
	}

	byRank := d.CountsByRank()
	rankHeader := []string{"Rank"}
	rankRow := []string{"Cards"}
	for _, r := range cards.AllRanks() {
		rankHeader = append(rankHeader, r.String())
		rankRow = append(rankRow, strconv.Itoa(byRank[r]))
	}
	ranks, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{rankHeader, rankRow}).Srender()
	if err != nil {
		return "", err
	}
	return suits + "\n\n" + ranks, nil
}

func prettyCards(cs []cards.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " ")
}

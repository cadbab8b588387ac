package ledger

import "slices"

// Block is one recorded deal in the chain.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Record    Record `json:"record"`
}

// Record describes a deal: how it was seeded and what came out of it.
type Record struct {
	Kind         string     `json:"kind"`
	Seed         uint64     `json:"seed"`
	SeedSource   string     `json:"seed_source"`
	Source       string     `json:"source"`
	CardsPerHand int        `json:"cards_per_hand"`
	Hands        [][]string `json:"hands"`
	Residual     int        `json:"residual"`
}

// clone copies the hands so callers never share them with a stored block.
func (r Record) clone() Record {
	if r.Hands != nil {
		hands := make([][]string, len(r.Hands))
		for i, h := range r.Hands {
			hands[i] = slices.Clone(h)
		}
		r.Hands = hands
	}
	return r
}

func (b Block) clone() Block {
	b.Record = b.Record.clone()
	return b
}

const (
	KindGenesis = "genesis"
	KindDeal    = "deal"
)

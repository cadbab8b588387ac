package ledger

import (
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	t := time.Unix(1_700_000_000, 0)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func sampleRecord(seed uint64) Record {
	return Record{
		Seed:         seed,
		SeedSource:   "client",
		Source:       "pcg",
		CardsPerHand: 2,
		Hands:        [][]string{{"A♠", "K♠"}, {"2♣", "7♦"}},
		Residual:     48,
	}
}

// TestNewBlockchainGenesis verifies that a new chain holds only a valid genesis block.
func TestNewBlockchainGenesis(t *testing.T) {
	bc := NewBlockchain()
	if bc.Len() != 1 {
		t.Fatalf("expected 1 block (genesis), got %d", bc.Len())
	}

	genesis := bc.Latest()
	if genesis.Index != 0 {
		t.Fatalf("genesis index should be 0, got %d", genesis.Index)
	}
	if genesis.PrevHash != "0" {
		t.Fatalf("genesis PrevHash should be '0', got %s", genesis.PrevHash)
	}
	if genesis.Record.Kind != KindGenesis {
		t.Fatalf("genesis record kind should be %q, got %q", KindGenesis, genesis.Record.Kind)
	}
	if genesis.Hash == "" {
		t.Fatal("genesis block should have a hash")
	}
	if err := bc.Verify(); err != nil {
		t.Fatalf("fresh chain should verify: %v", err)
	}
}

func TestAppendLinksBlocks(t *testing.T) {
	bc := newBlockchain(fixedClock())
	first, err := bc.Append(sampleRecord(1))
	if err != nil {
		t.Fatal(err)
	}
	second, err := bc.Append(sampleRecord(2))
	if err != nil {
		t.Fatal(err)
	}

	if first.Record.Kind != KindDeal {
		t.Fatalf("expected kind %q, got %q", KindDeal, first.Record.Kind)
	}
	if second.PrevHash != first.Hash {
		t.Fatalf("second block should link to first: %s != %s", second.PrevHash, first.Hash)
	}
	if second.Index != 2 {
		t.Fatalf("expected index 2, got %d", second.Index)
	}
	got, err := bc.ByIndex(1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Hash != first.Hash {
		t.Fatal("ByIndex returned the wrong block")
	}
	if _, err := bc.ByIndex(3); err == nil {
		t.Fatal("expected out of range error")
	}
	if err := bc.Verify(); err != nil {
		t.Fatalf("chain should verify: %v", err)
	}
}

func TestAppendRejectsGenesisRecord(t *testing.T) {
	bc := NewBlockchain()
	if _, err := bc.Append(Record{Kind: KindGenesis}); err == nil {
		t.Fatal("expected a second genesis record to be rejected")
	}
	if bc.Len() != 1 {
		t.Fatalf("rejected record must not be stored, len %d", bc.Len())
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	bc := newBlockchain(fixedClock())
	for seed := uint64(1); seed <= 3; seed++ {
		if _, err := bc.Append(sampleRecord(seed)); err != nil {
			t.Fatal(err)
		}
	}

	blocks := bc.Blocks()
	blocks[2].Record.Hands[0][0] = "2♥"
	if err := verify(blocks); err == nil {
		t.Fatal("expected tampered hand to fail verification")
	}

	blocks = bc.Blocks()
	blocks[1].Record = sampleRecord(99)
	if err := verify(blocks); err == nil {
		t.Fatal("expected replaced record to fail verification")
	}

	blocks = bc.Blocks()
	blocks[3].Index = 7
	if err := verify(blocks); err == nil {
		t.Fatal("expected index gap to fail verification")
	}
}

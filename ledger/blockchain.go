package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Blockchain is an append-only, hash-linked log of deal records. It is safe
// for concurrent use.
type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// NewBlockchain creates a new blockchain with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and an empty genesis record.
func NewBlockchain() *Blockchain {
	return newBlockchain(time.Now)
}

func newBlockchain(now func() time.Time) *Blockchain {
	bc := &Blockchain{
		blocks: make([]Block, 0, 1),
		now:    now,
	}

	genesis := Block{
		Index:     0,
		Timestamp: now().Unix(),
		PrevHash:  "0",
		Record:    Record{Kind: KindGenesis},
	}
	genesis.Hash = calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Append records a deal as a new block linked to the latest one. It returns
// the stored block, or an error if the record does not describe a deal.
func (bc *Blockchain) Append(rec Record) (Block, error) {
	if rec.Kind == "" {
		rec.Kind = KindDeal
	}
	if rec.Kind != KindDeal {
		return Block{}, fmt.Errorf("invalid record kind %q", rec.Kind)
	}

	bc.mu.Lock()
	defer bc.mu.Unlock()

	latest := bc.blocks[len(bc.blocks)-1]
	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: bc.now().Unix(),
		PrevHash:  latest.Hash,
		Record:    rec.clone(),
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}

	bc.blocks = append(bc.blocks, newBlock)
	return newBlock.clone(), nil
}

// Latest returns the most recently added block.
func (bc *Blockchain) Latest() Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.blocks[len(bc.blocks)-1].clone()
}

// ByIndex retrieves a block by its index in the chain. Returns an error if the index
// is out of range.
func (bc *Blockchain) ByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return bc.blocks[index].clone(), nil
}

// Len counts blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// Blocks returns a copy of the chain.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]Block, len(bc.blocks))
	for i, b := range bc.blocks {
		out[i] = b.clone()
	}
	return out
}

// Verify validates the integrity of the entire chain: the genesis block, then
// each block's index continuity, previous hash linkage and own hash.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return verify(bc.blocks)
}

func verify(blocks []Block) error {
	if len(blocks) == 0 {
		return fmt.Errorf("empty blockchain")
	}

	genesis := blocks[0]
	if genesis.PrevHash != "0" || genesis.Index != 0 || genesis.Record.Kind != KindGenesis {
		return fmt.Errorf("invalid genesis block")
	}
	if genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis hash")
	}

	for i := 1; i < len(blocks); i++ {
		if err := validateBlock(blocks[i], blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// validateBlock verifies that a block is valid relative to the previous block.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	return nil
}

// calculateHash computes the SHA256 hash of a block from its index, timestamp,
// previous hash and JSON-encoded record.
func calculateHash(block Block) string {
	// Record holds only plain values, so Marshal cannot fail.
	recordBytes, _ := json.Marshal(block.Record)

	data := fmt.Sprintf("%d|%d|%s|%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(recordBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// Package ledger keeps an append-only, hash-chained log of deals.
//
// # Core Components
//
// Blockchain: an in-memory list of blocks where each block carries the hash of
// the one before it.
//
// Block: one deal, with the seed that produced it and the hands dealt.
//
// # Security Properties
//
// The chain provides:
//   - Auditability: every deal is recorded with its seed, so it can be replayed
//   - Tamper detection: changing any recorded deal breaks the hash chain
//
// # Usage
//
// Create a chain with NewBlockchain, Append a Record after each deal, and call
// Verify at any time to check that the chain is intact. Nothing is written to
// disk; the chain lives as long as the process.
package ledger

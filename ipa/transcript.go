// Package ipa implements the Inner Product Argument polynomial commitment
// scheme over Banderwagon (spec.md §4.K), the commitment scheme Ethereum
// Verkle tries use: Pedersen vector commitments, a Fiat-Shamir transcript
// with the exact ASCII round labels below, the recursive-halving
// prover/verifier, and multiproof aggregation across many openings.
// Grounded on
// _examples/other_examples/035a1e10_wyf-ACCEPT-eth2030__pkg-verkle-ipa_proof.go.go
// (Transcript/IPAProofVerkle/VerifyIPAProofVerkle/MultipointProof), adapted
// from that file's scalar-as-commitment simplification to real compressed
// Banderwagon points (curve/banderwagon.Compress), and from its ad hoc
// per-call sha256.New() transcript to a hash chain: each append hashes the
// previous 32-byte state together with the label and data, and keeps the
// digest as the new state.
package ipa

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/ethpairing/curvekit/curve/banderwagon"
	"github.com/ethpairing/curvekit/field/frbw"
)

// Transcript holds a 32-byte SHA-256 chain state: each AppendX call
// replaces it with SHA-256(state || label || data), and Fiat-Shamir
// challenges are squeezed from it, deterministically binding a proof to
// its context.
type Transcript struct {
	state []byte
}

// NewTranscript starts a transcript labeled with the protocol domain tag
// ("ipa" for a single opening, "multiproof" for an aggregated one).
func NewTranscript(label string) *Transcript {
	h := sha256.Sum256([]byte(label))
	return &Transcript{state: h[:]}
}

func (t *Transcript) mix(label string, data []byte) {
	h := sha256.New()
	h.Write(t.state)
	h.Write([]byte(label))
	h.Write(data)
	t.state = h.Sum(nil)
}

// AppendPoint appends a compressed Banderwagon point under the given
// label ("C", "D", "L", "R").
func (t *Transcript) AppendPoint(label string, p banderwagon.Element) {
	c := banderwagon.Compress(p)
	t.mix(label, c[:])
}

// AppendScalar appends a field/frbw element under the given label
// ("input point", "output point", "w", "x", "r", ...).
func (t *Transcript) AppendScalar(label string, s frbw.Element) {
	b := s.ToBytesBE()
	t.mix(label, b[:])
}

// AppendUint64 appends a raw 8-byte big-endian integer under the given
// label.
func (t *Transcript) AppendUint64(label string, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	t.mix(label, buf[:])
}

// ChallengeScalar squeezes a non-zero field/frbw challenge from a copy of
// the current transcript state under the given label, then re-absorbs the
// reduced challenge itself (not the raw digest) under that same label, so
// subsequent challenges depend on the canonical field element actually
// handed to the caller rather than on unreduced hash output.
func (t *Transcript) ChallengeScalar(label string) frbw.Element {
	h := sha256.New()
	h.Write(t.state)
	h.Write([]byte(label))
	digest := h.Sum(nil)

	v := new(big.Int).SetBytes(digest)
	v.Mod(v, frbw.Modulus())
	if v.Sign() == 0 {
		v.SetInt64(1)
	}
	c := frbw.FromBigInt(v)

	t.AppendScalar(label, c)
	return c
}

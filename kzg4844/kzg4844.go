// Package kzg4844 implements the EIP-4844 blob transaction KZG API
// (spec.md §4.J): blob<->polynomial conversion, the Fiat-Shamir challenge
// used by the batch verifier, and the per-blob proof functions
// blob_to_kzg_commitment / compute_kzg_proof / compute_blob_kzg_proof /
// verify_kzg_proof / verify_blob_kzg_proof / verify_blob_kzg_proof_batch.
//
// Grounded on the teacher's crypto/kzg (kzg_bytes.go/kzg_new.go/util.go)
// and crypto/agg_kzg packages, generalized from its pre-final aggregate-
// proof draft API to the real, final EIP-4844 per-blob surface (the
// "aggregate proof over all blobs in a block" scheme the teacher
// implements was superseded before EIP-4844 shipped by one commitment and
// one proof per blob, which is what the per-blob functions below do).
// This also resolves one concrete divergence from the teacher: the
// teacher's core/types/data_blob.go computes a blob's versioned hash with
// Keccak256 (a pre-final-draft artifact); ComputeVersionedHash here uses
// SHA-256, matching the real EIP-4844 text and this module's estatus-
// based error contract (§6.2).
package kzg4844

import (
	"crypto/sha256"

	"github.com/holiman/uint256"

	"github.com/ethpairing/curvekit/curve/bls12381"
	"github.com/ethpairing/curvekit/estatus"
	"github.com/ethpairing/curvekit/field/fr"
	"github.com/ethpairing/curvekit/kzg"
	"github.com/ethpairing/curvekit/poly"
)

const (
	// FieldElementsPerBlob is the number of scalar field elements a blob
	// encodes, fixed by EIP-4844.
	FieldElementsPerBlob = 4096

	// BlobCommitmentVersionKZG is the version byte EIP-4844 stamps onto a
	// blob's versioned hash.
	BlobCommitmentVersionKZG = 0x01

	fiatShamirDomain    = "FSBLOBVERIFY_V1_"
	batchRandomnessDomain = "RCKZGBATCH___V1_"
)

type (
	Blob          [FieldElementsPerBlob * 32]byte
	Commitment    [48]byte
	Proof         [48]byte
	VersionedHash [32]byte
)

var domain = poly.NewFrDomain(FieldElementsPerBlob)

// ComputeVersionedHash computes the SHA-256-based versioned hash EIP-4844
// uses to bind a blob commitment into the execution-layer transaction.
func ComputeVersionedHash(c Commitment) VersionedHash {
	h := sha256.Sum256(c[:])
	h[0] = BlobCommitmentVersionKZG
	return VersionedHash(h)
}

// Big returns the versioned hash as a big-endian uint256, the
// representation JSON-RPC/storage-slot-facing code conventionally uses
// for a 32-byte hash value.
func (v VersionedHash) Big() *uint256.Int {
	return new(uint256.Int).SetBytes(v[:])
}

// blobToEvals decodes a blob into FieldElementsPerBlob scalar evaluations,
// rejecting any 32-byte chunk that is not a canonical field element
// encoding (the EIP-4844 "field element not canonical" failure mode).
func blobToEvals(b *Blob) ([]fr.Element, error) {
	evals := make([]fr.Element, FieldElementsPerBlob)
	for i := 0; i < FieldElementsPerBlob; i++ {
		var chunk [32]byte
		copy(chunk[:], b[i*32:(i+1)*32])
		e, ok := fr.FromBytesBE(chunk[:])
		if !ok {
			return nil, estatus.ErrScalarOutOfRange
		}
		evals[i] = e
	}
	return evals, nil
}

func srsFrom(ctx *Context) *kzg.SRS {
	return &kzg.SRS{Domain: domain, LagrangeG1: ctx.LagrangeG1, G2Gen: ctx.G2Gen, TauG2: ctx.TauG2}
}

// Context wraps the trusted-setup SRS this package's functions operate
// against (a 4096-width Lagrange-basis G1 SRS plus the G2 generator and
// tau*G2 needed for verification).
type Context struct {
	LagrangeG1 []bls12381.G1Affine
	G2Gen      bls12381.G2Affine
	TauG2      bls12381.G2Affine
}

// BlobToCommitment implements blob_to_kzg_commitment.
func BlobToCommitment(ctx *Context, b *Blob) (Commitment, error) {
	evals, err := blobToEvals(b)
	if err != nil {
		return Commitment{}, err
	}
	c, err := kzg.Commit(srsFrom(ctx), evals)
	if err != nil {
		return Commitment{}, err
	}
	return Commitment(bls12381.CompressG1(c)), nil
}

// ComputeKZGProof implements compute_kzg_proof: an opening proof at an
// arbitrary (caller-supplied) evaluation point z, returning the proof and
// the claimed evaluation y.
func ComputeKZGProof(ctx *Context, b *Blob, z [32]byte) (Proof, [32]byte, error) {
	evals, err := blobToEvals(b)
	if err != nil {
		return Proof{}, [32]byte{}, err
	}
	zElem, ok := fr.FromBytesBE(z[:])
	if !ok {
		return Proof{}, [32]byte{}, estatus.ErrScalarOutOfRange
	}
	proof, y, err := kzg.Prove(srsFrom(ctx), evals, zElem)
	if err != nil {
		return Proof{}, [32]byte{}, err
	}
	return Proof(bls12381.CompressG1(proof)), y.ToBytesBE(), nil
}

// fiatShamirChallenge implements EIP-4844's compute_challenge: it hashes
// the domain separator, the blob, the commitment, and the field/domain
// parameters, then reduces the digest modulo r.
func fiatShamirChallenge(b *Blob, c Commitment) fr.Element {
	h := sha256.New()
	h.Write([]byte(fiatShamirDomain))
	var countBytes [8]byte
	putUint64BE(countBytes[:], FieldElementsPerBlob)
	h.Write(countBytes[:])
	h.Write(b[:])
	h.Write(c[:])
	digest := h.Sum(nil)
	return fr.FromBytesModOrder(digest)
}

func putUint64BE(dst []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

// ComputeBlobKZGProof implements compute_blob_kzg_proof: the per-blob
// proof opened at the Fiat-Shamir challenge derived from the blob and its
// own commitment (rather than a caller-chosen point), which is what lets
// verify_blob_kzg_proof_batch below aggregate many blobs' checks safely.
func ComputeBlobKZGProof(ctx *Context, b *Blob, commitment Commitment) (Proof, error) {
	evals, err := blobToEvals(b)
	if err != nil {
		return Proof{}, err
	}
	z := fiatShamirChallenge(b, commitment)
	proof, _, err := kzg.Prove(srsFrom(ctx), evals, z)
	if err != nil {
		return Proof{}, err
	}
	return Proof(bls12381.CompressG1(proof)), nil
}

// VerifyKZGProof implements verify_kzg_proof: checks an opening proof at
// an arbitrary point against a commitment and claimed value.
func VerifyKZGProof(ctx *Context, commitment Commitment, z, y [32]byte, proof Proof) (bool, error) {
	c, err := bls12381.DecompressG1([48]byte(commitment))
	if err != nil {
		return false, err
	}
	p, err := bls12381.DecompressG1([48]byte(proof))
	if err != nil {
		return false, err
	}
	zElem, ok := fr.FromBytesBE(z[:])
	if !ok {
		return false, estatus.ErrScalarOutOfRange
	}
	yElem, ok := fr.FromBytesBE(y[:])
	if !ok {
		return false, estatus.ErrScalarOutOfRange
	}
	return kzg.Verify(srsFrom(ctx), c, zElem, yElem, p), nil
}

// VerifyBlobKZGProof implements verify_blob_kzg_proof: re-derives the
// Fiat-Shamir challenge from the blob and commitment, evaluates the blob
// there, and checks the proof.
func VerifyBlobKZGProof(ctx *Context, b *Blob, commitment Commitment, proof Proof) (bool, error) {
	evals, err := blobToEvals(b)
	if err != nil {
		return false, err
	}
	c, err := bls12381.DecompressG1([48]byte(commitment))
	if err != nil {
		return false, err
	}
	p, err := bls12381.DecompressG1([48]byte(proof))
	if err != nil {
		return false, err
	}
	z := fiatShamirChallenge(b, commitment)
	y := poly.BarycentricEval(domain, evals, z)
	return kzg.Verify(srsFrom(ctx), c, z, y, p), nil
}

// VerifyBlobKZGProofBatch implements verify_blob_kzg_proof_batch: checks
// many (blob, commitment, proof) triples with a single combined pairing
// check. The random linear-combination base r is randomBytes itself
// (reduced mod r) if the caller supplies a non-zero secure-random value,
// else a second Fiat-Shamir squeeze (domain tag "RCKZGBATCH___V1_") over
// the concatenated per-blob challenges, so the randomness cannot be
// chosen adversarially per EIP-4844's batch-verification security
// argument.
func VerifyBlobKZGProofBatch(ctx *Context, blobs []*Blob, commitments []Commitment, proofs []Proof, randomBytes [32]byte) (bool, error) {
	n := len(blobs)
	if len(commitments) != n || len(proofs) != n {
		return false, estatus.ErrInputsLengthMismatch
	}
	if n == 0 {
		return true, nil
	}

	cPoints := make([]bls12381.G1Affine, n)
	pPoints := make([]bls12381.G1Affine, n)
	zs := make([]fr.Element, n)
	ys := make([]fr.Element, n)

	for i := 0; i < n; i++ {
		c, err := bls12381.DecompressG1([48]byte(commitments[i]))
		if err != nil {
			return false, err
		}
		p, err := bls12381.DecompressG1([48]byte(proofs[i]))
		if err != nil {
			return false, err
		}
		cPoints[i], pPoints[i] = c, p

		evals, err := blobToEvals(blobs[i])
		if err != nil {
			return false, err
		}
		z := fiatShamirChallenge(blobs[i], commitments[i])
		zs[i] = z
		ys[i] = poly.BarycentricEval(domain, evals, z)
	}

	base := batchRandomBase(randomBytes, zs)
	randomness := make([]fr.Element, n)
	randomness[0] = fr.One()
	for i := 1; i < n; i++ {
		randomness[i] = fr.Mul(randomness[i-1], base)
	}

	return kzg.VerifyBatch(srsFrom(ctx), cPoints, zs, ys, pPoints, randomness), nil
}

// batchRandomBase picks the base r for the batch verifier's random linear
// combination: the caller's randomBytes, reduced mod r, if non-zero;
// otherwise SHA-256 of the batch domain tag followed by the concatenated
// per-blob Fiat-Shamir challenges, so an adversary who doesn't control the
// blobs can't steer the combination.
func batchRandomBase(randomBytes [32]byte, challenges []fr.Element) fr.Element {
	var zero [32]byte
	if randomBytes != zero {
		return fr.FromBytesModOrder(randomBytes[:])
	}

	h := sha256.New()
	h.Write([]byte(batchRandomnessDomain))
	for _, z := range challenges {
		b := z.ToBytesBE()
		h.Write(b[:])
	}
	return fr.FromBytesModOrder(h.Sum(nil))
}

package kzg4844

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/protolambda/ztyp/codec"
	"github.com/protolambda/ztyp/tree"
)

// SSZ encode/decode methods for Commitment, Proof, and Blob, grounded on
// the KZGCommitment/KZGProof/Blob SSZ methods in the teacher's
// core/types/data_blob.go, adapted from that file's pre-final blob-tx
// wrapper types to the three wire types this package's per-blob API
// actually returns.

func (c *Commitment) Deserialize(dr *codec.DecodingReader) error {
	if c == nil {
		return errors.New("cannot decode ssz into nil Commitment")
	}
	_, err := dr.Read(c[:])
	return err
}

func (c *Commitment) Serialize(w *codec.EncodingWriter) error {
	return w.Write(c[:])
}

func (Commitment) ByteLength() uint64 { return 48 }

func (Commitment) FixedLength() uint64 { return 48 }

func (c Commitment) HashTreeRoot(hFn tree.HashFn) tree.Root {
	var a, b tree.Root
	copy(a[:], c[0:32])
	copy(b[:], c[32:48])
	return hFn(a, b)
}

func (c Commitment) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(c[:])), nil
}

func (c Commitment) String() string {
	return "0x" + hex.EncodeToString(c[:])
}

func (p *Proof) Deserialize(dr *codec.DecodingReader) error {
	if p == nil {
		return errors.New("cannot decode ssz into nil Proof")
	}
	_, err := dr.Read(p[:])
	return err
}

func (p *Proof) Serialize(w *codec.EncodingWriter) error {
	return w.Write(p[:])
}

func (Proof) ByteLength() uint64 { return 48 }

func (Proof) FixedLength() uint64 { return 48 }

func (p Proof) HashTreeRoot(hFn tree.HashFn) tree.Root {
	var a, b tree.Root
	copy(a[:], p[0:32])
	copy(b[:], p[32:48])
	return hFn(a, b)
}

func (p Proof) String() string {
	return "0x" + hex.EncodeToString(p[:])
}

func (b *Blob) Deserialize(dr *codec.DecodingReader) error {
	if b == nil {
		return errors.New("cannot decode ssz into nil Blob")
	}
	for i := 0; i < FieldElementsPerBlob; i++ {
		if _, err := dr.Read(b[i*32 : (i+1)*32]); err != nil {
			return err
		}
	}
	return nil
}

func (b *Blob) Serialize(w *codec.EncodingWriter) error {
	for i := 0; i < FieldElementsPerBlob; i++ {
		if err := w.Write(b[i*32 : (i+1)*32]); err != nil {
			return err
		}
	}
	return nil
}

func (Blob) ByteLength() uint64 { return FieldElementsPerBlob * 32 }

func (Blob) FixedLength() uint64 { return FieldElementsPerBlob * 32 }

func (b *Blob) HashTreeRoot(hFn tree.HashFn) tree.Root {
	return hFn.ComplexVectorHTR(func(i uint64) tree.HTR {
		var r tree.Root
		copy(r[:], b[i*32:(i+1)*32])
		return &r
	}, FieldElementsPerBlob)
}

func (b *Blob) String() string {
	out := make([]byte, 2+FieldElementsPerBlob*32*2)
	copy(out[:2], "0x")
	hex.Encode(out[2:], b[:])
	return string(out)
}

func (b *Blob) UnmarshalText(text []byte) error {
	l := 2 + FieldElementsPerBlob*32*2
	if len(text) != l {
		return fmt.Errorf("expected %d characters but got %d", l, len(text))
	}
	if text[0] != '0' || text[1] != 'x' {
		return errors.New("expected '0x' prefix in blob string")
	}
	_, err := hex.Decode(b[:], text[2:])
	return err
}

// CommitmentList and ProofList are SSZ lists of commitments/proofs, the
// shape EIP-4844's networking layer bundles blob sidecars in (one
// commitment and one proof per blob, up to a per-block cap).
type (
	CommitmentList []Commitment
	ProofList      []Proof
)

// MaxBlobsPerBlock bounds the SSZ lists above. EIP-4844 launched with 6;
// this is a wire-format limit, not a cryptographic one, so callers
// targeting a different fork's cap should treat this as a default only.
const MaxBlobsPerBlock = 6

func (l *CommitmentList) Deserialize(dr *codec.DecodingReader) error {
	return dr.List(func() codec.Deserializable {
		i := len(*l)
		*l = append(*l, Commitment{})
		return &(*l)[i]
	}, 48, MaxBlobsPerBlock)
}

func (l CommitmentList) Serialize(w *codec.EncodingWriter) error {
	return w.List(func(i uint64) codec.Serializable {
		return &l[i]
	}, 48, uint64(len(l)))
}

func (l CommitmentList) ByteLength() uint64 { return uint64(len(l)) * 48 }

func (l *CommitmentList) FixedLength() uint64 { return 0 }

func (l CommitmentList) HashTreeRoot(hFn tree.HashFn) tree.Root {
	return hFn.ComplexListHTR(func(i uint64) tree.HTR {
		return &l[i]
	}, uint64(len(l)), MaxBlobsPerBlock)
}

func (l *ProofList) Deserialize(dr *codec.DecodingReader) error {
	return dr.List(func() codec.Deserializable {
		i := len(*l)
		*l = append(*l, Proof{})
		return &(*l)[i]
	}, 48, MaxBlobsPerBlock)
}

func (l ProofList) Serialize(w *codec.EncodingWriter) error {
	return w.List(func(i uint64) codec.Serializable {
		return &l[i]
	}, 48, uint64(len(l)))
}

func (l ProofList) ByteLength() uint64 { return uint64(len(l)) * 48 }

func (l *ProofList) FixedLength() uint64 { return 0 }

func (l ProofList) HashTreeRoot(hFn tree.HashFn) tree.Root {
	return hFn.ComplexListHTR(func(i uint64) tree.HTR {
		return &l[i]
	}, uint64(len(l)), MaxBlobsPerBlock)
}

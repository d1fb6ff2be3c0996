package kzg4844

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/protolambda/ztyp/codec"
	"github.com/protolambda/ztyp/tree"
)

func sampleCommitment(seed byte) Commitment {
	var c Commitment
	for i := range c {
		c[i] = seed + byte(i)
	}
	return c
}

func sampleProof(seed byte) Proof {
	var p Proof
	for i := range p {
		p[i] = seed + byte(i)
	}
	return p
}

func TestCommitmentSSZRoundTrip(t *testing.T) {
	c := sampleCommitment(1)
	var buf bytes.Buffer
	require.NoError(t, c.Serialize(codec.NewEncodingWriter(&buf)))
	require.EqualValues(t, c.ByteLength(), buf.Len())

	var got Commitment
	dr := codec.NewDecodingReader(&buf, uint64(buf.Len()))
	require.NoError(t, got.Deserialize(dr))
	require.Equal(t, c, got)
}

func TestCommitmentHashTreeRootDeterministic(t *testing.T) {
	c := sampleCommitment(5)
	hFn := tree.GetHashFn()
	require.Equal(t, c.HashTreeRoot(hFn), c.HashTreeRoot(hFn))

	other := sampleCommitment(9)
	require.NotEqual(t, c.HashTreeRoot(hFn), other.HashTreeRoot(hFn))
}

func TestCommitmentStringAndMarshalText(t *testing.T) {
	c := sampleCommitment(2)
	text, err := c.MarshalText()
	require.NoError(t, err)
	require.Equal(t, c.String(), string(text))
	require.Equal(t, "0x", string(text[:2]))
}

func TestProofSSZRoundTrip(t *testing.T) {
	p := sampleProof(3)
	var buf bytes.Buffer
	require.NoError(t, p.Serialize(codec.NewEncodingWriter(&buf)))

	var got Proof
	dr := codec.NewDecodingReader(&buf, uint64(buf.Len()))
	require.NoError(t, got.Deserialize(dr))
	require.Equal(t, p, got)
}

func TestBlobSSZRoundTrip(t *testing.T) {
	blob := sampleBlob(11)
	var buf bytes.Buffer
	require.NoError(t, blob.Serialize(codec.NewEncodingWriter(&buf)))
	require.EqualValues(t, blob.ByteLength(), buf.Len())

	var got Blob
	dr := codec.NewDecodingReader(&buf, uint64(buf.Len()))
	require.NoError(t, got.Deserialize(dr))
	require.Equal(t, *blob, got)
}

func TestBlobStringUnmarshalTextRoundTrip(t *testing.T) {
	blob := sampleBlob(4)
	text := blob.String()

	var got Blob
	require.NoError(t, got.UnmarshalText([]byte(text)))
	require.Equal(t, *blob, got)
}

func TestBlobUnmarshalTextRejectsWrongLength(t *testing.T) {
	var got Blob
	require.Error(t, got.UnmarshalText([]byte("0x1234")))
}

func TestCommitmentListSSZRoundTrip(t *testing.T) {
	list := CommitmentList{sampleCommitment(1), sampleCommitment(2), sampleCommitment(3)}
	var buf bytes.Buffer
	require.NoError(t, list.Serialize(codec.NewEncodingWriter(&buf)))
	require.EqualValues(t, list.ByteLength(), buf.Len())

	var got CommitmentList
	dr := codec.NewDecodingReader(&buf, uint64(buf.Len()))
	require.NoError(t, got.Deserialize(dr))
	require.Equal(t, list, got)
}

func TestProofListSSZRoundTrip(t *testing.T) {
	list := ProofList{sampleProof(1), sampleProof(2)}
	var buf bytes.Buffer
	require.NoError(t, list.Serialize(codec.NewEncodingWriter(&buf)))

	var got ProofList
	dr := codec.NewDecodingReader(&buf, uint64(buf.Len()))
	require.NoError(t, got.Deserialize(dr))
	require.Equal(t, list, got)
}

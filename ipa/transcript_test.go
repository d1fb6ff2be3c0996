package ipa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethpairing/curvekit/curve/banderwagon"
	"github.com/ethpairing/curvekit/field/frbw"
)

func TestTranscriptChallengeIsDeterministic(t *testing.T) {
	build := func() frbw.Element {
		tr := NewTranscript("test")
		tr.AppendPoint("C", banderwagon.Generator())
		tr.AppendScalar("z", frbw.FromUint64(7))
		return tr.ChallengeScalar("x")
	}
	require.True(t, frbw.Equal(build(), build()))
}

func TestTranscriptChallengeDependsOnAppendedData(t *testing.T) {
	tr1 := NewTranscript("test")
	tr1.AppendScalar("z", frbw.FromUint64(1))
	c1 := tr1.ChallengeScalar("x")

	tr2 := NewTranscript("test")
	tr2.AppendScalar("z", frbw.FromUint64(2))
	c2 := tr2.ChallengeScalar("x")

	require.False(t, frbw.Equal(c1, c2))
}

func TestTranscriptChallengeDependsOnLabel(t *testing.T) {
	c1 := NewTranscript("test").ChallengeScalar("a")
	c2 := NewTranscript("test").ChallengeScalar("b")
	require.False(t, frbw.Equal(c1, c2))
}

func TestTranscriptSuccessiveChallengesDiffer(t *testing.T) {
	tr := NewTranscript("test")
	c1 := tr.ChallengeScalar("x")
	c2 := tr.ChallengeScalar("x")
	require.False(t, frbw.Equal(c1, c2))
}

func TestTranscriptChallengeScalarNeverZero(t *testing.T) {
	tr := NewTranscript("zero-check")
	for i := 0; i < 20; i++ {
		c := tr.ChallengeScalar("round")
		require.False(t, frbw.IsZero(c))
	}
}

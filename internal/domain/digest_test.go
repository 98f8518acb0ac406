package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/hearth/internal/domain"
)

func TestDigestBytes_SameContentSameDigest(t *testing.T) {
	a := domain.DigestBytes([]byte("quarterly report"))
	b := domain.DigestBytes([]byte("quarterly report"))

	require.Equal(t, a, b)
	require.Len(t, a, 64)
}

func TestDigestBytes_DifferentContentDifferentDigest(t *testing.T) {
	a := domain.DigestBytes([]byte("quarterly report"))
	b := domain.DigestBytes([]byte("quarterly report "))

	require.NotEqual(t, a, b)
}

func TestDigestText_MatchesByteDigest(t *testing.T) {
	require.Equal(t, domain.DigestBytes([]byte("hello")), domain.DigestText("hello"))
}

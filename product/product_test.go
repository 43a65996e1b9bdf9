package product_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/homcount/product"
)

// ProductSuite exercises iteration order, seeking and partitioning.
type ProductSuite struct {
	suite.Suite
}

// drain copies every remaining tuple out of p.
func drain(p *product.Product) [][]int {
	var out [][]int
	for t, ok := p.Next(); ok; t, ok = p.Next() {
		c := make([]int, len(t))
		copy(c, t)
		out = append(out, c)
	}
	return out
}

// TestLexicographicOrder checks the order for a 2×3 space.
func (s *ProductSuite) TestLexicographicOrder() {
	p, err := product.New(2, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), uint64(9), p.Len())

	want := [][]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	require.Equal(s.T(), want, drain(p))

	_, ok := p.Next()
	require.False(s.T(), ok, "exhausted iterator must stay exhausted")
}

// TestDegenerateSpaces covers n=0 and m=0.
func (s *ProductSuite) TestDegenerateSpaces() {
	p, err := product.New(0, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), uint64(1), p.Len())
	require.Equal(s.T(), [][]int{{}}, drain(p))

	p, err = product.New(0, 7)
	require.NoError(s.T(), err)
	require.Len(s.T(), drain(p), 1)

	p, err = product.New(3, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), uint64(0), p.Len())
	require.Empty(s.T(), drain(p))
	require.Nil(s.T(), p.Split(4))
}

// TestErrors covers argument validation.
func (s *ProductSuite) TestErrors() {
	_, err := product.New(-1, 2)
	require.ErrorIs(s.T(), err, product.ErrNegativeArity)

	_, err = product.New(64, 2)
	require.ErrorIs(s.T(), err, product.ErrSpaceTooLarge)

	p, err := product.New(2, 2)
	require.NoError(s.T(), err)
	require.ErrorIs(s.T(), p.Seek(5), product.ErrRankOutOfRange)
	_, err = p.Range(3, 2)
	require.ErrorIs(s.T(), err, product.ErrRankOutOfRange)
	_, err = p.Range(0, 5)
	require.ErrorIs(s.T(), err, product.ErrRankOutOfRange)
}

// TestSeekAndReset checks that seeking lands on the tuple with that rank.
func (s *ProductSuite) TestSeekAndReset() {
	p, err := product.New(3, 4)
	require.NoError(s.T(), err)

	require.NoError(s.T(), p.Seek(27)) // 27 = 1·16 + 2·4 + 3
	t, ok := p.Next()
	require.True(s.T(), ok)
	require.Equal(s.T(), []int{1, 2, 3}, t)
	require.Equal(s.T(), uint64(28), p.Rank())

	t, ok = p.Next()
	require.True(s.T(), ok)
	require.Equal(s.T(), []int{1, 3, 0}, t)

	p.Reset()
	require.Equal(s.T(), uint64(0), p.Rank())
	require.Len(s.T(), drain(p), 64)

	require.NoError(s.T(), p.Seek(64))
	_, ok = p.Next()
	require.False(s.T(), ok)
}

// TestSplitCoversSpace verifies that ranges from Split concatenate to the full order.
func (s *ProductSuite) TestSplitCoversSpace() {
	full, err := product.New(3, 3)
	require.NoError(s.T(), err)
	want := drain(full)

	for _, k := range []int{0, 1, 2, 4, 5, 27, 100} {
		parts := full.Split(k)
		require.NotEmpty(s.T(), parts)
		require.Equal(s.T(), uint64(0), parts[0].Lo)
		require.Equal(s.T(), full.Len(), parts[len(parts)-1].Hi)

		var got [][]int
		for i, b := range parts {
			require.NotZero(s.T(), b.Len(), "k=%d part %d empty", k, i)
			if i > 0 {
				require.Equal(s.T(), parts[i-1].Hi, b.Lo)
			}
			r, err := full.Range(b.Lo, b.Hi)
			require.NoError(s.T(), err)
			got = append(got, drain(r)...)
		}
		require.Equal(s.T(), want, got, "k=%d", k)
	}
}

func TestProductSuite(t *testing.T) {
	suite.Run(t, new(ProductSuite))
}

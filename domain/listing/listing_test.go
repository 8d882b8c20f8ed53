package listing

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextBuyoutPrice(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		name  string
		price string
		bps   int64
		want  string
	}{
		{
			name:  "ten percent",
			price: "1000",
			bps:   1000,
			want:  "1100",
		},
		{
			name:  "truncates toward zero",
			price: "999",
			bps:   1000,
			want:  "1098",
		},
		{
			name:  "increment smaller than one wei rounds to zero",
			price: "9",
			bps:   1000,
			want:  "9",
		},
		{
			name:  "zero bps keeps price",
			price: "1000000000000000000",
			bps:   0,
			want:  "1000000000000000000",
		},
		{
			name:  "full basis point range doubles",
			price: "12345",
			bps:   10000,
			want:  "24690",
		},
		{
			name:  "eighteen decimals",
			price: "1000000000000000000",
			bps:   1000,
			want:  "1100000000000000000",
		},
	}

	for _, c := range cases {
		p, ok := new(big.Int).SetString(c.price, 10)
		req.True(ok, c.name)
		req.Equal(c.want, NextBuyoutPrice(p, c.bps).String(), c.name)
	}
}

func TestNextBuyoutPriceCompounds(t *testing.T) {
	req := require.New(t)

	// each flip truncates independently, so three flips of 0.001 ether at
	// 10% do not equal one flip of 33.1%
	price := big.NewInt(1000000000000000) // 0.001 ether in wei
	for i := 0; i < 3; i++ {
		price = NextBuyoutPrice(price, 1000)
	}
	req.Equal("1331000000000000", price.String())

	odd := big.NewInt(101)
	odd = NextBuyoutPrice(odd, 1000) // 101 + 10 = 111
	odd = NextBuyoutPrice(odd, 1000) // 111 + 11 = 122
	req.Equal("122", odd.String())
}

func TestBuyoutPrice(t *testing.T) {
	req := require.New(t)

	l := &Listing{BuyoutPricePerToken: "125000"}
	p, err := l.BuyoutPrice()
	req.NoError(err)
	req.Equal(int64(125000), p.Int64())

	l = &Listing{BuyoutPricePerToken: "not-a-number"}
	_, err = l.BuyoutPrice()
	req.Error(err)
}

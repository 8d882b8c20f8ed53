package merkle

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	"github.com/nftreasury/goapi/domain"
)

func TestVerifyTwoLeafTree(t *testing.T) {
	req := require.New(t)

	alice := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	bob := domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")

	leafAlice := Leaf(alice, big.NewInt(2))
	leafBob := Leaf(bob, big.NewInt(5))
	root := hexutil.Encode(hashPair(leafAlice, leafBob))

	ok, err := Verify(root, leafAlice, []string{hexutil.Encode(leafBob)})
	req.NoError(err)
	req.True(ok)

	ok, err = Verify(root, leafBob, []string{hexutil.Encode(leafAlice)})
	req.NoError(err)
	req.True(ok)

	// wrong limit produces a different leaf
	badLeaf := Leaf(alice, big.NewInt(3))
	ok, err = Verify(root, badLeaf, []string{hexutil.Encode(leafBob)})
	req.NoError(err)
	req.False(ok)

	// wrong sibling
	ok, err = Verify(root, leafAlice, []string{hexutil.Encode(leafAlice)})
	req.NoError(err)
	req.False(ok)
}

func TestVerifyFourLeafTree(t *testing.T) {
	req := require.New(t)

	addrs := []domain.Address{
		"0x0000000000000000000000000000000000000001",
		"0x0000000000000000000000000000000000000002",
		"0x0000000000000000000000000000000000000003",
		"0x0000000000000000000000000000000000000004",
	}
	leaves := make([][]byte, len(addrs))
	for i, a := range addrs {
		leaves[i] = Leaf(a, big.NewInt(1))
	}
	left := hashPair(leaves[0], leaves[1])
	right := hashPair(leaves[2], leaves[3])
	root := hexutil.Encode(hashPair(left, right))

	ok, err := Verify(root, leaves[2], []string{
		hexutil.Encode(leaves[3]),
		hexutil.Encode(left),
	})
	req.NoError(err)
	req.True(ok)
}

func TestVerifyLeafIsOwnRoot(t *testing.T) {
	req := require.New(t)

	leaf := Leaf("0x0000000000000000000000000000000000000005", big.NewInt(1))
	ok, err := Verify(hexutil.Encode(leaf), leaf, nil)
	req.NoError(err)
	req.True(ok)
}

func TestVerifyBadHex(t *testing.T) {
	req := require.New(t)

	leaf := Leaf("0x0000000000000000000000000000000000000006", big.NewInt(1))
	_, err := Verify("not-hex", leaf, nil)
	req.Error(err)

	_, err = Verify(hexutil.Encode(leaf), leaf, []string{"zzz"})
	req.Error(err)
}

package merkle

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/nftreasury/goapi/domain"
)

// Leaf encodes an allow list entry the same way the drop contracts do:
// keccak256(abi.encodePacked(claimer, limit)).
func Leaf(claimer domain.Address, limit *big.Int) []byte {
	addr := common.HexToAddress(claimer.ToLowerStr())
	return crypto.Keccak256(addr.Bytes(), math.U256Bytes(new(big.Int).Set(limit)))
}

// Verify walks the proof path with sorted pair hashing and compares the
// resulting node against root. Both root and proof entries are hex strings.
func Verify(root string, leaf []byte, proof []string) (bool, error) {
	node := leaf
	for _, p := range proof {
		sibling, err := hexutil.Decode(p)
		if err != nil {
			return false, err
		}
		node = hashPair(node, sibling)
	}
	rootBytes, err := hexutil.Decode(root)
	if err != nil {
		return false, err
	}
	return bytes.Equal(node, rootBytes), nil
}

func hashPair(a, b []byte) []byte {
	if bytes.Compare(a, b) <= 0 {
		return crypto.Keccak256(a, b)
	}
	return crypto.Keccak256(b, a)
}

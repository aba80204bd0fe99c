package types

import (
	"testing"

	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	_ "github.com/33cn/chain33/system"
	"github.com/33cn/chain33/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genKey(t *testing.T) crypto.PrivKey {
	c, err := crypto.New(types.GetSignName("", types.SECP256K1))
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	return priv
}

func TestCheckCommitment(t *testing.T) {
	seed := []byte("seed")
	commitment := SeedHash(seed)
	assert.Len(t, commitment, CommitmentLen)
	assert.True(t, CheckCommitment(seed, commitment))
	assert.False(t, CheckCommitment([]byte("other"), commitment))
	assert.False(t, CheckCommitment(seed, commitment[:16]))
	assert.False(t, CheckCommitment(seed, nil))
}

func TestRoundHash(t *testing.T) {
	m := &RoundMessage{
		ExecAddr:  "execaddr",
		Title:     "chain33",
		SessionId: 7,
		RoundId:   3,
		Balance:   100,
	}
	h1 := RoundHash(m)
	assert.Len(t, h1, 32)
	m2 := *m
	m2.Balance = 101
	assert.NotEqual(t, h1, RoundHash(&m2))
	m3 := *m
	m3.Title = "other-chain"
	assert.NotEqual(t, h1, RoundHash(&m3))
}

func TestSignVerify(t *testing.T) {
	priv := genKey(t)
	addr := address.PubKeyToAddress(priv.PubKey().Bytes()).String()

	hash := OpenAuthHash(&OpenAuthMessage{
		ExecAddr:      "execaddr",
		Title:         "chain33",
		UserAddr:      "useraddr",
		PrevSessionId: 0,
		CreateBefore:  100000,
	})
	pack := SignHash(hash, types.SECP256K1, priv)
	assert.NoError(t, VerifySignaturePack(hash, pack, addr))

	// 签名者地址不符
	other := genKey(t)
	otherAddr := address.PubKeyToAddress(other.PubKey().Bytes()).String()
	assert.Equal(t, ErrInvalidSignature, VerifySignaturePack(hash, pack, otherAddr))

	// 摘要被篡改
	badHash := append([]byte{}, hash...)
	badHash[0] ^= 0xff
	assert.Equal(t, ErrInvalidSignature, VerifySignaturePack(badHash, pack, addr))

	assert.Equal(t, ErrInvalidSignature, VerifySignaturePack(hash, nil, addr))
	assert.Equal(t, ErrInvalidSignature, VerifySignaturePack(hash, &SignaturePack{Ty: types.SECP256K1}, addr))
}

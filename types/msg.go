package types

import (
	"bytes"

	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	"github.com/33cn/chain33/types"
)

// CommitmentLen 承诺哈希长度
const CommitmentLen = 32

// RoundHash 回合消息的签名摘要, 规范化protobuf编码后取sha256
func RoundHash(m *RoundMessage) []byte {
	return common.Sha256(types.Encode(m))
}

// OpenAuthHash 开通道授权消息的签名摘要
func OpenAuthHash(m *OpenAuthMessage) []byte {
	return common.Sha256(types.Encode(m))
}

// SeedHash 种子的承诺哈希
func SeedHash(seed []byte) []byte {
	return common.Sha256(seed)
}

// CheckCommitment 校验种子与承诺是否匹配
func CheckCommitment(seed, commitment []byte) bool {
	if len(commitment) != CommitmentLen {
		return false
	}
	return bytes.Equal(common.Sha256(seed), commitment)
}

// SignHash 用私钥对摘要签名, 返回可上链的签名数据
func SignHash(hash []byte, signTy int32, priv crypto.PrivKey) *SignaturePack {
	sig := priv.Sign(hash)
	return &SignaturePack{
		Ty:        signTy,
		Pubkey:    priv.PubKey().Bytes(),
		Signature: sig.Bytes(),
	}
}

// VerifySignaturePack 校验签名并核对签名者地址
func VerifySignaturePack(hash []byte, pack *SignaturePack, expectAddr string) error {
	if pack == nil || len(pack.Pubkey) == 0 || len(pack.Signature) == 0 {
		return ErrInvalidSignature
	}
	c, err := crypto.New(types.GetSignName("", int(pack.Ty)))
	if err != nil {
		return ErrInvalidSignature
	}
	pub, err := c.PubKeyFromBytes(pack.Pubkey)
	if err != nil {
		return ErrInvalidSignature
	}
	sig, err := c.SignatureFromBytes(pack.Signature)
	if err != nil {
		return ErrInvalidSignature
	}
	if !pub.VerifyBytes(hash, sig) {
		return ErrInvalidSignature
	}
	if address.PubKeyToAddress(pack.Pubkey).String() != expectAddr {
		return ErrInvalidSignature
	}
	return nil
}

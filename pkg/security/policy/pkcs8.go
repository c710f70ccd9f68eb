package policy

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/asn1"
	"errors"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

// Minimal ASN.1 structures for PKCS#8 EncryptedPrivateKeyInfo (RFC
// 5958) encrypted with PBES2 (RFC 8018), the only encrypted-PKCS#8
// shape this package supports: PBKDF2 key derivation followed by
// AES-CBC encryption, the combination every common OpenSSL-produced
// encrypted private key uses.

type encryptedPrivateKeyInfo struct {
	Algo      pkcs8AlgorithmIdentifier
	Encrypted []byte
}

type pkcs8AlgorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.RawValue
}

type pbes2Params struct {
	KeyDerivationFunc pkcs8AlgorithmIdentifier
	EncryptionScheme  pkcs8AlgorithmIdentifier
}

type pbkdf2Params struct {
	Salt           []byte
	IterationCount int
	KeyLength      int `asn1:"optional"`
	PRF            pkcs8AlgorithmIdentifier `asn1:"optional"`
}

var (
	oidPBES2  = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 13}
	oidPBKDF2 = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 12}
	oidHMACSHA1   = asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 7}
	oidHMACSHA256 = asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 9}
	oidAES128CBC = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 1, 2}
	oidAES192CBC = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 1, 22}
	oidAES256CBC = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 1, 42}
)

// decryptPKCS8 decrypts a PKCS#8 EncryptedPrivateKeyInfo DER blob using
// password, returning the inner PKCS#8 (or PKCS#1) private key DER.
func decryptPKCS8(der, password []byte) ([]byte, error) {
	var info encryptedPrivateKeyInfo
	if _, err := asn1.Unmarshal(der, &info); err != nil {
		return nil, err
	}
	if !info.Algo.Algorithm.Equal(oidPBES2) {
		return nil, errors.New("policy: unsupported encrypted PKCS#8 scheme (only PBES2 is supported)")
	}

	var params pbes2Params
	if _, err := asn1.Unmarshal(info.Algo.Parameters.FullBytes, &params); err != nil {
		return nil, err
	}
	if !params.KeyDerivationFunc.Algorithm.Equal(oidPBKDF2) {
		return nil, errors.New("policy: unsupported key derivation function (only PBKDF2 is supported)")
	}

	var kdfParams pbkdf2Params
	if _, err := asn1.Unmarshal(params.KeyDerivationFunc.Parameters.FullBytes, &kdfParams); err != nil {
		return nil, err
	}

	newHash := hmacHashFor(kdfParams.PRF.Algorithm)

	keyLen, blockCipher, err := cipherParamsFor(params.EncryptionScheme.Algorithm)
	if err != nil {
		return nil, err
	}

	var iv []byte
	if _, err := asn1.Unmarshal(params.EncryptionScheme.Parameters.FullBytes, &iv); err != nil {
		return nil, err
	}

	key := pbkdf2.Key(password, kdfParams.Salt, kdfParams.IterationCount, keyLen, newHash)

	block, err := blockCipher(key)
	if err != nil {
		return nil, err
	}
	if len(info.Encrypted)%block.BlockSize() != 0 {
		return nil, ErrCiphertextNotBlockAligned
	}

	plain := make([]byte, len(info.Encrypted))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, info.Encrypted)
	return pkcs7Unpad(plain, block.BlockSize())
}

func hmacHashFor(oid asn1.ObjectIdentifier) func() hash.Hash {
	if oid.Equal(oidHMACSHA256) {
		return sha256.New
	}
	if len(oid) == 0 || oid.Equal(oidHMACSHA1) {
		return sha1.New
	}
	return sha1.New
}

func cipherParamsFor(oid asn1.ObjectIdentifier) (keyLen int, newCipher func([]byte) (cipher.Block, error), err error) {
	switch {
	case oid.Equal(oidAES128CBC):
		return 16, aes.NewCipher, nil
	case oid.Equal(oidAES192CBC):
		return 24, aes.NewCipher, nil
	case oid.Equal(oidAES256CBC):
		return 32, aes.NewCipher, nil
	default:
		return 0, nil, errors.New("policy: unsupported encryption scheme for encrypted PKCS#8")
	}
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("policy: invalid PKCS#7 padding")
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, errors.New("policy: invalid PKCS#7 padding")
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errors.New("policy: invalid PKCS#7 padding")
		}
	}
	return data[:len(data)-padLen], nil
}

package policy

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"hash"
)

// hmacSign computes an HMAC of message using key and the given hash
// constructor, truncated to sigLen bytes.
func hmacSign(newHash func() hash.Hash, message, key []byte, sigLen int) ([]byte, error) {
	mac := hmac.New(newHash, key)
	mac.Write(message)
	sum := mac.Sum(nil)
	if sigLen > len(sum) {
		sigLen = len(sum)
	}
	return sum[:sigLen], nil
}

// hmacVerify recomputes the HMAC over message and compares it against mac
// in constant time, returning BadSecurityChecksFailed on mismatch.
func hmacVerify(newHash func() hash.Hash, message, key, mac []byte) error {
	expected, err := hmacSign(newHash, message, key, len(mac))
	if err != nil {
		return err
	}
	if !hmac.Equal(expected, mac) {
		return securityChecksFailed("symmetric signature mismatch")
	}
	return nil
}

func hmacSHA1Sign(message, key []byte) ([]byte, error) { return hmacSign(sha1.New, message, key, 20) }
func hmacSHA1Verify(message, key, mac []byte) error    { return hmacVerify(sha1.New, message, key, mac) }

func hmacSHA256Sign(message, key []byte) ([]byte, error) {
	return hmacSign(sha256.New, message, key, 32)
}
func hmacSHA256Verify(message, key, mac []byte) error {
	return hmacVerify(sha256.New, message, key, mac)
}

// cbcEncrypt AES-CBC encrypts data (which must be a multiple of the AES
// block size) with key and iv.
func cbcEncrypt(data, key, iv []byte) ([]byte, error) {
	if len(data)%aes.BlockSize != 0 {
		return nil, ErrCiphertextNotBlockAligned
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, data)
	return out, nil
}

// cbcDecrypt AES-CBC decrypts data (which must be a multiple of the AES
// block size) with key and iv.
func cbcDecrypt(data, key, iv []byte) ([]byte, error) {
	if len(data)%aes.BlockSize != 0 {
		return nil, ErrCiphertextNotBlockAligned
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	return out, nil
}

package policy

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
)

// asymEncryptChunked splits plaintext into (keySize - padding)-sized
// chunks, encrypting each into one keySize-sized ciphertext block and
// concatenating the results, per the chunked-RSA scheme every policy in
// this catalogue uses for messages longer than one block.
func asymEncryptChunked(plaintext []byte, remoteCert *x509.Certificate, padding int, encryptOne func(chunk []byte, pub *rsa.PublicKey) ([]byte, error)) ([]byte, error) {
	pub, ok := remoteCert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, ErrInvalidKeyType
	}
	keySize := pub.Size()
	chunkSize := keySize - padding
	if chunkSize <= 0 {
		return nil, ErrInvalidKeyType
	}

	var out []byte
	for off := 0; off < len(plaintext); off += chunkSize {
		end := off + chunkSize
		if end > len(plaintext) {
			end = len(plaintext)
		}
		block, err := encryptOne(plaintext[off:end], pub)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
	return out, nil
}

// asymDecryptChunked reverses asymEncryptChunked: the ciphertext is a
// concatenation of keySize-sized blocks, each decrypting to at most
// chunkSize plaintext bytes. Blocks are processed from the end backwards
// so an in-place aliased buffer never has its not-yet-processed tail
// overwritten by a shorter plaintext block written earlier.
func asymDecryptChunked(ciphertext []byte, localKey *rsa.PrivateKey, decryptOne func(block []byte, key *rsa.PrivateKey) ([]byte, error)) ([]byte, error) {
	keySize := localKey.Size()
	if keySize == 0 || len(ciphertext)%keySize != 0 {
		return nil, ErrCiphertextNotBlockAligned
	}
	numBlocks := len(ciphertext) / keySize
	plains := make([][]byte, numBlocks)

	for i := numBlocks - 1; i >= 0; i-- {
		block := ciphertext[i*keySize : (i+1)*keySize]
		plain, err := decryptOne(block, localKey)
		if err != nil {
			return nil, securityChecksFailed("asymmetric decryption failed")
		}
		plains[i] = plain
	}

	var out []byte
	for _, p := range plains {
		out = append(out, p...)
	}
	return out, nil
}

func rsaPKCS1v15EncryptOne(chunk []byte, pub *rsa.PublicKey) ([]byte, error) {
	return rsa.EncryptPKCS1v15(rand.Reader, pub, chunk)
}

func rsaPKCS1v15DecryptOne(block []byte, key *rsa.PrivateKey) ([]byte, error) {
	return rsa.DecryptPKCS1v15(rand.Reader, key, block)
}

func rsaOAEPSHA1EncryptOne(chunk []byte, pub *rsa.PublicKey) ([]byte, error) {
	return rsa.EncryptOAEP(sha1.New(), rand.Reader, pub, chunk, nil)
}

func rsaOAEPSHA1DecryptOne(block []byte, key *rsa.PrivateKey) ([]byte, error) {
	return rsa.DecryptOAEP(sha1.New(), rand.Reader, key, block, nil)
}

func rsaOAEPSHA256EncryptOne(chunk []byte, pub *rsa.PublicKey) ([]byte, error) {
	return rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, chunk, nil)
}

func rsaOAEPSHA256DecryptOne(block []byte, key *rsa.PrivateKey) ([]byte, error) {
	return rsa.DecryptOAEP(sha256.New(), rand.Reader, key, block, nil)
}

func rsaPKCS1v15SHA1Sign(message []byte, key *rsa.PrivateKey) ([]byte, error) {
	digest := sha1.Sum(message)
	return rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA1, digest[:])
}

func rsaPKCS1v15SHA256Sign(message []byte, key *rsa.PrivateKey) ([]byte, error) {
	digest := sha256.Sum256(message)
	return rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
}

func rsaPSSSHA256Sign(message []byte, key *rsa.PrivateKey) ([]byte, error) {
	digest := sha256.Sum256(message)
	return rsa.SignPSS(rand.Reader, key, crypto.SHA256, digest[:], &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash})
}

func rsaPKCS1v15SHA1Verify(cert *x509.Certificate, message, signature []byte) error {
	pub, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return ErrInvalidKeyType
	}
	digest := sha1.Sum(message)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA1, digest[:], signature); err != nil {
		return securityChecksFailed("asymmetric signature verification failed")
	}
	return nil
}

func rsaPKCS1v15SHA256Verify(cert *x509.Certificate, message, signature []byte) error {
	pub, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return ErrInvalidKeyType
	}
	digest := sha256.Sum256(message)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], signature); err != nil {
		return securityChecksFailed("asymmetric signature verification failed")
	}
	return nil
}

func rsaPSSSHA256Verify(cert *x509.Certificate, message, signature []byte) error {
	pub, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return ErrInvalidKeyType
	}
	digest := sha256.Sum256(message)
	opts := &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash}
	if err := rsa.VerifyPSS(pub, crypto.SHA256, digest[:], signature, opts); err != nil {
		return securityChecksFailed("asymmetric signature verification failed")
	}
	return nil
}

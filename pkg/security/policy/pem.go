package policy

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
)

// derMagic is the leading two bytes of a DER SEQUENCE, the outermost
// tag of every X.509 certificate and PKCS#8 private key this package
// loads.
var derMagic = []byte{0x30, 0x82}

// pemPrefix is the ASCII marker a PEM-encoded blob starts with.
var pemPrefix = []byte("-----BEGIN")

// looksLikeDER reports whether data begins with the DER SEQUENCE magic
// bytes 0x30 0x82. This sniff, not a well-formed-ASN.1 parse, is the
// documented heuristic: a DER blob whose outermost length happens not
// to use the long form is not recognised as DER and, lacking a PEM
// header, is rejected as neither format. See the decision recorded for
// this in the grounding
// ledger.
func looksLikeDER(data []byte) bool {
	return bytes.HasPrefix(data, derMagic)
}

// looksLikePEM reports whether data begins with the ASCII "-----BEGIN"
// marker.
func looksLikePEM(data []byte) bool {
	return bytes.HasPrefix(data, pemPrefix)
}

// ParseCertificate loads an X.509 certificate from either DER or PEM
// bytes, sniffing the form by its leading bytes.
func ParseCertificate(data []byte) (*x509.Certificate, []byte, error) {
	if looksLikeDER(data) {
		cert, err := x509.ParseCertificate(data)
		if err != nil {
			return nil, nil, err
		}
		return cert, data, nil
	}
	if looksLikePEM(data) {
		block, _ := pem.Decode(data)
		if block == nil || block.Type != "CERTIFICATE" {
			return nil, nil, errors.New("policy: no CERTIFICATE PEM block found")
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, nil, err
		}
		return cert, block.Bytes, nil
	}
	return nil, nil, errors.New("policy: data is neither DER nor PEM")
}

// ParsePrivateKey loads an RSA private key from DER or PEM bytes,
// sniffing the form the same way ParseCertificate does. password is
// used only when the PEM block is an encrypted PKCS#8
// EncryptedPrivateKeyInfo; pass nil for an unencrypted key.
func ParsePrivateKey(data, password []byte) (*rsa.PrivateKey, error) {
	if looksLikeDER(data) {
		return parsePKCS8OrPKCS1(data)
	}
	if looksLikePEM(data) {
		block, _ := pem.Decode(data)
		if block == nil {
			return nil, errors.New("policy: no PEM block found")
		}
		switch block.Type {
		case "RSA PRIVATE KEY":
			return x509.ParsePKCS1PrivateKey(block.Bytes)
		case "PRIVATE KEY":
			return parsePKCS8OrPKCS1(block.Bytes)
		case "ENCRYPTED PRIVATE KEY":
			der, err := decryptPKCS8(block.Bytes, password)
			if err != nil {
				return nil, err
			}
			return parsePKCS8OrPKCS1(der)
		default:
			return nil, errors.New("policy: unsupported PEM block type " + block.Type)
		}
	}
	return nil, errors.New("policy: data is neither DER nor PEM")
}

func parsePKCS8OrPKCS1(der []byte) (*rsa.PrivateKey, error) {
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, err
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrInvalidKeyType
	}
	return rsaKey, nil
}

package atelier

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

const (
	IDPrefixArtist  = "art"
	IDPrefixService = "ats"
)

// GetHash returns the keccak256 digest of data.
func GetHash(data []byte) [32]byte {
	var hash [32]byte
	copy(hash[:], crypto.Keccak256(data))
	return hash
}

// SignBytes signs data with the given hex-encoded secp256k1 private key.
// The returned signature is the 65-byte [R || S || V] form.
func SignBytes(data []byte, privatekey string) ([]byte, error) {
	key, err := crypto.HexToECDSA(privatekey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %v", err)
	}
	hash := GetHash(data)
	return crypto.Sign(hash[:], key)
}

// RecoverAddress recovers the signer identity from a 65-byte signature.
func RecoverAddress(data []byte, signature []byte, prefix string) (string, error) {
	if len(signature) != 65 {
		return "", fmt.Errorf("invalid signature length: %d", len(signature))
	}
	hash := GetHash(data)
	pubkey, err := crypto.SigToPub(hash[:], signature)
	if err != nil {
		return "", err
	}
	addr := crypto.PubkeyToAddress(*pubkey)
	return prefix + strings.ToLower(addr.Hex()[2:]), nil
}

// VerifySignature checks that signature over data was produced by keyID.
func VerifySignature(data []byte, signature []byte, keyID string) error {
	if len(keyID) < 3 {
		return fmt.Errorf("invalid key id")
	}
	recovered, err := RecoverAddress(data, signature, keyID[:3])
	if err != nil {
		return err
	}
	if recovered != keyID {
		return fmt.Errorf("signature does not match key id %s", keyID)
	}
	return nil
}

// PrivKeyToAddr derives the platform identity for a private key.
func PrivKeyToAddr(privatekey string, prefix string) (string, error) {
	key, err := crypto.HexToECDSA(privatekey)
	if err != nil {
		return "", fmt.Errorf("invalid private key: %v", err)
	}
	addr := crypto.PubkeyToAddress(key.PublicKey)
	return prefix + strings.ToLower(addr.Hex()[2:]), nil
}

func hasChar(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}

func isHex(s string) bool {
	_, err := hex.DecodeString(s)
	return err == nil
}

// IsArtID reports whether keyID has the shape of an artist/user identity.
func IsArtID(keyID string) bool {
	return len(keyID) == 43 && keyID[:3] == IDPrefixArtist && !hasChar(keyID, '.') && isHex(keyID[3:])
}

// IsASID reports whether keyID has the shape of a service identity.
func IsASID(keyID string) bool {
	return len(keyID) == 43 && keyID[:3] == IDPrefixService && !hasChar(keyID, '.') && isHex(keyID[3:])
}

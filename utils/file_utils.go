package utils

import (
	"crypto/rsa"
	"errors"
	"log"
	"os"
)

// ParseKeyFile loads the RSA key at fPath, or generates and saves one there
// when createNewKey is set.
func ParseKeyFile(fPath string, createNewKey bool) (*rsa.PrivateKey, error) {
	if fPath == "" {
		return nil, errors.New("file path is missing")
	}
	if createNewKey {
		log.Println("Generating a new key")
		userKey, _ := GenerateKeyPair(2048)
		if userKey == nil {
			return nil, errors.New("failed to generate key")
		}
		if err := SavePrivateKeyToFile(userKey, fPath); err != nil {
			return nil, err
		}
		return userKey, nil
	}
	userKey, err := ReadKeyFromFPath(fPath)
	if err != nil {
		log.Printf("Failed to read your key from path %s with error %s", fPath, err)
		return nil, err
	}
	return userKey, nil
}

func SavePrivateKeyToFile(privkey *rsa.PrivateKey, fpath string) error {
	if err := os.WriteFile(fpath, PrivateKeyToBytes(privkey), 0600); err != nil {
		log.Println("failed to save key in", fpath, err)
		return err
	}
	log.Println("Saved private key in file", fpath)
	return nil
}

func ReadKeyFromFPath(fPath string) (*rsa.PrivateKey, error) {
	fileContent, err := os.ReadFile(fPath)
	if err != nil {
		return nil, err
	}
	if len(fileContent) == 0 {
		return nil, errors.New("key file is empty, please check filepath")
	}
	key := BytesToPrivateKey(fileContent)
	if key == nil {
		return nil, errors.New("key file does not hold an RSA private key")
	}
	return key, nil
}

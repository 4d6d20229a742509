// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
)

// Private - decrypted identity
type Private struct {
	PrivateKey  *account.PrivateKey `json:"privateKey"`
	Seed        string              `json:"seed"`
	Description string              `json:"description"`
}

const (
	nonceLength     = 24
	secretKeyLength = 32

	minimumPlaintext = 32
	maximumPlaintext = 16383
)

// argon2i settings for the password derived key
var keyParameters = argon2.Context{
	Iterations:  5,
	Memory:      1 << 16,
	Parallelism: 4,
	HashLen:     secretKeyLength,
	Mode:        argon2.ModeArgon2i,
	Version:     argon2.Version13,
}

// unlock the seed of an identity and rebuild its key
func decryptIdentity(password string, identity *Identity) (*Private, error) {

	if "" == identity.Data {
		return nil, fault.ErrNotPrivateKey
	}
	salt := new(Salt)
	if err := salt.UnmarshalText([]byte(identity.Salt)); nil != err {
		return nil, fault.ErrNotPrivateKey
	}

	secretKey, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}

	seed, err := decryptData(identity.Data, secretKey)
	if nil != err {
		return nil, fault.ErrWrongPassword
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, err
	}

	return &Private{
		PrivateKey:  privateKey,
		Seed:        seed,
		Description: identity.Description,
	}, nil
}

// a fresh salt and the key it gives for password
func hashPassword(password string) (*Salt, *[secretKeyLength]byte, error) {
	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}

	secretKey, err := generateKey(password, salt)
	if nil != err {
		return nil, nil, err
	}
	return salt, secretKey, nil
}

func generateKey(password string, salt *Salt) (*[secretKeyLength]byte, error) {
	ctx := keyParameters
	hash, err := argon2.Hash(&ctx, []byte(password), salt.Bytes())
	if nil != err {
		return nil, err
	}

	secretKey := new([secretKeyLength]byte)
	copy(secretKey[:], hash)
	return secretKey, nil
}

// hex(nonce ++ secretbox(data))
func encryptData(data string, secretKey *[secretKeyLength]byte) (string, error) {

	if len(data) < minimumPlaintext || len(data) > maximumPlaintext {
		return "", fault.ErrCryptoFailed
	}

	nonce := new([nonceLength]byte)
	if _, err := rand.Read(nonce[:]); nil != err {
		return "", fault.ErrCryptoFailed
	}

	sealed := secretbox.Seal(nonce[:], []byte(data), nonce, secretKey)
	return hex.EncodeToString(sealed), nil
}

func decryptData(ciphertext string, secretKey *[secretKeyLength]byte) (string, error) {

	sealed, err := hex.DecodeString(ciphertext)
	if nil != err {
		return "", err
	}
	if len(sealed) <= nonceLength {
		return "", fault.ErrCryptoFailed
	}

	nonce := new([nonceLength]byte)
	copy(nonce[:], sealed[:nonceLength])

	plaintext, ok := secretbox.Open(nil, sealed[nonceLength:], nonce, secretKey)
	if !ok {
		return "", fault.ErrCryptoFailed
	}
	return string(plaintext), nil
}

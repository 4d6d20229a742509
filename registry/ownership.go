// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/nftrecord"
	"github.com/bitmark-inc/nftregistry/processor"
	"github.com/bitmark-inc/nftregistry/storage"
)

// owner ++ asset
func ownerKey(owner account.Identifier, asset account.Identifier) []byte {
	key := make([]byte, 0, 2*account.IdentifierLength)
	key = append(key, owner.Bytes()...)
	return append(key, asset.Bytes()...)
}

// move the owner index entry when the holder of an asset changes
func (r *Registry) reindex(trx storage.Transaction, address account.Identifier, previous *nftrecord.AssetRecord, result *processor.Result) error {

	var current *nftrecord.AssetRecord
	if !result.Closed {
		record, err := result.Asset.UnpackAsset()
		if nil != err {
			return err
		}
		current = record
	}

	if nil != previous && nil != current && previous.Owner == current.Owner {
		return nil
	}

	if nil != previous {
		trx.Delete(r.pools.OwnerIndex, ownerKey(previous.Owner, address))
		r.adjustCount(trx, previous.Owner, -1)
	}

	if nil != current {
		trx.Put(r.pools.OwnerIndex, ownerKey(current.Owner, address), current.Collection.Bytes())
		r.adjustCount(trx, current.Owner, 1)
	}
	return nil
}

func (r *Registry) adjustCount(trx storage.Transaction, owner account.Identifier, delta int) {
	key := owner.Bytes()
	n, _ := trx.GetN(r.pools.OwnerCount, key)
	if delta < 0 {
		if n <= 1 {
			trx.Delete(r.pools.OwnerCount, key)
			return
		}
		n -= 1
	} else {
		n += 1
	}
	trx.PutN(r.pools.OwnerCount, key, n)
}

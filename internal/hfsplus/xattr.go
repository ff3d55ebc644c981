// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import "fmt"

func compareAttributeKeys(a, b AttributeKey) int {
	if a.FileCNID != b.FileCNID {
		return compareUint32(a.FileCNID, b.FileCNID)
	}
	if c := binaryCompareNames(a.Name, b.Name); c != 0 {
		return c
	}
	return compareUint32(a.StartBlock, b.StartBlock)
}

// GetAttribute looks a named extended attribute up for cnid in the
// attributes B-tree (§4.15, §3). Names compare binary (not case-folded):
// the attributes tree always uses the binary comparator regardless of the
// catalog tree's choice.
func (v *Volume) GetAttribute(cnid uint32, name string) (AttributeRecord, bool, error) {
	if !v.hasAttributes {
		return AttributeRecord{}, false, nil
	}
	key := AttributeKey{FileCNID: cnid, Name: ToHFSUnicodeName(name)}
	leaf, found, err := searchTree(v.attributesNodes, v.attributesInfo.rootNode, v.attributesInfo.bigKeys, key,
		func(rec []byte, _ bool) (AttributeKey, error) {
			return readAttributeKey(newCursor(rec))
		},
		compareAttributeKeys)
	if err != nil || !found {
		return AttributeRecord{}, false, err
	}
	keyLen := keyEncodedLen(leaf, true) // attribute keys always carry a 2-byte length field
	if len(leaf) < keyLen {
		return AttributeRecord{}, false, fmt.Errorf("%w: attribute record shorter than its key", ErrCorruptNode)
	}
	rec, err := readAttributeRecord(newCursor(leaf[keyLen:]))
	if err != nil {
		return AttributeRecord{}, false, err
	}
	return rec, true, nil
}

// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import "fmt"

// searchTree implements the descent in §4.4: starting at the tree's root
// node, each index node is scanned for the last key <= target (the B-tree
// invariant guarantees every key in the subtree below it is >= that key and
// < the next record's key), and the matching child pointer is followed
// until a leaf is reached. The leaf is then scanned for an exact match.
//
// A node-number cycle (FLink/BLink corruption cannot affect descent, but a
// corrupt child pointer can) aborts the search with ErrCorruptNode rather
// than looping forever.
func searchTree[K any](nr *nodeReader, root uint32, bigKeys bool, target K, parseKey func(rec []byte, bigKeys bool) (K, error), cmp func(a, b K) int) (leaf []byte, found bool, err error) {
	node := root
	visited := make(map[uint32]bool)

	for {
		if visited[node] {
			return nil, false, fmt.Errorf("%w: node loop detected at node %d", ErrCorruptNode, node)
		}
		visited[node] = true

		raw, err := nr.readNode(node)
		if err != nil {
			return nil, false, err
		}
		desc, recs, err := parseNodeRecords(raw)
		if err != nil {
			return nil, false, err
		}

		switch desc.Kind {
		case nodeKindIndex:
			var bestChild uint32
			haveBest := false
			for _, rec := range recs {
				key, err := parseKey(rec, bigKeys)
				if err != nil {
					return nil, false, err
				}
				if cmp(key, target) > 0 {
					break
				}
				child, err := indexChild(rec, keyEncodedLen(rec, bigKeys))
				if err != nil {
					return nil, false, err
				}
				bestChild = child
				haveBest = true
			}
			if !haveBest {
				return nil, false, nil
			}
			node = bestChild

		case nodeKindLeaf:
			for _, rec := range recs {
				key, err := parseKey(rec, bigKeys)
				if err != nil {
					return nil, false, err
				}
				c := cmp(key, target)
				if c == 0 {
					return rec, true, nil
				}
				if c > 0 {
					return nil, false, nil
				}
			}
			return nil, false, nil

		default:
			return nil, false, fmt.Errorf("%w: unexpected node kind %d during descent", ErrCorruptNode, desc.Kind)
		}
	}
}

// keyEncodedLen recovers how many bytes of rec were consumed by the key
// (the key_len field plus its own width, rounded up to an even length for
// the pad byte the on-disk format inserts after an odd-length key), so
// indexChild can skip past it to the trailing child pointer.
// The key_len field itself stores this length excluding the length field.
func keyEncodedLen(rec []byte, bigKeys bool) int {
	if bigKeys {
		if len(rec) < 2 {
			return len(rec)
		}
		n := 2 + int(rec[0])<<8 + int(rec[1])
		return n + n&1
	}
	if len(rec) < 1 {
		return len(rec)
	}
	n := 1 + int(rec[0])
	return n + n&1
}

// searchCatalog looks up an exact (parent CNID, name) catalog key.
func (v *Volume) searchCatalog(key CatalogKey) (CatalogRecord, bool, error) {
	leaf, found, err := searchTree(v.catalogNodes, v.catalogInfo.rootNode, v.catalogInfo.bigKeys, key,
		func(rec []byte, bigKeys bool) (CatalogKey, error) {
			return readCatalogKey(newCursor(rec), bigKeys)
		},
		caseFoldOrBinary(v.comparatorIsCaseFold))
	if err != nil || !found {
		return CatalogRecord{}, false, err
	}
	_, rec, err := readCatalogRecord(leaf, nodeKindLeaf, v.catalogInfo.bigKeys)
	if err != nil {
		return CatalogRecord{}, false, err
	}
	return rec, true, nil
}

func caseFoldOrBinary(caseFold bool) func(a, b CatalogKey) int {
	if caseFold {
		return caseFoldKeyComparator
	}
	return binaryKeyComparator
}

// searchExtentsOverflow looks up the extents-overflow record whose key
// exactly equals the given key (§4.5); there is no nearest-key fallback,
// since the resolver always asks for the next contiguous start_block
// boundary.
func (v *Volume) searchExtentsOverflow(key ExtentKey) (ExtentRecord, bool, error) {
	leaf, found, err := searchTree(v.extentsNodes, v.extentsInfo.rootNode, v.extentsInfo.bigKeys, key,
		func(rec []byte, bigKeys bool) (ExtentKey, error) {
			return readExtentKey(newCursor(rec), bigKeys)
		},
		compareExtentKeys)
	if err != nil || !found {
		return ExtentRecord{}, false, err
	}
	keyLen := keyEncodedLen(leaf, v.extentsInfo.bigKeys)
	if len(leaf) < keyLen {
		return ExtentRecord{}, false, fmt.Errorf("%w: extents record shorter than its key", ErrCorruptExtents)
	}
	rec, err := readExtentRecord(newCursor(leaf[keyLen:]))
	if err != nil {
		return ExtentRecord{}, false, err
	}
	return rec, true, nil
}

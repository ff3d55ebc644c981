// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

// Attribute record variants (§3): inline data (up to 3802 bytes), fork
// data (points to a fork descriptor), extents (continuation of a fork
// record).
const (
	attrInline = 0x10
	attrFork   = 0x20
	attrExtent = 0x30
)

// AttributeKey is (file_CNID, start_block, Unicode name).
type AttributeKey struct {
	FileCNID   uint32
	StartBlock uint32
	Name       UnicodeName
}

func readAttributeKey(c *cursor) (AttributeKey, error) {
	var k AttributeKey
	var err error
	if _, err = c.u16(); err != nil { // key_length
		return k, err
	}
	if err = c.advance(2); err != nil { // pad
		return k, err
	}
	if k.FileCNID, err = c.u32(); err != nil {
		return k, err
	}
	if k.StartBlock, err = c.u32(); err != nil {
		return k, err
	}
	if k.Name, err = readUnicodeName(c); err != nil {
		return k, err
	}
	return k, nil
}

// AttributeRecord is the tagged union of inline/fork/extent attribute data.
type AttributeRecord struct {
	Type   uint32
	Inline []byte
	Fork   ForkData
}

func readAttributeRecord(c *cursor) (AttributeRecord, error) {
	var a AttributeRecord
	var err error
	if a.Type, err = c.u32(); err != nil {
		return a, err
	}
	switch a.Type {
	case attrInline:
		if err = c.advance(4); err != nil { // reserved
			return a, err
		}
		length, err := c.u32()
		if err != nil {
			return a, err
		}
		a.Inline, err = c.block(int(length))
		if err != nil {
			return a, err
		}
	case attrFork:
		if err = c.advance(4); err != nil { // reserved
			return a, err
		}
		a.Fork, err = readForkData(c)
		if err != nil {
			return a, err
		}
	case attrExtent:
		if err = c.advance(4); err != nil { // reserved
			return a, err
		}
		rec, err := readExtentRecord(c)
		if err != nil {
			return a, err
		}
		a.Fork.Extents = rec
	}
	return a, nil
}

// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package hfsplus

import (
	"container/heap"
	"io"
	"sync"
)

// coalescedReader is a block-aligned read cache over an io.ReaderAt,
// grounded on ublio's up_blocksize/up_items/up_grace parameters (§9 Open
// Question 2): reads are rounded out to whole blocks and cached, and a
// fixed number of blocks are held before the least-recently-touched block
// outside a "grace" window of block numbers around the block being fetched
// is evicted.
//
// The original tracks eviction order with a per-block access-time field
// walked via an RB tree; this keeps the same recycle-oldest-outside-window
// policy but orders candidates with a container/heap min-heap on access
// time, which is the idiomatic Go structure for "repeatedly pop the
// smallest" rather than a hand-rolled balanced tree.
type coalescedReader struct {
	mu        sync.Mutex
	dev       io.ReaderAt
	blockSize int64
	capacity  int
	grace     int64

	blocks map[int64]*cachedBlock
	order  blockHeap
	clock  int64
}

type cachedBlock struct {
	key      int64
	data     []byte
	accessed int64
	index    int // heap index, maintained by container/heap
}

type blockHeap []*cachedBlock

func (h blockHeap) Len() int            { return len(h) }
func (h blockHeap) Less(i, j int) bool  { return h[i].accessed < h[j].accessed }
func (h blockHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *blockHeap) Push(x interface{}) {
	b := x.(*cachedBlock)
	b.index = len(*h)
	*h = append(*h, b)
}
func (h *blockHeap) Pop() interface{} {
	old := *h
	n := len(old)
	b := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return b
}

func newCoalescedReader(dev io.ReaderAt, blockSize int64, capacity int, graceBlocks int) *coalescedReader {
	return &coalescedReader{
		dev:       dev,
		blockSize: blockSize,
		capacity:  capacity,
		grace:     int64(graceBlocks),
		blocks:    make(map[int64]*cachedBlock),
	}
}

// ReadAt satisfies the request out of cached, block-aligned reads,
// fetching and caching whole blocks on a miss.
func (c *coalescedReader) ReadAt(p []byte, off int64) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for n < len(p) {
		abs := off + int64(n)
		blockKey := abs / c.blockSize
		within := abs % c.blockSize

		b, err := c.fetch(blockKey)
		if err != nil {
			return n, err
		}

		avail := int64(len(b.data)) - within
		if avail <= 0 {
			return n, io.EOF
		}
		want := int64(len(p) - n)
		if want > avail {
			want = avail
		}
		copy(p[n:n+int(want)], b.data[within:within+want])
		n += int(want)
		if want < avail {
			// block had fewer valid bytes than a full block (device EOF)
			if n < len(p) {
				return n, io.EOF
			}
		}
	}
	return n, nil
}

// fetch returns the cached block for key, reading it from the device on a
// miss and evicting the globally oldest-accessed block outside the grace
// window if the cache is at capacity.
func (c *coalescedReader) fetch(key int64) (*cachedBlock, error) {
	c.clock++
	if b, ok := c.blocks[key]; ok {
		b.accessed = c.clock
		heap.Fix(&c.order, b.index)
		return b, nil
	}

	buf := make([]byte, c.blockSize)
	n, err := c.dev.ReadAt(buf, key*c.blockSize)
	if err != nil && err != io.EOF {
		return nil, err
	}
	buf = buf[:n]

	b := &cachedBlock{key: key, data: buf, accessed: c.clock}
	if len(c.blocks) >= c.capacity {
		c.evictOne(key)
	}
	c.blocks[key] = b
	heap.Push(&c.order, b)
	return b, nil
}

// evictOne removes the least-recently-accessed block, skipping blocks
// within the grace window of the key currently being fetched so that a
// tight scan spanning a few adjacent blocks doesn't thrash its own working
// set on every read.
func (c *coalescedReader) evictOne(forKey int64) {
	var victim *cachedBlock
	for _, cand := range c.order {
		if cand.key < forKey-c.grace || cand.key > forKey+c.grace {
			if victim == nil || cand.accessed < victim.accessed {
				victim = cand
			}
		}
	}
	if victim != nil {
		heap.Remove(&c.order, victim.index)
		delete(c.blocks, victim.key)
		return
	}
	// everything cached is within the grace window; evict the oldest anyway
	oldest := heap.Pop(&c.order).(*cachedBlock)
	delete(c.blocks, oldest.key)
}

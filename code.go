/*
 * Copyright 2023 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package air

import (
    `fmt`
    `strings`
)

// Code is a whole lowered function, it owns the basic blocks, the
// virtual register counters and the stack slots. Block slots may be nil
// where a block was removed, analyses must skip those.
type Code struct {
    Blocks []*BasicBlock
    slots  []*StackSlot
    tmps   [2]int
}

func NewCode() *Code {
    return new(Code)
}

// NewBlock creates an empty block and assigns it the next block id.
func (self *Code) NewBlock() *BasicBlock {
    bb := &BasicBlock { Id: len(self.Blocks) }
    self.Blocks = append(self.Blocks, bb)
    return bb
}

func (self *Code) NumBlocks() int {
    return len(self.Blocks)
}

// Block returns the block at index i, which is nil if the block was
// removed.
func (self *Code) Block(i int) *BasicBlock {
    if i < 0 || i >= len(self.Blocks) {
        panic(fmt.Sprintf("air: block index %d out of range", i))
    } else {
        return self.Blocks[i]
    }
}

// NewTmp allocates a fresh virtual register of the given class.
func (self *Code) NewTmp(class ArgClass) Tmp {
    i := self.tmps[class]
    self.tmps[class] = i + 1
    return MakeTmp(class, i)
}

// NumTmps is the number of virtual registers allocated for a class, one
// past the largest index in use.
func (self *Code) NumTmps(class ArgClass) int {
    return self.tmps[int(class)]
}

// NewStackSlot allocates a stack slot of the given byte size.
func (self *Code) NewStackSlot(size uint32, kind StackSlotKind) *StackSlot {
    if size == 0 {
        panic("air: zero sized stack slot")
    }
    p := &StackSlot {
        index : len(self.slots),
        size  : size,
        kind  : kind,
    }
    self.slots = append(self.slots, p)
    return p
}

func (self *Code) NumStackSlots() int {
    return len(self.slots)
}

// StackSlot returns the slot with the given index.
func (self *Code) StackSlot(i int) *StackSlot {
    if i < 0 || i >= len(self.slots) {
        panic(fmt.Sprintf("air: stack slot index %d out of range", i))
    } else {
        return self.slots[i]
    }
}

// AddEdge links from to to, keeping the successor and predecessor lists
// of both blocks consistent.
func (self *Code) AddEdge(from *BasicBlock, to *BasicBlock) {
    from.Succ = append(from.Succ, to)
    to.Pred = append(to.Pred, from)
}

// SortBlocks renumbers the blocks in reverse postorder from entry and
// compacts the block list. Blocks not reachable from entry are dropped.
// Must not be called once a liveness analysis was built on this Code,
// the analysis caches block ids.
func (self *Code) SortBlocks(entry *BasicBlock) {
    rpo := newBasicBlockIter(entry).Reversed()
    ret := make([]*BasicBlock, len(rpo))
    live := NewSparseSet(len(self.Blocks))

    /* mark the survivors under their old ids */
    for _, bb := range rpo {
        live.Add(bb.Id)
    }

    /* unlink edges from and to the dropped blocks, a stale edge would
     * leak their old ids into the renumbered CFG */
    for _, bb := range rpo {
        bb.Pred = liveblocks(live, bb.Pred)
        bb.Succ = liveblocks(live, bb.Succ)
    }

    /* renumber in reverse post-order */
    for i, bb := range rpo {
        bb.Id = i
        ret[i] = bb
    }

    /* replace the block list */
    self.Blocks = ret
}

func (self *Code) String() string {
    buf := make([]string, 0, len(self.Blocks) * 4)

    /* dump every live block */
    for _, bb := range self.Blocks {
        if bb != nil {
            buf = append(buf, fmt.Sprintf("%s:", bb))
            for _, p := range bb.Ins {
                buf = append(buf, "    " + p.String())
            }
        }
    }

    /* join them together */
    return strings.Join(buf, "\n")
}

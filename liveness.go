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

// Liveness is a backward liveness analysis over one entity domain.
// Construction runs the whole fixed point eagerly, afterwards the only
// persisted result is the live-at-tail set of every block. Per
// instruction live sets are recomputed on demand with a LocalCalc.
//
// An instance owns all of its mutable state, independent domains may be
// analyzed by separate instances concurrently but a single instance must
// never be shared between goroutines.
type Liveness[T any] struct {
    code    *Code
    adapter LivenessAdapter[T]
    workset *SparseSet
    tails   []_IndexSet
    heads   [][]uint32
}

// NewGPLiveness computes liveness of general purpose registers.
func NewGPLiveness(code *Code) *Liveness[Tmp] {
    return NewLiveness[Tmp](code, NewTmpLivenessAdapter(code, GP))
}

// NewFPLiveness computes liveness of floating point registers.
func NewFPLiveness(code *Code) *Liveness[Tmp] {
    return NewLiveness[Tmp](code, NewTmpLivenessAdapter(code, FP))
}

// NewStackSlotLiveness computes liveness of stack slots.
func NewStackSlotLiveness(code *Code) *Liveness[*StackSlot] {
    return NewLiveness[*StackSlot](code, NewStackSlotLivenessAdapter(code))
}

// NewLiveness builds the analysis and runs it to the fixed point.
func NewLiveness[T any](code *Code, adapter LivenessAdapter[T]) *Liveness[T] {
    nb := code.NumBlocks()
    self := &Liveness[T] {
        code    : code,
        adapter : adapter,
        workset : NewSparseSet(adapter.MaxIndex()),
        tails   : make([]_IndexSet, nb),
        heads   : make([][]uint32, nb),
    }

    /* the tail of every block implicitly contains the late uses of its
     * own terminator */
    for _, bb := range code.Blocks {
        if bb != nil {
            ts := make(_IndexSet)
            self.tails[bb.Id] = ts
            adapter.ForEachArg(bb.Last(), func(v T, role ArgRole, class ArgClass) {
                if role.IsLateUse() && adapter.AcceptsClass(class) {
                    ts.add(adapter.ValueToIndex(v))
                }
            })
        }
    }

    /* everything starts out dirty */
    dirty := NewSparseSet(nb)
    for _, bb := range code.Blocks {
        if bb != nil {
            dirty.Add(bb.Id)
        }
    }

    /* run to the fixed point, then drop the scratch head sets */
    self.fixpoint(dirty)
    self.heads = nil
    return self
}

// fixpoint reprocesses dirty blocks until liveness stops growing. Blocks
// are visited from the highest index down, with the usual layout that
// processes most successors before their predecessors, so one pass
// typically carries a value all the way across the function.
func (self *Liveness[T]) fixpoint(dirty *SparseSet) {
    nb := len(self.code.Blocks)

    for changed := true; changed; {
        changed = false

        for i := nb - 1; i >= 0; i-- {
            bb := self.code.Blocks[i]

            /* skip removed and clean blocks */
            if bb == nil || !dirty.Remove(i) {
                continue
            }

            /* scan the entire block backwards, this leaves the live set
             * at the block head in the workset */
            lc := self.NewLocalCalc(bb)
            for j := bb.Size() - 1; j >= 0; j-- {
                lc.Execute(j)
            }

            /* liveness only ever grows, so everything recorded at head
             * in a previous pass is still in the workset. Drop it, what
             * remains is exactly the new findings. */
            if head := self.heads[i]; self.workset.Size() == len(head) {
                self.workset.Clear()
            } else {
                for _, v := range head {
                    self.workset.Remove(int(v))
                }
            }

            /* steady state, nothing new at this block */
            if self.workset.Size() == 0 {
                continue
            }

            /* record the newly discovered live-at-head values */
            self.workset.ForEach(func(v int) {
                self.heads[i] = append(self.heads[i], uint32(v))
            })

            /* propagate them into every predecessor tail, a predecessor
             * that grew gets revisited */
            for _, p := range bb.Pred {
                ts := self.tails[p.Id]
                self.workset.ForEach(func(v int) {
                    if ts.add(v) {
                        if dirty.Add(p.Id) {
                            changed = true
                        }
                    }
                })
            }
        }
    }
}

// LiveAtTail returns the entities live at the exit of bb, ordered by
// index. The result is stable for the lifetime of the analysis.
func (self *Liveness[T]) LiveAtTail(bb *BasicBlock) []T {
    ix := self.tails[bb.Id].sorted()
    rv := make([]T, 0, len(ix))
    for _, i := range ix {
        rv = append(rv, self.adapter.IndexToValue(i))
    }
    return rv
}

// ForEachLiveAtTail visits the entities live at the exit of bb, ordered
// by index.
func (self *Liveness[T]) ForEachLiveAtTail(bb *BasicBlock, fn func(v T)) {
    for _, i := range self.tails[bb.Id].sorted() {
        fn(self.adapter.IndexToValue(i))
    }
}

// LiveAtHead recomputes the entities live at the entry of bb with a full
// local scan, ordered by workset iteration.
func (self *Liveness[T]) LiveAtHead(bb *BasicBlock) []T {
    lc := self.NewLocalCalc(bb)
    for i := bb.Size() - 1; i >= 0; i-- {
        lc.Execute(i)
    }
    return lc.Live()
}

// LocalCalc replays the liveness of a single block backwards, one
// instruction at a time, it borrows the analysis's shared workset. Only
// one LocalCalc per analysis may be active at a time, creating a new one
// invalidates the previous.
type LocalCalc[T any] struct {
    ln *Liveness[T]
    bb *BasicBlock
}

// NewLocalCalc seeds the workset with the live-at-tail set of bb. The
// calculator must then be run strictly from the last instruction index
// down to 0, this is a backward analysis.
func (self *Liveness[T]) NewLocalCalc(bb *BasicBlock) *LocalCalc[T] {
    self.workset.Clear()
    for v := range self.tails[bb.Id] {
        self.workset.Add(v)
    }
    return &LocalCalc[T] { ln: self, bb: bb }
}

func (self *LocalCalc[T]) Block() *BasicBlock {
    return self.bb
}

// Execute transforms the workset from the live set after instruction i
// into the live set before it.
func (self *LocalCalc[T]) Execute(i int) {
    ws := self.ln.workset
    ad := self.ln.adapter
    p := self.bb.At(i)

    /* a def kills the value, whatever was in the entity before this
     * point cannot be the value defined here */
    ad.ForEachArg(p, func(v T, role ArgRole, class ArgClass) {
        if role.IsDef() && ad.AcceptsClass(class) {
            ws.Remove(ad.ValueToIndex(v))
        }
    })

    /* early uses make the value live right before this instruction */
    ad.ForEachArg(p, func(v T, role ArgRole, class ArgClass) {
        if role.IsEarlyUse() && ad.AcceptsClass(class) {
            ws.Add(ad.ValueToIndex(v))
        }
    })

    /* late uses of the previous instruction take effect after the defs
     * of this one. The order matters: it keeps a value that is defined
     * here and late-used by the previous instruction alive across the
     * boundary between the two. */
    if i != 0 {
        ad.ForEachArg(self.bb.At(i - 1), func(v T, role ArgRole, class ArgClass) {
            if role.IsLateUse() && ad.AcceptsClass(class) {
                ws.Add(ad.ValueToIndex(v))
            }
        })
    }
}

// ForEachLive visits the entities live right before the last executed
// instruction.
func (self *LocalCalc[T]) ForEachLive(fn func(v T)) {
    self.ln.workset.ForEach(func(i int) {
        fn(self.ln.adapter.IndexToValue(i))
    })
}

// Live dumps the current live set.
func (self *LocalCalc[T]) Live() []T {
    rv := make([]T, 0, self.ln.workset.Size())
    self.ForEachLive(func(v T) {
        rv = append(rv, v)
    })
    return rv
}

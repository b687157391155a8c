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
)

// BasicBlock is an ordered sequence of instructions, the last one is the
// block terminator. Blocks keep both edge directions so a backward
// analysis can walk predecessors directly.
type BasicBlock struct {
    Id   int
    Ins  []*Inst
    Pred []*BasicBlock
    Succ []*BasicBlock
}

func (self *BasicBlock) Size() int {
    return len(self.Ins)
}

// At returns the instruction at index i, the index must be in range.
func (self *BasicBlock) At(i int) *Inst {
    if i < 0 || i >= len(self.Ins) {
        panic(fmt.Sprintf("air: instruction index %d out of range for %s", i, self))
    } else {
        return self.Ins[i]
    }
}

// Last returns the block terminator.
func (self *BasicBlock) Last() *Inst {
    if nb := len(self.Ins); nb == 0 {
        panic(fmt.Sprintf("air: empty basic block %s", self))
    } else {
        return self.Ins[nb - 1]
    }
}

// Append constructs an instruction from op and args, and adds it at the
// end of the block.
func (self *BasicBlock) Append(op Opcode, args ...Arg) *Inst {
    p := NewInst(op, args...)
    self.Ins = append(self.Ins, p)
    return p
}

// ID implements gonum's graph.Node, blocks are their own CFG nodes.
func (self *BasicBlock) ID() int64 {
    return int64(self.Id)
}

func (self *BasicBlock) String() string {
    return fmt.Sprintf("bb_%d", self.Id)
}

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

type Opcode uint8

const (
    Nop Opcode = iota
    Mov
    Add
    Sub
    Load
    Store
    Patch
    Jump
    Branch
    Ret
)

func (self Opcode) String() string {
    switch self {
        case Nop    : return "nop"
        case Mov    : return "mov"
        case Add    : return "add"
        case Sub    : return "sub"
        case Load   : return "load"
        case Store  : return "store"
        case Patch  : return "patch"
        case Jump   : return "jmp"
        case Branch : return "br"
        case Ret    : return "ret"
        default     : panic("air: invalid opcode")
    }
}

// Inst is a single lowered instruction, an opcode and an ordered list of
// operand occurrences. Analyses never interpret the opcode, the operand
// visitors below are their only view of instruction semantics.
type Inst struct {
    Op   Opcode
    Args []Arg
}

func NewInst(op Opcode, args ...Arg) *Inst {
    return &Inst { Op: op, Args: args }
}

// ForEachTmp visits every virtual register occurrence of the
// instruction, yielding a reference so a pass may rewrite it in place.
func (self *Inst) ForEachTmp(fn func(tmp *Tmp, role ArgRole, class ArgClass)) {
    for i := range self.Args {
        if p := &self.Args[i]; p.Kind == KindTmp {
            fn(&p.Tmp, p.Role, p.Class)
        }
    }
}

// ForEachStackSlot visits every stack slot occurrence of the
// instruction.
func (self *Inst) ForEachStackSlot(fn func(slot *StackSlot, role ArgRole, class ArgClass)) {
    for i := range self.Args {
        if p := &self.Args[i]; p.Kind == KindStack {
            fn(p.Slot, p.Role, p.Class)
        }
    }
}

func (self *Inst) String() string {
    nb := len(self.Args)
    ret := make([]string, 0, nb)

    /* dump the operands */
    for _, v := range self.Args {
        ret = append(ret, v.String())
    }

    /* bare opcode */
    if nb == 0 {
        return self.Op.String()
    }

    /* join them together */
    return fmt.Sprintf(
        "%s %s",
        self.Op,
        strings.Join(ret, ", "),
    )
}

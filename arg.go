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

type (
    ArgKind  uint8
    ArgRole  uint8
    ArgClass uint8
)

const (
    KindInvalid ArgKind = iota
    KindTmp
    KindImm
    KindStack
)

// Operand roles. An instruction reads its operands in two phases: early
// uses are consumed before the instruction produces its results, late
// uses are consumed after. Combined roles decompose into the primitive
// early-use / late-use / def classes through the predicates below.
const (
    Use ArgRole = iota
    ColdUse
    LateUse
    UseDef
    Def
    ZDef
    UseZDef
)

const (
    GP ArgClass = iota
    FP
)

func (self ArgRole) String() string {
    switch self {
        case Use     : return "Use"
        case ColdUse : return "ColdUse"
        case LateUse : return "LateUse"
        case UseDef  : return "UseDef"
        case Def     : return "Def"
        case ZDef    : return "ZDef"
        case UseZDef : return "UseZDef"
        default      : panic("unreachable")
    }
}

// IsEarlyUse checks whether the role reads the operand before the
// instruction executes.
func (self ArgRole) IsEarlyUse() bool {
    return self == Use || self == ColdUse || self == UseDef || self == UseZDef
}

// IsLateUse checks whether the role reads the operand at the end of the
// instruction, after all of its defs took effect.
func (self ArgRole) IsLateUse() bool {
    return self == LateUse
}

// IsDef checks whether the role writes a new value into the operand.
func (self ArgRole) IsDef() bool {
    return self == Def || self == UseDef || self == ZDef || self == UseZDef
}

func (self ArgClass) String() string {
    switch self {
        case GP : return "GP"
        case FP : return "FP"
        default : panic("unreachable")
    }
}

// Arg is a single operand occurrence within an instruction.
type Arg struct {
    Kind  ArgKind
    Role  ArgRole
    Class ArgClass
    Tmp   Tmp
    Slot  *StackSlot
    Imm   int64
}

// TmpArg constructs a virtual register operand, the class is taken from
// the register itself.
func TmpArg(role ArgRole, tmp Tmp) Arg {
    return Arg {
        Kind  : KindTmp,
        Role  : role,
        Class : tmp.Class(),
        Tmp   : tmp,
    }
}

// SlotArg constructs a stack slot operand, class tells which kind of
// value lives in the slot.
func SlotArg(role ArgRole, class ArgClass, slot *StackSlot) Arg {
    if slot == nil {
        panic("air: nil stack slot operand")
    } else {
        return Arg {
            Kind  : KindStack,
            Role  : role,
            Class : class,
            Slot  : slot,
        }
    }
}

// ImmArg constructs an immediate operand, immediates are always early
// uses and never participate in liveness.
func ImmArg(v int64) Arg {
    return Arg {
        Kind : KindImm,
        Role : Use,
        Imm  : v,
    }
}

func (self Arg) String() string {
    switch self.Kind {
        case KindTmp   : return self.Tmp.String()
        case KindImm   : return fmt.Sprintf("$%d", self.Imm)
        case KindStack : return self.Slot.String()
        default        : panic("air: invalid operand kind")
    }
}

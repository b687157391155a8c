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

// LivenessAdapter selects which kind of entity a liveness analysis
// tracks, and maps entities to dense indices. Adapters are pure policy,
// they are infallible by construction: indices always stay within
// [0, MaxIndex) because they derive from counters owned by the Code.
type LivenessAdapter[T any] interface {
    // MaxIndex is the domain size, one past the largest entity index.
    MaxIndex() int

    // AcceptsClass decides whether an operand with the given class tag
    // belongs to this domain.
    AcceptsClass(class ArgClass) bool

    // ValueToIndex and IndexToValue form a bijection between entities
    // and dense indices.
    ValueToIndex(v T) int
    IndexToValue(i int) T

    // ForEachArg visits every operand occurrence of this entity kind,
    // including occurrences whose class this domain does not accept.
    // Class filtering is the analysis's job.
    ForEachArg(p *Inst, fn func(v T, role ArgRole, class ArgClass))
}

// TmpLivenessAdapter tracks virtual registers of a single class.
type TmpLivenessAdapter struct {
    code  *Code
    class ArgClass
}

func NewTmpLivenessAdapter(code *Code, class ArgClass) TmpLivenessAdapter {
    return TmpLivenessAdapter {
        code  : code,
        class : class,
    }
}

func (self TmpLivenessAdapter) MaxIndex() int {
    return self.code.NumTmps(self.class)
}

func (self TmpLivenessAdapter) AcceptsClass(class ArgClass) bool {
    return class == self.class
}

func (self TmpLivenessAdapter) ValueToIndex(v Tmp) int {
    return v.Index()
}

func (self TmpLivenessAdapter) IndexToValue(i int) Tmp {
    return MakeTmp(self.class, i)
}

func (self TmpLivenessAdapter) ForEachArg(p *Inst, fn func(v Tmp, role ArgRole, class ArgClass)) {
    p.ForEachTmp(func(tmp *Tmp, role ArgRole, class ArgClass) {
        fn(*tmp, role, class)
    })
}

// StackSlotLivenessAdapter tracks stack slots, it accepts operands of
// every class since any kind of value can live in a slot.
type StackSlotLivenessAdapter struct {
    code *Code
}

func NewStackSlotLivenessAdapter(code *Code) StackSlotLivenessAdapter {
    return StackSlotLivenessAdapter { code: code }
}

func (self StackSlotLivenessAdapter) MaxIndex() int {
    return self.code.NumStackSlots()
}

func (self StackSlotLivenessAdapter) AcceptsClass(ArgClass) bool {
    return true
}

func (self StackSlotLivenessAdapter) ValueToIndex(v *StackSlot) int {
    return v.index
}

func (self StackSlotLivenessAdapter) IndexToValue(i int) *StackSlot {
    return self.code.StackSlot(i)
}

func (self StackSlotLivenessAdapter) ForEachArg(p *Inst, fn func(v *StackSlot, role ArgRole, class ArgClass)) {
    p.ForEachStackSlot(fn)
}

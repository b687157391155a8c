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

type StackSlotKind uint8

const (
    // Locked slots carry values whose location was fixed by an earlier
    // pass, they are never coalesced or moved.
    Locked StackSlotKind = iota

    // Anonymous slots are spill space, a later pass may pack or merge
    // them based on slot liveness.
    Anonymous
)

func (self StackSlotKind) String() string {
    switch self {
        case Locked    : return "locked"
        case Anonymous : return "anon"
        default        : panic("unreachable")
    }
}

// StackSlot is a contiguous chunk of stack memory, created and indexed
// by the enclosing Code.
type StackSlot struct {
    index int
    size  uint32
    kind  StackSlotKind
}

// Index is the dense index of the slot within the Code that owns it.
func (self *StackSlot) Index() int {
    return self.index
}

func (self *StackSlot) Size() uint32 {
    return self.size
}

func (self *StackSlot) Kind() StackSlotKind {
    return self.kind
}

func (self *StackSlot) String() string {
    return fmt.Sprintf("stack%d", self.index)
}

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

// Tmp is a virtual register, the class and the dense per-class index are
// packed into a single word.
type Tmp uint32

const (
    _B_class = 31
)

const (
    _M_class = 1
)

const (
    _T_class = _M_class << _B_class
    _T_index = (1 << _B_class) - 1
)

// MakeTmp packs class and index into a Tmp.
func MakeTmp(class ArgClass, index int) Tmp {
    if index < 0 || index > _T_index {
        panic("air: tmp index out of range")
    } else {
        return Tmp(uint32(class) << _B_class) | Tmp(index)
    }
}

// Class reports which register class the Tmp belongs to.
func (self Tmp) Class() ArgClass {
    return ArgClass((self & _T_class) >> _B_class)
}

// Index is the dense index of the Tmp within its class.
func (self Tmp) Index() int {
    return int(self & _T_index)
}

func (self Tmp) String() string {
    if self.Class() == GP {
        return fmt.Sprintf("%%r%d", self.Index())
    } else {
        return fmt.Sprintf("%%f%d", self.Index())
    }
}

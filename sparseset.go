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

    `github.com/cloudwego/air/internal/rt`
)

// SparseSet is a set of integers in [0, capacity). Add, Remove and
// Contains are O(1), Clear is O(1) regardless of capacity, iteration is
// O(size). The backing storage is allocated once and reused across any
// number of clear-and-refill cycles.
//
// Membership of i is sparse[i] < size && dense[sparse[i]] == i, so the
// sparse array never needs initialization: a stale or garbage entry
// fails the validation. The sparse array is therefore allocated without
// zeroing.
type SparseSet struct {
    dense  []uint32
    sparse []uint32
}

func NewSparseSet(capacity int) *SparseSet {
    return &SparseSet {
        dense  : make([]uint32, 0, capacity),
        sparse : rt.DirtyUint32s(capacity),
    }
}

func (self *SparseSet) check(i int) {
    if i < 0 || i >= len(self.sparse) {
        panic(fmt.Sprintf("sparseset: index %d out of range [0, %d)", i, len(self.sparse)))
    }
}

func (self *SparseSet) Size() int {
    return len(self.dense)
}

func (self *SparseSet) Capacity() int {
    return len(self.sparse)
}

func (self *SparseSet) Contains(i int) bool {
    self.check(i)
    v := self.sparse[i]
    return v < uint32(len(self.dense)) && self.dense[v] == uint32(i)
}

// Add inserts i, and reports whether it was newly inserted.
func (self *SparseSet) Add(i int) bool {
    if self.Contains(i) {
        return false
    } else {
        self.sparse[i] = uint32(len(self.dense))
        self.dense = append(self.dense, uint32(i))
        return true
    }
}

// Remove deletes i, and reports whether it was present. The last
// inserted value takes over the vacated dense position, so removal may
// reorder the remaining values.
func (self *SparseSet) Remove(i int) bool {
    if !self.Contains(i) {
        return false
    }
    v := self.sparse[i]
    last := self.dense[len(self.dense) - 1]
    self.dense[v] = last
    self.sparse[last] = v
    self.dense = self.dense[:len(self.dense) - 1]
    return true
}

// Clear empties the set without releasing the backing storage.
func (self *SparseSet) Clear() {
    self.dense = self.dense[:0]
}

// ForEach visits the current contents in insertion order.
func (self *SparseSet) ForEach(fn func(i int)) {
    for _, v := range self.dense {
        fn(int(v))
    }
}

func (self *SparseSet) String() string {
    nb := len(self.dense)
    rs := make([]string, 0, nb)

    /* convert every value */
    for _, v := range self.dense {
        rs = append(rs, fmt.Sprint(v))
    }

    /* join them together */
    return fmt.Sprintf(
        "{%s}",
        strings.Join(rs, ", "),
    )
}

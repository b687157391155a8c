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
    `testing`

    `github.com/stretchr/testify/require`
)

func dumpset(s *SparseSet) []int {
    rv := make([]int, 0, s.Size())
    s.ForEach(func(i int) {
        rv = append(rv, i)
    })
    return rv
}

func TestSparseSet_AddRemoveContains(t *testing.T) {
    s := NewSparseSet(16)
    require.Equal(t, 0, s.Size())
    require.False(t, s.Contains(7))
    require.True(t, s.Add(7))
    require.False(t, s.Add(7))
    require.True(t, s.Contains(7))
    require.Equal(t, 1, s.Size())
    require.True(t, s.Remove(7))
    require.False(t, s.Remove(7))
    require.False(t, s.Contains(7))
    require.Equal(t, 0, s.Size())
}

func TestSparseSet_IterationOrder(t *testing.T) {
    s := NewSparseSet(16)
    s.Add(5)
    s.Add(1)
    s.Add(3)
    require.Equal(t, []int { 5, 1, 3 }, dumpset(s))
    require.Equal(t, "{5, 1, 3}", s.String())

    /* the last value takes over the vacated position */
    s.Remove(5)
    require.Equal(t, []int { 3, 1 }, dumpset(s))
    s.Add(5)
    require.Equal(t, []int { 3, 1, 5 }, dumpset(s))
}

func TestSparseSet_ClearAndRefill(t *testing.T) {
    s := NewSparseSet(8)
    for i := 0; i < 8; i++ {
        require.True(t, s.Add(i))
    }
    require.Equal(t, 8, s.Size())

    /* clear must not release the backing storage */
    for round := 0; round < 100; round++ {
        s.Clear()
        require.Equal(t, 0, s.Size())
        require.Equal(t, 8, s.Capacity())
        for i := 7; i >= 0; i-- {
            require.False(t, s.Contains(i))
            require.True(t, s.Add(i))
        }
        require.Equal(t, []int { 7, 6, 5, 4, 3, 2, 1, 0 }, dumpset(s))
    }
}

func TestSparseSet_FreshSetIsEmpty(t *testing.T) {
    s := NewSparseSet(64)
    for i := 0; i < 64; i++ {
        require.False(t, s.Contains(i))
    }
}

func TestSparseSet_OutOfRange(t *testing.T) {
    s := NewSparseSet(4)
    require.Panics(t, func() { s.Add(4) })
    require.Panics(t, func() { s.Add(-1) })
    require.Panics(t, func() { s.Contains(100) })
}

func TestSparseSet_ZeroCapacity(t *testing.T) {
    s := NewSparseSet(0)
    require.Equal(t, 0, s.Size())
    require.Panics(t, func() { s.Add(0) })
}

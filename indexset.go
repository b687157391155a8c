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
    `sort`
    `strings`
)

type (
    _IndexSet map[int]struct{}
)

func (self _IndexSet) add(i int) bool {
    if _, ok := self[i]; ok {
        return false
    } else {
        self[i] = struct{}{}
        return true
    }
}

func (self _IndexSet) contains(i int) bool {
    _, ok := self[i]
    return ok
}

func (self _IndexSet) sorted() []int {
    rr := make([]int, 0, len(self))

    /* extract all indices */
    for i := range self {
        rr = append(rr, i)
    }

    /* sort by index */
    sort.Ints(rr)
    return rr
}

func (self _IndexSet) String() string {
    rr := self.sorted()
    rs := make([]string, 0, len(rr))

    /* convert every index */
    for _, i := range rr {
        rs = append(rs, fmt.Sprint(i))
    }

    /* join them together */
    return fmt.Sprintf(
        "{%s}",
        strings.Join(rs, ", "),
    )
}

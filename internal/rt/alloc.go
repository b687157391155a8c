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

package rt

import (
    `unsafe`

    `github.com/bytedance/gopkg/lang/dirtmake`
)

// DirtyUint32s allocates a []uint32 of length n without zeroing the
// memory. The caller must not read an element before writing it, unless
// it validates the value against state it wrote itself.
func DirtyUint32s(n int) []uint32 {
    if n == 0 {
        return nil
    }
    buf := dirtmake.Bytes(n * 4, n * 4)
    return unsafe.Slice((*uint32)(unsafe.Pointer(&buf[0])), n)
}

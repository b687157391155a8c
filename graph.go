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
    `gonum.org/v1/gonum/graph`
    `gonum.org/v1/gonum/graph/iterator`
    `gonum.org/v1/gonum/graph/simple`
    `gonum.org/v1/gonum/graph/traverse`
)

// _CfgView adapts the CFG to gonum's traversal interfaces, blocks are
// the nodes and successor edges are the arcs.
type _CfgView struct {
    code *Code
}

func (self _CfgView) From(id int64) graph.Nodes {
    bb := self.code.Blocks[id]

    /* removed blocks have no out-edges */
    if bb == nil || len(bb.Succ) == 0 {
        return graph.Empty
    }

    /* wrap the successors */
    ret := make([]graph.Node, 0, len(bb.Succ))
    for _, sc := range bb.Succ {
        ret = append(ret, sc)
    }
    return iterator.NewOrderedNodes(ret)
}

func (self _CfgView) Edge(uid int64, vid int64) graph.Edge {
    if bb := self.code.Blocks[uid]; bb != nil {
        for _, sc := range bb.Succ {
            if int64(sc.Id) == vid {
                return simple.Edge { F: bb, T: sc }
            }
        }
    }
    return nil
}

// RemoveUnreachable nils out every block that cannot be reached from
// entry and unlinks the edges pointing at them. The block list keeps its
// length, analyses skip the nil slots.
func (self *Code) RemoveUnreachable(entry *BasicBlock) {
    live := NewSparseSet(len(self.Blocks))
    walk := traverse.BreadthFirst {
        Visit: func(n graph.Node) {
            live.Add(int(n.ID()))
        },
    }

    /* mark everything reachable from the entry */
    walk.Walk(_CfgView { self }, entry, nil)

    /* drop the dead blocks */
    for i, bb := range self.Blocks {
        if bb != nil && !live.Contains(bb.Id) {
            self.Blocks[i] = nil
        }
    }

    /* unlink edges from and to the dead blocks */
    for _, bb := range self.Blocks {
        if bb != nil {
            bb.Pred = liveblocks(live, bb.Pred)
            bb.Succ = liveblocks(live, bb.Succ)
        }
    }
}

func liveblocks(live *SparseSet, bbs []*BasicBlock) []*BasicBlock {
    ret := bbs[:0]
    for _, bb := range bbs {
        if live.Contains(bb.Id) {
            ret = append(ret, bb)
        }
    }
    return ret
}

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
    `os`
    `path/filepath`
    `strings`
    `testing`

    `github.com/oleiade/lane`
    `github.com/stretchr/testify/require`
)

func cfgdot(code *Code, root *BasicBlock, fn string) {
    q := lane.NewQueue()
    n := make(map[int]bool)
    buf := []string {
        "digraph CFG {",
        `    node [ fontname = "Fira Code" shape = "box" ]`,
        `    START [ shape = "circle" ]`,
        fmt.Sprintf(`    START -> bb_%d`, root.Id),
    }
    for q.Enqueue(root); !q.Empty(); {
        p := q.Dequeue().(*BasicBlock)
        n[p.Id] = true
        ins := make([]string, 0, len(p.Ins))
        for _, v := range p.Ins {
            ins = append(ins, v.String())
        }
        buf = append(buf, fmt.Sprintf(`    bb_%d [ label = "%s\n%s" ]`, p.Id, p, strings.Join(ins, `\n`)))
        for _, ln := range p.Succ {
            if !n[ln.Id] {
                q.Enqueue(ln)
            }
            buf = append(buf, fmt.Sprintf(`    bb_%d -> bb_%d`, p.Id, ln.Id))
        }
    }
    buf = append(buf, "}")
    err := os.WriteFile(fn, []byte(strings.Join(buf, "\n")), 0644)
    if err != nil {
        panic(err)
    }
}

func TestCode_Build(t *testing.T) {
    code := NewCode()
    r0 := code.NewTmp(GP)
    r1 := code.NewTmp(GP)
    s0 := code.NewStackSlot(8, Anonymous)

    b0 := code.NewBlock()
    b1 := code.NewBlock()
    b2 := code.NewBlock()
    b3 := code.NewBlock()
    b0.Append(Mov, ImmArg(1), TmpArg(Def, r0))
    b0.Append(Branch, TmpArg(Use, r0))
    b1.Append(Add, TmpArg(Use, r0), ImmArg(1), TmpArg(Def, r1))
    b1.Append(Store, TmpArg(Use, r1), SlotArg(Def, GP, s0))
    b1.Append(Jump)
    b2.Append(Load, SlotArg(Use, GP, s0), TmpArg(Def, r1))
    b2.Append(Jump)
    b3.Append(Ret, TmpArg(Use, r1))
    code.AddEdge(b0, b1)
    code.AddEdge(b0, b2)
    code.AddEdge(b1, b3)
    code.AddEdge(b2, b3)

    require.Equal(t, 2, code.NumTmps(GP))
    require.Equal(t, 0, code.NumTmps(FP))
    require.Equal(t, 1, code.NumStackSlots())
    require.Same(t, s0, code.StackSlot(0))

    t.Logf("Generated code:\n%s", code)
    t.Logf("Generating DOT file ...")
    cfgdot(code, b0, filepath.Join(t.TempDir(), "cfg.gv"))

    /* the listing mentions every block */
    dump := code.String()
    for _, bb := range code.Blocks {
        require.Contains(t, dump, bb.String() + ":")
    }
}

func TestCode_RemoveUnreachable(t *testing.T) {
    code := NewCode()
    b0 := code.NewBlock()
    b1 := code.NewBlock()
    b2 := code.NewBlock()
    b3 := code.NewBlock()
    b0.Append(Jump)
    b1.Append(Ret)
    b2.Append(Jump)
    b3.Append(Jump)
    code.AddEdge(b0, b1)
    code.AddEdge(b2, b1)
    code.AddEdge(b3, b2)

    code.RemoveUnreachable(b0)
    require.NotNil(t, code.Block(0))
    require.NotNil(t, code.Block(1))
    require.Nil(t, code.Block(2))
    require.Nil(t, code.Block(3))
    require.Equal(t, []*BasicBlock { b0 }, b1.Pred)
}

func TestCode_SortBlocks(t *testing.T) {
    code := NewCode()
    entry := code.NewBlock()
    x := code.NewBlock()
    y := code.NewBlock()
    entry.Append(Jump)
    x.Append(Ret)
    y.Append(Jump)
    code.AddEdge(entry, y)
    code.AddEdge(y, x)

    code.SortBlocks(entry)
    require.Equal(t, 3, code.NumBlocks())
    require.Equal(t, 0, entry.Id)
    require.Equal(t, 1, y.Id)
    require.Equal(t, 2, x.Id)
    require.Equal(t, []*BasicBlock { entry, y, x }, code.Blocks)
}

func TestCode_SortBlocksDropsUnreachableEdges(t *testing.T) {
    code := NewCode()
    r0 := code.NewTmp(GP)

    /* b2 is unreachable from the entry but keeps an in-edge into b1,
     * sorting must unlink it or its stale id would leak into the
     * renumbered CFG */
    b0 := code.NewBlock()
    b1 := code.NewBlock()
    b2 := code.NewBlock()
    b0.Append(Jump)
    b1.Append(Patch, TmpArg(LateUse, r0))
    b2.Append(Jump)
    code.AddEdge(b0, b1)
    code.AddEdge(b2, b1)

    code.SortBlocks(b0)
    require.Equal(t, []*BasicBlock { b0, b1 }, code.Blocks)
    require.Equal(t, []*BasicBlock { b0 }, b1.Pred)

    /* the renumbered CFG must still be analyzable */
    ln := NewGPLiveness(code)
    require.Equal(t, []Tmp { r0 }, ln.LiveAtTail(b0))
    require.Equal(t, []Tmp { r0 }, ln.LiveAtTail(b1))
}

func TestCode_BlockIter(t *testing.T) {
    code := NewCode()
    b0 := code.NewBlock()
    b1 := code.NewBlock()
    b2 := code.NewBlock()
    b0.Append(Jump)
    b1.Append(Jump)
    b2.Append(Ret)
    code.AddEdge(b0, b1)
    code.AddEdge(b1, b2)
    code.AddEdge(b1, b0)

    /* post-order, successors come out before their predecessors */
    var order []*BasicBlock
    newBasicBlockIter(b0).ForEach(func(bb *BasicBlock) {
        order = append(order, bb)
    })
    require.Equal(t, []*BasicBlock { b2, b1, b0 }, order)
}

func TestTmp_Packing(t *testing.T) {
    r := MakeTmp(GP, 42)
    f := MakeTmp(FP, 7)
    require.Equal(t, GP, r.Class())
    require.Equal(t, 42, r.Index())
    require.Equal(t, FP, f.Class())
    require.Equal(t, 7, f.Index())
    require.Equal(t, "%r42", r.String())
    require.Equal(t, "%f7", f.String())
    require.Panics(t, func() { MakeTmp(GP, -1) })
}

func TestInst_Visitors(t *testing.T) {
    code := NewCode()
    r0 := code.NewTmp(GP)
    f0 := code.NewTmp(FP)
    s0 := code.NewStackSlot(16, Locked)
    p := NewInst(Store, TmpArg(Use, r0), TmpArg(Use, f0), SlotArg(Def, FP, s0), ImmArg(4))

    var tmps []Tmp
    p.ForEachTmp(func(tmp *Tmp, role ArgRole, class ArgClass) {
        tmps = append(tmps, *tmp)
    })
    require.Equal(t, []Tmp { r0, f0 }, tmps)

    var slots []*StackSlot
    p.ForEachStackSlot(func(slot *StackSlot, role ArgRole, class ArgClass) {
        require.Equal(t, Def, role)
        require.Equal(t, FP, class)
        slots = append(slots, slot)
    })
    require.Equal(t, []*StackSlot { s0 }, slots)
    require.Equal(t, "store %r0, %f0, stack0, $4", p.String())
}

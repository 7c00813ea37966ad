/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package dispatch builds and emits the message-type trie described in
// spec §4.6: one edge per character of a msgtype string, collapsed
// into a cascade of labeled switch statements.
package dispatch

import (
	"fmt"
	"sort"
	"strings"

	"fixgen/fixerr"
	"fixgen/model"
)

// node is one trie position. children is keyed by the next character of
// every msgtype string passing through this position; isEnd marks that
// some declared msgtype ends exactly here, in which case name holds the
// message it resolves to.
type node struct {
	children map[byte]*node
	isEnd    bool
	name     string
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie is the root of a built message-type dispatch tree.
type Trie struct {
	root *node
}

// Build inserts every message's msgtype string into a fresh trie,
// failing with DuplicateMsgType the moment two messages share a
// msgtype. messages is walked in order, so the error names the later
// message whose msgtype repeats an earlier one; the earlier message's
// name is not reported.
func Build(messages []model.Message) (*Trie, error) {
	t := &Trie{root: newNode()}
	for _, m := range messages {
		if m.MsgType == "" {
			return nil, fixerr.EmptyMsgTypeErr(m.Name)
		}
		if err := t.insert(m.MsgType, m.Name); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Trie) insert(msgtype, name string) error {
	n := t.root
	for i := 0; i < len(msgtype); i++ {
		c := msgtype[i]
		child, ok := n.children[c]
		if !ok {
			child = newNode()
			n.children[c] = child
		}
		n = child
	}
	if n.isEnd {
		return fixerr.DuplicateMsgTypeErr(name, msgtype)
	}
	n.isEnd = true
	n.name = name
	return nil
}

// queued is one pending subtree awaiting emission, labeled by the
// character path that reaches it from the root.
type queued struct {
	label string
	n     *node
}

// Emit renders the trie as the labeled switch cascade spec §4.6
// mandates: a root switch over the first character, queuing non-leaf
// children under a goto label and inlining pure leaves directly.
// Subtrees are emitted in LIFO order off the back of the work queue,
// producing a depth-first listing that keeps related labels clustered.
func Emit(t *Trie) string {
	var out strings.Builder
	queue := []queued{{label: "", n: t.root}}

	for len(queue) > 0 {
		last := len(queue) - 1
		cur := queue[last]
		queue = queue[:last]

		if cur.label != "" {
			fmt.Fprintf(&out, "_%s:\n", cur.label)
		}
		queue = emitSwitch(&out, cur, queue)
	}

	return out.String()
}

// EmitFunction wraps Emit's switch cascade in the static dispatch
// function the generated source defines (the generated header does not
// declare it): a function taking the wire message's type field and
// returning the matching message_info, or NULL.
func EmitFunction(prefix string, t *Trie) string {
	var out strings.Builder
	fmt.Fprintf(&out, "static const message_info* %s_msgtype_dispatch(const char *p) {\n", prefix)
	out.WriteString(Emit(t))
	out.WriteString("}\n")
	return out.String()
}

// emitSwitch writes one switch statement for n and returns the queue
// with any newly discovered non-leaf children appended (to be popped
// LIFO by the caller's loop).
func emitSwitch(out *strings.Builder, cur queued, queue []queued) []queued {
	out.WriteString("switch (*p) {\n")

	for _, c := range sortedKeys(cur.n.children) {
		child := cur.n.children[c]
		switch {
		case isPureLeaf(child):
			fmt.Fprintf(out, "case %s: RETURN_MESSAGE_OR_NULL(%s);\n", charLit(c), child.name)
		default:
			label := cur.label + string(c)
			fmt.Fprintf(out, "case %s: p++; goto _%s;\n", charLit(c), label)
			queue = append(queue, queued{label: label, n: child})
		}
	}

	if cur.n.isEnd {
		fmt.Fprintf(out, "case SOH: RETURN_MESSAGE(%s);\n", cur.n.name)
	}
	out.WriteString("default: return NULL;\n")
	out.WriteString("}\n")
	return queue
}

// isPureLeaf reports whether n has exactly one outcome: the
// end-of-string transition, with no further children to dispatch on.
func isPureLeaf(n *node) bool {
	return n.isEnd && len(n.children) == 0
}

func charLit(c byte) string {
	return fmt.Sprintf("'%c'", c)
}

func sortedKeys(m map[byte]*node) []byte {
	out := make([]byte, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

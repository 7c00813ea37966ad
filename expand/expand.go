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

// Package expand walks raw blocks and produces fully resolved ones:
// components inlined in place, groups expanded once and memoized,
// DATA/LENGTH adjacency enforced. This is the core of the compiler.
package expand

import (
	"fixgen/fixerr"
	"fixgen/model"
)

const maxDepth = 10

// Expander carries the ambient structures every expansion shares: the
// read-only component table and the accumulating ordered map of
// expanded groups.
type Expander struct {
	components *model.ComponentTable
	groups     *model.OrderedMap[string, model.Group]

	// visitedPath detects component/group re-entry along the current
	// expansion path immediately, rather than waiting for the depth-10
	// backstop (spec §9 REDESIGN FLAG: "a stricter reimplementation
	// should maintain a visited set along the current expansion path").
	visitedPath map[string]bool
}

func New(components *model.ComponentTable) *Expander {
	return &Expander{
		components:  components,
		groups:      model.NewOrderedMap[string, model.Group](),
		visitedPath: make(map[string]bool),
	}
}

// Groups returns every group expanded so far, in first-completed
// order (nested groups complete, and are memoized, before the groups
// that contain them).
func (e *Expander) Groups() *model.OrderedMap[string, model.Group] {
	return e.groups
}

// pending tracks the single-slot DATA/LENGTH state machine (spec
// §4.3): at most one DataLength entry may be "pending" at a time, and
// it may not cross a component splice boundary.
type pending struct {
	active     bool
	lengthTag  model.Tag
	lengthName string
}

// Expand walks a raw block and returns its fully resolved form. name
// identifies the block being expanded (a message, group, header, or
// trailer name) for cycle-detection error messages; path is the
// scope stack for name-uniqueness errors raised deeper down (block
// reading already enforced uniqueness, so this only threads context
// through for expansion-time errors).
func (e *Expander) Expand(name string, raw model.Block, path []string) (model.Block, error) {
	return e.expandDepth(name, raw, path, 0)
}

func (e *Expander) expandDepth(name string, raw model.Block, path []string, depth int) (model.Block, error) {
	if depth > maxDepth {
		return nil, fixerr.CycleSuspectedErr(path, name)
	}

	var out model.Block
	var p pending

	flushDangling := func() {
		if p.active {
			// Spec §9 open question: a stray DataLength ending a block
			// without its Data tag is emitted as an ordinary entry.
			// Preserved verbatim; behavior is intentionally unchanged
			// even though its motivation is unclear.
			out = append(out, model.Entry{Name: p.lengthName, Kind: model.EntryRegular, Tag: p.lengthTag})
			p = pending{}
		}
	}

	for _, entry := range raw {
		switch entry.Kind {
		case model.EntryRegular:
			if p.active {
				return nil, fixerr.LengthDataMismatchErr(path, p.lengthName, "")
			}
			out = append(out, entry)

		case model.EntryDataLength:
			if p.active {
				return nil, fixerr.LengthDataMismatchErr(path, p.lengthName, "")
			}
			p = pending{active: true, lengthTag: entry.Tag, lengthName: entry.Name}

		case model.EntryData:
			if !p.active {
				return nil, fixerr.UnexpectedDataTagErr(path, entry.Name)
			}
			if p.lengthTag.DataTagName != entry.Name {
				return nil, fixerr.LengthDataMismatchErr(path, p.lengthName, entry.Name)
			}
			out = append(out, entry)
			p = pending{}

		case model.EntryComponent:
			if p.active {
				return nil, fixerr.LengthDataMismatchErr(path, p.lengthName, "")
			}
			body, ok := e.components.Get(entry.ComponentName)
			if !ok {
				return nil, fixerr.UnknownComponentErr(path, entry.ComponentName)
			}
			if e.visitedPath[entry.ComponentName] {
				return nil, fixerr.CycleSuspectedErr(path, entry.ComponentName)
			}
			e.visitedPath[entry.ComponentName] = true
			spliced, err := e.expandDepth(entry.ComponentName, body, append(path, entry.ComponentName), depth+1)
			delete(e.visitedPath, entry.ComponentName)
			if err != nil {
				return nil, err
			}
			out = append(out, spliced...)

		case model.EntryGroup:
			if p.active {
				return nil, fixerr.LengthDataMismatchErr(path, p.lengthName, "")
			}
			if existing, ok := e.groups.Get(entry.CanonicalName); ok {
				out = append(out, model.Entry{
					Name: entry.Name, Kind: model.EntryGroup, SizeTagName: existing.SizeTagName,
					SizeTag: entry.SizeTag, CanonicalName: existing.CanonicalName, Body: existing.Body,
				})
				continue
			}
			if e.visitedPath[entry.CanonicalName] {
				return nil, fixerr.CycleSuspectedErr(path, entry.CanonicalName)
			}
			e.visitedPath[entry.CanonicalName] = true
			nestedPath := append(append([]string{}, path...), entry.SizeTagName)
			body, err := e.expandDepth(entry.CanonicalName, entry.Body, nestedPath, depth+1)
			delete(e.visitedPath, entry.CanonicalName)
			if err != nil {
				return nil, err
			}
			group := model.Group{CanonicalName: entry.CanonicalName, SizeTagName: entry.SizeTagName, Body: body}
			e.groups.Set(entry.CanonicalName, group)
			out = append(out, model.Entry{
				Name: entry.Name, Kind: model.EntryGroup, SizeTagName: entry.SizeTagName,
				SizeTag: entry.SizeTag, CanonicalName: entry.CanonicalName, Body: body,
			})
		}
	}

	flushDangling()

	if len(out) == 0 {
		return nil, fixerr.EmptyBlockErr(path)
	}
	return out, nil
}

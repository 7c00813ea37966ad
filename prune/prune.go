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

// Package prune computes the reachable tag and group sets from the
// common block and every message, and orders groups so that every
// group appears after all groups nested inside it (spec §4.5).
package prune

import "fixgen/model"

// Result holds the reachable tags (T_out) and the dependency-ordered
// groups (G_out), both append-only ordered maps built by a single
// post-order walk.
type Result struct {
	Tags   *model.OrderedMap[string, model.Tag]
	Groups *model.OrderedMap[string, model.Group]
}

// Prune visits common followed by every message in msgs, in that
// order, and returns the reachable tag and group sets.
func Prune(common model.Block, msgs []model.Message) *Result {
	r := &Result{
		Tags:   model.NewOrderedMap[string, model.Tag](),
		Groups: model.NewOrderedMap[string, model.Group](),
	}
	r.visitBlock(common)
	for _, m := range msgs {
		r.visitBlock(m.Block)
	}
	return r
}

func (r *Result) visitBlock(b model.Block) {
	for _, entry := range b {
		if entry.Kind == model.EntryGroup {
			r.visitGroup(entry)
			continue
		}
		r.Tags.Set(entry.Name, entry.Tag)
	}
}

// visitGroup includes the group's size tag, recurses into its body
// first (post-order), then appends the group itself — so every group
// nested inside another appears earlier in G_out.
func (r *Result) visitGroup(entry model.Entry) {
	r.Tags.Set(entry.SizeTagName, entry.SizeTag)
	if r.Groups.Has(entry.CanonicalName) {
		return
	}
	r.visitBlock(entry.Body)
	r.Groups.Set(entry.CanonicalName, model.Group{
		CanonicalName: entry.CanonicalName,
		SizeTagName:   entry.SizeTagName,
		Body:          entry.Body,
	})
}

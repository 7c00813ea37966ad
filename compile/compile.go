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

// Package compile drives the full pipeline end to end: load, build the
// tag table, read the dictionary, expand every block, validate and
// strip the header/trailer, prune the reachable set, and emit the four
// code artifacts plus the dispatch trie. It is the one place all nine
// stages are wired together; every package it calls is independently
// testable in isolation.
package compile

import (
	"io"

	"fixgen/block"
	"fixgen/dispatch"
	"fixgen/emit"
	"fixgen/expand"
	"fixgen/model"
	"fixgen/prune"
	"fixgen/xmlload"
)

// Result is everything downstream consumers (the CLI's template
// substitution, the sample builder, the explorer) need from a single
// compile.
type Result struct {
	Version  xmlload.Version
	Tags     *model.TagTable
	Pruned   *prune.Result
	Common   model.Block
	Messages []model.Message
	Trie     *dispatch.Trie

	// EnumTags is the tag set the generated header's enum must bind:
	// every reachable tag (Pruned.Tags), plus the framing tags
	// ValidateHeader/ValidateTrailer stripped from the common block,
	// plus the DataLength half of every reachable Data/DataLength pair
	// (folded away in the common/message tables but still wire fields).
	EnumTags *model.OrderedMap[string, model.Tag]
}

// Run executes the full pipeline against r, the input dictionary's XML
// content.
func Run(r io.Reader) (*Result, error) {
	root, version, err := xmlload.Load(r)
	if err != nil {
		return nil, err
	}

	tags, err := model.BuildTagTable(root)
	if err != nil {
		return nil, err
	}

	dict, err := model.ReadDictionary(root, version, tags, block.Read)
	if err != nil {
		return nil, err
	}

	expander := expand.New(dict.Components)

	expandedHeader, err := expander.Expand("header", dict.Header, []string{"header"})
	if err != nil {
		return nil, err
	}
	header, err := expand.ValidateHeader(expandedHeader)
	if err != nil {
		return nil, err
	}

	expandedTrailer, err := expander.Expand("trailer", dict.Trailer, []string{"trailer"})
	if err != nil {
		return nil, err
	}
	trailer, err := expand.ValidateTrailer(expandedTrailer)
	if err != nil {
		return nil, err
	}

	// The BeginString/BodyLength/MsgType prefix and CheckSum suffix are
	// stripped from the common block (spec §4.3) but remain real wire
	// fields; enumTags folds them back in below.
	framing := append(model.Block{}, expandedHeader[:len(expandedHeader)-len(header)]...)
	framing = append(framing, expandedTrailer[len(trailer):]...)

	common := append(append(model.Block{}, header...), trailer...)

	var messages []model.Message
	for _, name := range dict.Messages.Keys() {
		raw, _ := dict.Messages.Get(name)
		expanded, err := expander.Expand(raw.Name, raw.Block, []string{raw.Name})
		if err != nil {
			return nil, err
		}
		messages = append(messages, model.Message{Name: raw.Name, MsgType: raw.MsgType, Block: expanded})
	}

	pruned := prune.Prune(common, messages)

	trie, err := dispatch.Build(messages)
	if err != nil {
		return nil, err
	}

	return &Result{
		Version:  version,
		Tags:     tags,
		Pruned:   pruned,
		Common:   common,
		Messages: messages,
		Trie:     trie,
		EnumTags: enumTags(tags, pruned, framing),
	}, nil
}

// enumTags computes the full tag enumeration: every reachable tag,
// every framing tag stripped from the common block during header/
// trailer validation, and the DataLength counterpart of every
// reachable Data tag (folded into its Data entry by the expander and
// so otherwise invisible to Pruned.Tags).
func enumTags(tags *model.TagTable, pruned *prune.Result, framing model.Block) *model.OrderedMap[string, model.Tag] {
	out := model.NewOrderedMap[string, model.Tag]()
	for _, name := range pruned.Tags.Keys() {
		tag, _ := pruned.Tags.Get(name)
		out.Set(name, tag)
		if tag.Kind == model.KindData {
			if lengthName, lengthTag, ok := findDataLength(tags, name); ok {
				out.Set(lengthName, lengthTag)
			}
		}
	}
	for _, e := range framing {
		out.Set(e.Name, e.Tag)
	}
	return out
}

// findDataLength looks up dataName's paired LENGTH tag in the full,
// unpruned tag table by its DataTagName back-reference.
func findDataLength(tags *model.TagTable, dataName string) (string, model.Tag, bool) {
	for _, name := range tags.Names() {
		tag, _ := tags.Get(name)
		if tag.Kind == model.KindDataLength && tag.DataTagName == dataName {
			return name, tag, true
		}
	}
	return "", model.Tag{}, false
}

// Header renders the generated header file's body (everything between
// the include guard): the sorted tag enum, the sorted message-type
// enum, and the parser constructor declaration.
func Header(prefix string, r *Result) string {
	return emit.TagEnum(r.EnumTags) + "\n" + emit.MsgTypeEnum(r.Messages) + "\n" +
		"fix_parser* create_" + prefix + "_parser();\n"
}

// SourceFragments holds the four body fragments a source-file template
// substitutes: the group tables, the common table, the message tables,
// and the dispatch function, in that order.
type SourceFragments struct {
	Groups      string
	Common      string
	Messages    string
	ParserTable string
}

func Source(prefix string, r *Result) SourceFragments {
	return SourceFragments{
		Groups:      emit.GroupTable(r.Pruned.Groups),
		Common:      emit.CommonTable(r.Common),
		Messages:    emit.MessageTables(r.Messages, len(r.Common)),
		ParserTable: dispatch.EmitFunction(prefix, r.Trie),
	}
}

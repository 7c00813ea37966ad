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

package model

import "fixgen/xmlload"

// Dictionary is the not-yet-expanded reading of the whole document:
// the frozen tag table, the raw component bodies, the raw message
// bodies, and the raw header/trailer bodies.
type Dictionary struct {
	Tags       *TagTable
	Version    xmlload.Version
	Components *ComponentTable
	Messages   *MessageTable
	Header     Block
	Trailer    Block
}

// BlockReader is implemented by package block; taking it as a
// parameter (rather than importing block directly) keeps model free of
// a dependency on the package that already depends on it.
type BlockReader func(elem *xmlload.Node, tags *TagTable, path []string) (Block, error)

// ReadDictionary builds the Component Table and Message Table (spec
// §2 items 4-5) and reads the raw header/trailer bodies, using read to
// convert each XML block.
func ReadDictionary(root *xmlload.Node, version xmlload.Version, tags *TagTable, read BlockReader) (*Dictionary, error) {
	d := &Dictionary{
		Tags:       tags,
		Version:    version,
		Components: NewComponentTable(),
		Messages:   NewMessageTable(),
	}

	if comps := root.FindChild("components"); comps != nil {
		for _, c := range comps.ChildrenNamed("component") {
			name := c.Attr("name")
			body, err := read(c, tags, []string{name})
			if err != nil {
				return nil, err
			}
			d.Components.Set(name, body)
		}
	}

	if msgs := root.FindChild("messages"); msgs != nil {
		for _, m := range msgs.ChildrenNamed("message") {
			name := m.Attr("name")
			msgtype := m.Attr("msgtype")
			body, err := read(m, tags, []string{name})
			if err != nil {
				return nil, err
			}
			d.Messages.Set(name, Message{Name: name, MsgType: msgtype, Block: body})
		}
	}

	if header := root.FindChild("header"); header != nil {
		body, err := read(header, tags, []string{"header"})
		if err != nil {
			return nil, err
		}
		d.Header = body
	}

	if trailer := root.FindChild("trailer"); trailer != nil {
		body, err := read(trailer, tags, []string{"trailer"})
		if err != nil {
			return nil, err
		}
		d.Trailer = body
	}

	return d, nil
}

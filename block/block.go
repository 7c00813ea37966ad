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

// Package block converts an XML element's children into an ordered
// (name, entry) sequence, recognizing field/component/group children.
// Resolution of component references is deferred to package expand;
// this stage only validates that names exist and shapes are correct.
package block

import (
	"fixgen/fixerr"
	"fixgen/model"
	"fixgen/xmlload"
)

// Read converts elem's children into a Block. path identifies the
// enclosing scope (message/group names) for error messages.
func Read(elem *xmlload.Node, tags *model.TagTable, path []string) (model.Block, error) {
	var b model.Block
	seen := make(map[string]bool)

	for i := range elem.Children {
		child := &elem.Children[i]
		var entry model.Entry

		switch child.XMLName.Local {
		case "field":
			name := child.Attr("name")
			tag, ok := tags.Get(name)
			if !ok {
				return nil, fixerr.UnknownNodeErr(path, name)
			}
			kind := model.EntryRegular
			switch tag.Kind {
			case model.KindData:
				kind = model.EntryData
			case model.KindDataLength:
				kind = model.EntryDataLength
			}
			entry = model.Entry{Name: name, Kind: kind, Tag: tag}

		case "component":
			name := child.Attr("name")
			entry = model.Entry{Name: name, Kind: model.EntryComponent, ComponentName: name}

		case "group":
			sizeTagName := child.Attr("name")
			sizeTag, ok := tags.Get(sizeTagName)
			if !ok || !tags.IsNumInGroup(sizeTagName) {
				return nil, fixerr.UnknownNodeErr(path, sizeTagName)
			}
			nestedPath := append(append([]string{}, path...), sizeTagName)
			body, err := Read(child, tags, nestedPath)
			if err != nil {
				return nil, err
			}
			entry = model.Entry{
				Name:          sizeTagName,
				Kind:          model.EntryGroup,
				SizeTagName:   sizeTagName,
				SizeTag:       sizeTag,
				CanonicalName: model.GroupName(path, sizeTagName),
				Body:          body,
			}

		default:
			continue
		}

		if seen[entry.Name] {
			return nil, fixerr.DuplicateTagErr(path, entry.Name)
		}
		seen[entry.Name] = true
		b = append(b, entry)
	}

	if len(b) == 0 {
		return nil, fixerr.EmptyBlockErr(path)
	}
	return b, nil
}

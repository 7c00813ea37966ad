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

import (
	"strconv"

	"fixgen/fixerr"
	"fixgen/xmlload"
)

const (
	dataTypeData       = "DATA"
	dataTypeLength     = "LENGTH"
	dataTypeNumInGroup = "NUMINGROUP"
)

// BuildTagTable reads every <fields>/<field> element into a name-keyed
// catalogue, then promotes DATA/LENGTH pairs in place. An empty name
// fails with EmptyFieldName, a non-integer number attribute fails with
// InvalidTagNumber, and zero fields fails with NoFields.
func BuildTagTable(root *xmlload.Node) (*TagTable, error) {
	fields := root.FindChild("fields")
	table := NewTagTable()

	if fields != nil {
		for _, f := range fields.ChildrenNamed("field") {
			name := f.Attr("name")
			number := f.Attr("number")
			typ := f.Attr("type")

			if name == "" {
				return nil, fixerr.EmptyFieldNameErr(number)
			}
			value, err := strconv.Atoi(number)
			if err != nil {
				return nil, fixerr.InvalidTagNumberErr(name, number)
			}
			table.Set(Tag{Name: name, Value: value, Kind: KindRegular, DataType: typ})
		}
	}

	if table.Len() == 0 {
		return nil, fixerr.NoFieldsErr()
	}

	if err := promoteDataPairs(table); err != nil {
		return nil, err
	}
	return table, nil
}

// promoteDataPairs finds every DATA field's LENGTH companion by name
// suffix (Len, then Length) and rewrites both entries in place.
func promoteDataPairs(table *TagTable) error {
	names := table.Names()
	for _, name := range names {
		tag, _ := table.Get(name)
		if tag.DataType != dataTypeData {
			continue
		}

		lengthName := ""
		var lengthTag Tag
		for _, candidate := range []string{name + "Len", name + "Length"} {
			if cand, ok := table.Get(candidate); ok && cand.DataType == dataTypeLength {
				lengthName = candidate
				lengthTag = cand
				break
			}
		}
		if lengthName == "" {
			return fixerr.MissingLengthTagErr(name)
		}

		table.Set(Tag{
			Name:           name,
			Value:          tag.Value,
			Kind:           KindData,
			DataType:       tag.DataType,
			LengthTagValue: lengthTag.Value,
		})
		table.Set(Tag{
			Name:        lengthName,
			Value:       lengthTag.Value,
			Kind:        KindDataLength,
			DataType:    lengthTag.DataType,
			DataTagName: name,
		})
	}
	return nil
}

// IsNumInGroup reports whether name is declared with dataType
// NUMINGROUP in the table. NumInGroup fields are never promoted to a
// distinct Kind; they're recognized on demand when a <group> element
// references them.
func (t *TagTable) IsNumInGroup(name string) bool {
	tag, ok := t.Get(name)
	return ok && tag.DataType == dataTypeNumInGroup
}

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

// Package emit produces the four code artifacts described in spec
// §4.6: the tag and message-type enums, the per-group/message tag-info
// and group-info tables, and the common block table. Package dispatch
// handles the fifth artifact, the message-type trie.
package emit

import (
	"fmt"
	"sort"
	"strings"

	"fixgen/model"
)

// TagEnum renders the sorted tag enumeration: one line per tag,
// binding each symbol to its numeric value.
func TagEnum(tags *model.OrderedMap[string, model.Tag]) string {
	names := sortedCopy(tags.Keys())
	var b strings.Builder
	b.WriteString("typedef enum {\n")
	for i, name := range names {
		tag, _ := tags.Get(name)
		sep := ","
		if i == len(names)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    TAG_%s = %d%s\n", name, tag.Value, sep)
	}
	b.WriteString("} fix_tag;\n")
	return b.String()
}

// MsgTypeEnum renders the sorted message-type enumeration, each symbol
// annotated with its msgtype string in a trailing comment.
func MsgTypeEnum(messages []model.Message) string {
	sorted := append([]model.Message{}, messages...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var b strings.Builder
	b.WriteString("typedef enum {\n")
	for i, m := range sorted {
		sep := ","
		if i == len(sorted)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    MSGTYPE_%s%s /* %q */\n", m.Name, sep, m.MsgType)
	}
	b.WriteString("} fix_msgtype;\n")
	return b.String()
}

func sortedCopy(in []string) []string {
	out := append([]string{}, in...)
	sort.Strings(out)
	return out
}

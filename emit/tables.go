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

package emit

import (
	"fmt"
	"strings"

	"fixgen/model"
)

// tagInfoLine renders one entry's tag-info macro invocation. index is
// the entry's zero-based block position, already offset by the
// applicable common-block length.
func tagInfoLine(e model.Entry, index int) string {
	switch e.Kind {
	case model.EntryData:
		return fmt.Sprintf("    BIN_TAG_INFO(%s, %d, %d)", e.Name, e.Tag.LengthTagValue, index)
	case model.EntryGroup:
		return fmt.Sprintf("    GRP_TAG_INFO(%s, %d)", e.SizeTagName, index)
	default:
		return fmt.Sprintf("    REG_TAG_INFO(%s, %d)", e.Name, index)
	}
}

// TagInfo renders a block's tag-info table, with index offset by
// offset (0 for groups/common, len(common) for messages).
func TagInfo(name string, b model.Block, offset int) string {
	var out strings.Builder
	fmt.Fprintf(&out, "static const tag_info %s_tag_info[] = {\n", name)
	for i, e := range b {
		out.WriteString(tagInfoLine(e, i+offset))
		out.WriteString(",\n")
	}
	fmt.Fprintf(&out, "};\n")
	return out.String()
}

// nestedGroups returns the canonical names of every group entry
// directly referenced by b, in block order.
func nestedGroups(b model.Block) []string {
	var out []string
	for _, e := range b {
		if e.Kind == model.EntryGroup {
			out = append(out, e.CanonicalName)
		}
	}
	return out
}

// GroupInfo renders a block's group-info table: the nested groups it
// references directly (an array of group_info pointers plus a
// GROUP_INFO_FUNC wrapper), or EMPTY_GROUP_INFO parameterized by block
// length and the block's first tag identifier if it references none
// (spec §4.6).
func GroupInfo(name string, b model.Block) string {
	nested := nestedGroups(b)
	if len(nested) == 0 {
		return fmt.Sprintf("#define %s_group_info_func EMPTY_GROUP_INFO(%d, %s)\n", name, len(b), model.FirstTagIdent(b))
	}

	var out strings.Builder
	fmt.Fprintf(&out, "static const group_info *%s_group_info[] = {\n", name)
	for _, g := range nested {
		fmt.Fprintf(&out, "    &%s_group,\n", g)
	}
	out.WriteString("};\n")
	fmt.Fprintf(&out, "GROUP_INFO_FUNC(%s)\n", name)
	return out.String()
}

// commonGroupInfo renders the common block's group-info: a direct
// GROUP_INFO_FUNC body listing nested groups, or a plain macro alias
// to the runtime's empty implementation if there are none — unlike a
// group/message block's EMPTY_GROUP_INFO, the common block is never
// itself sized or anchored by a first-tag identifier, so the alias
// takes no parameters (spec §4.6).
func commonGroupInfo(b model.Block) string {
	nested := nestedGroups(b)
	if len(nested) == 0 {
		return "#define common_group_info_func empty_group_info_func\n"
	}

	var out strings.Builder
	out.WriteString("static const group_info *common_group_info[] = {\n")
	for _, g := range nested {
		fmt.Fprintf(&out, "    &%s_group,\n", g)
	}
	out.WriteString("};\n")
	out.WriteString("GROUP_INFO_FUNC(common)\n")
	return out.String()
}

// GroupTable renders the per-group tag-info and group-info tables for
// every group in groups, which must already be in dependency order
// (nested before enclosing).
func GroupTable(groups *model.OrderedMap[string, model.Group]) string {
	var out strings.Builder
	for _, name := range groups.Keys() {
		g, _ := groups.Get(name)
		out.WriteString(TagInfo(name, g.Body, 0))
		out.WriteString(GroupInfo(name, g.Body))
		fmt.Fprintf(&out, "static const group_info %s_group = { %q, %s_tag_info, %d, %s_group_info_func };\n\n",
			name, name, name, len(g.Body), name)
	}
	return out.String()
}

// CommonTable renders the common block's tag-info table and its
// group-info (direct GROUP_INFO_FUNC body, or the empty alias).
func CommonTable(common model.Block) string {
	var out strings.Builder
	out.WriteString(TagInfo("common", common, 0))
	out.WriteString(commonGroupInfo(common))
	return out.String()
}

// MessageTables renders the per-message tag-info and group-info
// tables. Each message's indices are offset by len(common) so message
// entries are numbered after the common prefix.
func MessageTables(messages []model.Message, commonLen int) string {
	var out strings.Builder
	for _, m := range messages {
		out.WriteString(TagInfo(m.Name, m.Block, commonLen))
		out.WriteString(GroupInfo(m.Name, m.Block))
		fmt.Fprintf(&out, "static const message_info %s_message = { %q, %s_tag_info, %d, %s_group_info_func };\n\n",
			m.Name, m.Name, m.Name, len(m.Block)+commonLen, m.Name)
	}
	return out.String()
}

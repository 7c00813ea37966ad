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

// Package xmlload parses the input FIX dictionary into a generic
// element tree and extracts the root's version triple. It is
// deliberately thin: encoding/xml already guarantees well-formedness
// and attribute decoding, so this package does not reimplement a
// scanner (see DeltaTestSoftware's xml2go for the same generic
// name/attributes/children shape this mirrors, here as
// XMLName/Attrs/Children).
package xmlload

import (
	"encoding/xml"
	"fmt"
	"io"

	"fixgen/fixerr"
)

// Node is a generic XML element: a name, its attributes, and its
// element children in document order. Character data is not modeled;
// this dictionary format carries all information in attributes.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []Node     `xml:",any"`
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// FindChild returns the first direct child element named name, or nil.
func (n *Node) FindChild(name string) *Node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

// ChildrenNamed returns every direct child element named name, as
// pointers into n's own Children slice.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// Version is the FIX version triple declared on the root element.
type Version struct {
	Type  string
	Major string
	Minor string
}

// String renders the version as "type.major.minor", the emitted FIX
// version tag.
func (v Version) String() string {
	return fmt.Sprintf("%s.%s.%s", v.Type, v.Major, v.Minor)
}

// Load parses r as the FIX dictionary root element and extracts its
// version triple. The root must be named "fix" and carry type, major,
// and minor attributes.
func Load(r io.Reader) (*Node, Version, error) {
	var root Node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, Version{}, fixerr.Wrap(fixerr.XmlParse, "", nil, "failed to parse input XML", err)
	}

	if root.XMLName.Local != "fix" {
		return nil, Version{}, fixerr.BadRootErr(root.XMLName.Local)
	}

	v := Version{Type: root.Attr("type"), Major: root.Attr("major"), Minor: root.Attr("minor")}
	for _, attr := range []struct{ name, val string }{{"type", v.Type}, {"major", v.Major}, {"minor", v.Minor}} {
		if attr.val == "" {
			return nil, Version{}, fixerr.MissingRootAttrErr(attr.name)
		}
	}

	return &root, v, nil
}

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

// Package fixerr defines the fatal error taxonomy used across every
// compiler stage. Every error fixgen can produce is one Kind below;
// none are recovered locally, they all surface to the process boundary.
package fixerr

import "fmt"

type Kind int

const (
	IO Kind = iota
	XmlParse
	BadRoot
	MissingRootAttr
	InvalidTagNumber
	NoFields
	MissingLengthTag
	UnknownNode
	DuplicateTag
	EmptyBlock
	UnknownComponent
	CycleSuspected
	LengthDataMismatch
	UnexpectedDataTag
	InvalidHeader
	HeaderTooShort
	InvalidTrailer
	DuplicateMsgType
	BadOutputDir
	EmptyFieldName
	EmptyMsgType
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "IO"
	case XmlParse:
		return "XmlParse"
	case BadRoot:
		return "BadRoot"
	case MissingRootAttr:
		return "MissingRootAttr"
	case InvalidTagNumber:
		return "InvalidTagNumber"
	case NoFields:
		return "NoFields"
	case MissingLengthTag:
		return "MissingLengthTag"
	case UnknownNode:
		return "UnknownNode"
	case DuplicateTag:
		return "DuplicateTag"
	case EmptyBlock:
		return "EmptyBlock"
	case UnknownComponent:
		return "UnknownComponent"
	case CycleSuspected:
		return "CycleSuspected"
	case LengthDataMismatch:
		return "LengthDataMismatch"
	case UnexpectedDataTag:
		return "UnexpectedDataTag"
	case InvalidHeader:
		return "InvalidHeader"
	case HeaderTooShort:
		return "HeaderTooShort"
	case InvalidTrailer:
		return "InvalidTrailer"
	case DuplicateMsgType:
		return "DuplicateMsgType"
	case BadOutputDir:
		return "BadOutputDir"
	case EmptyFieldName:
		return "EmptyFieldName"
	case EmptyMsgType:
		return "EmptyMsgType"
	default:
		return "Unknown"
	}
}

// Error is a fatal, single-shot compiler error. Path holds the enclosing
// block scope (message/group names) for errors raised mid-block; it is
// nil for errors that aren't scoped to a block.
type Error struct {
	Kind Kind
	Name string
	Path []string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	scope := ""
	if len(e.Path) > 0 {
		scope = fmt.Sprintf(" in %v", e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("ERROR: %s: %s%s: %v", e.Kind, e.Msg, scope, e.Err)
	}
	return fmt.Sprintf("ERROR: %s: %s%s", e.Kind, e.Msg, scope)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, name string, path []string, msg string) *Error {
	return &Error{Kind: kind, Name: name, Path: path, Msg: msg}
}

func Wrap(kind Kind, name string, path []string, msg string, err error) *Error {
	return &Error{Kind: kind, Name: name, Path: path, Msg: msg, Err: err}
}

func InvalidTagNumberErr(name, number string) *Error {
	return New(InvalidTagNumber, name, nil, fmt.Sprintf("field %q has non-integer number %q", name, number))
}

func NoFieldsErr() *Error {
	return New(NoFields, "", nil, "dictionary declares zero fields")
}

func MissingLengthTagErr(dataName string) *Error {
	return New(MissingLengthTag, dataName, nil, fmt.Sprintf("DATA field %q has no LENGTH companion (tried %q, %q)", dataName, dataName+"Len", dataName+"Length"))
}

func UnknownNodeErr(path []string, name string) *Error {
	return New(UnknownNode, name, path, fmt.Sprintf("field %q is not declared in <fields>", name))
}

func DuplicateTagErr(path []string, name string) *Error {
	return New(DuplicateTag, name, path, fmt.Sprintf("name %q appears twice in block", name))
}

func EmptyBlockErr(path []string) *Error {
	return New(EmptyBlock, "", path, "block has no entries")
}

func UnknownComponentErr(path []string, name string) *Error {
	return New(UnknownComponent, name, path, fmt.Sprintf("component %q does not resolve", name))
}

func CycleSuspectedErr(path []string, name string) *Error {
	return New(CycleSuspected, name, path, fmt.Sprintf("expansion of %q re-enters itself or exceeds depth limit, suspected cycle", name))
}

func LengthDataMismatchErr(path []string, lengthTag, dataTag string) *Error {
	return New(LengthDataMismatch, dataTag, path, fmt.Sprintf("length tag %q is not immediately followed by its data tag %q", lengthTag, dataTag))
}

func UnexpectedDataTagErr(path []string, name string) *Error {
	return New(UnexpectedDataTag, name, path, fmt.Sprintf("data tag %q appears without a preceding length tag", name))
}

func InvalidHeaderErr(position int, found, expected string) *Error {
	return New(InvalidHeader, found, nil, fmt.Sprintf("header entry %d is %q, expected %q", position, found, expected))
}

func HeaderTooShortErr() *Error {
	return New(HeaderTooShort, "", nil, "header has fewer than three leading entries")
}

func InvalidTrailerErr(reason string) *Error {
	return New(InvalidTrailer, "", nil, reason)
}

func DuplicateMsgTypeErr(name, msgtype string) *Error {
	return New(DuplicateMsgType, name, nil, fmt.Sprintf("msgtype %q is already used by another message", msgtype))
}

func BadOutputDirErr(flag, dir string) *Error {
	return New(BadOutputDir, dir, nil, fmt.Sprintf("%s %q does not exist or is not a directory", flag, dir))
}

func BadRootErr(tag string) *Error {
	return New(BadRoot, tag, nil, fmt.Sprintf("root element is %q, expected <fix>", tag))
}

func MissingRootAttrErr(attr string) *Error {
	return New(MissingRootAttr, attr, nil, fmt.Sprintf("root element is missing required attribute %q", attr))
}

func EmptyFieldNameErr(number string) *Error {
	return New(EmptyFieldName, "", nil, fmt.Sprintf("field number %q has an empty or missing name attribute", number))
}

func EmptyMsgTypeErr(name string) *Error {
	return New(EmptyMsgType, name, nil, fmt.Sprintf("message %q has an empty msgtype", name))
}

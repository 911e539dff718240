// Copyright 2025 The abikit Authors
// This file is part of the abikit library.
//
// The abikit library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The abikit library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the abikit library. If not, see <http://www.gnu.org/licenses/>.

// 版权所有 2025 The abikit Authors
// 此文件是 abikit 库的一部分。
//
// abikit 库是免费软件：您可以根据自由软件基金会发布的 GNU 宽通用公共许可证的条款重新分发和/或修改它，
// 可以是许可证的第 3 版，也可以是（由您选择）任何更高版本。
//
// abikit 库的发布是希望它能有用，但没有任何保证；甚至没有对适销性或特定用途适用性的默示保证。
// 有关更多详细信息，请参阅 GNU 宽通用公共许可证。
//
// 您应该已经随 abikit 库收到一份 GNU 宽通用公共许可证的副本。如果没有，请参阅 <http://www.gnu.org/licenses/>。

package abi

import (
	"fmt"
	"strings"
)

// FormatMethod renders a method back into its human readable signature form.
// The output is accepted verbatim by ParseSignatures, with tuples rendered
// inline, so format and parse round-trip.
// FormatMethod 将方法渲染回其人类可读的签名形式。
// 输出可以被 ParseSignatures 原样接受，元组以内联方式渲染，
// 因此 format 和 parse 可以往返。
func FormatMethod(method Method) string {
	switch method.Type {
	case Constructor:
		s := fmt.Sprintf("constructor(%s)", formatArguments(method.Inputs, false))
		if method.StateMutability == "payable" {
			s += " payable"
		}
		return s
	case Fallback:
		s := "fallback() external"
		if method.StateMutability == "payable" {
			s += " payable"
		}
		return s
	case Receive:
		return "receive() external payable"
	}
	s := fmt.Sprintf("function %s(%s)", method.RawName, formatArguments(method.Inputs, false))
	// nonpayable is the implied default and never printed
	// nonpayable 是隐含的默认值，从不打印
	if method.StateMutability != "" && method.StateMutability != "nonpayable" {
		s += " " + method.StateMutability
	}
	if len(method.Outputs) > 0 {
		s += fmt.Sprintf(" returns (%s)", formatArguments(method.Outputs, false))
	}
	return s
}

// FormatEvent renders an event back into its human readable signature form,
// keeping the indexed markers.
// FormatEvent 将事件渲染回其人类可读的签名形式，保留 indexed 标记。
func FormatEvent(event Event) string {
	return fmt.Sprintf("event %s(%s)", event.RawName, formatArguments(event.Inputs, true))
}

// FormatError renders a custom error back into its human readable signature form.
// FormatError 将自定义错误渲染回其人类可读的签名形式。
func FormatError(e Error) string {
	return fmt.Sprintf("error %s(%s)", e.Name, formatArguments(e.Inputs, false))
}

// canonicalSignature builds the selector preimage of an item: the raw name
// followed by the comma joined canonical types, e.g. "transfer(address,uint256)".
// Selectors and topic hashes are Keccak-256 over exactly this text.
// canonicalSignature 构建条目的选择器原像：原始名称后跟以逗号连接的规范类型，
// 例如 "transfer(address,uint256)"。选择器和主题哈希正是对这段文本做 Keccak-256。
func canonicalSignature(rawName string, inputs Arguments) string {
	types := make([]string, len(inputs))
	for i, input := range inputs {
		types[i] = input.Type.String()
	}
	return fmt.Sprintf("%s(%s)", rawName, strings.Join(types, ","))
}

func formatArguments(args Arguments, withIndexed bool) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = formatArgument(arg, withIndexed)
	}
	return strings.Join(parts, ", ")
}

func formatArgument(arg Argument, withIndexed bool) string {
	s := formatType(arg.Type)
	if withIndexed && arg.Indexed {
		s += " indexed"
	}
	if arg.Name != "" {
		s += " " + arg.Name
	}
	return s
}

// formatType renders a type in signature syntax. Unlike Type.String, tuples
// appear as parenthesised component lists carrying the component names, so
// the rendered text can be parsed again without the struct declarations.
// formatType 以签名语法渲染类型。与 Type.String 不同，
// 元组呈现为带有组件名称的括号组件列表，
// 因此渲染出的文本无需结构体声明即可再次解析。
func formatType(t Type) string {
	switch t.T {
	case SliceTy:
		return formatType(*t.Elem) + "[]"
	case ArrayTy:
		return fmt.Sprintf("%s[%d]", formatType(*t.Elem), t.Size)
	case TupleTy:
		parts := make([]string, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			parts[i] = formatType(*elem)
			if i < len(t.TupleRawNames) && t.TupleRawNames[i] != "" {
				parts[i] += " " + t.TupleRawNames[i]
			}
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return t.String()
	}
}

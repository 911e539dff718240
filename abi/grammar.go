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
	"regexp"
	"strings"
)

// The item matchers below anchor on the leading keyword of a human readable
// signature and capture the pieces through named groups. Solidity identifiers
// admit letters, digits, '$' and '_', never starting with a digit.
// 下面的条目匹配器锚定人类可读签名的前导关键字，并通过命名分组捕获各个部分。
// Solidity 标识符允许字母、数字、'$' 和 '_'，且不能以数字开头。
var (
	functionRegex    = regexp.MustCompile(`^function (?P<name>[a-zA-Z$_][a-zA-Z0-9$_]*)\((?P<parameters>.*?)\)(?: (?P<scope>external|public))?(?: (?P<stateMutability>pure|view|nonpayable|payable))?(?: returns\s?\((?P<returns>.*?)\))?$`)
	eventRegex       = regexp.MustCompile(`^event (?P<name>[a-zA-Z$_][a-zA-Z0-9$_]*)\((?P<parameters>.*?)\)$`)
	errorRegex       = regexp.MustCompile(`^error (?P<name>[a-zA-Z$_][a-zA-Z0-9$_]*)\((?P<parameters>.*?)\)$`)
	constructorRegex = regexp.MustCompile(`^constructor\((?P<parameters>.*?)\)(?:\s(?P<stateMutability>payable))?$`)
	fallbackRegex    = regexp.MustCompile(`^fallback\(\) external(?:\s(?P<stateMutability>payable))?$`)
	receiveRegex     = regexp.MustCompile(`^receive\(\) external payable$`)
	structRegex      = regexp.MustCompile(`^struct (?P<name>[a-zA-Z$_][a-zA-Z0-9$_]*) \{(?P<properties>.*?)\}$`)
)

// Parameter token matchers. A plain token is "type [array] [modifier] [name]",
// a tuple token wraps its components in parentheses in place of the type.
// 参数记号匹配器。普通记号为 "type [array] [modifier] [name]"，
// 元组记号用括号包裹其组件以代替类型。
var (
	parameterRegex      = regexp.MustCompile(`^(?P<type>[a-zA-Z$_][a-zA-Z0-9$_]*)(?P<array>(?:\[\d*?\])+?)?(?:\s(?P<modifier>calldata|indexed|memory|storage))?(?:\s(?P<name>[a-zA-Z$_][a-zA-Z0-9$_]*))?$`)
	tupleParameterRegex = regexp.MustCompile(`^\((?P<type>.+?)\)(?P<array>(?:\[\d*?\])+?)?(?:\s(?P<modifier>calldata|indexed|memory|storage))?(?:\s(?P<name>[a-zA-Z$_][a-zA-Z0-9$_]*))?$`)
	arraySuffixRegex    = regexp.MustCompile(`^(?P<type>[a-zA-Z$_][a-zA-Z0-9$_]*)(?P<array>(?:\[\d*?\])+)$`)
)

// Elementary solidity type matchers used to validate parsed type names.
// 用于验证解析出的类型名称的 Solidity 基本类型匹配器。
var (
	bytesTypeRegex   = regexp.MustCompile(`^bytes([1-9]|1[0-9]|2[0-9]|3[0-2])?$`)
	integerTypeRegex = regexp.MustCompile(`^u?int(8|16|24|32|40|48|56|64|72|80|88|96|104|112|120|128|136|144|152|160|168|176|184|192|200|208|216|224|232|240|248|256)?$`)
)

// execTyped applies re to s and returns the named captures, or nil when s does
// not match.
// execTyped 将 re 应用于 s 并返回命名捕获的分组，当 s 不匹配时返回 nil。
func execTyped(re *regexp.Regexp, s string) map[string]string {
	match := re.FindStringSubmatch(s)
	if match == nil {
		return nil
	}
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if i != 0 && name != "" {
			groups[name] = match[i]
		}
	}
	return groups
}

// isSolidityType reports whether typ names an elementary solidity type.
// isSolidityType 报告 typ 是否是 Solidity 基本类型的名称。
func isSolidityType(typ string) bool {
	switch typ {
	case "address", "bool", "function", "string":
		return true
	}
	return bytesTypeRegex.MatchString(typ) || integerTypeRegex.MatchString(typ)
}

// splitParameters splits a comma separated parameter list into its top level
// tokens. Commas inside parenthesised tuple components don't split; the depth
// counter tracks the nesting. Unbalanced parentheses abort the scan.
// splitParameters 将逗号分隔的参数列表拆分为其顶层记号。
// 括号内元组组件中的逗号不会拆分；深度计数器跟踪嵌套。不平衡的括号会中止扫描。
func splitParameters(params string) ([]string, error) {
	if strings.TrimSpace(params) == "" {
		return nil, nil
	}
	var (
		result  []string
		current string
		depth   int
	)
	for _, char := range params {
		switch {
		case char == ',' && depth == 0:
			result = append(result, strings.TrimSpace(current))
			current = ""
		case char == '(':
			depth++
			current += string(char)
		case char == ')':
			depth--
			if depth < 0 {
				return nil, &InvalidParenthesisError{Current: current + string(char), Depth: depth}
			}
			current += string(char)
		default:
			current += string(char)
		}
	}
	if depth != 0 {
		return nil, &InvalidParenthesisError{Current: current, Depth: depth}
	}
	return append(result, strings.TrimSpace(current)), nil
}

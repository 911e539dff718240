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
	"errors"
	"strings"
)

// ParseSignatures builds an ABI from human readable solidity signatures, e.g.
//
//	abi, err := ParseSignatures(
//		"struct Point { uint256 x; uint256 y; }",
//		"function locate(Point memory p) view returns (bool)",
//		"event Moved(address indexed who, Point p)",
//	)
//
// Struct declarations may appear anywhere in the list; they are collected
// before the remaining items are parsed. The resulting ABI behaves exactly
// like one decoded from the JSON form.
// ParseSignatures 从人类可读的 Solidity 签名构建 ABI。
// 结构体声明可以出现在列表中的任何位置；它们在解析其余条目之前被收集。
// 生成的 ABI 的行为与从 JSON 形式解码的 ABI 完全相同。
func ParseSignatures(signatures ...string) (ABI, error) {
	structs, err := parseStructs(signatures)
	if err != nil {
		return ABI{}, err
	}
	abi := ABI{
		Methods: make(map[string]Method),
		Events:  make(map[string]Event),
		Errors:  make(map[string]Error),
	}
	for _, signature := range signatures {
		signature = strings.TrimSpace(signature)
		switch {
		case strings.HasPrefix(signature, "struct "):
			// already collected
			// 已经收集
		case strings.HasPrefix(signature, "function "):
			groups := execTyped(functionRegex, signature)
			if groups == nil {
				return ABI{}, &InvalidSignatureError{Kind: "function", Signature: signature}
			}
			inputs, err := parseParameterList(groups["parameters"], contextFunction, structs)
			if err != nil {
				return ABI{}, err
			}
			outputs, err := parseParameterList(groups["returns"], contextFunction, structs)
			if err != nil {
				return ABI{}, err
			}
			mutability := groups["stateMutability"]
			if mutability == "" {
				mutability = "nonpayable"
			}
			rawName := groups["name"]
			name := ResolveNameConflict(rawName, func(s string) bool { _, ok := abi.Methods[s]; return ok })
			abi.Methods[name] = NewMethod(name, rawName, Function, mutability, false, false, inputs, outputs)
		case strings.HasPrefix(signature, "event "):
			groups := execTyped(eventRegex, signature)
			if groups == nil {
				return ABI{}, &InvalidSignatureError{Kind: "event", Signature: signature}
			}
			inputs, err := parseParameterList(groups["parameters"], contextEvent, structs)
			if err != nil {
				return ABI{}, err
			}
			rawName := groups["name"]
			name := ResolveNameConflict(rawName, func(s string) bool { _, ok := abi.Events[s]; return ok })
			abi.Events[name] = NewEvent(name, rawName, false, inputs)
		case strings.HasPrefix(signature, "error "):
			groups := execTyped(errorRegex, signature)
			if groups == nil {
				return ABI{}, &InvalidSignatureError{Kind: "error", Signature: signature}
			}
			inputs, err := parseParameterList(groups["parameters"], contextError, structs)
			if err != nil {
				return ABI{}, err
			}
			abi.Errors[groups["name"]] = NewError(groups["name"], inputs)
		case strings.HasPrefix(signature, "constructor("):
			groups := execTyped(constructorRegex, signature)
			if groups == nil {
				return ABI{}, &InvalidSignatureError{Kind: "constructor", Signature: signature}
			}
			inputs, err := parseParameterList(groups["parameters"], contextConstructor, structs)
			if err != nil {
				return ABI{}, err
			}
			mutability := groups["stateMutability"]
			if mutability == "" {
				mutability = "nonpayable"
			}
			abi.Constructor = NewMethod("", "", Constructor, mutability, false, false, inputs, nil)
		case strings.HasPrefix(signature, "fallback("):
			groups := execTyped(fallbackRegex, signature)
			if groups == nil {
				return ABI{}, &InvalidSignatureError{Kind: "fallback", Signature: signature}
			}
			if abi.HasFallback() {
				return ABI{}, errors.New("only single fallback is allowed")
			}
			mutability := groups["stateMutability"]
			if mutability == "" {
				mutability = "nonpayable"
			}
			abi.Fallback = NewMethod("", "", Fallback, mutability, false, false, nil, nil)
		case strings.HasPrefix(signature, "receive("):
			if !receiveRegex.MatchString(signature) {
				return ABI{}, &InvalidSignatureError{Kind: "receive", Signature: signature}
			}
			if abi.HasReceive() {
				return ABI{}, errors.New("only single receive is allowed")
			}
			abi.Receive = NewMethod("", "", Receive, "payable", false, false, nil, nil)
		default:
			return ABI{}, &UnknownSignatureError{Signature: signature}
		}
	}
	return abi, nil
}

// ParseParameters parses a comma separated parameter list in function context,
// e.g. "address to, uint256 amount". It is handy for building Arguments for
// one-off packing without declaring a full signature.
// ParseParameters 在函数上下文中解析逗号分隔的参数列表，
// 例如 "address to, uint256 amount"。
// 它便于为一次性打包构建 Arguments 而无需声明完整的签名。
func ParseParameters(list string) (Arguments, error) {
	return parseParameterList(list, contextFunction, nil)
}

// parseParameterList splits list, parses each token in ctx and converts the
// result into typed Arguments.
// parseParameterList 拆分 list，在 ctx 中解析每个记号并将结果转换为带类型的 Arguments。
func parseParameterList(list string, ctx parameterContext, structs structLookup) (Arguments, error) {
	params, err := splitParameters(list)
	if err != nil {
		return nil, err
	}
	marshaling := make([]ArgumentMarshaling, 0, len(params))
	for _, param := range params {
		arg, err := parseParameter(param, ctx, structs)
		if err != nil {
			return nil, err
		}
		marshaling = append(marshaling, arg)
	}
	return marshalingToArguments(marshaling)
}

// marshalingToArguments materializes parsed parameters into Arguments by
// running each through the type constructor.
// marshalingToArguments 通过类型构造器将解析出的参数实体化为 Arguments。
func marshalingToArguments(marshaling []ArgumentMarshaling) (Arguments, error) {
	args := make(Arguments, 0, len(marshaling))
	for _, m := range marshaling {
		typ, err := NewType(m.Type, m.InternalType, m.Components)
		if err != nil {
			return nil, err
		}
		args = append(args, Argument{Name: m.Name, Type: typ, Indexed: m.Indexed})
	}
	return args, nil
}

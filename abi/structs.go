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
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// parseStructs collects every struct declaration from signatures and resolves
// struct-typed properties into tuple components. It works in two passes:
// the first pass parses each declaration shallowly, leaving struct references
// as bare type names; the second pass substitutes the references, tracking the
// ancestor chain so mutually recursive declarations fail instead of looping.
// parseStructs 从签名中收集每个结构体声明，并将结构体类型的属性解析为元组组件。
// 它分两遍工作：第一遍浅层解析每个声明，将结构体引用保留为裸类型名称；
// 第二遍替换这些引用，并跟踪祖先链，使相互递归的声明失败而不是无限循环。
func parseStructs(signatures []string) (structLookup, error) {
	shallow := make(structLookup)
	for _, signature := range signatures {
		if !strings.HasPrefix(signature, "struct ") {
			continue
		}
		groups := execTyped(structRegex, signature)
		if groups == nil {
			return nil, &InvalidSignatureError{Kind: "struct", Signature: signature}
		}
		var components []ArgumentMarshaling
		for _, property := range strings.Split(groups["properties"], ";") {
			property = strings.TrimSpace(property)
			if property == "" {
				continue
			}
			component, err := parseParameter(property, contextStruct, nil)
			if err != nil {
				return nil, err
			}
			components = append(components, component)
		}
		if len(components) == 0 {
			return nil, &InvalidStructSignatureError{Signature: signature}
		}
		shallow[groups["name"]] = components
	}

	resolved := make(structLookup, len(shallow))
	for name, components := range shallow {
		ancestors := mapset.NewThreadUnsafeSet(name)
		comps, err := resolveStructs(components, shallow, ancestors)
		if err != nil {
			return nil, err
		}
		resolved[name] = comps
	}
	return resolved, nil
}

// resolveStructs substitutes struct references inside components, returning a
// fresh slice. ancestors holds the names on the current substitution path; a
// reference back into it is a cycle and the struct cannot be finitely encoded.
// resolveStructs 替换组件内的结构体引用，返回一个新的切片。
// ancestors 保存当前替换路径上的名称；引用回该路径即为循环，
// 该结构体无法被有限地编码。
func resolveStructs(components []ArgumentMarshaling, structs structLookup, ancestors mapset.Set[string]) ([]ArgumentMarshaling, error) {
	resolved := make([]ArgumentMarshaling, 0, len(components))
	for _, component := range components {
		if len(component.Components) > 0 {
			// inline tuple property: resolve its components in place
			// 内联元组属性：就地解析其组件
			comps, err := resolveStructs(component.Components, structs, ancestors)
			if err != nil {
				return nil, err
			}
			component.Components = comps
			resolved = append(resolved, component)
			continue
		}
		base, array := component.Type, ""
		if groups := execTyped(arraySuffixRegex, component.Type); groups != nil {
			base, array = groups["type"], groups["array"]
		}
		if isSolidityType(base) {
			resolved = append(resolved, component)
			continue
		}
		if ancestors.Contains(base) {
			return nil, &CircularReferenceError{Type: base}
		}
		sub, ok := structs[base]
		if !ok {
			return nil, &UnknownTypeError{Type: base}
		}
		ancestors.Add(base)
		comps, err := resolveStructs(sub, structs, ancestors)
		if err != nil {
			return nil, err
		}
		ancestors.Remove(base)
		resolved = append(resolved, ArgumentMarshaling{
			Name:         component.Name,
			Type:         "tuple" + array,
			InternalType: "struct " + base + array,
			Components:   comps,
			Indexed:      component.Indexed,
		})
	}
	return resolved, nil
}

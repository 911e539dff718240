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

	mapset "github.com/deckarep/golang-set/v2"
)

// parameterContext tells the parameter parser which item kind the parameter
// belongs to. Modifier validity depends on it: "indexed" exists only inside
// events, data locations only inside functions, errors and constructors.
// parameterContext 告诉参数解析器该参数属于哪种条目。
// 修饰符的有效性取决于它："indexed" 仅存在于事件中，
// 数据位置修饰符仅存在于函数、错误和构造函数中。
type parameterContext byte

const (
	contextNone parameterContext = iota
	contextFunction
	contextEvent
	contextError
	contextConstructor
	contextStruct
)

func (ctx parameterContext) String() string {
	switch ctx {
	case contextFunction:
		return "function"
	case contextEvent:
		return "event"
	case contextError:
		return "error"
	case contextConstructor:
		return "constructor"
	case contextStruct:
		return "struct"
	default:
		return "parameter"
	}
}

var (
	// eventModifiers 事件参数允许的修饰符
	eventModifiers = mapset.NewSet("indexed")
	// functionModifiers 函数、错误和构造函数参数允许的数据位置修饰符
	functionModifiers = mapset.NewSet("calldata", "memory", "storage")
)

// protectedKeywords are solidity reserved words that cannot name a parameter.
// protectedKeywords 是不能用作参数名称的 Solidity 保留字。
var protectedKeywords = mapset.NewSet(
	"alias", "apply", "auto", "byte", "calldata", "constant", "copyof",
	"default", "defined", "error", "event", "external", "false", "final",
	"function", "immutable", "implements", "in", "indexed", "inline",
	"internal", "let", "mapping", "match", "memory", "mutable", "null", "of",
	"override", "partial", "private", "promise", "public", "pure", "reference",
	"relocatable", "return", "returns", "sizeof", "static", "storage",
	"struct", "super", "supports", "switch", "this", "true", "typedef",
	"typeof", "var", "view", "virtual",
)

// structLookup maps a declared struct name to its parsed components.
// structLookup 将声明的结构体名称映射到其解析后的组件。
type structLookup map[string][]ArgumentMarshaling

// parseParameter parses one parameter token ("uint256 amount",
// "address payable to", "(uint256 x, uint256 y)[] points", "Point p") into
// its marshaling form. Struct references resolve through the structs table;
// an empty table with a known elementary type hits the shared cache instead.
// parseParameter 将一个参数记号（"uint256 amount"、"address payable to"、
// "(uint256 x, uint256 y)[] points"、"Point p"）解析为其序列化形式。
// 结构体引用通过 structs 表解析；表为空时已知的基本类型会命中共享缓存。
func parseParameter(param string, ctx parameterContext, structs structLookup) (ArgumentMarshaling, error) {
	param = strings.TrimSpace(param)

	// Cached entries never embed struct components, so the cache is only
	// consulted when no struct table is in play.
	// 缓存条目从不嵌入结构体组件，因此只有在没有结构体表参与时才查询缓存。
	cacheKey := fmt.Sprintf("%d:%s", ctx, param)
	if len(structs) == 0 {
		if cached, ok := parameterCache.Get(cacheKey); ok {
			return cached, nil
		}
	}

	// "address payable" collapses to plain "address" in the canonical ABI.
	// Only rewrite when the phrase is the whole type, not a name prefix.
	// "address payable" 在规范 ABI 中折叠为普通的 "address"。
	// 仅当该短语是完整类型而非名称前缀时才重写。
	if rest, ok := strings.CutPrefix(param, "address payable"); ok {
		if rest == "" || rest[0] == ' ' || rest[0] == '[' {
			param = "address" + rest
		}
	}

	var (
		groups  map[string]string
		isTuple bool
	)
	if strings.HasPrefix(param, "(") {
		groups = execTyped(tupleParameterRegex, param)
		isTuple = true
	} else {
		groups = execTyped(parameterRegex, param)
	}
	if groups == nil {
		return ArgumentMarshaling{}, &InvalidParameterError{Param: param}
	}
	var (
		typ      = groups["type"]
		array    = groups["array"]
		modifier = groups["modifier"]
		name     = groups["name"]
	)
	if name != "" && protectedKeywords.Contains(name) {
		return ArgumentMarshaling{}, &SolidityProtectedKeywordError{Param: param, Keyword: name}
	}

	// struct reference: substitute the declared components
	// 结构体引用：替换为声明的组件
	components, isStruct := structs[typ]

	if modifier != "" {
		switch ctx {
		case contextEvent:
			if !eventModifiers.Contains(modifier) {
				return ArgumentMarshaling{}, &InvalidModifierError{Modifier: modifier, Context: ctx.String(), Param: param}
			}
		case contextFunction, contextError, contextConstructor:
			if !functionModifiers.Contains(modifier) {
				return ArgumentMarshaling{}, &InvalidModifierError{Modifier: modifier, Context: ctx.String(), Param: param}
			}
			// data locations attach to reference types only
			// 数据位置修饰符仅附加于引用类型
			if array == "" && !isTuple && !isStruct && typ != "bytes" && typ != "string" {
				return ArgumentMarshaling{}, &InvalidFunctionModifierError{Modifier: modifier, Type: typ, Param: param}
			}
		default:
			return ArgumentMarshaling{}, &InvalidModifierError{Modifier: modifier, Context: ctx.String(), Param: param}
		}
	}
	indexed := modifier == "indexed"

	var arg ArgumentMarshaling
	switch {
	case isTuple:
		// inline tuple: parse the inner list recursively
		// 内联元组：递归解析内部列表
		inner, err := splitParameters(typ)
		if err != nil {
			return ArgumentMarshaling{}, err
		}
		comps := make([]ArgumentMarshaling, 0, len(inner))
		for _, p := range inner {
			comp, err := parseParameter(p, contextNone, structs)
			if err != nil {
				return ArgumentMarshaling{}, err
			}
			comps = append(comps, comp)
		}
		arg = ArgumentMarshaling{
			Name:       name,
			Type:       "tuple" + array,
			Components: comps,
			Indexed:    indexed,
		}
	case isStruct:
		arg = ArgumentMarshaling{
			Name:         name,
			Type:         "tuple" + array,
			InternalType: "struct " + typ + array,
			Components:   components,
			Indexed:      indexed,
		}
	default:
		// bare uint/int default to their 256-bit canonical form
		// 裸 uint/int 默认为其 256 位规范形式
		if typ == "uint" || typ == "int" {
			typ += "256"
		}
		if !isSolidityType(typ) && ctx != contextStruct {
			return ArgumentMarshaling{}, &UnknownSolidityTypeError{Type: typ}
		}
		arg = ArgumentMarshaling{
			Name:    name,
			Type:    typ + array,
			Indexed: indexed,
		}
	}
	if len(structs) == 0 {
		parameterCache.Add(cacheKey, arg)
	}
	return arg, nil
}

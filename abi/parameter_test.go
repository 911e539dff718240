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

package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseParameterNormalization covers the shorthand rewrites.
// TestParseParameterNormalization 涵盖简写形式的重写。
func TestParseParameterNormalization(t *testing.T) {
	t.Parallel()
	for _, tt := range []struct {
		param string
		want  ArgumentMarshaling
	}{
		{"uint", ArgumentMarshaling{Type: "uint256"}},
		{"int amount", ArgumentMarshaling{Name: "amount", Type: "int256"}},
		{"uint[] values", ArgumentMarshaling{Name: "values", Type: "uint256[]"}},
		{"address payable", ArgumentMarshaling{Type: "address"}},
		{"address payable owner", ArgumentMarshaling{Name: "owner", Type: "address"}},
		{"address payable[2] owners", ArgumentMarshaling{Name: "owners", Type: "address[2]"}},
		{"bytes32[] calldata hashes", ArgumentMarshaling{Name: "hashes", Type: "bytes32[]"}},
		{"string memory s", ArgumentMarshaling{Name: "s", Type: "string"}},
		{"  bool ok  ", ArgumentMarshaling{Name: "ok", Type: "bool"}},
	} {
		got, err := parseParameter(tt.param, contextFunction, nil)
		require.NoError(t, err, tt.param)
		require.Equal(t, tt.want, got, tt.param)
	}
}

// TestParseParameterTuple parses inline tuples recursively.
// TestParseParameterTuple 递归解析内联元组。
func TestParseParameterTuple(t *testing.T) {
	t.Parallel()
	got, err := parseParameter("(uint256 x, (bool ok, string msg)[] inner) data", contextFunction, nil)
	require.NoError(t, err)
	require.Equal(t, ArgumentMarshaling{
		Name: "data",
		Type: "tuple",
		Components: []ArgumentMarshaling{
			{Name: "x", Type: "uint256"},
			{Name: "inner", Type: "tuple[]", Components: []ArgumentMarshaling{
				{Name: "ok", Type: "bool"},
				{Name: "msg", Type: "string"},
			}},
		},
	}, got)
}

// TestParseParameterStructReference substitutes resolved struct components.
// TestParseParameterStructReference 替换已解析的结构体组件。
func TestParseParameterStructReference(t *testing.T) {
	t.Parallel()
	structs := structLookup{
		"Point": {
			{Name: "x", Type: "uint256"},
			{Name: "y", Type: "uint256"},
		},
	}
	got, err := parseParameter("Point[] path", contextFunction, structs)
	require.NoError(t, err)
	require.Equal(t, "tuple[]", got.Type)
	require.Equal(t, "struct Point[]", got.InternalType)
	require.Len(t, got.Components, 2)
}

// TestParseParameterModifiers checks indexed and data-location validity per
// context.
// TestParseParameterModifiers 按上下文检查 indexed 和数据位置修饰符的有效性。
func TestParseParameterModifiers(t *testing.T) {
	t.Parallel()
	got, err := parseParameter("uint256 indexed from", contextEvent, nil)
	require.NoError(t, err)
	require.True(t, got.Indexed)
	require.Equal(t, "uint256", got.Type)

	var invalidModifier *InvalidModifierError
	_, err = parseParameter("uint256 indexed from", contextFunction, nil)
	require.ErrorAs(t, err, &invalidModifier)
	require.Equal(t, "indexed", invalidModifier.Modifier)

	_, err = parseParameter("string memory s", contextEvent, nil)
	require.ErrorAs(t, err, &invalidModifier)

	// data locations attach to reference types only
	// 数据位置修饰符仅附加于引用类型
	var invalidFnModifier *InvalidFunctionModifierError
	_, err = parseParameter("uint256 memory x", contextFunction, nil)
	require.ErrorAs(t, err, &invalidFnModifier)
	require.Equal(t, "memory", invalidFnModifier.Modifier)

	_, err = parseParameter("bytes memory blob", contextFunction, nil)
	require.NoError(t, err)
	_, err = parseParameter("uint256[] storage xs", contextFunction, nil)
	require.NoError(t, err)
}

// TestParseParameterProtectedKeyword rejects reserved words as names.
// TestParseParameterProtectedKeyword 拒绝将保留字用作名称。
func TestParseParameterProtectedKeyword(t *testing.T) {
	t.Parallel()
	var protected *SolidityProtectedKeywordError
	_, err := parseParameter("uint256 mapping", contextFunction, nil)
	require.ErrorAs(t, err, &protected)
	require.Equal(t, "mapping", protected.Keyword)

	_, err = parseParameter("bool true", contextFunction, nil)
	require.ErrorAs(t, err, &protected)
}

// TestParseParameterUnknownType fails outside struct bodies and tolerates
// forward references inside them.
// TestParseParameterUnknownType 在结构体主体之外失败，
// 在其中容忍前向引用。
func TestParseParameterUnknownType(t *testing.T) {
	t.Parallel()
	var unknown *UnknownSolidityTypeError
	_, err := parseParameter("Widget w", contextFunction, nil)
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "Widget", unknown.Type)

	// struct bodies may reference structs declared later
	// 结构体主体可以引用稍后声明的结构体
	got, err := parseParameter("Widget w", contextStruct, nil)
	require.NoError(t, err)
	require.Equal(t, "Widget", got.Type)

	var invalidParam *InvalidParameterError
	_, err = parseParameter("123abc", contextFunction, nil)
	require.ErrorAs(t, err, &invalidParam)
}

// TestParseParameterCache verifies cached and uncached parses agree.
// TestParseParameterCache 验证缓存和未缓存的解析结果一致。
func TestParseParameterCache(t *testing.T) {
	t.Parallel()
	first, err := parseParameter("uint256 cachedValue", contextFunction, nil)
	require.NoError(t, err)
	second, err := parseParameter("uint256 cachedValue", contextFunction, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// the same text parses differently per context and must not collide
	// 相同文本在不同上下文中解析结果不同，且不得冲突
	_, err = parseParameter("uint256 indexed cachedValue", contextEvent, nil)
	require.NoError(t, err)
	_, err = parseParameter("uint256 indexed cachedValue", contextFunction, nil)
	require.Error(t, err)
}

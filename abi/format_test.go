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

// TestFormatMethod renders methods back to parseable signature text.
// TestFormatMethod 将方法渲染回可解析的签名文本。
func TestFormatMethod(t *testing.T) {
	t.Parallel()
	for _, tt := range []struct {
		signature string
		want      string
	}{
		{
			"function transfer(address to, uint256 amount) returns (bool)",
			"function transfer(address to, uint256 amount) returns (bool)",
		},
		{
			// nonpayable is implied and dropped
			// nonpayable 是隐含的并被省略
			"function burn(uint256 amount) nonpayable",
			"function burn(uint256 amount)",
		},
		{
			"function deposit() payable",
			"function deposit() payable",
		},
		{
			// shorthand integers normalize to their canonical width
			// 简写整数规范化为其标准位宽
			"function sum(uint a, int b) pure returns (int)",
			"function sum(uint256 a, int256 b) pure returns (int256)",
		},
	} {
		abi, err := ParseSignatures(tt.signature)
		require.NoError(t, err)
		for _, method := range abi.Methods {
			require.Equal(t, tt.want, FormatMethod(method))
		}
	}
}

// TestFormatSpecialFunctions renders constructor, fallback and receive.
// TestFormatSpecialFunctions 渲染构造函数、fallback 和 receive。
func TestFormatSpecialFunctions(t *testing.T) {
	t.Parallel()
	abi, err := ParseSignatures(
		"constructor(address owner) payable",
		"fallback() external payable",
		"receive() external payable",
	)
	require.NoError(t, err)
	require.Equal(t, "constructor(address owner) payable", FormatMethod(abi.Constructor))
	require.Equal(t, "fallback() external payable", FormatMethod(abi.Fallback))
	require.Equal(t, "receive() external payable", FormatMethod(abi.Receive))
}

// TestFormatEventAndError keeps indexed markers and component names.
// TestFormatEventAndError 保留 indexed 标记和组件名称。
func TestFormatEventAndError(t *testing.T) {
	t.Parallel()
	abi, err := ParseSignatures(
		"event Transfer(address indexed from, address indexed to, uint256 value)",
		"error InsufficientBalance(uint256 available, uint256 required)",
	)
	require.NoError(t, err)
	require.Equal(t,
		"event Transfer(address indexed from, address indexed to, uint256 value)",
		FormatEvent(abi.Events["Transfer"]))
	require.Equal(t,
		"error InsufficientBalance(uint256 available, uint256 required)",
		FormatError(abi.Errors["InsufficientBalance"]))
}

// TestFormatTupleInline renders struct parameters as inline tuples, which
// reparse without the struct declaration.
// TestFormatTupleInline 将结构体参数渲染为内联元组，
// 无需结构体声明即可重新解析。
func TestFormatTupleInline(t *testing.T) {
	t.Parallel()
	abi, err := ParseSignatures(
		"struct Point { uint256 x; uint256 y; }",
		"function setPoint(Point memory p)",
	)
	require.NoError(t, err)

	formatted := FormatMethod(abi.Methods["setPoint"])
	require.Equal(t, "function setPoint((uint256 x, uint256 y) p)", formatted)

	reparsed, err := ParseSignatures(formatted)
	require.NoError(t, err)
	require.Equal(t, abi.Methods["setPoint"].Sig, reparsed.Methods["setPoint"].Sig)
	require.Equal(t, abi.Methods["setPoint"].ID, reparsed.Methods["setPoint"].ID)
}

// TestStringMatchesFormat pins the cached String() of methods, events and
// errors to the formatter output, so the two renderings cannot drift apart
// (e.g. "returns (" with a space versus "returns(" without one).
// TestStringMatchesFormat 将方法、事件和错误的缓存 String()
// 与格式化器输出固定一致，使两种渲染不会各自漂移
// （例如带空格的 "returns (" 与不带空格的 "returns("）。
func TestStringMatchesFormat(t *testing.T) {
	t.Parallel()
	abi, err := ParseSignatures(
		"constructor(address owner) payable",
		"function transfer(address to, uint256 amount) returns (bool ok)",
		"function deposit() payable",
		"event Transfer(address indexed from, address indexed to, uint256 value)",
		"error InsufficientBalance(uint256 available, uint256 required)",
	)
	require.NoError(t, err)

	require.Equal(t, FormatMethod(abi.Constructor), abi.Constructor.String())
	for _, method := range abi.Methods {
		require.Equal(t, FormatMethod(method), method.String())
	}
	for _, event := range abi.Events {
		require.Equal(t, FormatEvent(event), event.String())
	}
	for _, abiErr := range abi.Errors {
		require.Equal(t, FormatError(abiErr), abiErr.String())
	}
	require.Equal(t,
		"function transfer(address to, uint256 amount) returns (bool ok)",
		abi.Methods["transfer"].String())
}

// TestFormatParseIdempotent checks format(parse(format(parse(s)))) is stable.
// TestFormatParseIdempotent 检查 format(parse(format(parse(s)))) 是稳定的。
func TestFormatParseIdempotent(t *testing.T) {
	t.Parallel()
	for _, signature := range []string{
		"function swap(uint256[] amounts, address[2] path) payable returns (uint256 out)",
		"event Approval(address indexed owner, address indexed spender, uint256 value)",
		"function nested((uint256 a, (bool ok, bytes raw) inner) thing) view",
	} {
		abi, err := ParseSignatures(signature)
		require.NoError(t, err)

		var once string
		for _, method := range abi.Methods {
			once = FormatMethod(method)
		}
		for _, event := range abi.Events {
			once = FormatEvent(event)
		}

		reparsed, err := ParseSignatures(once)
		require.NoError(t, err)

		var twice string
		for _, method := range reparsed.Methods {
			twice = FormatMethod(method)
		}
		for _, event := range reparsed.Events {
			twice = FormatEvent(event)
		}
		require.Equal(t, once, twice, signature)
	}
}

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
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
)

const erc20JSON = `[
	{"type":"constructor","inputs":[{"name":"supply","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"balanceOf","constant":true,"inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256"}]},
	{"type":"error","name":"InsufficientBalance","inputs":[{"name":"available","type":"uint256"},{"name":"required","type":"uint256"}]},
	{"type":"fallback","stateMutability":"nonpayable"},
	{"type":"receive","stateMutability":"payable"}
]`

// TestJSON decodes a JSON ABI and checks the resulting container.
// TestJSON 解码 JSON ABI 并检查生成的容器。
func TestJSON(t *testing.T) {
	t.Parallel()
	abi, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)

	require.Len(t, abi.Constructor.Inputs, 1)
	require.True(t, abi.HasFallback())
	require.True(t, abi.HasReceive())

	transfer := abi.Methods["transfer"]
	require.Equal(t, hexutil.MustDecode("0xa9059cbb"), transfer.ID)
	require.False(t, transfer.IsConstant())

	// legacy constant flag implies read-only
	// 旧版 constant 标志意味着只读
	require.True(t, abi.Methods["balanceOf"].IsConstant())

	require.Contains(t, abi.Events, "Transfer")
	require.Contains(t, abi.Errors, "InsufficientBalance")
}

// TestJSONEquivalentToSignatures checks the two definition paths agree.
// TestJSONEquivalentToSignatures 检查两种定义路径的结果一致。
func TestJSONEquivalentToSignatures(t *testing.T) {
	t.Parallel()
	fromJSON, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)

	fromSig, err := ParseSignatures(
		"constructor(uint256 supply)",
		"function transfer(address to, uint256 amount) returns (bool)",
		"function balanceOf(address owner) view returns (uint256)",
		"event Transfer(address indexed from, address indexed to, uint256 value)",
		"error InsufficientBalance(uint256 available, uint256 required)",
		"fallback() external",
		"receive() external payable",
	)
	require.NoError(t, err)

	require.Equal(t, fromJSON.Methods["transfer"].ID, fromSig.Methods["transfer"].ID)
	require.Equal(t, fromJSON.Methods["balanceOf"].Sig, fromSig.Methods["balanceOf"].Sig)
	require.Equal(t, fromJSON.Events["Transfer"].ID, fromSig.Events["Transfer"].ID)
	require.Equal(t, fromJSON.Errors["InsufficientBalance"].ID, fromSig.Errors["InsufficientBalance"].ID)
}

// TestJSONValidation covers the structural rules on special functions.
// TestJSONValidation 涵盖特殊函数的结构规则。
func TestJSONValidation(t *testing.T) {
	t.Parallel()
	_, err := JSON(strings.NewReader(`[{"type":"receive","stateMutability":"nonpayable"}]`))
	require.Error(t, err)

	_, err = JSON(strings.NewReader(`[{"type":"fallback"},{"type":"fallback"}]`))
	require.Error(t, err)

	_, err = JSON(strings.NewReader(`[{"type":"banana","name":"x"}]`))
	require.Error(t, err)
}

// TestJSONOverloads resolves overloaded names with numeric suffixes.
// TestJSONOverloads 用数字后缀解析重载的名称。
func TestJSONOverloads(t *testing.T) {
	t.Parallel()
	abi, err := JSON(strings.NewReader(`[
		{"type":"function","name":"foo","inputs":[{"name":"a","type":"int256"}]},
		{"type":"function","name":"foo","inputs":[{"name":"a","type":"uint256"}]}
	]`))
	require.NoError(t, err)
	require.Contains(t, abi.Methods, "foo")
	require.Contains(t, abi.Methods, "foo0")
}

// TestLookupByID finds items by selector and topic hash.
// TestLookupByID 通过选择器和主题哈希查找条目。
func TestLookupByID(t *testing.T) {
	t.Parallel()
	abi, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)

	method, err := abi.MethodById(hexutil.MustDecode("0xa9059cbb"))
	require.NoError(t, err)
	require.Equal(t, "transfer", method.Name)

	_, err = abi.MethodById([]byte{1, 2})
	require.Error(t, err)
	_, err = abi.MethodById([]byte{0, 0, 0, 0})
	require.Error(t, err)

	event, err := abi.EventByID(abi.Events["Transfer"].ID)
	require.NoError(t, err)
	require.Equal(t, "Transfer", event.Name)

	insufficient := abi.Errors["InsufficientBalance"]
	var sel [4]byte
	copy(sel[:], insufficient.ID[:4])
	abiErr, err := abi.ErrorByID(sel)
	require.NoError(t, err)
	require.Equal(t, "InsufficientBalance", abiErr.Name)
}

// TestUnpackRevert decodes Error(string) and Panic(uint256) payloads.
// TestUnpackRevert 解码 Error(string) 和 Panic(uint256) 负载。
func TestUnpackRevert(t *testing.T) {
	t.Parallel()
	strArgs, err := ParseParameters("string reason")
	require.NoError(t, err)
	encoded, err := strArgs.Pack("out of gas")
	require.NoError(t, err)

	reason, err := UnpackRevert(append(append([]byte{}, revertSelector...), encoded...))
	require.NoError(t, err)
	require.Equal(t, "out of gas", reason)

	panicArgs, err := ParseParameters("uint256 code")
	require.NoError(t, err)
	encoded, err = panicArgs.Pack(big.NewInt(0x12))
	require.NoError(t, err)

	reason, err = UnpackRevert(append(append([]byte{}, panicSelector...), encoded...))
	require.NoError(t, err)
	require.Equal(t, "division or modulo by zero", reason)

	_, err = UnpackRevert([]byte{1, 2, 3})
	require.Error(t, err)
}

// TestABIPackConstructor packs constructor arguments without a selector.
// TestABIPackConstructor 打包构造函数参数，不带选择器。
func TestABIPackConstructor(t *testing.T) {
	t.Parallel()
	abi, err := JSON(strings.NewReader(erc20JSON))
	require.NoError(t, err)

	got, err := abi.Pack("", big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, hexutil.MustDecode("0x0000000000000000000000000000000000000000000000000000000000000001"), got)

	_, err = abi.Pack("missing")
	require.Error(t, err)
}

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
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Error describes a custom revert error of a contract interface. Revert
// payloads open with the first four bytes of ID, followed by the ABI encoded
// inputs.
// Error 描述合约接口中的自定义回退错误。
// 回退负载以 ID 的前四个字节开头，后跟 ABI 编码的输入。
type Error struct {
	Name   string
	Inputs Arguments
	str    string // 缓存的字符串表示形式

	// Sig is the canonical signature, e.g. "InsufficientBalance(uint256,uint256)".
	// Sig 是规范签名，例如 "InsufficientBalance(uint256,uint256)"。
	Sig string

	// ID is the Keccak-256 hash of Sig; its first four bytes select the error.
	// ID 是 Sig 的 Keccak-256 哈希；其前四个字节用于选择错误。
	ID common.Hash
}

// NewError creates a new Error. Unnamed inputs get positional names, and the
// signature, selector hash and display form are precomputed.
// NewError 创建一个新的 Error。未命名的输入获得位置名称，
// 签名、选择器哈希和显示形式均被预先计算。
func NewError(name string, inputs Arguments) Error {
	inputs = ensureNamed(inputs)
	sig := canonicalSignature(name, inputs)
	e := Error{
		Name:   name,
		Inputs: inputs,
		Sig:    sig,
		ID:     common.BytesToHash(crypto.Keccak256([]byte(sig))),
	}
	e.str = FormatError(e)
	return e
}

// String returns the human readable signature form of the error.
// String 返回错误的人类可读签名形式。
func (e Error) String() string {
	return e.str
}

// Unpack decodes a revert payload. The four byte selector must match the
// error's ID before the remaining inputs are decoded.
// Unpack 解码回退负载。四字节选择器必须与错误的 ID 匹配，
// 之后才解码其余输入。
func (e *Error) Unpack(data []byte) (interface{}, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("insufficient data for unpacking: have %d, want at least 4", len(data))
	}
	if !bytes.Equal(data[:4], e.ID[:4]) {
		return "", fmt.Errorf("invalid identifier, have %#x want %#x", data[:4], e.ID[:4])
	}
	return e.Inputs.Unpack(data[4:])
}

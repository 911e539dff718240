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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Event describes one log-emitting item of a contract interface: its
// parameter types, which of them are indexed into topics, and the topic hash
// non-anonymous emissions carry as topic zero.
// Event 描述合约接口中一个产生日志的条目：其参数类型、
// 哪些参数被索引到主题中，以及非匿名触发时作为主题零携带的主题哈希。
type Event struct {
	// Name is the lookup key in ABI.Events. Overloaded events get a numeric
	// suffix, so "Transfer(address)" next to "Transfer(uint256)" resolves as
	// Transfer and Transfer0.
	// Name 是 ABI.Events 中的查找键。重载事件会获得数字后缀，
	// 例如 "Transfer(address)" 和 "Transfer(uint256)" 解析为 Transfer 和 Transfer0。
	Name string

	// RawName is the declared event name, shared by all overloads.
	// RawName 是声明的事件名称，所有重载共享。
	RawName string
	// Anonymous 指示事件是否是匿名的。
	Anonymous bool
	// Inputs 是事件的参数列表。
	Inputs Arguments
	// str 是事件的缓存字符串表示形式。
	str string

	// Sig is the canonical signature, e.g. "Transfer(address,address,uint256)",
	// with every shorthand type expanded.
	// Sig 是规范签名，例如 "Transfer(address,address,uint256)"，
	// 所有简写类型均已展开。
	Sig string

	// ID is the Keccak-256 hash of Sig, matched against topic zero of a log.
	// ID 是 Sig 的 Keccak-256 哈希，与日志的主题零匹配。
	ID common.Hash
}

// NewEvent creates a new Event. Unnamed inputs get positional names, and the
// signature, topic hash and display form are precomputed.
// NewEvent 创建一个新的 Event。未命名的输入获得位置名称，
// 签名、主题哈希和显示形式均被预先计算。
func NewEvent(name, rawName string, anonymous bool, inputs Arguments) Event {
	inputs = ensureNamed(inputs)
	sig := canonicalSignature(rawName, inputs)
	e := Event{
		Name:      name,
		RawName:   rawName,
		Anonymous: anonymous,
		Inputs:    inputs,
		Sig:       sig,
		ID:        common.BytesToHash(crypto.Keccak256([]byte(sig))),
	}
	e.str = FormatEvent(e)
	return e
}

// String returns the human readable signature form of the event.
// String 返回事件的人类可读签名形式。
func (e Event) String() string {
	return e.str
}

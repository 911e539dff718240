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

// Package abi implements the Ethereum contract ABI codec.
//
// It understands both sources of ABI definitions: the JSON descriptor emitted
// by the solidity compiler (JSON) and human readable solidity signatures
// (ParseSignatures), including struct declarations that other signatures
// reference by name. Both paths produce the same ABI value, which packs call
// data with Pack and decodes return data and log payloads with Unpack.
//
// The binary format is the standard head/tail word layout: static values are
// encoded in place, dynamic values behind a 32-byte offset pointing into the
// tail. Decoding is guarded against adversarial payloads by bounding the
// number of dynamic offset jumps a single call may follow.
//
// Package abi 实现了以太坊合约 ABI 编解码器。
//
// 它支持两种 ABI 定义来源：solidity 编译器输出的 JSON 描述符（JSON）
// 和人类可读的 solidity 签名（ParseSignatures），
// 包括其他签名按名称引用的结构体声明。
// 两种路径产生相同的 ABI 值，使用 Pack 打包调用数据，
// 使用 Unpack 解码返回数据和日志负载。
package abi

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

import "github.com/ethereum/go-ethereum/common/lru"

// parameterCacheSize bounds the shared parameter parse cache. ABIs repeat the
// same parameter spellings heavily (uint256, address, bytes32 ...), so even a
// modest cache removes nearly all repeated regex work.
// parameterCacheSize 限制共享的参数解析缓存大小。ABI 大量重复相同的参数写法
// （uint256、address、bytes32 ...），因此即使是适度的缓存也能消除几乎所有重复的正则工作。
const parameterCacheSize = 4096

// parameterCache memoizes parseParameter results. Keys embed the parsing
// context, so "uint256 indexed from" parsed for an event never collides with
// the same text parsed for a function. The cache is safe for concurrent use.
// parameterCache 缓存 parseParameter 的结果。键中嵌入了解析上下文，
// 因此为事件解析的 "uint256 indexed from" 永远不会与为函数解析的相同文本冲突。
// 该缓存可安全地并发使用。
var parameterCache = lru.NewCache[string, ArgumentMarshaling](parameterCacheSize)

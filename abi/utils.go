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

import "fmt"

// ResolveNameConflict picks a free lookup key for an overloaded item. Both
// the JSON decoder and the signature parser key methods, events and errors by
// name, so later overloads of "send" become send0, send1, ... until a name is
// unused according to the used predicate.
// ResolveNameConflict 为重载条目选择一个空闲的查找键。
// JSON 解码器和签名解析器都按名称为方法、事件和错误建立键，
// 因此 "send" 的后续重载依次变为 send0、send1……
// 直到 used 谓词判定某个名称未被占用。
func ResolveNameConflict(rawName string, used func(string) bool) string {
	name := rawName
	for idx := 0; used(name); idx++ {
		name = fmt.Sprintf("%s%d", rawName, idx)
	}
	return name
}

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
	"math"

	"github.com/holiman/uint256"
)

// defaultReadLimit bounds how often a single decode call may re-read head
// words it has already dereferenced. Honestly encoded payloads visit every
// head position exactly once and never consume the budget, no matter how many
// dynamic elements they carry; only payloads crafted to chase offsets back
// over the same positions hit it and fail.
// defaultReadLimit 限制单次解码调用重新读取已解引用过的头部字的次数。
// 诚实编码的负载每个头部位置只访问一次，无论携带多少动态元素都不会消耗该预算；
// 只有被构造成反复追逐相同位置偏移量的负载才会触及它并失败。
const defaultReadLimit = 8192

// cursor tracks the re-read budget of one decode call. It is created per
// Unpack invocation and discarded afterwards; no state survives the call.
// cursor 跟踪一次解码调用的重复读取预算。它在每次 Unpack 调用时创建，
// 调用结束后丢弃；没有任何状态在调用之间存活。
type cursor struct {
	reads   map[int]int // dereferences seen per head position 每个头部位置的解引用次数
	rereads int         // total repeat dereferences so far 迄今为止的重复解引用总数
	limit   int
}

func newCursor() *cursor {
	return &cursor{reads: make(map[int]int), limit: defaultReadLimit}
}

// jump accounts for one dynamic offset dereference of the head word at index
// into output. The decoder only ever recurses into suffixes of the original
// payload, so index-len(output) identifies the absolute position regardless
// of how deeply the buffer has been re-sliced. First reads are free; repeat
// reads of any position draw down the shared budget.
// jump 记录对 output 中 index 处头部字的一次动态偏移量解引用。
// 解码器只会递归进入原始负载的后缀切片，
// 因此无论缓冲区被重新切分多深，index-len(output) 都能标识绝对位置。
// 首次读取不计费；对任何位置的重复读取消耗共享预算。
func (c *cursor) jump(output []byte, index int) error {
	position := index - len(output)
	c.reads[position]++
	if c.reads[position] > 1 {
		c.rereads++
		if c.rereads > c.limit {
			return &ReadLimitExceededError{Limit: c.limit}
		}
	}
	return nil
}

// readWord returns the 32-byte word starting at byte offset index.
// readWord 返回从字节偏移 index 开始的 32 字节的字。
func readWord(output []byte, index int) ([]byte, error) {
	if index < 0 || index+32 > len(output) {
		return nil, &DataSizeTooSmallError{Expected: index + 32, Given: len(output)}
	}
	return output[index : index+32], nil
}

// wordToIndex interprets a 32-byte word as a buffer index, rejecting values
// that cannot be addressed by the host int.
// wordToIndex 将 32 字节的字解释为缓冲区索引，拒绝主机 int 无法寻址的值。
func wordToIndex(word []byte) (int, error) {
	var v uint256.Int
	v.SetBytes(word)
	if !v.IsUint64() || v.Uint64() > math.MaxInt64-32 {
		return 0, fmt.Errorf("abi: offset larger than int64: %v", &v)
	}
	return int(v.Uint64()), nil
}

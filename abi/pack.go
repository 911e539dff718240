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
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

// packUint packs a non-negative machine integer (an offset, a length or an
// array size) as a single 32-byte big-endian word.
// packUint 将非负机器整数（偏移量、长度或数组大小）打包为单个 32 字节大端序的字。
func packUint(u uint64) []byte {
	word := uint256.NewInt(u).Bytes32()
	return word[:]
}

// packBytesSlice packs the given bytes as [L, V] as the canonical representation
// bytes slice.
// packBytesSlice 将给定的字节打包为 [L, V] 格式，作为字节切片的规范表示。
// L 是长度，V 是内容。
func packBytesSlice(bytes []byte, l int) []byte {
	// 打包长度，内容向右填充到 32 字节的倍数。
	len := packUint(uint64(l))
	return append(len, common.RightPadBytes(bytes, (l+31)/32*32)...)
}

// packElement packs the given value according to the abi specification in t.
// packElement 根据 t 中的 abi 规范打包给定的值。
func packElement(t Type, v interface{}) ([]byte, error) {
	switch t.T {
	case UintTy, IntTy:
		n, ok := toBigInt(v)
		if !ok {
			return nil, typeErr(t.String(), fmt.Sprintf("%T", v))
		}
		// make sure the value fits the declared bit width
		// 确保该值适合声明的位宽
		min, max := integerBounds(t)
		if n.Cmp(min) < 0 || n.Cmp(max) > 0 {
			return nil, &IntegerOutOfRangeError{Type: t.String(), Min: min, Max: max, Value: new(big.Int).Set(n)}
		}
		// two's complement representation over 256 bits
		// 256 位上的补码表示
		return math.U256Bytes(new(big.Int).Set(n)), nil
	case StringTy:
		// 字符串作为动态字节切片处理
		s, ok := v.(string)
		if !ok {
			return nil, typeErr(t.String(), fmt.Sprintf("%T", v))
		}
		return packBytesSlice([]byte(s), len(s)), nil
	case AddressTy:
		// 地址类型，向左填充到 32 字节
		addr, ok := toAddress(v)
		if !ok {
			return nil, typeErr(t.String(), fmt.Sprintf("%T", v))
		}
		return common.LeftPadBytes(addr.Bytes(), 32), nil
	case BoolTy:
		// 布尔类型，true 表示为 1，false 表示为 0
		b, ok := v.(bool)
		if !ok {
			return nil, typeErr(t.String(), fmt.Sprintf("%T", v))
		}
		if b {
			return math.PaddedBigBytes(common.Big1, 32), nil
		}
		return math.PaddedBigBytes(common.Big0, 32), nil
	case BytesTy:
		// 动态字节数组
		b, ok := toBytes(v)
		if !ok {
			return nil, typeErr(t.String(), fmt.Sprintf("%T", v))
		}
		return packBytesSlice(b, len(b)), nil
	case FixedBytesTy, FunctionTy:
		// 固定大小的字节数组或函数类型，向右填充到 32 字节
		b, ok := toBytes(v)
		if !ok {
			return nil, typeErr(t.String(), fmt.Sprintf("%T", v))
		}
		if len(b) != t.Size {
			return nil, &BytesSizeMismatchError{Type: t.String(), Expected: t.Size, Given: len(b)}
		}
		return common.RightPadBytes(b, 32), nil
	default:
		return []byte{}, fmt.Errorf("abi: could not pack element, unknown type: %v", t.T)
	}
}

// integerBounds returns the inclusive value range of the given (u)intN type.
// integerBounds 返回给定 (u)intN 类型的闭区间取值范围。
func integerBounds(t Type) (min, max *big.Int) {
	if t.T == UintTy {
		// [0, 2^N - 1]
		max = new(big.Int).Lsh(common.Big1, uint(t.Size))
		max.Sub(max, common.Big1)
		return new(big.Int), max
	}
	// [-2^(N-1), 2^(N-1) - 1]
	max = new(big.Int).Lsh(common.Big1, uint(t.Size-1))
	min = new(big.Int).Neg(max)
	max.Sub(max, common.Big1)
	return min, max
}

// toBigInt coerces the supported integer value forms into a big.Int.
// toBigInt 将支持的整数值形式转换为 big.Int。
func toBigInt(v interface{}) (*big.Int, bool) {
	switch n := v.(type) {
	case *big.Int:
		return n, n != nil
	case *uint256.Int:
		if n == nil {
			return nil, false
		}
		return n.ToBig(), true
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	default:
		return nil, false
	}
}

// toBytes coerces byte slices, hashes and fixed byte arrays into a []byte.
// toBytes 将字节切片、哈希和固定字节数组转换为 []byte。
func toBytes(v interface{}) ([]byte, bool) {
	switch b := v.(type) {
	case []byte:
		return b, true
	case common.Hash:
		return b.Bytes(), true
	}
	// fixed byte arrays ([N]byte and friends) via reflection
	// 通过反射处理固定字节数组（[N]byte 等）
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		out := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(out), rv)
		return out, true
	}
	return nil, false
}

// toAddress coerces the supported address value forms into a common.Address.
// toAddress 将支持的地址值形式转换为 common.Address。
func toAddress(v interface{}) (common.Address, bool) {
	switch a := v.(type) {
	case common.Address:
		return a, true
	case [20]byte:
		return common.Address(a), true
	case []byte:
		if len(a) == 20 {
			return common.BytesToAddress(a), true
		}
	case string:
		if common.IsHexAddress(a) {
			return common.HexToAddress(a), true
		}
	}
	return common.Address{}, false
}

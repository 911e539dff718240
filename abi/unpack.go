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
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// MaxUint256 is the maximum value that can be represented by a uint256.
	// MaxUint256 是 uint256 能表示的最大值 (2^256 - 1)。
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 256), common.Big1)
	// MaxInt256 is the maximum value that can be represented by a int256.
	// MaxInt256 是 int256 能表示的最大值 (2^255 - 1)。
	MaxInt256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 255), common.Big1)
)

// ReadInteger reads a (u)intN word into a big.Int. All integer widths decode
// to the same arbitrary-precision representation; signed values are recovered
// from their two's complement form.
// ReadInteger 将 (u)intN 的字读取为 big.Int。所有整数位宽都解码为同一种
// 任意精度表示；有符号值从其补码形式恢复。
func ReadInteger(typ Type, b []byte) *big.Int {
	// 从字节创建大整数
	ret := new(big.Int).SetBytes(b)
	if typ.T == UintTy {
		return ret
	}

	// big.SetBytes can't tell if a number is negative or positive in itself.
	// On EVM, if the returned number > max int256, it is negative.
	// A number is > max int256 if the bit at position 255 is set.
	// big.SetBytes 本身无法判断一个数是正数还是负数。
	// 在 EVM 中，如果返回的数字 > max int256，则它是一个负数。
	// 如果第 255 位被设置，则该数字 > max int256。
	if ret.Bit(255) == 1 {
		ret.Add(MaxUint256, new(big.Int).Neg(ret))
		ret.Add(ret, common.Big1)
		ret.Neg(ret)
	}
	return ret
}

// readBool reads a bool.
// readBool 从一个 32 字节的 word 中读取一个布尔值。
func readBool(word []byte) (bool, error) {
	// 检查前 31 个字节是否都为 0
	for _, b := range word[:31] {
		if b != 0 {
			return false, errBadBool
		}
	}
	// 检查最后一个字节
	switch word[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errBadBool
	}
}

// A function type is simply the address with the function selection signature at the end.
//
// readFunctionType enforces that standard by always presenting it as a 24-array (address + sig = 24 bytes)
// 函数类型就是地址后跟函数选择器签名。
//
// readFunctionType 通过始终将其表示为 24 字节数组（地址 + 签名 = 24 字节）来强制执行该标准。
func readFunctionType(t Type, word []byte) (funcTy [24]byte, err error) {
	if t.T != FunctionTy {
		return [24]byte{}, errors.New("abi: invalid type in call to make function type byte array")
	}
	// 检查最后 8 个字节是否为 0，因为函数类型只占用 24 个字节
	if garbage := binary.BigEndian.Uint64(word[24:32]); garbage != 0 {
		err = fmt.Errorf("abi: got improperly encoded function type, got %v", word)
	} else {
		copy(funcTy[:], word[0:24])
	}
	return
}

// ReadFixedBytes copies the leading Size bytes of the word.
// ReadFixedBytes 复制字的前 Size 个字节。
func ReadFixedBytes(t Type, word []byte) ([]byte, error) {
	if t.T != FixedBytesTy {
		return nil, errors.New("abi: invalid type in call to make fixed byte array")
	}
	out := make([]byte, t.Size)
	copy(out, word[:t.Size])
	return out, nil
}

// forEachUnpack iteratively unpack elements.
// forEachUnpack 迭代地解包元素（用于数组和切片）。
func forEachUnpack(c *cursor, t Type, output []byte, start, size int) ([]interface{}, error) {
	if size < 0 {
		return nil, fmt.Errorf("abi: cannot unmarshal input to array, size is negative (%d)", size)
	}
	if start+32*size > len(output) {
		return nil, &DataSizeTooSmallError{Expected: start + 32*size, Given: len(output)}
	}
	if t.T != SliceTy && t.T != ArrayTy {
		return nil, errors.New("abi: invalid type in array/slice unpacking stage")
	}

	elems := make([]interface{}, 0, size)

	// Arrays have packed elements, resulting in longer unpack steps.
	// Slices have just 32 bytes per element (pointing to the contents).
	// 静态数组的元素是紧密打包的，导致解包步骤更长。
	// 动态数组/切片的元素每个都是 32 字节（指向内容）。
	elemSize := getTypeSize(*t.Elem)

	for i, j := start, 0; j < size; i, j = i+elemSize, j+1 {
		// 递归解包每个元素
		inter, err := toGoType(c, i, *t.Elem, output)
		if err != nil {
			return nil, err
		}
		elems = append(elems, inter)
	}
	return elems, nil
}

// forTupleUnpack 按顺序解包元组的各个组件。
func forTupleUnpack(c *cursor, t Type, output []byte) ([]interface{}, error) {
	retval := make([]interface{}, 0, len(t.TupleElems))
	virtualArgs := 0 // 用于计算静态数组等占用的额外槽位
	for index, elem := range t.TupleElems {
		// 解包元组的每个元素
		marshalledValue, err := toGoType(c, (index+virtualArgs)*32, *elem, output)
		if err != nil {
			return nil, err
		}
		if elem.T == ArrayTy && !isDynamicType(*elem) {
			// If we have a static array, like [3]uint256, these are coded as
			// just like uint256,uint256,uint256.
			// This means that we need to add two 'virtual' arguments when
			// we count the index from now on.
			//
			// Array values nested multiple levels deep are also encoded inline:
			// [2][3]uint256: uint256,uint256,uint256,uint256,uint256,uint256
			//
			// Calculate the full array size to get the correct offset for the next argument.
			// Decrement it by 1, as the normal index increment is still applied.
			// 如果我们有一个静态数组，比如 [3]uint256，它们被编码为
			// uint256,uint256,uint256。
			// 这意味着从现在开始计算索引时，我们需要添加两个“虚拟”参数。
			//
			// 计算完整的数组大小以获取下一个参数的正确偏移量。
			// 将其减 1，因为正常的索引增量仍然适用。
			virtualArgs += getTypeSize(*elem)/32 - 1
		} else if elem.T == TupleTy && !isDynamicType(*elem) {
			// If we have a static tuple, like (uint256, bool, uint256), these are
			// coded as just like uint256,bool,uint256
			// 如果我们有一个静态元组，比如 (uint256, bool, uint256)，它们被编码为
			// uint256,bool,uint256
			virtualArgs += getTypeSize(*elem)/32 - 1
		}
		retval = append(retval, marshalledValue)
	}
	return retval, nil
}

// toGoType parses the output bytes and recursively assigns the value of these bytes
// into a go type with accordance with the ABI spec.
// toGoType 解析输出字节，并根据 ABI 规范将这些字节的值递归地分配给 Go 类型。
func toGoType(c *cursor, index int, t Type, output []byte) (interface{}, error) {
	returnOutput, err := readWord(output, index)
	if err != nil {
		return nil, err
	}

	var begin, length int

	// if we require a length prefix, find the beginning word and size returned.
	// 如果需要长度前缀（动态类型），找到返回的起始词和大小。
	if t.requiresLengthPrefix() {
		begin, length, err = lengthPrefixPointsTo(c, index, output)
		if err != nil {
			return nil, err
		}
	}

	switch t.T {
	case TupleTy:
		if isDynamicType(t) {
			// 动态元组，需要先找到其数据位置
			begin, err := tuplePointsTo(c, index, output)
			if err != nil {
				return nil, err
			}
			return forTupleUnpack(c, t, output[begin:])
		}
		// 静态元组，原地解包
		return forTupleUnpack(c, t, output[index:])
	case SliceTy:
		// 动态切片
		return forEachUnpack(c, t, output[begin:], 0, length)
	case ArrayTy:
		if isDynamicType(*t.Elem) {
			// 动态元素的数组：头部的字是指向元素块的偏移量
			offset, err := wordToIndex(returnOutput)
			if err != nil {
				return nil, err
			}
			if offset > len(output) {
				return nil, fmt.Errorf("abi: toGoType offset greater than output length: offset: %d, len(output): %d", offset, len(output))
			}
			if err := c.jump(output, index); err != nil {
				return nil, err
			}
			return forEachUnpack(c, t, output[offset:], 0, t.Size)
		}
		// 静态元素的数组
		return forEachUnpack(c, t, output[index:], 0, t.Size)
	case StringTy: // variable arrays are written at the end of the return bytes
		// 可变数组（字符串）写在返回字节的末尾
		return string(output[begin : begin+length]), nil
	case IntTy, UintTy:
		return ReadInteger(t, returnOutput), nil
	case BoolTy:
		return readBool(returnOutput)
	case AddressTy:
		return common.BytesToAddress(returnOutput), nil
	case HashTy:
		return common.BytesToHash(returnOutput), nil
	case BytesTy:
		return output[begin : begin+length], nil
	case FixedBytesTy:
		return ReadFixedBytes(t, returnOutput)
	case FunctionTy:
		return readFunctionType(t, returnOutput)
	default:
		return nil, fmt.Errorf("abi: unknown type %v", t.T)
	}
}

// lengthPrefixPointsTo interprets a 32 byte slice as an offset and then determines which indices to look to decode the type.
// lengthPrefixPointsTo 将一个 32 字节的切片解释为偏移量，然后确定要查找哪些索引来解码类型。
func lengthPrefixPointsTo(c *cursor, index int, output []byte) (start int, length int, err error) {
	if err := c.jump(output, index); err != nil {
		return 0, 0, err
	}
	// 获取数据区的偏移量
	offset, err := wordToIndex(output[index : index+32])
	if err != nil {
		return 0, 0, err
	}
	offsetEnd := offset + 32
	if offsetEnd > len(output) {
		return 0, 0, fmt.Errorf("abi: cannot unmarshal: offset %d would go over slice boundary (len=%d)", offsetEnd, len(output))
	}

	// 偏移量指向的位置是长度信息
	length, err = wordToIndex(output[offset:offsetEnd])
	if err != nil {
		return 0, 0, err
	}

	// The length word is attacker-controlled and may be near MaxInt64, so the
	// comparison must not compute offsetEnd+length, which wraps negative.
	// 长度的字由攻击者控制，可能接近 MaxInt64，
	// 因此比较时不能计算 offsetEnd+length，否则会回绕为负数。
	if length > len(output)-offsetEnd {
		return 0, 0, &DataSizeTooSmallError{Expected: length, Given: len(output) - offsetEnd}
	}
	start = offsetEnd
	return
}

// tuplePointsTo resolves the location reference for dynamic tuple.
// tuplePointsTo 解析动态元组的位置引用。
func tuplePointsTo(c *cursor, index int, output []byte) (start int, err error) {
	if err := c.jump(output, index); err != nil {
		return 0, err
	}
	// 从索引位置读取偏移量
	offset, err := wordToIndex(output[index : index+32])
	if err != nil {
		return 0, err
	}
	if offset > len(output) {
		return 0, fmt.Errorf("abi: cannot unmarshal: offset %d would go over slice boundary (len=%d)", offset, len(output))
	}
	return offset, nil
}

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
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TestPackTransferCalldata packs the canonical ERC20 transfer call and checks
// the exact calldata bytes.
// TestPackTransferCalldata 打包规范的 ERC20 transfer 调用并检查精确的调用数据字节。
func TestPackTransferCalldata(t *testing.T) {
	t.Parallel()
	abi, err := ParseSignatures("function transfer(address to, uint256 amount) returns (bool)")
	if err != nil {
		t.Fatal(err)
	}
	got, err := abi.Pack("transfer",
		common.HexToAddress("0x1111111111111111111111111111111111111111"),
		big.NewInt(1000),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := hexutil.MustDecode("0xa9059cbb" +
		"0000000000000000000000001111111111111111111111111111111111111111" +
		"00000000000000000000000000000000000000000000000000000000000003e8")
	if !bytes.Equal(got, want) {
		t.Fatalf("wrong calldata:\ngot  %x\nwant %x", got, want)
	}
}

// TestPackString checks the offset/length/content layout of a lone string.
// TestPackString 检查单个字符串的偏移量/长度/内容布局。
func TestPackString(t *testing.T) {
	t.Parallel()
	args, err := ParseParameters("string s")
	if err != nil {
		t.Fatal(err)
	}
	got, err := args.Pack("hi")
	if err != nil {
		t.Fatal(err)
	}
	want := hexutil.MustDecode("0x" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000002" +
		"6869000000000000000000000000000000000000000000000000000000000000")
	if !bytes.Equal(got, want) {
		t.Fatalf("wrong encoding:\ngot  %x\nwant %x", got, want)
	}
}

// TestPackDynamicArray checks the head/tail layout of a dynamic array after a
// static word.
// TestPackDynamicArray 检查静态字之后动态数组的 head/tail 布局。
func TestPackDynamicArray(t *testing.T) {
	t.Parallel()
	args, err := ParseParameters("bool flag, uint256[] xs")
	if err != nil {
		t.Fatal(err)
	}
	got, err := args.Pack(true, []*big.Int{big.NewInt(1), big.NewInt(2)})
	if err != nil {
		t.Fatal(err)
	}
	want := hexutil.MustDecode("0x" +
		"0000000000000000000000000000000000000000000000000000000000000001" + // flag
		"0000000000000000000000000000000000000000000000000000000000000040" + // offset of xs
		"0000000000000000000000000000000000000000000000000000000000000002" + // len(xs)
		"0000000000000000000000000000000000000000000000000000000000000001" +
		"0000000000000000000000000000000000000000000000000000000000000002")
	if !bytes.Equal(got, want) {
		t.Fatalf("wrong encoding:\ngot  %x\nwant %x", got, want)
	}
}

// TestPackNegativeInteger checks two's complement encoding of signed values.
// TestPackNegativeInteger 检查有符号值的补码编码。
func TestPackNegativeInteger(t *testing.T) {
	t.Parallel()
	args, err := ParseParameters("int256 v")
	if err != nil {
		t.Fatal(err)
	}
	got, err := args.Pack(big.NewInt(-1))
	if err != nil {
		t.Fatal(err)
	}
	want := hexutil.MustDecode("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	if !bytes.Equal(got, want) {
		t.Fatalf("wrong encoding:\ngot  %x\nwant %x", got, want)
	}
}

// TestPackIntegerBounds exercises the declared-width range checks.
// TestPackIntegerBounds 测试声明位宽的范围检查。
func TestPackIntegerBounds(t *testing.T) {
	t.Parallel()
	for _, tt := range []struct {
		typ   string
		value int64
		ok    bool
	}{
		{"uint8", 0, true},
		{"uint8", 255, true},
		{"uint8", 256, false},
		{"uint8", -1, false},
		{"int8", -128, true},
		{"int8", 127, true},
		{"int8", -129, false},
		{"int8", 128, false},
	} {
		args, err := ParseParameters(tt.typ + " v")
		if err != nil {
			t.Fatal(err)
		}
		_, err = args.Pack(big.NewInt(tt.value))
		if tt.ok && err != nil {
			t.Fatalf("%s = %d: unexpected error: %v", tt.typ, tt.value, err)
		}
		if !tt.ok {
			var outOfRange *IntegerOutOfRangeError
			if !errors.As(err, &outOfRange) {
				t.Fatalf("%s = %d: got %v, want IntegerOutOfRangeError", tt.typ, tt.value, err)
			}
		}
	}
}

// TestPackErrors exercises the remaining encode-time failures.
// TestPackErrors 测试其余的编码时失败。
func TestPackErrors(t *testing.T) {
	t.Parallel()

	// top-level argument count mismatch
	// 顶层参数数量不匹配
	args, err := ParseParameters("uint256 a, bool b")
	if err != nil {
		t.Fatal(err)
	}
	_, err = args.Pack(big.NewInt(1))
	var lengthMismatch *LengthMismatchError
	if !errors.As(err, &lengthMismatch) {
		t.Fatalf("got %v, want LengthMismatchError", err)
	}
	if lengthMismatch.Expected != 2 || lengthMismatch.Given != 1 {
		t.Fatalf("wrong mismatch detail: %+v", lengthMismatch)
	}

	// fixed array length mismatch
	// 固定数组长度不匹配
	args, err = ParseParameters("uint256[3] xs")
	if err != nil {
		t.Fatal(err)
	}
	_, err = args.Pack([]*big.Int{big.NewInt(1), big.NewInt(2)})
	var arrayMismatch *ArrayLengthMismatchError
	if !errors.As(err, &arrayMismatch) {
		t.Fatalf("got %v, want ArrayLengthMismatchError", err)
	}

	// non-array value against an array type
	// 为数组类型提供非数组值
	_, err = args.Pack(big.NewInt(1))
	var invalidArray *InvalidArrayError
	if !errors.As(err, &invalidArray) {
		t.Fatalf("got %v, want InvalidArrayError", err)
	}

	// fixed bytes size mismatch
	// 固定字节大小不匹配
	args, err = ParseParameters("bytes32 h")
	if err != nil {
		t.Fatal(err)
	}
	_, err = args.Pack([]byte{1, 2, 3})
	var bytesMismatch *BytesSizeMismatchError
	if !errors.As(err, &bytesMismatch) {
		t.Fatalf("got %v, want BytesSizeMismatchError", err)
	}
}

// TestPackZeroParameters encodes to the empty byte string, not a zero word.
// TestPackZeroParameters 编码为空字节串，而不是零值的字。
func TestPackZeroParameters(t *testing.T) {
	t.Parallel()
	got, err := Arguments{}.Pack()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty encoding, got %x", got)
	}
}

// TestPackStaticTuple packs a struct-declared tuple in place.
// TestPackStaticTuple 原地打包由结构体声明的元组。
func TestPackStaticTuple(t *testing.T) {
	t.Parallel()
	abi, err := ParseSignatures(
		"struct Point { uint256 x; uint256 y; }",
		"function setPoint(Point memory p)",
	)
	if err != nil {
		t.Fatal(err)
	}
	calldata, err := abi.Pack("setPoint", []interface{}{big.NewInt(3), big.NewInt(7)})
	if err != nil {
		t.Fatal(err)
	}
	want := append(abi.Methods["setPoint"].ID, hexutil.MustDecode("0x"+
		"0000000000000000000000000000000000000000000000000000000000000003"+
		"0000000000000000000000000000000000000000000000000000000000000007")...)
	if !bytes.Equal(calldata, want) {
		t.Fatalf("wrong calldata:\ngot  %x\nwant %x", calldata, want)
	}
}

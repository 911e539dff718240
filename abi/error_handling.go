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
	"errors"
	"fmt"
	"math/big"
)

// 定义了一系列关于 ABI 编解码的错误变量。
var (
	// errBadBool is returned when a boolean word carries anything but 0 or 1.
	// errBadBool 在布尔值的编码不是 0 或 1 时返回。
	errBadBool = errors.New("abi: improperly encoded boolean value")

	// ErrZeroData is returned when decoding an empty buffer against a
	// non-empty argument list.
	// ErrZeroData 在针对非空参数列表解码空缓冲区时返回。
	ErrZeroData = errors.New("abi: attempting to unmarshal an empty string while arguments are expected")
)

// typeErr returns a formatted type casting error.
// typeErr 返回一个格式化的类型转换错误。
func typeErr(expected, got interface{}) error {
	return fmt.Errorf("abi: cannot use %v as type %v as argument", got, expected)
}

// UnknownSignatureError is returned when a human readable signature matches
// none of the recognized item forms.
// UnknownSignatureError 在人类可读签名不匹配任何已知条目形式时返回。
type UnknownSignatureError struct {
	Signature string
}

func (e *UnknownSignatureError) Error() string {
	return fmt.Sprintf("abi: unknown signature: %q", e.Signature)
}

// InvalidSignatureError is returned when a signature names a known item kind
// but violates that kind's grammar.
// InvalidSignatureError 在签名声明了已知的条目种类但违反了该种类的语法时返回。
type InvalidSignatureError struct {
	Kind      string
	Signature string
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("abi: invalid %s signature: %q", e.Kind, e.Signature)
}

// InvalidParenthesisError is returned by the parameter splitter when the
// parentheses of a parameter list do not balance.
// InvalidParenthesisError 在参数列表的括号不平衡时由参数分割器返回。
type InvalidParenthesisError struct {
	Current string // text consumed up to the point of failure 出错前已消费的文本
	Depth   int    // unmatched nesting depth 未匹配的嵌套深度
}

func (e *InvalidParenthesisError) Error() string {
	return fmt.Sprintf("abi: unbalanced parentheses (depth %d) in %q", e.Depth, e.Current)
}

// InvalidStructSignatureError is returned when a struct signature resolves to
// zero properties.
// InvalidStructSignatureError 在结构体签名解析出零个属性时返回。
type InvalidStructSignatureError struct {
	Signature string
}

func (e *InvalidStructSignatureError) Error() string {
	return fmt.Sprintf("abi: struct signature %q has no properties", e.Signature)
}

// CircularReferenceError is returned when struct resolution reaches a struct
// that is already being resolved further up the stack.
// CircularReferenceError 在结构体解析过程中遇到正处于解析栈上的结构体时返回。
type CircularReferenceError struct {
	Type string
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("abi: circular reference detected for struct %q", e.Type)
}

// UnknownTypeError is returned by the struct resolver when a property type is
// neither elementary nor a declared struct.
// UnknownTypeError 在属性类型既不是基本类型也不是已声明的结构体时由结构体解析器返回。
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("abi: unknown type %q", e.Type)
}

// UnknownSolidityTypeError is returned by the parameter parser when a type
// token matches no elementary Solidity type.
// UnknownSolidityTypeError 在类型标记不匹配任何基本 Solidity 类型时由参数解析器返回。
type UnknownSolidityTypeError struct {
	Type string
}

func (e *UnknownSolidityTypeError) Error() string {
	return fmt.Sprintf("abi: unknown solidity type %q", e.Type)
}

// InvalidParameterError is returned when a parameter token does not match the
// parameter grammar at all.
// InvalidParameterError 在参数标记完全不匹配参数语法时返回。
type InvalidParameterError struct {
	Param string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("abi: invalid parameter %q", e.Param)
}

// InvalidModifierError is returned when a modifier is not allowed in the
// current parsing context, e.g. "indexed" outside of an event.
// InvalidModifierError 在修饰符不允许出现在当前解析上下文中时返回，
// 例如在事件之外使用 "indexed"。
type InvalidModifierError struct {
	Modifier string
	Context  string
	Param    string
}

func (e *InvalidModifierError) Error() string {
	return fmt.Sprintf("abi: invalid modifier %q for %s parameter %q", e.Modifier, e.Context, e.Param)
}

// InvalidFunctionModifierError is returned when a data-location modifier is
// attached to a type that has no data location (anything but arrays, bytes,
// string and tuples).
// InvalidFunctionModifierError 在数据位置修饰符附加到没有数据位置的类型上时返回
// （数组、bytes、string 和元组以外的任何类型）。
type InvalidFunctionModifierError struct {
	Modifier string
	Type     string
	Param    string
}

func (e *InvalidFunctionModifierError) Error() string {
	return fmt.Sprintf("abi: invalid modifier %q for non-reference type %q in parameter %q", e.Modifier, e.Type, e.Param)
}

// SolidityProtectedKeywordError is returned when a parameter name collides
// with a reserved Solidity keyword.
// SolidityProtectedKeywordError 在参数名称与 Solidity 保留关键字冲突时返回。
type SolidityProtectedKeywordError struct {
	Param   string
	Keyword string
}

func (e *SolidityProtectedKeywordError) Error() string {
	return fmt.Sprintf("abi: parameter %q uses protected solidity keyword %q", e.Param, e.Keyword)
}

// LengthMismatchError is returned before encoding begins when the number of
// supplied values differs from the number of declared parameters.
// LengthMismatchError 在提供的值数量与声明的参数数量不同时、编码开始之前返回。
type LengthMismatchError struct {
	Expected int
	Given    int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("abi: argument count mismatch: got %d for %d", e.Given, e.Expected)
}

// ArrayLengthMismatchError is returned when a fixed-size array receives a
// value with the wrong element count.
// ArrayLengthMismatchError 在固定大小数组收到元素数量错误的值时返回。
type ArrayLengthMismatchError struct {
	Type     string
	Expected int
	Given    int
}

func (e *ArrayLengthMismatchError) Error() string {
	return fmt.Sprintf("abi: array length mismatch for %s: got %d for %d", e.Type, e.Given, e.Expected)
}

// BytesSizeMismatchError is returned when a bytesN value is not exactly N
// bytes long.
// BytesSizeMismatchError 在 bytesN 的值长度不恰好为 N 字节时返回。
type BytesSizeMismatchError struct {
	Type     string
	Expected int
	Given    int
}

func (e *BytesSizeMismatchError) Error() string {
	return fmt.Sprintf("abi: bytes size mismatch for %s: got %d for %d", e.Type, e.Given, e.Expected)
}

// IntegerOutOfRangeError is returned when an integer value does not fit the
// declared bit width. Min and Max carry the inclusive bounds of the type.
// IntegerOutOfRangeError 在整数值不适合声明的位宽时返回。
// Min 和 Max 携带该类型的闭区间边界。
type IntegerOutOfRangeError struct {
	Type  string
	Min   *big.Int
	Max   *big.Int
	Value *big.Int
}

func (e *IntegerOutOfRangeError) Error() string {
	return fmt.Sprintf("abi: value %v out of range for %s [%v, %v]", e.Value, e.Type, e.Min, e.Max)
}

// InvalidArrayError is returned when a non-array value is supplied for an
// array or slice type.
// InvalidArrayError 在为数组或切片类型提供非数组值时返回。
type InvalidArrayError struct {
	Type  string
	Value interface{}
}

func (e *InvalidArrayError) Error() string {
	return fmt.Sprintf("abi: cannot use %T as array type %s", e.Value, e.Type)
}

// DataSizeTooSmallError is returned when the decode buffer ends before the
// word that is about to be read.
// DataSizeTooSmallError 在解码缓冲区在将要读取的字之前结束时返回。
type DataSizeTooSmallError struct {
	Expected int
	Given    int
}

func (e *DataSizeTooSmallError) Error() string {
	return fmt.Sprintf("abi: data size too small: have %d, want at least %d", e.Given, e.Expected)
}

// ReadLimitExceededError is returned when a decode re-reads already visited
// head words more often than the cursor allows. It guards against payloads
// crafted to trigger unbounded recursive reads.
// ReadLimitExceededError 在解码重复读取已访问过的头部字超过游标允许的次数时返回。
// 它防御那些旨在触发无限递归读取的恶意负载。
type ReadLimitExceededError struct {
	Limit int
}

func (e *ReadLimitExceededError) Error() string {
	return fmt.Sprintf("abi: recursive read limit of %d exceeded", e.Limit)
}

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
	"github.com/ethereum/go-ethereum/crypto"
)

// FunctionType represents different types of functions a contract might have.
// FunctionType 代表合约可能拥有的不同类型的函数。
type FunctionType int

const (
	// Constructor represents the constructor of the contract.
	// The constructor function is called while deploying a contract.
	// Constructor 代表合约的构造函数。构造函数在部署合约时被调用。
	Constructor FunctionType = iota
	// Fallback represents the fallback function.
	// This function is executed if no other function matches the given function
	// signature and no receive function is specified.
	// Fallback 代表回退函数。
	// 当没有其他函数匹配给定的函数签名且未指定 receive 函数时，执行此函数。
	Fallback
	// Receive represents the receive function.
	// This function is executed on plain Ether transfers.
	// Receive 代表接收函数。此函数在纯以太币转账时执行。
	Receive
	// Function represents a normal function.
	// Function 代表普通函数。
	Function
)

// Method represents a callable given a `Name` and whether the method is a constant.
// If the method is `Const` no transaction needs to be created for this
// particular Method call. It can easily be simulated using a local VM.
// For example a `Balance()` method only needs to retrieve something
// from the storage and therefore requires no Tx to be sent to the
// network. A method such as `Transact` does require a Tx and thus will
// be flagged `false`.
// Input specifies the required input parameters for this gives method.
// Method 代表一个可调用对象，给定 `Name` 以及该方法是否为常量。
// 如果方法是 `Const`，则无需为此特定方法调用创建交易，可以使用本地 VM 轻松模拟。
// 例如 `Balance()` 方法只需要从存储中检索内容，因此不需要向网络发送交易。
// 像 `Transact` 这样的方法确实需要交易，因此将被标记为 `false`。
// Input 指定此方法所需的输入参数。
type Method struct {
	// Name is the method name used for internal representation. It's derived from
	// the raw name and a suffix will be added in the case of a function overload.
	//
	// e.g.
	// There are two functions have same name:
	// * foo(int,int)
	// * foo(uint,uint)
	// The method name of the first one will be resolved as foo while the second one
	// will be resolved as foo0.
	// Name 是用于内部表示的方法名称。它源自原始名称，
	// 在函数重载的情况下会添加后缀。
	// 例如两个同名函数 foo(int,int) 和 foo(uint,uint)，
	// 第一个解析为 foo，第二个解析为 foo0。
	Name    string
	RawName string // RawName is the raw method name parsed from ABI 从 ABI 解析的原始方法名称

	// Type indicates whether the method is a
	// special fallback introduced in solidity v0.6.0
	// Type 指示该方法是普通函数还是 solidity v0.6.0 引入的特殊函数。
	Type FunctionType

	// StateMutability indicates the mutability state of method,
	// the default value is nonpayable. It can be empty if the abi
	// is generated by legacy compiler.
	// StateMutability 指示方法的可变性状态，默认值为 nonpayable。
	// 如果 abi 由旧版编译器生成，它可能为空。
	StateMutability string

	// Legacy indicators generated by compiler before v0.6.0
	// v0.6.0 之前的编译器生成的旧版指示符
	Constant bool
	Payable  bool

	Inputs  Arguments
	Outputs Arguments
	str     string
	// Sig returns the methods string signature according to the ABI spec.
	// e.g.		function foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256"
	// Sig 返回符合 ABI 规范的方法字符串签名。
	// 例如 function foo(uint32 a, int b) = "foo(uint32,int256)"
	// 请注意，"int" 被替换为其规范表示 "int256"
	Sig string
	// ID returns the canonical representation of the method's signature used by the
	// abi definition to identify method names and types.
	// ID 返回方法签名的规范表示（Keccak-256 哈希的前 4 个字节），
	// abi 定义用它来识别方法名称和类型。
	ID []byte
}

// NewMethod creates a new Method.
// A method should always be created using NewMethod.
// The canonical signature and selector are precomputed for plain functions;
// constructors and the special functions carry neither. The display form is
// the same text FormatMethod renders.
// NewMethod 创建一个新的 Method。
// 方法应始终使用 NewMethod 创建。
// 普通函数的规范签名和选择器会被预先计算；
// 构造函数和特殊函数两者皆无。显示形式与 FormatMethod 渲染的文本相同。
func NewMethod(name string, rawName string, funType FunctionType, mutability string, isConst, isPayable bool, inputs Arguments, outputs Arguments) Method {
	var (
		sig string
		id  []byte
	)
	if funType == Function {
		sig = canonicalSignature(rawName, inputs)
		id = crypto.Keccak256([]byte(sig))[:4]
	}
	method := Method{
		Name:            name,
		RawName:         rawName,
		Type:            funType,
		StateMutability: mutability,
		Constant:        isConst,
		Payable:         isPayable,
		Inputs:          inputs,
		Outputs:         outputs,
		Sig:             sig,
		ID:              id,
	}
	method.str = FormatMethod(method)
	return method
}

// String returns the human readable signature form of the method.
// String 返回方法的人类可读签名形式。
func (method Method) String() string {
	return method.str
}

// IsConstant returns the indicator whether the method is read-only.
// IsConstant 返回该方法是否为只读的指示符。
func (method Method) IsConstant() bool {
	return method.StateMutability == "view" || method.StateMutability == "pure" || method.Constant
}

// IsPayable returns the indicator whether the method can process
// plain ether transfers.
// IsPayable 返回该方法是否可以处理纯以太币转账的指示符。
func (method Method) IsPayable() bool {
	return method.StateMutability == "payable" || method.Payable
}

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
	"encoding/json"
	"errors"
	"fmt"
)

// Argument holds the name of the argument and the corresponding type.
// Types are used when packing and testing arguments.
// Argument 结构体保存了参数的名称和对应的类型。
// 类型在打包和测试参数时使用。
type Argument struct {
	Name    string // 参数名称
	Type    Type   // 参数类型
	Indexed bool   // indexed 仅用于事件，表示该参数是否被索引
}

// Arguments 是 Argument 的切片。
type Arguments []Argument

// ArgumentMarshaling is the wire shape of a single parameter: the JSON ABI
// field layout and the output of the human readable parameter parser.
// ArgumentMarshaling 是单个参数的线格式：JSON ABI 的字段布局，
// 同时也是人类可读参数解析器的输出。
type ArgumentMarshaling struct {
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	InternalType string               `json:"internalType,omitempty"`
	Components   []ArgumentMarshaling `json:"components,omitempty"`
	Indexed      bool                 `json:"indexed,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 实现了 json.Unmarshaler 接口，用于自定义 JSON 反序列化。
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}

	// 从解析出的字符串和组件创建 Type 对象
	argument.Type, err = NewType(arg.Type, arg.InternalType, arg.Components)
	if err != nil {
		return err
	}
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed

	return nil
}

// ensureNamed returns the arguments with every unnamed entry given a
// positional fallback name (arg0, arg1, ...). The caller's slice is left
// untouched so parsed argument lists can be shared.
// ensureNamed 返回为每个未命名条目赋予位置回退名称（arg0、arg1……）后的参数列表。
// 调用者的切片保持不变，以便解析出的参数列表可以被共享。
func ensureNamed(args Arguments) Arguments {
	named := make(Arguments, len(args))
	for i, arg := range args {
		if arg.Name == "" {
			arg.Name = fmt.Sprintf("arg%d", i)
		}
		named[i] = arg
	}
	return named
}

// NonIndexed returns the arguments with indexed arguments filtered out.
// NonIndexed 返回过滤掉索引参数后的参数列表。
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Unpack performs the operation hexdata -> value list.
// Unpack 将 ABI 编码的二进制数据解码为值列表。
func (arguments Arguments) Unpack(data []byte) ([]interface{}, error) {
	if len(data) == 0 {
		if len(arguments.NonIndexed()) != 0 {
			return nil, ErrZeroData
		}
		return make([]interface{}, 0), nil
	}
	return arguments.UnpackValues(data)
}

// UnpackIntoMap performs the operation hexdata -> mapping of argument name to argument value.
// UnpackIntoMap 将 ABI 编码的二进制数据解码到一个 map 中，键为参数名，值为参数值。
func (arguments Arguments) UnpackIntoMap(v map[string]interface{}, data []byte) error {
	// Make sure map is not nil
	if v == nil {
		return errors.New("abi: cannot unpack into a nil map")
	}
	if len(data) == 0 {
		if len(arguments.NonIndexed()) != 0 {
			return ErrZeroData
		}
		return nil // Nothing to unmarshal, return
	}
	marshalledValues, err := arguments.UnpackValues(data)
	if err != nil {
		return err
	}
	for i, arg := range arguments.NonIndexed() {
		v[arg.Name] = marshalledValues[i]
	}
	return nil
}

// UnpackValues can be used to unpack ABI-encoded data according to the ABI-specification,
// without supplying a struct to unpack into. Instead, this method returns a list containing the
// values. An atomic argument will be a list with one element.
// UnpackValues 根据 ABI 规范解包 ABI 编码的数据，返回一个包含值的列表。
// 单个原子参数将是带有一个元素的列表。
func (arguments Arguments) UnpackValues(data []byte) ([]interface{}, error) {
	var (
		c           = newCursor()            // 每次调用创建新的游标，限制递归读取
		retval      = make([]interface{}, 0) // 返回值列表
		virtualArgs = 0                      // 用于计算静态数组和元组的偏移量
		index       = 0                      // 当前处理的非索引参数的索引
	)

	for _, arg := range arguments {
		if arg.Indexed {
			continue // 跳过索引参数
		}
		marshalledValue, err := toGoType(c, (index+virtualArgs)*32, arg.Type, data)
		if err != nil {
			return nil, err
		}
		if arg.Type.T == ArrayTy && !isDynamicType(arg.Type) {
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
			// 如果我们有一个静态数组，例如 [3]uint256，它们的编码方式
			// 就如同 uint256,uint256,uint256。
			// 这意味着从现在开始计算索引时，我们需要添加两个“虚拟”参数。
			//
			// 计算完整的数组大小以获取下一个参数的正确偏移量。
			// 将其减 1，因为正常的索引增量仍然适用。
			virtualArgs += getTypeSize(arg.Type)/32 - 1
		} else if arg.Type.T == TupleTy && !isDynamicType(arg.Type) {
			// If we have a static tuple, like (uint256, bool, uint256), these are
			// coded as just like uint256,bool,uint256
			// 如果我们有一个静态元组，例如 (uint256, bool, uint256)，它们的编码
			// 就如同 uint256,bool,uint256
			virtualArgs += getTypeSize(arg.Type)/32 - 1
		}
		retval = append(retval, marshalledValue)
		index++
	}
	return retval, nil
}

// PackValues performs the operation value list -> hexdata.
// It is the semantic opposite of UnpackValues.
// PackValues 执行值列表 -> 二进制数据的操作。
// 它是 UnpackValues 的语义逆操作。
func (arguments Arguments) PackValues(args []interface{}) ([]byte, error) {
	return arguments.Pack(args...)
}

// Pack performs the operation value list -> hexdata.
// Pack 执行值列表 -> 二进制数据的操作。
func (arguments Arguments) Pack(args ...interface{}) ([]byte, error) {
	// Make sure arguments match up and pack them
	abiArgs := arguments
	if len(args) != len(abiArgs) {
		return nil, &LengthMismatchError{Expected: len(abiArgs), Given: len(args)}
	}
	// variableInput 是追加在打包输出末尾的输出。
	// 这用于字符串和字节等动态类型的输入。
	var variableInput []byte

	// inputOffset 是打包输出的字节偏移量
	inputOffset := 0
	for _, abiArg := range abiArgs {
		inputOffset += getTypeSize(abiArg.Type)
	}
	var ret []byte
	for i, a := range args {
		input := abiArgs[i]
		// pack the input
		// 打包输入
		packed, err := input.Type.pack(a)
		if err != nil {
			return nil, err
		}
		// check for dynamic types
		// 检查动态类型
		if isDynamicType(input.Type) {
			// set the offset
			// 设置偏移量
			ret = append(ret, packUint(uint64(inputOffset))...)
			// calculate next offset
			// 计算下一个偏移量
			inputOffset += len(packed)
			// append to variable input
			// 追加到可变输入
			variableInput = append(variableInput, packed...)
		} else {
			// append the packed value to the input
			// 将打包后的值追加到输入
			ret = append(ret, packed...)
		}
	}
	// append the variable input at the end of the packed input
	// 将可变输入追加到打包输入的末尾
	ret = append(ret, variableInput...)

	return ret, nil
}

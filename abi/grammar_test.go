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
	"reflect"
	"testing"
)

// TestSplitParameters splits only at nesting depth zero.
// TestSplitParameters 仅在嵌套深度为零处拆分。
func TestSplitParameters(t *testing.T) {
	t.Parallel()
	for i, tt := range []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"   ", nil},
		{"uint256 a", []string{"uint256 a"}},
		{"uint256 a, bool b", []string{"uint256 a", "bool b"}},
		{"address to,uint256 amount", []string{"address to", "uint256 amount"}},
		{
			"(uint256, (bool, string)) t, address a",
			[]string{"(uint256, (bool, string)) t", "address a"},
		},
		{
			"(uint256 x, uint256 y)[] points, bytes32 id",
			[]string{"(uint256 x, uint256 y)[] points", "bytes32 id"},
		},
	} {
		got, err := splitParameters(tt.input)
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("case %d: got %q, want %q", i, got, tt.want)
		}
	}
}

// TestSplitParametersUnbalanced rejects unbalanced parentheses with the depth
// reached and the text consumed.
// TestSplitParametersUnbalanced 拒绝不平衡的括号，并报告达到的深度和已消耗的文本。
func TestSplitParametersUnbalanced(t *testing.T) {
	t.Parallel()
	for i, input := range []string{
		"uint256 a, (bool b",
		"(uint256, (bool) t",
		"uint256))",
		"(a))(",
	} {
		_, err := splitParameters(input)
		if err == nil {
			t.Fatalf("case %d: expected error for %q", i, input)
		}
		if _, ok := err.(*InvalidParenthesisError); !ok {
			t.Fatalf("case %d: got %T, want *InvalidParenthesisError", i, err)
		}
	}
}

// TestSignatureMatchers exercises the anchored item matchers directly.
// TestSignatureMatchers 直接检验锚定的条目匹配器。
func TestSignatureMatchers(t *testing.T) {
	t.Parallel()
	groups := execTyped(functionRegex, "function balanceOf(address owner) view returns (uint256)")
	if groups == nil {
		t.Fatal("function signature did not match")
	}
	if groups["name"] != "balanceOf" || groups["stateMutability"] != "view" || groups["returns"] != "uint256" {
		t.Fatalf("unexpected captures: %v", groups)
	}

	groups = execTyped(structRegex, "struct Point { uint256 x; uint256 y; }")
	if groups == nil {
		t.Fatal("struct signature did not match")
	}
	if groups["name"] != "Point" || groups["properties"] != " uint256 x; uint256 y; " {
		t.Fatalf("unexpected captures: %v", groups)
	}

	if execTyped(eventRegex, "event 1Bad(uint256)") != nil {
		t.Fatal("identifier starting with a digit should not match")
	}
	if execTyped(fallbackRegex, "fallback()") != nil {
		t.Fatal("fallback without external should not match")
	}
}

// TestIsSolidityType validates the elementary type tables.
// TestIsSolidityType 验证基本类型表。
func TestIsSolidityType(t *testing.T) {
	t.Parallel()
	for _, typ := range []string{
		"address", "bool", "string", "function", "bytes", "bytes1", "bytes32",
		"uint", "uint8", "uint256", "int", "int144", "int256",
	} {
		if !isSolidityType(typ) {
			t.Fatalf("%q should be a solidity type", typ)
		}
	}
	for _, typ := range []string{
		"bytes0", "bytes33", "uint7", "uint257", "int0", "Point", "strings",
	} {
		if isSolidityType(typ) {
			t.Fatalf("%q should not be a solidity type", typ)
		}
	}
}

package utils

import (
	"fmt"
	"strconv"
)

// Transfer 把 jwt claims 中取出的值转换为字符串ID
func Transfer(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// TransferStrings claims 中的数组在解析后是 []interface{}
func TransferStrings(value interface{}) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []interface{}:
		res := make([]string, 0, len(v))
		for _, item := range v {
			if s := Transfer(item); s != "" {
				res = append(res, s)
			}
		}
		return res
	default:
		return nil
	}
}

// UniqueStrings 去重并保持原有顺序
func UniqueStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	res := make([]string, 0, len(items))
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	return res
}

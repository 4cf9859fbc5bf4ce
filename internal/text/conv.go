package text

import "unsafe"

// b2s 零拷贝 []byte -> string，前提是 b 之后不再被修改
func b2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// s2b 零拷贝 string -> []byte，返回的切片绝对不能写
func s2b(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

package utf8x

import "unicode/utf8"

// Kind 描述非法 UTF-8 序列的类型
type Kind uint8

const (
	KindNone                   Kind = iota
	KindUnexpectedContinuation      // 序列起始位置出现续字节 (0x80..0xBF)
	KindOverlong                    // 过长编码: C0/C1, E0 80..9F, F0 80..8F
	KindSurrogate                   // 代理码点: ED A0..BF
	KindOutOfRange                  // 超过 U+10FFFF: F4 90..BF, F5..F7
	KindInvalidByte                 // 永远不会出现在 UTF-8 中的字节: F8..FF
	KindTruncated                   // 多字节序列被非续字节打断
	KindIncomplete                  // 输入在多字节序列中途结束
)

var kindNames = [...]string{
	KindNone:                   "none",
	KindUnexpectedContinuation: "unexpected continuation byte",
	KindOverlong:               "overlong encoding",
	KindSurrogate:              "surrogate half",
	KindOutOfRange:             "code point out of range",
	KindInvalidByte:            "invalid byte",
	KindTruncated:              "truncated sequence",
	KindIncomplete:             "incomplete sequence at end of input",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Validate 扫描 b 一次，合法时返回 (-1, KindNone)。
// 非法时返回第一个非法序列的起始偏移量及其类型。
// 接受的输入集合与 utf8.Valid 完全一致。
func Validate(b []byte) (int, Kind) {
	// 绝大多数输入是合法的，先走标准库的快速路径
	if utf8.Valid(b) {
		return -1, KindNone
	}
	return classify(b)
}

// classify 按 Unicode 表 3-7 逐个序列检查
func classify(b []byte) (int, Kind) {
	n := len(b)
	for i := 0; i < n; {
		c := b[i]
		if c < utf8.RuneSelf {
			i++
			continue
		}

		var size int
		lo, hi := byte(0x80), byte(0xBF) // 第二个字节的合法范围
		switch {
		case c < 0xC0:
			return i, KindUnexpectedContinuation
		case c < 0xC2:
			return i, KindOverlong
		case c < 0xE0:
			size = 2
		case c == 0xE0:
			size, lo = 3, 0xA0
		case c == 0xED:
			size, hi = 3, 0x9F
		case c < 0xF0:
			size = 3
		case c == 0xF0:
			size, lo = 4, 0x90
		case c < 0xF4:
			size = 4
		case c == 0xF4:
			size, hi = 4, 0x8F
		case c < 0xF8:
			return i, KindOutOfRange
		default:
			return i, KindInvalidByte
		}

		if i+1 >= n {
			return i, KindIncomplete
		}
		if c2 := b[i+1]; c2 < lo || c2 > hi {
			return i, secondByteKind(c, c2)
		}
		for j := 2; j < size; j++ {
			if i+j >= n {
				return i, KindIncomplete
			}
			if !isContinuation(b[i+j]) {
				return i, KindTruncated
			}
		}
		i += size
	}
	return -1, KindNone
}

// secondByteKind 第二个字节不在合法范围内时判断具体原因
func secondByteKind(lead, c2 byte) Kind {
	if !isContinuation(c2) {
		return KindTruncated
	}
	switch lead {
	case 0xE0, 0xF0:
		return KindOverlong
	case 0xED:
		return KindSurrogate
	case 0xF4:
		return KindOutOfRange
	}
	return KindTruncated
}

func isContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

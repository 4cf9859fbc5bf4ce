package utf8x

// IsBoundary 判断 i 是否落在码点边界上。b 必须已经是合法的 UTF-8，
// 因此只需要看 b[i] 是不是续字节，不需要回溯。
// 0 和 len(b) 永远是边界，越界的 i 永远不是。
func IsBoundary(b []byte, i int) bool {
	if i == 0 || i == len(b) {
		return true
	}
	if i < 0 || i > len(b) {
		return false
	}
	return !isContinuation(b[i])
}

package bytesconv

import "unsafe"

// StringToBytes 在不发生内存拷贝的情况下把string转换为[]byte
// 返回的切片与入参共享底层数组，调用方不可以修改它
func StringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesToString 在不发生内存拷贝的情况下把[]byte转换为string
func BytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

package psyxml

// filterFlags 取Content-Type里分号前的媒体类型部分
func filterFlags(content string) string {
	for i, char := range content {
		if char == ' ' || char == ';' {
			return content[:i]
		}
	}
	return content
}

package render

import "net/http"

// Render 实现了Render接口的具体结构可以把数据以自己的格式写进响应
type Render interface {
	RenderData(w http.ResponseWriter, statusCode int) error
	WriteContentType(w http.ResponseWriter)
}

func writeContentType(w http.ResponseWriter, value string) {
	w.Header().Set("Content-Type", value)
}

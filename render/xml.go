package render

import (
	"encoding/xml"
	"net/http"
	"reflect"

	"github.com/clbanning/mxj"
)

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// XML 渲染器先把Data完整序列化，成功后才写状态码和响应体
// 序列化失败时响应没有动过，调用方还可以改写成错误响应
type XML struct {
	Data   any
	Indent string
}

func (x *XML) RenderData(w http.ResponseWriter, code int) error {
	body, err := x.Marshal()
	if err != nil {
		return err
	}
	x.WriteContentType(w)
	w.WriteHeader(code)
	_, err = w.Write(body)
	return err
}

// Marshal 把Data序列化成XML字节，map类的数据走mxj
func (x *XML) Marshal() ([]byte, error) {
	if m := mapData(x.Data); m != nil {
		mv := mxj.Map(m)
		if x.Indent != "" {
			return mv.XmlIndent("", x.Indent)
		}
		return mv.Xml()
	}
	if x.Indent != "" {
		return xml.MarshalIndent(x.Data, "", x.Indent)
	}
	return xml.Marshal(x.Data)
}

func (x *XML) WriteContentType(w http.ResponseWriter) {
	writeContentType(w, "application/xml")
}

// mapData 判断data是不是map[string]any一类的数据，encoding/xml编不了map，要走mxj
func mapData(data any) map[string]any {
	valueOf := reflect.ValueOf(data)
	if valueOf.Kind() != reflect.Map {
		return nil
	}
	if valueOf.Type().Key().Kind() != reflect.String || valueOf.Type().Elem() != anyType {
		return nil
	}
	return valueOf.Convert(reflect.TypeOf(map[string]any{})).Interface().(map[string]any)
}

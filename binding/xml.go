package binding

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/clbanning/mxj"
	"golang.org/x/net/html/charset"
)

var anyType = reflect.TypeOf((*any)(nil)).Elem()

type xmlBinding struct {
}

func (x xmlBinding) Name() string {
	return "xml"
}

func (x xmlBinding) Bind(r *http.Request, obj any) error {
	if r == nil || r.Body == nil {
		return errors.New("invalid request")
	}
	return decodeXML(r.Body, obj)
}

func (x xmlBinding) BindBody(body []byte, obj any) error {
	return decodeXML(bytes.NewReader(body), obj)
}

func decodeXML(r io.Reader, obj any) error {
	if target := mapTarget(obj); target.IsValid() {
		return decodeXMLMap(r, target)
	}
	decoder := xml.NewDecoder(r) //创建一个新的 XML 解码器,解码器将从该输入流中读取数据并解码为 Go 数据结构。
	//声明了encoding的文档先转成utf-8再解码
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(obj); err != nil {
		return err
	}
	return validate(obj) //使用第三方验证器
}

// mapTarget 判断obj是不是*map[string]any一类的绑定目标，是的话返回待赋值的map
func mapTarget(obj any) reflect.Value {
	valueOf := reflect.ValueOf(obj)
	if valueOf.Kind() != reflect.Pointer || valueOf.IsNil() {
		return reflect.Value{}
	}
	elem := valueOf.Elem()
	if elem.Kind() != reflect.Map {
		return reflect.Value{}
	}
	if elem.Type().Key().Kind() != reflect.String || elem.Type().Elem() != anyType {
		return reflect.Value{}
	}
	return elem
}

// decodeXMLMap 把任意结构的XML文档解析到map里，标签名做key
func decodeXMLMap(r io.Reader, target reflect.Value) error {
	mv, err := mxj.NewMapXmlReader(r)
	if err != nil {
		return err
	}
	target.Set(reflect.ValueOf(map[string]any(mv)).Convert(target.Type()))
	return nil
}

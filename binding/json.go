package binding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
)

var DisallowUnknownFields = false
var UsingLocalValidate = true

type jsonBinding struct {
}

func (j jsonBinding) Name() string {
	return "json"
}

func (j jsonBinding) Bind(r *http.Request, obj any) error {
	if r == nil || r.Body == nil {
		return errors.New("invalid request")
	}
	return j.decodeJson(r.Body, obj)
}

func (j jsonBinding) BindBody(body []byte, obj any) error {
	return j.decodeJson(bytes.NewReader(body), obj)
}

func (j jsonBinding) decodeJson(body io.Reader, obj any) error {
	decoder := json.NewDecoder(body) //创建一个新的 JSON 解码器,解码器将从该输入流中读取数据并解码为 Go 数据结构。
	if DisallowUnknownFields {
		decoder.DisallowUnknownFields()
	}
	if UsingLocalValidate { //使用了本地验证器
		return validateParam(obj, decoder) //那就不应该进入第三方验证器,直接返回
	}
	if err := decoder.Decode(obj); err != nil { //将json数据解码到obj变量中
		return err
	}
	return validate(obj) //使用第三方验证器
}

// validateParam 是本地自己实现的Json数据验证器，检查binding:"required"标记的字段有没有传
func validateParam(obj any, decoder *json.Decoder) error {
	if obj == nil {
		return nil
	}
	//obj是我们预先设定好的某个数据结构，传递过来的参数要和它进行比对
	valueOf := reflect.ValueOf(obj)
	if valueOf.Kind() != reflect.Pointer {
		return errors.New("this argument must have a pointer type")
	}
	elem := valueOf.Elem()
	switch elem.Kind() {
	case reflect.Struct:
		return checkParam(elem, obj, decoder)
	case reflect.Slice, reflect.Array:
		elemType := elem.Type().Elem()
		if elemType.Kind() == reflect.Struct {
			return checkParamSlice(elemType, obj, decoder)
		}
		return decoder.Decode(obj)
	default:
		return decoder.Decode(obj)
	}
}

// checkParam 比对传递过来的参数是否包含所需要的字段
func checkParam(valueOf reflect.Value, obj any, decoder *json.Decoder) error {
	//先解析为map，根据map中的key进行对比
	mapValue := make(map[string]interface{})
	if err := decoder.Decode(&mapValue); err != nil {
		return err
	}
	for i := 0; i < valueOf.NumField(); i++ {
		field := valueOf.Type().Field(i)
		name := field.Name
		required := field.Tag.Get("binding")
		jsonName := field.Tag.Get("json")
		if jsonName != "" {
			name = jsonName
		}
		value := mapValue[name] //查询
		if value == nil && required == "required" {
			//解析出来的map中没有所需要的特定某个字段，那就报错
			return fmt.Errorf("field [%s] not exist but [%s] is required", name, name)
		}
	}
	//decoder的流上面已经读过一次，无法再decode进obj，重新编码一遍再解进去
	b, err := json.Marshal(mapValue)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, obj)
}

func checkParamSlice(valueType reflect.Type, obj any, decoder *json.Decoder) error {
	mapValue := make([]map[string]interface{}, 0)
	if err := decoder.Decode(&mapValue); err != nil {
		return err
	}
	for i := 0; i < valueType.NumField(); i++ {
		field := valueType.Field(i)
		name := field.Name
		required := field.Tag.Get("binding")
		jsonName := field.Tag.Get("json")
		if jsonName != "" {
			name = jsonName
		}
		for _, v := range mapValue { //传过来的json数据没有包含要求的属性就报错
			value := v[name]
			if value == nil && required == "required" {
				return fmt.Errorf("field [%s] not exist but [%s] is required", name, name)
			}
		}
	}
	b, err := json.Marshal(mapValue)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, obj)
}

package binding

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator 绑定之后用来做结构体校验，置为nil可以跳过校验
var Validator StructValidator = &defaultValidator{}

type StructValidator interface {
	// ValidateStruct 结构体验证，如果错误返回对应的错误信息
	ValidateStruct(any) error
	// Engine 返回对应使用的验证器
	Engine() any
}

// defaultValidator 是默认的验证器
type defaultValidator struct {
	one      sync.Once //确保验证器的初始化只执行一次，即使在多个goroutine中被调用
	validate *validator.Validate
}

// SliceValidationError 汇总切片里每个元素的校验错误
type SliceValidationError []error

func (err SliceValidationError) Error() string {
	if len(err) == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range err {
		if e == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%d]: %s", i, e.Error())
	}
	return b.String()
}

// ValidateStruct 封装了使用第三方验证器的方法
func (d *defaultValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	valueOf := reflect.ValueOf(obj)
	switch valueOf.Kind() {
	case reflect.Pointer:
		return d.ValidateStruct(valueOf.Elem().Interface())
	case reflect.Struct:
		return d.validateStruct(obj)
	case reflect.Slice, reflect.Array:
		count := valueOf.Len()
		validateRet := make(SliceValidationError, 0)
		for i := 0; i < count; i++ { //每一个元素都要验证一下，是否符合规范
			if err := d.validateStruct(valueOf.Index(i).Interface()); err != nil {
				validateRet = append(validateRet, err)
			}
		}
		if len(validateRet) == 0 {
			return nil
		}
		return validateRet
	default:
		return nil
	}
}

// Engine 返回该结构体的验证器
func (d *defaultValidator) Engine() any {
	d.lazyInit()
	return d.validate
}

// lazyInit 延迟初始化，第一次用到的时候才创建验证器
func (d *defaultValidator) lazyInit() {
	d.one.Do(func() {
		d.validate = validator.New()
	})
}

func (d *defaultValidator) validateStruct(obj any) error {
	d.lazyInit()
	return d.validate.Struct(obj)
}

// validate 过一遍全局校验器，Validator为nil时直接放行
func validate(obj any) error {
	if Validator == nil {
		return nil
	}
	return Validator.ValidateStruct(obj)
}

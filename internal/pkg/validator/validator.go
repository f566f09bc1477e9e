package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(fieldName)
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// Details - ошибки валидации в виде "поле: правило" для ответа клиенту
func Details(err error) map[string]interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[fe.Namespace()] = rule
	}
	return details
}

// fieldName - имя поля из тега json или query, как его видит клиент
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

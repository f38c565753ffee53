// Package requests реализует декларативную валидацию входящих запросов:
// типизированные поля, упорядоченные наборы полей (Shape) и накопление
// ошибок по каждому полю.
//
// Значения приходят из разобранного JSON-тела; числа ожидаются как
// json.Number (декодер с UseNumber), но для удобства прямых вызовов
// принимаются также int и целые float64.
package requests

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// PhoneCountryCode первая цифра номера телефона
	PhoneCountryCode = "7"
	// PhoneLength полная длина номера телефона
	PhoneLength = 11
	// MaxAge максимальный возраст для поля дня рождения, в годах
	MaxAge = 70
	// DateLayout формат дат во входящих запросах
	DateLayout = "02.01.2006"
)

// Допустимые значения поля пола.
const (
	GenderUnknown = 0
	GenderMale    = 1
	GenderFemale  = 2
)

// Options общая политика поля: обязательность и допустимость пустого значения.
type Options struct {
	Required bool
	Nullable bool
}

// Field проверяет и нормализует значение одного поля запроса.
// Validate возвращает нормализованное значение либо причину отказа.
type Field interface {
	Options() Options
	Validate(value any) (any, error)
}

// CharField строковое поле.
type CharField struct {
	Opts Options
}

// Options возвращает политику поля.
func (f CharField) Options() Options { return f.Opts }

// Validate проверяет, что значение — строка; пустая строка допустима
// только для nullable-поля.
func (f CharField) Validate(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errors.New("must be a string")
	}
	if s == "" && !f.Opts.Nullable {
		return nil, errors.New("field cannot be empty")
	}
	return s, nil
}

// ArgumentsField поле с вложенным объектом аргументов метода.
// Пустой объект допустим: вложенная форма сама сообщит о своих
// обязательных полях.
type ArgumentsField struct {
	Opts Options
}

// Options возвращает политику поля.
func (f ArgumentsField) Options() Options { return f.Opts }

// Validate проверяет, что значение — объект.
func (f ArgumentsField) Validate(value any) (any, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, errors.New("must be an object")
	}
	return m, nil
}

// EmailField строковое поле с проверкой адреса почты.
type EmailField struct {
	Opts Options
}

// Options возвращает политику поля.
func (f EmailField) Options() Options { return f.Opts }

// Validate выполняет проверки CharField и дополнительно требует '@'.
func (f EmailField) Validate(value any) (any, error) {
	v, err := CharField{Opts: f.Opts}.Validate(value)
	if err != nil {
		return nil, err
	}
	s := v.(string)
	if s != "" && !strings.Contains(s, "@") {
		return nil, errors.New("invalid email format")
	}
	return s, nil
}

// PhoneField номер телефона: строка или целое число, ровно PhoneLength цифр,
// первая — PhoneCountryCode. Нормализуется к строке.
type PhoneField struct {
	Opts Options
}

// Options возвращает политику поля.
func (f PhoneField) Options() Options { return f.Opts }

// Validate проверяет формат номера.
func (f PhoneField) Validate(value any) (any, error) {
	s, err := intOrStringValue(value)
	if err != nil {
		return nil, errors.New("must be a string or an integer")
	}
	if len(s) != PhoneLength || !strings.HasPrefix(s, PhoneCountryCode) {
		return nil, errors.New("invalid phone number format")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, errors.New("invalid phone number format")
		}
	}
	return s, nil
}

// DateField дата в формате DD.MM.YYYY, нормализуется к time.Time.
type DateField struct {
	Opts Options
}

// Options возвращает политику поля.
func (f DateField) Options() Options { return f.Opts }

// Validate разбирает строку как дату.
func (f DateField) Validate(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errors.New("must be a string")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, errors.New("invalid date format")
	}
	return t, nil
}

// BirthDayField дата рождения: проверки DateField плюс ограничение возраста.
type BirthDayField struct {
	Opts Options
}

// Options возвращает политику поля.
func (f BirthDayField) Options() Options { return f.Opts }

// Validate проверяет дату и что возраст не превышает MaxAge лет.
// Граница включительная: ровно MaxAge лет — допустимо.
func (f BirthDayField) Validate(value any) (any, error) {
	v, err := DateField{Opts: f.Opts}.Validate(value)
	if err != nil {
		return nil, err
	}
	t := v.(time.Time)
	if time.Now().Year()-t.Year() > MaxAge {
		return nil, errors.New("date is too old")
	}
	return t, nil
}

// GenderField пол: целое число из закрытого множества {0, 1, 2}.
type GenderField struct {
	Opts Options
}

// Options возвращает политику поля.
func (f GenderField) Options() Options { return f.Opts }

// Validate проверяет принадлежность перечислению.
func (f GenderField) Validate(value any) (any, error) {
	n, err := intValue(value)
	if err != nil {
		return nil, errors.New("invalid gender value")
	}
	if n < GenderUnknown || n > GenderFemale {
		return nil, errors.New("invalid gender value")
	}
	return n, nil
}

// ClientIDsField непустой список целочисленных идентификаторов клиентов.
// Пустой список отклоняется самим полем, вне общей политики Options.
type ClientIDsField struct {
	Opts Options
}

// Options возвращает политику поля.
func (f ClientIDsField) Options() Options { return f.Opts }

// Validate проверяет список и нормализует его к []int.
func (f ClientIDsField) Validate(value any) (any, error) {
	var ids []int
	switch list := value.(type) {
	case []int:
		ids = list
	case []any:
		ids = make([]int, 0, len(list))
		for _, item := range list {
			n, err := intValue(item)
			if err != nil {
				return nil, errors.New("must be a list of integers")
			}
			ids = append(ids, n)
		}
	default:
		return nil, errors.New("must be a list of integers")
	}
	if len(ids) == 0 {
		return nil, errors.New("client ids cannot be empty")
	}
	return ids, nil
}

// intValue приводит значение к целому числу.
func intValue(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, err
		}
		return int(n), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, errors.New("not an integer")
		}
		return int(v), nil
	default:
		return 0, errors.New("not an integer")
	}
}

// intOrStringValue приводит значение к строке, принимая строку или целое.
func intOrStringValue(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	n, err := intValue(value)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

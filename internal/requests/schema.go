package requests

// FieldDef связывает имя поля во входящих данных с его валидатором.
type FieldDef struct {
	Name  string
	Field Field
}

// Shape — упорядоченный набор полей одного вида запроса. Объявляется один
// раз на вид запроса и переиспользуется: поля не хранят состояния.
type Shape []FieldDef

// Request результат применения Shape к сырым данным. Data содержит
// нормализованные значения прошедших проверку полей, Errors — причины
// отказа по каждому полю.
type Request struct {
	Data   map[string]any
	Errors map[string][]string
}

// Validate прогоняет raw через поля Shape в порядке объявления.
//
// Отсутствующее значение (или JSON null) обязательного поля дает ошибку
// "field is required" без дальнейших проверок; отсутствующее необязательное
// поле не попадает ни в Data, ни в Errors. Неизвестные ключи raw молча
// игнорируются.
func (s Shape) Validate(raw map[string]any) *Request {
	req := &Request{
		Data:   make(map[string]any),
		Errors: make(map[string][]string),
	}
	for _, def := range s {
		value, ok := raw[def.Name]
		if !ok || value == nil {
			if def.Field.Options().Required {
				req.Errors[def.Name] = append(req.Errors[def.Name], "field is required")
			}
			continue
		}
		normalized, err := def.Field.Validate(value)
		if err != nil {
			req.Errors[def.Name] = append(req.Errors[def.Name], err.Error())
			continue
		}
		req.Data[def.Name] = normalized
	}
	return req
}

// IsValid сообщает, что ни одно поле не отклонено.
func (r *Request) IsValid() bool {
	return len(r.Errors) == 0
}

// Has сообщает, есть ли у поля принятое значение.
func (r *Request) Has(name string) bool {
	_, ok := r.Data[name]
	return ok
}

// GetString возвращает строковое значение поля либо пустую строку.
func (r *Request) GetString(name string) string {
	s, _ := r.Data[name].(string)
	return s
}

package requests

// AdminLogin зарезервированный логин администратора.
const AdminLogin = "admin"

// MethodShape внешний конверт запроса: идентификация, токен,
// имя метода и вложенные аргументы.
var MethodShape = Shape{
	{Name: "account", Field: CharField{Opts: Options{Nullable: true}}},
	{Name: "login", Field: CharField{Opts: Options{Required: true, Nullable: true}}},
	{Name: "token", Field: CharField{Opts: Options{Required: true, Nullable: true}}},
	{Name: "arguments", Field: ArgumentsField{Opts: Options{Required: true, Nullable: true}}},
	{Name: "method", Field: CharField{Opts: Options{Required: true}}},
}

// OnlineScoreShape аргументы метода online_score: все поля необязательные,
// требование парности проверяется обработчиком поверх валидации.
var OnlineScoreShape = Shape{
	{Name: "first_name", Field: CharField{Opts: Options{Nullable: true}}},
	{Name: "last_name", Field: CharField{Opts: Options{Nullable: true}}},
	{Name: "email", Field: EmailField{Opts: Options{Nullable: true}}},
	{Name: "phone", Field: PhoneField{Opts: Options{Nullable: true}}},
	{Name: "birthday", Field: BirthDayField{Opts: Options{Nullable: true}}},
	{Name: "gender", Field: GenderField{Opts: Options{Nullable: true}}},
}

// ClientsInterestsShape аргументы метода clients_interests.
var ClientsInterestsShape = Shape{
	{Name: "client_ids", Field: ClientIDsField{Opts: Options{Required: true}}},
	{Name: "date", Field: DateField{Opts: Options{Nullable: true}}},
}

// MethodRequest провалидированный внешний конверт.
type MethodRequest struct {
	*Request
}

// ParseMethod валидирует тело запроса как конверт метода.
func ParseMethod(body map[string]any) *MethodRequest {
	return &MethodRequest{Request: MethodShape.Validate(body)}
}

// IsAdmin сообщает, пришел ли запрос от административного логина.
func (r *MethodRequest) IsAdmin() bool {
	return r.GetString("login") == AdminLogin
}

// Account возвращает значение поля account (пустая строка, если не передано).
func (r *MethodRequest) Account() string { return r.GetString("account") }

// Login возвращает значение поля login.
func (r *MethodRequest) Login() string { return r.GetString("login") }

// Token возвращает предъявленный токен.
func (r *MethodRequest) Token() string { return r.GetString("token") }

// Method возвращает имя вызываемого метода.
func (r *MethodRequest) Method() string { return r.GetString("method") }

// Arguments возвращает вложенные аргументы метода.
func (r *MethodRequest) Arguments() map[string]any {
	m, _ := r.Data["arguments"].(map[string]any)
	return m
}

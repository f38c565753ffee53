// Package scoring содержит бизнес-логику скорингового API: диспетчеризацию
// методов, расчет оценки с мемоизацией в хранилище и выборку интересов
// клиентов.
package scoring

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/magabrotheeeer/scoring-api/internal/auth"
	"github.com/magabrotheeeer/scoring-api/internal/lib/sl"
	"github.com/magabrotheeeer/scoring-api/internal/requests"
)

// Имена методов API.
const (
	MethodOnlineScore      = "online_score"
	MethodClientsInterests = "clients_interests"
)

const (
	// AdminScore фиксированная оценка для административного логина
	AdminScore = 42

	scoreKeyPrefix     = "uid:"
	interestsKeyPrefix = "i:"
	scoreCacheTTL      = time.Hour
)

// Storage описывает методы key/value-хранилища. Get — обязательное чтение
// с ошибкой при недоступности; CacheGet и CacheSet — best-effort.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	CacheGet(ctx context.Context, key string) string
	CacheSet(ctx context.Context, key, value string, ttl time.Duration)
}

// Meta диагностические сведения о запросе. Заполняется по ходу обработки
// и уходит только в лог, на ответ не влияет.
type Meta struct {
	RequestID string
	Has       []string
	NClients  int
}

// Service реализует обработку методов скорингового API.
type Service struct {
	storage Storage
	log     *slog.Logger
}

// New создает новый экземпляр Service.
func New(storage Storage, log *slog.Logger) *Service {
	return &Service{
		storage: storage,
		log:     log,
	}
}

// HandleMethod разбирает конверт запроса, аутентифицирует его и направляет
// в обработчик метода. Возвращает полезную нагрузку ответа и HTTP-статус;
// при статусе, отличном от 200, нагрузка — это описание ошибки (строка либо
// словарь ошибок по полям).
func (s *Service) HandleMethod(ctx context.Context, body map[string]any, meta *Meta) (any, int) {
	req := requests.ParseMethod(body)
	if !req.IsValid() {
		return req.Errors, http.StatusUnprocessableEntity
	}

	if !auth.Check(req) {
		return "Forbidden", http.StatusForbidden
	}

	switch req.Method() {
	case MethodOnlineScore:
		return s.handleOnlineScore(ctx, req, meta)
	case MethodClientsInterests:
		return s.handleClientsInterests(ctx, req.Arguments(), meta)
	default:
		return "Not Found", http.StatusNotFound
	}
}

// scorePairs пары полей, хотя бы одна из которых должна быть заполнена
// целиком в запросе online_score.
var scorePairs = [][2]string{
	{"phone", "email"},
	{"first_name", "last_name"},
	{"gender", "birthday"},
}

func (s *Service) handleOnlineScore(ctx context.Context, env *requests.MethodRequest, meta *Meta) (any, int) {
	req := requests.OnlineScoreShape.Validate(env.Arguments())
	if !req.IsValid() {
		return req.Errors, http.StatusUnprocessableEntity
	}

	if !env.IsAdmin() && !hasValidPair(req) {
		return "at least one of the field pairs must be provided: " +
				"phone/email, first_name/last_name, gender/birthday",
			http.StatusUnprocessableEntity
	}

	for _, def := range requests.OnlineScoreShape {
		if req.Has(def.Name) {
			meta.Has = append(meta.Has, def.Name)
		}
	}

	if env.IsAdmin() {
		return map[string]float64{"score": AdminScore}, http.StatusOK
	}
	return map[string]float64{"score": s.Score(ctx, personFrom(req))}, http.StatusOK
}

func (s *Service) handleClientsInterests(ctx context.Context, args map[string]any, meta *Meta) (any, int) {
	req := requests.ClientsInterestsShape.Validate(args)
	if !req.IsValid() {
		return req.Errors, http.StatusUnprocessableEntity
	}

	ids, _ := req.Data["client_ids"].([]int)
	meta.NClients = len(ids)

	interests, err := s.Interests(ctx, ids)
	if err != nil {
		s.log.Error("failed to fetch interests", sl.Err(err))
		return "Internal Server Error", http.StatusInternalServerError
	}
	return interests, http.StatusOK
}

// hasValidPair проверяет требование парности. Поле считается заполненным,
// если оно прошло валидацию и не пустое; gender — перечисление, где 0
// является значимым значением, поэтому учитывается само наличие.
func hasValidPair(req *requests.Request) bool {
	for _, pair := range scorePairs {
		if present(req, pair[0]) && present(req, pair[1]) {
			return true
		}
	}
	return false
}

func present(req *requests.Request, name string) bool {
	v, ok := req.Data[name]
	if !ok {
		return false
	}
	if s, isStr := v.(string); isStr {
		return s != ""
	}
	return true
}

// Person установленные атрибуты пользователя для расчета оценки.
// Отсутствующие атрибуты — нулевые значения; Gender хранится указателем,
// поскольку 0 — значимое значение перечисления.
type Person struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Birthday  time.Time
	Gender    *int
}

func personFrom(req *requests.Request) Person {
	p := Person{
		FirstName: req.GetString("first_name"),
		LastName:  req.GetString("last_name"),
		Email:     req.GetString("email"),
		Phone:     req.GetString("phone"),
	}
	if t, ok := req.Data["birthday"].(time.Time); ok {
		p.Birthday = t
	}
	if g, ok := req.Data["gender"].(int); ok {
		p.Gender = &g
	}
	return p
}

// Score считает оценку по аддитивному правилу с мемоизацией в хранилище.
//
// Перед расчетом выполняется best-effort чтение по ключу, производному от
// содержимого атрибутов; попадание возвращается как есть, без пересчета.
// Промах или недоступность кеша прозрачно приводят к расчету с последующей
// best-effort записью результата.
func (s *Service) Score(ctx context.Context, p Person) float64 {
	key := scoreKey(p)
	if cached := s.storage.CacheGet(ctx, key); cached != "" {
		if v, err := strconv.ParseFloat(cached, 64); err == nil {
			return v
		}
	}

	var score float64
	if p.Phone != "" {
		score += 1.5
	}
	if p.Email != "" {
		score += 1.5
	}
	if !p.Birthday.IsZero() && p.Gender != nil {
		score += 1.5
	}
	if p.FirstName != "" && p.LastName != "" {
		score += 0.5
	}

	s.storage.CacheSet(ctx, key, strconv.FormatFloat(score, 'g', -1, 64), scoreCacheTTL)
	return score
}

// scoreKey строит ключ мемоизации: md5 от конкатенации имени, фамилии,
// телефона и дня рождения в формате YYYYMMDD, с префиксом пространства имен.
func scoreKey(p Person) string {
	var birthday string
	if !p.Birthday.IsZero() {
		birthday = p.Birthday.Format("20060102")
	}
	sum := md5.Sum([]byte(p.FirstName + p.LastName + p.Phone + birthday))
	return scoreKeyPrefix + hex.EncodeToString(sum[:])
}

// Interests возвращает интересы клиентов из хранилища. В отличие от
// мемоизации оценки этот путь не best-effort: недоступность хранилища —
// ошибка. Отсутствие записи по клиенту дает пустой список.
func (s *Service) Interests(ctx context.Context, clientIDs []int) (map[string][]string, error) {
	const op = "scoring.Interests"
	interests := make(map[string][]string, len(clientIDs))
	for _, id := range clientIDs {
		data, err := s.storage.Get(ctx, interestsKeyPrefix+strconv.Itoa(id))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		list := []string{}
		if data != "" {
			if err := json.Unmarshal([]byte(data), &list); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
		interests[strconv.Itoa(id)] = list
	}
	return interests, nil
}

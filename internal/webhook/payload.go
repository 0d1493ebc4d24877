package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cartverify/prepay-gateway/internal/domain"
)

// Имена опций, образующих составной внешний идентификатор позиции.
const (
	OptionPID = "pid"
	OptionVID = "vid"
)

// flexNumber — число, которое вебхук присылает и числом, и числовой строкой
// ("10.00" и 10 после нормализации равны). null и отсутствие поля — «не задано».
type flexNumber struct {
	value   float64
	defined bool
}

func (f *flexNumber) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("numeric string expected: %w", err)
		}
		f.value, f.defined = v, true
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	f.value, f.defined = v, true
	return nil
}

func (f *flexNumber) ptr() *float64 {
	if !f.defined {
		return nil
	}
	v := f.value
	return &v
}

// optionPayload — пара имя/значение из fx:item_options.
// Значение тоже бывает числом — приводим к строке.
type optionPayload struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

func (o *optionPayload) stringValue() string {
	raw := bytes.TrimSpace(o.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return s
		}
	}
	return string(raw)
}

// itemPayload — позиция корзины, как её присылает вебхук.
type itemPayload struct {
	Name     string     `json:"name"`
	Code     string     `json:"code"`
	Price    flexNumber `json:"price"`
	Quantity flexNumber `json:"quantity"`
	Embedded struct {
		Options []optionPayload `json:"fx:item_options"`
	} `json:"_embedded"`
}

// prepaymentPayload — корневая структура тела вебхука.
type prepaymentPayload struct {
	Embedded struct {
		Items []itemPayload `json:"fx:items"`
	} `json:"_embedded"`
}

// ExtractItems — достать список позиций из тела вебхука.
// Отсутствие списка (или нечитаемое тело) — пустой результат, не ошибка:
// корзина без позиций — корректный, хоть и неинтересный, вход.
func ExtractItems(body []byte) []domain.CartItem {
	var payload prepaymentPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}

	items := make([]domain.CartItem, 0, len(payload.Embedded.Items))
	for i := range payload.Embedded.Items {
		p := &payload.Embedded.Items[i]
		item := domain.CartItem{
			Code:     p.Code,
			Name:     p.Name,
			Price:    p.Price.ptr(),
			Quantity: p.Quantity.ptr(),
			Options:  make([]domain.ItemOption, 0, len(p.Embedded.Options)),
		}
		for _, opt := range p.Embedded.Options {
			item.Options = append(item.Options, domain.ItemOption{Name: opt.Name, Value: opt.stringValue()})
		}
		items = append(items, item)
	}
	return items
}

// ValidItem — структурная (не бизнес-) проверка позиции: цена и количество
// заданы (ноль — тоже значение), опции pid и vid присутствуют.
// Возвращает список причин для диагностики; пустой список — позиция корректна.
func ValidItem(item *domain.CartItem) (bool, []string) {
	var reasons []string
	if !item.HasPrice() {
		reasons = append(reasons, fmt.Sprintf("%s has no price.", item.Name))
	}
	if !item.HasQuantity() {
		reasons = append(reasons, fmt.Sprintf("%s has no quantity.", item.Name))
	}
	if _, ok := item.Option(OptionPID); !ok {
		reasons = append(reasons, fmt.Sprintf("%s has no pid.", item.Name))
	}
	if _, ok := item.Option(OptionVID); !ok {
		reasons = append(reasons, fmt.Sprintf("%s has no vid.", item.Name))
	}
	return len(reasons) == 0, reasons
}

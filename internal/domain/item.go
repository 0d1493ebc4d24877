package domain

// CanonicalItem — эталонная запись о товаре из авторитетного хранилища
// (OrderDesk и т.п.). Обязателен только Code; отсутствие Price/Inventory
// означает «эту проверку не выполнять» (fail-open).
type CanonicalItem struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Price      *float64 `json:"price,omitempty"`
	Inventory  *float64 `json:"inventory,omitempty"`
	ParentCode string   `json:"parent_code,omitempty"`
}

// HasPrice — объявлена ли у эталонной записи цена.
func (c *CanonicalItem) HasPrice() bool { return c.Price != nil }

// HasInventory — объявлен ли у эталонной записи остаток.
func (c *CanonicalItem) HasInventory() bool { return c.Inventory != nil }

// ItemOption — пара имя/значение из набора опций позиции корзины.
type ItemOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CartItem — позиция корзины, присланная на проверку перед оплатой.
// Price/Quantity приходят от вебхука и числом, и числовой строкой,
// поэтому храним уже нормализованные значения (nil = поле не задано).
type CartItem struct {
	Code     string
	Name     string
	Price    *float64
	Quantity *float64
	Options  []ItemOption
}

// Option — поиск значения опции по имени. Возвращает (значение, нашлось ли):
// отсутствие опции — явный результат, а не пустая строка.
func (i *CartItem) Option(name string) (string, bool) {
	for _, opt := range i.Options {
		if opt.Name == name {
			return opt.Value, true
		}
	}
	return "", false
}

// HasPrice — задана ли цена (ноль — тоже задана).
func (i *CartItem) HasPrice() bool { return i.Price != nil }

// HasQuantity — задано ли количество (ноль — тоже задано).
func (i *CartItem) HasQuantity() bool { return i.Quantity != nil }

// QuantityOrZero — количество либо 0, если оно не задано.
func (i *CartItem) QuantityOrZero() float64 {
	if i.Quantity == nil {
		return 0
	}
	return *i.Quantity
}

// Float — вспомогательный конструктор указателя на float64
// (для литералов в сборке структур и тестах).
func Float(v float64) *float64 { return &v }

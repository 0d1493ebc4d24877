package domain

import "net/http"

// Verdict — итог проверки корзины: принят платёж или нет, человекочитаемая
// причина и HTTP-статус как транспортный сигнал для вебхука:
// 200 — запрос понят (ok решает исход), 400 — запрос некорректен,
// 500 — внутренняя ошибка/ошибка провайдера, 503 — сервис не сконфигурирован.
type Verdict struct {
	OK         bool   `json:"ok"`
	Details    string `json:"details"`
	StatusCode int    `json:"-"`
}

// Approved — положительный вердикт (все позиции прошли проверку).
func Approved() Verdict {
	return Verdict{OK: true, Details: " ", StatusCode: http.StatusOK}
}

// Rejected — отрицательный вердикт по содержимому корректного запроса.
func Rejected(details string) Verdict {
	return Verdict{OK: false, Details: details, StatusCode: http.StatusOK}
}

// BadRequest — запрос не прошёл проверку подлинности/формата.
func BadRequest(details string) Verdict {
	return Verdict{OK: false, Details: details, StatusCode: http.StatusBadRequest}
}

// Unavailable — сервис не сконфигурирован для обслуживания запросов.
func Unavailable(details string) Verdict {
	return Verdict{OK: false, Details: details, StatusCode: http.StatusServiceUnavailable}
}

// Failed — внутренняя ошибка или отказ провайдера.
func Failed(details string) Verdict {
	return Verdict{OK: false, Details: details, StatusCode: http.StatusInternalServerError}
}

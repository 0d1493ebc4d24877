package ports

// WebhookAuthenticator — проверка подлинности входящего вебхука.
// Вызывающему нужен только ответ да/нет плюс сообщение для вердикта 400.
type WebhookAuthenticator interface {
	// Authenticate — проверить тело запроса и подпись из заголовка.
	// nil — запрос подлинный; иначе ошибка с причиной для клиента.
	Authenticate(body []byte, signature string) error
}

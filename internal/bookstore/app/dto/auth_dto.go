// Package dto содержит объекты передачи данных HTTP API.
package dto

// CredentialsRequest - тело запросов регистрации и входа.
// Поля не валидируются: отсутствующее поле приходит пустой строкой.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MessageResponse - единый формат ответа со статусным сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}

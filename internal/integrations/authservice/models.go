package authservice

// User модель пользователя из auth-провайдера
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
	Provider    string `json:"provider"`
	Role        string `json:"role,omitempty"`
	Disabled    bool   `json:"disabled"`
}

// listUsersResponse ответ auth-провайдера на список пользователей
type listUsersResponse struct {
	Users []User `json:"users"`
}

// ErrorResponse модель ошибки от auth-провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

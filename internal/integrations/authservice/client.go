package authservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с хостируемым auth-провайдером
// Аккаунты клиентов живут у провайдера; сервис только читает список
// и выполняет административные действия (блокировка, роль, удаление)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента auth-провайдера
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListUsers получает список всех пользователей
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	url := fmt.Sprintf("%s/admin/users", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var parsed listUsersResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return parsed.Users, nil
}

// SetDisabled блокирует или разблокирует пользователя
func (c *Client) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	url := fmt.Sprintf("%s/admin/users/%s/block", c.baseURL, uid)

	payload := map[string]bool{"disabled": disabled}
	return c.put(ctx, url, payload, "SetDisabled")
}

// SetRole назначает пользователю роль
func (c *Client) SetRole(ctx context.Context, uid string, role string) error {
	url := fmt.Sprintf("%s/admin/users/%s/role", c.baseURL, uid)

	payload := map[string]string{"role": role}
	return c.put(ctx, url, payload, "SetRole")
}

// Delete удаляет пользователя из auth-провайдера
// Исторические бронирования не затрагиваются: они хранят snapshot
// данных клиента
func (c *Client) Delete(ctx context.Context, uid string) error {
	url := fmt.Sprintf("%s/admin/users/%s", c.baseURL, uid)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	return c.checkMutationStatus(resp, "Delete")
}

func (c *Client) put(ctx context.Context, url string, payload interface{}, op string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %s - failed to marshal payload: %v", ErrInternal, op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %s - failed to create request: %v", ErrInternal, op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s - failed to execute request: %v", ErrInternal, op, err)
	}
	defer resp.Body.Close()

	return c.checkMutationStatus(resp, op)
}

func (c *Client) checkMutationStatus(resp *http.Response, op string) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn("authservice: %s returned status %d: %s", op, resp.StatusCode, string(body))
		return fmt.Errorf("%w: %s - unexpected status code %d", ErrInvalidResponse, op, resp.StatusCode)
	}
}

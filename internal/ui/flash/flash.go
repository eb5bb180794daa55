// Пакет flash — одноразовые уведомления (toast) UI.
// Уведомление переживает POST → redirect в зашифрованном cookie
// (AES-256-GCM), читается при следующем рендере страницы и удаляется.
package flash

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// CookieName — имя cookie с уведомлением.
const CookieName = "as_flash"

// cookieMaxAge — уведомление, не показанное за минуту, теряет смысл.
const cookieMaxAge = 60

// Message — уведомление с заголовком и текстом.
type Message struct {
	// Title — заголовок (например, «Message Sent!»)
	Title string `json:"title"`
	// Description — текст уведомления
	Description string `json:"description"`
}

// Notifier — поверхность уведомлений: fire-and-forget, без гарантии доставки.
type Notifier interface {
	Notify(w http.ResponseWriter, msg Message)
}

// Manager шифрует/дешифрует Message в HTTP cookie через AES-256-GCM.
type Manager struct {
	gcm    cipher.AEAD
	secure bool
}

// NewManager создаёт менеджер уведомлений.
// key — base64 32-байтового ключа или произвольная строка (хешируется SHA-256).
// Пустой key — случайный ключ (непостоянный между рестартами).
func NewManager(key string, secure bool) (*Manager, error) {
	var keyBytes []byte

	if key == "" {
		keyBytes = make([]byte, 32)
		if _, err := io.ReadFull(rand.Reader, keyBytes); err != nil {
			return nil, fmt.Errorf("ошибка генерации ключа flash: %w", err)
		}
	} else {
		var err error
		keyBytes, err = base64.StdEncoding.DecodeString(key)
		if err != nil || len(keyBytes) != 32 {
			keyBytes = sha256Key(key)
		}
	}

	block, err := aes.NewCipher(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AES cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания GCM: %w", err)
	}

	return &Manager{gcm: gcm, secure: secure}, nil
}

// Encrypt шифрует Message и возвращает base64-строку.
func (m *Manager) Encrypt(msg Message) (string, error) {
	plaintext, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации уведомления: %w", err)
	}

	nonce := make([]byte, m.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("ошибка генерации nonce: %w", err)
	}

	ciphertext := m.gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.URLEncoding.EncodeToString(ciphertext), nil
}

// Decrypt дешифрует base64-строку обратно в Message.
func (m *Manager) Decrypt(encrypted string) (Message, error) {
	ciphertext, err := base64.URLEncoding.DecodeString(encrypted)
	if err != nil {
		return Message{}, fmt.Errorf("ошибка декодирования base64: %w", err)
	}

	nonceSize := m.gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return Message{}, errors.New("зашифрованные данные слишком короткие")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := m.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return Message{}, fmt.Errorf("ошибка дешифрования уведомления: %w", err)
	}

	var msg Message
	if err := json.Unmarshal(plaintext, &msg); err != nil {
		return Message{}, fmt.Errorf("ошибка десериализации уведомления: %w", err)
	}
	return msg, nil
}

// Notify ставит уведомление в cookie ответа. Ошибка шифрования
// означает, что уведомление просто не будет показано.
func (m *Manager) Notify(w http.ResponseWriter, msg Message) {
	encrypted, err := m.Encrypt(msg)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    encrypted,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop извлекает уведомление из запроса и удаляет cookie в ответе.
// Возвращает nil, если уведомления нет или cookie повреждён.
func (m *Manager) Pop(w http.ResponseWriter, r *http.Request) *Message {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	msg, err := m.Decrypt(cookie.Value)
	if err != nil {
		return nil
	}
	return &msg
}

// sha256Key хеширует строковый ключ в 32 bytes через SHA-256.
func sha256Key(key string) []byte {
	h := sha256.Sum256([]byte(key))
	return h[:]
}

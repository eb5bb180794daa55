package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestEncryptDecryptRoundTrip проверяет шифрование и дешифрование уведомления.
func TestEncryptDecryptRoundTrip(t *testing.T) {
	m, err := NewManager("", false)
	if err != nil {
		t.Fatalf("Ошибка создания Manager: %v", err)
	}

	original := Message{Title: "Message Sent!", Description: "We'll get back to you as soon as possible."}

	encrypted, err := m.Encrypt(original)
	if err != nil {
		t.Fatalf("Ошибка шифрования: %v", err)
	}

	decrypted, err := m.Decrypt(encrypted)
	if err != nil {
		t.Fatalf("Ошибка дешифрования: %v", err)
	}
	if decrypted != original {
		t.Errorf("want %+v, got %+v", original, decrypted)
	}
}

// TestDecryptWithDifferentKey проверяет, что чужой ключ не расшифровывает cookie.
func TestDecryptWithDifferentKey(t *testing.T) {
	m1, _ := NewManager("key-one", false)
	m2, _ := NewManager("key-two", false)

	encrypted, err := m1.Encrypt(Message{Title: "x"})
	if err != nil {
		t.Fatalf("Ошибка шифрования: %v", err)
	}

	if _, err := m2.Decrypt(encrypted); err == nil {
		t.Error("Ожидалась ошибка при дешифровании чужим ключом")
	}
}

// TestDecryptGarbage проверяет устойчивость к повреждённым данным.
func TestDecryptGarbage(t *testing.T) {
	m, _ := NewManager("k", false)

	for _, input := range []string{"", "@@@", "YWJj"} {
		if _, err := m.Decrypt(input); err == nil {
			t.Errorf("Decrypt(%q): ожидалась ошибка", input)
		}
	}
}

// TestNotifyAndPop проверяет полный цикл: Notify → cookie → Pop → удаление.
func TestNotifyAndPop(t *testing.T) {
	m, _ := NewManager("secret", true)

	rec := httptest.NewRecorder()
	m.Notify(rec, Message{Title: "Subscribed!", Description: "You've been added to our newsletter."})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("Ожидался один cookie %s, получено %v", CookieName, cookies)
	}
	if !cookies[0].Secure || !cookies[0].HttpOnly {
		t.Error("Cookie должен быть Secure и HttpOnly")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	out := httptest.NewRecorder()

	msg := m.Pop(out, req)
	if msg == nil {
		t.Fatal("Pop вернул nil, ожидалось уведомление")
	}
	if msg.Title != "Subscribed!" {
		t.Errorf("Title = %q, ожидается Subscribed!", msg.Title)
	}

	cleared := out.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("Ожидалось удаление cookie, получено %v", cleared)
	}
}

// TestPopWithoutCookie проверяет, что без cookie уведомления нет.
func TestPopWithoutCookie(t *testing.T) {
	m, _ := NewManager("", false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if msg := m.Pop(rec, req); msg != nil {
		t.Errorf("Ожидался nil, получено %+v", msg)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("Без входящего cookie ответ не должен ставить cookie")
	}
}

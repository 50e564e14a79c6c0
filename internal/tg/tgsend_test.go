package tg

import (
	"errors"
	"testing"
)

func TestIsSystemErr(t *testing.T) {
	system := []string{"Too Many Requests: retry after 5", "502 Bad Gateway", "i/o timeout"}
	for _, s := range system {
		if !isSystemErr(errors.New(s)) {
			t.Fatalf("%q должна считаться системной", s)
		}
	}
	user := []string{"Bad Request: chat not found", "Bad Request: message is not modified"}
	for _, s := range user {
		if isSystemErr(errors.New(s)) {
			t.Fatalf("%q не должна уходить в Sentry", s)
		}
	}
	if isSystemErr(nil) {
		t.Fatal("nil — не ошибка")
	}
}

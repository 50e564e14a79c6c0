package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_Format(t *testing.T) {
	h, err := HashPassword("admin123")
	if err != nil {
		t.Fatal(err)
	}
	salt, digest, ok := strings.Cut(h, ":")
	if !ok {
		t.Fatalf("ожидали формат salt:digest, получили %q", h)
	}
	if len(salt) != saltLen*2 || len(digest) != keyLen*2 {
		t.Fatalf("неожиданные длины: salt=%d digest=%d", len(salt), len(digest))
	}
	if strings.Contains(h, "admin123") {
		t.Fatal("пароль не должен храниться открытым текстом")
	}
}

func TestVerifyPassword(t *testing.T) {
	h, err := HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("correct", func(t *testing.T) {
		ok, err := VerifyPassword("s3cret", h)
		if err != nil || !ok {
			t.Fatalf("ожидали совпадение, ok=%v err=%v", ok, err)
		}
	})

	t.Run("wrong", func(t *testing.T) {
		ok, err := VerifyPassword("S3cret", h)
		if err != nil || ok {
			t.Fatalf("ожидали несовпадение, ok=%v err=%v", ok, err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := VerifyPassword("x", "no-colon"); err != ErrMalformedHash {
			t.Fatalf("ожидали ErrMalformedHash, получили %v", err)
		}
		if _, err := VerifyPassword("x", "zz:00"); err != ErrMalformedHash {
			t.Fatalf("ожидали ErrMalformedHash для не-hex соли, получили %v", err)
		}
	})

	t.Run("empty_or_short_parts", func(t *testing.T) {
		// пустой дайджест иначе совпал бы с любым паролем
		salt, digest, _ := strings.Cut(h, ":")
		for _, stored := range []string{"0011:", ":" + digest, salt + ":" + digest[:10], ":"} {
			ok, err := VerifyPassword("anything", stored)
			if ok || err != ErrMalformedHash {
				t.Fatalf("%q: ожидали ErrMalformedHash, ok=%v err=%v", stored, ok, err)
			}
		}
	})
}

func TestHashPassword_SaltIsRandom(t *testing.T) {
	a, _ := HashPassword("same")
	b, _ := HashPassword("same")
	if a == b {
		t.Fatal("одинаковые хэши для одинаковых паролей: соль не случайна")
	}
}

func TestVerifyPassword_KnownVector(t *testing.T) {
	salt := []byte("0123456789abcdef")
	h := hashWithSalt("admin123", salt)
	if !strings.HasPrefix(h, "30313233343536373839616263646566:") {
		t.Fatalf("соль должна кодироваться hex: %q", h)
	}
	ok, err := VerifyPassword("admin123", h)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
}

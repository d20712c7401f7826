package passhash

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	h, err := Hash("correct horse")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(h, "$argon2id$") {
		t.Fatalf("not PHC formatted: %q", h)
	}
	ok, err := Verify(h, "correct horse")
	if err != nil || !ok {
		t.Fatalf("verify: ok=%v err=%v", ok, err)
	}
	ok, err = Verify(h, "wrong")
	if err != nil || ok {
		t.Fatalf("wrong password verified: ok=%v err=%v", ok, err)
	}
}

func TestHashesAreSalted(t *testing.T) {
	a, _ := Hash("pass")
	b, _ := Hash("pass")
	if a == b {
		t.Fatal("identical hashes for identical passwords")
	}
}

func TestVerifyRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "plain", "$argon2i$v=19$m=1,t=1,p=1$x$y", "$argon2id$v=19$m=1,t=1,p=1$%%%$y"} {
		if ok, _ := Verify(bad, "pass"); ok {
			t.Fatalf("malformed hash %q verified", bad)
		}
	}
}

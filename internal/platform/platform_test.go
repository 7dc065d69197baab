package platform

import (
	"testing"
	"time"
)

func TestExpireMillis(t *testing.T) {
	if got := (Options{}).expireMillis(); got != -1 {
		t.Fatalf("default expire %d", got)
	}
	if got := (Options{Expire: 4 * time.Second}).expireMillis(); got != 4000 {
		t.Fatalf("expire %d", got)
	}
}

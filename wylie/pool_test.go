package wylie

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestBorrowTokens(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	active := globalBufferPool.opool.GetNumActive()
	buf := borrowTokens("bkra shis")
	if !buf.pooled {
		t.Fatalf("expected buffer to be borrowed from the pool")
	}
	if strings.Join(buf.tokens, "|") != "b|k|r|a| |sh|i|s" {
		t.Errorf("unexpected tokens in buffer: %q", []string(buf.tokens))
	}
	if n := globalBufferPool.opool.GetNumActive(); n != active+1 {
		t.Errorf("expected %d active buffers, have %d", active+1, n)
	}
	buf.releaseIntoPool()
	if len(buf.tokens) != 0 || buf.pooled {
		t.Errorf("expected buffer to be cleared on release")
	}
	if n := globalBufferPool.opool.GetNumActive(); n != active {
		t.Errorf("expected %d active buffers after release, have %d", active, n)
	}
	buf.releaseIntoPool() // second release is a no-op
	if n := globalBufferPool.opool.GetNumActive(); n != active {
		t.Errorf("expected %d active buffers after double release, have %d", active, n)
	}
}

func TestReleaseForeignBuffer(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	idle := globalBufferPool.opool.GetNumIdle()
	buf := &tokenBuffer{tokens: []string{"k", "a"}}
	buf.releaseIntoPool()
	if len(buf.tokens) != 0 {
		t.Errorf("expected buffer to be cleared")
	}
	if n := globalBufferPool.opool.GetNumIdle(); n != idle {
		t.Errorf("expected foreign buffer to stay out of the pool, idle %d -> %d", idle, n)
	}
}

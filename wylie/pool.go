package wylie

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/ewts/tokenize"
)

// Token buffers are needed for every call to Convert and are dropped
// afterwards. To avoid re-allocating them we will pool them.
type tokenBuffer struct {
	tokens tokenize.Tokens
	pooled bool // borrowed from the pool, not a stand-in
}

type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			buf := &tokenBuffer{tokens: make(tokenize.Tokens, 0, 64)}
			return buf, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// borrowTokens splits input into tokens, using a pooled buffer.
// Clients have to call releaseIntoPool on the buffer when done.
func borrowTokens(input string) *tokenBuffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		T().Errorf("cannot borrow token buffer: %v", err)
		o = &tokenBuffer{}
	}
	buf := o.(*tokenBuffer)
	buf.pooled = err == nil
	buf.tokens = tokenize.SplitInto(buf.tokens, input)
	return buf
}

// Clears the buffer and puts it back into the pool. Buffers not borrowed
// from the pool are just cleared.
func (buf *tokenBuffer) releaseIntoPool() {
	for i := range buf.tokens {
		buf.tokens[i] = ""
	}
	buf.tokens = buf.tokens[:0]
	if !buf.pooled {
		return
	}
	buf.pooled = false
	if err := globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf); err != nil {
		T().Errorf("cannot return token buffer: %v", err)
	}
}

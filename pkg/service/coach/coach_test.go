package coach

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply(t *testing.T) {
	svc := New(slog.Default())
	ctx := context.Background()

	assert.Contains(t, svc.Reply(ctx, "What's a 50/30/20 BUDGET?"), "50% needs")
	assert.Contains(t, svc.Reply(ctx, "how big should my emergency fund be"), "three to six months")
	assert.Contains(t, svc.Reply(ctx, "paying off credit card debt"), "highest rate")
	assert.Equal(t, fallback, svc.Reply(ctx, "hello"))
}

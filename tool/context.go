package tool

import (
	"context"
	"sync"

	"github.com/verityhq/searchagent/entity"
)

type Context struct {
	context.Context

	skill *entity.AgentSkill
}

func (c *Context) GetSkill() *entity.AgentSkill {
	return c.skill
}

// CallData records one successful tool invocation within a turn.
type CallData struct {
	Name      string
	Arguments any
	Result    any
}

type callDataStore struct {
	mtx  sync.Mutex
	data []CallData
}

type callDataStoreKeyType struct{}

var callDataStoreKey callDataStoreKeyType

func WithEmptyCallDataStore(ctx context.Context) context.Context {
	return context.WithValue(ctx, callDataStoreKey, &callDataStore{})
}

func GetCallData(ctx context.Context) []CallData {
	store, ok := ctx.Value(callDataStoreKey).(*callDataStore)
	if !ok {
		return nil
	}

	store.mtx.Lock()
	defer store.mtx.Unlock()
	return store.data
}

func appendCallData(ctx context.Context, data CallData) {
	store, ok := ctx.Value(callDataStoreKey).(*callDataStore)
	if !ok {
		return
	}

	store.mtx.Lock()
	defer store.mtx.Unlock()
	store.data = append(store.data, data)
}
